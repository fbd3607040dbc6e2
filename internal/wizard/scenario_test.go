package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogContents(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	ids := make([]string, 0, 6)
	for _, sc := range c.Scenarios() {
		ids = append(ids, sc.ID)
		assert.NotEmpty(t, sc.Title)
		assert.Len(t, sc.Steps, 3, sc.ID)
		for _, step := range sc.Steps {
			assert.Empty(t, step.Next, "shipped scenarios are linear")
		}
	}
	assert.Equal(t, []string{"arrested", "passport", "visa", "fine", "behavior", "accident"}, ids)
	assert.Equal(t, "arrested", c.DefaultScenarioID())

	sc, ok := c.GetScenario("passport")
	require.True(t, ok)
	assert.Equal(t, "Lost Passport", sc.Title)
	assert.Equal(t, []string{"Hotel/Accommodation", "Airport", "Public Transport", "Stolen", "Other"}, sc.Steps[0].Options)

	_, ok = c.GetScenario("nope")
	assert.False(t, ok)
}

func TestLoadCatalogRejectsBadContent(t *testing.T) {
	cases := map[string]string{
		"no steps": `
default: a
scenarios:
  - id: a
    title: A
solutions:
  a: {title: t, urgency: low}
`,
		"undeclared jump option": `
default: a
scenarios:
  - id: a
    steps:
      - question: q
        options: [x]
        next: {y: 2}
solutions:
  a: {title: t, urgency: low}
`,
		"backward jump": `
default: a
scenarios:
  - id: a
    steps:
      - question: q1
        options: [x]
      - question: q2
        options: [y]
        next: {y: 1}
solutions:
  a: {title: t, urgency: low}
`,
		"self jump": `
default: a
scenarios:
  - id: a
    steps:
      - question: q1
        options: [x]
        next: {x: 1}
      - question: q2
        options: [y]
solutions:
  a: {title: t, urgency: low}
`,
		"bad urgency": `
default: a
scenarios:
  - id: a
    steps:
      - question: q
        options: [x]
solutions:
  a: {title: t, urgency: extreme}
`,
		"default without solution": `
default: b
scenarios:
  - id: a
    steps:
      - question: q
        options: [x]
solutions:
  a: {title: t, urgency: low}
`,
		"duplicate id": `
default: a
scenarios:
  - id: a
    steps: [{question: q, options: [x]}]
  - id: a
    steps: [{question: q, options: [x]}]
solutions:
  a: {title: t, urgency: low}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
