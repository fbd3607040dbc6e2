package laws

import (
	"strings"
	"testing"

	"LawHub_LegalAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(articles []Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)
	require.Len(t, lib.Articles, 3)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "speed in all countries",
			filter: Filter{Query: "speed", Country: "all"},
			want:   []string{"Speed Limit Violations"},
		},
		{
			name:   "speed in US",
			filter: Filter{Query: "speed", Country: "US"},
			want:   []string{},
		},
		{
			name:   "empty filter returns everything",
			filter: Filter{},
			want:   []string{"Speed Limit Violations", "Public Intoxication Laws", "Employment Contract Termination"},
		},
		{
			name:   "query is case-insensitive and searches summary",
			filter: Filter{Query: "ALCOHOL"},
			want:   []string{"Public Intoxication Laws"},
		},
		{
			name:   "topic filter",
			filter: Filter{Country: "UAE", Topic: "Employment Law"},
			want:   []string{"Employment Contract Termination"},
		},
		{
			name:   "query and topic disagree",
			filter: Filter{Query: "speed", Topic: "Criminal Law"},
			want:   []string{},
		},
		{
			name:   "whitespace-only query is empty",
			filter: Filter{Query: "   ", Topic: AnyValue},
			want:   []string{"Speed Limit Violations", "Public Intoxication Laws", "Employment Contract Termination"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(lib.Search(tt.filter)))
		})
	}
}

func TestGet(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)

	a, ok := lib.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Federal Penal Code Article 313", a.LawCode)
	assert.Equal(t, models.UrgencyHigh, a.Urgency)

	_, ok = lib.Get(42)
	assert.False(t, ok)
}

func TestPickerOptions(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)
	assert.Equal(t, AnyValue, lib.Countries[0].Code)
	assert.Equal(t, AnyValue, lib.Topics[0].Code)
	assert.Len(t, lib.Countries, 6)
	assert.Len(t, lib.Topics, 6)
}

func TestLoadLibraryRejectsDuplicates(t *testing.T) {
	_, err := LoadLibrary(strings.NewReader(`
articles:
  - {id: 1, title: a, urgency: low}
  - {id: 1, title: b, urgency: low}
`))
	assert.Error(t, err)
}
