package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScenariosCommand(t *testing.T) {
	out, err := execute(t, "", "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "Arrested or Detained")
	assert.Contains(t, out, "(passport)")
}

func TestWizardCommandReachesSolution(t *testing.T) {
	out, err := execute(t, "1\n2\n2\n", "wizard", "arrested")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1 of 3: Where are you currently located?")
	assert.Contains(t, out, "Immediate Actions for Arrest Situation")
	assert.Contains(t, out, "Urgency: high")
	assert.Contains(t, out, "Exercise your right to remain silent")
}

func TestWizardCommandBackAndInvalidInput(t *testing.T) {
	out, err := execute(t, "9\nx\n1\nb\n1\n1\n1\n", "wizard", "arrested")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Invalid selection. Please try again."))
	assert.Equal(t, 2, strings.Count(out, "Step 2 of 3"))
	assert.Contains(t, out, "Immediate Actions for Arrest Situation")
}

func TestWizardCommandBackAtFirstStepDiscards(t *testing.T) {
	out, err := execute(t, "b\n", "wizard", "fine")
	require.NoError(t, err)
	assert.Contains(t, out, "Wizard discarded.")
}

func TestWizardCommandErrors(t *testing.T) {
	_, err := execute(t, "", "wizard", "nope")
	assert.Error(t, err)

	_, err = execute(t, "1\n", "wizard", "arrested")
	assert.ErrorIs(t, err, errInputClosed)
}

func TestWizardCommandQuit(t *testing.T) {
	out, err := execute(t, "q\n", "wizard")
	require.NoError(t, err)
	assert.Contains(t, out, "Bye.")
	assert.NotContains(t, out, "Urgency:")
}

func TestLawsSearchCommand(t *testing.T) {
	out, err := execute(t, "", "laws", "search", "--country", "UAE", "--topic", "Traffic Laws")
	require.NoError(t, err)
	assert.Contains(t, out, "Speed Limit Violations")
	assert.Contains(t, out, "Federal Traffic Law Article 49")

	out, err = execute(t, "", "laws", "search", "-q", "zzzz-no-match")
	require.NoError(t, err)
	assert.Contains(t, out, "No laws match your search.")
}

func TestAskCommand(t *testing.T) {
	out, err := execute(t, "", "ask", "I", "lost", "my", "passport", "in", "Nepal")
	require.NoError(t, err)
	assert.Contains(t, out, "Document Emergency!")
	assert.Contains(t, out, "For Nepal-specific laws")

	_, err = execute(t, "", "ask")
	assert.Error(t, err)
}
