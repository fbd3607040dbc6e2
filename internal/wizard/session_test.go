package wizard

import (
	"strings"
	"testing"

	"LawHub_LegalAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func assertTrailMatchesIndex(t *testing.T, s *Session) {
	t.Helper()
	st := s.State()
	assert.Equal(t, len(st.Answers), st.StepIndex, "step index must equal answer trail length")
}

// answerFirstOptions answers every remaining step with its first option.
func answerFirstOptions(t *testing.T, s *Session) int {
	t.Helper()
	submitted := 0
	for {
		st := s.State()
		if st.SolutionReady {
			return submitted
		}
		require.NotNil(t, st.Current)
		_, err := s.SubmitAnswer(st.Current.Options[0])
		require.NoError(t, err)
		assertTrailMatchesIndex(t, s)
		submitted++
	}
}

func TestEveryScenarioReachesSolution(t *testing.T) {
	c := defaultCatalog(t)
	require.Len(t, c.Scenarios(), 6)

	for _, sc := range c.Scenarios() {
		t.Run(sc.ID, func(t *testing.T) {
			s := NewSession(c)
			require.NoError(t, s.SelectScenario(sc.ID))
			assertTrailMatchesIndex(t, s)

			answerFirstOptions(t, s)

			sol, err := s.ResolveSolution()
			require.NoError(t, err)
			assert.NotEmpty(t, sol.Title)
			assert.NotEmpty(t, sol.Steps)
			assert.NotEmpty(t, sol.Contacts)
			assert.True(t, sol.Urgency.Valid())
		})
	}
}

func TestArrestedReadyAfterThirdAnswer(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("arrested"))

	answers := []string{"Court", "I'm not sure", "No, I need a lawyer"}
	for i, a := range answers {
		assert.False(t, s.State().SolutionReady, "ready too early at answer %d", i+1)
		tr, err := s.SubmitAnswer(a)
		require.NoError(t, err)
		if i < len(answers)-1 {
			assert.Equal(t, Transition{Kind: TransitionNext, To: i + 1}, tr)
		} else {
			assert.Equal(t, TransitionFinish, tr.Kind)
		}
	}
	assert.True(t, s.State().SolutionReady)

	sol, err := s.ResolveSolution()
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyHigh, sol.Urgency)
	assert.Equal(t, "Immediate Actions for Arrest Situation", sol.Title)
}

func TestFineIsMediumUrgency(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("fine"))
	assert.Equal(t, 3, answerFirstOptions(t, s))

	sol, err := s.ResolveSolution()
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyMedium, sol.Urgency)
}

func TestSelectUnknownScenario(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	err := s.SelectScenario("shipwreck")
	require.ErrorIs(t, err, ErrInvalidScenario)
	assert.Empty(t, s.State().ScenarioID)
}

func TestSubmitWithoutScenario(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	_, err := s.SubmitAnswer("Court")
	assert.ErrorIs(t, err, ErrNoActiveScenario)
}

func TestUnknownOptionLeavesStateUntouched(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("visa"))
	_, err := s.SubmitAnswer("Overstay")
	require.NoError(t, err)
	before := s.State()

	_, err = s.SubmitAnswer("Overstay")
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, before, s.State())
}

func TestSubmitAfterSolutionReady(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("passport"))
	answerFirstOptions(t, s)

	_, err := s.SubmitAnswer("Airport")
	assert.ErrorIs(t, err, ErrSolutionReady)
	assertTrailMatchesIndex(t, s)
}

func TestResolveBeforeReady(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("accident"))
	_, err := s.ResolveSolution()
	assert.ErrorIs(t, err, ErrSolutionNotReady)
}

func TestGoBack(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("behavior"))
	_, err := s.SubmitAnswer("Alcohol related")
	require.NoError(t, err)
	_, err = s.SubmitAnswer("Not sure")
	require.NoError(t, err)

	s.GoBack()
	assertTrailMatchesIndex(t, s)
	st := s.State()
	assert.Equal(t, 1, st.StepIndex)
	assert.Equal(t, []string{"Alcohol related"}, st.Answers)
	require.NotNil(t, st.Current)
	assert.Equal(t, 1, st.Current.Index)

	s.GoBack()
	assertTrailMatchesIndex(t, s)
	assert.Equal(t, "behavior", s.State().ScenarioID)

	// at step 0 back discards the whole session
	s.GoBack()
	st = s.State()
	assert.Empty(t, st.ScenarioID)
	assert.Empty(t, st.Answers)
	assert.False(t, st.SolutionReady)
	assert.Nil(t, st.Current)
}

func TestGoBackFromSolution(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("fine"))
	answerFirstOptions(t, s)

	s.GoBack()
	st := s.State()
	assert.False(t, st.SolutionReady)
	assert.Equal(t, 2, st.StepIndex)
	require.NotNil(t, st.Current)
	assert.Equal(t, 2, st.Current.Index)
}

func TestSelectScenarioResetsProgress(t *testing.T) {
	s := NewSession(defaultCatalog(t))
	require.NoError(t, s.SelectScenario("fine"))
	answerFirstOptions(t, s)

	require.NoError(t, s.SelectScenario("visa"))
	st := s.State()
	assert.Equal(t, 0, st.StepIndex)
	assert.False(t, st.SolutionReady)
	assert.Empty(t, st.Answers)
}

const jumpCatalog = `
default: triage
scenarios:
  - id: triage
    title: Triage
    description: branching test
    steps:
      - question: Serious?
        options: ["yes", "no", "skip all"]
        next: {"yes": 3, "skip all": 9}
      - question: Minor detail?
        options: [a, b]
      - question: Urgent detail?
        options: [c, d]
  - id: orphan
    title: Orphan
    description: no solution entry
    steps:
      - question: Only?
        options: [x]
solutions:
  triage:
    title: Triage plan
    urgency: low
    steps: [one]
    contacts: [someone]
`

func TestJumpTransitions(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(jumpCatalog))
	require.NoError(t, err)

	t.Run("jump within range", func(t *testing.T) {
		s := NewSession(c)
		require.NoError(t, s.SelectScenario("triage"))
		tr, err := s.SubmitAnswer("yes")
		require.NoError(t, err)
		assert.Equal(t, Transition{Kind: TransitionJump, To: 2}, tr)
		assertTrailMatchesIndex(t, s)
		assert.Equal(t, 2, s.State().Current.Index)

		// back after a jump returns to the step the answer was given on
		s.GoBack()
		assert.Equal(t, 0, s.State().Current.Index)
		assertTrailMatchesIndex(t, s)
	})

	t.Run("jump past the end finishes", func(t *testing.T) {
		s := NewSession(c)
		require.NoError(t, s.SelectScenario("triage"))
		tr, err := s.SubmitAnswer("skip all")
		require.NoError(t, err)
		assert.Equal(t, TransitionFinish, tr.Kind)
		assert.True(t, s.State().SolutionReady)
	})

	t.Run("no jump entry advances sequentially", func(t *testing.T) {
		s := NewSession(c)
		require.NoError(t, s.SelectScenario("triage"))
		tr, err := s.SubmitAnswer("no")
		require.NoError(t, err)
		assert.Equal(t, Transition{Kind: TransitionNext, To: 1}, tr)
	})

	t.Run("missing solution falls back to default", func(t *testing.T) {
		s := NewSession(c)
		require.NoError(t, s.SelectScenario("orphan"))
		_, err := s.SubmitAnswer("x")
		require.NoError(t, err)
		sol, err := s.ResolveSolution()
		require.NoError(t, err)
		assert.Equal(t, "Triage plan", sol.Title)
	})
}
