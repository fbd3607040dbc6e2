package wizard

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"LawHub_LegalAssistant/internal/models"
)

var (
	ErrInvalidScenario  = errors.New("invalid scenario")
	ErrUnknownOption    = errors.New("unknown option")
	ErrNoActiveScenario = errors.New("no active scenario")
	ErrSolutionReady    = errors.New("solution already reached")
	ErrSolutionNotReady = errors.New("solution not ready")
)

type TransitionKind string

const (
	TransitionNext   TransitionKind = "next"
	TransitionJump   TransitionKind = "jump"
	TransitionFinish TransitionKind = "finish"
)

// Transition is the outcome of answering a step. To is the 0-based step
// position for next/jump and -1 for finish.
type Transition struct {
	Kind TransitionKind `json:"kind"`
	To   int            `json:"to"`
}

func nextTransition(step Step, option string, total int) Transition {
	if target, ok := step.Next[option]; ok {
		to := target - 1
		if to < total {
			return Transition{Kind: TransitionJump, To: to}
		}
		return Transition{Kind: TransitionFinish, To: -1}
	}
	if step.Index < total-1 {
		return Transition{Kind: TransitionNext, To: step.Index + 1}
	}
	return Transition{Kind: TransitionFinish, To: -1}
}

// Session walks one scenario's steps for one user.
// len(answers) == len(path) at all times; path[i] is the step position answer i was given on.
type Session struct {
	mu       sync.Mutex
	catalog  *Catalog
	scenario string
	steps    []Step
	position int
	path     []int
	answers  []string
	ready    bool
}

// State is a point-in-time view of a session.
type State struct {
	ScenarioID    string   `json:"scenario_id,omitempty"`
	StepIndex     int      `json:"step_index"`
	TotalSteps    int      `json:"total_steps"`
	Answers       []string `json:"answers"`
	SolutionReady bool     `json:"solution_ready"`
	Current       *Step    `json:"current,omitempty"`
}

func NewSession(catalog *Catalog) *Session {
	return &Session{catalog: catalog}
}

func (s *Session) SelectScenario(id string) error {
	sc, ok := s.catalog.GetScenario(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidScenario, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenario = sc.ID
	s.steps = sc.Steps
	s.position = 0
	s.path = nil
	s.answers = nil
	s.ready = false
	return nil
}

// SubmitAnswer records option for the current step and moves on. On error the
// session is left untouched.
func (s *Session) SubmitAnswer(option string) (Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scenario == "" {
		return Transition{}, ErrNoActiveScenario
	}
	if s.ready {
		return Transition{}, ErrSolutionReady
	}
	step := s.steps[s.position]
	if !step.HasOption(option) {
		return Transition{}, fmt.Errorf("%w: %q for step %d", ErrUnknownOption, option, step.Index+1)
	}

	s.answers = append(s.answers, option)
	s.path = append(s.path, s.position)

	t := nextTransition(step, option, len(s.steps))
	if t.Kind == TransitionFinish {
		s.ready = true
	} else {
		s.position = t.To
	}
	return t, nil
}

// GoBack undoes the last answer. With no answers left it discards the session.
func (s *Session) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.answers)
	if n == 0 {
		s.reset()
		return
	}
	s.position = s.path[n-1]
	s.path = s.path[:n-1]
	s.answers = s.answers[:n-1]
	s.ready = false
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.scenario = ""
	s.steps = nil
	s.position = 0
	s.path = nil
	s.answers = nil
	s.ready = false
}

func (s *Session) ResolveSolution() (models.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return models.Solution{}, ErrSolutionNotReady
	}
	return s.catalog.Solution(s.scenario), nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ScenarioID:    s.scenario,
		StepIndex:     len(s.answers),
		TotalSteps:    len(s.steps),
		Answers:       slices.Clone(s.answers),
		SolutionReady: s.ready,
	}
	if st.Answers == nil {
		st.Answers = []string{}
	}
	if s.scenario != "" && !s.ready {
		step := s.steps[s.position]
		st.Current = &step
	}
	return st
}
