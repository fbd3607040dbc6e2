/**
* Name: 			scenario.go
* Description: 		Situation wizard content: scenarios, question steps and solutions
* Workflow: 		embedded YAML -> LoadCatalog (validate) -> lookups by scenario id
 */

package wizard

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"LawHub_LegalAssistant/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultCatalogYAML []byte

type Scenario struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
	Steps       []Step `json:"-" yaml:"steps"`
}

// Step is one question screen. Next maps an option to a 1-based target step.
type Step struct {
	Index    int            `json:"index" yaml:"-"`
	Question string         `json:"question" yaml:"question"`
	Options  []string       `json:"options" yaml:"options"`
	Next     map[string]int `json:"-" yaml:"next,omitempty"`
}

func (s Step) HasOption(option string) bool {
	return slices.Contains(s.Options, option)
}

type catalogFile struct {
	Default   string                     `yaml:"default"`
	Scenarios []Scenario                 `yaml:"scenarios"`
	Solutions map[string]models.Solution `yaml:"solutions"`
}

// Catalog is the fixed scenario set loaded at process start. Read-only after load.
type Catalog struct {
	scenarios []Scenario
	byID      map[string]int
	solutions map[string]models.Solution
	defaultID string
}

// DefaultCatalog parses the catalog shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("LoadCatalog(): decode: %w", err)
	}

	c := &Catalog{
		scenarios: file.Scenarios,
		byID:      make(map[string]int, len(file.Scenarios)),
		solutions: file.Solutions,
		defaultID: file.Default,
	}
	for i := range c.scenarios {
		sc := &c.scenarios[i]
		if err := validateScenario(sc); err != nil {
			return nil, fmt.Errorf("LoadCatalog(): %w", err)
		}
		if _, dup := c.byID[sc.ID]; dup {
			return nil, fmt.Errorf("LoadCatalog(): duplicate scenario %q", sc.ID)
		}
		c.byID[sc.ID] = i
	}
	if _, ok := c.solutions[c.defaultID]; !ok {
		return nil, fmt.Errorf("LoadCatalog(): default scenario %q has no solution", c.defaultID)
	}
	return c, nil
}

func validateScenario(sc *Scenario) error {
	if sc.ID == "" {
		return errors.New("scenario without id")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.ID)
	}
	for i := range sc.Steps {
		step := &sc.Steps[i]
		step.Index = i
		if len(step.Options) == 0 {
			return fmt.Errorf("scenario %q step %d has no options", sc.ID, i+1)
		}
		for option, target := range step.Next {
			if !step.HasOption(option) {
				return fmt.Errorf("scenario %q step %d jumps on undeclared option %q", sc.ID, i+1, option)
			}
			// jumps only move forward, so a session always terminates
			if target <= i+1 {
				return fmt.Errorf("scenario %q step %d jump target %d is not ahead", sc.ID, i+1, target)
			}
		}
	}
	return nil
}

// Scenarios returns the picker list in catalog order.
func (c *Catalog) Scenarios() []Scenario {
	return slices.Clone(c.scenarios)
}

func (c *Catalog) GetScenario(id string) (Scenario, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Scenario{}, false
	}
	return c.scenarios[i], true
}

// Solution looks up the static solution for a scenario, falling back to the
// default scenario's solution when the table has no entry.
func (c *Catalog) Solution(id string) models.Solution {
	if sol, ok := c.solutions[id]; ok {
		return sol
	}
	return c.solutions[c.defaultID]
}

func (c *Catalog) DefaultScenarioID() string {
	return c.defaultID
}
