// Package laws is the law explorer: a small article library with search filters.
package laws

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"LawHub_LegalAssistant/internal/models"

	"gopkg.in/yaml.v3"
)

// AnyValue disables a country or topic filter.
const AnyValue = "all"

//go:embed laws.yaml
var defaultLibraryYAML []byte

type Article struct {
	ID          int            `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Country     string         `json:"country" yaml:"country"`
	Topic       string         `json:"topic" yaml:"topic"`
	Summary     string         `json:"summary" yaml:"summary"`
	LawCode     string         `json:"law_code" yaml:"law_code"`
	Penalties   string         `json:"penalties" yaml:"penalties"`
	LastUpdated string         `json:"last_updated" yaml:"last_updated"`
	Urgency     models.Urgency `json:"urgency" yaml:"urgency"`
}

// Option is one entry of a picker list.
type Option struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

type Filter struct {
	Query   string `form:"q"`
	Country string `form:"country"`
	Topic   string `form:"topic"`
}

type Library struct {
	Articles  []Article `yaml:"articles"`
	Countries []Option  `yaml:"countries"`
	Topics    []Option  `yaml:"topics"`
}

func DefaultLibrary() (*Library, error) {
	return LoadLibrary(bytes.NewReader(defaultLibraryYAML))
}

func LoadLibrary(r io.Reader) (*Library, error) {
	var lib Library
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lib); err != nil {
		return nil, fmt.Errorf("LoadLibrary(): decode: %w", err)
	}
	seen := make(map[int]bool, len(lib.Articles))
	for _, a := range lib.Articles {
		if seen[a.ID] {
			return nil, fmt.Errorf("LoadLibrary(): duplicate article id %d", a.ID)
		}
		seen[a.ID] = true
	}
	return &lib, nil
}

// Search keeps library order. An empty query matches everything; the query is
// matched case-insensitively against title and summary.
func (l *Library) Search(f Filter) []Article {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Article, 0, len(l.Articles))
	for _, a := range l.Articles {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Summary), query) {
			continue
		}
		if !matches(f.Country, a.Country) || !matches(f.Topic, a.Topic) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(filter, value string) bool {
	return filter == "" || filter == AnyValue || filter == value
}

func (l *Library) Get(id int) (Article, bool) {
	i := slices.IndexFunc(l.Articles, func(a Article) bool { return a.ID == id })
	if i < 0 {
		return Article{}, false
	}
	return l.Articles[i], true
}
