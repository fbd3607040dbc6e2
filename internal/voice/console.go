// Package voice simulates the voice assistant page: pick a language, listen,
// collect transcripts.
package voice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"LawHub_LegalAssistant/internal/flight"
	"LawHub_LegalAssistant/internal/multilang"

	"go.uber.org/zap"
)

var ErrUnknownLanguage = multilang.ErrUnknownLanguage

// Language is the short form shown in the voice language selector.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Languages reuses the multi-language catalogue, labelled with native names.
func Languages() []Language {
	all := multilang.Languages()
	out := make([]Language, 0, len(all))
	for _, l := range all {
		out = append(out, Language{Code: l.Code, Name: l.NativeName, Flag: l.Flag})
	}
	return out
}

type Transcript struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// Picker returns an index in [0, n).
type Picker func(n int) int

var mockTranscripts = []string{
	"What are the traffic laws in Dubai?",
	"Can I drink alcohol in public in UAE?",
	"What should I do if I lose my passport?",
	"How do I report a crime to the police?",
}

func MockTranscripts() []string {
	return slices.Clone(mockTranscripts)
}

// Console is one client's voice page.
type Console struct {
	mu          sync.Mutex
	language    string
	transcripts []Transcript
	nextID      int

	pick  Picker
	gate  *flight.Gate
	delay time.Duration
	log   *zap.Logger
}

type ConsoleState struct {
	Language    string       `json:"language"`
	Listening   bool         `json:"listening"`
	Transcripts []Transcript `json:"transcripts"`
}

// NewConsole starts in English. A nil pick chooses transcripts at random.
func NewConsole(pick Picker, delay time.Duration, log *zap.Logger) *Console {
	if pick == nil {
		pick = rand.IntN
	}
	return &Console{
		language: multilang.DefaultLanguage,
		pick:     pick,
		gate:     flight.NewGate(),
		delay:    delay,
		log:      log,
	}
}

func (c *Console) SetLanguage(code string) error {
	if _, err := multilang.Lookup(code); err != nil {
		return fmt.Errorf("SetLanguage(): %w", err)
	}
	c.mu.Lock()
	c.language = code
	c.mu.Unlock()
	return nil
}

// Listen pretends to record and recognise one utterance. The transcript is
// tagged with the language selected when listening started.
func (c *Console) Listen(ctx context.Context) (Transcript, error) {
	var tr Transcript
	err := c.gate.Do(func() error {
		c.mu.Lock()
		lang := c.language
		c.mu.Unlock()

		if err := flight.Wait(ctx, c.delay); err != nil {
			c.log.Debug("Listening abandoned", zap.Error(err))
			return err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.nextID++
		tr = Transcript{
			ID:        c.nextID,
			Text:      mockTranscripts[c.pick(len(mockTranscripts))],
			Language:  lang,
			Timestamp: time.Now(),
		}
		c.transcripts = append([]Transcript{tr}, c.transcripts...)
		return nil
	})
	return tr, err
}

func (c *Console) State() ConsoleState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := ConsoleState{
		Language:    c.language,
		Listening:   c.gate.Busy(),
		Transcripts: slices.Clone(c.transcripts),
	}
	if st.Transcripts == nil {
		st.Transcripts = []Transcript{}
	}
	return st
}
