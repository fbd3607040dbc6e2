package voice

import (
	"context"
	"sync"
	"testing"
	"time"

	"LawHub_LegalAssistant/internal/flight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cycle() Picker {
	i := -1
	return func(n int) int {
		i = (i + 1) % n
		return i
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 8)
	assert.Equal(t, Language{Code: "ar", Name: "العربية", Flag: "🇸🇦"}, langs[1])
}

func TestNewConsoleDefaults(t *testing.T) {
	c := NewConsole(cycle(), 0, zap.NewNop())
	st := c.State()
	assert.Equal(t, "en", st.Language)
	assert.False(t, st.Listening)
	assert.Empty(t, st.Transcripts)
	assert.NotNil(t, st.Transcripts)
}

func TestSetLanguage(t *testing.T) {
	c := NewConsole(cycle(), 0, zap.NewNop())
	require.NoError(t, c.SetLanguage("hi"))
	assert.Equal(t, "hi", c.State().Language)

	err := c.SetLanguage("klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, "hi", c.State().Language)
}

func TestListenNewestFirst(t *testing.T) {
	c := NewConsole(cycle(), 0, zap.NewNop())
	ctx := context.Background()

	first, err := c.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, MockTranscripts()[0], first.Text)
	assert.Equal(t, "en", first.Language)

	require.NoError(t, c.SetLanguage("fr"))
	second, err := c.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, MockTranscripts()[1], second.Text)
	assert.Equal(t, "fr", second.Language)

	st := c.State()
	require.Len(t, st.Transcripts, 2)
	assert.Equal(t, second, st.Transcripts[0])
	assert.Equal(t, first, st.Transcripts[1])
}

func TestListenIsSingleFlight(t *testing.T) {
	c := NewConsole(cycle(), 200*time.Millisecond, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = c.Listen(context.Background())
	}()

	require.Eventually(t, func() bool { return c.State().Listening }, time.Second, 5*time.Millisecond)
	_, err := c.Listen(context.Background())
	assert.ErrorIs(t, err, flight.ErrBusy)

	wg.Wait()
	require.NoError(t, firstErr)
	assert.Len(t, c.State().Transcripts, 1)
}

func TestListenCancelled(t *testing.T) {
	c := NewConsole(cycle(), time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Listen(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.State().Transcripts)
}
