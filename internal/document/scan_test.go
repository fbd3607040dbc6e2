package document

import (
	"context"
	"sync"
	"testing"
	"time"

	"LawHub_LegalAssistant/internal/flight"
	"LawHub_LegalAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		size      int64
		wantErr   error
	}{
		{name: "pdf accepted", mediaType: "application/pdf", size: 1024},
		{name: "jpeg accepted", mediaType: "image/jpeg", size: 1024},
		{name: "png with params", mediaType: "IMAGE/PNG; name=scan.png", size: 1024},
		{name: "plain text rejected", mediaType: "text/plain", size: 10, wantErr: ErrUnsupportedFileType},
		{name: "gif rejected", mediaType: "image/gif", size: 10, wantErr: ErrUnsupportedFileType},
		{name: "empty type rejected", mediaType: "", size: 10, wantErr: ErrUnsupportedFileType},
		{name: "too large", mediaType: "application/pdf", size: MaxUploadSize + 1, wantErr: ErrFileTooLarge},
		{name: "exactly at limit", mediaType: "application/pdf", size: MaxUploadSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ValidateUpload(Upload{Filename: "f", MediaType: tt.mediaType, Size: tt.size})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, AllowedMediaTypes, u.MediaType)
		})
	}
}

func TestAnalyzeRequiresDocument(t *testing.T) {
	s := NewScan(0, zap.NewNop())
	_, err := s.Analyze(context.Background())
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestRejectedUploadNotAttached(t *testing.T) {
	s := NewScan(0, zap.NewNop())
	err := s.Attach(Upload{Filename: "notes.txt", MediaType: "text/plain", Size: 12})
	require.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.Nil(t, s.State().Upload)
}

func TestAnalyzeReturnsFixedResult(t *testing.T) {
	s := NewScan(0, zap.NewNop())
	require.NoError(t, s.Attach(Upload{Filename: "ticket.pdf", MediaType: "application/pdf", Size: 2048}))

	a, err := s.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Traffic Violations", a.LawTopic)
	assert.Equal(t, models.UrgencyMedium, a.Urgency)
	assert.Len(t, a.Recommendations, 4)

	st := s.State()
	require.NotNil(t, st.Analysis)
	assert.False(t, st.Analyzing)

	// a new upload clears the previous result
	require.NoError(t, s.Attach(Upload{Filename: "other.png", MediaType: "image/png", Size: 10}))
	assert.Nil(t, s.State().Analysis)
}

func TestAnalyzeIsSingleFlight(t *testing.T) {
	s := NewScan(200*time.Millisecond, zap.NewNop())
	require.NoError(t, s.Attach(Upload{Filename: "ticket.pdf", MediaType: "application/pdf", Size: 2048}))

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = s.Analyze(context.Background())
	}()

	require.Eventually(t, func() bool { return s.State().Analyzing }, time.Second, 5*time.Millisecond)
	_, err := s.Analyze(context.Background())
	assert.ErrorIs(t, err, flight.ErrBusy)

	wg.Wait()
	assert.NoError(t, firstErr)
}

func TestAnalyzeCancelled(t *testing.T) {
	s := NewScan(time.Hour, zap.NewNop())
	require.NoError(t, s.Attach(Upload{Filename: "ticket.pdf", MediaType: "application/pdf", Size: 2048}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Analyze(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.State().Analyzing)
}
