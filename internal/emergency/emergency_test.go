package emergency

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

func TestContactsAndAlerts(t *testing.T) {
	cs := Contacts()
	require.Len(t, cs, 3)
	assert.Equal(t, "999", cs[1].Phone)
	assert.Equal(t, "Legal Aid", cs[2].Type)

	as := Alerts()
	require.Len(t, as, 2)
	assert.Equal(t, AlertWarning, as[0].Type)
	assert.Equal(t, "2024-03-08", as[1].Date)

	cs[0].Name = "changed"
	assert.Equal(t, "US Consulate General Dubai", Contacts()[0].Name)
}

func TestLocate(t *testing.T) {
	d := NewDesk(0, zap.NewNop())
	assert.Equal(t, DeskState{Location: "Dubai, UAE"}, d.State())

	loc, err := d.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Abu Dhabi, UAE", loc)
	assert.Equal(t, DeskState{Location: "Abu Dhabi, UAE"}, d.State())
}

func TestLocateIsSingleFlight(t *testing.T) {
	d := NewDesk(200*time.Millisecond, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = d.Locate(context.Background())
	}()

	require.Eventually(t, func() bool { return d.State().Locating }, time.Second, 5*time.Millisecond)
	assert.Equal(t, InitialLocation, d.State().Location)
	_, err := d.Locate(context.Background())
	assert.ErrorIs(t, err, flight.ErrBusy)

	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, DetectedLocation, d.State().Location)
}

func TestLocateCancelledKeepsLocation(t *testing.T) {
	d := NewDesk(time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Locate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, InitialLocation, d.State().Location)
}
