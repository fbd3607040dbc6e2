// Package flight keeps simulated async work single-flight per page session.
package flight

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when a trigger arrives while the previous one is still outstanding.
var ErrBusy = errors.New("operation already in progress")

// Gate admits one operation at a time and rejects, rather than queues, the rest.
type Gate struct {
	sem  *semaphore.Weighted
	busy atomic.Bool
}

func NewGate() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

// Do runs fn if the gate is free, otherwise returns ErrBusy without calling it.
func (g *Gate) Do(fn func() error) error {
	if !g.sem.TryAcquire(1) {
		return ErrBusy
	}
	g.busy.Store(true)
	defer func() {
		g.busy.Store(false)
		g.sem.Release(1)
	}()
	return fn()
}

// Busy reports whether an operation currently holds the gate.
func (g *Gate) Busy() bool {
	return g.busy.Load()
}

// Wait blocks for d or until ctx is done. A zero delay returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
