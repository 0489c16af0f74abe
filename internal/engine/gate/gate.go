// Package gate coalesces overlapping generation runs into a single execution.
package gate

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/zerr"
)

// Gate admits at most one run at a time. Callers arriving while a run is in
// progress wait for it to finish and return without running themselves.
type Gate struct {
	locked atomic.Bool

	mu       sync.Mutex
	released chan struct{}
}

// New creates an unlocked gate.
func New() *Gate {
	return &Gate{}
}

// RunExclusive runs fn if the gate is free. If another run holds the gate it
// blocks until that run releases it and then returns without calling fn.
//
// It reports whether fn ran. The gate is released after fn returns, including
// when fn fails or panics. A waiting caller whose context ends returns the
// context error.
func (g *Gate) RunExclusive(ctx context.Context, fn func(context.Context) error) (ran bool, err error) {
	g.mu.Lock()
	if !g.locked.CompareAndSwap(false, true) {
		released := g.released
		g.mu.Unlock()

		select {
		case <-released:
			return false, nil
		case <-ctx.Done():
			return false, zerr.Wrap(ctx.Err(), "gave up waiting for running generation")
		}
	}
	released := make(chan struct{})
	g.released = released
	g.mu.Unlock()

	defer g.release(released)

	return true, fn(ctx)
}

// Locked reports whether a run currently holds the gate.
func (g *Gate) Locked() bool {
	return g.locked.Load()
}

func (g *Gate) release(released chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.locked.Store(false)
	close(released)
}
