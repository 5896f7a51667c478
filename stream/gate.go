// Package stream - Frame pumping with load shedding for live sources.
package stream

import "sync/atomic"

// Gate is a single-slot non-blocking lock. At most one holder at a time;
// TryAcquire never blocks. This is the load-shedding primitive that keeps
// at most one classification in flight per video stream, dropping frames
// that arrive while one is running instead of queuing them.
type Gate struct {
	busy atomic.Bool
}

// TryAcquire takes the slot if it is free.
//
// Returns:
//   - bool: True if the caller now holds the gate, false if it was busy.
func (g *Gate) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release frees the slot. Only the current holder may call it.
func (g *Gate) Release() {
	g.busy.Store(false)
}

// Busy reports whether the slot is currently held.
func (g *Gate) Busy() bool {
	return g.busy.Load()
}
