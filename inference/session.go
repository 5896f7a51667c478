// Package inference - Inference sessions.
package inference

import (
	"sync"
	"time"

	ort "github.com/yalue/onnxruntime_go"
)

// Session represents a model session from the onnxruntime with its
// preallocated input and output tensors.
type Session struct {
	Session *ort.AdvancedSession
	Input   *ort.Tensor[float32]
	Output  *ort.Tensor[float32]
}

// Close releases the resources associated with the Session.
//
// Returns:
//   - No return values.
func (s *Session) Close() {
	if s.Input != nil {
		s.Input.Destroy()
		s.Input = nil
	}
	if s.Output != nil {
		s.Output.Destroy()
		s.Output = nil
	}
	if s.Session != nil {
		s.Session.Destroy()
		s.Session = nil
	}
}

// TimedSession wraps a Session with latency accounting so callers can
// report throughput without an external profiler.
type TimedSession struct {
	session *Session
	mu      sync.RWMutex
	runs    int64
	totalMS float64
}

// NewTimedSession wraps an existing session. The wrapper takes over
// running the session; Close still belongs to the inner Session.
func NewTimedSession(session *Session) *TimedSession {
	return &TimedSession{session: session}
}

// Run executes the model while tracking wall-clock latency.
//
// Returns:
//   - error: Execution error if any.
func (ts *TimedSession) Run() error {
	start := time.Now()
	err := ts.session.Session.Run()
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

	ts.mu.Lock()
	ts.runs++
	ts.totalMS += elapsed
	ts.mu.Unlock()

	return err
}

// Metrics reports the accumulated run statistics.
//
// Returns:
//   - runs: Number of completed Run calls.
//   - avgMS: Average latency per run in milliseconds (0 before any run).
func (ts *TimedSession) Metrics() (runs int64, avgMS float64) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.runs > 0 {
		avgMS = ts.totalMS / float64(ts.runs)
	}
	return ts.runs, avgMS
}

// ResetMetrics clears the accumulated counters.
func (ts *TimedSession) ResetMetrics() {
	ts.mu.Lock()
	ts.runs = 0
	ts.totalMS = 0
	ts.mu.Unlock()
}
