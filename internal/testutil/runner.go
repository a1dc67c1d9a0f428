// Package testutil provides test utilities and helpers for qicli tests.
package testutil

import (
	"context"
	"sync"
	"time"
)

// RunnerCall records one invocation of the recording runner.
type RunnerCall struct {
	Name      string
	Timestamp time.Time
}

// RecordingRunner is a dispatch.Runner double that records every call
// and returns a configurable error.
type RecordingRunner struct {
	mu    sync.Mutex
	calls []RunnerCall

	// Err is returned from every Run call when non-nil.
	Err error
}

// Run records the invocation and returns the configured error.
func (r *RecordingRunner) Run(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RunnerCall{Name: name, Timestamp: time.Now()})
	return r.Err
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingRunner) Calls() []RunnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunnerCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallNames returns just the command names, in call order.
func (r *RecordingRunner) CallNames() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Name
	}
	return names
}
