package testutil

import (
	"context"
	"sync"
)

// ViewCall is one recorded viewer invocation.
type ViewCall struct {
	Left  string
	Right string
}

// RecordingViewer records every View call and returns Err (if set).
type RecordingViewer struct {
	Err error

	mu    sync.Mutex
	calls []ViewCall
}

// View records the pair of paths.
func (v *RecordingViewer) View(_ context.Context, left, right string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, ViewCall{Left: left, Right: right})
	return v.Err
}

// Calls returns the recorded invocations in order.
func (v *RecordingViewer) Calls() []ViewCall {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]ViewCall, len(v.calls))
	copy(out, v.calls)
	return out
}
