package recorder

import "time"

// Event captures one handled chat message for later analysis.
type Event struct {
	Intent   string
	Symbol   string
	Persona  string
	Outcome  string // "ok", "no_symbol", "no_data", "source_error", "generator_error"
	CacheHit bool
	Duration time.Duration
}

// Recorder persists interaction history.
type Recorder interface {
	RecordInteraction(evt *Event) error
	Close() error
}

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordInteraction(_ *Event) error { return nil }
func (n *NoopRecorder) Close() error                     { return nil }
