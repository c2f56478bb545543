package watcher

import (
	"context"
	"time"
)

// Operation represents a file system operation type.
type Operation int

const (
	// OpCreate indicates the file appeared. Atomic saves that rename a
	// temp file over the target surface as creates.
	OpCreate Operation = iota
	// OpModify indicates the file was written in place.
	OpModify
	// OpDelete indicates the file was removed.
	OpDelete
	// OpRename indicates the file was moved away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// FileEvent represents a change to one watched file.
type FileEvent struct {
	// Path is the absolute path of the watched file.
	Path string

	// Operation is the type of file system operation.
	Operation Operation

	// Timestamp is when the event was detected.
	Timestamp time.Time
}

// Watcher defines the interface for file watching. Events arrive in batches:
// changes landing within one debounce window share a batch.
type Watcher interface {
	// Start begins watching and blocks until Stop is called or the
	// context is cancelled.
	Start(ctx context.Context) error

	// Stop stops the watcher and releases resources.
	// Safe to call multiple times.
	Stop() error

	// Events returns the channel of debounced event batches.
	// The channel is closed when the watcher stops.
	Events() <-chan []FileEvent

	// Errors returns a channel of watcher errors.
	// Non-fatal errors are sent here; the watcher continues running.
	// The channel is closed when the watcher stops.
	Errors() <-chan error
}

// Options configures the watcher behavior.
type Options struct {
	// DebounceWindow is the time to wait before emitting coalesced events.
	// Default: 500ms
	DebounceWindow time.Duration

	// PollInterval is the interval for polling mode (fallback).
	// Default: 2s
	PollInterval time.Duration

	// EventBufferSize is the size of the event channel buffer.
	// Default: 64
	EventBufferSize int
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{
		DebounceWindow:  500 * time.Millisecond,
		PollInterval:    2 * time.Second,
		EventBufferSize: 64,
	}
}

// WithDefaults returns options with defaults applied for zero values.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	if o.DebounceWindow == 0 {
		o.DebounceWindow = defaults.DebounceWindow
	}
	if o.PollInterval == 0 {
		o.PollInterval = defaults.PollInterval
	}
	if o.EventBufferSize == 0 {
		o.EventBufferSize = defaults.EventBufferSize
	}
	return o
}
