package watcher

import (
	"log/slog"
	"sync"
	"time"
)

// Debouncer coalesces rapid file events so one editor save does not trigger
// several re-slices. Events for the same path within the window merge:
//
//	CREATE then MODIFY -> CREATE (file is still new)
//	CREATE then DELETE -> dropped (never observable)
//	MODIFY then DELETE -> DELETE
//	DELETE then CREATE -> MODIFY (file was replaced)
//
// The window restarts on every event, so a burst flushes as one batch once
// the file system goes quiet.
type Debouncer struct {
	window  time.Duration
	mu      sync.Mutex
	pending map[string]*pendingEvent
	output  chan []FileEvent
	timer   *time.Timer
	stopped bool
}

type pendingEvent struct {
	event   FileEvent
	firstOp Operation
}

// NewDebouncer creates a new debouncer with the given window duration.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingEvent),
		output:  make(chan []FileEvent, 10),
	}
}

// Add adds an event to be debounced, merging it with any pending event for
// the same path.
func (d *Debouncer) Add(event FileEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if existing, ok := d.pending[event.Path]; ok {
		merged, keep := coalesce(existing.firstOp, existing.event, event)
		if !keep {
			delete(d.pending, event.Path)
		} else {
			existing.event = merged
		}
	} else {
		d.pending[event.Path] = &pendingEvent{
			event:   event,
			firstOp: event.Operation,
		}
	}

	d.scheduleFlush()
}

// coalesce merges an incoming event into the pending one. The first
// operation seen for the path decides the rule; keep reports false when the
// pair cancels out entirely.
func coalesce(first Operation, current, incoming FileEvent) (merged FileEvent, keep bool) {
	switch {
	case first == OpCreate && incoming.Operation == OpModify:
		// Still a fresh file as far as consumers know.
		return current, true
	case first == OpCreate && incoming.Operation == OpDelete:
		return FileEvent{}, false
	case first == OpDelete && incoming.Operation == OpCreate:
		incoming.Operation = OpModify
		return incoming, true
	default:
		return incoming, true
	}
}

// scheduleFlush restarts the flush timer for the debounce window.
func (d *Debouncer) scheduleFlush() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

// flush emits all pending events as one batch.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.pending) == 0 {
		return
	}

	events := make([]FileEvent, 0, len(d.pending))
	for _, pe := range d.pending {
		events = append(events, pe.event)
	}
	d.pending = make(map[string]*pendingEvent)

	select {
	case d.output <- events:
	default:
		slog.Warn("debouncer output full, dropping batch",
			slog.Int("batch_size", len(events)),
		)
	}
}

// Output returns the channel of debounced event batches.
func (d *Debouncer) Output() <-chan []FileEvent {
	return d.output
}

// Stop stops the debouncer and closes the output channel.
// Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.output)
}
