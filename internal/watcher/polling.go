package watcher

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// PollingWatcher detects changes to a fixed set of files by comparing stat
// snapshots on an interval. It is the fallback when the platform watcher
// cannot start.
type PollingWatcher struct {
	interval time.Duration
	paths    []string
	state    map[string]fileSnapshot
	events   chan FileEvent
	errors   chan error
	stopCh   chan struct{}
	mu       sync.Mutex
	stopped  bool
}

type fileSnapshot struct {
	modTime time.Time
	size    int64
}

// NewPollingWatcher creates a polling watcher over the given absolute paths.
func NewPollingWatcher(paths []string, interval time.Duration) *PollingWatcher {
	return &PollingWatcher{
		interval: interval,
		paths:    paths,
		state:    make(map[string]fileSnapshot),
		events:   make(chan FileEvent, 100),
		errors:   make(chan error, 10),
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling. It blocks until Stop is called or the context is
// cancelled.
func (p *PollingWatcher) Start(ctx context.Context) error {
	p.scan()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = p.Stop()
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C:
			p.detectChanges()
		}
	}
}

// Stop stops the polling watcher. Safe to call multiple times.
func (p *PollingWatcher) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}

	p.stopped = true
	close(p.stopCh)
	close(p.events)
	close(p.errors)
	return nil
}

// Events returns the channel of file events.
func (p *PollingWatcher) Events() <-chan FileEvent {
	return p.events
}

// Errors returns the channel of errors.
func (p *PollingWatcher) Errors() <-chan error {
	return p.errors
}

// scan records the baseline snapshot for every watched file that exists.
// Files absent at start are picked up as creates on a later tick.
func (p *PollingWatcher) scan() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, path := range p.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		p.state[path] = fileSnapshot{modTime: info.ModTime(), size: info.Size()}
	}
}

// detectChanges stats every watched file and emits events for the deltas.
func (p *PollingWatcher) detectChanges() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, path := range p.paths {
		info, err := os.Stat(path)
		prev, existed := p.state[path]

		if err != nil {
			if os.IsNotExist(err) {
				if existed {
					delete(p.state, path)
					p.emitEvent(FileEvent{Path: path, Operation: OpDelete, Timestamp: time.Now()})
				}
				continue
			}
			select {
			case p.errors <- err:
			default:
			}
			continue
		}

		snapshot := fileSnapshot{modTime: info.ModTime(), size: info.Size()}
		switch {
		case !existed:
			p.state[path] = snapshot
			p.emitEvent(FileEvent{Path: path, Operation: OpCreate, Timestamp: time.Now()})
		case prev != snapshot:
			p.state[path] = snapshot
			p.emitEvent(FileEvent{Path: path, Operation: OpModify, Timestamp: time.Now()})
		}
	}
}

// emitEvent sends an event to the events channel.
// Must be called with lock held.
func (p *PollingWatcher) emitEvent(event FileEvent) {
	if p.stopped {
		return
	}

	select {
	case p.events <- event:
	default:
		slog.Warn("polling watcher buffer full, dropping event",
			slog.String("path", event.Path),
			slog.String("op", event.Operation.String()),
		)
	}
}
