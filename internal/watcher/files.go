package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher implements the Watcher interface for an explicit set of files,
// using fsnotify as the primary mechanism with stat polling as a fallback.
//
// The parent directories of the watched files are registered, not the files
// themselves: editors that replace a file on save (write temp, rename over
// target) would otherwise detach the watch on the first save. Events for
// unwatched siblings in those directories are filtered out.
type FileWatcher struct {
	fsWatcher      *fsnotify.Watcher
	poller         *PollingWatcher
	useFsnotify    bool
	debouncer      *Debouncer
	paths          map[string]struct{}
	dirs           []string
	events         chan []FileEvent
	errors         chan error
	stopCh         chan struct{}
	opts           Options
	mu             sync.RWMutex
	stopped        bool
	droppedBatches atomic.Uint64
}

var _ Watcher = (*FileWatcher)(nil)

// NewFileWatcher creates a watcher over the given files. Paths are resolved
// to absolute form and deduplicated; the files need not exist yet.
func NewFileWatcher(paths []string, opts Options) (*FileWatcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	opts = opts.WithDefaults()

	watched := make(map[string]struct{}, len(paths))
	dirSet := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve absolute path for %s: %w", path, err)
		}
		watched[abs] = struct{}{}
		dirSet[filepath.Dir(abs)] = struct{}{}
	}

	dirs := make([]string, 0, len(dirSet))
	for dir := range dirSet {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	w := &FileWatcher{
		debouncer: NewDebouncer(opts.DebounceWindow),
		paths:     watched,
		dirs:      dirs,
		events:    make(chan []FileEvent, opts.EventBufferSize),
		errors:    make(chan error, 10),
		stopCh:    make(chan struct{}),
		opts:      opts,
	}

	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		w.fsWatcher = fsw
		w.useFsnotify = true
	} else {
		w.useFsnotify = false
		w.poller = NewPollingWatcher(w.Paths(), opts.PollInterval)
	}

	return w, nil
}

// Start begins watching. It blocks until Stop is called or the context is
// cancelled.
func (w *FileWatcher) Start(ctx context.Context) error {
	go w.forwardDebounced(ctx)

	if w.useFsnotify {
		return w.startFsnotify(ctx)
	}
	return w.startPolling(ctx)
}

// startFsnotify registers the parent directories and runs the event loop.
func (w *FileWatcher) startFsnotify(ctx context.Context) error {
	for _, dir := range w.dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleFsnotifyEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.emitError(err)
		}
	}
}

// startPolling bridges the poller's events through the debouncer.
func (w *FileWatcher) startPolling(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			case event, ok := <-w.poller.Events():
				if !ok {
					return
				}
				w.debouncer.Add(event)
			case err, ok := <-w.poller.Errors():
				if !ok {
					return
				}
				w.emitError(err)
			}
		}
	}()

	return w.poller.Start(ctx)
}

// handleFsnotifyEvent filters and converts directory events. The registered
// directories report every sibling; only the watched files pass.
func (w *FileWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, ok := w.paths[path]; !ok {
		return
	}

	var op Operation
	switch {
	case event.Op&fsnotify.Create != 0:
		op = OpCreate
	case event.Op&fsnotify.Write != 0:
		op = OpModify
	case event.Op&fsnotify.Remove != 0:
		op = OpDelete
	case event.Op&fsnotify.Rename != 0:
		op = OpRename
	default:
		// Chmod and other noise
		return
	}

	w.debouncer.Add(FileEvent{
		Path:      path,
		Operation: op,
		Timestamp: time.Now(),
	})
}

// forwardDebounced forwards debounced batches to the output channel.
func (w *FileWatcher) forwardDebounced(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case events, ok := <-w.debouncer.Output():
			if !ok {
				return
			}
			if len(events) == 0 {
				continue
			}
			w.emitEvents(events)
		}
	}
}

// emitEvents sends a batch to the output channel without blocking.
func (w *FileWatcher) emitEvents(events []FileEvent) {
	w.mu.RLock()
	stopped := w.stopped
	w.mu.RUnlock()

	if stopped {
		return
	}

	select {
	case w.events <- events:
	default:
		count := w.droppedBatches.Add(1)
		slog.Warn("event buffer full, dropping batch",
			slog.Int("batch_size", len(events)),
			slog.Uint64("total_dropped_batches", count),
		)
	}
}

// emitError sends an error to the error channel without blocking.
func (w *FileWatcher) emitError(err error) {
	w.mu.RLock()
	stopped := w.stopped
	w.mu.RUnlock()

	if stopped {
		return
	}

	select {
	case w.errors <- err:
	default:
	}
}

// Stop stops the watcher and releases resources. Safe to call multiple times.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.stopped = true
	close(w.stopCh)

	w.debouncer.Stop()

	if w.useFsnotify && w.fsWatcher != nil {
		_ = w.fsWatcher.Close()
	}
	if w.poller != nil {
		_ = w.poller.Stop()
	}

	close(w.events)
	close(w.errors)
	return nil
}

// Events returns the channel of batched file events.
func (w *FileWatcher) Events() <-chan []FileEvent {
	return w.events
}

// Errors returns the channel of errors.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// DroppedBatches returns the number of batches dropped due to buffer overflow.
func (w *FileWatcher) DroppedBatches() uint64 {
	return w.droppedBatches.Load()
}

// WatcherType returns the mechanism in use ("fsnotify" or "polling").
func (w *FileWatcher) WatcherType() string {
	if w.useFsnotify {
		return "fsnotify"
	}
	return "polling"
}

// Paths returns the watched absolute paths in sorted order.
func (w *FileWatcher) Paths() []string {
	paths := make([]string, 0, len(w.paths))
	for path := range w.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
