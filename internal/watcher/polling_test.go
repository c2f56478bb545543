package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// startPoller runs the watcher in the background and waits out the baseline
// scan so the test's first mutation lands on a later tick.
func startPoller(t *testing.T, w *PollingWatcher) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = w.Start(ctx)
	}()
	time.Sleep(100 * time.Millisecond)
	return cancel
}

// waitEvent blocks until one event arrives or the timeout fires.
func waitEvent(t *testing.T, w *PollingWatcher, timeout time.Duration) FileEvent {
	t.Helper()
	select {
	case event := <-w.Events():
		return event
	case err := <-w.Errors():
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(timeout):
		t.Fatal("timeout waiting for poll event")
	}
	return FileEvent{}
}

// ============================================================================
// Change Detection
// ============================================================================

func TestPollingWatcher_DetectsModification(t *testing.T) {
	// Given: a watched file with a baseline snapshot
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("first draft"), 0o644))

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// When: the file content changes (size differs, mtime granularity aside)
	require.NoError(t, os.WriteFile(path, []byte("second draft with more words"), 0o644))

	// Then: a modify event names the file
	event := waitEvent(t, w, 2*time.Second)
	assert.Equal(t, OpModify, event.Operation)
	assert.Equal(t, path, event.Path)

	require.NoError(t, w.Stop())
}

func TestPollingWatcher_DetectsDeletion(t *testing.T) {
	// Given: a watched file that exists at baseline
	dir := t.TempDir()
	path := filepath.Join(dir, "doomed.txt")
	require.NoError(t, os.WriteFile(path, []byte("short lived"), 0o644))

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// When: the file is removed
	require.NoError(t, os.Remove(path))

	// Then: a delete event is emitted
	event := waitEvent(t, w, 2*time.Second)
	assert.Equal(t, OpDelete, event.Operation)
	assert.Equal(t, path, event.Path)

	require.NoError(t, w.Stop())
}

func TestPollingWatcher_DetectsLateCreation(t *testing.T) {
	// Given: a watched path that does not exist yet
	dir := t.TempDir()
	path := filepath.Join(dir, "pending.txt")

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// When: the file appears
	require.NoError(t, os.WriteFile(path, []byte("finally here"), 0o644))

	// Then: a create event is emitted
	event := waitEvent(t, w, 2*time.Second)
	assert.Equal(t, OpCreate, event.Operation)
	assert.Equal(t, path, event.Path)

	require.NoError(t, w.Stop())
}

func TestPollingWatcher_RecreateAfterDelete(t *testing.T) {
	// Given: a watched file
	dir := t.TempDir()
	path := filepath.Join(dir, "cycle.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// When: the file is deleted and then rewritten
	require.NoError(t, os.Remove(path))
	first := waitEvent(t, w, 2*time.Second)
	assert.Equal(t, OpDelete, first.Operation)

	require.NoError(t, os.WriteFile(path, []byte("v2 rewritten"), 0o644))

	// Then: the reappearance is a create
	second := waitEvent(t, w, 2*time.Second)
	assert.Equal(t, OpCreate, second.Operation)

	require.NoError(t, w.Stop())
}

func TestPollingWatcher_UnchangedFile_Silent(t *testing.T) {
	// Given: a watched file that never changes
	dir := t.TempDir()
	path := filepath.Join(dir, "static.txt")
	require.NoError(t, os.WriteFile(path, []byte("immutable"), 0o644))

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// Then: several poll cycles pass without an event
	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for unchanged file: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, w.Stop())
}

// ============================================================================
// Lifecycle
// ============================================================================

func TestPollingWatcher_Stop_ClosesChannels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "any.txt")

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)
	cancel := startPoller(t, w)
	defer cancel()

	// When: stopped
	require.NoError(t, w.Stop())

	// Then: the events channel closes and Stop stays idempotent
	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel close")
	}
	assert.NoError(t, w.Stop())
}

func TestPollingWatcher_ContextCancel_StopsStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "any.txt")

	w := NewPollingWatcher([]string{path}, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	// When: the context is cancelled
	cancel()

	// Then: Start returns the context error
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for Start to return")
	}
}
