// Package watcher reports changes to an explicit set of files so watch mode
// can re-slice them as they are edited.
//
// The package implements a hybrid watching strategy:
//   - Primary: fsnotify for efficient event-based watching
//   - Fallback: stat polling for environments where fsnotify fails (network
//     mounts, some containers)
//
// Parent directories are registered rather than the files themselves, so
// editors that save by renaming a temp file over the target do not silently
// detach the watch. Events are debounced to coalesce rapid write bursts into
// a single batch.
//
// Usage:
//
//	w, err := watcher.NewFileWatcher(paths, watcher.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//
//	go w.Start(ctx)
//
//	for batch := range w.Events() {
//	    for _, event := range batch {
//	        switch event.Operation {
//	        case watcher.OpCreate, watcher.OpModify:
//	            // Re-slice the file
//	        case watcher.OpDelete:
//	            // Report it gone, keep watching for its return
//	        }
//	    }
//	}
package watcher
