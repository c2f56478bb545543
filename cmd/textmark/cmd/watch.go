package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/internal/watcher"
	"github.com/textmark/textmark/pkg/textslice"
)

// watchOptions holds CLI flags for the watch command.
type watchOptions struct {
	files    []string
	debounce string
	match    matchFlags
	render   renderFlags
}

func newWatchCmd() *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch TERM... --file FILE [flags]",
		Short: "Re-slice files whenever they change",
		Long: `Watch one or more files and print a fresh slicing of each file after
every change. Rapid edit bursts are debounced into a single update.

Uses native filesystem notifications when available and falls back to
polling otherwise.`,
		Example: `  textmark watch --file notes.txt alpha beta
  textmark watch --file a.md --file b.md --debounce 1s "TODO"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.files, "file", "f", nil, "File to watch (repeatable, required)")
	cmd.Flags().StringVar(&opts.debounce, "debounce", "", `Debounce window for change bursts (e.g. "500ms")`)
	opts.match.register(cmd)
	opts.render.register(cmd)

	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}

	return cmd
}

func runWatch(cmd *cobra.Command, terms []string, opts watchOptions) error {
	cfg := loadConfig()
	defer setupFileLogging(cfg.Log.Level)()

	mc, err := opts.match.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	rc, err := opts.render.resolve(cmd, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	renderer := render.NewRenderer(rc)
	styles := render.GetStyles(rc.NoColor)

	watchOpts := watcher.DefaultOptions()
	watchOpts.DebounceWindow = cfg.DebounceDuration()
	if cmd.Flags().Changed("debounce") {
		d, err := time.ParseDuration(opts.debounce)
		if err != nil {
			return fmt.Errorf("invalid --debounce value %q: %w", opts.debounce, err)
		}
		watchOpts.DebounceWindow = d
	}

	w, err := watcher.NewFileWatcher(opts.files, watchOpts)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	renderPass := func(path string) {
		text, label, err := readInput(cmd, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		spans, err := textslice.SliceText(text, terms, mc)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		heading := fmt.Sprintf("== %s (%s) ==", label, time.Now().Format("15:04:05"))
		fmt.Fprintln(cmd.OutOrStdout(), styles.Label.Render(heading))
		if err := renderer.Render(text, spans); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	// Initial slicing before any change arrives.
	for _, path := range w.Paths() {
		renderPass(path)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d file(s) via %s... (Ctrl+C to stop)\n",
		len(w.Paths()), w.WatcherType())
	slog.Info("watch_started",
		slog.Int("files", len(w.Paths())),
		slog.String("watcher", w.WatcherType()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Start(ctx)
	}()

	eventsCh := w.Events()
	// Goes nil once closed so select stops visiting it.
	watchErrs := w.Errors()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.ErrOrStderr(), "\nStopped.")
			return nil

		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil

		case batch, ok := <-eventsCh:
			if !ok {
				return nil
			}
			for _, ev := range batch {
				slog.Debug("watch_event",
					slog.String("path", ev.Path),
					slog.String("op", ev.Operation.String()))
				if ev.Operation == watcher.OpDelete {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s deleted, waiting for it to return\n", ev.Path)
					continue
				}
				renderPass(ev.Path)
			}

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			slog.Warn("watch_error", slog.String("error", err.Error()))
			fmt.Fprintf(cmd.ErrOrStderr(), "Watch error: %v\n", err)
		}
	}
}
