package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/internal/errors"
	"github.com/textmark/textmark/internal/logging"
	"github.com/textmark/textmark/internal/render"
)

// logsOptions holds CLI flags for the logs command.
type logsOptions struct {
	follow  bool
	lines   int
	level   string
	grep    string
	noColor bool
	logFile string
}

func newLogsCmd() *cobra.Command {
	var opts logsOptions

	cmd := &cobra.Command{
		Use:   "logs [flags]",
		Short: "View textmark log files",
		Long: `View and follow textmark's structured log output.

Logs are written when commands run with --debug, or whenever file
logging is enabled in the configuration.`,
		Example: `  textmark logs
  textmark logs -f
  textmark logs -n 200 --level error
  textmark logs --grep "slice_complete"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "Follow the log output (like tail -f)")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&opts.level, "level", "", "Filter by level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.grep, "grep", "", "Filter by regular expression")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&opts.logFile, "file", "", "Log file path (defaults to the global log)")

	return cmd
}

func runLogs(cmd *cobra.Command, opts logsOptions) error {
	path, err := logging.FindLogFile(opts.logFile)
	if err != nil {
		return errors.IOError(err.Error(), err).
			WithSuggestion("run a command with --debug to generate logs")
	}

	var pattern *regexp.Regexp
	if opts.grep != "" {
		pattern, err = regexp.Compile(opts.grep)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("invalid --grep pattern %q", opts.grep), err)
		}
	}

	viewer := logging.NewViewer(logging.ViewerConfig{
		Level:   opts.level,
		Pattern: pattern,
		NoColor: opts.noColor || render.DetectNoColor(),
	}, cmd.OutOrStdout())

	fmt.Fprintf(cmd.ErrOrStderr(), "Log file: %s\n", path)
	fmt.Fprintln(cmd.ErrOrStderr(), "---")

	if opts.follow {
		return runLogsFollow(cmd, viewer, path)
	}

	entries, err := viewer.Tail(path, opts.lines)
	if err != nil {
		return err
	}
	viewer.Print(entries)
	return nil
}

func runLogsFollow(cmd *cobra.Command, viewer *logging.Viewer, path string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	entries := make(chan logging.LogEntry, 100)
	errCh := make(chan error, 1)

	go func() {
		errCh <- viewer.Follow(ctx, path, entries)
	}()

	out := cmd.OutOrStdout()
	for {
		select {
		case entry := <-entries:
			fmt.Fprintln(out, viewer.FormatEntry(entry))

		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil

		case <-ctx.Done():
			fmt.Fprintln(cmd.ErrOrStderr(), "\n---\nStopped.")
			return nil
		}
	}
}
