// Package cmd provides the CLI commands for textmark.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/textmark/textmark/internal/errors"
	"github.com/textmark/textmark/internal/logging"
	"github.com/textmark/textmark/internal/profiling"
	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/pkg/textslice"
	"github.com/textmark/textmark/pkg/version"
)

// Profiling flags
var (
	profileCPU   string
	profileMem   string
	profileTrace string
	profiler     = profiling.NewProfiler()
	cpuCleanup   func()
	traceCleanup func()
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// rootOptions holds CLI flags for the root slice command.
type rootOptions struct {
	files  []string
	match  matchFlags
	render renderFlags
}

// NewRootCmd creates the root command for the textmark CLI.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "textmark TERM... [flags]",
		Short: "Slice text into matched and unmatched spans",
		Long: `Textmark splits text into a complete partition of matched and
unmatched spans based on search terms, then renders the result with
the matches highlighted.

Every byte of the input lands in exactly one span, so the rendered
output reassembles the original text.

Reads stdin by default; use --file to slice files instead.`,
		Example: `  # Highlight terms from a pipe
  echo "hello world" | textmark hello

  # Slice a file with whole-word literal matching (the default)
  textmark --file notes.txt alpha beta

  # Regular expression terms, HTML output
  textmark --no-escape --format html --file doc.md 'ch[0-9]+'

  # Snippet mode: 30 bytes of context around each match
  textmark --file book.txt --context 30 whale`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSlice(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("textmark version {{.Version}}\n")

	cmd.Flags().StringSliceVarP(&opts.files, "file", "f", nil, `Input file (repeatable; "-" reads stdin)`)
	opts.match.register(cmd)
	opts.render.register(cmd)

	// Profiling flags
	cmd.PersistentFlags().StringVar(&profileCPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&profileMem, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&profileTrace, "profile-trace", "", "Write execution trace to file")

	// Debug logging flag
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.textmark/logs/")

	cmd.PersistentPreRunE = startProfilingAndLogging
	cmd.PersistentPostRunE = stopProfilingAndLogging

	cmd.AddCommand(newSpansCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newExploreCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startProfilingAndLogging starts CPU/trace profiling and debug logging if
// the flags are set.
func startProfilingAndLogging(_ *cobra.Command, _ []string) error {
	var err error

	if debugMode {
		logger, cleanup, err := logging.Setup(logging.DebugConfig())
		if err != nil {
			return fmt.Errorf("setup debug logging: %w", err)
		}
		loggingCleanup = cleanup
		slog.SetDefault(logger)
		slog.Info("debug_logging_enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
	}

	if profileCPU != "" {
		cpuCleanup, err = profiler.StartCPU(profileCPU)
		if err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
	}

	if profileTrace != "" {
		traceCleanup, err = profiler.StartTrace(profileTrace)
		if err != nil {
			if cpuCleanup != nil {
				cpuCleanup()
			}
			return fmt.Errorf("start trace: %w", err)
		}
	}

	return nil
}

// stopProfilingAndLogging stops profiling and logging, and writes the
// memory profile if requested.
func stopProfilingAndLogging(_ *cobra.Command, _ []string) error {
	if cpuCleanup != nil {
		cpuCleanup()
		cpuCleanup = nil
	}

	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}

	if profileMem != "" {
		if err := profiler.WriteHeap(profileMem); err != nil {
			return fmt.Errorf("write memory profile: %w", err)
		}
	}

	if loggingCleanup != nil {
		slog.Info("debug_logging_stopped")
		loggingCleanup()
		loggingCleanup = nil
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, errors.FormatForCLI(err))
	}
	return err
}

// setupFileLogging routes slog output to the log file for the duration of a
// command. Returns a cleanup function. When --debug is set the persistent
// hook already configured the default logger, so this is a no-op.
func setupFileLogging(level string) func() {
	if debugMode {
		return func() {}
	}

	logCfg := logging.DefaultConfig()
	if level != "" {
		logCfg.Level = level
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return func() {}
	}
	slog.SetDefault(logger)
	return cleanup
}

// readInput reads one input source. Path "-" or "" reads stdin.
func readInput(cmd *cobra.Command, path string) (text, label string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", errors.IOError("read stdin", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.IOError(fmt.Sprintf("read %s", path), err).
			WithSuggestion("check the path passed to --file")
	}
	return string(data), path, nil
}

// sliceResult is one input's slicing outcome, kept in input order.
type sliceResult struct {
	label string
	text  string
	spans []textslice.Span
}

// sliceAll slices every input concurrently. Results keep input order.
func sliceAll(ctx context.Context, cmd *cobra.Command, files, terms []string, mc textslice.Config) ([]sliceResult, error) {
	results := make([]sliceResult, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			text, label, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			spans, err := textslice.SliceText(text, terms, mc)
			if err != nil {
				return err
			}
			results[i] = sliceResult{label: label, text: text, spans: spans}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSlice(ctx context.Context, cmd *cobra.Command, terms []string, opts rootOptions) error {
	cfg := loadConfig()
	defer setupFileLogging(cfg.Log.Level)()

	mc, err := opts.match.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	files := opts.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	slog.Info("slice_started",
		slog.Int("terms", len(terms)),
		slog.Int("files", len(files)))

	results, err := sliceAll(ctx, cmd, files, terms, mc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rc, err := opts.render.resolve(cmd, cfg, out)
	if err != nil {
		return err
	}
	renderer := render.NewRenderer(rc)

	// File headings separate outputs when slicing several inputs, except in
	// JSON mode where they would corrupt the document stream.
	heading := len(results) > 1 && render.ResolveFormat(rc.Format, out) != render.FormatJSON
	styles := render.GetStyles(rc.NoColor)

	for i, res := range results {
		if heading {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, styles.Label.Render(res.label))
		}
		if err := renderer.Render(res.text, res.spans); err != nil {
			return err
		}
	}

	slog.Info("slice_complete", slog.Int("files", len(results)))
	return nil
}
