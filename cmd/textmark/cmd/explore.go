package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/internal/errors"
	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/internal/ui"
)

// exploreOptions holds CLI flags for the explore command.
type exploreOptions struct {
	file    string
	noColor bool
	match   matchFlags
}

func newExploreCmd() *cobra.Command {
	var opts exploreOptions

	cmd := &cobra.Command{
		Use:   "explore [TERM...] --file FILE",
		Short: "Interactively slice a file",
		Long: `Open an interactive explorer for one file. Edit the search terms and
watch the partition update live; toggle regex, boundary, and case
matching without leaving the view.

The explorer takes over the terminal, so the input must come from a
file rather than stdin.`,
		Example: `  textmark explore --file notes.txt
  textmark explore --file chapter.md alpha beta`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Input file to explore (required)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	opts.match.register(cmd)

	return cmd
}

func runExplore(cmd *cobra.Command, terms []string, opts exploreOptions) error {
	cfg := loadConfig()
	defer setupFileLogging(cfg.Log.Level)()

	if opts.file == "" || opts.file == "-" {
		return errors.ValidationError("explore requires --file", nil).
			WithSuggestion("the explorer needs the terminal, so input cannot come from stdin")
	}

	mc, err := opts.match.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	text, label, err := readInput(cmd, opts.file)
	if err != nil {
		return err
	}

	slog.Info("explore_started",
		slog.String("label", label),
		slog.Int("terms", len(terms)))

	return ui.RunExplorer(ui.ExplorerConfig{
		Text:    text,
		Label:   label,
		Terms:   terms,
		Match:   mc,
		NoColor: opts.noColor || render.DetectNoColor(),
	})
}
