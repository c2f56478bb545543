package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/internal/ui"
	"github.com/textmark/textmark/pkg/textslice"
)

// statsOptions holds CLI flags for the stats command.
type statsOptions struct {
	file       string
	jsonOutput bool
	noColor    bool
	match      matchFlags
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats TERM... [flags]",
		Short: "Show match statistics for an input",
		Long: `Show slicing statistics for one input:
  - Input size and modification time
  - Span and match counts for the partition
  - Matched bytes and coverage percentage
  - Raw occurrence count per term (before overlap merging)`,
		Example: `  textmark stats --file notes.txt alpha beta
  cat report.md | textmark stats --json "result"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `Input file ("-" or empty reads stdin)`)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	opts.match.register(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, terms []string, opts statsOptions) error {
	cfg := loadConfig()
	defer setupFileLogging(cfg.Log.Level)()

	mc, err := opts.match.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	text, label, err := readInput(cmd, opts.file)
	if err != nil {
		return err
	}

	info, err := collectStats(text, label, opts.file, terms, mc)
	if err != nil {
		return err
	}

	slog.Info("stats_collected",
		slog.String("label", label),
		slog.Int("matches", info.Matches))

	noColor := opts.noColor || render.DetectNoColor()
	renderer := ui.NewStatsRenderer(cmd.OutOrStdout(), noColor)

	if opts.jsonOutput {
		return renderer.RenderJSON(info)
	}
	return renderer.Render(info)
}

// collectStats slices the text and gathers partition and per-term numbers.
func collectStats(text, label, path string, terms []string, mc textslice.Config) (ui.StatsInfo, error) {
	info := ui.StatsInfo{
		Label: label,
		Size:  int64(len(text)),
	}

	// A real file contributes its stat fields; stdin only its length.
	if path != "" && path != "-" {
		if fi, err := os.Stat(path); err == nil {
			info.Size = fi.Size()
			info.Modified = fi.ModTime()
		}
	}

	spans, err := textslice.SliceText(text, terms, mc)
	if err != nil {
		return ui.StatsInfo{}, err
	}

	info.Spans = len(spans)
	for _, s := range spans {
		if s.Matched {
			info.Matches++
			info.MatchedBytes += int64(s.Len())
		}
	}
	if len(text) > 0 {
		info.Coverage = float64(info.MatchedBytes) / float64(len(text))
	}

	// Per-term counts come from scanning each term alone, so overlaps
	// between terms still count individually.
	for _, term := range uniqueTerms(terms) {
		occ, err := textslice.Scan(text, []string{term}, mc)
		if err != nil {
			return ui.StatsInfo{}, err
		}
		info.Terms = append(info.Terms, ui.TermCount{Term: term, Count: len(occ)})
	}

	return info, nil
}

// uniqueTerms drops repeated terms, keeping first-seen order.
func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		unique = append(unique, term)
	}
	return unique
}
