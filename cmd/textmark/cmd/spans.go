package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/pkg/textslice"
)

// spansOptions holds CLI flags for the spans command.
type spansOptions struct {
	file  string
	match matchFlags
}

func newSpansCmd() *cobra.Command {
	var opts spansOptions

	cmd := &cobra.Command{
		Use:   "spans TERM... [flags]",
		Short: "Emit the span partition as JSON",
		Long: `Emit the raw span partition as indented JSON.

Each span carries its byte offsets and whether it matched a term.
Spans are sorted, non-overlapping, and cover the input completely,
so concatenating the spans' slices of the input rebuilds it.`,
		Example: `  echo "hello world" | textmark spans hello
  textmark spans --file notes.txt alpha beta | jq '.[] | select(.matched)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpans(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `Input file ("-" or empty reads stdin)`)
	opts.match.register(cmd)

	return cmd
}

func runSpans(cmd *cobra.Command, terms []string, opts spansOptions) error {
	cfg := loadConfig()
	defer setupFileLogging(cfg.Log.Level)()

	mc, err := opts.match.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	text, _, err := readInput(cmd, opts.file)
	if err != nil {
		return err
	}

	spans, err := textslice.SliceText(text, terms, mc)
	if err != nil {
		return err
	}
	if spans == nil {
		spans = []textslice.Span{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(spans)
}
