package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/internal/config"
	"github.com/textmark/textmark/internal/errors"
	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/pkg/textslice"
)

// matchFlags are the term-matching flags shared by the slicing commands.
// Flag values override the config file only when explicitly set.
type matchFlags struct {
	escape        bool
	noEscape      bool
	boundary      string
	caseSensitive bool
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.escape, "escape", true, "Treat terms as literal text")
	cmd.Flags().BoolVar(&f.noEscape, "no-escape", false, "Treat terms as regular expressions")
	cmd.Flags().StringVar(&f.boundary, "boundary", "", "Word boundary anchoring: none, start, end, or both")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "Match case exactly")
}

// resolve merges config-file defaults with explicitly set flags.
func (f *matchFlags) resolve(cmd *cobra.Command, cfg *config.Config) (textslice.Config, error) {
	mc := textslice.Config{
		Escape:        cfg.Match.Escape,
		CaseSensitive: cfg.Match.CaseSensitive,
	}

	boundary := cfg.Match.Boundary
	if cmd.Flags().Changed("boundary") {
		boundary = f.boundary
	}
	mode, err := textslice.ParseBoundary(boundary)
	if err != nil {
		return textslice.Config{}, errors.ValidationError(err.Error(), err)
	}
	mc.Boundary = mode

	switch {
	case cmd.Flags().Changed("no-escape"):
		mc.Escape = !f.noEscape
	case cmd.Flags().Changed("escape"):
		mc.Escape = f.escape
	}

	if cmd.Flags().Changed("case-sensitive") {
		mc.CaseSensitive = f.caseSensitive
	}

	return mc, nil
}

// renderFlags are the output flags shared by the rendering commands.
type renderFlags struct {
	format  string
	markTag string
	context int
	noColor bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: auto, ansi, html, marker, or json")
	cmd.Flags().StringVar(&f.markTag, "mark-tag", "", "HTML element wrapped around matches")
	cmd.Flags().IntVar(&f.context, "context", 0, "Bytes of context shown around matches (0 shows everything)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
}

// resolve merges config-file defaults with explicitly set flags into a
// renderer configuration writing to out.
func (f *renderFlags) resolve(cmd *cobra.Command, cfg *config.Config, out io.Writer) (render.Config, error) {
	name := cfg.Render.Format
	if cmd.Flags().Changed("format") {
		name = f.format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return render.Config{}, errors.ValidationError(err.Error(), err)
	}

	markTag := cfg.Render.MarkTag
	if cmd.Flags().Changed("mark-tag") {
		markTag = f.markTag
	}

	context := cfg.Render.Context
	if cmd.Flags().Changed("context") {
		context = f.context
	}

	return render.NewConfig(out,
		render.WithFormat(format),
		render.WithMarkTag(markTag),
		render.WithContext(context),
		render.WithNoColor(f.resolveNoColor(cfg.Render.Color)),
	), nil
}

// resolveNoColor combines the --no-color flag, the config color mode, and
// the NO_COLOR environment convention.
func (f *renderFlags) resolveNoColor(mode string) bool {
	if f.noColor {
		return true
	}
	switch mode {
	case "always":
		return false
	case "never":
		return true
	default:
		return render.DetectNoColor()
	}
}

// loadConfig loads configuration from the working directory's project root,
// falling back to defaults when no config can be loaded.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.NewConfig()
	}

	root, err := config.FindProjectRoot(cwd)
	if err != nil {
		root = cwd
	}

	cfg, err := config.Load(root)
	if err != nil {
		slog.Warn("config_load_failed", slog.String("error", err.Error()))
		return config.NewConfig()
	}
	return cfg
}
