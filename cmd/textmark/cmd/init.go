package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/configs"
	"github.com/textmark/textmark/internal/config"
	"github.com/textmark/textmark/internal/output"
	"github.com/textmark/textmark/pkg/version"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project configuration file",
		Long: `Create a .textmark.yaml template in the project root.

The template lists every option with its default value commented out;
uncomment only what you want to change. textmark works without any
configuration file.`,
		Example: `  # Create .textmark.yaml in the project root
  textmark init

  # Replace an existing .textmark.yaml with a fresh template
  textmark init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout())

	out.Statusf("🚀", "textmark %s - Initializing...", version.Version)
	out.Newline()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := config.FindProjectRoot(cwd)
	if err != nil {
		root = cwd
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	out.Statusf("📁", "Project: %s", absRoot)
	out.Newline()

	if err := generateProjectYAML(out, absRoot, force); err != nil {
		return err
	}

	if !config.UserConfigExists() {
		out.Newline()
		out.Status("💡", "For machine-wide settings (color, log level):")
		out.Status("", "   Run 'textmark config init' to create a user config")
	}

	return nil
}

// generateProjectYAML writes the .textmark.yaml template into the project root.
//
// The template is embedded at build time from configs/project-config.example.yaml
// (see configs/embed.go), so it ships inside binary distributions. Existing
// files are preserved unless force is set; both .yaml and .yml extensions
// count as existing.
func generateProjectYAML(out *output.Writer, projectRoot string, force bool) error {
	yamlPath := filepath.Join(projectRoot, ".textmark.yaml")

	if !force {
		if _, err := os.Stat(yamlPath); err == nil {
			out.Status("ℹ️ ", "Existing .textmark.yaml preserved")
			out.Status("💡", "Use --force to replace it with a fresh template")
			return nil
		}
		ymlPath := filepath.Join(projectRoot, ".textmark.yml")
		if _, err := os.Stat(ymlPath); err == nil {
			out.Status("ℹ️ ", "Existing .textmark.yml found, skipping template")
			return nil
		}
	}

	if err := os.WriteFile(yamlPath, []byte(configs.ProjectConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write .textmark.yaml: %w", err)
	}

	out.Statusf("📝", "Created %s", yamlPath)
	out.Success("Initialization complete!")
	return nil
}
