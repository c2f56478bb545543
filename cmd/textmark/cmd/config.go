package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/textmark/textmark/configs"
	"github.com/textmark/textmark/internal/config"
	"github.com/textmark/textmark/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long: `Manage the user/global configuration file.

User configuration holds machine-specific settings that apply to ALL
projects on this machine, such as:
  - Default match options (escaping, boundary mode, case)
  - Output format and color preferences
  - Watch debounce window
  - Default log level

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/textmark/config.yaml)
  3. Project config (.textmark.yaml)
  4. Environment variables (TEXTMARK_*)`,
		Example: `  # Create user config from template
  textmark config init

  # Show effective configuration (merged from all sources)
  textmark config show

  # Print user config file path
  textmark config path

  # Restore the most recent backup
  textmark config restore`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigRestoreCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Create the user/global configuration file from a template.

The configuration file is created at ~/.config/textmark/config.yaml
(or $XDG_CONFIG_HOME/textmark/config.yaml if XDG_CONFIG_HOME is set).`,
		Example: `  # Create user config
  textmark config init

  # Upgrade existing config with new defaults
  textmark config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		source     string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging all sources.

By default, shows the merged configuration from:
  1. Hardcoded defaults
  2. User config (~/.config/textmark/config.yaml)
  3. Project config (.textmark.yaml)
  4. Environment variables`,
		Example: `  # Show merged configuration
  textmark config show

  # Show as JSON
  textmark config show --json

  # Show only user config
  textmark config show --source user`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, jsonOutput, source)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&source, "source", "merged", "Config source: merged, user, project, defaults")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		Long:  `Print the path to the user configuration file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return nil
		},
	}
}

func newConfigRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [backup-path]",
		Short: "Restore user configuration from a backup",
		Long: `Restore the user configuration file from a backup.

Backups are created automatically when 'config init --force' upgrades
an existing file. Without an argument, lists the available backups.`,
		Example: `  # List available backups
  textmark config restore

  # Restore a specific backup
  textmark config restore ~/.config/textmark/config.yaml.bak.20260823-104500`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigRestore(cmd, args)
		},
	}
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout())

	configPath := config.GetUserConfigPath()
	configDir := config.GetUserConfigDir()

	if config.UserConfigExists() {
		if !force {
			out.Warning("User configuration already exists")
			out.Statusf("📁", "Location: %s", configPath)
			out.Newline()
			out.Status("💡", "Use --force to upgrade with new defaults (preserves your settings)")
			return nil
		}

		// Force mode: backup, merge new defaults, write
		return runConfigUpgrade(out, configPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(configs.UserConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out.Success("Created user configuration")
	out.Statusf("📁", "Location: %s", configPath)
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Edit the file to customize settings")
	out.Status("", "  2. Run 'textmark config show' to verify")

	return nil
}

// runConfigUpgrade performs backup + merge for an existing config.
func runConfigUpgrade(out *output.Writer, configPath string) error {
	backupPath, err := config.BackupUserConfig()
	if err != nil {
		return fmt.Errorf("failed to backup config: %w", err)
	}

	existingCfg, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("failed to load existing config: %w", err)
	}
	if existingCfg == nil {
		// Should not happen since we checked UserConfigExists
		return fmt.Errorf("config file disappeared during upgrade")
	}

	newFields := existingCfg.MergeNewDefaults()

	if err := existingCfg.WriteYAML(configPath); err != nil {
		return fmt.Errorf("failed to write upgraded config: %w", err)
	}

	out.Success("Configuration upgraded")
	out.Statusf("📁", "Location: %s", configPath)
	out.Statusf("💾", "Backup: %s", backupPath)
	out.Newline()

	if len(newFields) > 0 {
		out.Status("✨", "New options added with defaults:")
		for _, field := range newFields {
			out.Statusf("", "  - %s", field)
		}
	} else {
		out.Status("✓", "Your configuration is already up to date")
	}

	out.Newline()
	out.Status("💡", "Your existing settings have been preserved")

	return nil
}

func runConfigShow(cmd *cobra.Command, jsonOutput bool, source string) error {
	out := output.New(cmd.OutOrStdout())

	var cfg *config.Config
	var sourceDesc string

	switch source {
	case "merged":
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		root, err := config.FindProjectRoot(cwd)
		if err != nil {
			root = cwd
		}

		cfg, err = config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		sourceDesc = "merged (defaults + user + project + env)"

	case "user":
		configPath := config.GetUserConfigPath()
		if !config.UserConfigExists() {
			out.Warning("No user configuration file found")
			out.Statusf("📁", "Expected at: %s", configPath)
			out.Status("💡", "Run 'textmark config init' to create one")
			return nil
		}

		cfg = config.NewConfig()
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read user config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse user config: %w", err)
		}
		sourceDesc = fmt.Sprintf("user (%s)", configPath)

	case "project":
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		root, err := config.FindProjectRoot(cwd)
		if err != nil {
			root = cwd
		}

		yamlPath := filepath.Join(root, ".textmark.yaml")
		ymlPath := filepath.Join(root, ".textmark.yml")

		var configPath string
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else if _, err := os.Stat(ymlPath); err == nil {
			configPath = ymlPath
		} else {
			out.Warning("No project configuration file found")
			out.Statusf("📁", "Expected at: %s", yamlPath)
			out.Status("💡", "Run 'textmark init' to create one")
			return nil
		}

		cfg = config.NewConfig()
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read project config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse project config: %w", err)
		}
		sourceDesc = fmt.Sprintf("project (%s)", configPath)

	case "defaults":
		cfg = config.NewConfig()
		sourceDesc = "defaults (hardcoded)"

	default:
		return fmt.Errorf("invalid source: %s (use: merged, user, project, defaults)", source)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		out.Statusf("📋", "Configuration source: %s", sourceDesc)
		out.Newline()

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	return nil
}

func runConfigRestore(cmd *cobra.Command, args []string) error {
	out := output.New(cmd.OutOrStdout())

	if len(args) == 0 {
		backups, err := config.ListUserConfigBackups()
		if err != nil {
			return fmt.Errorf("failed to list backups: %w", err)
		}
		if len(backups) == 0 {
			out.Warning("No configuration backups found")
			out.Status("💡", "Backups are created by 'textmark config init --force'")
			return nil
		}

		out.Statusf("📋", "Available backups (newest first):")
		for _, b := range backups {
			out.Statusf("", "  %s", b)
		}
		out.Newline()
		out.Status("💡", "Restore one with 'textmark config restore <backup-path>'")
		return nil
	}

	backupPath := args[0]
	if err := config.RestoreUserConfig(backupPath); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}

	out.Success("Configuration restored")
	out.Statusf("📁", "Location: %s", config.GetUserConfigPath())
	out.Statusf("💾", "From: %s", backupPath)

	return nil
}
