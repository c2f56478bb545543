// Package config loads textmark configuration from YAML files and
// environment variables.
//
// Precedence, lowest to highest:
//  1. Hardcoded defaults
//  2. User config (~/.config/textmark/config.yaml)
//  3. Project config (.textmark.yaml in project root)
//  4. Environment variables (TEXTMARK_*)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete textmark configuration.
type Config struct {
	Version int          `yaml:"version" json:"version"`
	Match   MatchConfig  `yaml:"match" json:"match"`
	Render  RenderConfig `yaml:"render" json:"render"`
	Watch   WatchConfig  `yaml:"watch" json:"watch"`
	Log     LogConfig    `yaml:"log" json:"log"`
}

// MatchConfig configures how search terms are turned into patterns.
type MatchConfig struct {
	// Escape treats terms as literal text rather than regular expressions.
	Escape bool `yaml:"escape" json:"escape"`

	// Boundary selects word-boundary anchoring: none, start, end, or both.
	Boundary string `yaml:"boundary" json:"boundary"`

	// CaseSensitive disables case folding during matching.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`
}

// RenderConfig configures how sliced text is rendered.
type RenderConfig struct {
	// Format selects the renderer: auto, ansi, html, marker, or json.
	// "auto" picks ansi on a TTY and marker otherwise.
	Format string `yaml:"format" json:"format"`

	// MarkTag is the HTML element wrapped around matched spans.
	MarkTag string `yaml:"mark_tag" json:"mark_tag"`

	// Context is the number of bytes of surrounding text shown around
	// each match in snippet mode. 0 renders the full text.
	Context int `yaml:"context" json:"context"`

	// Color controls ANSI color output: auto, always, or never.
	Color string `yaml:"color" json:"color"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is how long to coalesce file events before re-rendering.
	Debounce string `yaml:"debounce" json:"debounce"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Match: MatchConfig{
			Escape:        true,
			Boundary:      "both",
			CaseSensitive: false,
		},
		Render: RenderConfig{
			Format:  "auto",
			MarkTag: "mark",
			Context: 0,
			Color:   "auto",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/textmark/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/textmark/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "textmark", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback - should rarely happen
		return filepath.Join(os.TempDir(), ".config", "textmark", "config.yaml")
	}
	return filepath.Join(home, ".config", "textmark", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user configuration.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists returns true if the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// Load loads configuration starting from the specified directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User/global config (~/.config/textmark/config.yaml)
//  3. Project config (.textmark.yaml in dir)
//  4. Environment variables (TEXTMARK_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	// Step 1: Apply user/global config (if it exists)
	userPath := GetUserConfigPath()
	if fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	// Step 2: Apply project config (overrides user config)
	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	// Step 3: Apply environment variable overrides (highest precedence)
	cfg.applyEnvOverrides()

	// Step 4: Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadUserConfig loads only the user configuration file on top of defaults.
// Returns nil config and nil error if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()
	if !fileExists(configPath) {
		return nil, nil // No user config is fine
	}

	cfg := NewConfig()
	if err := cfg.loadYAML(configPath); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}
	return cfg, nil
}

// loadFromFile attempts to load configuration from .textmark.yaml or .textmark.yml.
func (c *Config) loadFromFile(dir string) error {
	// Try .yaml first (takes precedence)
	yamlPath := filepath.Join(dir, ".textmark.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return c.loadYAML(yamlPath)
	}

	// Try .yml as fallback
	ymlPath := filepath.Join(dir, ".textmark.yml")
	if _, err := os.Stat(ymlPath); err == nil {
		return c.loadYAML(ymlPath)
	}

	// No config file is fine - use defaults
	return nil
}

// fileConfig mirrors Config with pointer fields so an explicit false or zero
// in YAML is distinguishable from an absent key during merge. Without this,
// `escape: false` would be indistinguishable from leaving escape unset.
type fileConfig struct {
	Version *int `yaml:"version"`
	Match   struct {
		Escape        *bool   `yaml:"escape"`
		Boundary      *string `yaml:"boundary"`
		CaseSensitive *bool   `yaml:"case_sensitive"`
	} `yaml:"match"`
	Render struct {
		Format  *string `yaml:"format"`
		MarkTag *string `yaml:"mark_tag"`
		Context *int    `yaml:"context"`
		Color   *string `yaml:"color"`
	} `yaml:"render"`
	Watch struct {
		Debounce *string `yaml:"debounce"`
	} `yaml:"watch"`
	Log struct {
		Level *string `yaml:"level"`
	} `yaml:"log"`
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges set values from a parsed file into c.
func (c *Config) mergeWith(other *fileConfig) {
	if other.Version != nil {
		c.Version = *other.Version
	}

	// Match
	if other.Match.Escape != nil {
		c.Match.Escape = *other.Match.Escape
	}
	if other.Match.Boundary != nil {
		c.Match.Boundary = *other.Match.Boundary
	}
	if other.Match.CaseSensitive != nil {
		c.Match.CaseSensitive = *other.Match.CaseSensitive
	}

	// Render
	if other.Render.Format != nil {
		c.Render.Format = *other.Render.Format
	}
	if other.Render.MarkTag != nil {
		c.Render.MarkTag = *other.Render.MarkTag
	}
	if other.Render.Context != nil {
		c.Render.Context = *other.Render.Context
	}
	if other.Render.Color != nil {
		c.Render.Color = *other.Render.Color
	}

	// Watch
	if other.Watch.Debounce != nil {
		c.Watch.Debounce = *other.Watch.Debounce
	}

	// Log
	if other.Log.Level != nil {
		c.Log.Level = *other.Log.Level
	}
}

// applyEnvOverrides applies TEXTMARK_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TEXTMARK_ESCAPE"); v != "" {
		c.Match.Escape = parseBool(v)
	}
	if v := os.Getenv("TEXTMARK_BOUNDARY"); v != "" {
		c.Match.Boundary = v
	}
	if v := os.Getenv("TEXTMARK_CASE_SENSITIVE"); v != "" {
		c.Match.CaseSensitive = parseBool(v)
	}
	if v := os.Getenv("TEXTMARK_FORMAT"); v != "" {
		c.Render.Format = v
	}
	if v := os.Getenv("TEXTMARK_MARK_TAG"); v != "" {
		c.Render.MarkTag = v
	}
	if v := os.Getenv("TEXTMARK_CONTEXT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Render.Context = n
		}
	}
	if v := os.Getenv("TEXTMARK_COLOR"); v != "" {
		c.Render.Color = v
	}
	if v := os.Getenv("TEXTMARK_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
	if v := os.Getenv("TEXTMARK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// parseBool parses env-style boolean values.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	validBoundaries := map[string]bool{"none": true, "start": true, "end": true, "both": true}
	if !validBoundaries[strings.ToLower(c.Match.Boundary)] {
		return fmt.Errorf("match.boundary must be 'none', 'start', 'end', or 'both', got %s", c.Match.Boundary)
	}

	validFormats := map[string]bool{"auto": true, "ansi": true, "html": true, "marker": true, "json": true}
	if !validFormats[strings.ToLower(c.Render.Format)] {
		return fmt.Errorf("render.format must be 'auto', 'ansi', 'html', 'marker', or 'json', got %s", c.Render.Format)
	}

	if c.Render.MarkTag == "" {
		return fmt.Errorf("render.mark_tag must not be empty")
	}

	if c.Render.Context < 0 {
		return fmt.Errorf("render.context must be non-negative, got %d", c.Render.Context)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Render.Color)] {
		return fmt.Errorf("render.color must be 'auto', 'always', or 'never', got %s", c.Render.Color)
	}

	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("watch.debounce is not a valid duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Log.Level)
	}

	return nil
}

// DebounceDuration returns the parsed watch debounce interval.
// Falls back to the default when unset or invalid.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeNewDefaults adds new default fields while preserving existing values.
// Returns a list of field names that were added with their default values.
// Used by `textmark config init --force` to upgrade older config files.
func (c *Config) MergeNewDefaults() []string {
	defaults := NewConfig()
	var added []string

	if c.Match.Boundary == "" {
		c.Match.Boundary = defaults.Match.Boundary
		added = append(added, "match.boundary")
	}
	if c.Render.Format == "" {
		c.Render.Format = defaults.Render.Format
		added = append(added, "render.format")
	}
	if c.Render.MarkTag == "" {
		c.Render.MarkTag = defaults.Render.MarkTag
		added = append(added, "render.mark_tag")
	}
	if c.Render.Color == "" {
		c.Render.Color = defaults.Render.Color
		added = append(added, "render.color")
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = defaults.Watch.Debounce
		added = append(added, "watch.debounce")
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
		added = append(added, "log.level")
	}
	// Booleans can't distinguish "not set" from "set to false",
	// so escape and case_sensitive are never auto-migrated.

	return added
}

// FindProjectRoot finds the project root directory.
// It looks for a .git directory or .textmark.yaml/.yml file by walking up
// the directory tree. Returns the starting directory if nothing is found.
func FindProjectRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absDir
	for {
		if dirExists(filepath.Join(currentDir, ".git")) {
			return currentDir, nil
		}

		if fileExists(filepath.Join(currentDir, ".textmark.yaml")) ||
			fileExists(filepath.Join(currentDir, ".textmark.yml")) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, return original directory
			return absDir, nil
		}
		currentDir = parentDir
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists checks if a directory exists.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
