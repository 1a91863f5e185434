// Package config provides configuration types and defaults for swatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/swatch/internal/log"
	"github.com/zjrosen/swatch/internal/tracing"
)

// Config holds all configuration options for swatch.
type Config struct {
	// PaletteDirs lists directories scanned for palette definition
	// files (*.yaml). ~/.swatch/palettes is always scanned in addition.
	PaletteDirs []string `mapstructure:"palette_dirs"`

	// AutoReload re-registers palettes when a watched directory changes.
	AutoReload bool `mapstructure:"auto_reload"`

	UI      UIConfig        `mapstructure:"ui"`
	Theme   ThemeConfig     `mapstructure:"theme"`
	Store   StoreConfig     `mapstructure:"store"`
	Tracing tracing.Config  `mapstructure:"tracing"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowIndexes   bool `mapstructure:"show_indexes"`    // Show registry indices next to palette names
	ShowStatusBar bool `mapstructure:"show_status_bar"` // Show status bar at bottom
	SwatchWidth   int  `mapstructure:"swatch_width"`    // Cells per color block in the swatch strip
}

// ThemeConfig holds theme customization for the browser chrome (not
// the palettes themselves).
type ThemeConfig struct {
	// Preset selects a built-in color theme. Unknown presets are
	// rejected when the theme is applied.
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// StoreConfig holds snapshot persistence configuration.
type StoreConfig struct {
	// Enabled controls whether registry snapshots are persisted.
	// Default: true
	Enabled *bool `mapstructure:"enabled"`

	// Path is the SQLite database file.
	// Default: ~/.swatch/swatch.db
	Path string `mapstructure:"path"`
}

// IsEnabled returns whether persistence is enabled (defaults to true if nil).
func (s StoreConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// DefaultStorePath returns the default snapshot database path.
// Returns ~/.swatch/swatch.db or empty string if home dir unavailable.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swatch", "swatch.db")
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.swatch/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swatch", "traces", "traces.jsonl")
}

// ValidatePaletteDirs checks palette directory configuration.
// Returns nil if dirs are valid or empty (user dir is always scanned).
func ValidatePaletteDirs(dirs []string) error {
	for i, dir := range dirs {
		if dir == "" {
			return fmt.Errorf("palette_dirs[%d]: path is empty", i)
		}
	}
	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.SwatchWidth < 0 {
		return fmt.Errorf("ui.swatch_width must not be negative, got %d", ui.SwatchWidth)
	}
	return nil
}

// ValidateTheme checks theme configuration for errors.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
		return nil
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if cfg.Enabled {
		if cfg.Exporter == "file" && cfg.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if cfg.Exporter == "otlp" && cfg.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if err := ValidatePaletteDirs(c.PaletteDirs); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	cfg := Config{
		AutoReload: true,
		UI: UIConfig{
			ShowIndexes:   true,
			ShowStatusBar: true,
			SwatchWidth:   4,
		},
		Theme: ThemeConfig{
			Mode: "",
		},
		Store: StoreConfig{
			Path: DefaultStorePath(),
		},
		Tracing: tracing.DefaultConfig(),
	}
	cfg.Tracing.FilePath = DefaultTracesFilePath()
	return cfg
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Swatch Configuration

# Extra directories scanned for palette definition files (*.yaml).
# ~/.swatch/palettes is always scanned.
# palette_dirs:
#   - /path/to/project/palettes

# Re-register palettes when a watched directory changes
auto_reload: true

# UI settings
ui:
  show_indexes: true      # Show registry indices next to palette names
  show_status_bar: true   # Show status bar at bottom
  swatch_width: 4         # Cells per color block in the swatch strip

# Browser chrome theme (palettes themselves come from the registry)
theme:
  # preset: catppuccin-mocha  # Built-in theme: default, catppuccin-mocha, nord, high-contrast
  # mode: dark            # Force "light" or "dark"; empty uses terminal detection
  #
  # Override specific colors:
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# Snapshot persistence - replays the registry on the next run
store:
  enabled: true
  # path: ~/.swatch/swatch.db

# Tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.swatch/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
