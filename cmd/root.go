package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/swatch/internal/app"
	"github.com/zjrosen/swatch/internal/authority"
	"github.com/zjrosen/swatch/internal/config"
	"github.com/zjrosen/swatch/internal/infrastructure/sqlite"
	"github.com/zjrosen/swatch/internal/log"
	application "github.com/zjrosen/swatch/internal/palette/application"
	palette "github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/paths"
	"github.com/zjrosen/swatch/internal/tracing"
	"github.com/zjrosen/swatch/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// registryVersion is the semantic version of the bundled palette set.
// Bump when the built-in table changes shape.
const registryVersion = "1.0.0"

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "swatch",
	Short:   "A terminal ui for sprite palette registries",
	Long:    `A terminal user interface for browsing a versioned registry of 8-color sprite palettes, with YAML palette loading, live directory reload and snapshot persistence.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.swatch/swatch.yaml)")
	rootCmd.Flags().StringSliceP("dir", "d", nil,
		"palette directory to scan (repeatable, overrides palette_dirs)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable palette reload when a watched directory changes")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to ~/.swatch/debug.log")

	// Bind flags to viper
	_ = viper.BindPFlag("palette_dirs", rootCmd.Flags().Lookup("dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_indexes", defaults.UI.ShowIndexes)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.swatch_width", defaults.UI.SwatchWidth)
	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .swatch.yaml (current directory)
		// 2. ~/.swatch/swatch.yaml (user config)
		if _, err := os.Stat(".swatch.yaml"); err == nil {
			viper.SetConfigFile(".swatch.yaml")
		} else {
			viper.AddConfigPath(paths.ConfigDir())
			viper.SetConfigName("swatch")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := paths.DefaultConfigPath()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// buildService assembles the registry, authority manager and service
// from the loaded config, restores the snapshot and loads every
// palette source. The returned cleanup closes the service and its
// snapshot store.
func buildService(cfg config.Config) (*application.Service, func(), error) {
	ctx := context.Background()

	// Instance arbitration: if another copy of the registry code already
	// installed an instance in this process, the higher version wins and
	// we use whichever instance comes back.
	reg := authority.ProcessShared().Offer(palette.NewRegistry(registryVersion))
	mgr := authority.NewManager(reg, authority.ProcessSlot(), nil)

	opts := application.Options{}

	if cfg.Store.IsEnabled() {
		db, err := sqlite.NewDB(paths.ExpandHome(cfg.Store.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("opening snapshot store: %w", err)
		}
		opts.Snapshots = db.Palettes()
	}

	var provider *tracing.Provider
	if cfg.Tracing.Enabled {
		p, err := tracing.NewProvider(cfg.Tracing)
		if err != nil {
			log.ErrorErr(log.CatConfig, "tracing disabled", err)
		} else {
			provider = p
			opts.Tracer = provider.Tracer()
		}
	}

	svc := application.NewService(reg, mgr, opts)
	cleanup := func() {
		_ = svc.Close()
		if provider != nil {
			_ = provider.Shutdown(context.Background())
		}
	}

	// Replay the snapshot before any registration so restored entries
	// land on their original indices.
	if _, err := svc.Restore(ctx); err != nil {
		log.ErrorErr(log.CatStore, "snapshot restore failed", err)
	}
	svc.RegisterBuiltins(ctx)

	for _, dir := range cfg.PaletteDirs {
		resolved := paths.ResolvePaletteDir(dir)
		if _, err := svc.LoadDir(ctx, resolved); err != nil {
			log.ErrorErr(log.CatLoader, "loading palette directory", err, "dir", resolved)
		}
	}
	svc.LoadUserPalettes(ctx)

	return svc, cleanup, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		closeLog, err := log.Init(filepath.Join(paths.ConfigDir(), "debug.log"))
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer closeLog()
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	// Handle --no-auto-reload flag (negated logic)
	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	resolved := make([]string, len(cfg.PaletteDirs))
	for i, dir := range cfg.PaletteDirs {
		resolved[i] = paths.ResolvePaletteDir(dir)
	}
	cfg.PaletteDirs = resolved

	svc, cleanup, err := buildService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	model := app.New(svc, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
