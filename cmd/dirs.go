package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/swatch/internal/config"
	"github.com/zjrosen/swatch/internal/paths"
)

// configFileForSave returns the path palette_dirs edits are written to.
func configFileForSave() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return paths.DefaultConfigPath()
}

var dirsAddCmd = &cobra.Command{
	Use:   "dirs:add <path>",
	Short: "Add a palette directory to the config",
	Long: `Add a directory to palette_dirs in the config file.

The directory is scanned for *.yaml palette definition files on every
start, and watched for changes when auto_reload is on. Adding an
already-configured directory is a no-op.

Examples:
  swatch dirs:add ./palettes
  swatch dirs:add ~/art/skins`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := paths.ResolvePaletteDir(args[0])
		if err := config.AddPaletteDir(configFileForSave(), dir, cfg.PaletteDirs); err != nil {
			return fmt.Errorf("adding palette directory: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", dir)
		return nil
	},
}

var dirsRemoveCmd = &cobra.Command{
	Use:   "dirs:remove <path>",
	Short: "Remove a palette directory from the config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := paths.ResolvePaletteDir(args[0])
		if err := config.RemovePaletteDir(configFileForSave(), dir, cfg.PaletteDirs); err != nil {
			return fmt.Errorf("removing palette directory: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirsAddCmd)
	rootCmd.AddCommand(dirsRemoveCmd)
}
