package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/swatch/internal/presentation"
)

var listFilter string

var paletteListCmd = &cobra.Command{
	Use:   "palette:list",
	Short: "List all registered palettes",
	Long: `List every palette in the registry as JSON.

The registry is assembled the same way the TUI assembles it: built-in
palettes first, then the persisted snapshot, then the configured
palette directories and the user palette directory.

Examples:
  # List all palettes
  swatch palette:list

  # Filter by id or name substring
  swatch palette:list --filter olive

  # Parse specific fields with jq
  swatch palette:list | jq '.[].id'
  swatch palette:list | jq '.[] | {id, index}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		entries := svc.Registry().Entries()
		dtos := presentation.FromEntries(entries)

		if listFilter != "" {
			query := strings.ToLower(listFilter)
			filtered := dtos[:0]
			for _, dto := range dtos {
				if strings.Contains(strings.ToLower(dto.ID), query) ||
					strings.Contains(strings.ToLower(dto.Name), query) {
					filtered = append(filtered, dto)
				}
			}
			dtos = filtered
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatPalettes(dtos)
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "palette:show <id>",
	Short: "Show a single palette",
	Long: `Print one palette as JSON, looked up by id.

Examples:
  swatch palette:show archive-olive
  swatch palette:show harbor-blue | jq '.colors.base'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		entry, ok := svc.Registry().Get(args[0])
		if !ok {
			return fmt.Errorf("palette %q not registered", args[0])
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatPalette(presentation.FromEntry(entry))
	},
}

func init() {
	paletteListCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Filter by id or name substring")
	rootCmd.AddCommand(paletteListCmd)
	rootCmd.AddCommand(paletteShowCmd)
}
