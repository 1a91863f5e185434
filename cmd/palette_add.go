package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

var (
	addName   string
	addColors []string
)

var paletteAddCmd = &cobra.Command{
	Use:   "palette:add <id>",
	Short: "Register a palette from the command line",
	Long: `Register a single palette without opening the TUI.

Every one of the eight slots must be given exactly once with --color.
The new entry is appended at the next free index and, when the store is
enabled, persisted for subsequent runs. Re-adding an existing id is a
no-op.

Examples:
  swatch palette:add storm-gray --name "Storm Gray" \
    --color outline=#16191D --color shadow=#343B44 \
    --color base=#6E7B8A --color baseLight=#97A5B4 \
    --color trim=#4C5662 --color trimLight=#BAC7D4 \
    --color accent=#C7743B --color highlight=#E8EEF4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		slots, err := parseSlotColors(addColors)
		if err != nil {
			return err
		}

		name := addName
		if name == "" {
			name = id
		}

		svc, cleanup, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		added, err := svc.Register(context.Background(), id, name, slots)
		if err != nil {
			return fmt.Errorf("registering palette: %w", err)
		}

		if !added {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already registered\n", id)
			return nil
		}
		index, _ := svc.Registry().IndexOf(id)
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s at index %d\n", id, index)
		return nil
	},
}

// parseSlotColors turns repeated slot=#RRGGBB flags into domain slot
// colors, requiring each slot exactly once.
func parseSlotColors(pairs []string) (map[palette.Slot]palette.Color, error) {
	slots := make(map[palette.Slot]palette.Color, palette.NumSlots)
	for _, pair := range pairs {
		slotName, hex, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --color %q, expected slot=#RRGGBB", pair)
		}

		slot := palette.Slot(slotName)
		if !validSlot(slot) {
			return nil, fmt.Errorf("unknown slot %q", slotName)
		}
		if _, dup := slots[slot]; dup {
			return nil, fmt.Errorf("slot %q given more than once", slotName)
		}

		color, err := palette.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", slotName, err)
		}
		slots[slot] = color
	}

	if len(slots) != palette.NumSlots {
		missing := make([]string, 0, palette.NumSlots)
		for _, slot := range palette.SlotOrder {
			if _, ok := slots[slot]; !ok {
				missing = append(missing, string(slot))
			}
		}
		return nil, fmt.Errorf("missing --color for slots: %s", strings.Join(missing, ", "))
	}
	return slots, nil
}

func validSlot(s palette.Slot) bool {
	for _, slot := range palette.SlotOrder {
		if slot == s {
			return true
		}
	}
	return false
}

func init() {
	paletteAddCmd.Flags().StringVarP(&addName, "name", "n", "", "Human-readable palette name (defaults to the id)")
	paletteAddCmd.Flags().StringArrayVar(&addColors, "color", nil, "Slot color as slot=#RRGGBB (repeat for all eight slots)")
	rootCmd.AddCommand(paletteAddCmd)
}
