package palette

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/swatch/internal/palette/domain"
)

const validPaletteYAML = `palettes:
  - id: storm-gray
    name: Storm Gray
    colors:
      outline: "#1A1B1E"
      shadow: "#2E2F33"
      base: "#6B7280"
      baseLight: "#9CA3AF"
      trim: "#4B5563"
      trimLight: "#D1D5DB"
      accent: "#60A5FA"
      highlight: "#F3F4F6"
`

func TestLoadPalettesFromYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/team.yaml": {Data: []byte(validPaletteYAML)},
		"palettes/more.yml": {Data: []byte(`palettes:
  - id: moss-green
    colors:
      outline: "#14261A"
      shadow: "#1E3A26"
      base: "#3F6212"
      baseLight: "#84CC16"
      trim: "#365314"
      trimLight: "#BEF264"
      accent: "#FACC15"
      highlight: "#F7FEE7"
`)},
		"palettes/readme.md": {Data: []byte("# not a palette")},
	}

	defs, err := LoadPalettesFromYAML(fsys, "palettes")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	byID := make(map[string]PaletteDef, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	require.Equal(t, "Storm Gray", byID["storm-gray"].Name)
	require.Equal(t, "palettes/team.yaml", byID["storm-gray"].Source)
	require.Equal(t, "", byID["moss-green"].Name)
}

func TestLoadPalettesFromYAML_MalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/bad.yaml": {Data: []byte("palettes: [not: {valid")},
	}
	_, err := LoadPalettesFromYAML(fsys, "palettes")
	require.Error(t, err)
}

func TestLoadPalettesFromYAML_MissingID(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/anon.yaml": {Data: []byte(`palettes:
  - name: No ID
    colors:
      outline: "#000000"
`)},
	}
	_, err := LoadPalettesFromYAML(fsys, "palettes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing id")
}

func TestLoadPalettesFromYAML_EmptyDir(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/.keep": {Data: nil},
	}
	defs, err := LoadPalettesFromYAML(fsys, "palettes")
	require.NoError(t, err)
	require.Empty(t, defs)
}

func TestPaletteDefSlots(t *testing.T) {
	def := PaletteDef{
		ID: "storm-gray",
		Colors: map[string]string{
			"outline":   "#1A1B1E",
			"shadow":    "#2E2F33",
			"base":      "#6B7280",
			"baseLight": "#9CA3AF",
			"trim":      "#4B5563",
			"trimLight": "#D1D5DB",
			"accent":    "#60A5FA",
			"highlight": "#F3F4F6",
		},
	}

	slots, err := def.Slots()
	require.NoError(t, err)
	require.Len(t, slots, palette.NumSlots)
	require.Equal(t, palette.Color{R: 0x60, G: 0xA5, B: 0xFA}, slots[palette.SlotAccent])
}

func TestPaletteDefSlots_Errors(t *testing.T) {
	base := map[string]string{
		"outline":   "#1A1B1E",
		"shadow":    "#2E2F33",
		"base":      "#6B7280",
		"baseLight": "#9CA3AF",
		"trim":      "#4B5563",
		"trimLight": "#D1D5DB",
		"accent":    "#60A5FA",
		"highlight": "#F3F4F6",
	}

	tests := []struct {
		name   string
		mutate func(map[string]string)
		want   string
	}{
		{
			name:   "missing slot",
			mutate: func(m map[string]string) { delete(m, "accent") },
			want:   "missing color",
		},
		{
			name:   "bad hex",
			mutate: func(m map[string]string) { m["base"] = "#GGGGGG" },
			want:   "slot",
		},
		{
			name:   "unknown slot",
			mutate: func(m map[string]string) { m["glow"] = "#FFFFFF" },
			want:   "unknown slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := make(map[string]string, len(base))
			for k, v := range base {
				colors[k] = v
			}
			tt.mutate(colors)

			_, err := PaletteDef{ID: "x", Colors: colors}.Slots()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
