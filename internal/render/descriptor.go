// Package render synchronizes host-owned render descriptors with the
// palette registry's growth. A palette-bearing sprite sheet carries one
// frame row per registered palette, so its descriptor's frame height
// must track the registry count.
package render

// PaletteAssetPrefix is the fixed asset-path prefix under which
// palette-bearing sprite sheets live. Descriptors outside this prefix
// are only synchronized when explicitly marked as base descriptors.
const PaletteAssetPrefix = "sprites/skins/"

// Descriptor is a host-owned render descriptor. The registry never
// creates or destroys descriptors; the synchronizer only conditionally
// rewrites FrameHeight after growth.
type Descriptor struct {
	// SpritePathPrefix is the asset-path prefix the descriptor slices
	// frames from.
	SpritePathPrefix string

	// FrameHeight is the number of frame rows the descriptor slices the
	// sheet into. For palette-bearing sheets this equals the palette
	// count at the time the descriptor was last synchronized.
	FrameHeight int
}
