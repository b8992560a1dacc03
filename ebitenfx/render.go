package ebitenfx

import (
	"cmp"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fontfx"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandText  CommandType = iota // a string in some Font
	CommandImage                    // a texture or a region of one
	CommandRect                     // a solid rectangle
)

// Command is a single draw instruction recorded by a Batch.
type Command struct {
	Type      CommandType
	Transform fontfx.Transform

	Font    fontfx.Font
	Text    string
	Texture fontfx.Texture
	Source  *image.Rectangle

	// Size is the unscaled content size in pixels. Mirroring flips the
	// content within this box.
	Size fontfx.Vec2

	order int // submission order, breaks depth ties
}

// compareCommands orders by depth, then by submission. order is unique
// within a batch, so no two commands compare equal.
func compareCommands(a, b Command) int {
	if c := cmp.Compare(a.Transform.Depth, b.Transform.Depth); c != 0 {
		return c
	}
	return cmp.Compare(a.order, b.order)
}

// GeoM builds the Ebitengine matrix for content of the given size drawn with
// t.
//
// Composition order:
//
//	Mirror (within size) -> Translate(-Origin) -> Scale -> Rotate -> Translate(Position)
func GeoM(t fontfx.Transform, size fontfx.Vec2) ebiten.GeoM {
	var g ebiten.GeoM
	if t.Mirror&fontfx.MirrorHorizontal != 0 {
		g.Scale(-1, 1)
		g.Translate(size.X, 0)
	}
	if t.Mirror&fontfx.MirrorVertical != 0 {
		g.Scale(1, -1)
		g.Translate(0, size.Y)
	}
	g.Translate(-t.Origin.X, -t.Origin.Y)
	g.Scale(t.Scale.X, t.Scale.Y)
	if t.Rotation != 0 {
		g.Rotate(t.Rotation)
	}
	g.Translate(t.Position.X, t.Position.Y)
	return g
}

// colorScale returns the premultiplied color scale for a straight-alpha tint.
func colorScale(c fontfx.Color) ebiten.ColorScale {
	c = c.Clamp()
	var cs ebiten.ColorScale
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}
