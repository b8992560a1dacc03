package fontfx

import (
	"image"
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, origins, scales, speeds and sizes
// throughout the API.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec2One is the identity scale.
var Vec2One = Vec2{1, 1}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the componentwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

var (
	// ColorWhite is the default tint (no color modification).
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the default shadow color.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTransparent has every channel at zero.
	ColorTransparent = Color{}
)

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// Clamp returns c with every channel clamped to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1), clamp(c.A, 0, 1)}
}

// Mul returns the channelwise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale multiplies every channel by f and clamps each result to [0, c's channel].
// A negative f yields transparent, f above 1 leaves c unchanged.
func (c Color) Scale(f float64) Color {
	return Color{
		R: clamp(c.R*f, 0, c.R),
		G: clamp(c.G*f, 0, c.G),
		B: clamp(c.B*f, 0, c.B),
		A: clamp(c.A*f, 0, c.A),
	}
}

// RGBA8 returns the color as 8-bit channels, rounding to nearest.
func (c Color) RGBA8() (r, g, b, a uint8) {
	c = c.Clamp()
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), uint8(c.A*255 + 0.5)
}

// Mirror selects content flips applied at render time. Values can be
// combined with bitwise OR.
type Mirror uint8

const (
	MirrorHorizontal Mirror = 1 << iota // flip across the vertical axis
	MirrorVertical                      // flip across the horizontal axis

	MirrorNone Mirror = 0
)

// Transform is the fully resolved set of attributes a Renderer needs to draw
// one payload.
type Transform struct {
	Position Vec2
	Rotation float64 // radians
	Origin   Vec2    // pivot in content-local coordinates
	Scale    Vec2
	Tint     Color
	Mirror   Mirror
	Depth    float64
}

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// Texture is an image payload of known pixel bounds. *ebiten.Image and every
// image.Image satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// Renderer draws resolved payloads. It is the collaborator that sits between
// this package and an actual graphics backend. Objects never call it while
// invisible.
type Renderer interface {
	DrawText(font Font, text string, t Transform)
	// DrawImage draws tex, or the src sub-rectangle of it when src is non-nil.
	DrawImage(tex Texture, src *image.Rectangle, t Transform)
	// DrawRect draws a solid rectangle of the given size filled with t.Tint.
	DrawRect(size Vec2, t Transform)
}

// Object is an animated or static element driven by a per-frame clock tick.
type Object interface {
	Visual() *VisualState
	Update(dt time.Duration)
	Draw(r Renderer)
	CenterOrigin() error
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// approach moves v toward target by at most step (step is taken as a
// magnitude). The final step snaps exactly onto target.
func approach(v, target, step float64) float64 {
	step = math.Abs(step)
	if v < target {
		if v+step < target {
			return v + step
		}
		return target
	}
	if v > target {
		if v-step > target {
			return v - step
		}
		return target
	}
	return v
}

func textureSize(tex Texture) Vec2 {
	b := tex.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}
