package fontfx

import (
	"image"
	"time"
)

// Sprite draws a texture, or a solid rectangle when created with
// NewSolidSprite.
type Sprite struct {
	VisualState

	// Source selects a sub-rectangle of the texture. Nil draws all of it.
	Source *image.Rectangle

	tex   Texture
	size  Vec2
	fill  Color
	solid bool
}

// NewSprite creates a sprite showing tex. Returns ErrNilTexture if tex is nil.
func NewSprite(tex Texture, pos Vec2, tint Color) (*Sprite, error) {
	if tex == nil {
		return nil, ErrNilTexture
	}
	return &Sprite{
		VisualState: NewVisualState(pos, tint),
		tex:         tex,
		size:        textureSize(tex),
	}, nil
}

// NewSolidSprite creates a sprite that is a size-pixel rectangle of color c.
// Its tint starts white.
func NewSolidSprite(pos, size Vec2, c Color) (*Sprite, error) {
	if size.X < 1 || size.Y < 1 {
		return nil, ErrInvalidSize
	}
	return &Sprite{
		VisualState: NewVisualState(pos, ColorWhite),
		size:        size,
		fill:        c.Clamp(),
		solid:       true,
	}, nil
}

// Texture returns the texture, or nil for a solid sprite.
func (s *Sprite) Texture() Texture { return s.tex }

// SetTexture replaces the texture. Returns ErrNilTexture if tex is nil.
func (s *Sprite) SetTexture(tex Texture) error {
	if tex == nil {
		return ErrNilTexture
	}
	s.tex = tex
	s.size = textureSize(tex)
	s.solid = false
	return nil
}

// Bounds returns the unscaled pixel size.
func (s *Sprite) Bounds() Vec2 { return s.size }

// Size returns the drawn size.
func (s *Sprite) Size() Vec2 { return s.size.Mul(s.Scale) }

// CenterOrigin pivots at the center of the texture.
func (s *Sprite) CenterOrigin() error { return s.CenterOn(s.size) }

// ScaleToViewport stretches the sprite to cover a w by h viewport.
func (s *Sprite) ScaleToViewport(w, h float64) {
	if s.size.X == 0 || s.size.Y == 0 {
		return
	}
	s.Scale = Vec2{w / s.size.X, h / s.size.Y}
}

// Update does nothing; a sprite is static.
func (s *Sprite) Update(dt time.Duration) {}

// Draw renders the sprite when visible.
func (s *Sprite) Draw(r Renderer) {
	if !s.visible {
		return
	}
	t := s.Transform()
	if s.solid {
		t.Tint = s.fill.Mul(t.Tint)
		r.DrawRect(s.size, t)
		return
	}
	r.DrawImage(s.tex, s.Source, t)
}
