package fontfx

import (
	"time"
)

// DefaultShadowOffset is the distance of a default shadow from its text:
// left by this amount and down by the same.
const DefaultShadowOffset = 4

// Shadow is a second copy of the text drawn behind it. Position is absolute,
// not relative to the text; effects that move the text move the shadow by the
// same delta.
type Shadow struct {
	Enabled  bool
	Position Vec2
	Color    Color
}

// DefaultShadow returns an enabled black shadow offset from pos by
// DefaultShadowOffset.
func DefaultShadow(pos Vec2) Shadow {
	return Shadow{
		Enabled:  true,
		Position: Vec2{pos.X - DefaultShadowOffset, pos.Y + DefaultShadowOffset},
		Color:    ColorBlack,
	}
}

// shadowed is implemented by objects carrying a Shadow, so that composites
// can offset it along with the object's own position.
type shadowed interface {
	ShadowState() *Shadow
}

// Label is a static line of text with an optional shadow.
type Label struct {
	VisualState
	Shadow Shadow

	font Font
	text string
}

// NewLabel creates a visible label at pos. Returns ErrNilFont if font is nil.
// The shadow starts disabled.
func NewLabel(font Font, text string, pos Vec2, tint Color) (*Label, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	return &Label{
		VisualState: NewVisualState(pos, tint),
		Shadow:      Shadow{Position: pos, Color: ColorBlack},
		font:        font,
		text:        text,
	}, nil
}

// Font returns the measuring font.
func (l *Label) Font() Font { return l.font }

// SetFont replaces the font. A nil font is ignored.
func (l *Label) SetFont(f Font) {
	if f != nil {
		l.font = f
	}
}

// Text returns the current content.
func (l *Label) Text() string { return l.text }

// SetText replaces the content.
func (l *Label) SetText(s string) { l.text = s }

// AppendText appends s to the content.
func (l *Label) AppendText(s string) { l.text += s }

// SetShadow replaces the shadow.
func (l *Label) SetShadow(sh Shadow) { l.Shadow = sh }

// ShadowState returns the label's shadow for in-place edits.
func (l *Label) ShadowState() *Shadow { return &l.Shadow }

// Measure returns the unscaled size of the current content.
func (l *Label) Measure() Vec2 {
	w, h := l.font.MeasureString(l.text)
	return Vec2{w, h}
}

// Size returns the drawn size: content size times scale.
func (l *Label) Size() Vec2 {
	return l.Measure().Mul(l.Scale)
}

// CenterOrigin pivots rotation and scale at the center of the content.
// Returns ErrZeroExtent, a no-op, when there is no text.
func (l *Label) CenterOrigin() error {
	if l.text == "" {
		return ErrZeroExtent
	}
	return l.CenterOn(l.Measure())
}

// Update does nothing; a label is static.
func (l *Label) Update(dt time.Duration) {}

// Draw renders the shadow (if enabled) and then the text.
func (l *Label) Draw(r Renderer) {
	if !l.visible || l.text == "" {
		return
	}
	drawText(r, l.font, l.text, &l.VisualState, &l.Shadow)
}

func drawText(r Renderer, f Font, text string, v *VisualState, sh *Shadow) {
	t := v.Transform()
	if sh != nil && sh.Enabled {
		st := t
		st.Position = sh.Position
		st.Tint = sh.Color
		r.DrawText(f, text, st)
	}
	r.DrawText(f, text, t)
}
