package fontfx

import (
	"time"
)

// PanelState is the phase of a Panel.
type PanelState int

const (
	Collapsed PanelState = iota
	ExpandingHorizontally
	ExpandingVertically
	Open
	CollapsingVertically
	CollapsingHorizontally
)

var panelStateNames = [...]string{
	"Collapsed",
	"ExpandingHorizontally",
	"ExpandingVertically",
	"Open",
	"CollapsingVertically",
	"CollapsingHorizontally",
}

func (s PanelState) String() string {
	if s < 0 || int(s) >= len(panelStateNames) {
		return "PanelState(?)"
	}
	return panelStateNames[s]
}

// Panel is a solid rectangle that opens wide-then-tall and closes
// tall-then-wide. Collapsed, it is scaled down to one pixel on each axis and
// hidden. An optional image can be centered on it.
type Panel struct {
	Sprite
	stateNotifier

	// Speed is the scale change per second on each axis.
	Speed Vec2

	state    PanelState
	minScale Vec2

	img       Texture
	imgOffset Vec2
	imgTint   Color
}

// NewPanel creates a collapsed, hidden panel of the given pixel size, tinted
// c. Returns ErrInvalidSize if either side is under one pixel.
func NewPanel(size, pos Vec2, c Color, cfg PanelConfig) (*Panel, error) {
	if size.X < 1 || size.Y < 1 {
		return nil, ErrInvalidSize
	}
	p := &Panel{
		Sprite: Sprite{
			VisualState: NewVisualState(pos, c),
			size:        size,
			fill:        ColorWhite,
			solid:       true,
		},
		Speed:    cfg.Speed,
		state:    Collapsed,
		minScale: Vec2{1 / size.X, 1 / size.Y},
	}
	p.Scale = p.minScale
	p.visible = false
	_ = p.CenterOrigin()
	return p, nil
}

// State returns the current phase.
func (p *Panel) State() PanelState { return p.state }

// MinScale returns the collapsed scale.
func (p *Panel) MinScale() Vec2 { return p.minScale }

// SetImage centers tex on the panel, drawn with tint above the panel color.
// Returns ErrNilTexture for a nil tex and ErrInvalidSize when tex is larger
// than the panel.
func (p *Panel) SetImage(tex Texture, tint Color) error {
	if tex == nil {
		return ErrNilTexture
	}
	sz := textureSize(tex)
	if sz.X > p.size.X || sz.Y > p.size.Y {
		return ErrInvalidSize
	}
	p.img = tex
	p.imgOffset = p.size.Sub(sz).Scale(0.5)
	p.imgTint = tint.Clamp()
	return nil
}

// Image returns the centered image, or nil.
func (p *Panel) Image() Texture { return p.img }

// Expand starts opening. It succeeds from Collapsed or while collapsing, in
// which case it resumes on the axis that was shrinking. Otherwise it does
// nothing and returns false.
func (p *Panel) Expand() bool {
	switch p.state {
	case Collapsed, CollapsingHorizontally:
		p.SetVisible(true)
		p.setState(ExpandingHorizontally)
	case CollapsingVertically:
		p.SetVisible(true)
		p.setState(ExpandingVertically)
	default:
		return false
	}
	return true
}

// Collapse starts closing. It succeeds from Open or while expanding, in which
// case it resumes on the axis that was growing. Otherwise it does nothing and
// returns false.
func (p *Panel) Collapse() bool {
	switch p.state {
	case Open, ExpandingVertically:
		p.setState(CollapsingVertically)
	case ExpandingHorizontally:
		p.setState(CollapsingHorizontally)
	default:
		return false
	}
	return true
}

// Reset snaps the panel shut: minimum scale, hidden, Collapsed.
func (p *Panel) Reset() {
	p.Scale = p.minScale
	p.SetVisible(false)
	p.setState(Collapsed)
}

// Update advances the animation by dt. It does nothing while invisible.
func (p *Panel) Update(dt time.Duration) {
	if !p.visible {
		return
	}
	secs := dt.Seconds()
	switch p.state {
	case ExpandingHorizontally:
		if p.Scale.X < 1 {
			p.Scale.X = clamp(p.Scale.X+secs*p.Speed.X, p.minScale.X, 1)
		} else {
			p.setState(ExpandingVertically)
		}
	case ExpandingVertically:
		if p.Scale.Y < 1 {
			p.Scale.Y = clamp(p.Scale.Y+secs*p.Speed.Y, p.minScale.Y, 1)
		} else {
			p.setState(Open)
		}
	case CollapsingVertically:
		if p.Scale.Y > p.minScale.Y {
			p.Scale.Y = clamp(p.Scale.Y-secs*p.Speed.Y, p.minScale.Y, 1)
		} else {
			p.setState(CollapsingHorizontally)
		}
	case CollapsingHorizontally:
		if p.Scale.X > p.minScale.X {
			p.Scale.X = clamp(p.Scale.X-secs*p.Speed.X, p.minScale.X, 1)
		} else {
			p.SetVisible(false)
			p.setState(Collapsed)
		}
	}
}

// Draw renders the panel and its image when visible.
func (p *Panel) Draw(r Renderer) {
	if !p.visible {
		return
	}
	p.Sprite.Draw(r)
	if p.img == nil {
		return
	}
	t := p.Transform()
	t.Origin = t.Origin.Sub(p.imgOffset)
	t.Tint = p.imgTint
	r.DrawImage(p.img, nil, t)
}

func (p *Panel) setState(s PanelState) {
	p.state = s
	p.notify(p, KindPanel, s)
}
