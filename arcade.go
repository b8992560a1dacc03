package fontfx

import (
	"time"
)

// ColorChange is passed to ArcadeFont.OnColorChange before the active color
// advances. Setting Cancel keeps the current color for another interval.
type ColorChange struct {
	Index  int
	Color  Color
	Cancel bool
}

// ArcadeFont cycles its tint through a list of colors.
type ArcadeFont struct {
	Label

	// OnColorChange, when set, runs before every advance.
	OnColorChange func(*ColorChange)

	colors  []Color
	current int
	cps     float64
	delay   time.Duration
	elapsed time.Duration
}

// NewArcadeFont creates a color-cycling font tinted with colors[0].
// Returns ErrNoColors when colors is empty.
func NewArcadeFont(font Font, text string, pos Vec2, cfg ArcadeConfig, colors ...Color) (*ArcadeFont, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	a := &ArcadeFont{
		Label: Label{
			VisualState: NewVisualState(pos, colors[0]),
			Shadow:      DefaultShadow(pos),
			font:        font,
			text:        text,
		},
		cps: cfg.CyclesPerSecond,
	}
	a.setColors(colors)
	return a, nil
}

// Colors returns a copy of the color list.
func (a *ArcadeFont) Colors() []Color {
	return append([]Color(nil), a.colors...)
}

// SetColors replaces the color list and restarts from its first color.
// Returns ErrNoColors, leaving the font unchanged, when colors is empty.
func (a *ArcadeFont) SetColors(colors ...Color) error {
	if len(colors) == 0 {
		return ErrNoColors
	}
	a.setColors(colors)
	a.current = 0
	a.elapsed = 0
	a.Tint = a.colors[0]
	return nil
}

// Current returns the index of the active color.
func (a *ArcadeFont) Current() int { return a.current }

// CyclesPerSecond returns how many full passes over the list happen per second.
func (a *ArcadeFont) CyclesPerSecond() float64 { return a.cps }

// SetCyclesPerSecond changes the cycle rate. A non-positive rate advances
// on every tick.
func (a *ArcadeFont) SetCyclesPerSecond(cps float64) {
	a.cps = cps
	a.recalc()
}

// Delay returns the time each color is shown.
func (a *ArcadeFont) Delay() time.Duration { return a.delay }

// Reset returns to the first color with a cleared timer.
func (a *ArcadeFont) Reset() {
	a.current = 0
	a.elapsed = 0
	a.Tint = a.colors[0]
}

// Update accumulates dt and, once a full delay has passed, advances to the
// next color unless OnColorChange cancels. The timer restarts either way.
func (a *ArcadeFont) Update(dt time.Duration) {
	a.elapsed += dt
	if a.elapsed < a.delay {
		return
	}
	a.elapsed = 0
	next := (a.current + 1) % len(a.colors)
	if a.OnColorChange != nil {
		ev := &ColorChange{Index: next, Color: a.colors[next]}
		a.OnColorChange(ev)
		if ev.Cancel {
			return
		}
	}
	a.current = next
	a.Tint = a.colors[next]
}

func (a *ArcadeFont) setColors(colors []Color) {
	a.colors = make([]Color, len(colors))
	for i, c := range colors {
		a.colors[i] = c.Clamp()
	}
	a.recalc()
}

func (a *ArcadeFont) recalc() {
	if a.cps <= 0 {
		a.delay = 0
		return
	}
	a.delay = time.Duration(float64(time.Second) / a.cps / float64(len(a.colors)))
}
