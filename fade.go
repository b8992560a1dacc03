package fontfx

import (
	"math"
	"time"
)

// FadeType is the direction of a FadingFont.
type FadeType int

const (
	FadeIn FadeType = iota
	FadeOut
)

func (t FadeType) String() string {
	if t == FadeOut {
		return "Out"
	}
	return "In"
}

// FadeState is the phase of a FadingFont.
type FadeState int

const (
	NotFading FadeState = iota
	Fading
	// TargetValueReached lasts exactly one tick, then the fade returns to
	// NotFading on its own.
	TargetValueReached
)

var fadeStateNames = [...]string{"NotFading", "Fading", "TargetValueReached"}

func (s FadeState) String() string {
	if s < 0 || int(s) >= len(fadeStateNames) {
		return "FadeState(?)"
	}
	return fadeStateNames[s]
}

const alphaEpsilon = 1e-9

// FadingFont is text whose alpha moves toward a target by a fixed step per tick.
// Its tint and shadow color are the starting colors scaled by alpha, each
// channel clamped to [0, starting channel].
type FadingFont struct {
	Label
	stateNotifier

	cfg     FadeConfig
	typ     FadeType
	state   FadeState
	initial FadeState
	alpha   float64

	startTint   Color
	startShadow Color
}

// NewFadingFont creates a fade of the given direction. A FadeIn normally runs from
// alpha 0 to 1 and a FadeOut from 1 to 0; see FadeConfig.Reversed.
func NewFadingFont(font Font, text string, pos Vec2, tint Color, typ FadeType, cfg FadeConfig) (*FadingFont, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	f := &FadingFont{
		Label: Label{
			VisualState: NewVisualState(pos, tint),
			Shadow:      DefaultShadow(pos),
			font:        font,
			text:        text,
		},
		cfg:     cfg,
		typ:     typ,
		initial: NotFading,
	}
	if cfg.StartFading {
		f.initial = Fading
	}
	f.startTint = f.Tint
	f.startShadow = f.Shadow.Color.Clamp()
	f.rewind()
	return f, nil
}

// Reversed returns c with start and target swapped, turning fade-in tuning
// into fade-out tuning.
func (c FadeConfig) Reversed() FadeConfig {
	c.StartAlpha, c.TargetAlpha = c.TargetAlpha, c.StartAlpha
	return c
}

// State returns the current phase.
func (f *FadingFont) State() FadeState { return f.state }

// Type returns the fade direction.
func (f *FadingFont) Type() FadeType { return f.typ }

// Alpha returns the current alpha.
func (f *FadingFont) Alpha() float64 { return f.alpha }

// Config returns the tuning in effect.
func (f *FadingFont) Config() FadeConfig { return f.cfg }

// SetStep changes the per-tick alpha step.
func (f *FadingFont) SetStep(step float64) { f.cfg.Step = step }

// IsFading reports whether alpha is currently moving.
func (f *FadingFont) IsFading() bool { return f.state == Fading }

// SetFading starts or stops the fade. Stopping keeps the current alpha.
func (f *FadingFont) SetFading(on bool) {
	if on {
		f.setState(Fading)
	} else {
		f.setState(NotFading)
	}
}

// SetTint replaces the starting color and reapplies the current alpha.
func (f *FadingFont) SetTint(c Color) {
	f.startTint = c.Clamp()
	f.apply()
}

// SetShadow replaces the shadow and its starting color.
func (f *FadingFont) SetShadow(sh Shadow) {
	f.Shadow = sh
	f.startShadow = sh.Color.Clamp()
	f.apply()
}

// Reset restores the starting alpha and colors and returns to the initial
// phase: Fading when the config says StartFading, NotFading otherwise.
func (f *FadingFont) Reset() {
	f.rewind()
	f.notify(f, KindFade, f.state)
}

func (f *FadingFont) rewind() {
	f.alpha = f.cfg.StartAlpha
	f.state = f.initial
	f.apply()
}

// Update advances the effect by one tick. It does nothing while invisible.
func (f *FadingFont) Update(dt time.Duration) {
	if !f.visible {
		return
	}
	switch f.state {
	case TargetValueReached:
		f.setState(NotFading)
	case Fading:
		target := f.cfg.TargetAlpha
		if f.typ == FadeIn {
			if f.alpha < target {
				f.alpha = math.Min(f.alpha+f.cfg.Step, target)
			}
		} else if f.alpha > target {
			f.alpha = math.Max(f.alpha-f.cfg.Step, target)
		}
		if math.Abs(f.alpha-target) < alphaEpsilon {
			f.alpha = target
		}
		f.apply()
		if f.reached() {
			f.setState(TargetValueReached)
		}
	}
}

func (f *FadingFont) reached() bool {
	if f.typ == FadeIn {
		return f.alpha >= f.cfg.TargetAlpha
	}
	return f.alpha <= f.cfg.TargetAlpha
}

func (f *FadingFont) apply() {
	f.Tint = f.startTint.Scale(f.alpha)
	f.Shadow.Color = f.startShadow.Scale(f.alpha)
}

func (f *FadingFont) setState(s FadeState) {
	f.state = s
	f.notify(f, KindFade, s)
}
