package fontfx

import (
	"math"
	"time"
)

// SlideState is the phase of a SlidingFont.
type SlideState int

const (
	SlideReady SlideState = iota
	Sliding
	// SlideDone lasts one tick, then the font returns to SlideReady.
	SlideDone
)

var slideStateNames = [...]string{"Ready", "Sliding", "Done"}

func (s SlideState) String() string {
	if s < 0 || int(s) >= len(slideStateNames) {
		return "SlideState(?)"
	}
	return slideStateNames[s]
}

// SlidingFont is text that eases toward a target. Each tick it covers a share
// of the remaining distance proportional to the elapsed seconds, so it
// decelerates on approach; within Tolerance it snaps onto the target.
type SlidingFont struct {
	Label
	stateNotifier

	// Speed is the share of the remaining distance covered per second.
	Speed float64
	// Tolerance is the distance under which the slide counts as arrived.
	Tolerance float64

	target Vec2
	unit   Vec2
	state  SlideState

	startPos    Vec2
	startShadow Vec2
}

// NewSlidingFont creates a sliding font at start, in SlideReady. It carries
// the default shadow.
func NewSlidingFont(font Font, text string, start, target Vec2, tint Color, cfg SlideConfig) (*SlidingFont, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	s := &SlidingFont{
		Label: Label{
			VisualState: NewVisualState(start, tint),
			Shadow:      DefaultShadow(start),
			font:        font,
			text:        text,
		},
		Speed:     cfg.Speed,
		Tolerance: cfg.Tolerance,
		target:    target,
		state:     SlideReady,
	}
	s.Rebase()
	s.aim()
	return s, nil
}

// SetShadow replaces the shadow and its starting position.
func (s *SlidingFont) SetShadow(sh Shadow) {
	s.Shadow = sh
	s.startShadow = sh.Position
}

// Rebase captures the current position and shadow position as the values
// Reset restores.
func (s *SlidingFont) Rebase() {
	s.startPos = s.Position
	s.startShadow = s.Shadow.Position
}

// Reset moves the font and its shadow back to their starting positions,
// re-aims at the target and returns to SlideReady.
func (s *SlidingFont) Reset() {
	s.Position = s.startPos
	s.Shadow.Position = s.startShadow
	s.aim()
	s.setState(SlideReady)
}

// State returns the current phase.
func (s *SlidingFont) State() SlideState { return s.state }

// Target returns the destination.
func (s *SlidingFont) Target() Vec2 { return s.target }

// SetTarget changes the destination and recomputes the direction.
func (s *SlidingFont) SetTarget(t Vec2) {
	s.target = t
	s.aim()
}

// Slide makes the font visible and starts moving toward the target.
func (s *SlidingFont) Slide() {
	s.SetVisible(true)
	s.aim()
	s.setState(Sliding)
}

// Update advances the effect by one tick. It does nothing while invisible.
func (s *SlidingFont) Update(dt time.Duration) {
	if !s.visible {
		return
	}
	switch s.state {
	case SlideDone:
		s.moveTo(s.target)
		s.setState(SlideReady)
	case Sliding:
		dist := s.target.Sub(s.Position).Len()
		if dist > s.Tolerance {
			f := math.Min(dt.Seconds()*s.Speed, 1)
			s.moveTo(s.Position.Add(s.unit.Scale(dist * f)))
		} else {
			s.moveTo(s.target)
			s.setState(SlideDone)
		}
	}
}

func (s *SlidingFont) aim() {
	s.unit = s.target.Sub(s.Position).Normalize()
}

func (s *SlidingFont) moveTo(p Vec2) {
	s.Shadow.Position = s.Shadow.Position.Add(p.Sub(s.Position))
	s.Position = p
}

func (s *SlidingFont) setState(st SlideState) {
	s.state = st
	s.notify(s, KindSlide, st)
}
