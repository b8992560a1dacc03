package fontfx

import (
	"time"

	"github.com/tanema/gween/ease"
)

// GlideState is the phase of a SlidingSprite.
type GlideState int

const (
	GlideIdle GlideState = iota
	Gliding
)

func (s GlideState) String() string {
	if s == Gliding {
		return "Gliding"
	}
	return "Idle"
}

// SlidingSprite is a sprite that glides to a position over a fixed number of
// updates, regardless of frame time.
type SlidingSprite struct {
	Sprite
	stateNotifier

	// Steps is the number of updates a glide takes.
	Steps int
	// Ease shapes the glide. Nil means SmoothStep.
	Ease ease.TweenFunc

	tween *TweenGroup
	home  Vec2
	start Vec2
	to    Vec2
	state GlideState
}

// NewSlidingSprite creates an idle sliding sprite showing tex.
func NewSlidingSprite(tex Texture, pos Vec2, tint Color, cfg GlideConfig) (*SlidingSprite, error) {
	sp, err := NewSprite(tex, pos, tint)
	if err != nil {
		return nil, err
	}
	return &SlidingSprite{
		Sprite: *sp,
		Steps:  cfg.Steps,
		home:   pos,
		start:  pos,
	}, nil
}

// State returns the current phase.
func (s *SlidingSprite) State() GlideState { return s.state }

// StartPosition returns where the last glide began, or the construction
// position before any glide.
func (s *SlidingSprite) StartPosition() Vec2 { return s.start }

// SlideTo starts a glide from the current position to target. It returns
// false, and does nothing, while a glide is already running.
func (s *SlidingSprite) SlideTo(target Vec2) bool {
	if s.state == Gliding {
		return false
	}
	fn := s.Ease
	if fn == nil {
		fn = SmoothStep
	}
	steps := s.Steps
	if steps < 1 {
		steps = 1
	}
	s.start = s.Position
	s.to = target
	s.tween = TweenPosition(&s.VisualState, target, float32(steps), fn)
	s.setState(Gliding)
	return true
}

// SlideToStart glides back to where the last glide began.
func (s *SlidingSprite) SlideToStart() bool {
	return s.SlideTo(s.start)
}

// Reset abandons any running glide, puts the sprite back at its
// construction position and returns to GlideIdle.
func (s *SlidingSprite) Reset() {
	s.tween = nil
	s.Position = s.home
	s.start = s.home
	s.to = s.home
	s.setState(GlideIdle)
}

// Update advances a running glide by one step. dt is ignored.
func (s *SlidingSprite) Update(dt time.Duration) {
	if s.state != Gliding {
		return
	}
	s.tween.Step()
	if s.tween.Done {
		s.Position = s.to
		s.tween = nil
		s.setState(GlideIdle)
	}
}

func (s *SlidingSprite) setState(st GlideState) {
	s.state = st
	s.notify(s, KindGlide, st)
}
