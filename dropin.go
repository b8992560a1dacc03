package fontfx

import (
	"math"
	"time"
)

// DropState is the phase of a DropInFont.
type DropState int

const (
	Dropping DropState = iota
	Compressing
	Expanding
	DropDone
)

var dropStateNames = [...]string{"Dropping", "Compressing", "Expanding", "Done"}

func (s DropState) String() string {
	if s < 0 || int(s) >= len(dropStateNames) {
		return "DropState(?)"
	}
	return dropStateNames[s]
}

// DropInFont is text that falls to a target position, squashes on landing and
// springs back. DropDone is terminal until Reset.
type DropInFont struct {
	Label
	stateNotifier

	// Target is where the text lands.
	Target Vec2
	// Speed is the per-tick movement toward Target. Each axis only uses the
	// magnitude; direction always points at Target.
	Speed Vec2

	cfg   DropConfig
	state DropState

	startPos    Vec2
	startShadow Vec2
	startScale  Vec2
	startSpeed  Vec2

	contentSize Vec2
	landedPos   Vec2
	landedScale Vec2
	squash      Vec2

	accelElapsed time.Duration
}

// NewDropInFont creates a drop-in at start falling toward target by speed per
// tick. It carries the default shadow. Acceleration is enabled when cfg.Accel
// is non-zero.
func NewDropInFont(font Font, text string, start, target, speed Vec2, tint Color, cfg DropConfig) (*DropInFont, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	d := &DropInFont{
		Label: Label{
			VisualState: NewVisualState(start, tint),
			Shadow:      DefaultShadow(start),
			font:        font,
			text:        text,
		},
		Target: target,
		Speed:  speed,
		cfg:    cfg,
		state:  Dropping,
	}
	d.Rebase()
	return d, nil
}

// State returns the current phase.
func (d *DropInFont) State() DropState { return d.state }

// Config returns the tuning in effect.
func (d *DropInFont) Config() DropConfig { return d.cfg }

// SetShadow replaces the shadow and re-captures its starting position.
func (d *DropInFont) SetShadow(sh Shadow) {
	d.Shadow = sh
	d.startShadow = sh.Position
}

// Rebase captures the current position, shadow position, scale and speed as
// the values Reset restores.
func (d *DropInFont) Rebase() {
	d.startPos = d.Position
	d.startShadow = d.Shadow.Position
	d.startScale = d.Scale
	d.startSpeed = d.Speed
}

// Reset restores the captured starting values and returns to Dropping.
func (d *DropInFont) Reset() {
	d.Position = d.startPos
	d.Shadow.Position = d.startShadow
	d.Scale = d.startScale
	d.Speed = d.startSpeed
	d.accelElapsed = 0
	d.setState(Dropping)
}

// Update advances the effect by one tick. It does nothing while invisible.
func (d *DropInFont) Update(dt time.Duration) {
	if !d.visible {
		return
	}
	switch d.state {
	case Dropping:
		d.accelerate(dt)
		d.drop()
	case Compressing:
		if d.Scale.Y > d.squash.Y {
			ny := math.Max(d.Scale.Y-d.cfg.Step, d.squash.Y)
			d.shiftY((d.Scale.Y - ny) * d.contentSize.Y / 2)
			d.Scale.Y = ny
			if d.Scale.X < d.squash.X {
				d.Scale.X = math.Min(d.Scale.X+d.cfg.Step/2, d.squash.X)
			}
		} else {
			d.setState(Expanding)
		}
	case Expanding:
		if d.Scale.Y < d.landedScale.Y {
			ny := math.Min(d.Scale.Y+d.cfg.Step, d.landedScale.Y)
			d.shiftY(-(ny - d.Scale.Y) * d.contentSize.Y / 2)
			d.Scale.Y = ny
			if d.Scale.X > d.landedScale.X {
				d.Scale.X = math.Max(d.Scale.X-d.cfg.Step/2, d.landedScale.X)
			}
		} else {
			d.Scale = d.landedScale
			d.Shadow.Position = d.Shadow.Position.Add(d.landedPos.Sub(d.Position))
			d.Position = d.landedPos
			d.setState(DropDone)
		}
	}
}

func (d *DropInFont) accelerate(dt time.Duration) {
	if d.cfg.Accel.IsZero() {
		return
	}
	d.accelElapsed += dt
	if d.accelElapsed < d.cfg.AccelDelay {
		return
	}
	d.accelElapsed = 0
	if !belowMax(d.Speed.X, d.cfg.MaxSpeed.X) || !belowMax(d.Speed.Y, d.cfg.MaxSpeed.Y) {
		return
	}
	d.Speed = Vec2{
		capSpeed(d.Speed.X*d.cfg.Accel.X, d.cfg.MaxSpeed.X),
		capSpeed(d.Speed.Y*d.cfg.Accel.Y, d.cfg.MaxSpeed.Y),
	}
}

func (d *DropInFont) drop() {
	before := d.Position
	d.Position = Vec2{
		approach(d.Position.X, d.Target.X, d.Speed.X),
		approach(d.Position.Y, d.Target.Y, d.Speed.Y),
	}
	d.Shadow.Position = d.Shadow.Position.Add(d.Position.Sub(before))
	if d.Position != d.Target {
		return
	}
	d.contentSize = d.Measure()
	d.landedPos = d.Position
	d.landedScale = d.Scale
	d.squash = Vec2{d.Scale.X * d.cfg.Widen, d.Scale.Y * d.cfg.Flatten}
	d.setState(Compressing)
}

func (d *DropInFont) shiftY(dy float64) {
	d.Position.Y += dy
	d.Shadow.Position.Y += dy
}

func (d *DropInFont) setState(s DropState) {
	d.state = s
	d.notify(d, KindDrop, s)
}

// belowMax reports whether |v| is under max; a zero max never caps.
func belowMax(v, max float64) bool {
	return max == 0 || math.Abs(v) < max
}

func capSpeed(v, max float64) float64 {
	if max == 0 || math.Abs(v) <= max {
		return v
	}
	return math.Copysign(max, v)
}
