package fontfx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SmoothStep is the cubic Hermite ease 3x²-2x³. It is the default for
// SlidingSprite.
var SmoothStep ease.TweenFunc = func(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	x := t / d
	return b + c*x*x*(3-2*x)
}

// TweenGroup animates up to 4 float64 fields of a VisualState at once.
// Create one via TweenPosition, TweenScale, TweenTint or TweenRotation and
// call Update each frame. The group writes values into the target as it runs.
//
// Duration is in seconds when Update is fed real frame deltas; Step feeds a
// fixed unit instead, making the duration a tick count.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt.
func (g *TweenGroup) Update(dt time.Duration) {
	g.advance(float32(dt.Seconds()))
}

// Step advances all tweens by one unit.
func (g *TweenGroup) Step() {
	g.advance(1)
}

func (g *TweenGroup) advance(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates v.Position to to.
func TweenPosition(v *VisualState, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Position.Y), float32(to.Y), duration, fn)
	g.fields[0] = &v.Position.X
	g.fields[1] = &v.Position.Y
	return g
}

// TweenScale animates v.Scale to to.
func TweenScale(v *VisualState, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.Scale.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Scale.Y), float32(to.Y), duration, fn)
	g.fields[0] = &v.Scale.X
	g.fields[1] = &v.Scale.Y
	return g
}

// TweenTint animates all four channels of v.Tint to to (clamped).
func TweenTint(v *VisualState, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	to = to.Clamp()
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(v.Tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(v.Tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(v.Tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(v.Tint.A), float32(to.A), duration, fn)
	g.fields[0] = &v.Tint.R
	g.fields[1] = &v.Tint.G
	g.fields[2] = &v.Tint.B
	g.fields[3] = &v.Tint.A
	return g
}

// TweenRotation animates v.Rotation to to.
func TweenRotation(v *VisualState, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(v.Rotation), float32(to), duration, fn)
	g.fields[0] = &v.Rotation
	return g
}
