package fontfx

// VisualState is the attribute bag every animated object owns: where it is,
// how it is scaled, rotated and tinted, and whether it is shown.
//
// Fields are plain values and may be set directly. Visibility goes through
// SetVisible so that listeners hear about real changes only.
type VisualState struct {
	Position Vec2
	Scale    Vec2 // non-uniform; X and Y are independent
	Rotation float64
	Origin   Vec2
	Tint     Color
	Mirror   Mirror
	Depth    float64

	// Tag carries caller data. The package never reads it.
	Tag any

	visible   bool
	listeners listenerList[bool]
}

// NewVisualState returns a visible state at pos with unit scale and the given
// tint (clamped to [0, 1]).
func NewVisualState(pos Vec2, tint Color) VisualState {
	return VisualState{
		Position: pos,
		Scale:    Vec2One,
		Tint:     tint.Clamp(),
		visible:  true,
	}
}

// Visual returns v itself so that structs embedding VisualState satisfy the
// Visual half of Object.
func (v *VisualState) Visual() *VisualState { return v }

// Visible reports whether the object is drawn (and, for most effects, updated).
func (v *VisualState) Visible() bool { return v.visible }

// SetVisible shows or hides the object. Listeners registered with
// OnVisibilityChanged run only when the value actually flips.
func (v *VisualState) SetVisible(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	v.listeners.emit(visible)
}

// OnVisibilityChanged registers fn to run after every visibility flip.
// The returned function unsubscribes it.
func (v *VisualState) OnVisibilityChanged(fn func(visible bool)) (unsubscribe func()) {
	return v.listeners.add(fn)
}

// SetTint stores c clamped to [0, 1].
func (v *VisualState) SetTint(c Color) {
	v.Tint = c.Clamp()
}

// CenterOn sets the origin to half of size so that rotation and scale pivot
// at the visual center. Returns ErrZeroExtent, leaving the origin untouched,
// when size has no area.
func (v *VisualState) CenterOn(size Vec2) error {
	if size.X <= 0 || size.Y <= 0 {
		return ErrZeroExtent
	}
	v.Origin = size.Scale(0.5)
	return nil
}

// Transform snapshots the drawable attributes.
func (v *VisualState) Transform() Transform {
	return Transform{
		Position: v.Position,
		Rotation: v.Rotation,
		Origin:   v.Origin,
		Scale:    v.Scale,
		Tint:     v.Tint,
		Mirror:   v.Mirror,
		Depth:    v.Depth,
	}
}

// SetTransform overwrites the drawable attributes from t. Visibility and Tag
// are not part of a Transform and are left alone.
func (v *VisualState) SetTransform(t Transform) {
	v.Position = t.Position
	v.Rotation = t.Rotation
	v.Origin = t.Origin
	v.Scale = t.Scale
	v.Tint = t.Tint
	v.Mirror = t.Mirror
	v.Depth = t.Depth
}
