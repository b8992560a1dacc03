package fontfx

import (
	"time"
)

// Composite groups child objects under one parent transform. Children keep
// their own attributes relative to the parent; the parent's are folded in
// only for the duration of each child's Draw.
type Composite struct {
	VisualState

	children []Object
}

// NewComposite creates a visible composite at pos. Panics on a nil child.
func NewComposite(pos Vec2, children ...Object) *Composite {
	c := &Composite{VisualState: NewVisualState(pos, ColorWhite)}
	for _, ch := range children {
		c.Add(ch)
	}
	return c
}

// Add appends child. Panics if child is nil.
func (c *Composite) Add(child Object) {
	if child == nil {
		panic("fontfx: cannot add nil child to composite")
	}
	c.children = append(c.children, child)
}

// Insert places child at index. Panics if child is nil or index is out of
// range.
func (c *Composite) Insert(index int, child Object) {
	if child == nil {
		panic("fontfx: cannot add nil child to composite")
	}
	if index < 0 || index > len(c.children) {
		panic("fontfx: composite insert index out of range")
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
}

// Remove detaches child and reports whether it was present.
func (c *Composite) Remove(child Object) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the child list. The slice must not be modified.
func (c *Composite) Children() []Object { return c.children }

// Len returns the number of children.
func (c *Composite) Len() int { return len(c.children) }

// Update updates every child in order, visible or not.
func (c *Composite) Update(dt time.Duration) {
	for _, ch := range c.children {
		ch.Update(dt)
	}
}

// Draw renders each visible child with the parent transform combined into
// its own: positions, rotations and origins add, scales and tints multiply,
// mirror flags combine. Every child's attributes are restored afterwards,
// even if its Draw panics.
func (c *Composite) Draw(r Renderer) {
	if !c.visible {
		return
	}
	for _, ch := range c.children {
		if !ch.Visual().Visible() {
			continue
		}
		c.drawChild(r, ch)
	}
}

func (c *Composite) drawChild(r Renderer, ch Object) {
	v := ch.Visual()
	saved := v.Transform()
	defer v.SetTransform(saved)

	if sh, ok := ch.(shadowed); ok {
		s := sh.ShadowState()
		savedShadow := *s
		defer func() { *s = savedShadow }()
		s.Position = s.Position.Add(c.Position)
		s.Color = s.Color.Mul(c.Tint)
	}

	v.SetTransform(c.combine(saved))
	ch.Draw(r)
}

func (c *Composite) combine(t Transform) Transform {
	return Transform{
		Position: t.Position.Add(c.Position),
		Rotation: t.Rotation + c.Rotation,
		Origin:   t.Origin.Add(c.Origin),
		Scale:    t.Scale.Mul(c.Scale),
		Tint:     t.Tint.Mul(c.Tint),
		Mirror:   t.Mirror | c.Mirror,
		Depth:    t.Depth,
	}
}

// CenterOrigin always fails with ErrNoDefiniteSize: the children may be
// anywhere, so a composite has no single center.
func (c *Composite) CenterOrigin() error {
	return ErrNoDefiniteSize
}
