package fontfx

import (
	"errors"
	"testing"
)

func TestNewLabelRequiresFont(t *testing.T) {
	if _, err := NewLabel(nil, "x", Vec2{}, ColorWhite); !errors.Is(err, ErrNilFont) {
		t.Errorf("err = %v, want ErrNilFont", err)
	}
}

func TestLabelDrawsShadowFirst(t *testing.T) {
	l, _ := NewLabel(fixedFont{}, "hi", Vec2{100, 50}, ColorWhite)
	l.SetShadow(DefaultShadow(l.Position))

	r := &recorder{}
	l.Draw(r)

	if len(r.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(r.calls))
	}
	sh, txt := r.calls[0], r.calls[1]
	if sh.t.Position != (Vec2{96, 54}) || sh.t.Tint != ColorBlack {
		t.Errorf("shadow transform = %+v", sh.t)
	}
	if txt.t.Position != (Vec2{100, 50}) || txt.t.Tint != ColorWhite || txt.text != "hi" {
		t.Errorf("text call = %+v", txt)
	}
}

func TestLabelShadowDisabledByDefault(t *testing.T) {
	l, _ := NewLabel(fixedFont{}, "hi", Vec2{}, ColorWhite)
	r := &recorder{}
	l.Draw(r)
	if len(r.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(r.calls))
	}
}

func TestLabelInvisibleDrawsNothing(t *testing.T) {
	l, _ := NewLabel(fixedFont{}, "hi", Vec2{}, ColorWhite)
	l.SetVisible(false)
	r := &recorder{}
	l.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("calls = %d, want 0", len(r.calls))
	}
}

func TestLabelSizeAndCenter(t *testing.T) {
	l, _ := NewLabel(fixedFont{}, "abcd", Vec2{}, ColorWhite)
	l.Scale = Vec2{2, 0.5}
	if got := l.Size(); got != (Vec2{80, 10}) {
		t.Errorf("Size = %v, want {80 10}", got)
	}
	if err := l.CenterOrigin(); err != nil {
		t.Fatal(err)
	}
	if l.Origin != (Vec2{20, 10}) {
		t.Errorf("Origin = %v, want {20 10}", l.Origin)
	}

	l.SetText("")
	l.Origin = Vec2{1, 1}
	if err := l.CenterOrigin(); !errors.Is(err, ErrZeroExtent) {
		t.Errorf("err = %v, want ErrZeroExtent", err)
	}
	if l.Origin != (Vec2{1, 1}) {
		t.Error("origin must be untouched for empty text")
	}
}

func TestLabelAppendText(t *testing.T) {
	l, _ := NewLabel(fixedFont{}, "ab", Vec2{}, ColorWhite)
	l.AppendText("c")
	if l.Text() != "abc" {
		t.Errorf("Text = %q", l.Text())
	}
}
