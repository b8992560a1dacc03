package fontfx

import (
	"errors"
	"image"
	"testing"
	"time"
)

const panelTick = 100 * time.Millisecond

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	p, err := NewPanel(Vec2{100, 50}, Vec2{200, 100}, Color{0, 0, 1, 1}, PanelConfig{Speed: Vec2{2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func runPanel(p *Panel, until PanelState, limit int) int {
	for i := 1; i <= limit; i++ {
		p.Update(panelTick)
		if p.State() == until {
			return i
		}
	}
	return -1
}

func TestPanelStartsCollapsed(t *testing.T) {
	p := newTestPanel(t)
	if p.State() != Collapsed || p.Visible() {
		t.Errorf("state %v visible %v", p.State(), p.Visible())
	}
	if !nearVec(p.Scale, Vec2{0.01, 0.02}) {
		t.Errorf("scale = %v, want one pixel", p.Scale)
	}
	if p.Origin != (Vec2{50, 25}) {
		t.Errorf("origin = %v, want centered", p.Origin)
	}
}

func TestPanelRejectsTinySize(t *testing.T) {
	if _, err := NewPanel(Vec2{0.5, 10}, Vec2{}, ColorWhite, DefaultConfig().Panel); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestPanelOpensWideThenTall(t *testing.T) {
	p := newTestPanel(t)
	var log stateLog
	log.watch(p)

	if !p.Expand() {
		t.Fatal("Expand from Collapsed refused")
	}
	if !p.Visible() {
		t.Fatal("Expand did not show the panel")
	}
	if n := runPanel(p, ExpandingVertically, 20); n != 6 {
		t.Fatalf("horizontal phase took %d ticks, want 6", n)
	}
	if p.Scale.X != 1 || !near(p.Scale.Y, 0.02) {
		t.Fatalf("scale after horizontal phase = %v", p.Scale)
	}
	if n := runPanel(p, Open, 20); n != 6 {
		t.Fatalf("vertical phase took %d ticks, want 6", n)
	}
	if p.Scale != Vec2One {
		t.Errorf("open scale = %v", p.Scale)
	}

	want := []string{"ExpandingHorizontally", "ExpandingVertically", "Open"}
	if !equalStrings(log.names(), want) {
		t.Errorf("states = %v, want %v", log.names(), want)
	}
}

func TestPanelClosesTallThenWide(t *testing.T) {
	p := newTestPanel(t)
	p.Expand()
	runPanel(p, Open, 20)

	var log stateLog
	log.watch(p)
	if !p.Collapse() {
		t.Fatal("Collapse from Open refused")
	}
	if runPanel(p, Collapsed, 40) < 0 {
		t.Fatalf("never collapsed, state %v", p.State())
	}
	if p.Visible() {
		t.Error("collapsed panel still visible")
	}
	if !nearVec(p.Scale, p.MinScale()) {
		t.Errorf("scale = %v, want %v", p.Scale, p.MinScale())
	}
	want := []string{"CollapsingVertically", "CollapsingHorizontally", "Collapsed"}
	if !equalStrings(log.names(), want) {
		t.Errorf("states = %v, want %v", log.names(), want)
	}
}

func TestPanelRefusesInvalidRequests(t *testing.T) {
	p := newTestPanel(t)
	if p.Collapse() {
		t.Error("Collapse from Collapsed accepted")
	}
	p.Expand()
	if p.Expand() {
		t.Error("Expand while expanding accepted")
	}
	runPanel(p, Open, 20)
	if p.Expand() {
		t.Error("Expand from Open accepted")
	}
}

func TestPanelReversesMidAnimation(t *testing.T) {
	p := newTestPanel(t)
	p.Expand()
	p.Update(panelTick)
	x := p.Scale.X

	if !p.Collapse() || p.State() != CollapsingHorizontally {
		t.Fatalf("collapse while expanding wide: state %v", p.State())
	}
	p.Update(panelTick)
	if p.Scale.X >= x {
		t.Errorf("width grew while collapsing: %v", p.Scale.X)
	}
	if !p.Expand() || p.State() != ExpandingHorizontally {
		t.Fatalf("expand while collapsing wide: state %v", p.State())
	}

	runPanel(p, ExpandingVertically, 20)
	p.Update(panelTick)
	if !p.Collapse() || p.State() != CollapsingVertically {
		t.Errorf("collapse while expanding tall: state %v", p.State())
	}
	if !p.Expand() || p.State() != ExpandingVertically {
		t.Errorf("expand while collapsing tall: state %v", p.State())
	}
}

func TestPanelResetSnapsShut(t *testing.T) {
	p := newTestPanel(t)
	p.Expand()
	runPanel(p, Open, 20)
	p.Reset()
	if p.State() != Collapsed || p.Visible() || p.Scale != p.MinScale() {
		t.Errorf("state %v visible %v scale %v", p.State(), p.Visible(), p.Scale)
	}
}

func TestPanelImage(t *testing.T) {
	p := newTestPanel(t)
	if err := p.SetImage(nil, ColorWhite); !errors.Is(err, ErrNilTexture) {
		t.Errorf("nil image: err = %v", err)
	}
	if err := p.SetImage(image.NewRGBA(image.Rect(0, 0, 200, 10)), ColorWhite); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("oversized image: err = %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	if err := p.SetImage(img, Color{1, 1, 1, 0.5}); err != nil {
		t.Fatal(err)
	}

	var r recorder
	p.Draw(&r)
	if len(r.calls) != 0 {
		t.Fatal("collapsed panel drew")
	}

	p.Expand()
	runPanel(p, Open, 20)
	p.Draw(&r)
	if len(r.calls) != 2 {
		t.Fatalf("calls = %d, want rect and image", len(r.calls))
	}
	rect, pic := r.calls[0], r.calls[1]
	if rect.kind != "rect" || rect.size != (Vec2{100, 50}) || rect.t.Tint != (Color{0, 0, 1, 1}) {
		t.Errorf("rect call = %+v", rect)
	}
	if pic.kind != "image" || pic.tex != img {
		t.Fatalf("image call = %+v", pic)
	}
	// Panel origin (50, 25) less the centering offset (40, 20).
	if pic.t.Origin != (Vec2{10, 5}) || pic.t.Tint.A != 0.5 {
		t.Errorf("image origin %v tint %v", pic.t.Origin, pic.t.Tint)
	}
}
