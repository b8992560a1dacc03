package fontfx

import (
	"testing"
)

func tenthStep() FadeConfig {
	return FadeConfig{StartAlpha: 0, TargetAlpha: 1, Step: 0.1, StartFading: true}
}

func TestFadeInReachesTargetOnTenthTick(t *testing.T) {
	f, err := NewFadingFont(fixedFont{}, "hello", Vec2{}, ColorWhite, FadeIn, tenthStep())
	if err != nil {
		t.Fatal(err)
	}
	if f.Tint != ColorTransparent {
		t.Fatalf("initial tint = %v, want transparent", f.Tint)
	}
	var log stateLog
	log.watch(f)

	for i := 1; i <= 9; i++ {
		f.Update(tick)
		if f.State() != Fading {
			t.Fatalf("tick %d: state %v, want Fading", i, f.State())
		}
		if !near(f.Alpha(), float64(i)/10) {
			t.Fatalf("tick %d: alpha %v", i, f.Alpha())
		}
	}
	f.Update(tick)
	if f.State() != TargetValueReached {
		t.Fatalf("tick 10: state %v, want TargetValueReached", f.State())
	}
	if f.Alpha() != 1 || f.Tint != ColorWhite {
		t.Errorf("tick 10: alpha %v tint %v", f.Alpha(), f.Tint)
	}
	f.Update(tick)
	if f.State() != NotFading {
		t.Fatalf("tick 11: state %v, want NotFading", f.State())
	}
	want := []string{"TargetValueReached", "NotFading"}
	if !equalStrings(log.names(), want) {
		t.Errorf("states = %v, want %v", log.names(), want)
	}

	f.Update(tick)
	if len(log.events) != 2 {
		t.Error("NotFading must be quiet")
	}
}

func TestFadeInShadowTracksAlpha(t *testing.T) {
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, ColorWhite, FadeIn, tenthStep())
	for i := 0; i < 5; i++ {
		f.Update(tick)
	}
	if !nearColor(f.Shadow.Color, Color{0, 0, 0, 0.5}) {
		t.Errorf("shadow = %v, want half-alpha black", f.Shadow.Color)
	}
}

func TestFadeOutScalesStartColor(t *testing.T) {
	start := Color{1, 0.5, 0, 1}
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, start, FadeOut, tenthStep().Reversed())
	if f.Tint != start {
		t.Fatalf("initial tint = %v, want %v", f.Tint, start)
	}
	for i := 0; i < 5; i++ {
		f.Update(tick)
	}
	if !nearColor(f.Tint, Color{0.5, 0.25, 0, 0.5}) {
		t.Errorf("half-way tint = %v", f.Tint)
	}
	for i := 0; i < 5; i++ {
		f.Update(tick)
	}
	if f.State() != TargetValueReached || f.Tint != ColorTransparent {
		t.Errorf("end state %v tint %v", f.State(), f.Tint)
	}
}

func TestFadeResetRestoresStart(t *testing.T) {
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, ColorWhite, FadeIn, tenthStep())
	for i := 0; i < 11; i++ {
		f.Update(tick)
	}
	var log stateLog
	log.watch(f)
	f.Reset()

	if f.Alpha() != 0 || f.Tint != ColorTransparent || f.State() != Fading {
		t.Errorf("after reset alpha %v tint %v state %v", f.Alpha(), f.Tint, f.State())
	}
	if !equalStrings(log.names(), []string{"Fading"}) {
		t.Errorf("events = %v", log.names())
	}
}

func TestFadeStartsIdleWhenConfigured(t *testing.T) {
	cfg := tenthStep()
	cfg.StartFading = false
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, ColorWhite, FadeIn, cfg)
	f.Update(tick)
	if f.State() != NotFading || f.Alpha() != 0 {
		t.Fatalf("state %v alpha %v", f.State(), f.Alpha())
	}
	f.SetFading(true)
	f.Update(tick)
	if !near(f.Alpha(), 0.1) {
		t.Errorf("alpha = %v after enabling", f.Alpha())
	}
	f.SetFading(false)
	f.Update(tick)
	if !near(f.Alpha(), 0.1) {
		t.Errorf("alpha moved while stopped: %v", f.Alpha())
	}
}

func TestFadeHiddenDoesNotAdvance(t *testing.T) {
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, ColorWhite, FadeIn, tenthStep())
	f.SetVisible(false)
	f.Update(tick)
	if f.Alpha() != 0 {
		t.Errorf("alpha = %v while hidden", f.Alpha())
	}
}

func TestFadeSetTintRebases(t *testing.T) {
	f, _ := NewFadingFont(fixedFont{}, "x", Vec2{}, ColorWhite, FadeIn, tenthStep())
	for i := 0; i < 5; i++ {
		f.Update(tick)
	}
	f.SetTint(Color{1, 0, 0, 1})
	if !nearColor(f.Tint, Color{0.5, 0, 0, 0.5}) {
		t.Errorf("tint = %v", f.Tint)
	}
}
