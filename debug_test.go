package fontfx

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestDebugModeToggle(t *testing.T) {
	if DebugMode() {
		t.Fatal("debug mode on by default")
	}
	SetDebugMode(true)
	defer SetDebugMode(false)
	if !DebugMode() {
		t.Error("SetDebugMode(true) had no effect")
	}
}

func TestDebugTracesTransitions(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	out := captureStderr(t, func() {
		newMachine(KindPanel).set(Open)
	})
	if !strings.Contains(out, "[fontfx]") || !strings.Contains(out, "panel -> Open") {
		t.Errorf("trace = %q", out)
	}
}

func TestDebugTracesSchedulerBuckets(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	clk := NewManualClock(epoch)
	s := NewScheduler(clk)
	s.Schedule(time.Second, func() {})
	s.Schedule(time.Second, func() {})
	clk.Advance(3 * time.Second)

	out := captureStderr(t, func() { _ = s.Update() })
	if !strings.Contains(out, "fired 2 task(s)") || !strings.Contains(out, "late by 2s") {
		t.Errorf("trace = %q", out)
	}
}

func TestDebugSilentWhenOff(t *testing.T) {
	out := captureStderr(t, func() {
		newMachine(KindPanel).set(Open)
	})
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
}
