package fontfx

import (
	"strings"
	"testing"
)

// machine is a minimal Stateful used to drive notifications directly.
type machine struct {
	stateNotifier
	kind StateKind
}

func newMachine(kind StateKind) *machine { return &machine{kind: kind} }

func (m *machine) set(s State) { m.notify(m, m.kind, s) }

func TestNotifyOrderAndPayload(t *testing.T) {
	m := newMachine(KindDrop)
	var order []int
	var got StateEvent
	m.OnStateChanged(func(ev StateEvent) { order = append(order, 1); got = ev })
	m.OnStateChanged(func(StateEvent) { order = append(order, 2) })

	m.set(DropDone)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if got.Source != m || got.Kind != KindDrop || got.State != DropDone {
		t.Errorf("event = %+v", got)
	}
	if got.String() != "drop=Done" {
		t.Errorf("String = %q", got.String())
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	m := newMachine(KindFade)
	var second int
	var unsub2 func()
	m.OnStateChanged(func(StateEvent) { unsub2() })
	unsub2 = m.OnStateChanged(func(StateEvent) { second++ })

	m.set(Fading)
	m.set(NotFading)

	if second != 0 {
		t.Errorf("removed listener ran %d times", second)
	}
	if m.listeners.len() != 1 {
		t.Errorf("listeners = %d, want 1", m.listeners.len())
	}
}

func TestUnsubscribeTwiceIsHarmless(t *testing.T) {
	m := newMachine(KindFade)
	unsub := m.OnStateChanged(func(StateEvent) {})
	unsub()
	unsub()
	if m.listeners.len() != 0 {
		t.Errorf("listeners = %d, want 0", m.listeners.len())
	}
}

func TestReentrantDeliveryIsInline(t *testing.T) {
	a := newMachine(KindDrop)
	b := newMachine(KindSlide)
	var trace []string
	a.OnStateChanged(func(ev StateEvent) {
		trace = append(trace, "a:"+ev.State.String())
		if ev.State == DropDone {
			b.set(Sliding)
		}
		trace = append(trace, "a-exit")
	})
	b.OnStateChanged(func(ev StateEvent) { trace = append(trace, "b:"+ev.State.String()) })

	a.set(DropDone)

	want := []string{"a:Done", "b:Sliding", "a-exit"}
	if !equalStrings(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestRunawayRecursionPanics(t *testing.T) {
	m := newMachine(KindFade)
	m.OnStateChanged(func(StateEvent) { m.set(Fading) })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "recursion") {
			t.Errorf("panic = %v", r)
		}
		if m.listeners.depth != 0 {
			t.Errorf("depth = %d after unwind, want 0", m.listeners.depth)
		}
	}()
	m.set(Fading)
}

func TestNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil handler")
		}
	}()
	newMachine(KindFade).OnStateChanged(nil)
}
