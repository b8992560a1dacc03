package fontfx

import "fmt"

// StateKind names the state enumeration a notification belongs to. One object
// may announce transitions of more than one enumeration; the kind tells them
// apart.
type StateKind string

const (
	KindDrop   StateKind = "drop"
	KindFade   StateKind = "fade"
	KindSlide  StateKind = "slide"
	KindTyping StateKind = "typing"
	KindPanel  StateKind = "panel"
	KindGlide  StateKind = "glide"
)

// State is a value of some state enumeration. Every enumeration in this
// package implements it with a String method returning the state's name.
type State interface {
	String() string
}

// StateEvent is delivered to subscribers at the instant a transition occurs.
type StateEvent struct {
	Source any // the object whose state changed
	Kind   StateKind
	State  State // the new state
}

func (e StateEvent) String() string {
	return fmt.Sprintf("%s=%s", e.Kind, e.State)
}

// Stateful is implemented by every object that announces state transitions.
//
// Delivery is synchronous: handlers run inline, before the Update (or control
// call) that produced the transition returns. Handlers may trigger further
// transitions on the same or other objects; those are delivered re-entrantly
// in the same call stack. Nesting deeper than maxNotifyDepth panics instead of
// overflowing the stack.
type Stateful interface {
	OnStateChanged(fn func(StateEvent)) (unsubscribe func())
}

// maxNotifyDepth bounds re-entrant delivery on a single listener list.
const maxNotifyDepth = 64

type listener[T any] struct {
	fn     func(T)
	active bool
}

// listenerList is an ordered set of callbacks. Subscribers are called in
// registration order. Removing a subscriber while an emit is in flight stops
// it from receiving the rest of that emit; adding one does not make it see
// the in-flight value.
type listenerList[T any] struct {
	entries []*listener[T]
	depth   int
}

func (l *listenerList[T]) add(fn func(T)) func() {
	if fn == nil {
		panic("fontfx: cannot subscribe a nil handler")
	}
	e := &listener[T]{fn: fn, active: true}
	l.entries = append(l.entries, e)
	return func() { l.remove(e) }
}

func (l *listenerList[T]) remove(e *listener[T]) {
	if !e.active {
		return
	}
	e.active = false
	next := make([]*listener[T], 0, len(l.entries))
	for _, x := range l.entries {
		if x != e {
			next = append(next, x)
		}
	}
	l.entries = next
}

func (l *listenerList[T]) len() int { return len(l.entries) }

func (l *listenerList[T]) emit(v T) {
	if len(l.entries) == 0 {
		return
	}
	l.depth++
	defer func() { l.depth-- }()
	if l.depth > maxNotifyDepth {
		panic(fmt.Sprintf("fontfx: notification recursion exceeded %d levels", maxNotifyDepth))
	}
	snapshot := l.entries
	for _, e := range snapshot {
		if e.active {
			e.fn(v)
		}
	}
}

// stateNotifier is embedded by every stateful object.
type stateNotifier struct {
	listeners listenerList[StateEvent]
}

// OnStateChanged registers fn for every state transition of the object.
// The returned function unsubscribes it.
func (n *stateNotifier) OnStateChanged(fn func(StateEvent)) (unsubscribe func()) {
	return n.listeners.add(fn)
}

func (n *stateNotifier) notify(src any, kind StateKind, s State) {
	ev := StateEvent{Source: src, Kind: kind, State: s}
	if globalDebug {
		debugTransition(ev)
	}
	n.listeners.emit(ev)
}
