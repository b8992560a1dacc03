package fontfx

// MonitoredState is a (kind, state) pair a Sequence watches for.
type MonitoredState struct {
	Kind  StateKind
	State State
}

// Comparer decides whether a reported state matches a monitored one.
type Comparer func(got, want State) bool

// CompareByName matches states whose String forms are equal, so values of
// different enumeration types can match by name.
func CompareByName(got, want State) bool {
	return got.String() == want.String()
}

// CompareEqual matches states that are equal as interface values.
func CompareEqual(got, want State) bool {
	return got == want
}

type seqEntry struct {
	reached     bool
	unsubscribe func()
}

// Sequence watches an ordered set of stateful objects and reports when each,
// and then all, reach a monitored state.
//
// Tracked items are identified by value, so T is normally a pointer type.
// Each item reports at most once until Reset. The all-reached event fires
// once, when an item newly matching completes the set. Removing an item
// that has not reached leaves the set incomplete until Reset or Clear, even
// if every remaining item later reaches.
type Sequence[T interface {
	comparable
	Stateful
}] struct {
	// Compare matches states. Nil means CompareByName.
	Compare Comparer

	monitored []MonitoredState
	items     []T
	entries   map[T]*seqEntry
	fired     bool

	// incomplete is set when an unreached item is removed.
	incomplete bool

	itemReached listenerList[T]
	allReached  listenerList[struct{}]
}

// NewSequence creates an empty sequence watching the given states.
func NewSequence[T interface {
	comparable
	Stateful
}](monitored ...MonitoredState) *Sequence[T] {
	return &Sequence[T]{
		monitored: append([]MonitoredState(nil), monitored...),
		entries:   make(map[T]*seqEntry),
	}
}

// Monitor adds another (kind, state) pair. Any monitored pair marks an item.
func (s *Sequence[T]) Monitor(kind StateKind, state State) {
	s.monitored = append(s.monitored, MonitoredState{Kind: kind, State: state})
}

// Monitored returns a copy of the monitored pairs.
func (s *Sequence[T]) Monitored() []MonitoredState {
	return append([]MonitoredState(nil), s.monitored...)
}

// OnItemReached registers fn to run when an item first matches.
func (s *Sequence[T]) OnItemReached(fn func(item T)) (unsubscribe func()) {
	return s.itemReached.add(fn)
}

// OnAllReached registers fn to run when every item has matched.
func (s *Sequence[T]) OnAllReached(fn func()) (unsubscribe func()) {
	if fn == nil {
		panic("fontfx: cannot subscribe a nil handler")
	}
	return s.allReached.add(func(struct{}) { fn() })
}

// Add tracks item at the end. Returns ErrAlreadyTracked for a duplicate.
func (s *Sequence[T]) Add(item T) error {
	return s.Insert(len(s.items), item)
}

// AddAll tracks items in order, stopping at the first error.
func (s *Sequence[T]) AddAll(items ...T) error {
	for _, it := range items {
		if err := s.Add(it); err != nil {
			return err
		}
	}
	return nil
}

// Insert tracks item at index. Returns ErrAlreadyTracked for a duplicate.
// Panics if index is out of range.
func (s *Sequence[T]) Insert(index int, item T) error {
	if index < 0 || index > len(s.items) {
		panic("fontfx: sequence insert index out of range")
	}
	if _, ok := s.entries[item]; ok {
		return ErrAlreadyTracked
	}
	e := &seqEntry{}
	s.entries[item] = e
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = item
	e.unsubscribe = item.OnStateChanged(func(ev StateEvent) { s.handle(item, ev) })
	return nil
}

// Remove untracks item and reports whether it was tracked.
func (s *Sequence[T]) Remove(item T) bool {
	e, ok := s.entries[item]
	if !ok {
		return false
	}
	e.unsubscribe()
	delete(s.entries, item)
	if !e.reached {
		s.incomplete = true
	}
	for i, it := range s.items {
		if it == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// RemoveAt untracks and returns the item at index. Panics if index is out
// of range.
func (s *Sequence[T]) RemoveAt(index int) T {
	if index < 0 || index >= len(s.items) {
		panic("fontfx: sequence index out of range")
	}
	item := s.items[index]
	s.Remove(item)
	return item
}

// RemoveFunc untracks every item for which match returns true and returns
// how many were removed.
func (s *Sequence[T]) RemoveFunc(match func(T) bool) int {
	var doomed []T
	for _, it := range s.items {
		if match(it) {
			doomed = append(doomed, it)
		}
	}
	for _, it := range doomed {
		s.Remove(it)
	}
	return len(doomed)
}

// Clear untracks everything and rearms the all-reached event.
func (s *Sequence[T]) Clear() {
	for _, it := range s.items {
		s.entries[it].unsubscribe()
	}
	s.items = nil
	s.entries = make(map[T]*seqEntry)
	s.fired = false
	s.incomplete = false
}

// Len returns the number of tracked items.
func (s *Sequence[T]) Len() int { return len(s.items) }

// At returns the item at index.
func (s *Sequence[T]) At(index int) T { return s.items[index] }

// Items returns a copy of the tracked items in order.
func (s *Sequence[T]) Items() []T { return append([]T(nil), s.items...) }

// Contains reports whether item is tracked.
func (s *Sequence[T]) Contains(item T) bool {
	_, ok := s.entries[item]
	return ok
}

// Reached reports whether item has matched since it was added or since the
// last Reset.
func (s *Sequence[T]) Reached(item T) bool {
	e, ok := s.entries[item]
	return ok && e.reached
}

// AllReached reports whether the sequence is non-empty, no unreached item
// has been removed, and every item has matched.
func (s *Sequence[T]) AllReached() bool {
	if len(s.items) == 0 || s.incomplete {
		return false
	}
	for _, e := range s.entries {
		if !e.reached {
			return false
		}
	}
	return true
}

// Reset clears every item's reached flag, forgets removals of unreached
// items and rearms the all-reached event.
func (s *Sequence[T]) Reset() {
	for _, e := range s.entries {
		e.reached = false
	}
	s.fired = false
	s.incomplete = false
}

func (s *Sequence[T]) handle(item T, ev StateEvent) {
	e, ok := s.entries[item]
	if !ok || ev.State == nil || !s.matches(ev) {
		return
	}
	if e.reached {
		return
	}
	e.reached = true
	s.itemReached.emit(item)
	if !s.fired && s.AllReached() {
		s.fired = true
		s.allReached.emit(struct{}{})
	}
}

func (s *Sequence[T]) matches(ev StateEvent) bool {
	cmp := s.Compare
	if cmp == nil {
		cmp = CompareByName
	}
	for _, m := range s.monitored {
		if m.Kind == ev.Kind && m.State != nil && cmp(ev.State, m.State) {
			return true
		}
	}
	return false
}
