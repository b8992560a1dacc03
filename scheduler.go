package fontfx

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Clock supplies the current time to a Scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time { return c.now }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type scheduledTask struct {
	run    func()
	repeat bool
}

// bucket holds the tasks sharing one trigger time, in insertion order.
type bucket struct {
	at    time.Time
	tasks []scheduledTask
}

// Scheduler runs deferred callbacks once their trigger time has passed. It
// is polled, not timer driven: nothing runs until Update is called, and
// overdue tasks run on the first Update after they fall due.
type Scheduler struct {
	clock   Clock
	buckets map[int64]*bucket
}

// NewScheduler creates a scheduler reading clock. A nil clock means
// SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		buckets: make(map[int64]*bucket),
	}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock { return s.clock }

// Schedule runs fn once, delay from now.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	s.add(delay, scheduledTask{run: fn})
}

// ScheduleRepeating files fn as a repeating task. Repetition is not
// implemented: the task runs once, and the Update that runs it reports
// ErrRepeatUnsupported.
func (s *Scheduler) ScheduleRepeating(interval time.Duration, fn func()) {
	s.add(interval, scheduledTask{run: fn, repeat: true})
}

// ScheduleValue runs fn(v) once, delay from now.
func ScheduleValue[T any](s *Scheduler, delay time.Duration, fn func(T), v T) {
	if fn == nil {
		panic("fontfx: cannot schedule a nil task")
	}
	s.Schedule(delay, func() { fn(v) })
}

func (s *Scheduler) add(delay time.Duration, t scheduledTask) {
	if t.run == nil {
		panic("fontfx: cannot schedule a nil task")
	}
	at := s.clock.Now().Add(delay)
	key := at.UnixNano()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{at: at}
		s.buckets[key] = b
	}
	b.tasks = append(b.tasks, t)
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b.tasks)
	}
	return n
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.buckets = make(map[int64]*bucket)
}

// Update runs every task whose trigger time is at or before now, oldest
// bucket first and in insertion order within a bucket. Each bucket is
// removed before its tasks run, so a task runs exactly once. Tasks scheduled
// by a running task wait for the next Update.
//
// Repeating tasks run once and are reported in the returned error, which
// wraps ErrRepeatUnsupported.
func (s *Scheduler) Update() error {
	now := s.clock.Now()
	var due []*bucket
	for key, b := range s.buckets {
		if !b.at.After(now) {
			due = append(due, b)
			delete(s.buckets, key)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })

	var errs []error
	for _, b := range due {
		if globalDebug {
			debugBucket(b.at, now, len(b.tasks))
		}
		for _, t := range b.tasks {
			t.run()
			if t.repeat {
				errs = append(errs, fmt.Errorf("fontfx: task due %s: %w",
					b.at.Format(time.RFC3339Nano), ErrRepeatUnsupported))
			}
		}
	}
	return errors.Join(errs...)
}
