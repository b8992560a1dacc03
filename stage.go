package fontfx

import (
	"time"
)

// Stage is the top-level collection an application drives once per frame.
// Objects update and draw in insertion order. An attached Scheduler is polled
// after the objects have updated.
type Stage struct {
	objects   []Object
	scheduler *Scheduler
}

// NewStage creates a stage holding objects. Panics on a nil object.
func NewStage(objects ...Object) *Stage {
	s := &Stage{}
	for _, o := range objects {
		s.Add(o)
	}
	return s
}

// Scheduler returns the attached scheduler, or nil.
func (s *Stage) Scheduler() *Scheduler { return s.scheduler }

// SetScheduler attaches sch, replacing any previous one. Nil detaches.
func (s *Stage) SetScheduler(sch *Scheduler) { s.scheduler = sch }

// Add appends o. Panics if o is nil.
func (s *Stage) Add(o Object) {
	if o == nil {
		panic("fontfx: cannot add nil object to stage")
	}
	s.objects = append(s.objects, o)
}

// Remove detaches o and reports whether it was present. Removing during
// Update takes effect from the next frame.
func (s *Stage) Remove(o Object) bool {
	for i, x := range s.objects {
		if x == o {
			next := make([]Object, 0, len(s.objects)-1)
			next = append(next, s.objects[:i]...)
			s.objects = append(next, s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether o is on the stage.
func (s *Stage) Contains(o Object) bool {
	for _, x := range s.objects {
		if x == o {
			return true
		}
	}
	return false
}

// Objects returns the object list. The slice must not be modified.
func (s *Stage) Objects() []Object { return s.objects }

// Len returns the number of objects.
func (s *Stage) Len() int { return len(s.objects) }

// Clear removes every object. The scheduler stays attached.
func (s *Stage) Clear() { s.objects = nil }

// Update advances every object by dt, then runs due scheduled tasks. The
// returned error comes from the scheduler.
func (s *Stage) Update(dt time.Duration) error {
	for _, o := range s.objects {
		o.Update(dt)
	}
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Update()
}

// Draw renders every object in order.
func (s *Stage) Draw(r Renderer) {
	for _, o := range s.objects {
		o.Draw(r)
	}
}
