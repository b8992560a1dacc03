package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/fontfx"
)

// StateEventType is the Donburi event type for fontfx state notifications.
// Events are queued on Publish and delivered by ProcessEvents, so handlers run
// inside the ECS frame, not inside the fontfx Update that caused them.
var StateEventType = events.NewEventType[fontfx.StateEvent]()

// Publisher subscribes to fontfx objects and republishes their transitions
// into a world.
type Publisher struct {
	world donburi.World
	subs  map[fontfx.Stateful]func()
}

// NewPublisher creates a publisher that queues events on world.
func NewPublisher(world donburi.World) *Publisher {
	if world == nil {
		panic("fontfx: ecs publisher needs a world")
	}
	return &Publisher{world: world, subs: make(map[fontfx.Stateful]func())}
}

// Watch starts forwarding the transitions of s. Watching an object twice is
// a no-op.
func (p *Publisher) Watch(s fontfx.Stateful) {
	if _, ok := p.subs[s]; ok {
		return
	}
	p.subs[s] = s.OnStateChanged(p.Publish)
}

// Unwatch stops forwarding s and reports whether it was watched.
func (p *Publisher) Unwatch(s fontfx.Stateful) bool {
	unsub, ok := p.subs[s]
	if !ok {
		return false
	}
	unsub()
	delete(p.subs, s)
	return true
}

// Watching returns the number of watched objects.
func (p *Publisher) Watching() int { return len(p.subs) }

// Publish queues ev on the world.
func (p *Publisher) Publish(ev fontfx.StateEvent) {
	StateEventType.Publish(p.world, ev)
}

// Close unwatches everything.
func (p *Publisher) Close() {
	for s, unsub := range p.subs {
		unsub()
		delete(p.subs, s)
	}
}
