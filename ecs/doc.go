// Package ecs bridges fontfx into a [Donburi] world.
//
// [Publisher] forwards the state notifications of watched fontfx objects into
// the world's event queue as [StateEventType] events, so ECS systems can react
// to a drop landing or a fade completing without holding callbacks:
//
//	pub := ecs.NewPublisher(world)
//	pub.Watch(title)
//	ecs.StateEventType.Subscribe(world, onTitleState)
//	...
//	ecs.StateEventType.ProcessEvents(world)
//
// Objects themselves can live in the world as entities carrying the [Object]
// component; [UpdateAll] and [DrawAll] drive every such entity.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
