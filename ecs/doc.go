// Package ecs provides ECS adapters for arbor's input events.
//
// The primary adapter is [NewDonburiSink], which bridges arbor input events
// (keys, mouse buttons, cursor motion, resizes) into a [Donburi] world as
// typed events. Subscribe to [InputEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	g.SetInputSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
