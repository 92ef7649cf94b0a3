package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for arbor input events.
// Events are queued on publish and delivered by ProcessEvents.
var InputEventType = events.NewEventType[arbor.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an InputSink backed by a Donburi world.
// Input events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) arbor.InputSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInput(event arbor.InputEvent) {
	InputEventType.Publish(s.world, event)
}

// Pump delivers every queued event in world. Call it once per frame, for
// example from a root node's Update.
func Pump(world donburi.World) {
	events.ProcessAllEvents(world)
}
