package ecs

import (
	"github.com/phanxgames/starfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for shooting-star transitions.
var LifecycleEventType = events.NewEventType[starfield.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) starfield.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event starfield.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
