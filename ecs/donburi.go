package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoomEventType is the Donburi event type for pinchzoom events.
var ZoomEventType = events.NewEventType[pinchzoom.ZoomEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Zoom events
// are published to ZoomEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) pinchzoom.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pinchzoom.ZoomEvent) {
	ZoomEventType.Publish(s.world, event)
}
