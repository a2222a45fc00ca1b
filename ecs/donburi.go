package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoomEvent is one transform change of a Zoomable, tagged with the entity
// that renders the zoomed element. Entity is donburi.Null for an untagged
// sink.
type ZoomEvent struct {
	Entity donburi.Entity
	pinchzoom.TransformEvent
}

// ZoomEventType is the Donburi event type for pinchzoom transform changes.
// Subscribe to this in your ECS systems to follow a Zoomable.
var ZoomEventType = events.NewEventType[ZoomEvent]()

// Zoom holds the latest transform of the Zoomable attached to an entity.
// Render systems read it instead of subscribing to events.
var Zoom = donburi.NewComponentType[pinchzoom.TransformEvent]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Every
// change is published to ZoomEventType tagged with entity. When entity is
// alive and has the Zoom component, the component is also updated in place,
// so it always holds the last published state.
func NewDonburiSink(world donburi.World, entity donburi.Entity) pinchzoom.EventSink {
	return &donburiSink{world: world, entity: entity}
}

func (s *donburiSink) EmitTransform(event pinchzoom.TransformEvent) {
	if s.entity != donburi.Null && s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(Zoom) {
			Zoom.SetValue(entry, event)
		}
	}
	ZoomEventType.Publish(s.world, ZoomEvent{Entity: s.entity, TransformEvent: event})
}
