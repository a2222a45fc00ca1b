// Package ecs provides ECS adapters for pinchzoom's transform events.
//
// The primary adapter is [NewDonburiSink], which forwards every transform
// change of a Zoomable into a [Donburi] world as a typed event. Subscribe to
// [ZoomEventType] in your ECS systems to receive them, or read the [Zoom]
// component of the tagged entity.
//
// Usage:
//
//	photo := world.Create(ecs.Zoom)
//	sink := ecs.NewDonburiSink(world, photo)
//	zoomable.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
