// Package ecs provides ECS adapters for pinchzoom's zoom events.
//
// The primary adapter is [NewDonburiSink], which bridges zoom events (scale
// changes, scroll gate signals, image loads) into a [Donburi] world as typed
// events. Subscribe to [ZoomEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	zoomer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
