// Package ecs provides ECS adapters for starfield's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges shooting-star
// transitions (spawning, alive, dying, dead) into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	field.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
