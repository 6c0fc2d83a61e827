// Package ecs provides ECS adapters for lunar's collision events.
//
// The primary adapter is [NewDonburiStore], which bridges lunar entity
// collisions into a [Donburi] world as typed events. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	entities.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
