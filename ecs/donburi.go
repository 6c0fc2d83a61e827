package ecs

import (
	"github.com/phanxgames/lunar"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for lunar collision events.
var CollisionEventType = events.NewEventType[lunar.CollisionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Collision events are published to CollisionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) lunar.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitCollision(event lunar.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
