package lunar

// CollisionResolver adjusts an entity after it has moved along one axis.
// ResolveY runs after vertical integration and ResolveX after horizontal
// integration; implementations typically clamp the position against solid
// tiles and zero the velocity on that axis.
type CollisionResolver interface {
	ResolveY(e *Entity)
	ResolveX(e *Entity)
}

// ResolverFuncs adapts a pair of functions to CollisionResolver. Nil
// functions are skipped.
type ResolverFuncs struct {
	Y func(e *Entity)
	X func(e *Entity)
}

// ResolveY calls r.Y if set.
func (r ResolverFuncs) ResolveY(e *Entity) {
	if r.Y != nil {
		r.Y(e)
	}
}

// ResolveX calls r.X if set.
func (r ResolverFuncs) ResolveX(e *Entity) {
	if r.X != nil {
		r.X(e)
	}
}

// EventStore is the interface for optional ECS integration.
// When set on an EntityList, collisions are forwarded to the store.
type EventStore interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent carries collision data for the ECS bridge.
type CollisionEvent struct {
	EntityID   uint32
	ColliderID uint32
	// Positions at the time of the collision.
	X, Y                 float64
	ColliderX, ColliderY float64
	Flags                EntityFlags
	ColliderFlags        EntityFlags
}

func newCollisionEvent(e, other *Entity) CollisionEvent {
	ev := CollisionEvent{
		EntityID: e.ID,
		X:        e.X,
		Y:        e.Y,
		Flags:    e.Flags,
	}
	if other != nil {
		ev.ColliderID = other.ID
		ev.ColliderX = other.X
		ev.ColliderY = other.Y
		ev.ColliderFlags = other.Flags
	}
	return ev
}

// Overlaps reports whether the hitboxes of a and b intersect. Hitboxes are
// anchored at the bottom-center of the entity position, matching how
// entities are drawn.
func Overlaps(a, b *Entity) bool {
	return hitbox(a).Intersects(hitbox(b))
}

func hitbox(e *Entity) Rect {
	return Rect{X: e.X - e.Width/2, Y: e.Y - e.Height, Width: e.Width, Height: e.Height}
}

// CollideAll tests every live pair of entities in l for hitbox overlap and
// dispatches Collide on both sides of each overlapping pair. Deleted
// entities are skipped. It returns the number of overlapping pairs.
func (l *EntityList) CollideAll() int {
	pairs := 0
	for a := l.head; a != nil; a = a.next {
		if a.deleted {
			continue
		}
		for b := a.next; b != nil; b = b.next {
			if b.deleted || a.deleted {
				continue
			}
			if Overlaps(a, b) {
				a.Collide(b)
				b.Collide(a)
				pairs++
			}
		}
	}
	return pairs
}
