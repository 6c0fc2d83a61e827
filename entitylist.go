package lunar

import "iter"

// EntityList owns an ordered collection of entities. Iteration order is
// insertion order; removal keeps the relative order of the rest.
//
// A list may be associated with a Tilemap, in which case entity positions
// are in tile units and are scaled by the tileset's tile size when drawn.
type EntityList struct {
	head, tail *Entity
	count      int

	tilemap  Tilemap
	resolver CollisionResolver
	store    EventStore

	updating bool
	// cursor is the next entity the running update pass will visit.
	cursor *Entity
}

// NewEntityList creates an empty list with no tilemap.
func NewEntityList() *EntityList {
	return &EntityList{}
}

// NewEntity creates an entity at (x, y) from the builder's template and
// appends it to the list.
func (l *EntityList) NewEntity(b *EntityBuilder, x, y float64) *Entity {
	b.mustBeAlive()
	e := &Entity{
		ID:           nextEntityID(),
		X:            x,
		Y:            y,
		Width:        b.width,
		Height:       b.height,
		DrawPriority: b.drawPriority,
		Flags:        b.flags,
		prevX:        x,
		prevY:        y,
		properties:   b.properties.clone(),
		callbacks:    b.callbacks,
	}
	l.link(e)
	return e
}

// link appends e at the tail.
func (l *EntityList) link(e *Entity) {
	e.list = l
	e.next = nil
	e.prev = l.tail
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.count++
	if l.updating && l.cursor == nil {
		// Appended behind the pass: visit it in this pass too.
		l.cursor = e
	}
	if globalDebug {
		debugCheckEntityCount(l)
	}
}

// unlink detaches e from the list in O(1).
func (l *EntityList) unlink(e *Entity) {
	if l.cursor == e {
		l.cursor = e.next
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev = nil
	e.next = nil
	e.list = nil
	l.count--
}

// Len returns the number of entities, including ones marked deleted that
// have not been reaped yet.
func (l *EntityList) Len() int {
	return l.count
}

// First returns the first entity, or nil if the list is empty.
func (l *EntityList) First() *Entity {
	return l.head
}

// Last returns the last entity, or nil if the list is empty.
func (l *EntityList) Last() *Entity {
	return l.tail
}

// All returns an iterator over the entities in list order. The list must not
// be structurally modified during iteration other than by Entity.Delete.
func (l *EntityList) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e) {
				return
			}
		}
	}
}

// SetTilemap associates a tilemap with the list. Pass nil to clear it.
func (l *EntityList) SetTilemap(tm Tilemap) {
	l.tilemap = tm
}

// Tilemap returns the associated tilemap, or nil.
func (l *EntityList) Tilemap() Tilemap {
	return l.tilemap
}

// SetCollisionResolver sets the resolver consulted after each axis of
// movement during Update. Pass nil to disable collision resolution.
func (l *EntityList) SetCollisionResolver(r CollisionResolver) {
	l.resolver = r
}

// SetEventStore sets the optional bridge that receives collision events.
func (l *EntityList) SetEventStore(store EventStore) {
	l.store = store
}

// Update advances every entity by dt seconds, then reaps entities that were
// marked deleted. Reaping happens only after every entity has been updated,
// so update callbacks may delete any entity, including their own.
func (l *EntityList) Update(dt float64) {
	l.updating = true
	for e := l.head; e != nil; e = l.cursor {
		// unlink advances the cursor when a callback removes it.
		l.cursor = e.next
		e.Update(dt)
	}
	l.cursor = nil
	l.updating = false
	l.reap()
}

// reap destroys every entity marked deleted.
func (l *EntityList) reap() {
	for e := l.head; e != nil; {
		next := e.next
		if e.deleted {
			l.unlink(e)
			e.release()
		}
		e = next
	}
}

// Destroy destroys every entity in the list exactly once and leaves the list
// empty. The list itself stays usable.
func (l *EntityList) Destroy() {
	for e := l.head; e != nil; {
		next := e.next
		e.release()
		e = next
	}
	l.head = nil
	l.tail = nil
	l.cursor = nil
	l.count = 0
}
