package lunar

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureFrame is what a texture callback provides for one frame.
// Width and Height are the intrinsic draw size in pixels; a negative value
// mirrors the sprite on that axis. Src selects the atlas sub-rectangle; the
// zero rectangle samples the whole texture.
type TextureFrame struct {
	Texture       *ebiten.Image
	Width, Height float64
	Src           image.Rectangle
}

// TextureFunc supplies the texture for an entity. Returning a frame with a
// nil Texture passes the request on to the next provider.
type TextureFunc func(e *Entity) TextureFrame

// UpdateFunc runs once per tick before the entity's position is integrated.
// It may change velocity, flags or properties, or delete entities.
type UpdateFunc func(e *Entity, dt float64)

// CollisionFunc is invoked when e collides with other.
type CollisionFunc func(e, other *Entity)

// callbackSet is shared by a builder and every entity built from it.
type callbackSet struct {
	texture   []TextureFunc
	update    []UpdateFunc
	collision []CollisionFunc
}

// entityIDCounter is a plain counter; lunar is single-threaded.
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a positioned, velocity-driven game object. Entities are created
// by EntityList.NewEntity and always belong to exactly one list until they
// are destroyed.
type Entity struct {
	// Identity
	ID uint32

	// Position in tile units (pixels when the list has no tilemap).
	X, Y float64
	// Velocity in units per second.
	VelX, VelY float64
	// Hitbox size.
	Width, Height float64

	// DrawPriority orders entities within a layer; lower values draw first.
	DrawPriority int
	Flags        EntityFlags

	prevX, prevY float64
	lastDrawnX   float64
	lastDrawnY   float64
	deleted      bool
	destroyed    bool
	platform     *Entity
	properties   propertyList
	callbacks    *callbackSet
	list         *EntityList
	prev, next   *Entity
}

// Position returns the current position.
func (e *Entity) Position() (x, y float64) {
	return e.X, e.Y
}

// SetPosition moves the entity. The previous position is left untouched, so
// the move is interpolated on the next frame; call Teleport to avoid that.
func (e *Entity) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
}

// Teleport moves the entity and its previous position together so that
// interpolation does not smear the jump across a frame.
func (e *Entity) Teleport(x, y float64) {
	e.X, e.prevX = x, x
	e.Y, e.prevY = y, y
}

// Velocity returns the current velocity.
func (e *Entity) Velocity() (vx, vy float64) {
	return e.VelX, e.VelY
}

// SetVelocity sets the current velocity.
func (e *Entity) SetVelocity(vx, vy float64) {
	e.VelX = vx
	e.VelY = vy
}

// PrevPosition returns the position snapshotted at the start of the last
// update step.
func (e *Entity) PrevPosition() (x, y float64) {
	return e.prevX, e.prevY
}

// LastDrawnPosition returns the top-left screen position used the last time
// the entity was drawn.
func (e *Entity) LastDrawnPosition() (x, y float64) {
	return e.lastDrawnX, e.lastDrawnY
}

// HasFlags reports whether every bit in mask is set.
func (e *Entity) HasFlags(mask EntityFlags) bool {
	return e.Flags.Has(mask)
}

// Platform returns the entity this one rides on, or nil.
func (e *Entity) Platform() *Entity {
	return e.platform
}

// SetPlatform records the entity this one rides on. The reference is not
// owned and is not validated; clearing it when the platform goes away is the
// caller's job.
func (e *Entity) SetPlatform(platform *Entity) {
	e.platform = platform
}

// --- Properties ---

// Property returns the property called name.
func (e *Entity) Property(name string) (Property, bool) {
	return e.properties.get(name)
}

// PropertyOr returns the property called name, or def if it is not set.
func (e *Entity) PropertyOr(name string, def Property) Property {
	if p, ok := e.properties.get(name); ok {
		return p
	}
	return def
}

// SetProperty sets the property called name, overwriting any previous value.
func (e *Entity) SetProperty(name string, p Property) {
	if globalDebug {
		debugCheckDestroyed(e, "SetProperty")
	}
	e.properties.set(name, p)
}

// DeleteProperty removes the property called name. It reports whether the
// property existed.
func (e *Entity) DeleteProperty(name string) bool {
	return e.properties.remove(name)
}

// NumProperties returns the number of properties on the entity.
func (e *Entity) NumProperties() int {
	return len(e.properties)
}

// PropertyKey returns the name of the i-th property in insertion order.
func (e *Entity) PropertyKey(i int) (string, bool) {
	return e.properties.key(i)
}

// --- Lifecycle ---

// Delete marks the entity for removal. It stays in its list, and is skipped
// by update and draw, until the list's next Update reaps it.
func (e *Entity) Delete() {
	e.deleted = true
}

// Deleted reports whether the entity has been marked for removal.
func (e *Entity) Deleted() bool {
	return e.deleted
}

// IsDestroyed reports whether the entity has been removed from its list and
// released.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// Destroy removes the entity from its list immediately and releases its
// properties. Prefer Delete while an update pass may be iterating the list.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	if globalDebug {
		debugCheckUpdating(e, "Destroy")
	}
	if e.list != nil {
		e.list.unlink(e)
	}
	e.release()
}

// release drops everything the entity owns. The entity must already be
// unlinked.
func (e *Entity) release() {
	e.destroyed = true
	e.deleted = true
	e.properties = nil
	e.callbacks = nil
	e.platform = nil
	e.list = nil
	e.prev = nil
	e.next = nil
}

// List returns the entity list that currently holds the entity.
func (e *Entity) List() *EntityList {
	return e.list
}

// ChangeList moves the entity to the tail of dst. Properties and callbacks
// are kept.
func (e *Entity) ChangeList(dst *EntityList) {
	if globalDebug {
		debugCheckDestroyed(e, "ChangeList")
	}
	if dst == nil {
		panic("lunar: cannot move entity to nil list")
	}
	if e.list != nil {
		e.list.unlink(e)
	}
	dst.link(e)
}

// Next returns the following entity in the list, or nil at the end.
func (e *Entity) Next() *Entity {
	return e.next
}

// Prev returns the preceding entity in the list, or nil at the start.
func (e *Entity) Prev() *Entity {
	return e.prev
}

// --- Simulation ---

// Update runs one simulation step. Deleted entities are left alone.
// Otherwise the update callbacks run in order, the current position is
// snapshotted for interpolation, and the position is integrated on Y then X,
// with the list's collision resolver consulted after each axis.
func (e *Entity) Update(dt float64) {
	if e.deleted {
		return
	}
	for _, fn := range e.callbacks.update {
		fn(e, dt)
	}
	// A callback may have moved us to a list with a different resolver, or
	// destroyed us outright.
	if e.destroyed {
		return
	}

	var resolver CollisionResolver
	if e.list != nil {
		resolver = e.list.resolver
	}

	e.prevX = e.X
	e.prevY = e.Y

	e.Y += e.VelY * dt
	if resolver != nil {
		resolver.ResolveY(e)
	}
	e.X += e.VelX * dt
	if resolver != nil {
		resolver.ResolveX(e)
	}
}

// Collide runs the collision callbacks with other as the counterpart, and
// forwards the collision to the list's event store if one is set.
func (e *Entity) Collide(other *Entity) {
	if e.callbacks == nil {
		return
	}
	for _, fn := range e.callbacks.collision {
		fn(e, other)
	}
	if e.list != nil && e.list.store != nil {
		e.list.store.EmitCollision(newCollisionEvent(e, other))
	}
}

// --- Drawing ---

// Draw emits the entity's sprite with its bottom-center anchored at screen
// position (x, y). Nothing is drawn when the entity is deleted or no texture
// callback yields a texture. It reports whether a command was emitted.
func (e *Entity) Draw(x, y, scaleW, scaleH float64, sink DrawSink) bool {
	if e.deleted || e.callbacks == nil {
		return false
	}
	var frame TextureFrame
	for _, fn := range e.callbacks.texture {
		frame = fn(e)
		if frame.Texture != nil {
			break
		}
	}
	if frame.Texture == nil {
		return false
	}

	absW := math.Abs(frame.Width)
	absH := math.Abs(frame.Height)
	e.lastDrawnX = x - absW*scaleW/2
	e.lastDrawnY = y - absH*scaleH
	sink.Append(DrawCommand{
		Texture: frame.Texture,
		X:       e.lastDrawnX,
		Y:       e.lastDrawnY,
		Width:   frame.Width * scaleW,
		Height:  frame.Height * scaleH,
		Src:     frame.Src,
	})
	return true
}
