package lunar

// EntityBuilder is a template used to stamp out entities that share the same
// hitbox, flags, draw priority, callbacks and default properties.
//
// Callbacks are shared by reference with every entity built from the
// builder: adding a callback after entities exist makes it visible to them
// too. Properties are deep-copied into each entity at creation time.
type EntityBuilder struct {
	callbacks    *callbackSet
	properties   propertyList
	width        float64
	height       float64
	drawPriority int
	flags        EntityFlags
	destroyed    bool
}

// NewEntityBuilder creates an empty builder.
func NewEntityBuilder() *EntityBuilder {
	return &EntityBuilder{callbacks: &callbackSet{}}
}

func (b *EntityBuilder) mustBeAlive() {
	if b == nil {
		panic("lunar: nil entity builder")
	}
	if b.destroyed {
		panic("lunar: entity builder has been destroyed")
	}
}

// AddTextureCallback appends a texture provider. Providers are asked in
// registration order and the first one returning a texture wins.
func (b *EntityBuilder) AddTextureCallback(fn TextureFunc) {
	b.mustBeAlive()
	b.callbacks.texture = append(b.callbacks.texture, fn)
}

// AddUpdateCallback appends a per-tick update hook.
func (b *EntityBuilder) AddUpdateCallback(fn UpdateFunc) {
	b.mustBeAlive()
	b.callbacks.update = append(b.callbacks.update, fn)
}

// AddCollisionCallback appends a collision hook.
func (b *EntityBuilder) AddCollisionCallback(fn CollisionFunc) {
	b.mustBeAlive()
	b.callbacks.collision = append(b.callbacks.collision, fn)
}

// SetHitboxSize sets the width and height given to new entities.
func (b *EntityBuilder) SetHitboxSize(width, height float64) {
	b.mustBeAlive()
	b.width = width
	b.height = height
}

// HitboxSize returns the configured hitbox size.
func (b *EntityBuilder) HitboxSize() (width, height float64) {
	return b.width, b.height
}

// SetFlags replaces the flag set.
func (b *EntityBuilder) SetFlags(flags EntityFlags) {
	b.mustBeAlive()
	b.flags = flags
}

// AppendFlags sets the given bits.
func (b *EntityBuilder) AppendFlags(flags EntityFlags) {
	b.mustBeAlive()
	b.flags |= flags
}

// ClearFlags clears the given bits.
func (b *EntityBuilder) ClearFlags(flags EntityFlags) {
	b.mustBeAlive()
	b.flags &^= flags
}

// Flags returns the configured flag set.
func (b *EntityBuilder) Flags() EntityFlags {
	return b.flags
}

// SetDrawPriority sets the default draw priority of new entities.
func (b *EntityBuilder) SetDrawPriority(priority int) {
	b.mustBeAlive()
	b.drawPriority = priority
}

// DrawPriority returns the default draw priority.
func (b *EntityBuilder) DrawPriority() int {
	return b.drawPriority
}

// SetProperty sets a default property, overwriting any previous value with
// the same name.
func (b *EntityBuilder) SetProperty(name string, p Property) {
	b.mustBeAlive()
	b.properties.set(name, p)
}

// NumProperties returns the number of default properties.
func (b *EntityBuilder) NumProperties() int {
	return len(b.properties)
}

// Destroy releases the builder's properties and its reference to the
// callback set. Entities already built keep their callbacks. The builder
// must not be used afterwards.
func (b *EntityBuilder) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.callbacks = nil
	b.properties = nil
}
