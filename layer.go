package lunar

// CustomLayerParams carries the interpolated projection of a custom layer
// for the current frame. OffsetX/OffsetY are the world position (in layer
// units) of the screen's top-left corner.
type CustomLayerParams struct {
	OffsetX, OffsetY float64
	ScaleW, ScaleH   float64
}

// CustomLayerFunc draws a custom layer. State is captured by the closure.
type CustomLayerFunc func(sink DrawSink, p CustomLayerParams)

// Layer is a renderable slab of the scene: a tilemap, a list of entities or
// a custom draw function, with its own scroll offset, scroll speed and
// scale. Each of those keeps its value from the previous tick so frames
// between ticks can be interpolated.
//
// Tilemap and entity-list payloads are borrowed; the layer never destroys
// them.
type Layer struct {
	kind     LayerKind
	tilemap  Tilemap
	entities *EntityList
	custom   CustomLayerFunc

	scrollOffset, prevScrollOffset Vec2
	scrollSpeed, prevScrollSpeed   Vec2
	scale, prevScale               Vec2

	// Visible layers are drawn. Defaults to true.
	Visible bool

	list      *LayerList
	destroyed bool
}

func newLayer(kind LayerKind) *Layer {
	one := Vec2{1, 1}
	return &Layer{
		kind:            kind,
		scrollSpeed:     one,
		prevScrollSpeed: one,
		scale:           one,
		prevScale:       one,
		Visible:         true,
	}
}

// Kind returns the layer kind.
func (l *Layer) Kind() LayerKind {
	return l.kind
}

// Tilemap returns the tilemap of a tilemap layer, or nil for other kinds.
func (l *Layer) Tilemap() Tilemap {
	return l.tilemap
}

// Entities returns the entity list of an entity layer, or nil for other kinds.
func (l *Layer) Entities() *EntityList {
	return l.entities
}

// List returns the layer list holding the layer, or nil once destroyed.
func (l *Layer) List() *LayerList {
	return l.list
}

// SetScrollOffset sets the scroll offset in layer units.
func (l *Layer) SetScrollOffset(x, y float64) {
	if globalDebug {
		debugCheckLayerDestroyed(l, "SetScrollOffset")
	}
	l.scrollOffset = Vec2{x, y}
}

// ScrollOffset returns the current scroll offset.
func (l *Layer) ScrollOffset() (x, y float64) {
	return l.scrollOffset.X, l.scrollOffset.Y
}

// SetScrollSpeed sets how fast the layer follows the camera on each axis.
// 1 follows the camera exactly, 0 pins the layer to the screen, values in
// between give parallax.
func (l *Layer) SetScrollSpeed(x, y float64) {
	if globalDebug {
		debugCheckLayerDestroyed(l, "SetScrollSpeed")
	}
	l.scrollSpeed = Vec2{x, y}
}

// ScrollSpeed returns the current scroll speed.
func (l *Layer) ScrollSpeed() (x, y float64) {
	return l.scrollSpeed.X, l.scrollSpeed.Y
}

// SetScale sets the layer's zoom on each axis.
func (l *Layer) SetScale(w, h float64) {
	if globalDebug {
		debugCheckLayerDestroyed(l, "SetScale")
	}
	l.scale = Vec2{w, h}
}

// Scale returns the current scale.
func (l *Layer) Scale() (w, h float64) {
	return l.scale.X, l.scale.Y
}

// snapshot copies current values into their previous-tick counterparts.
func (l *Layer) snapshot() {
	l.prevScale = l.scale
	l.prevScrollSpeed = l.scrollSpeed
	l.prevScrollOffset = l.scrollOffset
}

// blendLayerValue interpolates a layer value for drawing as
// prev + (prev-curr)*t.
func blendLayerValue(prev, curr Vec2, t float64) Vec2 {
	return Vec2{
		(prev.X-curr.X)*t + prev.X,
		(prev.Y-curr.Y)*t + prev.Y,
	}
}

// Index returns the layer's position in its list, or -1 once destroyed.
func (l *Layer) Index() int {
	if l.list == nil {
		return -1
	}
	for i, other := range l.list.layers {
		if other == l {
			return i
		}
	}
	return -1
}

// MoveTo moves the layer to position index. Indices past the end move the
// layer to the back; negative indices move it to the front.
func (l *Layer) MoveTo(index int) {
	if globalDebug {
		debugCheckLayerDestroyed(l, "MoveTo")
	}
	if l.list == nil {
		return
	}
	layers := l.list.layers
	n := len(layers)
	index = max(0, min(index, n-1))
	oldIndex := l.Index()
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(layers[oldIndex:], layers[oldIndex+1:index+1])
	} else {
		copy(layers[index+1:], layers[index:oldIndex])
	}
	layers[index] = l
}

// Destroy removes the layer from its list and drops its payload. The
// tilemap or entity list it displayed is not destroyed.
func (l *Layer) Destroy() {
	if l.destroyed {
		return
	}
	if l.list != nil {
		l.list.removeLayer(l)
	}
	l.dispose()
}

func (l *Layer) dispose() {
	l.destroyed = true
	l.list = nil
	l.tilemap = nil
	l.entities = nil
	l.custom = nil
}

// IsDestroyed reports whether the layer has been destroyed.
func (l *Layer) IsDestroyed() bool {
	return l.destroyed
}
