package lunar

import (
	"iter"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// LayerList owns an ordered collection of layers and the camera they are
// projected through. Layers added first are drawn on top.
type LayerList struct {
	layers []*Layer

	// Camera position in world pixels, this tick and last tick.
	camera     Vec2
	prevCamera Vec2

	scrollTween *scrollAnim

	// Reused per-frame buffer for draw-priority sorting.
	sortBuf []*Entity

	stats debugStats
}

// NewLayerList creates an empty layer list with the camera at the origin.
func NewLayerList() *LayerList {
	return &LayerList{}
}

func (ll *LayerList) addLayer(l *Layer) *Layer {
	l.list = ll
	ll.layers = append(ll.layers, l)
	return l
}

// AddTilemapLayer appends a layer that draws tm.
func (ll *LayerList) AddTilemapLayer(tm Tilemap) *Layer {
	if tm == nil {
		panic("lunar: cannot add nil tilemap layer")
	}
	l := newLayer(LayerTilemap)
	l.tilemap = tm
	return ll.addLayer(l)
}

// AddEntityLayer appends a layer that draws the entities of list.
func (ll *LayerList) AddEntityLayer(list *EntityList) *Layer {
	if list == nil {
		panic("lunar: cannot add nil entity layer")
	}
	l := newLayer(LayerEntity)
	l.entities = list
	return ll.addLayer(l)
}

// AddCustomLayer appends a layer that calls fn every frame.
func (ll *LayerList) AddCustomLayer(fn CustomLayerFunc) *Layer {
	if fn == nil {
		panic("lunar: cannot add nil custom layer")
	}
	l := newLayer(LayerCustom)
	l.custom = fn
	return ll.addLayer(l)
}

// removeLayer removes l from the list without clearing l.list.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (ll *LayerList) removeLayer(l *Layer) {
	for i, other := range ll.layers {
		if other == l {
			copy(ll.layers[i:], ll.layers[i+1:])
			ll.layers[len(ll.layers)-1] = nil
			ll.layers = ll.layers[:len(ll.layers)-1]
			return
		}
	}
}

// Len returns the number of layers.
func (ll *LayerList) Len() int {
	return len(ll.layers)
}

// LayerAt returns the layer at index, or nil if index is out of range.
func (ll *LayerList) LayerAt(index int) *Layer {
	if index < 0 || index >= len(ll.layers) {
		return nil
	}
	return ll.layers[index]
}

// All returns an iterator over the layers front to back.
func (ll *LayerList) All() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		for i, l := range ll.layers {
			if !yield(i, l) {
				return
			}
		}
	}
}

// SetCamera moves the camera. Every layer uses the new position from the
// next frame on.
func (ll *LayerList) SetCamera(x, y float64) {
	ll.camera = Vec2{x, y}
}

// Camera returns the current camera position.
func (ll *LayerList) Camera() (x, y float64) {
	return ll.camera.X, ll.camera.Y
}

// PrevCamera returns the camera position recorded by the last Snapshot.
func (ll *LayerList) PrevCamera() (x, y float64) {
	return ll.prevCamera.X, ll.prevCamera.Y
}

// ScrollCameraTo animates the camera to (x, y) over duration seconds. The
// animation advances in Update.
func (ll *LayerList) ScrollCameraTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	ll.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(ll.camera.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(ll.camera.Y), float32(y), duration, easeFn),
	}
}

// CameraScrolling reports whether a ScrollCameraTo animation is running.
func (ll *LayerList) CameraScrolling() bool {
	return ll.scrollTween != nil
}

// StopCameraScroll cancels a running ScrollCameraTo animation, leaving the
// camera where it is.
func (ll *LayerList) StopCameraScroll() {
	ll.scrollTween = nil
}

// Update advances the camera scroll animation by dt seconds.
func (ll *LayerList) Update(dt float32) {
	st := ll.scrollTween
	if st == nil {
		return
	}
	if !st.doneX {
		val, done := st.tweenX.Update(dt)
		ll.camera.X = float64(val)
		st.doneX = done
	}
	if !st.doneY {
		val, done := st.tweenY.Update(dt)
		ll.camera.Y = float64(val)
		st.doneY = done
	}
	if st.doneX && st.doneY {
		ll.scrollTween = nil
	}
}

// Snapshot records the camera and every layer's scale, scroll speed and
// scroll offset as the previous-tick values used for interpolation. Call it
// exactly once per tick, before that tick's gameplay changes.
func (ll *LayerList) Snapshot() {
	ll.prevCamera = ll.camera
	for _, l := range ll.layers {
		l.snapshot()
	}
}

// Destroy disposes every layer and leaves the list empty. Borrowed tilemaps
// and entity lists are not destroyed.
func (ll *LayerList) Destroy() {
	for i, l := range ll.layers {
		l.dispose()
		ll.layers[i] = nil
	}
	ll.layers = ll.layers[:0]
	ll.scrollTween = nil
	ll.sortBuf = nil
}
