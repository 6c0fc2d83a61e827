package lunar

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Layer simultaneously.
// Create one via the convenience constructors (TweenLayerScale,
// TweenLayerScrollOffset, TweenLayerScrollSpeed) and call Update(dt) once
// per tick, after LayerList.Snapshot, so the change is interpolated. If the
// target layer is destroyed, the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	target *Layer
	Done   bool
}

// Update advances both tweens by dt seconds and writes the values to the
// target layer. If the layer has been destroyed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func newVec2Tween(layer *Layer, field *Vec2, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: layer}
	g.tweens[0] = gween.New(float32(field.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(field.Y), float32(toY), duration, fn)
	g.fields[0] = &field.X
	g.fields[1] = &field.Y
	return g
}

// TweenLayerScale creates a TweenGroup that animates the layer's scale to
// (toW, toH) over the specified duration using the easing function.
func TweenLayerScale(layer *Layer, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(layer, &layer.scale, toW, toH, duration, fn)
}

// TweenLayerScrollOffset creates a TweenGroup that animates the layer's
// scroll offset to (toX, toY).
func TweenLayerScrollOffset(layer *Layer, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(layer, &layer.scrollOffset, toX, toY, duration, fn)
}

// TweenLayerScrollSpeed creates a TweenGroup that animates the layer's
// scroll speed to (toX, toY).
func TweenLayerScrollSpeed(layer *Layer, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(layer, &layer.scrollSpeed, toX, toY, duration, fn)
}
