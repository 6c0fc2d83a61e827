package lunar

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for positions, velocities, scroll values and
// scales throughout the API.
type Vec2 struct {
	X, Y float64
}

// lerp blends a toward b by t. t=0 yields a, t=1 yields b.
func lerp(a, b, t float64) float64 {
	return (b-a)*t + a
}

// lerpVec2 blends each component of prev toward curr by t.
func lerpVec2(prev, curr Vec2, t float64) Vec2 {
	return Vec2{lerp(prev.X, curr.X, t), lerp(prev.Y, curr.Y, t)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendErase                   // destination-out (punch transparent holes)
	BlendBelow                   // destination-over (draw behind existing content)
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendBelow:
		return ebiten.BlendDestinationOver
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// EntityFlags is a bitmask of game-defined entity flags. The engine never
// interprets individual bits.
type EntityFlags uint32

// Has reports whether every bit in mask is set.
func (f EntityFlags) Has(mask EntityFlags) bool {
	return f&mask == mask
}

// LayerKind distinguishes rendering behavior for a Layer.
type LayerKind uint8

const (
	LayerTilemap LayerKind = iota // draws a region of a Tilemap
	LayerEntity                   // draws the entities of an EntityList
	LayerCustom                   // invokes a CustomLayerFunc
)

// String returns a short lowercase name for the kind.
func (k LayerKind) String() string {
	switch k {
	case LayerTilemap:
		return "tilemap"
	case LayerEntity:
		return "entity"
	case LayerCustom:
		return "custom"
	default:
		return "unknown"
	}
}
