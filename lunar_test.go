package lunar

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// newTestTexture returns a small image usable as a texture handle.
func newTestTexture() *ebiten.Image {
	return ebiten.NewImage(16, 16)
}

// --- Rect ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: -1, Y: 2, Width: 22, Height: 17}
	if r.Right() != 21 || r.Bottom() != 19 {
		t.Errorf("Right/Bottom = %v/%v, want 21/19", r.Right(), r.Bottom())
	}
}

// --- Interpolation helpers ---

func TestLerp(t *testing.T) {
	if got := lerp(0, 160, 0.5); got != 80 {
		t.Errorf("lerp(0,160,0.5) = %v, want 80", got)
	}
	if got := lerp(3, 7, 0); got != 3 {
		t.Errorf("lerp at t=0 = %v, want 3", got)
	}
	if got := lerp(3, 7, 1); got != 7 {
		t.Errorf("lerp at t=1 = %v, want 7", got)
	}
}

func TestBlendLayerValue(t *testing.T) {
	// Layer values blend away from the current value.
	got := blendLayerValue(Vec2{1, 1}, Vec2{2, 3}, 0.5)
	if !approxEqual(got.X, 0.5, epsilon) || !approxEqual(got.Y, 0, epsilon) {
		t.Errorf("blendLayerValue = %v, want {0.5 0}", got)
	}
	same := blendLayerValue(Vec2{4, 5}, Vec2{4, 5}, 0.7)
	if same != (Vec2{4, 5}) {
		t.Errorf("unchanged value blended to %v, want {4 5}", same)
	}
}

// --- Flags and kinds ---

func TestEntityFlagsHas(t *testing.T) {
	f := EntityFlags(0b1011)
	if !f.Has(0b0011) {
		t.Error("Has(0b0011) = false, want true")
	}
	if f.Has(0b0100) {
		t.Error("Has(0b0100) = true, want false")
	}
	if !f.Has(0) {
		t.Error("Has(0) = false, want true")
	}
}

func TestLayerKindString(t *testing.T) {
	tests := map[LayerKind]string{
		LayerTilemap: "tilemap",
		LayerEntity:  "entity",
		LayerCustom:  "custom",
		LayerKind(9): "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("LayerKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestBlendModeEbitenBlend(t *testing.T) {
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to BlendSourceOver")
	}
	if BlendAdd.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdd should map to BlendLighter")
	}
	if BlendNone.EbitenBlend() != ebiten.BlendCopy {
		t.Error("BlendNone should map to BlendCopy")
	}
}
