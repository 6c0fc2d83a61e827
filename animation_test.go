package lunar

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenLayerScaleReachesTarget(t *testing.T) {
	ll := NewLayerList()
	l := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})

	tw := TweenLayerScale(l, 2, 3, 1.0, ease.Linear)
	tw.Update(0.5)
	if w, _ := l.Scale(); math.Abs(w-1.5) > 0.01 {
		t.Errorf("halfway scale w = %f, want ~1.5", w)
	}
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected done after full duration")
	}
	if w, h := l.Scale(); math.Abs(w-2) > 0.01 || math.Abs(h-3) > 0.01 {
		t.Errorf("Scale = (%f, %f), want ~(2, 3)", w, h)
	}
}

func TestTweenLayerScrollOffsetAndSpeed(t *testing.T) {
	ll := NewLayerList()
	l := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})

	off := TweenLayerScrollOffset(l, 10, -10, 0.5, ease.Linear)
	spd := TweenLayerScrollSpeed(l, 0, 0.5, 0.5, ease.Linear)
	off.Update(0.5)
	spd.Update(0.5)

	if x, y := l.ScrollOffset(); math.Abs(x-10) > 0.01 || math.Abs(y+10) > 0.01 {
		t.Errorf("ScrollOffset = (%f, %f), want ~(10, -10)", x, y)
	}
	if x, y := l.ScrollSpeed(); math.Abs(x) > 0.01 || math.Abs(y-0.5) > 0.01 {
		t.Errorf("ScrollSpeed = (%f, %f), want ~(0, 0.5)", x, y)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	ll := NewLayerList()
	l := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})
	g := TweenLayerScale(l, 4, 4, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}
	// No-op once done.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupStopsOnDestroyedLayer(t *testing.T) {
	ll := NewLayerList()
	l := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})
	g := TweenLayerScale(l, 5, 5, 1, ease.Linear)
	l.Destroy()

	g.Update(0.5)
	if !g.Done {
		t.Error("tween on a destroyed layer should be Done")
	}
	if w, _ := l.Scale(); w != 1 {
		t.Errorf("destroyed layer was written: scale = %v", w)
	}
}

func TestTweenInterpolatesAfterSnapshot(t *testing.T) {
	ll := NewLayerList()
	l := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})
	g := TweenLayerScrollOffset(l, 8, 0, 1, ease.Linear)

	ll.Snapshot()
	g.Update(0.5)

	if l.prevScrollOffset.X != 0 || math.Abs(l.scrollOffset.X-4) > 0.01 {
		t.Errorf("prev=%v curr=%v, want 0 and ~4", l.prevScrollOffset.X, l.scrollOffset.X)
	}
}

func TestScrollCameraTo(t *testing.T) {
	ll := NewLayerList()
	ll.SetCamera(0, 100)
	ll.ScrollCameraTo(100, 0, 1, ease.Linear)

	if !ll.CameraScrolling() {
		t.Fatal("CameraScrolling should be true")
	}
	ll.Update(0.5)
	if x, y := ll.Camera(); math.Abs(x-50) > 0.01 || math.Abs(y-50) > 0.01 {
		t.Errorf("halfway camera = (%f, %f), want ~(50, 50)", x, y)
	}
	ll.Update(0.5)
	if x, y := ll.Camera(); math.Abs(x-100) > 0.01 || math.Abs(y) > 0.01 {
		t.Errorf("final camera = (%f, %f), want ~(100, 0)", x, y)
	}
	if ll.CameraScrolling() {
		t.Error("scroll should be finished")
	}
}

func TestStopCameraScroll(t *testing.T) {
	ll := NewLayerList()
	ll.ScrollCameraTo(100, 100, 1, ease.Linear)
	ll.Update(0.25)
	ll.StopCameraScroll()
	x, _ := ll.Camera()
	ll.Update(0.5)
	if x2, _ := ll.Camera(); x2 != x {
		t.Errorf("camera moved after stop: %v -> %v", x, x2)
	}
	if ll.CameraScrolling() {
		t.Error("CameraScrolling should be false after stop")
	}
}
