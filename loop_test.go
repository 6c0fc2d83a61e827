package lunar

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewLoopDefaults(t *testing.T) {
	g := NewLoop(LoopConfig{})
	if w, h := g.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
	if g.Layers() == nil {
		t.Error("Layers should be created when nil")
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks = %d", g.Ticks())
	}
}

func TestLoopTickOrder(t *testing.T) {
	var order []string
	ll := NewLayerList()
	layer := ll.AddCustomLayer(func(DrawSink, CustomLayerParams) {})
	layer.SetScale(2, 2)

	b := NewEntityBuilder()
	b.AddUpdateCallback(func(e *Entity, dt float64) {
		order = append(order, "entity")
	})
	list := NewEntityList()
	list.NewEntity(b, 0, 0)

	g := NewLoop(LoopConfig{
		Layers:   ll,
		Entities: []*EntityList{list},
		OnTick: func(dt float64) error {
			// Snapshot has already happened this tick.
			if layer.prevScale != (Vec2{2, 2}) {
				t.Errorf("prevScale = %v, want snapshot before OnTick", layer.prevScale)
			}
			order = append(order, "tick")
			return nil
		},
	})

	if err := g.Tick(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if want := []string{"tick", "entity"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", g.Ticks())
	}
}

func TestLoopTickError(t *testing.T) {
	errBoom := errors.New("boom")
	updated := false
	b := NewEntityBuilder()
	b.AddUpdateCallback(func(*Entity, float64) { updated = true })
	list := NewEntityList()
	list.NewEntity(b, 0, 0)

	g := NewLoop(LoopConfig{
		Entities: []*EntityList{list},
		OnTick:   func(float64) error { return errBoom },
	})
	err := g.Tick(1)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if updated {
		t.Error("entities should not update after OnTick fails")
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", g.Ticks())
	}
}

func TestLoopAdvancesTilemaps(t *testing.T) {
	sheet := newTestSheet()
	grid := NewTileGrid(1, 1, []uint32{1}, sheet)
	grid.SetAnimations(map[uint32][]AnimFrame{1: {{GID: 1, Duration: 10}, {GID: 2, Duration: 10}}})
	g := NewLoop(LoopConfig{Tilemaps: []*TileGrid{grid}})

	if err := g.Tick(0.015); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(grid.animElapsed, 15, 1e-6) {
		t.Errorf("animElapsed = %v, want 15", grid.animElapsed)
	}
}

func TestLoopInterpolation(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	g := NewLoop(LoopConfig{})
	g.now = func() time.Time { return now }

	if got := g.Interpolation(); got != 1 {
		t.Errorf("before first tick = %v, want 1", got)
	}
	if err := g.Tick(1.0 / 60); err != nil {
		t.Fatal(err)
	}

	tickLen := time.Second / time.Duration(ebiten.TPS())
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"at tick", 0, 0},
		{"half", tickLen / 2, 0.5},
		{"past next tick", tickLen * 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = base.Add(tt.elapsed)
			if got := g.Interpolation(); !approxEqual(got, tt.want, 0.01) {
				t.Errorf("Interpolation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoopRender(t *testing.T) {
	called := 0
	ll := NewLayerList()
	tex := newTestTexture()
	ll.AddCustomLayer(func(sink DrawSink, _ CustomLayerParams) {
		called++
		sink.Append(DrawCommand{Texture: tex, Width: 16, Height: 16})
	})
	g := NewLoop(LoopConfig{ScreenWidth: 64, ScreenHeight: 64, Layers: ll})

	screen := ebiten.NewImage(64, 64)
	g.Render(screen, 1)

	if called != 1 {
		t.Errorf("layer drawn %d times, want 1", called)
	}
	if g.drawList.Len() != 0 {
		t.Error("draw list should be flushed after Render")
	}
}
