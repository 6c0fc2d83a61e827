package lunar

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoopConfig configures a Loop. Zero values get sensible defaults.
type LoopConfig struct {
	// ScreenWidth and ScreenHeight are the logical screen size returned
	// from Layout and used for layer projection. Default 640×480.
	ScreenWidth, ScreenHeight int

	// Layers is drawn every frame. A new empty list is created if nil.
	Layers *LayerList
	// Entities are updated every tick, in order.
	Entities []*EntityList
	// Tilemaps have their animation clocks advanced every tick.
	Tilemaps []*TileGrid

	// OnTick runs game logic once per tick, after the layer snapshot and
	// before entities are updated. A non-nil error stops the loop.
	OnTick func(dt float64) error

	// ClearColor fills the screen before drawing when non-nil.
	ClearColor color.Color
}

// Loop drives a LayerList and its entity lists at a fixed tick rate and
// draws interpolated frames in between. It implements ebiten.Game.
type Loop struct {
	cfg      LoopConfig
	drawList *DrawList
	lastTick time.Time
	ticks    uint64

	now func() time.Time
}

// NewLoop creates a loop from cfg.
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = 640
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = 480
	}
	if cfg.Layers == nil {
		cfg.Layers = NewLayerList()
	}
	return &Loop{
		cfg:      cfg,
		drawList: NewDrawList(),
		now:      time.Now,
	}
}

// Layers returns the layer list drawn by the loop.
func (g *Loop) Layers() *LayerList {
	return g.cfg.Layers
}

// Ticks returns the number of completed ticks.
func (g *Loop) Ticks() uint64 {
	return g.ticks
}

// Update runs one tick of 1/TPS seconds.
func (g *Loop) Update() error {
	return g.Tick(1 / float64(ebiten.TPS()))
}

// Tick runs one simulation step of dt seconds: layer snapshot, OnTick,
// camera animation, tile animations, then entity updates.
func (g *Loop) Tick(dt float64) error {
	g.cfg.Layers.Snapshot()
	if g.cfg.OnTick != nil {
		if err := g.cfg.OnTick(dt); err != nil {
			return fmt.Errorf("lunar: tick %d: %w", g.ticks, err)
		}
	}
	g.cfg.Layers.Update(float32(dt))
	for _, tm := range g.cfg.Tilemaps {
		tm.Update(dt)
	}
	for _, l := range g.cfg.Entities {
		l.Update(dt)
	}
	g.ticks++
	g.lastTick = g.now()
	return nil
}

// Interpolation returns how far the current frame lies between the last
// tick and the next one, clamped to [0, 1].
func (g *Loop) Interpolation() float64 {
	if g.lastTick.IsZero() {
		return 1
	}
	t := g.now().Sub(g.lastTick).Seconds() * float64(ebiten.TPS())
	return max(0, min(t, 1))
}

// Draw renders an interpolated frame onto screen.
func (g *Loop) Draw(screen *ebiten.Image) {
	g.Render(screen, g.Interpolation())
}

// Render draws the layers at interpolation factor t onto dst.
func (g *Loop) Render(dst *ebiten.Image, t float64) {
	if g.cfg.ClearColor != nil {
		dst.Fill(g.cfg.ClearColor)
	}
	g.cfg.Layers.Draw(g.cfg.ScreenWidth, g.cfg.ScreenHeight, t, g.drawList)
	g.drawList.Flush(dst)
}

// Layout returns the configured logical screen size.
func (g *Loop) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
