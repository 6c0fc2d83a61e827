// entities10k spawns 10,000 entities that bounce around the screen across
// two entity layers with mixed draw priorities. A stress test for the
// update and draw paths. Pass -cpuprofile to write a CPU profile.
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/lunar"
	"github.com/pkg/profile"
)

const (
	screenW = 1280
	screenH = 720
	count   = 10_000
)

func main() {
	cpuProfile := flag.Bool("cpuprofile", false, "write cpu.pprof to the working directory")
	debug := flag.Bool("debug", false, "log per-frame draw stats")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}
	lunar.SetDebugMode(*debug)

	front := lunar.NewEntityList()
	back := lunar.NewEntityList()
	bounds := lunar.ResolverFuncs{
		X: func(e *lunar.Entity) {
			if e.X < 0 || e.X > screenW {
				e.X = max(0, min(e.X, screenW))
				e.VelX = -e.VelX
			}
		},
		Y: func(e *lunar.Entity) {
			if e.Y < 8 || e.Y > screenH {
				e.Y = max(8, min(e.Y, screenH))
				e.VelY = -e.VelY
			}
		},
	}
	front.SetCollisionResolver(bounds)
	back.SetCollisionResolver(bounds)

	palette := []color.RGBA{
		{R: 230, G: 90, B: 90, A: 255},
		{R: 90, G: 200, B: 120, A: 255},
		{R: 90, G: 140, B: 230, A: 255},
		{R: 230, G: 200, B: 80, A: 255},
	}
	builders := make([]*lunar.EntityBuilder, len(palette))
	for i, c := range palette {
		img := ebiten.NewImage(8, 8)
		img.Fill(c)
		b := lunar.NewEntityBuilder()
		b.SetDrawPriority(i)
		b.AddTextureCallback(func(*lunar.Entity) lunar.TextureFrame {
			return lunar.TextureFrame{Texture: img, Width: 8, Height: 8}
		})
		builders[i] = b
	}

	for i := range count {
		list := front
		if i%2 == 1 {
			list = back
		}
		e := list.NewEntity(builders[rand.IntN(len(builders))], rand.Float64()*screenW, 8+rand.Float64()*(screenH-8))
		e.SetVelocity((rand.Float64()-0.5)*240, (rand.Float64()-0.5)*240)
	}

	layers := lunar.NewLayerList()
	layers.AddEntityLayer(front)
	layers.AddEntityLayer(back)
	// The camera sits at the screen centre so world and screen coordinates match.
	layers.SetCamera(screenW/2, screenH/2)

	game := lunar.NewLoop(lunar.LoopConfig{
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		Layers:       layers,
		Entities:     []*lunar.EntityList{front, back},
		ClearColor:   color.RGBA{R: 15, G: 15, B: 23, A: 255},
	})

	ebiten.SetWindowTitle("Lunar: 10k Entities")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
