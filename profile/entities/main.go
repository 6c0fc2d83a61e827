// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/lunar"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	ticks := 600
	entities := 5000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, entities)
	p.Stop()
}

// run simulates a spawn-heavy scene: every tick a tenth of the entities
// delete themselves and are replaced, then the layer list is drawn into a
// draw list that is never flushed.
func run(rounds, ticks, numEntities int) {
	tex := ebiten.NewImage(8, 8)
	for range rounds {
		list := lunar.NewEntityList()
		b := lunar.NewEntityBuilder()
		b.SetProperty("ttl", lunar.IntProperty(0))
		b.AddTextureCallback(func(*lunar.Entity) lunar.TextureFrame {
			return lunar.TextureFrame{Texture: tex, Width: 8, Height: 8}
		})
		b.AddUpdateCallback(func(e *lunar.Entity, dt float64) {
			ttl := e.PropertyOr("ttl", lunar.IntProperty(0)).Int + 1
			if ttl >= 10 {
				e.Delete()
				return
			}
			e.SetProperty("ttl", lunar.IntProperty(ttl))
		})
		for i := range numEntities {
			e := list.NewEntity(b, float64(i%100), float64(i/100))
			e.DrawPriority = i % 5
		}

		layers := lunar.NewLayerList()
		layers.AddEntityLayer(list)
		d := lunar.NewDrawList()
		for range ticks {
			layers.Snapshot()
			list.Update(1.0 / 60)
			for list.Len() < numEntities {
				list.NewEntity(b, 0, 0)
			}
			layers.Draw(640, 480, 1, d)
			d.Reset()
		}
		layers.Destroy()
		list.Destroy()
		b.Destroy()
	}
}
