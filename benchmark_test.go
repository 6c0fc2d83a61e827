package lunar

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchLayers creates a layer list with one entity layer of n textured
// entities laid out on a 100-wide grid.
func setupBenchLayers(n int) (*LayerList, *EntityList) {
	tex := ebiten.NewImage(32, 32)
	b := NewEntityBuilder()
	b.AddTextureCallback(func(*Entity) TextureFrame {
		return TextureFrame{Texture: tex, Width: 32, Height: 32}
	})
	list := NewEntityList()
	for i := 0; i < n; i++ {
		e := list.NewEntity(b, float64(i%100)*40, float64(i/100)*40)
		e.DrawPriority = i % 7
	}
	ll := NewLayerList()
	ll.AddEntityLayer(list)
	return ll, list
}

func BenchmarkEntityListUpdate_10000(b *testing.B) {
	_, list := setupBenchLayers(10000)
	for e := range list.All() {
		e.SetVelocity(1, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Update(1.0 / 60)
	}
}

func BenchmarkLayerListDraw_10000Entities(b *testing.B) {
	ll, _ := setupBenchLayers(10000)
	d := NewDrawList()

	// Warm up: first draw grows sortBuf and the command buffer.
	ll.Draw(1280, 720, 1, d)
	d.Reset()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ll.Draw(1280, 720, 1, d)
		d.Reset()
	}
}

func BenchmarkTileGridDrawRegion_Viewport(b *testing.B) {
	sheet := NewTileSheet(ebiten.NewImage(256, 256), 16, 16)
	data := make([]uint32, 512*512)
	for i := range data {
		data[i] = uint32(i%256) + 1
	}
	grid := NewTileGrid(512, 512, data, sheet)
	d := NewDrawList()
	window := Rect{X: 100, Y: 100, Width: 82, Height: 47}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.DrawRegion(d, -100, -100, window, 1, 1)
		d.Reset()
	}
}

func BenchmarkDeferredDelete_HalfList(b *testing.B) {
	builder := NewEntityBuilder()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		list := NewEntityList()
		for j := 0; j < 1000; j++ {
			e := list.NewEntity(builder, 0, 0)
			if j%2 == 0 {
				e.Delete()
			}
		}
		b.StartTimer()
		list.Update(0)
	}
}
