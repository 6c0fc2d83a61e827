package lunar

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawListAppendDropsNilTexture(t *testing.T) {
	d := NewDrawList()
	d.Append(DrawCommand{Width: 1, Height: 1})
	d.Append(DrawCommand{Texture: newTestTexture(), Width: 1, Height: 1})
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}

func TestDrawListReset(t *testing.T) {
	var d DrawList // zero value is usable
	tex := newTestTexture()
	for range 3 {
		d.Append(DrawCommand{Texture: tex})
	}
	capBefore := cap(d.Commands())
	d.Reset()
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}
	if cap(d.commands) != capBefore {
		t.Error("Reset should keep the buffer")
	}
}

func TestDrawListPreservesOrder(t *testing.T) {
	d := NewDrawList()
	a, b := newTestTexture(), newTestTexture()
	d.Append(DrawCommand{Texture: a, X: 1})
	d.Append(DrawCommand{Texture: b, X: 2})
	d.Append(DrawCommand{Texture: a, X: 3})
	cmds := d.Commands()
	for i, want := range []float64{1, 2, 3} {
		if cmds[i].X != want {
			t.Errorf("cmds[%d].X = %v, want %v", i, cmds[i].X, want)
		}
	}
}

func TestCountBatches(t *testing.T) {
	a, b := newTestTexture(), newTestTexture()
	tests := []struct {
		name string
		cmds []DrawCommand
		want int
	}{
		{"empty", nil, 0},
		{"single", []DrawCommand{{Texture: a}}, 1},
		{"same texture", []DrawCommand{{Texture: a}, {Texture: a}, {Texture: a}}, 1},
		{"alternating", []DrawCommand{{Texture: a}, {Texture: b}, {Texture: a}}, 3},
		{"blend change", []DrawCommand{{Texture: a}, {Texture: a, BlendMode: BlendAdd}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countBatches(tt.cmds); got != tt.want {
				t.Errorf("countBatches = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawListFlush(t *testing.T) {
	target := ebiten.NewImage(64, 64)
	tex := newTestTexture()
	d := NewDrawList()
	d.Append(DrawCommand{Texture: tex, X: 4, Y: 4, Width: 16, Height: 16})
	d.Append(DrawCommand{Texture: tex, X: 20, Y: 4, Width: -16, Height: 16, Src: image.Rect(0, 0, 8, 8)})
	d.Append(DrawCommand{Texture: tex, Width: 0, Height: 16}) // skipped

	d.Flush(target)

	if d.Len() != 0 {
		t.Errorf("Len after Flush = %d, want 0", d.Len())
	}
}
