package lunar

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawCommand is a single textured quad emitted while drawing layers.
//
// Width and Height are the on-screen size. A negative Width mirrors the
// source horizontally and a negative Height mirrors it vertically; the quad
// still covers [X, X+|Width|] × [Y, Y+|Height|].
type DrawCommand struct {
	Texture       *ebiten.Image
	X, Y          float64
	Width, Height float64
	// Src is the sub-rectangle of Texture to sample. The zero rectangle
	// samples the whole texture.
	Src       image.Rectangle
	BlendMode BlendMode
}

// DrawSink receives draw commands in draw order.
type DrawSink interface {
	Append(cmd DrawCommand)
}

const defaultCommandCap = 1024

// DrawList accumulates draw commands for a frame and submits them to an
// *ebiten.Image on Flush. The zero value is ready to use.
type DrawList struct {
	commands []DrawCommand
	op       ebiten.DrawImageOptions
}

// NewDrawList creates a draw list with a preallocated command buffer.
func NewDrawList() *DrawList {
	return &DrawList{commands: make([]DrawCommand, 0, defaultCommandCap)}
}

// Append adds cmd to the end of the list. Commands with a nil texture are
// dropped.
func (d *DrawList) Append(cmd DrawCommand) {
	if cmd.Texture == nil {
		return
	}
	d.commands = append(d.commands, cmd)
}

// Commands returns the accumulated commands. The returned slice MUST NOT be
// mutated by the caller and is only valid until the next Reset or Flush.
func (d *DrawList) Commands() []DrawCommand {
	return d.commands
}

// Len returns the number of accumulated commands.
func (d *DrawList) Len() int {
	return len(d.commands)
}

// Reset empties the list while keeping its buffer.
func (d *DrawList) Reset() {
	clear(d.commands)
	d.commands = d.commands[:0]
}

// Flush draws every command onto target in append order, then resets the list.
func (d *DrawList) Flush(target *ebiten.Image) {
	for i := range d.commands {
		d.submit(target, &d.commands[i])
	}
	d.Reset()
}

// submit draws a single command using DrawImage.
func (d *DrawList) submit(target *ebiten.Image, cmd *DrawCommand) {
	src := cmd.Src
	if src.Empty() {
		src = cmd.Texture.Bounds()
	}
	if src.Dx() == 0 || src.Dy() == 0 || cmd.Width == 0 || cmd.Height == 0 {
		return
	}
	subImg := cmd.Texture.SubImage(src).(*ebiten.Image)

	sx := cmd.Width / float64(src.Dx())
	sy := cmd.Height / float64(src.Dy())

	// A negative scale mirrors around the origin, so shift the mirrored quad
	// back into [X, X+|Width|].
	tx, ty := cmd.X, cmd.Y
	if cmd.Width < 0 {
		tx -= cmd.Width
	}
	if cmd.Height < 0 {
		ty -= cmd.Height
	}

	op := &d.op
	op.GeoM.Reset()
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	op.Blend = cmd.BlendMode.EbitenBlend()
	target.DrawImage(subImg, op)
}

// countBatches counts contiguous groups of commands sharing the same texture
// and blend mode. This reports how many draw calls a batching backend would
// produce.
func countBatches(commands []DrawCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := &commands[0]
	for i := 1; i < len(commands); i++ {
		cur := &commands[i]
		if cur.Texture != prev.Texture || cur.BlendMode != prev.BlendMode {
			count++
		}
		prev = cur
	}
	return count
}
