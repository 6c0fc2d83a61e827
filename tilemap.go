package lunar

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset describes the tiles a Tilemap is drawn with.
type Tileset interface {
	// TileSize returns the size of one tile in pixels.
	TileSize() (w, h int)
}

// Tilemap is the narrow view of a tile grid used by tilemap and entity
// layers.
type Tilemap interface {
	// Tileset returns the tileset, or nil if none is assigned yet.
	Tileset() Tileset
	// DrawRegion emits the tiles inside bounds (in tile units) to sink.
	// Tile (col, row) is drawn at screen position
	// ((col+originX)*tileW*scaleW, (row+originY)*tileH*scaleH).
	DrawRegion(sink DrawSink, originX, originY float64, bounds Rect, scaleW, scaleH float64)
}

// GID flag bits (same convention as Tiled TMX format).
const (
	TileFlipH    uint32 = 1 << 31 // horizontal flip
	TileFlipV    uint32 = 1 << 30 // vertical flip
	TileFlipD    uint32 = 1 << 29 // diagonal flip (not supported by DrawCommand; ignored)
	tileFlagMask uint32 = TileFlipH | TileFlipV | TileFlipD
)

// AnimFrame describes a single frame in a tile animation sequence.
type AnimFrame struct {
	GID      uint32 // tile GID for this frame (no flag bits)
	Duration int    // milliseconds
}

// TileSheet is a Tileset cut from a single image laid out as a grid of
// equally sized tiles. GIDs start at 1 in the top-left corner and run
// row-major; GID 0 is the empty tile.
type TileSheet struct {
	image      *ebiten.Image
	tileWidth  int
	tileHeight int
	columns    int
	count      int
}

// NewTileSheet creates a tileset from img with the given tile size.
func NewTileSheet(img *ebiten.Image, tileWidth, tileHeight int) *TileSheet {
	if tileWidth <= 0 || tileHeight <= 0 {
		panic("lunar: tile size must be positive")
	}
	b := img.Bounds()
	cols := b.Dx() / tileWidth
	rows := b.Dy() / tileHeight
	return &TileSheet{
		image:      img,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		columns:    cols,
		count:      cols * rows,
	}
}

// TileSize returns the size of one tile in pixels.
func (s *TileSheet) TileSize() (w, h int) {
	return s.tileWidth, s.tileHeight
}

// Image returns the sheet image.
func (s *TileSheet) Image() *ebiten.Image {
	return s.image
}

// NumTiles returns the number of tiles on the sheet.
func (s *TileSheet) NumTiles() int {
	return s.count
}

// Region returns the source rectangle for gid. Flag bits are ignored.
// ok is false for the empty tile and for GIDs past the end of the sheet.
func (s *TileSheet) Region(gid uint32) (r image.Rectangle, ok bool) {
	id := int(gid &^ tileFlagMask)
	if id <= 0 || id > s.count || s.columns == 0 {
		return image.Rectangle{}, false
	}
	idx := id - 1
	x := (idx % s.columns) * s.tileWidth
	y := (idx / s.columns) * s.tileHeight
	b := s.image.Bounds()
	return image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+s.tileWidth, b.Min.Y+y+s.tileHeight), true
}

// TileGrid is a Tilemap storing a row-major grid of tile GIDs.
type TileGrid struct {
	data   []uint32 // row-major tile GIDs, len = width * height
	width  int      // map width in tiles
	height int      // map height in tiles
	sheet  *TileSheet

	// Animation definitions keyed by base GID, and the elapsed clock in ms.
	anims       map[uint32][]AnimFrame
	animElapsed float64
}

// NewTileGrid creates a grid of w×h tiles. data may be nil, in which case an
// empty grid is allocated; otherwise it must hold w*h GIDs.
func NewTileGrid(w, h int, data []uint32, sheet *TileSheet) *TileGrid {
	if data == nil {
		data = make([]uint32, w*h)
	}
	if len(data) != w*h {
		panic("lunar: tile data length does not match grid size")
	}
	return &TileGrid{data: data, width: w, height: h, sheet: sheet}
}

// Tileset returns the grid's tile sheet, or nil if none is set.
func (g *TileGrid) Tileset() Tileset {
	if g.sheet == nil {
		return nil
	}
	return g.sheet
}

// SetTileSheet replaces the tile sheet.
func (g *TileGrid) SetTileSheet(sheet *TileSheet) {
	g.sheet = sheet
}

// Size returns the grid size in tiles.
func (g *TileGrid) Size() (w, h int) {
	return g.width, g.height
}

// Tile returns the GID at (col, row), or 0 outside the grid.
func (g *TileGrid) Tile(col, row int) uint32 {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return 0
	}
	return g.data[row*g.width+col]
}

// SetTile updates a single tile. Out-of-range coordinates are ignored.
func (g *TileGrid) SetTile(col, row int, gid uint32) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return
	}
	g.data[row*g.width+col] = gid
}

// SetData replaces the entire tile data array.
func (g *TileGrid) SetData(data []uint32, w, h int) {
	if len(data) != w*h {
		panic("lunar: tile data length does not match grid size")
	}
	g.data = data
	g.width = w
	g.height = h
}

// SetAnimations sets the animation definitions for this grid.
// The map is keyed by base GID (no flag bits).
func (g *TileGrid) SetAnimations(anims map[uint32][]AnimFrame) {
	g.anims = anims
}

// Update advances the animation clock by dt seconds.
func (g *TileGrid) Update(dt float64) {
	if dt > 0 {
		g.animElapsed += dt * 1000
	}
}

// animatedGID resolves the frame currently shown for baseGID.
func (g *TileGrid) animatedGID(baseGID uint32) uint32 {
	frames, ok := g.anims[baseGID]
	if !ok || len(frames) == 0 {
		return baseGID
	}
	totalDuration := 0
	for _, f := range frames {
		totalDuration += f.Duration
	}
	if totalDuration == 0 {
		return baseGID
	}
	// Round so accumulated float error cannot miss a frame boundary.
	elapsed := int(math.Round(g.animElapsed)) % totalDuration
	acc := 0
	for _, f := range frames {
		acc += f.Duration
		if elapsed < acc {
			return f.GID
		}
	}
	return frames[0].GID
}

// DrawRegion emits one command per non-empty tile inside bounds, clamped to
// the grid. Horizontal and vertical flip flags produce negative sizes.
func (g *TileGrid) DrawRegion(sink DrawSink, originX, originY float64, bounds Rect, scaleW, scaleH float64) {
	if g.sheet == nil {
		return
	}
	startCol := max(int(math.Floor(bounds.X)), 0)
	startRow := max(int(math.Floor(bounds.Y)), 0)
	endCol := min(int(math.Ceil(bounds.Right())), g.width)
	endRow := min(int(math.Ceil(bounds.Bottom())), g.height)

	tw := float64(g.sheet.tileWidth) * scaleW
	th := float64(g.sheet.tileHeight) * scaleH

	for row := startRow; row < endRow; row++ {
		rowOffset := row * g.width
		for col := startCol; col < endCol; col++ {
			gid := g.data[rowOffset+col]
			if gid == 0 {
				continue // empty tile
			}
			flags := gid & tileFlagMask
			tileID := gid &^ tileFlagMask
			if g.anims != nil {
				tileID = g.animatedGID(tileID)
			}
			src, ok := g.sheet.Region(tileID)
			if !ok {
				continue // invalid GID
			}
			w, h := tw, th
			if flags&TileFlipH != 0 {
				w = -w
			}
			if flags&TileFlipV != 0 {
				h = -h
			}
			sink.Append(DrawCommand{
				Texture: g.sheet.image,
				X:       (float64(col) + originX) * tw,
				Y:       (float64(row) + originY) * th,
				Width:   w,
				Height:  h,
				Src:     src,
			})
		}
	}
}
