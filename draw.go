package lunar

import "time"

// Draw renders every visible layer into sink, back to front: the layer added
// last is drawn first, so earlier layers end up on top. t is the
// interpolation factor in [0, 1] between the previous tick and the current
// one.
func (ll *LayerList) Draw(screenW, screenH int, t float64, sink DrawSink) {
	var t0 time.Time
	var startCmds int
	dl, isDrawList := sink.(*DrawList)
	if globalDebug {
		t0 = time.Now()
		ll.stats = debugStats{}
		if isDrawList {
			startCmds = dl.Len()
		}
	}

	for i := len(ll.layers) - 1; i >= 0; i-- {
		ll.layers[i].Draw(screenW, screenH, t, sink)
	}

	if globalDebug {
		ll.stats.drawTime = time.Since(t0)
		if isDrawList {
			ll.stats.commandCount = dl.Len() - startCmds
			ll.stats.batchCount = countBatches(dl.Commands()[startCmds:])
		}
		ll.debugLog()
	}
}

// tileUnit returns the pixel size of one layer unit.
// ok is false when a tilemap layer has no tileset to draw with.
func (l *Layer) tileUnit() (w, h float64, ok bool) {
	switch l.kind {
	case LayerTilemap:
		ts := l.tilemap.Tileset()
		if ts == nil {
			return 0, 0, false
		}
		tw, th := ts.TileSize()
		return float64(tw), float64(th), true
	case LayerEntity:
		if tm := l.entities.tilemap; tm != nil {
			if ts := tm.Tileset(); ts != nil {
				tw, th := ts.TileSize()
				return float64(tw), float64(th), true
			}
		}
	}
	return 1, 1, true
}

// Projection is the interpolated view of a layer for one frame.
type Projection struct {
	// Offset is the world position, in layer units, of the screen's
	// top-left corner.
	Offset Vec2
	// Scale is the interpolated layer scale.
	Scale Vec2
	// TileW and TileH are the pixel size of one layer unit.
	TileW, TileH float64
	// Window is the visible region in layer units, with one unit of margin
	// on every side.
	Window Rect
}

// Project computes the layer's projection for a screen of the given size at
// interpolation factor t. ok is false when the layer cannot be drawn.
func (l *Layer) Project(screenW, screenH int, t float64) (p Projection, ok bool) {
	if l.list == nil {
		return Projection{}, false
	}
	tileW, tileH, ok := l.tileUnit()
	if !ok {
		return Projection{}, false
	}
	ll := l.list

	cam := lerpVec2(ll.prevCamera, ll.camera, t)
	scale := blendLayerValue(l.prevScale, l.scale, t)
	speed := blendLayerValue(l.prevScrollSpeed, l.scrollSpeed, t)
	offset := blendLayerValue(l.prevScrollOffset, l.scrollOffset, t)

	sw := float64(screenW)
	sh := float64(screenH)
	offX := (cam.X*speed.X-sw/2)/tileW/scale.X + offset.X
	offY := (cam.Y*speed.Y-sh/2)/tileH/scale.Y + offset.Y

	return Projection{
		Offset: Vec2{offX, offY},
		Scale:  scale,
		TileW:  tileW,
		TileH:  tileH,
		Window: Rect{
			X:      offX - 1,
			Y:      offY - 1,
			Width:  sw/scale.X/tileW + 2,
			Height: sh/scale.Y/tileH + 2,
		},
	}, true
}

// Draw renders this layer alone into sink. Invisible layers draw nothing.
func (l *Layer) Draw(screenW, screenH int, t float64, sink DrawSink) {
	if globalDebug {
		debugCheckLayerDestroyed(l, "Draw")
	}
	if !l.Visible {
		return
	}
	p, ok := l.Project(screenW, screenH, t)
	if !ok {
		return
	}
	ll := l.list
	if globalDebug {
		ll.stats.layersDrawn++
	}

	switch l.kind {
	case LayerTilemap:
		l.tilemap.DrawRegion(sink, -p.Offset.X, -p.Offset.Y, p.Window, p.Scale.X, p.Scale.Y)
	case LayerEntity:
		ll.sortBuf = sortByDrawPriority(ll.sortBuf, l.entities)
		for _, e := range ll.sortBuf {
			x := lerp(e.prevX, e.X, t)
			y := lerp(e.prevY, e.Y, t)
			sx := (x - p.Offset.X) * p.TileW * p.Scale.X
			sy := (y - p.Offset.Y) * p.TileH * p.Scale.Y
			if e.Draw(sx, sy, p.Scale.X, p.Scale.Y, sink) && globalDebug {
				ll.stats.entitiesDrawn++
			}
		}
		clear(ll.sortBuf)
		ll.sortBuf = ll.sortBuf[:0]
	case LayerCustom:
		l.custom(sink, CustomLayerParams{
			OffsetX: p.Offset.X,
			OffsetY: p.Offset.Y,
			ScaleW:  p.Scale.X,
			ScaleH:  p.Scale.Y,
		})
	}
}

// sortByDrawPriority copies the entities of list into buf and sorts them by
// ascending draw priority. Insertion sort keeps equal priorities in list
// order and is linear when the list is already sorted.
func sortByDrawPriority(buf []*Entity, list *EntityList) []*Entity {
	buf = buf[:0]
	for e := list.head; e != nil; e = e.next {
		buf = append(buf, e)
	}
	for i := 1; i < len(buf); i++ {
		key := buf[i]
		j := i - 1
		for j >= 0 && buf[j].DrawPriority > key.DrawPriority {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = key
	}
	return buf
}
