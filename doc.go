// Package lunar is the entity and layer core of a fixed-tick 2D engine for
// [Ebitengine].
//
// Lunar manages dynamic game objects (entities), steps them at a fixed tick
// rate, and composes them with tilemaps and custom content into layers that
// are drawn with per-frame interpolation between ticks.
//
// # Quick start
//
// Entities are stamped out of an [EntityBuilder] template into an
// [EntityList]:
//
//	b := lunar.NewEntityBuilder()
//	b.SetHitboxSize(1, 1)
//	b.AddTextureCallback(func(e *lunar.Entity) lunar.TextureFrame {
//		return lunar.TextureFrame{Texture: heroImg, Width: 16, Height: 16}
//	})
//	b.AddUpdateCallback(func(e *lunar.Entity, dt float64) {
//		e.VelY += 30 * dt // gravity
//	})
//
//	actors := lunar.NewEntityList()
//	hero := actors.NewEntity(b, 4, 8)
//
// Layers are collected in a [LayerList] together with the camera:
//
//	layers := lunar.NewLayerList()
//	layers.AddEntityLayer(actors) // added first: drawn on top
//	layers.AddTilemapLayer(level)
//
// [Loop] implements [ebiten.Game] and runs the tick/draw cycle:
//
//	loop := lunar.NewLoop(lunar.LoopConfig{
//		ScreenWidth: 320, ScreenHeight: 240,
//		Layers:   layers,
//		Entities: []*lunar.EntityList{actors},
//	})
//	ebiten.RunGame(loop)
//
// # Ticks and frames
//
// Each tick, [LayerList.Snapshot] records the camera and every layer's
// scale and scroll values, game logic runs, and [EntityList.Update] steps
// every entity. Entity steps run the update callbacks, record the previous
// position, then integrate Y and X in that order, consulting the list's
// [CollisionResolver] after each axis.
//
// Entities are removed in two phases. [Entity.Delete] only marks the entity;
// it is reaped once the whole update pass has finished, so callbacks may
// delete any entity, including their own, while the list is being walked.
//
// Each frame, [LayerList.Draw] walks the layers back to front, blends
// previous and current values by the interpolation factor, and emits
// [DrawCommand] values into a [DrawSink] such as [DrawList]. Entities in a
// layer are drawn in ascending [Entity.DrawPriority], ties keeping list
// order.
//
// [Ebitengine]: https://ebitengine.org
package lunar
