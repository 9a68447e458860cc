// Package starfield renders a decorative animated starfield: a parallax field
// of slowly drifting stars plus periodic shooting stars that fade in, linger,
// fade out and draw a growing trail.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an [Ebitengine]
// window and drives the field for you:
//
//	field, err := starfield.NewField(starfield.DefaultConfig(), 1280, 720)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := starfield.Run(field, starfield.RunConfig{Title: "Stars"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, call [Field.Update] once per tick and [Field.Draw] once
// per frame with any [Surface]:
//
//	type Game struct{ field *starfield.Field; s *starfield.EbitenSurface }
//
//	func (g *Game) Update() error { g.field.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.s.SetTarget(screen)
//		g.field.Draw(g.s)
//	}
//
// # Simulation
//
// Background stars belong to one of several [Layer]s. Every layer moves along
// the same heading; parallax comes from each layer's speed and radius scale.
// Stars that leave the field wrap to the opposite edge.
//
// Shooting stars spawn on a timer in the upper-right quadrant and move
// through [StateSpawning], [StateAlive], [StateDying] and [StateDead]. The
// Dying transition is a deferred event keyed by the star's ID, fired a fixed
// lifetime after the star became fully visible.
//
// A paused field keeps its timers counting but does not move anything or
// spawn new shooting stars. Backends pause on focus loss via
// [Field.SetFocused].
//
// Lifecycle transitions can be observed through an [EventSink]; package ecs
// forwards them into a Donburi world.
//
// # Surfaces
//
// [EbitenSurface] draws with the GPU. [RasterSurface] draws onto any
// draw.Image with golang.org/x/image/vector and backs PNG capture
// ([Script]), the terminal backend (package term) and the Linux framebuffer
// backend (package fbdev).
//
// [Ebitengine]: https://ebitengine.org
package starfield
