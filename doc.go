// Package radial is a radial ("pie") context menu for [Ebitengine].
//
// A menu opens around a pointer location, orients its fan of actions to stay
// inside the visible surface, and tracks pointer movement to highlight the
// nearest action. The package owns the geometry and the interaction state
// machine; painting is a thin collaborator fed structured placements.
//
// # Quick start
//
// Attach a menu to a surface, then drive it from your game loop:
//
//	surface := radial.NewEbitenSurface()
//	menu := radial.Attach(radial.Descriptor{
//		Surface:   surface,
//		Alignment: &alignment, // or Offset for an explicit anchor
//		Actions: []radial.Action{
//			{Label: "Copy", OnSelect: copySelection},
//			{Label: "Paste", OnSelect: pasteClipboard},
//		},
//		Theme: radial.DefaultTheme(),
//	})
//	painter := radial.NewPainter(menu)
//
//	func (g *Game) Update() error { menu.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) { painter.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		surface.SetSize(float64(w), float64(h))
//		return w, h
//	}
//
// Press and hold the trigger button (secondary by default) to open the fan;
// drag toward an action and release to select it. Holding near a canvas edge
// or corner flips the fan inward so it never clips.
//
// # Geometry
//
// All fan math lives in pure functions ([MaxArc], [AngleSpacing],
// [Orientation], [ActionAngle], [ActionOffset]) operating on immutable
// session snapshots. Angles are degrees, 0° pointing right and 90° up in
// screen space.
//
// # Animation
//
// Open and close are animated by a [Driver] built on [gween]: an
// overshooting bounce outward on open and a fade on close. Timers run over
// an injectable [Clock] so tests advance virtual time.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package radial
