package radial

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenMouseButton maps the API button to ebiten's.
func ebitenMouseButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// Update polls input, checks for surface resizes, and advances the timers
// and animation drivers by one frame. Call it from the game's Update.
func (m *Menu) Update() {
	m.checkResize()
	if !m.processInjected() {
		m.pollMouse()
	}
	m.step(float32(1.0 / float64(ebiten.TPS())))
}

// checkResize compares the surface size against the previous frame and
// forces a close when it changed while a session was in flight.
func (m *Menu) checkResize() {
	if !m.surface.Measured() {
		return
	}
	size := m.surface.CanvasSize()
	if m.lastCanvas != (Vec2{}) && size != m.lastCanvas {
		m.OnSurfaceResize()
	}
	m.lastCanvas = size
}

// pollMouse reads the cursor and trigger button, feeding edges and moves
// into the state machine.
func (m *Menu) pollMouse() {
	x, y := ebiten.CursorPosition()
	pos := Vec2{float64(x), float64(y)}
	pressed := ebiten.IsMouseButtonPressed(ebitenMouseButton(m.button))
	m.feedPointer(pos, pressed)
}

// feedPointer converts a sampled pointer state into down/move/up events.
func (m *Menu) feedPointer(pos Vec2, pressed bool) {
	switch {
	case pressed && !m.pollDown:
		m.pollDown = true
		m.lastPos = pos
		m.PointerDown(pos)
	case !pressed && m.pollDown:
		m.pollDown = false
		m.lastPos = pos
		m.PointerUp(pos)
	case pos != m.lastPos:
		m.lastPos = pos
		m.PointerMove(pos)
	}
}
