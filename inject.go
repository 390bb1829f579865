package radial

// pointerEvent represents a single injected pointer event in global
// coordinates, identical in effect to real mouse input.
type pointerEvent struct {
	pos     Vec2
	pressed bool
}

// InjectPress queues a trigger-button press at the given global coordinates.
// The event is consumed on the next Update call.
func (m *Menu) InjectPress(x, y float64) {
	m.injectQueue = append(m.injectQueue, pointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (m *Menu) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, pointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectRelease queues a pointer release at the given global coordinates.
func (m *Menu) InjectRelease(x, y float64) {
	m.injectQueue = append(m.injectQueue, pointerEvent{pos: Vec2{x, y}, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (m *Menu) InjectClick(x, y float64) {
	m.InjectPress(x, y)
	m.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (m *Menu) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		m.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	m.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it through the pointer
// state machine. Returns true if an event was consumed, in which case real
// mouse input is skipped for the frame.
func (m *Menu) processInjected() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	m.feedPointer(evt.pos, evt.pressed)
	return true
}
