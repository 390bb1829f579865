package radial

import (
	"math"

	"github.com/tanema/gween/ease"
)

// menuState tracks where a menu is in its session lifecycle.
type menuState uint8

const (
	stateIdle      menuState = iota // no press, no session
	stateArmed                      // press recorded, attach pending
	stateOpen                       // session live
	stateDetaching                  // fade running, session awaiting clear
)

// ToggleFunc observes open/close transitions. It fires exactly once per
// transition in either direction.
type ToggleFunc func(open bool)

// Descriptor configures a menu at attach time. Exactly one of Offset and
// Alignment must be set: the anchor is either an explicit global position or
// an alignment-relative point on the canvas plus Displacement.
type Descriptor struct {
	Surface RenderSurface
	Actions []Action

	Offset    *Vec2
	Alignment *Alignment

	// Displacement shifts the alignment anchor. Ignored for explicit offsets.
	Displacement Vec2

	Theme    Theme
	OnToggle ToggleFunc

	// Platform defaults to NoopPlatform, Clock to the system clock.
	Platform PlatformAdapter
	Clock    Clock

	// Button is the mouse button that opens the menu when input polling is
	// used. Defaults to MouseButtonRight.
	Button MouseButton
}

// Menu owns the interaction state machine for one radial menu: the session,
// pointer-event handling, hover resolution, and the attach/detach timer
// lifecycle. All methods must be called from the game loop goroutine.
type Menu struct {
	surface  RenderSurface
	platform PlatformAdapter
	clock    Clock
	theme    Theme

	actions      []Action
	offset       *Vec2
	alignment    *Alignment
	displacement Vec2

	toggles []ToggleFunc

	state         menuState
	session       *SessionState
	pressedAgain  bool
	pressedOffset Vec2

	attachTimer timer
	detachTimer timer

	bounce *Driver
	fade   *Driver

	suppress *SuppressHandle

	// input polling state
	button      MouseButton
	pollDown    bool
	lastPos     Vec2
	lastCanvas  Vec2
	injectQueue []pointerEvent

	debug bool
}

// Attach creates a menu from the descriptor. It panics if the descriptor
// supplies neither or both of Offset and Alignment; that is a programming
// error, never a runtime condition.
func Attach(d Descriptor) *Menu {
	if (d.Offset == nil) == (d.Alignment == nil) {
		panic("radial: Attach requires exactly one of Offset or Alignment")
	}
	if d.Surface == nil {
		panic("radial: Attach requires a Surface")
	}

	m := &Menu{
		surface:      d.Surface,
		platform:     d.Platform,
		clock:        d.Clock,
		theme:        d.Theme.normalize(),
		actions:      d.Actions,
		offset:       d.Offset,
		alignment:    d.Alignment,
		displacement: d.Displacement,
		button:       d.Button,
		bounce:       NewDriver(ease.OutBack, ease.InBack),
		fade:         NewDriver(ease.Linear, ease.Linear),
	}
	if m.platform == nil {
		m.platform = NoopPlatform{}
	}
	if m.clock == nil {
		m.clock = systemClock{}
	}
	if d.OnToggle != nil {
		m.toggles = append(m.toggles, d.OnToggle)
	}
	if m.button == MouseButtonLeft {
		// Zero value: context menus open on the secondary button.
		m.button = MouseButtonRight
	}
	return m
}

// OnToggle registers an additional observer for open/close transitions.
func (m *Menu) OnToggle(fn ToggleFunc) {
	m.toggles = append(m.toggles, fn)
}

// SetOffset repositions the explicit anchor, switching an alignment-anchored
// menu to explicit anchoring. The next open uses the new anchor; a live
// session keeps its geometry.
func (m *Menu) SetOffset(offset Vec2) {
	v := offset
	m.offset = &v
	m.alignment = nil
}

// HoveredIndex returns the currently hovered action, if any.
func (m *Menu) HoveredIndex() (int, bool) {
	if m.session == nil || !m.session.Open || m.session.HoveredIndex < 0 {
		return 0, false
	}
	return m.session.HoveredIndex, true
}

// HoveredAction returns the hovered action value for tooltip rendering.
func (m *Menu) HoveredAction() (Action, bool) {
	i, ok := m.HoveredIndex()
	if !ok {
		return Action{}, false
	}
	return m.session.Actions[i], true
}

// IsOpen reports whether a session is live and open.
func (m *Menu) IsOpen() bool {
	return m.session != nil && m.session.Open
}

// SessionKey returns the live session's key, or "" when no session exists.
func (m *Menu) SessionKey() string {
	if m.session == nil {
		return ""
	}
	return m.session.Key
}

// SetDebugMode enables stderr logging of state transitions.
func (m *Menu) SetDebugMode(enabled bool) { m.debug = enabled }

// PointerDown feeds a press at the given global position.
func (m *Menu) PointerDown(pos Vec2) {
	switch m.state {
	case stateOpen:
		m.pressedAgain = true
		m.PointerMove(pos)
	case stateIdle, stateDetaching:
		// A press during the detach fade cancels the pending clear and
		// begins a fresh attach; geometry is recomputed at attach fire, so
		// nothing stale survives.
		m.detachTimer.cancel()
		if m.state == stateDetaching {
			m.clearSession()
		}
		m.pressedOffset = pos
		m.state = stateArmed
		m.debugf("armed at (%.0f, %.0f)", pos.X, pos.Y)
		m.attachTimer.schedule(m.clock.Now(), m.theme.AttachDelay, m.completeAttach)
	}
}

// PointerMove feeds a pointer position update.
func (m *Menu) PointerMove(pos Vec2) {
	switch m.state {
	case stateOpen:
		s := m.session
		safe := distance(s.PressedOffset, pos) < safeDistance
		if !safe {
			s.PressedOffset = s.PointerOffset
		}
		hover := m.resolveHover(pos, safe)
		if hover != s.HoveredIndex {
			s.HoveredIndex = hover
			m.debugf("hover -> %d", hover)
		}
	case stateArmed:
		if distance(m.pressedOffset, pos) > m.theme.PointerSize/2 {
			// Dragged away before the attach delay elapsed.
			m.debugf("drag-away cancel")
			m.forceDetach()
		}
	}
}

// PointerUp feeds a release at the given global position.
func (m *Menu) PointerUp(pos Vec2) {
	switch m.state {
	case stateOpen:
		s := m.session
		if m.pressedAgain || distance(s.PressedOffset, pos) > m.theme.PointerSize/2 {
			if i := s.HoveredIndex; i >= 0 && i < len(s.Actions) {
				if fn := s.Actions[i].OnSelect; fn != nil {
					fn()
				}
			}
			m.beginDetach(true)
		} else if !m.theme.KeepOpenOnTap {
			m.beginDetach(true)
		}
		m.pressedAgain = false
		if m.session != nil {
			m.session.PressedOffset = m.session.PointerOffset
			m.pressedOffset = m.session.PointerOffset
		}
	case stateArmed:
		// Released before the attach delay elapsed: the menu never opens
		// and no selection callback fires.
		m.attachTimer.cancel()
		m.state = stateIdle
		m.debugf("press released before attach")
	}
}

// Close requests closing the session identified by key. A stale or unknown
// key is a silent no-op, so late close requests from a previous lifecycle
// cannot tear down a newer session.
func (m *Menu) Close(key string) {
	if m.session == nil || m.session.Key != key {
		return
	}
	m.beginDetach(true)
}

// OnSurfaceResize force-closes any in-flight session without animation.
// Geometry computed before a resize is never trusted.
func (m *Menu) OnSurfaceResize() {
	switch m.state {
	case stateIdle:
		return
	case stateArmed:
		m.attachTimer.cancel()
		m.state = stateIdle
	default:
		m.debugf("surface resized, forcing close")
		m.beginDetach(false)
	}
}

// step advances timers and animation drivers by one frame of dt seconds.
func (m *Menu) step(dt float32) {
	now := m.clock.Now()
	m.attachTimer.fire(now)
	m.detachTimer.fire(now)
	m.bounce.Update(dt)
	m.fade.Update(dt)
}

// completeAttach fires when the attach delay elapses: it resolves the
// anchor, builds a fresh session, and opens the menu.
func (m *Menu) completeAttach() {
	if m.state != stateArmed {
		return
	}

	anchor := m.resolveAnchor()
	canvasSize := m.surface.CanvasSize()
	canvasOffset := Vec2{}
	if m.surface.Measured() {
		canvasOffset = m.surface.CanvasOffset()
	}
	local := anchor.Sub(canvasOffset)

	count := len(m.actions)
	arc := MaxArc(count)
	spacing := AngleSpacing(count, m.theme.AngleSpacing, arc)
	base := Orientation(local, canvasSize, m.theme.ButtonSize, m.theme.Radius, count, spacing)
	reversed := ShouldReverseOrder(local.X, canvasSize.X, Margin(m.theme.Radius, m.theme.ButtonSize))

	m.session = newSession(m.actions, anchor, m.pressedOffset, canvasOffset, reversed, base, spacing)
	m.state = stateOpen
	m.suppress = m.platform.SuppressNativeMenu()
	m.bounce.reset(0)
	m.bounce.Start(m.theme.BounceDuration)
	m.fade.reset(1)
	m.debugf("open, key=%s base=%.0f spacing=%.0f reversed=%v", m.session.Key, base, spacing, reversed)
	m.fireToggle(true)
}

// resolveAnchor returns the global anchor position. An unmeasured surface
// degrades to the zero vector; the next frame corrects it.
func (m *Menu) resolveAnchor() Vec2 {
	if m.offset != nil {
		return *m.offset
	}
	if !m.surface.Measured() {
		return Vec2{}
	}
	local := anchorFor(*m.alignment, m.surface.CanvasSize()).Add(m.displacement)
	return local.Add(m.surface.CanvasOffset())
}

// resolveHover picks the hovered action for the pointer position, or -1.
// The dead zone rejects positions too close to the anchor or too far outside
// the ring before any per-action scan happens.
func (m *Menu) resolveHover(pos Vec2, safe bool) int {
	s := m.session
	bw, bh := m.theme.ButtonSize.X, m.theme.ButtonSize.Y
	d := distance(s.PointerOffset, pos)
	inner := m.theme.Radius - innerDeadZoneFactor*math.Min(bw, bh)
	outer := m.theme.Radius + hoverRangeFactor*math.Max(bw, bh)
	if safe || d < inner || d > outer {
		return -1
	}

	best := -1
	bestDist := math.MaxFloat64
	for i := range s.Actions {
		angle := ActionAngle(i, s.BaseAngle, m.theme.AngleOffset, s.AngleSpacing, len(s.Actions), s.ReverseOrder)
		offset := ActionOffset(s.PointerOffset, m.theme.Radius, angle)
		if dd := distance(offset, pos); dd < bestDist {
			best, bestDist = i, dd
		}
	}
	if bestDist < hoverRangeFactor*math.Max(bw, bh) {
		return best
	}
	return -1
}

// beginDetach starts closing the session. Animated detaches reverse the
// drivers and schedule the clear after the fade; forced detaches clear
// immediately. Starting a detach cancels any pending attach.
func (m *Menu) beginDetach(animated bool) {
	m.attachTimer.cancel()
	if m.state == stateArmed {
		m.state = stateIdle
		return
	}
	if m.session == nil {
		m.state = stateIdle
		return
	}

	wasOpen := m.session.Open
	m.session.Open = false
	m.session.HoveredIndex = -1
	m.pressedAgain = false
	m.suppress.Cancel()
	m.suppress = nil
	if wasOpen {
		m.fireToggle(false)
	}

	if animated && m.theme.FadeDuration > 0 {
		m.state = stateDetaching
		m.bounce.Reverse(m.theme.FadeDuration)
		m.fade.Reverse(m.theme.FadeDuration)
		m.detachTimer.schedule(m.clock.Now(), m.theme.FadeDuration, m.clearSession)
		m.debugf("detaching, key=%s", m.session.Key)
	} else {
		m.detachTimer.cancel()
		m.bounce.reset(0)
		m.fade.reset(0)
		m.clearSession()
	}
}

// forceDetach is the unanimated path used by drag-away and resize.
func (m *Menu) forceDetach() {
	m.beginDetach(false)
}

// clearSession destroys the session record and returns to idle.
func (m *Menu) clearSession() {
	if m.session != nil {
		m.debugf("session %s cleared", m.session.Key)
	}
	m.session = nil
	m.state = stateIdle
}

// fireToggle notifies every registered observer of an open/close transition.
func (m *Menu) fireToggle(open bool) {
	for _, fn := range m.toggles {
		fn(open)
	}
}
