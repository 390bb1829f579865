package radial

import (
	"testing"
	"time"
)

// fakeClock advances only when a test tells it to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeSurface is a measured 800x600 canvas at the global origin.
type fakeSurface struct {
	size     Vec2
	origin   Vec2
	measured bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{size: Vec2{800, 600}, measured: true}
}

func (s *fakeSurface) CanvasSize() Vec2   { return s.size }
func (s *fakeSurface) CanvasOffset() Vec2 { return s.origin }
func (s *fakeSurface) Measured() bool     { return s.measured }

// testMenu builds a menu anchored at (400, 300) with three actions and a
// zero attach delay unless the theme says otherwise.
func testMenu(t *testing.T, theme Theme, selected *int) (*Menu, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	anchor := Vec2{400, 300}
	actions := make([]Action, 3)
	for i := range actions {
		i := i
		actions[i] = Action{Label: "a", OnSelect: func() {
			if selected != nil {
				*selected = i
			}
		}}
	}
	m := Attach(Descriptor{
		Surface: newFakeSurface(),
		Actions: actions,
		Offset:  &anchor,
		Theme:   theme,
		Clock:   clock,
	})
	return m, clock
}

func TestAttachRequiresExactlyOneAnchor(t *testing.T) {
	surface := newFakeSurface()
	offset := Vec2{100, 100}
	align := AlignCenter

	mustPanic := func(name string, d Descriptor) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		Attach(d)
	}

	mustPanic("neither", Descriptor{Surface: surface})
	mustPanic("both", Descriptor{Surface: surface, Offset: &offset, Alignment: &align})

	// Exactly one of each is fine.
	Attach(Descriptor{Surface: surface, Offset: &offset})
	Attach(Descriptor{Surface: surface, Alignment: &align})
}

func TestPressOpensWithZeroDelay(t *testing.T) {
	var opens, closes int
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.OnToggle(func(open bool) {
		if open {
			opens++
		} else {
			closes++
		}
	})

	m.PointerDown(Vec2{400, 300})
	if !m.IsOpen() {
		t.Fatal("menu should open immediately with zero attach delay")
	}
	if opens != 1 || closes != 0 {
		t.Errorf("toggles = (%d opens, %d closes), want (1, 0)", opens, closes)
	}
	if m.session.Key == "" {
		t.Error("session key should be set")
	}
	if m.session.BaseAngle != 45 {
		t.Errorf("baseAngle = %v, want 45 for 3 centered actions", m.session.BaseAngle)
	}
}

func TestAttachTimerRace(t *testing.T) {
	theme := DefaultTheme()
	theme.AttachDelay = 100 * time.Millisecond
	selected := -1
	m, clock := testMenu(t, theme, &selected)

	m.PointerDown(Vec2{400, 300})
	if m.IsOpen() {
		t.Fatal("menu must not open before the attach delay")
	}
	m.PointerUp(Vec2{400, 300})

	clock.advance(200 * time.Millisecond)
	m.step(0.2)

	if m.IsOpen() {
		t.Error("release before the attach delay must never open the menu")
	}
	if selected != -1 {
		t.Error("no selection callback may fire")
	}
}

func TestAttachTimerFiresAfterDelay(t *testing.T) {
	theme := DefaultTheme()
	theme.AttachDelay = 100 * time.Millisecond
	m, clock := testMenu(t, theme, nil)

	m.PointerDown(Vec2{400, 300})
	clock.advance(50 * time.Millisecond)
	m.step(0.05)
	if m.IsOpen() {
		t.Fatal("opened too early")
	}
	clock.advance(60 * time.Millisecond)
	m.step(0.06)
	if !m.IsOpen() {
		t.Fatal("menu should open once the delay elapses under the held press")
	}
}

func TestDragAwayCancelsAttach(t *testing.T) {
	theme := DefaultTheme()
	theme.AttachDelay = 100 * time.Millisecond
	m, clock := testMenu(t, theme, nil)

	m.PointerDown(Vec2{400, 300})
	m.PointerMove(Vec2{430, 300}) // beyond pointerSize/2 = 12

	clock.advance(200 * time.Millisecond)
	m.step(0.2)
	if m.IsOpen() {
		t.Error("drag-away before attach must cancel the open")
	}
}

func TestHoverDeadZoneAtAnchor(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})

	// Exactly at the anchor: distance 0 < radius - 0.5*40 = 80.
	m.PointerMove(Vec2{400, 300})
	if _, ok := m.HoveredIndex(); ok {
		t.Error("pointer at the anchor must hover nothing")
	}

	// Just outside the outer bound: radius + 0.8*40 = 132.
	m.PointerMove(Vec2{535, 300})
	if _, ok := m.HoveredIndex(); ok {
		t.Error("pointer beyond the outer bound must hover nothing")
	}
}

func TestHoverResolvesNearestAction(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})

	// Action angles are 45, 0, -45; action 1 sits at (500, 300).
	m.PointerMove(Vec2{500, 300})
	i, ok := m.HoveredIndex()
	if !ok || i != 1 {
		t.Fatalf("hover = (%d, %v), want (1, true)", i, ok)
	}

	// Action 2 sits at 100*(cos -45, -sin -45) = (470.7, 370.7).
	m.PointerMove(Vec2{471, 371})
	i, ok = m.HoveredIndex()
	if !ok || i != 2 {
		t.Fatalf("hover = (%d, %v), want (2, true)", i, ok)
	}
}

func TestHoverRejectsFarActions(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})

	// On the ring midway between actions 0 (45°) and 1 (0°): the nearest
	// action center is 2*100*sin(11.25°) ≈ 39px away, past the 32px bound.
	m.PointerMove(ActionOffset(Vec2{400, 300}, 100, 22.5))
	if _, ok := m.HoveredIndex(); ok {
		t.Error("no action within the acceptance radius may be hovered")
	}
}

func TestDragSelectInvokesCallback(t *testing.T) {
	selected := -1
	var closes int
	m, clock := testMenu(t, DefaultTheme(), &selected)
	m.OnToggle(func(open bool) {
		if !open {
			closes++
		}
	})

	m.PointerDown(Vec2{400, 300})
	m.PointerMove(Vec2{500, 300})
	m.PointerUp(Vec2{500, 300})

	if selected != 1 {
		t.Fatalf("selected = %d, want 1", selected)
	}
	if m.IsOpen() {
		t.Error("selection closes the menu")
	}
	if closes != 1 {
		t.Errorf("close toggles = %d, want 1", closes)
	}

	// Session survives the fade, then clears.
	if m.session == nil {
		t.Fatal("session should survive until the fade completes")
	}
	clock.advance(DefaultTheme().FadeDuration + time.Millisecond)
	m.step(0.2)
	if m.session != nil {
		t.Error("session should clear after the fade")
	}
}

func TestPlainTapKeepsMenuOpen(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})
	m.PointerUp(Vec2{400, 300})
	if !m.IsOpen() {
		t.Error("a plain tap keeps the menu open by default")
	}
}

func TestPlainTapClosesWhenConfigured(t *testing.T) {
	theme := DefaultTheme()
	theme.KeepOpenOnTap = false
	m, _ := testMenu(t, theme, nil)
	m.PointerDown(Vec2{400, 300})
	m.PointerUp(Vec2{400, 300})
	if m.IsOpen() {
		t.Error("KeepOpenOnTap=false closes the menu on a plain tap")
	}
}

func TestPressAgainSelects(t *testing.T) {
	selected := -1
	m, _ := testMenu(t, DefaultTheme(), &selected)

	// Open and release without dragging; the menu stays up.
	m.PointerDown(Vec2{400, 300})
	m.PointerUp(Vec2{400, 300})

	// Second press lands on action 1 and releases in place.
	m.PointerDown(Vec2{500, 300})
	m.PointerUp(Vec2{500, 300})

	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
	if m.IsOpen() {
		t.Error("press-again release closes the menu")
	}
}

func TestCloseWithStaleKeyIsNoop(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})
	key := m.SessionKey()

	m.Close("not-" + key)
	if !m.IsOpen() {
		t.Fatal("stale key must not close the session")
	}
	if m.session.Key != key {
		t.Error("stale close must leave the session untouched")
	}

	m.Close(key)
	if m.IsOpen() {
		t.Error("matching key closes the session")
	}
}

func TestCloseWithNoSessionIsNoop(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.Close("anything") // must not panic or change state
	if m.state != stateIdle {
		t.Error("close without a session must stay idle")
	}
}

func TestSurfaceResizeForcesImmediateClose(t *testing.T) {
	var closes int
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.OnToggle(func(open bool) {
		if !open {
			closes++
		}
	})
	m.PointerDown(Vec2{400, 300})

	m.OnSurfaceResize()
	if m.IsOpen() {
		t.Error("resize closes the menu")
	}
	if m.session != nil {
		t.Error("resize close is unanimated: the session clears immediately")
	}
	if closes != 1 {
		t.Errorf("close toggles = %d, want 1", closes)
	}
}

func TestResizePreemptsPendingAttach(t *testing.T) {
	theme := DefaultTheme()
	theme.AttachDelay = 100 * time.Millisecond
	m, clock := testMenu(t, theme, nil)

	m.PointerDown(Vec2{400, 300})
	m.OnSurfaceResize()

	clock.advance(200 * time.Millisecond)
	m.step(0.2)
	if m.IsOpen() {
		t.Error("resize must cancel a pending attach")
	}
}

func TestReopenDuringFadeUsesFreshSession(t *testing.T) {
	m, clock := testMenu(t, DefaultTheme(), nil)

	m.PointerDown(Vec2{400, 300})
	first := m.SessionKey()
	m.Close(first)
	if m.state != stateDetaching {
		t.Fatal("close with a fade should leave the session detaching")
	}

	// A new press during the fade cancels the pending clear and opens a
	// fresh session with its own key.
	m.PointerDown(Vec2{400, 300})
	if !m.IsOpen() {
		t.Fatal("press during the fade reopens the menu")
	}
	second := m.SessionKey()
	if second == first {
		t.Error("reopen must mint a fresh session key")
	}

	// The stale clear must not fire against the new session.
	clock.advance(time.Second)
	m.step(1)
	if !m.IsOpen() {
		t.Error("the cancelled fade must not clear the new session")
	}
}

func TestHoverClearsWhenSessionCloses(t *testing.T) {
	m, _ := testMenu(t, DefaultTheme(), nil)
	m.PointerDown(Vec2{400, 300})
	m.PointerMove(Vec2{500, 300})
	if _, ok := m.HoveredIndex(); !ok {
		t.Fatal("expected a hovered action")
	}
	m.Close(m.SessionKey())
	if _, ok := m.HoveredIndex(); ok {
		t.Error("hover reads must go blank once the session closes")
	}
}

func TestAlignmentAnchorWithDisplacement(t *testing.T) {
	clock := newFakeClock()
	align := AlignBottomRight
	m := Attach(Descriptor{
		Surface:      newFakeSurface(),
		Actions:      []Action{{Label: "a"}, {Label: "b"}},
		Alignment:    &align,
		Displacement: Vec2{-50, -40},
		Theme:        DefaultTheme(),
		Clock:        clock,
	})

	m.PointerDown(Vec2{750, 560})
	if !m.IsOpen() {
		t.Fatal("expected open")
	}
	want := Vec2{750, 560}
	if m.session.PointerOffset != want {
		t.Errorf("anchor = %+v, want %+v", m.session.PointerOffset, want)
	}
	// Bottom-right corner: fan opens toward 135° and reads reversed.
	if !m.session.ReverseOrder {
		t.Error("right-edge anchor should reverse the action order")
	}
	if m.session.BaseAngle != 135+45 {
		t.Errorf("baseAngle = %v, want 180", m.session.BaseAngle)
	}
}

func TestUnmeasuredSurfaceDegradesToZero(t *testing.T) {
	clock := newFakeClock()
	align := AlignCenter
	surface := &fakeSurface{} // not measured
	m := Attach(Descriptor{
		Surface:   surface,
		Actions:   []Action{{Label: "a"}},
		Alignment: &align,
		Theme:     DefaultTheme(),
		Clock:     clock,
	})

	m.PointerDown(Vec2{10, 10})
	if !m.IsOpen() {
		t.Fatal("an unmeasured surface must not block opening")
	}
	if m.session.PointerOffset != (Vec2{}) {
		t.Errorf("anchor = %+v, want zero vector", m.session.PointerOffset)
	}
}
