package radial

import "testing"

func TestLocalGlobalConversion(t *testing.T) {
	s := NewEbitenSurface()

	// Unmeasured surfaces degrade to the zero vector.
	if got := ToLocal(s, Vec2{50, 60}); got != (Vec2{}) {
		t.Errorf("unmeasured ToLocal = %+v, want zero", got)
	}

	s.SetSize(800, 600)
	s.SetOrigin(Vec2{10, 20})

	local := ToLocal(s, Vec2{110, 220})
	if local != (Vec2{100, 200}) {
		t.Errorf("ToLocal = %+v, want (100, 200)", local)
	}
	if back := ToGlobal(s, local); back != (Vec2{110, 220}) {
		t.Errorf("ToGlobal = %+v, want (110, 220)", back)
	}
}

func TestAnchorFor(t *testing.T) {
	canvas := Vec2{800, 600}
	cases := []struct {
		align Alignment
		want  Vec2
	}{
		{AlignTopLeft, Vec2{0, 0}},
		{AlignCenter, Vec2{400, 300}},
		{AlignBottomRight, Vec2{800, 600}},
		{AlignTop, Vec2{400, 0}},
		{AlignLeft, Vec2{0, 300}},
	}
	for _, c := range cases {
		if got := anchorFor(c.align, canvas); got != c.want {
			t.Errorf("anchorFor(%d) = %+v, want %+v", c.align, got, c.want)
		}
	}
}

func TestSuppressHandleCancelOnce(t *testing.T) {
	var cancels int
	h := NewSuppressHandle(func() { cancels++ })
	h.Cancel()
	h.Cancel()
	if cancels != 1 {
		t.Errorf("cancels = %d, want 1", cancels)
	}

	// Nil handles are safe, matching NoopPlatform's return.
	var nilHandle *SuppressHandle
	nilHandle.Cancel()
	if h := (NoopPlatform{}).SuppressNativeMenu(); h != nil {
		t.Error("NoopPlatform should have nothing to suppress")
	}
}

// recordingPlatform verifies the session lifecycle drives suppression.
type recordingPlatform struct {
	suppressed int
	cancelled  int
}

func (p *recordingPlatform) SuppressNativeMenu() *SuppressHandle {
	p.suppressed++
	return NewSuppressHandle(func() { p.cancelled++ })
}

func TestPlatformSuppressionFollowsSession(t *testing.T) {
	clock := newFakeClock()
	platform := &recordingPlatform{}
	anchor := Vec2{400, 300}
	m := Attach(Descriptor{
		Surface:  newFakeSurface(),
		Actions:  []Action{{Label: "a"}},
		Offset:   &anchor,
		Theme:    DefaultTheme(),
		Clock:    clock,
		Platform: platform,
	})

	m.PointerDown(anchor)
	if platform.suppressed != 1 {
		t.Fatalf("suppressed = %d, want 1 on open", platform.suppressed)
	}
	m.Close(m.SessionKey())
	if platform.cancelled != 1 {
		t.Errorf("cancelled = %d, want 1 on close", platform.cancelled)
	}
}
