package radial

import "github.com/google/uuid"

// SessionState is the mutable record of one menu-open lifecycle. It is
// created when a press survives the attach delay, mutated only by the Menu,
// and destroyed when the detach delay elapses. At most one session is live
// per menu at a time. All positions are in the global frame unless noted.
type SessionState struct {
	Actions []Action

	PointerOffset Vec2 // anchor the fan is arranged around
	PressedOffset Vec2 // where the triggering press landed
	CanvasOffset  Vec2 // global position of the canvas origin
	MenuOffset    Vec2 // anchor in canvas-local coordinates

	Open         bool
	HoveredIndex int // -1 when nothing is hovered

	// Key distinguishes this lifecycle from any other. A close request must
	// present it to take effect.
	Key string

	ReverseOrder bool
	BaseAngle    float64 // degrees
	AngleSpacing float64 // degrees
}

// newSession builds a fresh session around the given anchor with a newly
// minted key. The action slice is copied so later mutation by the caller
// cannot reach the live session.
func newSession(actions []Action, pointerOffset, pressedOffset, canvasOffset Vec2, reversed bool, baseAngle, spacing float64) *SessionState {
	owned := make([]Action, len(actions))
	copy(owned, actions)
	return &SessionState{
		Actions:       owned,
		PointerOffset: pointerOffset,
		PressedOffset: pressedOffset,
		CanvasOffset:  canvasOffset,
		MenuOffset:    pointerOffset.Sub(canvasOffset),
		Open:          true,
		HoveredIndex:  -1,
		Key:           uuid.NewString(),
		ReverseOrder:  reversed,
		BaseAngle:     baseAngle,
		AngleSpacing:  spacing,
	}
}

// Snapshot is an immutable view of a session handed to the geometry and
// layout consumers. Neither retains it across calls; it is rebuilt from the
// live session every time it is needed.
type Snapshot struct {
	Actions       []Action
	PointerOffset Vec2
	CanvasOffset  Vec2
	MenuOffset    Vec2
	Open          bool
	HoveredIndex  int
	Key           string
	ReverseOrder  bool
	BaseAngle     float64
	AngleSpacing  float64
}

// Snapshot copies the session into an immutable view.
func (s *SessionState) Snapshot() Snapshot {
	actions := make([]Action, len(s.Actions))
	copy(actions, s.Actions)
	return Snapshot{
		Actions:       actions,
		PointerOffset: s.PointerOffset,
		CanvasOffset:  s.CanvasOffset,
		MenuOffset:    s.MenuOffset,
		Open:          s.Open,
		HoveredIndex:  s.HoveredIndex,
		Key:           s.Key,
		ReverseOrder:  s.ReverseOrder,
		BaseAngle:     s.BaseAngle,
		AngleSpacing:  s.AngleSpacing,
	}
}

// Hovered returns the hovered action index, if any.
func (s Snapshot) Hovered() (int, bool) {
	if s.HoveredIndex < 0 || s.HoveredIndex >= len(s.Actions) {
		return 0, false
	}
	return s.HoveredIndex, true
}
