package radial

import "math"

// Placement is the computed translation for one slot. Slot 0 is the pointer
// marker; the remaining slots are action boxes in session order.
type Placement struct {
	Center Vec2
	Size   Vec2

	// ActionIndex is -1 for the pointer marker.
	ActionIndex int

	// Angle is the slot's fan angle in degrees. Zero for the marker.
	Angle float64
}

// Place maps a session snapshot and the current bounce progress into per-slot
// positions. Slot 0 sits at the anchor; action slots are displaced outward
// by t * radius along their fan angle. The result is recomputed every
// animation tick from the live snapshot — offsets may shift between frames.
func Place(snap Snapshot, theme Theme, bounce float64) []Placement {
	slots := make([]Placement, 0, len(snap.Actions)+1)
	slots = append(slots, Placement{
		Center:      snap.PointerOffset,
		Size:        Vec2{theme.PointerSize, theme.PointerSize},
		ActionIndex: -1,
	})
	count := len(snap.Actions)
	for i := 0; i < count; i++ {
		angle := ActionAngle(i, snap.BaseAngle, theme.AngleOffset, snap.AngleSpacing, count, snap.ReverseOrder)
		slots = append(slots, Placement{
			Center:      ActionOffset(snap.PointerOffset, bounce*theme.Radius, angle),
			Size:        theme.ButtonSize,
			ActionIndex: i,
			Angle:       angle,
		})
	}
	return slots
}

// PaintPlan is the structured instruction value the painting collaborator
// consumes each frame. It carries no decision logic: the style tag, the dim
// region, and the slot placements fully describe what to draw.
type PaintPlan struct {
	Style OverlayStyle
	Slots []Placement

	// Bounds encloses the fully expanded fan, for OverlayAround dimming.
	Bounds Rect

	// Alpha is the fade progress applied to the whole menu.
	Alpha float64

	// Hovered is the hovered action index, or -1.
	Hovered int
}

// Plan builds the current frame's paint plan. The second return is false
// when there is nothing to draw (no live session).
func (m *Menu) Plan() (PaintPlan, bool) {
	if m.session == nil {
		return PaintPlan{}, false
	}
	snap := m.session.Snapshot()
	reach := Margin(m.theme.Radius, m.theme.ButtonSize)
	hovered := -1
	if i, ok := snap.Hovered(); ok {
		hovered = i
	}
	return PaintPlan{
		Style: m.theme.Overlay,
		Slots: Place(snap, m.theme, m.bounce.Progress()),
		Bounds: Rect{
			X:      snap.PointerOffset.X - reach,
			Y:      snap.PointerOffset.Y - reach,
			Width:  2 * reach,
			Height: 2 * reach,
		},
		Alpha:   clamp01(m.fade.Progress()),
		Hovered: hovered,
	}, true
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
