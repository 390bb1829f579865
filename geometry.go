package radial

import "math"

// Fan geometry. All angles are in degrees measured counter-clockwise from
// the positive X axis in screen space (0° = right, 90° = up), converted to
// radians only at trig call sites. Every function here is pure and total:
// zero actions yields zero spacing and no offsets, never an error.

const (
	// safeDistance is the band around the press point, in pixels, inside
	// which pointer movement is not treated as intent. Kept verbatim from
	// the tuned behavior; do not re-derive.
	safeDistance = 8.0

	// innerDeadZoneFactor scales the smaller button dimension to shrink the
	// hover ring inward from the radius.
	innerDeadZoneFactor = 0.5

	// hoverRangeFactor scales the larger button dimension for both the
	// outer dead-zone bound and the per-action acceptance radius.
	hoverRangeFactor = 0.8
)

// MaxArc returns the total angular span, in degrees, the fan occupies for
// the given action count. Fewer actions get a tighter fan to avoid visual
// sparseness.
func MaxArc(actionCount int) float64 {
	switch {
	case actionCount <= 1:
		return 0
	case actionCount < 4:
		return 90
	default:
		return 180
	}
}

// AngleSpacing returns the angular gap between adjacent actions. A non-zero
// override wins; otherwise the arc is divided evenly between the gaps.
func AngleSpacing(actionCount int, override, arc float64) float64 {
	if override != 0 {
		return override
	}
	if actionCount <= 1 {
		return 0
	}
	return arc / float64(actionCount-1)
}

// Margin is the distance from a canvas edge inside which the fan would be
// clipped: the radius plus the larger button dimension.
func Margin(radius float64, buttonSize Vec2) float64 {
	return radius + math.Max(buttonSize.X, buttonSize.Y)
}

// baseOrientation resolves the direction the fan opens toward, in degrees,
// from the pointer's canvas-local position. Corner combinations override
// single edges; an unconstrained pointer opens rightward.
func baseOrientation(pointerLocal, canvasSize, buttonSize Vec2, radius float64) float64 {
	margin := Margin(radius, buttonSize)
	atLeft := pointerLocal.X < margin
	atRight := pointerLocal.X > canvasSize.X-margin
	atTop := pointerLocal.Y < margin
	atBottom := pointerLocal.Y > canvasSize.Y-margin

	switch {
	case atLeft && atTop:
		return 315
	case atLeft && atBottom:
		return 45
	case atRight && atTop:
		return 225
	case atRight && atBottom:
		return 135
	case atTop:
		return 270
	case atBottom:
		return 90
	case atLeft:
		return 0
	case atRight:
		return 180
	default:
		return 0
	}
}

// Orientation returns the final base angle for the fan: the resolved opening
// direction plus half the occupied arc, centering the fan around it.
func Orientation(pointerLocal, canvasSize, buttonSize Vec2, radius float64, actionCount int, spacing float64) float64 {
	base := baseOrientation(pointerLocal, canvasSize, buttonSize, radius)
	if actionCount <= 1 {
		return base
	}
	arc := float64(actionCount-1) * spacing
	return base + arc/2
}

// ShouldReverseOrder reports whether the action order should be reversed so
// the visual left-to-right reading order stays consistent when the fan opens
// leftward. True iff the pointer is within margin of the right edge.
func ShouldReverseOrder(pointerLocalX, canvasWidth, margin float64) bool {
	return pointerLocalX > canvasWidth-margin
}

// ActionAngle returns the angle, in degrees, of the action at index.
func ActionAngle(index int, baseAngle, angleOffset, spacing float64, count int, reversed bool) float64 {
	effective := index
	if reversed {
		effective = count - 1 - index
	}
	return baseAngle - angleOffset - spacing*float64(effective)
}

// ActionOffset returns the center of an action placed at angleDeg on the
// ring around pointerOffset. Screen Y grows downward, so the Y component of
// the unit vector is negated.
func ActionOffset(pointerOffset Vec2, radius, angleDeg float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{
		X: pointerOffset.X + radius*math.Cos(rad),
		Y: pointerOffset.Y - radius*math.Sin(rad),
	}
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
