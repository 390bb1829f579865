package radial

import "time"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. The coordinate system has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Alignment names an anchor point on the canvas, used when a menu is
// positioned relative to the surface rather than at an explicit offset.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignTopLeft
	AlignTop
	AlignTopRight
	AlignLeft
	AlignRight
	AlignBottomLeft
	AlignBottom
	AlignBottomRight
)

// anchorFor resolves an alignment to a canvas-local point.
func anchorFor(a Alignment, canvas Vec2) Vec2 {
	var x, y float64
	switch a {
	case AlignTopLeft, AlignLeft, AlignBottomLeft:
		x = 0
	case AlignTop, AlignCenter, AlignBottom:
		x = canvas.X / 2
	case AlignTopRight, AlignRight, AlignBottomRight:
		x = canvas.X
	}
	switch a {
	case AlignTopLeft, AlignTop, AlignTopRight:
		y = 0
	case AlignLeft, AlignCenter, AlignRight:
		y = canvas.Y / 2
	case AlignBottomLeft, AlignBottom, AlignBottomRight:
		y = canvas.Y
	}
	return Vec2{x, y}
}

// OverlayStyle selects how the dim layer relates to the anchored content.
type OverlayStyle uint8

const (
	// OverlayAround dims the surface outside the menu's bounds, leaving the
	// fan and the content under it fully visible.
	OverlayAround OverlayStyle = iota
	// OverlayBehind dims the whole surface beneath the menu.
	OverlayBehind
)

// Action is a single entry in the fan. Actions are immutable once a session
// starts; the session holds its own copy of the slice.
type Action struct {
	Label    string
	OnSelect func()

	// Optional visual overrides. A zero Color (fully transparent) falls back
	// to the theme's action colors.
	Color      Color
	HoverColor Color
}

// Theme holds the read-only configuration for a menu. The zero value is not
// usable directly; start from DefaultTheme and override fields.
type Theme struct {
	Radius      float64 // distance from the anchor to each action center
	AngleOffset float64 // constant rotational bias applied to all actions, degrees

	// AngleSpacing forces the angular gap between adjacent actions, in
	// degrees. Zero derives the spacing from the arc span.
	AngleSpacing float64

	ButtonSize  Vec2    // action box dimensions
	PointerSize float64 // side of the square pointer marker

	AttachDelay    time.Duration // press-and-hold delay before the menu opens
	BounceDuration time.Duration // open animation length
	FadeDuration   time.Duration // close animation length

	// KeepOpenOnTap keeps the menu open when a press is released without
	// dragging. When false such a release closes the menu immediately.
	KeepOpenOnTap bool

	Alignment    Alignment // default anchor when no explicit offset is given
	Displacement Vec2      // shift applied to the alignment anchor

	Overlay OverlayStyle

	RingColor   Color
	MarkerColor Color
	ActionColor Color
	HoverColor  Color
	DimColor    Color
}

// DefaultTheme returns the baseline theme: a 100px fan of 40x40 actions with
// a short bounce on open and a quick fade on close.
func DefaultTheme() Theme {
	return Theme{
		Radius:         100,
		ButtonSize:     Vec2{40, 40},
		PointerSize:    24,
		BounceDuration: 150 * time.Millisecond,
		FadeDuration:   150 * time.Millisecond,
		KeepOpenOnTap:  true,
		Alignment:      AlignCenter,
		Overlay:        OverlayBehind,
		RingColor:      Color{1, 1, 1, 0.25},
		MarkerColor:    Color{1, 1, 1, 0.9},
		ActionColor:    Color{0.25, 0.25, 0.3, 0.95},
		HoverColor:     Color{0.4, 0.55, 0.95, 1},
		DimColor:       Color{0, 0, 0, 0.5},
	}
}

// normalize fills unusable zero values with defaults so a partially
// specified theme behaves sensibly.
func (t Theme) normalize() Theme {
	def := DefaultTheme()
	if t.Radius <= 0 {
		t.Radius = def.Radius
	}
	if t.ButtonSize.X <= 0 || t.ButtonSize.Y <= 0 {
		t.ButtonSize = def.ButtonSize
	}
	if t.PointerSize <= 0 {
		t.PointerSize = def.PointerSize
	}
	return t
}
