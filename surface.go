package radial

// RenderSurface is the canvas the menu opens over. Implementations provide
// the canvas dimensions and the conversion between the global pointer frame
// and canvas-local coordinates.
//
// A surface that has not been measured yet reports Measured() == false; the
// menu then degrades to zero offsets rather than failing, since this only
// happens during initial layout and self-corrects on the next frame.
type RenderSurface interface {
	// CanvasSize returns the canvas dimensions in pixels.
	CanvasSize() Vec2
	// CanvasOffset returns the global position of the canvas origin.
	CanvasOffset() Vec2
	// Measured reports whether the surface has a valid size yet.
	Measured() bool
}

// ToLocal converts a global position to canvas-local coordinates.
func ToLocal(s RenderSurface, global Vec2) Vec2 {
	if !s.Measured() {
		return Vec2{}
	}
	return global.Sub(s.CanvasOffset())
}

// ToGlobal converts a canvas-local position to the global frame.
func ToGlobal(s RenderSurface, local Vec2) Vec2 {
	if !s.Measured() {
		return Vec2{}
	}
	return local.Add(s.CanvasOffset())
}

// EbitenSurface is a RenderSurface backed by an ebiten game's layout.
// Call SetSize from the game's Layout callback each time the window size
// changes; the menu detects the change and closes any open session.
type EbitenSurface struct {
	size     Vec2
	origin   Vec2
	measured bool
}

// NewEbitenSurface creates a surface with its origin at the global (0, 0).
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// SetSize records the canvas dimensions, marking the surface measured.
func (e *EbitenSurface) SetSize(width, height float64) {
	e.size = Vec2{width, height}
	e.measured = true
}

// SetOrigin records the global position of the canvas origin, for menus
// embedded in a sub-region of the screen.
func (e *EbitenSurface) SetOrigin(origin Vec2) {
	e.origin = origin
}

func (e *EbitenSurface) CanvasSize() Vec2   { return e.size }
func (e *EbitenSurface) CanvasOffset() Vec2 { return e.origin }
func (e *EbitenSurface) Measured() bool     { return e.measured }

// SuppressHandle is the cancellable result of suppressing a platform's
// native secondary-click menu for the duration of a session. The handle
// carries its cancel capability explicitly; a nil handle means there was
// nothing to suppress.
type SuppressHandle struct {
	cancel func()
}

// NewSuppressHandle wraps a cancel function. A nil cancel yields a handle
// whose Cancel is a no-op.
func NewSuppressHandle(cancel func()) *SuppressHandle {
	return &SuppressHandle{cancel: cancel}
}

// Cancel restores the native menu. Safe to call more than once.
func (h *SuppressHandle) Cancel() {
	if h == nil || h.cancel == nil {
		return
	}
	fn := h.cancel
	h.cancel = nil
	fn()
}

// PlatformAdapter hooks platform behavior into the session lifecycle.
type PlatformAdapter interface {
	// SuppressNativeMenu is called when a session opens. It may return nil
	// when the platform has no native menu to suppress.
	SuppressNativeMenu() *SuppressHandle
}

// NoopPlatform is the default adapter: nothing to suppress.
type NoopPlatform struct{}

func (NoopPlatform) SuppressNativeMenu() *SuppressHandle { return nil }
