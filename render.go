package radial

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter is the default painting collaborator. It consumes the menu's
// PaintPlan each frame and draws the overlay dim, the ring, the pointer
// marker, and the action discs with vector shapes. It makes no interaction
// decisions of its own.
type Painter struct {
	menu *Menu
}

// NewPainter creates a painter bound to the menu.
func NewPainter(menu *Menu) *Painter {
	return &Painter{menu: menu}
}

// Draw renders the current frame. A menu with no live session draws nothing.
func (p *Painter) Draw(screen *ebiten.Image) {
	plan, ok := p.menu.Plan()
	if !ok || plan.Alpha <= 0 {
		return
	}
	th := p.menu.theme

	p.drawOverlay(screen, plan, th)

	anchor := plan.Slots[0].Center
	vector.StrokeCircle(screen, float32(anchor.X), float32(anchor.Y),
		float32(th.Radius), 1.5, toRGBA(th.RingColor, plan.Alpha), true)

	for _, slot := range plan.Slots[1:] {
		p.drawAction(screen, plan, slot, th)
	}

	// Marker last so it stays on top of overlapping action boxes.
	marker := plan.Slots[0]
	vector.DrawFilledRect(screen,
		float32(marker.Center.X-marker.Size.X/2), float32(marker.Center.Y-marker.Size.Y/2),
		float32(marker.Size.X), float32(marker.Size.Y),
		toRGBA(th.MarkerColor, plan.Alpha), true)
}

// drawOverlay dims the surface according to the plan's style tag.
func (p *Painter) drawOverlay(screen *ebiten.Image, plan PaintPlan, th Theme) {
	dim := toRGBA(th.DimColor, plan.Alpha)
	switch plan.Style {
	case OverlayBehind:
		b := screen.Bounds()
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y),
			float32(b.Dx()), float32(b.Dy()), dim, false)
	case OverlayAround:
		b := screen.Bounds()
		r := plan.Bounds
		// Four bands around the menu bounds; the fan itself stays undimmed.
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y),
			float32(b.Dx()), float32(r.Y-float64(b.Min.Y)), dim, false)
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(r.Y+r.Height),
			float32(b.Dx()), float32(float64(b.Max.Y)-(r.Y+r.Height)), dim, false)
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(r.Y),
			float32(r.X-float64(b.Min.X)), float32(r.Height), dim, false)
		vector.DrawFilledRect(screen, float32(r.X+r.Width), float32(r.Y),
			float32(float64(b.Max.X)-(r.X+r.Width)), float32(r.Height), dim, false)
	}
}

// drawAction draws one action disc, honoring per-action color overrides and
// the hover highlight.
func (p *Painter) drawAction(screen *ebiten.Image, plan PaintPlan, slot Placement, th Theme) {
	action := p.menu.session.Actions[slot.ActionIndex]

	fill := th.ActionColor
	if action.Color.A > 0 {
		fill = action.Color
	}
	if slot.ActionIndex == plan.Hovered {
		fill = th.HoverColor
		if action.HoverColor.A > 0 {
			fill = action.HoverColor
		}
	}

	radius := float32(min(slot.Size.X, slot.Size.Y) / 2)
	vector.DrawFilledCircle(screen, float32(slot.Center.X), float32(slot.Center.Y),
		radius, toRGBA(fill, plan.Alpha), true)
}

// toRGBA converts a Color scaled by alpha to a premultiplied color.RGBA.
func toRGBA(c Color, alpha float64) color.RGBA {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(c.R * a * 255),
		G: uint8(c.G * a * 255),
		B: uint8(c.B * a * 255),
		A: uint8(a * 255),
	}
}
