package hud

import (
	"image/color"

	"diorama/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	roundSegments = 16
	borderWidth   = 1
	minFontSize   = 10
)

// HUD draws the toolbar overlay. Layout is recomputed only when the screen size changes.
type HUD struct {
	Visible bool

	toolbar *ui.Toolbar
	sheet   *ui.Stylesheet
	placed  []ui.Placed
	screenW int
	screenH int
}

// New returns a HUD drawing toolbar with sheet.
func New(toolbar *ui.Toolbar, sheet *ui.Stylesheet, visible bool) *HUD {
	return &HUD{Visible: visible, toolbar: toolbar, sheet: sheet}
}

// SetLabel changes the price text and forces a relayout.
func (h *HUD) SetLabel(label string) {
	h.toolbar.SetLabel(label)
	h.placed = nil
}

func (h *HUD) layout() []ui.Placed {
	w, ht := rl.GetScreenWidth(), rl.GetScreenHeight()
	if h.placed == nil || w != h.screenW || ht != h.screenH {
		h.screenW, h.screenH = w, ht
		h.placed = h.toolbar.Layout(h.sheet, float32(w), float32(ht))
	}
	return h.placed
}

// Draw renders the toolbar in screen space. Call after the 3D scene, outside BeginMode3D.
func (h *HUD) Draw() {
	if !h.Visible {
		return
	}
	for _, p := range h.layout() {
		drawNode(p)
	}
}

func drawNode(p ui.Placed) {
	b, s := p.Node.Bounds, p.Style
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	rec := rl.NewRectangle(b.X, b.Y, b.Width, b.Height)
	// Border first as a full-size shape, fill inset on top of it.
	if s.HasBorder && s.Border.A > 0 {
		rl.DrawRectangleRounded(rec, s.Roundness(b.Width, b.Height), roundSegments, rgba(s.Border))
		rec = rl.NewRectangle(b.X+borderWidth, b.Y+borderWidth, b.Width-2*borderWidth, b.Height-2*borderWidth)
	}
	if s.Background.A > 0 {
		rl.DrawRectangleRounded(rec, s.Roundness(rec.Width, rec.Height), roundSegments, rgba(s.Background))
	}
	if p.Node.Text != "" {
		drawCentredText(p.Node.Text, b, s)
	}
}

// drawCentredText draws text centred in b. The default font has no bold face,
// so bold is faked by drawing twice one pixel apart.
func drawCentredText(text string, b ui.Rect, s ui.ComputedStyle) {
	size := int32(s.FontSize)
	if size < minFontSize {
		size = minFontSize
	}
	w := rl.MeasureText(text, size)
	x := int32(b.X + (b.Width-float32(w))/2)
	y := int32(b.Y + (b.Height-float32(size))/2)
	c := rgba(s.Color)
	rl.DrawText(text, x, y, size, c)
	if s.Bold {
		rl.DrawText(text, x+1, y, size, c)
	}
}

func rgba(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
