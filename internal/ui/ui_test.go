package ui

import (
	"image/color"
	"testing"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSSString(`
/* comment */
.panel { background: #333; width: 10px }
#menu, .side { color: white; height: 20 }
div.nav { color: red; }
@media screen { .hidden { width: 1px; } }
.panel { width: 12px; }
`)
	if err != nil {
		t.Fatalf("ParseCSS: %v", err)
	}
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	want := []string{".panel", "#menu", ".side", ".panel"}
	if len(sels) != len(want) {
		t.Fatalf("selectors = %q, want %q", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("selectors = %q, want %q", sels, want)
		}
	}
	if got := sheet.Rules[0].Props["background"]; got != "#333" {
		t.Errorf("background = %q, want #333", got)
	}
	if got := sheet.Rules[2].Props["height"]; got != "20" {
		t.Errorf("comma-list rule height = %q, want 20", got)
	}

	style := sheet.Resolve(NewNode("panel", "panel", "", ""))
	if style.Width != 12 {
		t.Errorf("later rule should win: width = %v, want 12", style.Width)
	}
	if style.Background != (color.RGBA{0x33, 0x33, 0x33, 0xff}) {
		t.Errorf("background = %v", style.Background)
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"background":    "#a1a1aacc",
		"border":        "#4ade80",
		"width":         "128px",
		"height":        "48",
		"border-radius": "9999px",
		"font-weight":   "bold",
		"padding":       "-3px",
		"gap":           "nonsense",
	})
	if s.Background != (color.RGBA{0xa1, 0xa1, 0xaa, 0xcc}) {
		t.Errorf("background = %v", s.Background)
	}
	if !s.HasBorder || s.Border != (color.RGBA{0x4a, 0xde, 0x80, 0xff}) {
		t.Errorf("border = %v (has %v)", s.Border, s.HasBorder)
	}
	if s.Width != 128 || s.Height != 48 || s.Radius != 9999 || !s.Bold {
		t.Errorf("style = %+v", s)
	}
	if s.Padding != 0 || s.Gap != 0 {
		t.Errorf("invalid values should be ignored: padding=%v gap=%v", s.Padding, s.Gap)
	}
	if s.Bottom != -1 {
		t.Errorf("bottom = %v, want -1 when unset", s.Bottom)
	}
}

func TestRoundness(t *testing.T) {
	s := ComputedStyle{Radius: 9999}
	if r := s.Roundness(128, 48); r != 1 {
		t.Errorf("full radius roundness = %v, want 1", r)
	}
	s.Radius = 12
	if r := s.Roundness(128, 48); r != 0.5 {
		t.Errorf("12px on 48px roundness = %v, want 0.5", r)
	}
	s.Radius = 0
	if r := s.Roundness(10, 10); r != 0 {
		t.Errorf("no radius roundness = %v, want 0", r)
	}
}

func TestToolbarLayout(t *testing.T) {
	sheet, err := DefaultStylesheet()
	if err != nil {
		t.Fatalf("DefaultStylesheet: %v", err)
	}
	tb := NewToolbar(3, "$1,000,000")
	placed := tb.Layout(sheet, 1280, 720)
	if len(placed) != 5 {
		t.Fatalf("placed %d nodes, want 5", len(placed))
	}

	bar := placed[0].Node.Bounds
	if bar != (Rect{X: 484, Y: 640, Width: 312, Height: 64}) {
		t.Fatalf("bar = %+v", bar)
	}
	wantX := []float32{492, 548, 604, 660}
	for i, p := range placed[1:] {
		b := p.Node.Bounds
		if b.X != wantX[i] || b.Y != 648 || b.Height != 48 {
			t.Errorf("child %d = %+v, want x=%v y=648 h=48", i, b, wantX[i])
		}
	}
	price := placed[4]
	if price.Node.Text != "$1,000,000" || price.Node.Bounds.Width != 128 {
		t.Errorf("price = %+v", price.Node)
	}
	if !price.Style.Bold || price.Style.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("price style = %+v", price.Style)
	}
	if end := price.Node.Bounds.X + price.Node.Bounds.Width + 8; end != bar.X+bar.Width {
		t.Errorf("last child ends at %v, want bar edge %v", end, bar.X+bar.Width)
	}
}

func TestToolbarCentredOnResize(t *testing.T) {
	sheet, _ := DefaultStylesheet()
	tb := NewToolbar(1, "x")
	for _, w := range []float32{400, 800, 1920} {
		bar := tb.Layout(sheet, w, 600)[0].Node.Bounds
		left := bar.X
		right := w - (bar.X + bar.Width)
		if left != right {
			t.Fatalf("width %v: margins %v / %v", w, left, right)
		}
	}
	tb.SetLabel("$5")
	if got := tb.Layout(sheet, 800, 600)[2].Node.Text; got != "$5" {
		t.Fatalf("label = %q", got)
	}
}
