package ui

import (
	"image/color"
	"strconv"
	"strings"

	"diorama/internal/palette"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".button" or "#price"
	Props    map[string]string // e.g. "background" -> "#a1a1aa"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Resolve merges the properties of every rule that selects n, in sheet order.
func (s *Stylesheet) Resolve(n *Node) ComputedStyle {
	merged := make(map[string]string)
	if s != nil {
		for _, rule := range s.Rules {
			if !n.matches(rule.Selector) {
				continue
			}
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return ResolveProps(merged)
}

// ComputedStyle holds resolved values used for drawing.
// Bottom is the distance from the screen bottom; -1 means the node is laid out by its parent.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      float32
	Height     float32
	Padding    float32
	Gap        float32
	Bottom     float32
	Radius     float32
	FontSize   float32
	Bold       bool
}

// DefaultComputedStyle returns a minimal style (transparent background, white 20px text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:    color.RGBA{255, 255, 255, 255},
		Border:   color.RGBA{0, 0, 0, 255},
		Bottom:   -1,
		FontSize: 20,
	}
}

// ParsePx parses a number with optional "px" suffix. Unitless is treated as pixels.
func ParsePx(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "px"))
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// ResolveProps builds a ComputedStyle from a merged property map. Unknown keys and
// unparsable values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	px := func(v string, dst *float32) {
		if n, ok := ParsePx(v); ok && n >= 0 {
			*dst = n
		}
	}
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, err := palette.Parse(v); err == nil {
				out.Background = c
			}
		case "color":
			if c, err := palette.Parse(v); err == nil {
				out.Color = c
			}
		case "border", "border-color":
			if c, err := palette.Parse(v); err == nil {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			px(v, &out.Width)
		case "height":
			px(v, &out.Height)
		case "padding":
			px(v, &out.Padding)
		case "gap":
			px(v, &out.Gap)
		case "bottom":
			px(v, &out.Bottom)
		case "border-radius":
			px(v, &out.Radius)
		case "font-size":
			px(v, &out.FontSize)
		case "font-weight":
			out.Bold = v == "bold" || v == "700" || v == "800" || v == "900"
		}
	}
	return out
}

// Roundness converts the pixel radius into raylib's [0,1] roundness for a w x h rectangle.
func (c ComputedStyle) Roundness(w, h float32) float32 {
	short := w
	if h < short {
		short = h
	}
	if short <= 0 || c.Radius <= 0 {
		return 0
	}
	r := c.Radius / (short / 2)
	if r > 1 {
		r = 1
	}
	return r
}
