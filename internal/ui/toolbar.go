package ui

import (
	_ "embed"
)

//go:embed toolbar.css
var toolbarCSS string

// DefaultStylesheet returns the built-in toolbar styles.
func DefaultStylesheet() (*Stylesheet, error) {
	return ParseCSSString(toolbarCSS)
}

// Placed is a node with its resolved style and final bounds, ready to draw.
type Placed struct {
	Node  *Node
	Style ComputedStyle
}

// Toolbar is the bottom-centred bar: a row of round buttons followed by a price pill.
// Nodes are styled by .toolbar, .button and #price.
type Toolbar struct {
	bar      *Node
	children []*Node
}

// NewToolbar creates a toolbar with the given number of buttons and a price label.
func NewToolbar(buttons int, label string) *Toolbar {
	tb := &Toolbar{bar: NewNode("panel", "toolbar", "toolbar", "")}
	for i := 0; i < buttons; i++ {
		tb.children = append(tb.children, NewNode("button", "button", "", ""))
	}
	tb.children = append(tb.children, NewNode("label", "price", "price", label))
	return tb
}

// SetLabel changes the price text.
func (tb *Toolbar) SetLabel(label string) {
	tb.children[len(tb.children)-1].Text = label
}

// Layout lays the children out left to right inside the bar, separated by the bar's gap and
// vertically centred. The bar wraps its children plus padding on each side and sits centred
// horizontally, Bottom pixels above the screen bottom. The bar comes first in the result.
func (tb *Toolbar) Layout(sheet *Stylesheet, screenW, screenH float32) []Placed {
	barStyle := sheet.Resolve(tb.bar)
	styles := make([]ComputedStyle, len(tb.children))
	width := 2 * barStyle.Padding
	for i, c := range tb.children {
		styles[i] = sheet.Resolve(c)
		width += styles[i].Width
		if i > 0 {
			width += barStyle.Gap
		}
	}
	height := barStyle.Height
	if height == 0 {
		for _, s := range styles {
			if h := s.Height + 2*barStyle.Padding; h > height {
				height = h
			}
		}
	}
	bottom := barStyle.Bottom
	if bottom < 0 {
		bottom = 0
	}
	tb.bar.Bounds = Rect{
		X:      (screenW - width) / 2,
		Y:      screenH - bottom - height,
		Width:  width,
		Height: height,
	}

	out := make([]Placed, 0, len(tb.children)+1)
	out = append(out, Placed{Node: tb.bar, Style: barStyle})
	x := tb.bar.Bounds.X + barStyle.Padding
	for i, c := range tb.children {
		s := styles[i]
		c.Bounds = Rect{
			X:      x,
			Y:      tb.bar.Bounds.Y + (height-s.Height)/2,
			Width:  s.Width,
			Height: s.Height,
		}
		out = append(out, Placed{Node: c, Style: s})
		x += s.Width + barStyle.Gap
	}
	return out
}
