package ui

// Rect is a screen rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// and optional text for labels. Bounds are filled in by layout.
type Node struct {
	Type   string // "panel", "button", "label"
	Class  string // e.g. "toolbar" for .toolbar
	ID     string // e.g. "price" for #price
	Text   string
	Bounds Rect
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// matches reports whether a simple selector (.class or #id) selects n.
func (n *Node) matches(selector string) bool {
	if len(selector) < 2 {
		return false
	}
	switch selector[0] {
	case '.':
		return n.Class != "" && n.Class == selector[1:]
	case '#':
		return n.ID != "" && n.ID == selector[1:]
	}
	return false
}
