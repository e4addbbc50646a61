package dock

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ID returns the view's id. Views get a random UUID unless WithID is used.
func (v *View) ID() string {
	return v.id
}

// Name returns the view's name, which may be empty.
func (v *View) Name() string {
	return v.name
}

// Label returns the name, falling back to the id.
func (v *View) Label() string {
	if v.name != "" {
		return v.name
	}
	return v.id
}

// Dock returns the edge this view is anchored to.
func (v *View) Dock() Dock {
	return v.dock
}

// SetDock changes the edge this view is anchored to and requests a new pass.
func (v *View) SetDock(d Dock) {
	if v.dock == d {
		return
	}
	v.mutate(func() {
		v.dock = d
	})
}

// Margin returns the view's margin.
func (v *View) Margin() Edges {
	return v.margin
}

// SetMargin sets the view's margin.
func (v *View) SetMargin(e Edges) {
	v.mutate(func() {
		v.margin = e
	})
}

// Visible returns whether this view takes part in layout.
func (v *View) Visible() bool {
	return !v.hidden
}

// SetVisible shows or hides the view.
func (v *View) SetVisible(visible bool) {
	if v.hidden == !visible {
		return
	}
	v.mutate(func() {
		v.hidden = !visible
	})
}

// Padding returns the view's padding.
func (v *View) Padding() Edges {
	return v.padding
}

// SetPadding sets the view's padding.
func (v *View) SetPadding(e Edges) {
	v.mutate(func() {
		v.padding = e
	})
}

// StretchLastChild returns whether the last visible child fills the
// remaining space.
func (v *View) StretchLastChild() bool {
	return v.stretchLastChild
}

// SetStretchLastChild sets the stretch-last-child flag.
func (v *View) SetStretchLastChild(stretch bool) {
	v.mutate(func() {
		v.stretchLastChild = stretch
	})
}

// SetSize sets the view's width and height values.
func (v *View) SetSize(width, height Value) {
	v.mutate(func() {
		v.width = width
		v.height = height
	})
}

// SetMinSize sets the view's minimum width and height.
func (v *View) SetMinSize(width, height float64) {
	v.mutate(func() {
		v.minWidth = width
		v.minHeight = height
	})
}

// Text returns the view's text content.
func (v *View) Text() string {
	return v.text
}

// SetText sets the text content.
func (v *View) SetText(text string) {
	v.mutate(func() {
		v.text = text
	})
}

// Border returns the border drawn by the text renderer.
func (v *View) Border() BorderStyle {
	return v.border
}

// SetBorder sets the border drawn by the text renderer. A border takes one
// unit on each side, so this requests a new pass.
func (v *View) SetBorder(b BorderStyle) {
	if v.border == b {
		return
	}
	v.mutate(func() {
		v.border = b
	})
}

// SetDensity sets the display density used when this view is the root of
// a pass. Every scaled length changes, so the whole subtree is dirtied.
func (v *View) SetDensity(density float64) {
	v.mutate(func() {
		v.density = density
		for _, child := range v.children {
			child.Walk(func(n *View) bool {
				n.dirty = true
				return true
			})
		}
	})
}

// Density returns the display density of this view's tree.
// A root without an explicit density uses 1.
func (v *View) Density() float64 {
	if d := v.Root().density; d > 0 {
		return d
	}
	return 1
}

// MeasuredSize returns the size recorded by the last measure, excluding margins.
func (v *View) MeasuredSize() Size {
	return v.measured
}

// Frame returns the view's border box relative to its parent.
func (v *View) Frame() Rect {
	return v.frame
}

// AbsoluteFrame returns the view's border box relative to the root.
func (v *View) AbsoluteFrame() Rect {
	r := v.frame
	for p := v.parent; p != nil; p = p.parent {
		r = r.Translate(p.frame.X, p.frame.Y)
	}
	return r
}

// textSize returns the display width of the widest line and the line count.
func textSize(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width, len(lines)
}
