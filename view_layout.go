package dock

import "github.com/grindlemire/go-dock/internal/layout"

// --- Implement the engine's Child and Container interfaces ---

// DockStyle returns the container properties for the dock pass.
// A border takes one device-independent unit on each side, so it is folded
// into the padding.
func (v *View) DockStyle() LayoutStyle {
	return LayoutStyle{
		Padding:          v.contentPadding(),
		MinWidth:         v.minWidth,
		MinHeight:        v.minHeight,
		StretchLastChild: v.stretchLastChild,
	}
}

// DockChildren returns the children in insertion order.
func (v *View) DockChildren() []Child {
	result := make([]Child, len(v.children))
	for i, child := range v.children {
		result[i] = child
	}
	return result
}

// SetMeasuredSize is called by the engine to store the measured size.
func (v *View) SetMeasuredSize(s Size) {
	v.measured = s
}

func (v *View) contentPadding() Edges {
	p := v.padding
	if v.border != BorderNone {
		p.Top++
		p.Right++
		p.Bottom++
		p.Left++
	}
	return p
}

// --- Layout driver ---

// Calculate measures and lays out the tree rooted at root inside a
// width x height viewport. A clean tree laid out for the same viewport is
// left untouched.
func Calculate(root *View, width, height int) {
	if root == nil {
		return
	}
	viewport := Size{Width: width, Height: height}
	if !root.dirty && root.viewport == viewport {
		return
	}
	root.viewport = viewport
	root.Measure(MakeMeasureSpec(width, Exactly), MakeMeasureSpec(height, Exactly))
	root.Layout(0, 0, width, height)
}

// Calculate computes layout for this View and all descendants.
func (v *View) Calculate(width, height int) {
	Calculate(v, width, height)
}

// Measure runs the measure pass for this View under the given specs, as its
// parent would, and returns the measured size excluding margins.
// Calling Measure while a pass is already running on the tree does nothing.
func (v *View) Measure(widthSpec, heightSpec MeasureSpec) Size {
	root := v.Root()
	if root.inPass {
		return v.measured
	}
	root.beginPass()
	defer root.endPass()

	h := newViewHost(v)
	h.MeasureChild(nil, v, widthSpec, heightSpec)
	return v.measured
}

// Layout places this View in the slot (left, top, right, bottom), applying
// its margins and alignment, then lays out its descendants. It must follow
// a Measure for the same geometry.
// Calling Layout while a pass is already running on the tree does nothing.
func (v *View) Layout(left, top, right, bottom int) {
	root := v.Root()
	if root.inPass {
		return
	}
	root.beginPass()
	defer root.endPass()

	h := newViewHost(v)
	h.LayoutChild(nil, v, left, top, right, bottom)
	v.Walk(func(n *View) bool {
		n.dirty = false
		n.needsLayout = false
		return true
	})
}

// viewHost implements the engine's Host capabilities for a View tree.
type viewHost struct {
	density float64
}

var _ layout.Host = (*viewHost)(nil)

func newViewHost(v *View) *viewHost {
	return &viewHost{density: v.Density()}
}

func (h *viewHost) Density() float64 {
	return h.density
}

// MeasureChild derives the child's own specs from the parent's, measures
// it and returns its size including margins.
func (h *viewHost) MeasureChild(_ Container, child Child, widthSpec, heightSpec MeasureSpec) Size {
	v := child.(*View)
	margin := v.margin.Scale(h.density)

	h.measure(v,
		childSpec(widthSpec, margin.Horizontal(), v.width, v.hAlign, h.density),
		childSpec(heightSpec, margin.Vertical(), v.height, v.vAlign, h.density),
	)

	return Size{
		Width:  v.measured.Width + margin.Horizontal(),
		Height: v.measured.Height + margin.Vertical(),
	}
}

func (h *viewHost) measure(v *View, widthSpec, heightSpec MeasureSpec) {
	// A clean view measured under the same constraints keeps its result.
	if !v.dirty && v.hasMeasured && v.lastWidth == widthSpec && v.lastHeight == heightSpec &&
		v.lastDensity == h.density {
		return
	}

	if len(v.children) > 0 {
		layout.Measure(h, v, widthSpec, heightSpec)
	} else {
		h.measureLeaf(v, widthSpec, heightSpec)
	}

	v.lastWidth = widthSpec
	v.lastHeight = heightSpec
	v.lastDensity = h.density
	v.hasMeasured = true
	v.needsLayout = true
}

// measureLeaf sizes a childless view from its text, padding and minimums.
func (h *viewHost) measureLeaf(v *View, widthSpec, heightSpec MeasureSpec) {
	padding := v.contentPadding().Scale(h.density)
	textWidth, textHeight := textSize(v.text)

	width := textWidth + padding.Horizontal()
	height := textHeight + padding.Vertical()

	width = max(width, layout.Scale(v.minWidth, h.density))
	height = max(height, layout.Scale(v.minHeight, h.density))

	v.measured = Size{
		Width:  ResolveSize(width, widthSpec),
		Height: ResolveSize(height, heightSpec),
	}
}

// childSpec derives a child's spec on one axis. An explicit size is always
// exact. Otherwise a stretched child of an exact parent is exact, other
// bounded parents give at-most, and an unbounded parent stays unbounded.
func childSpec(parent MeasureSpec, margins int, size Value, align Align, density float64) MeasureSpec {
	available := max(0, parent.Size-margins)

	switch {
	case size.Unit == UnitFixed:
		return MakeMeasureSpec(size.Resolve(available, 0, density), Exactly)
	case size.Unit == UnitPercent && parent.Mode != Unspecified:
		return MakeMeasureSpec(size.Resolve(available, 0, density), Exactly)
	}

	switch parent.Mode {
	case Exactly:
		if align == AlignStretch {
			return MakeMeasureSpec(available, Exactly)
		}
		return MakeMeasureSpec(available, AtMost)
	case AtMost:
		return MakeMeasureSpec(available, AtMost)
	default:
		return MakeMeasureSpec(available, Unspecified)
	}
}

// LayoutChild applies the child's margins and alignment to its slot,
// stores the frame and lays out the child's own children.
func (h *viewHost) LayoutChild(_ Container, child Child, left, top, right, bottom int) {
	v := child.(*View)
	margin := v.margin.Scale(h.density)

	x, width := v.hAlign.resolve(v.width).place(left, right, v.measured.Width, margin.Left, margin.Right)
	y, height := v.vAlign.resolve(v.height).place(top, bottom, v.measured.Height, margin.Top, margin.Bottom)

	h.place(v, NewRect(x, y, width, height))
}

func (h *viewHost) place(v *View, frame Rect) {
	resized := v.frame.Size() != frame.Size()
	v.frame = frame

	// Children are placed relative to v, so a clean view that only moved
	// and was not re-measured keeps its children's frames.
	if len(v.children) > 0 && (v.dirty || v.needsLayout || resized) {
		layout.Arrange(h, v, frame.X, frame.Y, frame.Right(), frame.Bottom())
	}

	if v.onLayout != nil {
		v.onLayout(v)
	}
}
