package layout

// dockChild is the per-pass snapshot of a visible child.
type dockChild struct {
	child Child
	dock  Dock
}

// visibleChildren snapshots the container's visible children so that
// changes made by the host during a pass cannot affect iteration.
func visibleChildren(c Container) []dockChild {
	children := c.DockChildren()
	visible := make([]dockChild, 0, len(children))
	for _, child := range children {
		if child == nil || !child.Visible() {
			continue
		}
		visible = append(visible, dockChild{child: child, dock: child.Dock()})
	}
	return visible
}

// Measure runs the measure pass for container c and returns its resolved
// size, which is also stored with c.SetMeasuredSize.
//
// The result is the bounding box of all docked strips: children docked top
// or bottom stack vertically while the width takes the widest strip seen so
// far, and children docked left or right stack horizontally in the same way.
func Measure(host Host, c Container, widthSpec, heightSpec MeasureSpec) Size {
	style := c.DockStyle()
	density := host.Density()
	padding := style.Padding.Scale(density)
	trace := tracer()

	remainingWidth := MaxSize
	if widthSpec.Mode != Unspecified {
		remainingWidth = max(0, widthSpec.Size-padding.Horizontal())
	}
	remainingHeight := MaxSize
	if heightSpec.Mode != Unspecified {
		remainingHeight = max(0, heightSpec.Size-padding.Vertical())
	}

	var measureWidth, measureHeight int
	var dockedWidth, dockedHeight int

	children := visibleChildren(c)
	for i, dc := range children {
		var childWidthSpec, childHeightSpec MeasureSpec
		if style.StretchLastChild && i == len(children)-1 {
			childWidthSpec = MakeMeasureSpec(remainingWidth, widthSpec.Mode)
			childHeightSpec = MakeMeasureSpec(remainingHeight, heightSpec.Mode)
		} else {
			// Siblings share the dock axes, so none may claim the exact size.
			childWidthSpec = MakeMeasureSpec(remainingWidth, atMostIfExact(widthSpec.Mode))
			childHeightSpec = MakeMeasureSpec(remainingHeight, atMostIfExact(heightSpec.Mode))
		}

		size := host.MeasureChild(c, dc.child, childWidthSpec, childHeightSpec)

		if trace != nil {
			trace.Trace("measure child", "child", childLabel(dc.child), "dock", dc.dock,
				"width_spec", childWidthSpec, "height_spec", childHeightSpec,
				"width", size.Width, "height", size.Height)
		}

		if dc.dock.Vertical() {
			remainingHeight = max(0, remainingHeight-size.Height)
			dockedHeight += size.Height
			measureWidth = max(measureWidth, dockedWidth+size.Width)
			measureHeight = max(measureHeight, dockedHeight)
		} else {
			remainingWidth = max(0, remainingWidth-size.Width)
			dockedWidth += size.Width
			measureWidth = max(measureWidth, dockedWidth)
			measureHeight = max(measureHeight, dockedHeight+size.Height)
		}
	}

	measureWidth += padding.Horizontal()
	measureHeight += padding.Vertical()

	measureWidth = max(measureWidth, Scale(style.MinWidth, density))
	measureHeight = max(measureHeight, Scale(style.MinHeight, density))

	// Clamping policy belongs to the host, so no state bits are reported.
	measured := Size{
		Width:  ResolveSizeAndState(measureWidth, widthSpec, 0) & MeasuredSizeMask,
		Height: ResolveSizeAndState(measureHeight, heightSpec, 0) & MeasuredSizeMask,
	}
	c.SetMeasuredSize(measured)

	if trace != nil {
		trace.Trace("measured container", "width_spec", widthSpec, "height_spec", heightSpec,
			"children", len(children), "width", measured.Width, "height", measured.Height)
	}
	return measured
}

func atMostIfExact(m Mode) Mode {
	if m == Exactly {
		return AtMost
	}
	return m
}

// Arrange runs the layout pass for container c, whose bounds within its own
// parent are (left, top, right, bottom). Children are placed relative to c's
// top-left corner. Arrange must follow a Measure for the same geometry.
//
// Placement values are computed into locals; no child state is touched
// except through host.LayoutChild, so repeated passes are idempotent.
func Arrange(host Host, c Container, left, top, right, bottom int) {
	style := c.DockStyle()
	density := host.Density()
	padding := style.Padding.Scale(density)
	trace := tracer()

	x := padding.Left
	y := padding.Top

	remainingWidth := max(0, right-left-padding.Horizontal())
	remainingHeight := max(0, bottom-top-padding.Vertical())

	children := visibleChildren(c)
	var stretch Child
	if style.StretchLastChild && len(children) > 0 {
		stretch = children[len(children)-1].child
		children = children[:len(children)-1]
	}

	for _, dc := range children {
		margin := dc.child.Margin().Scale(density)
		measured := dc.child.MeasuredSize()
		childWidth := measured.Width + margin.Horizontal()
		childHeight := measured.Height + margin.Vertical()

		var childLeft, childTop int
		switch dc.dock {
		case DockTop:
			childLeft = x
			childTop = y
			childWidth = remainingWidth
			y += childHeight
			remainingHeight = max(0, remainingHeight-childHeight)

		case DockBottom:
			childLeft = x
			childTop = y + remainingHeight - childHeight
			childWidth = remainingWidth
			remainingHeight = max(0, remainingHeight-childHeight)

		case DockRight:
			childLeft = x + remainingWidth - childWidth
			childTop = y
			childHeight = remainingHeight
			remainingWidth = max(0, remainingWidth-childWidth)

		default: // DockLeft and unknown values
			childLeft = x
			childTop = y
			childHeight = remainingHeight
			x += childWidth
			remainingWidth = max(0, remainingWidth-childWidth)
		}

		if trace != nil {
			trace.Trace("layout child", "child", childLabel(dc.child), "dock", dc.dock,
				"left", childLeft, "top", childTop, "width", childWidth, "height", childHeight,
				"remaining_width", remainingWidth, "remaining_height", remainingHeight)
		}
		host.LayoutChild(c, dc.child, childLeft, childTop, childLeft+childWidth, childTop+childHeight)
	}

	if stretch != nil {
		if trace != nil {
			trace.Trace("layout stretched child", "child", childLabel(stretch),
				"left", x, "top", y, "width", remainingWidth, "height", remainingHeight)
		}
		host.LayoutChild(c, stretch, x, y, x+remainingWidth, y+remainingHeight)
	}
}
