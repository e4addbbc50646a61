package layout

// Child is anything that can be docked inside a Container.
type Child interface {
	// Visible reports whether the child takes part in layout.
	// Invisible children are skipped by both passes.
	Visible() bool

	// Dock returns the edge the child is anchored to.
	Dock() Dock

	// Margin returns the child's margin in device-independent units.
	Margin() Edges

	// MeasuredSize returns the size recorded by the child's last measure,
	// excluding margins.
	MeasuredSize() Size
}

// Container is a dock layout container.
type Container interface {
	// DockStyle returns the container properties for this pass.
	DockStyle() Style

	// DockChildren returns the children in insertion order.
	DockChildren() []Child

	// SetMeasuredSize stores the result of the measure pass.
	SetMeasuredSize(Size)
}

// Measurer asks a child for its desired size.
type Measurer interface {
	// MeasureChild measures child under the given specs and returns its
	// outer size, margins included.
	MeasureChild(parent Container, child Child, widthSpec, heightSpec MeasureSpec) Size
}

// Placer assigns a child its final slot.
type Placer interface {
	// LayoutChild places child in the slot bounded by the given edges,
	// relative to parent's top-left corner. The slot includes the child's
	// margins.
	LayoutChild(parent Container, child Child, left, top, right, bottom int)
}

// Host bundles the capabilities the engine consumes from the view system.
type Host interface {
	Measurer
	Placer

	// Density returns the display density used to scale device-independent
	// lengths into device pixels.
	Density() float64
}
