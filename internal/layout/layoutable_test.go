package layout

// testNode is a minimal Child and Container used by the engine tests.
// Leaf nodes report a fixed desired size; nodes with children are nested
// dock containers.
type testNode struct {
	name     string
	dock     Dock
	margin   Edges
	hidden   bool
	want     Size
	style    Style
	children []*testNode

	measured Size
	slot     Rect
	placed   int
}

func newTestNode(name string, dock Dock, width, height int) *testNode {
	return &testNode{name: name, dock: dock, want: Size{Width: width, Height: height}}
}

func newTestContainer(style Style, children ...*testNode) *testNode {
	return &testNode{name: "container", style: style, children: children}
}

func (n *testNode) Name() string       { return n.name }
func (n *testNode) Visible() bool      { return !n.hidden }
func (n *testNode) Dock() Dock         { return n.dock }
func (n *testNode) Margin() Edges      { return n.margin }
func (n *testNode) MeasuredSize() Size { return n.measured }
func (n *testNode) DockStyle() Style   { return n.style }
func (n *testNode) SetMeasuredSize(s Size) {
	n.measured = s
}

func (n *testNode) DockChildren() []Child {
	result := make([]Child, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

type specCall struct {
	name   string
	width  MeasureSpec
	height MeasureSpec
}

// testHost records every capability call the engine makes.
type testHost struct {
	density  float64
	measured []specCall
	placed   []string
}

func (h *testHost) Density() float64 {
	if h.density == 0 {
		return 1
	}
	return h.density
}

func (h *testHost) MeasureChild(parent Container, child Child, widthSpec, heightSpec MeasureSpec) Size {
	n := child.(*testNode)
	h.measured = append(h.measured, specCall{name: n.name, width: widthSpec, height: heightSpec})

	margin := n.margin.Scale(h.Density())
	widthSpec = shrinkSpec(widthSpec, margin.Horizontal())
	heightSpec = shrinkSpec(heightSpec, margin.Vertical())

	if len(n.children) > 0 {
		Measure(h, n, widthSpec, heightSpec)
	} else {
		n.measured = Size{
			Width:  ResolveSize(n.want.Width, widthSpec),
			Height: ResolveSize(n.want.Height, heightSpec),
		}
	}
	return Size{
		Width:  n.measured.Width + margin.Horizontal(),
		Height: n.measured.Height + margin.Vertical(),
	}
}

func (h *testHost) LayoutChild(parent Container, child Child, left, top, right, bottom int) {
	n := child.(*testNode)
	h.placed = append(h.placed, n.name)
	n.slot = NewRect(left, top, right-left, bottom-top)
	n.placed++
	if len(n.children) > 0 {
		Arrange(h, n, left, top, right, bottom)
	}
}

func shrinkSpec(spec MeasureSpec, by int) MeasureSpec {
	if spec.Mode == Unspecified {
		return spec
	}
	return MakeMeasureSpec(spec.Size-by, spec.Mode)
}
