package dock

import (
	"github.com/google/uuid"
	"github.com/grindlemire/go-dock/internal/layout"
)

// View is a node in a dock layout tree. A view with children is a dock
// container; a view without children is a leaf sized by its explicit
// dimensions or its text.
type View struct {
	// Tree structure
	id       string
	name     string
	children []*View
	parent   *View

	// Child properties (read by the parent's dock pass)
	dock   Dock
	margin Edges
	hidden bool
	hAlign Align
	vAlign Align

	// Size properties
	width     Value
	height    Value
	minWidth  float64
	minHeight float64

	// Container properties
	padding          Edges
	stretchLastChild bool

	// Content
	text   string
	border BorderStyle

	// Root properties
	density float64

	// Computed
	measured    Size
	frame       Rect
	lastWidth   MeasureSpec
	lastHeight  MeasureSpec
	lastDensity float64
	hasMeasured bool
	dirty       bool
	needsLayout bool // measured since the last layout pass

	onLayout func(*View)

	// Root only: pass guard and the viewport of the last Calculate
	inPass   bool
	pending  []func()
	viewport Size
}

// Compile-time checks that View satisfies the engine capabilities.
var (
	_ layout.Child     = (*View)(nil)
	_ layout.Container = (*View)(nil)
)

// New creates a new View with the given options.
// By default a View docks left, stretches to its slot, sizes to content
// and stretches its last child.
func New(opts ...Option) *View {
	v := &View{
		id:               uuid.NewString(),
		width:            Auto(),
		height:           Auto(),
		stretchLastChild: true,
		dirty:            true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}
