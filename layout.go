// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package dock

import "github.com/grindlemire/go-dock/internal/layout"

// Dock is the container edge a child is anchored to.
type Dock = layout.Dock

const (
	DockLeft   = layout.DockLeft
	DockTop    = layout.DockTop
	DockRight  = layout.DockRight
	DockBottom = layout.DockBottom
)

// Mode specifies how a MeasureSpec size is interpreted.
type Mode = layout.Mode

const (
	Unspecified = layout.Unspecified
	Exactly     = layout.Exactly
	AtMost      = layout.AtMost
)

// MaxSize is the unbounded sentinel size of a MeasureSpec.
const MaxSize = layout.MaxSize

// Measured state flags, as returned by ResolveSizeAndState.
const (
	MeasuredSizeMask      = layout.MeasuredSizeMask
	MeasuredStateMask     = layout.MeasuredStateMask
	MeasuredStateTooSmall = layout.MeasuredStateTooSmall
)

// MeasureSpec is a size constraint passed down during measurement.
type MeasureSpec = layout.MeasureSpec

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the dock container properties.
type LayoutStyle = layout.Style

// Rect represents a rectangle in device pixels.
type Rect = layout.Rect

// Size represents a width/height pair in device pixels.
type Size = layout.Size

// Edges represents device-independent spacing on four sides.
type Edges = layout.Edges

// Insets represents spacing on four sides in device pixels.
type Insets = layout.Insets

// Child, Container and Host are the capabilities the engine consumes.
type (
	Child     = layout.Child
	Container = layout.Container
	Host      = layout.Host
	Measurer  = layout.Measurer
	Placer    = layout.Placer
)

// Fixed creates a device-independent length Value.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// ParseDock parses a dock side name.
func ParseDock(s string) (Dock, error) {
	return layout.ParseDock(s)
}

// ParseMode parses a measure mode name.
func ParseMode(s string) (Mode, error) {
	return layout.ParseMode(s)
}

// MakeMeasureSpec creates a MeasureSpec, clamping the size into range.
func MakeMeasureSpec(size int, mode Mode) MeasureSpec {
	return layout.MakeMeasureSpec(size, mode)
}

// DecodeMeasureSpec unpacks an encoded MeasureSpec.
func DecodeMeasureSpec(v int) MeasureSpec {
	return layout.DecodeMeasureSpec(v)
}

// ResolveSizeAndState reconciles a desired size with a spec.
func ResolveSizeAndState(size int, spec MeasureSpec, childState int) int {
	return layout.ResolveSizeAndState(size, spec, childState)
}

// ResolveSize reconciles a desired size with a spec, without state bits.
func ResolveSize(size int, spec MeasureSpec) int {
	return layout.ResolveSize(size, spec)
}

// Scale converts a device-independent length to device pixels.
func Scale(v, density float64) int {
	return layout.Scale(v, density)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Measure runs the dock measure pass for a custom Container.
func Measure(host Host, c Container, widthSpec, heightSpec MeasureSpec) Size {
	return layout.Measure(host, c, widthSpec, heightSpec)
}

// Arrange runs the dock layout pass for a custom Container.
func Arrange(host Host, c Container, left, top, right, bottom int) {
	layout.Arrange(host, c, left, top, right, bottom)
}
