package layout

import "math"

// Edges represents values for four sides of a box in device-independent units.
// Padding and margin are declared as Edges and converted to device pixels
// with the host's display density at pass time.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Scale converts the edges to device pixels.
func (e Edges) Scale(density float64) Insets {
	return Insets{
		Top:    Scale(e.Top, density),
		Right:  Scale(e.Right, density),
		Bottom: Scale(e.Bottom, density),
		Left:   Scale(e.Left, density),
	}
}

// Insets are Edges resolved to device pixels.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

// Scale converts a device-independent length to device pixels, rounding to
// the nearest pixel. A non-positive density is treated as 1.
func Scale(v, density float64) int {
	if density <= 0 {
		density = 1
	}
	return int(math.Round(v * density))
}
