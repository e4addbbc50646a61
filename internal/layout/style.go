package layout

// Style contains the dock container properties the engine reads.
// Lengths are device-independent and scaled by the host density.
type Style struct {
	Padding   Edges
	MinWidth  float64
	MinHeight float64

	// StretchLastChild makes the last visible child fill the space left over
	// after every other child has been docked.
	StretchLastChild bool
}
