// Package layout implements a pure-Go dock layout engine.
//
// A dock container stacks its children against its edges: each child is
// tagged with a [Dock] side and consumes a strip of the remaining space from
// that edge, in insertion order. Optionally the last visible child stretches
// to fill whatever is left.
//
// The engine runs in two passes. [Measure] computes the container's desired
// size from [MeasureSpec] constraints; [Arrange] assigns every child its final
// rectangle. Both passes talk to the outside world only through the [Host]
// capabilities, so the same algorithm can drive any view system.
// Types are re-exported through the root dock package for public consumption.
package layout
