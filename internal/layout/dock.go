package layout

import (
	"fmt"
	"strings"
)

// Dock is the container edge a child is anchored to.
type Dock uint8

const (
	DockLeft   Dock = iota // Anchored to the left edge (default)
	DockTop                // Anchored to the top edge
	DockRight              // Anchored to the right edge
	DockBottom             // Anchored to the bottom edge
)

// String returns the lower-case dock name.
func (d Dock) String() string {
	switch d {
	case DockLeft:
		return "left"
	case DockTop:
		return "top"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Dock(%d)", uint8(d))
	}
}

// Vertical reports whether the dock consumes height (top or bottom).
func (d Dock) Vertical() bool {
	return d == DockTop || d == DockBottom
}

// ParseDock parses a dock name, case-insensitively. The empty string is
// DockLeft. Unknown names return DockLeft together with an error so callers
// can decide whether to warn or reject.
func ParseDock(s string) (Dock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return DockLeft, nil
	case "top":
		return DockTop, nil
	case "right":
		return DockRight, nil
	case "bottom":
		return DockBottom, nil
	}
	return DockLeft, fmt.Errorf("unknown dock %q", s)
}
