package dock

import (
	"fmt"
	"strings"
)

// Align specifies how a view sits inside the slot its parent gives it.
type Align uint8

const (
	AlignStretch Align = iota // Fill the slot (default)
	AlignStart                // Pin to the left or top of the slot
	AlignCenter               // Center in the slot
	AlignEnd                  // Pin to the right or bottom of the slot
)

// String returns the lower-case alignment name.
func (a Align) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", uint8(a))
	}
}

// ParseAlign parses an alignment name. left and top are accepted for start,
// right and bottom for end.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return AlignStretch, nil
	case "start", "left", "top":
		return AlignStart, nil
	case "center", "middle":
		return AlignCenter, nil
	case "end", "right", "bottom":
		return AlignEnd, nil
	}
	return AlignStretch, fmt.Errorf("unknown alignment %q", s)
}

// resolve returns the alignment actually used for a dimension. A view with
// an explicit size cannot stretch and is centred instead.
func (a Align) resolve(size Value) Align {
	if a == AlignStretch && !size.IsAuto() {
		return AlignCenter
	}
	return a
}

// place positions a length within [start, end) per the alignment.
// leadMargin and trailMargin are the view's margins on that axis.
func (a Align) place(start, end, measured, leadMargin, trailMargin int) (pos, length int) {
	switch a {
	case AlignStart:
		return start + leadMargin, measured
	case AlignCenter:
		return start + (end-start-measured+leadMargin-trailMargin)/2, measured
	case AlignEnd:
		return end - trailMargin - measured, measured
	default:
		return start + leadMargin, max(0, end-start-leadMargin-trailMargin)
	}
}
