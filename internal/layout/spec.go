package layout

import "fmt"

// Mode specifies how a child may interpret the size carried by a MeasureSpec.
type Mode uint8

const (
	Unspecified Mode = iota // No constraint; the child picks its size
	Exactly                 // The child must be exactly this size
	AtMost                  // The child may be at most this size
)

// String returns the mode name as used in traces and documents.
func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "atmost"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name. Matching is exact; the empty string is Unspecified.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "unspecified":
		return Unspecified, nil
	case "exactly", "exact":
		return Exactly, nil
	case "atmost", "at-most", "at_most":
		return AtMost, nil
	}
	return Unspecified, fmt.Errorf("unknown measure mode %q", s)
}

const (
	modeShift = 30
	modeMask  = 0x3 << modeShift

	// MaxSize is the largest size a MeasureSpec can carry. Unspecified
	// dimensions use it as the "unbounded" remaining space.
	MaxSize = 1<<modeShift - 1
)

const (
	// MeasuredSizeMask selects the size bits of a resolved measurement.
	MeasuredSizeMask = 0x00ffffff
	// MeasuredStateMask selects the state bits of a resolved measurement.
	MeasuredStateMask = 0xff000000
	// MeasuredStateTooSmall is set when the content wanted more than AtMost allowed.
	MeasuredStateTooSmall = 0x01000000
)

// MeasureSpec is a size constraint passed from a parent to a child during
// the measure pass.
type MeasureSpec struct {
	Size int
	Mode Mode
}

// MakeMeasureSpec creates a MeasureSpec. Negative sizes clamp to zero and
// sizes above MaxSize clamp to MaxSize.
func MakeMeasureSpec(size int, mode Mode) MeasureSpec {
	return MeasureSpec{Size: clampSize(size), Mode: mode}
}

// Encode packs the spec into a single int: the mode in the top two bits of a
// 32-bit word and the size in the remaining 30.
func (s MeasureSpec) Encode() int {
	return int(s.Mode)<<modeShift&modeMask | clampSize(s.Size)
}

// DecodeMeasureSpec unpacks an int produced by Encode.
func DecodeMeasureSpec(v int) MeasureSpec {
	return MeasureSpec{
		Size: v & MaxSize,
		Mode: Mode(v & modeMask >> modeShift),
	}
}

// String returns a compact representation such as "atmost:120".
func (s MeasureSpec) String() string {
	return fmt.Sprintf("%s:%d", s.Mode, s.Size)
}

// ResolveSizeAndState reconciles a desired size with a spec.
// Exactly returns the spec size; AtMost returns the smaller of the two and
// sets MeasuredStateTooSmall when the desired size did not fit; Unspecified
// returns the desired size. childState bits are carried into the result.
// Sizes saturate at MeasuredSizeMask so they never bleed into the state bits.
func ResolveSizeAndState(size int, spec MeasureSpec, childState int) int {
	size = min(clampSize(size), MeasuredSizeMask)
	specSize := min(clampSize(spec.Size), MeasuredSizeMask)
	result := size
	switch spec.Mode {
	case AtMost:
		if specSize < size {
			result = specSize | MeasuredStateTooSmall
		}
	case Exactly:
		result = specSize
	}
	return result | childState&MeasuredStateMask
}

// ResolveSize is ResolveSizeAndState without state bits.
func ResolveSize(size int, spec MeasureSpec) int {
	return ResolveSizeAndState(size, spec, 0) & MeasuredSizeMask
}

func clampSize(size int) int {
	if size < 0 {
		return 0
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}
