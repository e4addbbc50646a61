package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Device-independent length
	UnitPercent             // Percentage of the parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing a device-independent length.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value in device pixels given the available space
// (already in device pixels) and the display density.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int, density float64) int {
	switch v.Unit {
	case UnitFixed:
		return Scale(v.Amount, density)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
