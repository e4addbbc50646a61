package dock

import "github.com/mattn/go-runewidth"

// Tone selects the palette colour a cell is drawn with.
// ToneDefault is the root and any view that is not docked inside a container.
type Tone uint8

const (
	ToneDefault Tone = iota
	ToneLeft
	ToneTop
	ToneRight
	ToneBottom
)

// Tone returns the palette tone this view is drawn with: its dock side,
// or ToneDefault for a root.
func (v *View) Tone() Tone {
	if v.parent == nil {
		return ToneDefault
	}
	return toneFor(v.dock)
}

// toneFor returns the tone for a view docked on the given side.
func toneFor(d Dock) Tone {
	switch d {
	case DockTop:
		return ToneTop
	case DockRight:
		return ToneRight
	case DockBottom:
		return ToneBottom
	default:
		return ToneLeft
	}
}

// Cell is a single character cell in a Buffer.
// Wide characters occupy two cells; the second is a continuation with
// Width 0 and no rune. Combining marks ride on the cell before them.
type Cell struct {
	Rune  rune
	Tone  Tone
	Width uint8

	// Combining holds zero-width marks drawn over Rune.
	Combining string
}

// NewCell creates a Cell with its display width taken from the rune.
func NewCell(r rune, tone Tone) Cell {
	return Cell{Rune: r, Tone: tone, Width: uint8(runeWidth(r))}
}

// IsContinuation reports whether the cell continues a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || (c.Rune == ' ' && c.Tone == ToneDefault)
}

// runeWidth returns the cell width of r, at least 1 and at most 2.
func runeWidth(r rune) int {
	return min(2, max(1, runewidth.RuneWidth(r)))
}
