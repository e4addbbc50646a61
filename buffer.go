package dock

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells the text preview is drawn into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a blank buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	width = max(0, width)
	height = max(0, height)

	cells := make([]Cell, width*height)
	blank := NewCell(' ', ToneDefault)
	for i := range cells {
		cells[i] = blank
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) to a flat index, or -1 when out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out of bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetRune writes r at (x, y), clearing any wide character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune, tone Tone) {
	if b.idx(x, y) < 0 {
		return
	}

	width := runeWidth(r)
	current := b.Cell(x, y)
	if current.IsContinuation() || current.Width == 2 {
		b.clearWideCharAt(x, y)
	}
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// A wide rune in the last column cannot fit.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', tone))
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Tone: tone, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Tone: tone})
	}
}

func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	blank := NewCell(' ', ToneDefault)

	switch {
	case cell.IsContinuation():
		b.SetCell(x-1, y, blank)
		b.SetCell(x, y, blank)
	case cell.Width == 2:
		b.SetCell(x, y, blank)
		b.SetCell(x+1, y, blank)
	}
}

// SetStringClipped writes s starting at (x, y), drawing only the runes that
// fall entirely inside clip. It returns the display width drawn.
func (b *Buffer) SetStringClipped(x, y int, s string, tone Tone, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	drawn := 0
	curX := x
	last := -1 // column of the last rune drawn
	for _, r := range s {
		if runewidth.RuneWidth(r) == 0 {
			// Zero-width runes take no column, matching textSize. Marks
			// attach to the rune before them; anything else is dropped.
			if last >= 0 && unicode.In(r, unicode.Mn, unicode.Me) {
				b.cells[b.idx(last, y)].Combining += string(r)
			}
			continue
		}

		width := runeWidth(r)
		if curX >= clip.Right() {
			break
		}
		last = -1
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, tone)
			drawn += width
			last = curX
		}
		curX += width
	}
	return drawn
}

// Fill fills rect with r.
func (b *Buffer) Fill(rect Rect, r rune, tone Tone) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, tone)
		}
	}
}

// Clear resets every cell to a blank space.
func (b *Buffer) Clear() {
	blank := NewCell(' ', ToneDefault)
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// String returns the buffer contents as plain text, one line per row.
func (b *Buffer) String() string {
	return b.render(func(_ Tone, s string) string { return s }, false)
}

// StringTrimmed is String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	return b.render(func(_ Tone, s string) string { return s }, true)
}

// render walks the rows, grouping consecutive cells of the same tone into
// runs passed through paint.
func (b *Buffer) render(paint func(Tone, string) string, trim bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		if trim {
			end := len(row)
			for end > 0 && (row[end-1].Rune == ' ' || row[end-1].Rune == 0) &&
				row[end-1].Combining == "" && !row[end-1].IsContinuation() {
				end--
			}
			row = row[:end]
		}

		var run strings.Builder
		runTone := ToneDefault
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(paint(runTone, run.String()))
				run.Reset()
			}
		}
		for _, cell := range row {
			if cell.IsContinuation() {
				continue
			}
			if cell.Tone != runTone {
				flush()
				runTone = cell.Tone
			}
			if cell.Rune == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(cell.Rune)
			}
			run.WriteString(cell.Combining)
		}
		flush()

		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
