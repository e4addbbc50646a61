package dock

import (
	"fmt"
	"strings"
)

// BorderStyle selects the box-drawing runes used for a view's border.
type BorderStyle int

const (
	// BorderNone draws no border and reserves no space.
	BorderNone BorderStyle = iota
	// BorderSingle uses ─ │ ┌ ┐ └ ┘.
	BorderSingle
	// BorderDouble uses ═ ║ ╔ ╗ ╚ ╝.
	BorderDouble
	// BorderRounded uses ─ │ ╭ ╮ ╰ ╯.
	BorderRounded
	// BorderThick uses ━ ┃ ┏ ┓ ┗ ┛.
	BorderThick
)

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
}

func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border name. The empty string is BorderNone.
func ParseBorder(s string) (BorderStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BorderNone, nil
	}
	for b, n := range borderNames {
		if n == name {
			return b, nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border %q", s)
}

// BorderChars holds the runes used to draw a box.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing runes for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a border along the edges of rect. Positions come from the
// full rect but only cells inside clip are written. Boxes smaller than 2x2
// are skipped.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle, tone Tone, clip Rect) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			buf.SetRune(x, y, r, tone)
		}
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
