package dock

import "github.com/charmbracelet/lipgloss"

// Palette maps tones to hex colours. It is shared by the text preview and
// the PNG renderer.
type Palette struct {
	Default string
	Left    string
	Top     string
	Right   string
	Bottom  string
}

// DefaultPalette is the palette used when none is configured.
var DefaultPalette = Palette{
	Default: "#cdd6f4",
	Left:    "#89b4fa",
	Top:     "#a6e3a1",
	Right:   "#fab387",
	Bottom:  "#f38ba8",
}

// Color returns the hex colour for tone t.
func (p Palette) Color(t Tone) string {
	switch t {
	case ToneLeft:
		return p.Left
	case ToneTop:
		return p.Top
	case ToneRight:
		return p.Right
	case ToneBottom:
		return p.Bottom
	default:
		return p.Default
	}
}

// Styled returns the buffer contents with each run of cells coloured by
// its tone. Trailing spaces are trimmed. lipgloss drops the colour codes
// when the output is not a terminal.
func (b *Buffer) Styled(p Palette) string {
	styles := make(map[Tone]lipgloss.Style, 5)
	for _, t := range []Tone{ToneDefault, ToneLeft, ToneTop, ToneRight, ToneBottom} {
		styles[t] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color(t)))
	}
	return b.render(func(t Tone, s string) string {
		return styles[t].Render(s)
	}, true)
}
