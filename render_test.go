package dock

import (
	"strings"
	"testing"
)

func TestRenderText_BorderAtFrameEdges(t *testing.T) {
	root := New(WithBorder(BorderSingle), WithChildren(New(WithText("hi"))))

	got := RenderText(root, 10, 5)

	want := strings.Join([]string{
		"┌────────┐",
		"│hi      │",
		"│        │",
		"│        │",
		"└────────┘",
	}, "\n")
	if got != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderText_Dashboard(t *testing.T) {
	header := New(WithDock(DockTop), WithText("head"))
	footer := New(WithDock(DockBottom), WithText("foot"))
	nav := New(WithDock(DockLeft), WithText("nav"), WithBorder(BorderRounded))
	body := New(WithText("body"))
	root := New(WithChildren(header, footer, nav, body))

	got := RenderText(root, 12, 5)

	want := strings.Join([]string{
		"head",
		"╭───╮body",
		"│nav│",
		"╰───╯",
		"foot",
	}, "\n")
	if got != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderText_ClipsToFrame(t *testing.T) {
	root := New(WithText("abcdefghij"))

	if got := RenderText(root, 4, 1); got != "abcd" {
		t.Errorf("RenderText() = %q, want %q", got, "abcd")
	}
}

func TestRenderText_HiddenViewsAreNotDrawn(t *testing.T) {
	root := New(WithChildren(
		New(WithDock(DockTop), WithText("shown")),
		New(WithDock(DockTop), WithText("hidden"), WithVisible(false)),
	))

	if got := RenderText(root, 10, 2); got != "shown\n" {
		t.Errorf("RenderText() = %q, want %q", got, "shown\n")
	}
}

func TestRenderText_NilRoot(t *testing.T) {
	if got := RenderText(nil, 3, 2); got != "\n" {
		t.Errorf("RenderText(nil) = %q, want blank rows", got)
	}
}

func TestBuffer_SetRune_Wide(t *testing.T) {
	buf := NewBuffer(3, 1)

	buf.SetRune(0, 0, '世', ToneDefault)
	if c := buf.Cell(0, 0); c.Width != 2 {
		t.Errorf("wide cell width = %d, want 2", c.Width)
	}
	if !buf.Cell(1, 0).IsContinuation() {
		t.Error("cell after a wide rune should be a continuation")
	}
	if got := buf.String(); got != "世 " {
		t.Errorf("String() = %q, want %q", got, "世 ")
	}

	buf.SetRune(1, 0, 'x', ToneDefault)
	if got := buf.String(); got != " x " {
		t.Errorf("overwriting a continuation should clear the wide rune, got %q", got)
	}

	buf.SetRune(2, 0, '界', ToneDefault)
	if got := buf.Cell(2, 0).Rune; got != ' ' {
		t.Errorf("wide rune in the last column = %q, want a space", got)
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetRune(-1, 0, 'x', ToneDefault)
	buf.SetRune(0, 5, 'x', ToneDefault)

	if got := buf.Cell(9, 9); got != (Cell{}) {
		t.Errorf("Cell out of bounds = %v, want zero", got)
	}
	if got := buf.StringTrimmed(); got != "\n" {
		t.Errorf("StringTrimmed() = %q, want blank rows", got)
	}
}

func TestBuffer_SetStringClipped(t *testing.T) {
	buf := NewBuffer(6, 1)
	n := buf.SetStringClipped(-1, 0, "abcdef", ToneTop, NewRect(1, 0, 3, 1))

	if n != 3 {
		t.Errorf("SetStringClipped() = %d, want 3", n)
	}
	if got := buf.String(); got != " cde  " {
		t.Errorf("String() = %q, want %q", got, " cde  ")
	}
	if got := buf.Cell(1, 0).Tone; got != ToneTop {
		t.Errorf("Tone = %v, want ToneTop", got)
	}
}

func TestBuffer_SetStringClipped_ZeroWidth(t *testing.T) {
	type tc struct {
		text  string
		clip  Rect
		drawn int
		want  string
	}

	tests := map[string]tc{
		"combining mark rides on its base": {
			text:  "cafe\u0301!",
			clip:  NewRect(0, 0, 6, 1),
			drawn: 5,
			want:  "cafe\u0301!",
		},
		"mark after a clipped base is dropped": {
			text:  "e\u0301x",
			clip:  NewRect(1, 0, 5, 1),
			drawn: 1,
			want:  " x",
		},
		"leading mark is dropped": {
			text:  "\u0301ab",
			clip:  NewRect(0, 0, 6, 1),
			drawn: 2,
			want:  "ab",
		},
		"zero width space takes no column": {
			text:  "a\u200bb",
			clip:  NewRect(0, 0, 6, 1),
			drawn: 2,
			want:  "ab",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(6, 1)
			n := buf.SetStringClipped(0, 0, tt.text, ToneDefault, tt.clip)

			if n != tt.drawn {
				t.Errorf("SetStringClipped() = %d, want %d", n, tt.drawn)
			}
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("StringTrimmed() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderText_CombiningMarkMatchesMeasuredWidth(t *testing.T) {
	label := New(WithText("cafe\u0301"), WithAlign(AlignStart, AlignStart))
	root := New(WithChildren(label))

	got := RenderText(root, 10, 1)

	if w := label.MeasuredSize().Width; w != 4 {
		t.Errorf("MeasuredSize().Width = %d, want 4", w)
	}
	if w := label.Frame().Width; w != 4 {
		t.Errorf("Frame().Width = %d, want 4", w)
	}
	if want := "cafe\u0301"; got != want {
		t.Errorf("RenderText() = %q, want %q", got, want)
	}
}

func TestBuffer_FillAndClear(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.Fill(NewRect(1, 0, 5, 5), '#', ToneLeft)

	if got := buf.String(); got != " ##\n ##" {
		t.Errorf("Fill() = %q", got)
	}

	buf.Clear()
	if !buf.Cell(1, 1).IsEmpty() {
		t.Error("Clear() should blank every cell")
	}
}

func TestBuffer_Styled_KeepsText(t *testing.T) {
	root := New(WithBorder(BorderSingle), WithChildren(New(WithText("hi"))))
	buf := RenderBuffer(root, 10, 5)

	got := buf.Styled(DefaultPalette)

	if !strings.Contains(got, "hi") || !strings.Contains(got, "┌") {
		t.Errorf("Styled() lost content: %q", got)
	}
}

func TestBorderStyle_Parse(t *testing.T) {
	type tc struct {
		input   string
		want    BorderStyle
		wantErr bool
	}

	tests := map[string]tc{
		"empty":   {input: "", want: BorderNone},
		"none":    {input: "none", want: BorderNone},
		"single":  {input: "single", want: BorderSingle},
		"double":  {input: "Double", want: BorderDouble},
		"rounded": {input: " rounded ", want: BorderRounded},
		"thick":   {input: "thick", want: BorderThick},
		"unknown": {input: "dotted", want: BorderNone, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBorder(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDrawBox_TooSmall(t *testing.T) {
	buf := NewBuffer(3, 3)
	DrawBox(buf, NewRect(0, 0, 1, 3), BorderSingle, ToneDefault, buf.Rect())

	if got := buf.StringTrimmed(); got != "\n\n" {
		t.Errorf("DrawBox on a 1-wide rect should draw nothing, got %q", got)
	}
}

func TestPalette_Color(t *testing.T) {
	p := DefaultPalette
	if p.Color(ToneTop) != p.Top || p.Color(ToneBottom) != p.Bottom {
		t.Error("Color should map tones to their fields")
	}
	if p.Color(Tone(42)) != p.Default {
		t.Error("unknown tones should use the default colour")
	}
}
