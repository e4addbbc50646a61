package dock

import "strings"

// RenderText lays out the tree rooted at root in a width x height viewport
// and returns a plain-text preview with trailing spaces trimmed.
func RenderText(root *View, width, height int) string {
	return RenderBuffer(root, width, height).StringTrimmed()
}

// RenderBuffer lays out the tree rooted at root and draws it into a new
// buffer of the viewport's size.
func RenderBuffer(root *View, width, height int) *Buffer {
	buf := NewBuffer(width, height)
	if root == nil {
		return buf
	}
	Calculate(root, width, height)
	Draw(buf, root)
	return buf
}

// Draw paints an already laid-out tree into buf. Each view draws its border
// and text; children are clipped to their parent's frame.
func Draw(buf *Buffer, root *View) {
	if root == nil {
		return
	}
	drawView(buf, root, 0, 0, buf.Rect(), root.Density())
}

func drawView(buf *Buffer, v *View, originX, originY int, clip Rect, density float64) {
	if !v.Visible() {
		return
	}

	frame := v.frame.Translate(originX, originY)
	clip = clip.Intersect(frame)
	if clip.IsEmpty() {
		return
	}

	tone := v.Tone()
	DrawBox(buf, frame, v.border, tone, clip)

	if v.text != "" {
		content := frame.Inset(v.contentPadding().Scale(density))
		textClip := clip.Intersect(content)
		for i, line := range strings.Split(v.text, "\n") {
			buf.SetStringClipped(content.X, content.Y+i, line, tone, textClip)
		}
	}

	for _, child := range v.children {
		drawView(buf, child, frame.X, frame.Y, clip, density)
	}
}
