package dock

// Option configures a View.
type Option func(*View)

// --- Identity ---

// WithName sets a human-readable name used in traces and renderer labels.
func WithName(name string) Option {
	return func(v *View) {
		v.name = name
	}
}

// WithID overrides the generated view id.
func WithID(id string) Option {
	return func(v *View) {
		v.id = id
	}
}

// --- Dock Options ---

// WithDock sets the edge this view is anchored to inside its parent.
func WithDock(d Dock) Option {
	return func(v *View) {
		v.dock = d
	}
}

// WithMargin sets the margin around this view.
func WithMargin(e Edges) Option {
	return func(v *View) {
		v.margin = e
	}
}

// WithVisible sets whether this view takes part in layout.
func WithVisible(visible bool) Option {
	return func(v *View) {
		v.hidden = !visible
	}
}

// WithAlign sets the horizontal and vertical alignment inside the slot.
func WithAlign(horizontal, vertical Align) Option {
	return func(v *View) {
		v.hAlign = horizontal
		v.vAlign = vertical
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed device-independent width.
func WithWidth(n float64) Option {
	return func(v *View) {
		v.width = Fixed(n)
	}
}

// WithHeight sets a fixed device-independent height.
func WithHeight(n float64) Option {
	return func(v *View) {
		v.height = Fixed(n)
	}
}

// WithSize sets both width and height.
func WithSize(width, height float64) Option {
	return func(v *View) {
		v.width = Fixed(width)
		v.height = Fixed(height)
	}
}

// WithWidthValue sets the width as any Value (fixed, percent or auto).
func WithWidthValue(val Value) Option {
	return func(v *View) {
		v.width = val
	}
}

// WithHeightValue sets the height as any Value (fixed, percent or auto).
func WithHeightValue(val Value) Option {
	return func(v *View) {
		v.height = val
	}
}

// WithMinSize sets the minimum width and height.
func WithMinSize(width, height float64) Option {
	return func(v *View) {
		v.minWidth = width
		v.minHeight = height
	}
}

// --- Container Options ---

// WithPadding sets the padding inside this view.
func WithPadding(e Edges) Option {
	return func(v *View) {
		v.padding = e
	}
}

// WithStretchLastChild sets whether the last visible child fills the
// remaining space.
func WithStretchLastChild(stretch bool) Option {
	return func(v *View) {
		v.stretchLastChild = stretch
	}
}

// WithChildren appends children at construction time.
func WithChildren(children ...*View) Option {
	return func(v *View) {
		for _, child := range children {
			child.parent = v
			v.children = append(v.children, child)
		}
	}
}

// --- Content Options ---

// WithText sets the text content. Leaf views size to their text.
func WithText(text string) Option {
	return func(v *View) {
		v.text = text
	}
}

// WithBorder sets the border drawn by the text renderer.
func WithBorder(b BorderStyle) Option {
	return func(v *View) {
		v.border = b
	}
}

// --- Root Options ---

// WithDensity sets the display density used when this view is the root of a pass.
func WithDensity(density float64) Option {
	return func(v *View) {
		v.density = density
	}
}

// WithOnLayout sets a callback invoked after this view receives its frame.
// Tree mutations made from the callback are applied once the pass returns.
func WithOnLayout(fn func(*View)) Option {
	return func(v *View) {
		v.onLayout = fn
	}
}
