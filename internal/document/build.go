package document

import dock "github.com/grindlemire/go-dock"

// Build creates the view tree described by the document. The root view
// carries the document's density.
func (d *Document) Build() *dock.View {
	if d.Density > 0 {
		return d.Root.build(dock.WithDensity(d.Density))
	}
	return d.Root.build()
}

func (n *Node) build(extra ...dock.Option) *dock.View {
	opts := []dock.Option{
		dock.WithDock(n.Dock),
		dock.WithMargin(n.Margin),
		dock.WithPadding(n.Padding),
		dock.WithWidthValue(n.Width),
		dock.WithHeightValue(n.Height),
		dock.WithMinSize(n.MinWidth, n.MinHeight),
		dock.WithAlign(n.HAlign, n.VAlign),
		dock.WithText(n.Text),
		dock.WithBorder(n.Border),
	}
	if n.Name != "" {
		opts = append(opts, dock.WithName(n.Name))
	}
	if n.ID != "" {
		opts = append(opts, dock.WithID(n.ID))
	}
	if n.Visible != nil {
		opts = append(opts, dock.WithVisible(*n.Visible))
	}
	if n.StretchLastChild != nil {
		opts = append(opts, dock.WithStretchLastChild(*n.StretchLastChild))
	}

	children := make([]*dock.View, 0, len(n.Children))
	for i := range n.Children {
		children = append(children, n.Children[i].build())
	}
	opts = append(opts, dock.WithChildren(children...))
	opts = append(opts, extra...)

	return dock.New(opts...)
}

// ViewportOr returns the document's viewport, with zero dimensions replaced
// by the fallback.
func (d *Document) ViewportOr(width, height int) (int, int) {
	w, h := d.Viewport.Width, d.Viewport.Height
	if w == 0 {
		w = width
	}
	if h == 0 {
		h = height
	}
	return w, h
}
