// Package raster paints laid-out dock trees to PNG images.
package raster

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	dock "github.com/grindlemire/go-dock"
)

// DefaultScale is the number of image pixels per layout pixel.
const DefaultScale = 8

// Options controls how a tree is painted.
type Options struct {
	// Scale is the number of image pixels per layout pixel.
	// Zero uses DefaultScale.
	Scale float64
	// Palette colours views by dock side. The zero value uses
	// dock.DefaultPalette.
	Palette dock.Palette
	// Background is the hex colour behind the tree. Empty means #1e1e2e.
	Background string
}

// Renderer paints a tree into an image sized to the viewport.
type Renderer struct {
	context *gg.Context
	opts    Options
}

// NewRenderer creates a renderer for a width x height layout viewport.
func NewRenderer(width, height int, opts Options) *Renderer {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Palette == (dock.Palette{}) {
		opts.Palette = dock.DefaultPalette
	}
	if opts.Background == "" {
		opts.Background = "#1e1e2e"
	}

	w := max(1, int(float64(width)*opts.Scale))
	h := max(1, int(float64(height)*opts.Scale))
	return &Renderer{context: gg.NewContext(w, h), opts: opts}
}

// Render paints root and its visible descendants. The tree must already be
// laid out.
func (r *Renderer) Render(root *dock.View) {
	r.context.SetHexColor(r.opts.Background)
	r.context.Clear()
	if root == nil {
		return
	}
	r.drawView(root, 0, 0)
}

func (r *Renderer) drawView(v *dock.View, originX, originY int) {
	if !v.Visible() {
		return
	}

	frame := v.Frame().Translate(originX, originY)
	if !frame.IsEmpty() {
		r.drawFrame(v, frame)
	}

	for _, child := range v.Children() {
		r.drawView(child, frame.X, frame.Y)
	}
}

func (r *Renderer) drawFrame(v *dock.View, frame dock.Rect) {
	s := r.opts.Scale
	x := float64(frame.X) * s
	y := float64(frame.Y) * s
	w := float64(frame.Width) * s
	h := float64(frame.Height) * s
	color := r.opts.Palette.Color(v.Tone())

	r.context.Push()
	defer r.context.Pop()

	r.context.DrawRectangle(x, y, w, h)
	r.context.SetHexColor(color + "40")
	r.context.FillPreserve()
	r.context.SetHexColor(color)
	r.context.SetLineWidth(1)
	r.context.Stroke()

	label := v.Name()
	if label == "" {
		label = v.Text()
	}
	if label == "" {
		return
	}

	// Labels that do not fit are skipped rather than spilling into siblings.
	tw, th := r.context.MeasureString(label)
	if tw+4 > w || th+4 > h {
		return
	}
	r.context.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
}

// Image returns the painted image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the painted image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the painted image to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
