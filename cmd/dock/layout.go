package main

import (
	"encoding/json"
	"fmt"
	"strings"

	dock "github.com/grindlemire/go-dock"
)

// LayoutCommand lays out a document and prints every view's frame.
type LayoutCommand struct {
	*Meta
}

// frameRecord is one view in the layout output.
type frameRecord struct {
	Name     string `json:"name"`
	Depth    int    `json:"depth"`
	Dock     string `json:"dock"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Measured struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"measured"`
}

func (c *LayoutCommand) Help() string {
	helpText := `
Usage: dock layout [options] FILE

  Measures and lays out the document, then prints the absolute frame of
  every visible view, indented by depth.

Layout Options:

  -json
    Output the frames as a JSON array.

General Options:
` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *LayoutCommand) Synopsis() string {
	return "Print the frame of every view in a layout document"
}

func (c *LayoutCommand) Name() string { return "layout" }

func (c *LayoutCommand) Run(args []string) int {
	var asJSON bool

	flags := c.Meta.FlagSet(c.Name())
	flags.Usage = func() { c.Ui.Output(c.Help()) }
	flags.BoolVar(&asJSON, "json", false, "")

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if args = flags.Args(); len(args) != 1 {
		c.Ui.Error("This command takes one argument: <file>")
		return 1
	}
	if err := c.setup(); err != nil {
		return c.commandError(err)
	}

	root, width, height, err := c.loadTree(args[0])
	if err != nil {
		return c.commandError(err)
	}
	dock.Calculate(root, width, height)

	records := collectFrames(root)
	if asJSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return c.commandError(err)
		}
		c.Ui.Output(string(out))
		return 0
	}

	for _, r := range records {
		c.Ui.Output(fmt.Sprintf("%s%s [%s] %d,%d %dx%d",
			strings.Repeat("  ", r.Depth), r.Name, r.Dock, r.X, r.Y, r.Width, r.Height))
	}
	return 0
}

// collectFrames walks the visible views depth first.
func collectFrames(root *dock.View) []frameRecord {
	var records []frameRecord
	var visit func(v *dock.View, depth int)
	visit = func(v *dock.View, depth int) {
		if !v.Visible() {
			return
		}
		frame := v.AbsoluteFrame()
		r := frameRecord{
			Name:   v.Label(),
			Depth:  depth,
			Dock:   v.Dock().String(),
			X:      frame.X,
			Y:      frame.Y,
			Width:  frame.Width,
			Height: frame.Height,
		}
		measured := v.MeasuredSize()
		r.Measured.Width = measured.Width
		r.Measured.Height = measured.Height
		records = append(records, r)

		for _, child := range v.Children() {
			visit(child, depth+1)
		}
	}
	visit(root, 0)
	return records
}
