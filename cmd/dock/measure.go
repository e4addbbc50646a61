package main

import (
	"fmt"
	"strings"

	dock "github.com/grindlemire/go-dock"
)

// MeasureCommand runs only the measure pass on a document's root.
type MeasureCommand struct {
	*Meta
}

func (c *MeasureCommand) Help() string {
	helpText := `
Usage: dock measure [options] FILE

  Runs the measure pass on the document's root view and prints the
  resolved size as WIDTHxHEIGHT.

Measure Options:

  -mode=<exactly|atmost|unspecified>
    Mode of both root measure specs. Defaults to exactly.

General Options:
` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *MeasureCommand) Synopsis() string {
	return "Print the measured size of a layout document"
}

func (c *MeasureCommand) Name() string { return "measure" }

func (c *MeasureCommand) Run(args []string) int {
	var modeName string

	flags := c.Meta.FlagSet(c.Name())
	flags.Usage = func() { c.Ui.Output(c.Help()) }
	flags.StringVar(&modeName, "mode", "exactly", "")

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if args = flags.Args(); len(args) != 1 {
		c.Ui.Error("This command takes one argument: <file>")
		return 1
	}

	mode, err := dock.ParseMode(modeName)
	if err != nil {
		return c.commandError(err)
	}
	if err := c.setup(); err != nil {
		return c.commandError(err)
	}

	root, width, height, err := c.loadTree(args[0])
	if err != nil {
		return c.commandError(err)
	}

	size := root.Measure(dock.MakeMeasureSpec(width, mode), dock.MakeMeasureSpec(height, mode))
	c.Ui.Output(fmt.Sprintf("%dx%d", size.Width, size.Height))
	return 0
}
