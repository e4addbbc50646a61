// Command dock loads declarative dock layouts and measures, lays out or
// renders them.
//
// Usage:
//
//	dock measure [options] FILE       Print the root's measured size
//	dock layout [options] FILE        Print every view's frame
//	dock render [options] FILE...     Render text previews or PNGs
//	dock watch [options] FILE         Re-render FILE whenever it changes
//	dock version                      Print version information
//
// Layout documents are YAML, TOML or JSON. Set DOCK_DEBUG to a file path
// to write trace logs of every measure and layout pass.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/grindlemire/go-dock/internal/debug"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	defer debug.Close()

	c := cli.NewCLI("dock", version)
	c.Args = args
	c.Commands = Commands(&Meta{Ui: ui})

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return exitStatus
}
