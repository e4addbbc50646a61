package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	dock "github.com/grindlemire/go-dock"
	"github.com/grindlemire/go-dock/internal/raster"
)

// RenderCommand renders documents as text previews or PNG images.
type RenderCommand struct {
	*Meta
}

func (c *RenderCommand) Help() string {
	helpText := `
Usage: dock render [options] FILE...

  Lays out each document and prints a text preview. With -png, writes one
  PNG per document into the given directory instead. Documents are
  processed concurrently; output keeps the argument order.

Render Options:

  -png=<dir>
    Write PNG images into dir, named after each document.

  -scale=<n>
    Image pixels per layout pixel for PNG output. Defaults to 8.

  -no-color
    Disable coloured text output.

General Options:
` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *RenderCommand) Synopsis() string {
	return "Render layout documents as text or PNG"
}

func (c *RenderCommand) Name() string { return "render" }

func (c *RenderCommand) Run(args []string) int {
	var pngDir string
	var scale float64
	var noColor bool

	flags := c.Meta.FlagSet(c.Name())
	flags.Usage = func() { c.Ui.Output(c.Help()) }
	flags.StringVar(&pngDir, "png", "", "")
	flags.Float64Var(&scale, "scale", raster.DefaultScale, "")
	flags.BoolVar(&noColor, "no-color", false, "")

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if args = flags.Args(); len(args) == 0 {
		c.Ui.Error("This command takes at least one argument: <file>...")
		return 1
	}
	if err := c.setup(); err != nil {
		return c.commandError(err)
	}
	if pngDir != "" {
		if err := os.MkdirAll(pngDir, 0755); err != nil {
			return c.commandError(fmt.Errorf("create output directory: %w", err))
		}
	}

	color := c.config.Render.Color && !noColor
	outputs := make([]string, len(args))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := c.renderOne(path, pngDir, scale, color)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.commandError(err)
	}

	for i, out := range outputs {
		if len(args) > 1 && pngDir == "" {
			c.Ui.Output(fmt.Sprintf("==> %s <==", args[i]))
		}
		c.Ui.Output(out)
	}
	return 0
}

// renderOne builds, lays out and renders a single document. Each call owns
// its own view tree.
func (c *RenderCommand) renderOne(path, pngDir string, scale float64, color bool) (string, error) {
	root, width, height, err := c.loadTree(path)
	if err != nil {
		return "", err
	}

	if pngDir == "" {
		buf := dock.RenderBuffer(root, width, height)
		if color {
			return buf.Styled(c.config.Palette()), nil
		}
		return buf.StringTrimmed(), nil
	}

	dock.Calculate(root, width, height)
	r := raster.NewRenderer(width, height, raster.Options{
		Scale:   scale,
		Palette: c.config.Palette(),
	})
	r.Render(root)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(pngDir, base+".png")
	if err := r.SavePNG(out); err != nil {
		return "", fmt.Errorf("write png: %w", err)
	}
	return fmt.Sprintf("wrote %s", out), nil
}
