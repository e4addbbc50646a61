package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	dock "github.com/grindlemire/go-dock"
	"github.com/grindlemire/go-dock/internal/config"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/document"
)

// Fallback viewport when neither flags, the document, the config nor the
// terminal provide one.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Meta holds state and flags shared by every command.
type Meta struct {
	Ui cli.Ui

	// TerminalSize reports the size of the output terminal. Nil uses the
	// real terminal on stdout.
	TerminalSize func() (width, height int, err error)

	config *config.Config

	width      int
	height     int
	density    float64
	configPath string
}

const generalOptionsUsage = `
  -width=<n>
    Viewport width in device pixels. Defaults to the document's viewport,
    then the config, then the terminal width.

  -height=<n>
    Viewport height in device pixels.

  -density=<n>
    Display density. Overrides the document and config.

  -config=<path>
    Config file. Defaults to $DOCK_CONFIG or ~/.config/dock/config.toml.`

// FlagSet returns a flag set with the shared options registered.
func (m *Meta) FlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.IntVar(&m.width, "width", 0, "")
	f.IntVar(&m.height, "height", 0, "")
	f.Float64Var(&m.density, "density", 0, "")
	f.StringVar(&m.configPath, "config", "", "")
	f.SetOutput(&uiErrorWriter{ui: m.Ui})
	return f
}

// setup loads the config and starts debug logging. It must run after the
// flags are parsed.
func (m *Meta) setup() error {
	path := m.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	m.config = &cfg

	if _, err := debug.InitFromEnv(cfg.Log.File, cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

// loadTree reads a document and builds its view tree with the viewport it
// should be laid out in.
func (m *Meta) loadTree(path string) (root *dock.View, width, height int, err error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, 0, 0, err
	}

	root = doc.Build()
	switch {
	case m.density > 0:
		root.SetDensity(m.density)
	case doc.Density == 0:
		root.SetDensity(m.config.Density)
	}
	if root.Border() == dock.BorderNone {
		root.SetBorder(m.config.Border())
	}

	width, height = m.viewport(doc)
	debug.Logger().Debug("loaded document", "path", path, "width", width, "height", height,
		"density", root.Density())
	return root, width, height, nil
}

// viewport resolves each dimension from, in order: flags, the document,
// the config, the terminal, then the fallback.
func (m *Meta) viewport(doc *document.Document) (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = doc.Viewport.Width
	}
	if h <= 0 {
		h = doc.Viewport.Height
	}
	if w <= 0 {
		w = m.config.Viewport.Width
	}
	if h <= 0 {
		h = m.config.Viewport.Height
	}
	if w > 0 && h > 0 {
		return w, h
	}

	termSize := m.TerminalSize
	if termSize == nil {
		termSize = func() (int, int, error) { return terminalSize(os.Stdout) }
	}
	tw, th, err := termSize()
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if w <= 0 {
		w = tw
	}
	if h <= 0 {
		h = th
	}
	return w, h
}

// uiErrorWriter adapts a cli.Ui to an io.Writer for flag errors.
type uiErrorWriter struct {
	ui  cli.Ui
	buf strings.Builder
}

var _ io.Writer = (*uiErrorWriter)(nil)

func (w *uiErrorWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		s := w.buf.String()
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return len(p), nil
		}
		w.ui.Error(s[:i])
		w.buf.Reset()
		w.buf.WriteString(s[i+1:])
	}
}

// commandError prints err in the shared format and returns exit status 1.
func (m *Meta) commandError(err error) int {
	m.Ui.Error(fmt.Sprintf("error: %s", err))
	return 1
}
