package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"

	dock "github.com/grindlemire/go-dock"
	"github.com/grindlemire/go-dock/internal/debug"
)

// WatchCommand re-renders a document's text preview whenever it changes.
type WatchCommand struct {
	*Meta
}

func (c *WatchCommand) Help() string {
	helpText := `
Usage: dock watch [options] FILE

  Renders a text preview of FILE, then renders it again every time the
  file is written. Stops on interrupt.

General Options:
` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *WatchCommand) Synopsis() string {
	return "Re-render a layout document when it changes"
}

func (c *WatchCommand) Name() string { return "watch" }

func (c *WatchCommand) Run(args []string) int {
	flags := c.Meta.FlagSet(c.Name())
	flags.Usage = func() { c.Ui.Output(c.Help()) }

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
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return c.commandError(fmt.Errorf("create watcher: %w", err))
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return c.commandError(fmt.Errorf("watch %s: %w", path, err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.render(path)
	if err := c.watchLoop(ctx, path, watcher.Events, watcher.Errors); err != nil {
		return c.commandError(err)
	}
	return 0
}

// watchLoop renders path for every event that touches it until ctx is
// done or the event channel closes.
func (c *WatchCommand) watchLoop(ctx context.Context, path string, events <-chan fsnotify.Event, errs <-chan error) error {
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debug.Logger().Debug("document changed", "path", path, "op", event.Op.String())
			c.render(path)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

// render prints one preview. Load errors are reported without stopping the
// watch so a half-written document does not end the session.
func (c *WatchCommand) render(path string) {
	root, width, height, err := c.loadTree(path)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("error: %s", err))
		return
	}
	buf := dock.RenderBuffer(root, width, height)
	if c.config.Render.Color {
		c.Ui.Output(buf.Styled(c.config.Palette()))
		return
	}
	c.Ui.Output(buf.StringTrimmed())
}
