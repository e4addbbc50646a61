package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/grindlemire/go-dock/internal/layout"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "DOCK_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = hclog.NewNullLogger()
)

// Init opens path for appending and installs a logger writing to it at the
// given level ("trace", "debug", ...). An empty path uses "debug.log" in the
// current directory and an unknown level falls back to debug. The logger is
// also installed as the layout engine's pass tracer.
func Init(path, level string) (hclog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Debug
	}

	closeLocked()
	logFile = f
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "dock",
		Level:  lvl,
		Output: f,
	})
	layout.SetLogger(logger)
	return logger, nil
}

// InitFromEnv calls Init with the path in DOCK_DEBUG, falling back to
// fallbackPath. When both are empty it leaves the null logger in place.
func InitFromEnv(fallbackPath, level string) (hclog.Logger, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		path = fallbackPath
	}
	if path == "" {
		return Logger(), nil
	}
	return Init(path, level)
}

// Logger returns the current logger. It never returns nil.
func Logger() hclog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Close closes the debug log file and restores the null logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = hclog.NewNullLogger()
	layout.SetLogger(nil)

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
