// Package config loads the dock CLI's settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	dock "github.com/grindlemire/go-dock"
)

// EnvConfig names the environment variable pointing at a config file.
const EnvConfig = "DOCK_CONFIG"

// Config holds the tool configuration.
type Config struct {
	Density  float64        `mapstructure:"density"`
	Viewport ViewportConfig `mapstructure:"viewport"`
	Render   RenderConfig   `mapstructure:"render"`
	Log      LogConfig      `mapstructure:"log"`
}

// ViewportConfig is the default viewport. Zero dimensions mean the
// terminal size is used.
type ViewportConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Color   bool          `mapstructure:"color"`
	Border  string        `mapstructure:"border"`
	Palette PaletteConfig `mapstructure:"palette"`
}

// PaletteConfig holds hex colours per dock side.
type PaletteConfig struct {
	Default string `mapstructure:"default"`
	Left    string `mapstructure:"left"`
	Top     string `mapstructure:"top"`
	Right   string `mapstructure:"right"`
	Bottom  string `mapstructure:"bottom"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultPath returns $HOME/.config/dock/config.toml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "dock", "config.toml")
}

// Load reads configuration from the file named by DOCK_CONFIG, or the
// default path when unset. Env var overrides use prefix DOCK_.
func Load() (Config, error) {
	return LoadFrom(os.Getenv(EnvConfig))
}

// LoadFrom reads configuration from path. An empty path looks for the
// default file and tolerates its absence; an explicit path must exist.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("density", 1.0)
	v.SetDefault("viewport.width", 0)
	v.SetDefault("viewport.height", 0)
	v.SetDefault("render.color", true)
	v.SetDefault("render.border", "none")
	v.SetDefault("render.palette.default", dock.DefaultPalette.Default)
	v.SetDefault("render.palette.left", dock.DefaultPalette.Left)
	v.SetDefault("render.palette.top", dock.DefaultPalette.Top)
	v.SetDefault("render.palette.right", dock.DefaultPalette.Right)
	v.SetDefault("render.palette.bottom", dock.DefaultPalette.Bottom)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var mErr *multierror.Error

	if c.Density <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("density must be positive, got %v", c.Density))
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("viewport must not be negative, got %dx%d",
			c.Viewport.Width, c.Viewport.Height))
	}
	if _, err := dock.ParseBorder(c.Render.Border); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("render.border: %w", err))
	}
	for name, color := range map[string]string{
		"default": c.Render.Palette.Default,
		"left":    c.Render.Palette.Left,
		"top":     c.Render.Palette.Top,
		"right":   c.Render.Palette.Right,
		"bottom":  c.Render.Palette.Bottom,
	} {
		if !hexColor.MatchString(color) {
			mErr = multierror.Append(mErr, fmt.Errorf("render.palette.%s: %q is not a #rrggbb colour", name, color))
		}
	}
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		mErr = multierror.Append(mErr, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return mErr.ErrorOrNil()
}

// Palette returns the configured render palette.
func (c Config) Palette() dock.Palette {
	return dock.Palette{
		Default: c.Render.Palette.Default,
		Left:    c.Render.Palette.Left,
		Top:     c.Render.Palette.Top,
		Right:   c.Render.Palette.Right,
		Bottom:  c.Render.Palette.Bottom,
	}
}

// Border returns the configured default border.
func (c Config) Border() dock.BorderStyle {
	b, _ := dock.ParseBorder(c.Render.Border)
	return b
}
