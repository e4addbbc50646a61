// Package document loads declarative dock layouts from YAML, TOML or JSON
// and builds view trees from them.
//
// A document has optional top-level settings and a root node:
//
//	density: 1
//	viewport: {width: 80, height: 24}
//	root:
//	  name: app
//	  children:
//	    - {name: header, dock: top, height: 3, text: Header}
//	    - {name: body, text: Body}
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	dock "github.com/grindlemire/go-dock"
)

// Format is a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
}

// Document is a decoded layout document.
type Document struct {
	Density  float64  `mapstructure:"density"`
	Viewport Viewport `mapstructure:"viewport"`
	Root     Node     `mapstructure:"root"`
}

// Viewport is the document's preferred viewport in device pixels.
// Zero dimensions mean the caller chooses.
type Viewport struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Node describes one view. Lengths are device-independent units; width and
// height also accept "auto" and percentages such as "25%".
type Node struct {
	Name             string           `mapstructure:"name"`
	ID               string           `mapstructure:"id"`
	Dock             dock.Dock        `mapstructure:"dock"`
	Margin           dock.Edges       `mapstructure:"margin"`
	Padding          dock.Edges       `mapstructure:"padding"`
	Width            dock.Value       `mapstructure:"width"`
	Height           dock.Value       `mapstructure:"height"`
	MinWidth         float64          `mapstructure:"min_width"`
	MinHeight        float64          `mapstructure:"min_height"`
	HAlign           dock.Align       `mapstructure:"halign"`
	VAlign           dock.Align       `mapstructure:"valign"`
	Visible          *bool            `mapstructure:"visible"`
	StretchLastChild *bool            `mapstructure:"stretch_last_child"`
	Text             string           `mapstructure:"text"`
	Border           dock.BorderStyle `mapstructure:"border"`
	Children         []Node           `mapstructure:"children"`
}

// Load reads and decodes the document at path, choosing the format from
// its extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, err
	}

	var doc Document
	cfg := &mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			dockHook,
			alignHook,
			borderHook,
			edgesHook,
			valueHook,
		),
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", format, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// decodeRaw turns the encoded bytes into a generic map.
func decodeRaw(data []byte, format Format) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s document: %w", format, err)
	}
	return raw, nil
}
