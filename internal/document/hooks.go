package document

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	dock "github.com/grindlemire/go-dock"
)

var (
	dockType   = reflect.TypeOf((*dock.Dock)(nil)).Elem()
	alignType  = reflect.TypeOf((*dock.Align)(nil)).Elem()
	borderType = reflect.TypeOf((*dock.BorderStyle)(nil)).Elem()
	edgesType  = reflect.TypeOf((*dock.Edges)(nil)).Elem()
	valueType  = reflect.TypeOf((*dock.Value)(nil)).Elem()
)

func dockHook(from, to reflect.Type, data any) (any, error) {
	if to != dockType || from.Kind() != reflect.String {
		return data, nil
	}
	return dock.ParseDock(data.(string))
}

func alignHook(from, to reflect.Type, data any) (any, error) {
	if to != alignType || from.Kind() != reflect.String {
		return data, nil
	}
	return dock.ParseAlign(data.(string))
}

func borderHook(from, to reflect.Type, data any) (any, error) {
	if to != borderType || from.Kind() != reflect.String {
		return data, nil
	}
	return dock.ParseBorder(data.(string))
}

// edgesHook accepts a single number for all sides, a [vertical, horizontal]
// or [top, right, bottom, left] list, or the same as a space separated
// string. Maps fall through to field-by-field decoding.
func edgesHook(_, to reflect.Type, data any) (any, error) {
	if to != edgesType {
		return data, nil
	}

	var parts []float64
	switch d := data.(type) {
	case string:
		for _, field := range strings.Fields(d) {
			n, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid edge length %q", field)
			}
			parts = append(parts, n)
		}
	case []any:
		for _, item := range d {
			n, ok := toFloat(item)
			if !ok {
				return nil, fmt.Errorf("invalid edge length %v", item)
			}
			parts = append(parts, n)
		}
	default:
		n, ok := toFloat(data)
		if !ok {
			return data, nil
		}
		parts = []float64{n}
	}

	switch len(parts) {
	case 1:
		return dock.EdgeAll(parts[0]), nil
	case 2:
		return dock.EdgeSymmetric(parts[0], parts[1]), nil
	case 4:
		return dock.EdgeTRBL(parts[0], parts[1], parts[2], parts[3]), nil
	}
	return nil, fmt.Errorf("edges need 1, 2 or 4 lengths, got %d", len(parts))
}

// valueHook accepts a number for a fixed length, "auto", or a percentage
// string such as "50%".
func valueHook(_, to reflect.Type, data any) (any, error) {
	if to != valueType {
		return data, nil
	}

	if n, ok := toFloat(data); ok {
		return dock.Fixed(n), nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto":
		return dock.Auto(), nil
	case strings.HasSuffix(s, "%"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q", s)
		}
		return dock.Percent(n), nil
	default:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid length %q", s)
		}
		return dock.Fixed(n), nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
