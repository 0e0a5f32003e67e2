package dataset

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"
	"strconv"
)

// A Vertex is one point of an environment shape, in world coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A Shape is one background layer: a polyline or closed polygon drawn
// once into every viewport at matching world coordinates. Fill and
// Stroke are nil when the source declares no color for them.
type Shape struct {
	Closed bool
	Points []Vertex
	Fill   *color.RGBA
	Stroke *color.RGBA
}

// An Environment maps layer ids to background shapes.
type Environment map[string]Shape

// Returns the layer ids in a stable order (numeric when the ids are
// numeric, lexical otherwise), so layers always draw in the same order.
func (self Environment) LayerOrder() []string {
	ids := make([]string, 0, len(self))
	for id := range self {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil { return a < b }
		return ids[i] < ids[j]
	})
	return ids
}

// Reads an environment file: a JSON object mapping layer ids to
// {"closed", "points", "fill", "stroke"} records, with colors as "rrggbb"
// hex strings or null.
func LoadEnvironment(path string) (Environment, error) {
	data, err := readMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	var layers map[string]struct {
		Closed bool     `json:"closed"`
		Points []Vertex `json:"points"`
		Fill   *string  `json:"fill"`
		Stroke *string  `json:"stroke"`
	}
	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("parse environment %s: %w", path, err)
	}

	environment := make(Environment, len(layers))
	for id, layer := range layers {
		shape := Shape{Closed: layer.Closed, Points: layer.Points}
		if shape.Fill, err = parseHexColor(layer.Fill); err != nil {
			return nil, fmt.Errorf("environment layer %s fill: %w", id, err)
		}
		if shape.Stroke, err = parseHexColor(layer.Stroke); err != nil {
			return nil, fmt.Errorf("environment layer %s stroke: %w", id, err)
		}
		environment[id] = shape
	}
	return environment, nil
}

// Parses a "rrggbb" hex string into an opaque color. Nil stays nil.
func parseHexColor(hex *string) (*color.RGBA, error) {
	if hex == nil { return nil, nil }
	if len(*hex) != 6 {
		return nil, fmt.Errorf("expected rrggbb hex string, got %q", *hex)
	}
	value, err := strconv.ParseUint(*hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("expected rrggbb hex string, got %q", *hex)
	}
	return &color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}
