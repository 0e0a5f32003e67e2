// config loads and validates the render configuration: the world
// coordinate domains, the pixel resolution, and the named window groups
// that become condition panes in tiled mode.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// A WindowGroup names one condition pane for the tiled view. Key is
// matched, by exact string equality, against the group key derived from
// each entity's facet attributes; DisplayName is the pane title.
type WindowGroup struct {
	Key         string `yaml:"key" validate:"required"`
	DisplayName string `yaml:"displayName"`
}

// Render is the full render configuration consumed by the playback core.
type Render struct {
	// World coordinate domains, [min, max] per axis.
	XDomain []float64 `yaml:"xDomain" validate:"len=2"`
	YDomain []float64 `yaml:"yDomain" validate:"len=2"`

	// Full-view surface size in pixels.
	PixelWidth  int `yaml:"pixelWidth" validate:"gt=0"`
	PixelHeight int `yaml:"pixelHeight" validate:"gt=0"`

	// Condition panes for the tiled view, in layout order.
	WindowGroups []WindowGroup `yaml:"windowGroups" validate:"dive"`

	// Attributes joined into the group key that assigns each entity to
	// a pane. Entities whose key matches no window group are not
	// rendered while the view is tiled.
	FacetAttributes []string `yaml:"facetAttributes"`

	// Presence-interval coalescing threshold in frames; 0 or 1 keeps
	// the per-frame observation granularity.
	MergeGap int `yaml:"mergeGap" validate:"gte=0"`
}

var validate = validator.New()

// Parses and validates a [Render] configuration from YAML bytes.
func Parse(data []byte) (*Render, error) {
	var cfg Render
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse render config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate render config: %w", err)
	}
	return &cfg, nil
}

// Reads, parses and validates a [Render] configuration file.
func Load(path string) (*Render, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read render config: %w", err)
	}
	return Parse(data)
}
