// Package effect drives an octree the way a point cloud visual effect does: a swarm of
// particles that drift every frame, each move applied as a remove and a re-insert, with radius
// queries around particles to find their neighbors.
package effect

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	rdkutils "go.viam.com/utils"

	"go.viam.com/dynoctree/octree"
)

// Config describes a particle simulation and the tree that indexes it.
type Config struct {
	Tree   octree.Config `json:"tree"`
	Points int           `json:"points"`
	Spread float64       `json:"spread"`
	Jitter float64       `json:"jitter"`
	Radius float64       `json:"radius"`
	Seed   int64         `json:"seed"`
}

// DefaultConfig returns a small simulation around the origin.
func DefaultConfig() Config {
	return Config{
		Tree: octree.Config{
			Origin:          r3.Vector{},
			HalfSize:        1,
			MaxDepth:        6,
			MinimumNodeSize: 0.05,
		},
		Points: 1000,
		Spread: 10,
		Jitter: 0.1,
		Radius: 1,
		Seed:   1,
	}
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) ([]string, error) {
	_, err := cfg.Tree.Validate(path + ".tree")
	if cfg.Points < 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path,
			errors.Errorf("points must not be negative, got %d", cfg.Points)))
	}
	if cfg.Spread <= 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationFieldRequiredError(path, "spread"))
	}
	if cfg.Jitter < 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path,
			errors.Errorf("jitter must not be negative, got %v", cfg.Jitter)))
	}
	if cfg.Radius <= 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationFieldRequiredError(path, "radius"))
	}
	return nil, err
}

// DecodeConfig converts attributes into a Config. Attributes that are absent keep the values
// of DefaultConfig.
func DecodeConfig(attributes map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode effect config")
	}
	return &cfg, nil
}
