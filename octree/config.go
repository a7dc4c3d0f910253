package octree

import (
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	rdkutils "go.viam.com/utils"
)

// Config describes the initial cell of a tree and its subdivision limits.
type Config struct {
	Origin          r3.Vector `json:"origin"`
	HalfSize        float64   `json:"half_size"`
	MaxDepth        int       `json:"max_depth"`
	MinimumNodeSize float64   `json:"minimum_node_size"`
}

// Validate ensures all parts of the config are valid. A half size below MinRootHalfSize is
// accepted and clamped when the tree is built.
func (cfg *Config) Validate(path string) ([]string, error) {
	var err error
	if !finite(cfg.Origin.X) || !finite(cfg.Origin.Y) || !finite(cfg.Origin.Z) {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path, errors.New("origin must be finite")))
	}
	if math.IsNaN(cfg.HalfSize) || math.IsInf(cfg.HalfSize, 0) || cfg.HalfSize < 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path,
			errors.Errorf("half_size must be a finite non-negative number, got %v", cfg.HalfSize)))
	}
	if cfg.MaxDepth < 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path,
			errors.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)))
	}
	if math.IsNaN(cfg.MinimumNodeSize) || math.IsInf(cfg.MinimumNodeSize, 0) || cfg.MinimumNodeSize < 0 {
		err = multierr.Append(err, rdkutils.NewConfigValidationError(path,
			errors.Errorf("minimum_node_size must be a finite non-negative number, got %v", cfg.MinimumNodeSize)))
	}
	return nil, err
}

// DecodeConfig converts an attribute map, such as one read from a JSON file, into a Config.
// Keys follow the json tags of Config; origin components are matched as x, y and z.
func DecodeConfig(attributes map[string]interface{}) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode octree config")
	}
	return cfg, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
