package navmesh

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownNavMesh     = errors.New("navmesh: unknown nav mesh id")
	ErrInvalidAgentRadius = errors.New("navmesh: agent radius must not be negative")
	ErrInvalidConfig      = errors.New("navmesh: invalid config")
)

const (
	DefaultCellSize        = 2.0
	DefaultGridPadding     = 0.5
	DefaultHeightKeyScale  = 1000.0
	DefaultPrecision       = 2
	DefaultObstacleInflate = 0.02
	DefaultLevelYBuffer    = 0.05
	DefaultMiterLimit      = 2.0
	DefaultMinTriArea      = 1e-6
)

// Config holds the build parameters of one nav mesh. Precision is shared by
// the boolean engine grid and vertex rounding so shared edges quantize to
// identical keys.
type Config struct {
	AgentRadius     float64 `yaml:"agent_radius"`
	CellSize        float64 `yaml:"cell_size"`
	GridPadding     float64 `yaml:"grid_padding"`
	HeightKeyScale  float64 `yaml:"height_key_scale"` // floors closer than 1/scale share a level
	Precision       int     `yaml:"precision"`        // decimal places
	ObstacleInflate float64 `yaml:"obstacle_inflate"`
	LevelYBuffer    float64 `yaml:"level_y_buffer"`
	MiterLimit      float64 `yaml:"miter_limit"`
	MinTriArea      float64 `yaml:"min_tri_area"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:        DefaultCellSize,
		GridPadding:     DefaultGridPadding,
		HeightKeyScale:  DefaultHeightKeyScale,
		Precision:       DefaultPrecision,
		ObstacleInflate: DefaultObstacleInflate,
		LevelYBuffer:    DefaultLevelYBuffer,
		MiterLimit:      DefaultMiterLimit,
		MinTriArea:      DefaultMinTriArea,
	}
}

func (c Config) Validate() error {
	if c.AgentRadius < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAgentRadius, c.AgentRadius)
	}
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %v", ErrInvalidConfig, c.CellSize)
	case c.GridPadding < 0:
		return fmt.Errorf("%w: grid_padding %v", ErrInvalidConfig, c.GridPadding)
	case c.HeightKeyScale <= 0:
		return fmt.Errorf("%w: height_key_scale %v", ErrInvalidConfig, c.HeightKeyScale)
	case c.Precision < 0 || c.Precision > 6:
		return fmt.Errorf("%w: precision %d out of [0, 6]", ErrInvalidConfig, c.Precision)
	case c.ObstacleInflate < 0 || c.LevelYBuffer < 0:
		return fmt.Errorf("%w: negative obstacle inflate or level buffer", ErrInvalidConfig)
	case c.MiterLimit < 1:
		return fmt.Errorf("%w: miter_limit %v below 1", ErrInvalidConfig, c.MiterLimit)
	case c.MinTriArea < 0:
		return fmt.Errorf("%w: min_tri_area %v", ErrInvalidConfig, c.MinTriArea)
	}
	return nil
}

// ParseConfig overlays YAML data on DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse navmesh config: %w", err)
	}
	return cfg, cfg.Validate()
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read navmesh config: %w", err)
	}
	return ParseConfig(data)
}
