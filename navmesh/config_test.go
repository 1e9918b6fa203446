package navmesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(c *Config)
		want error
	}{
		{"negative radius", func(c *Config) { c.AgentRadius = -0.1 }, ErrInvalidAgentRadius},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, ErrInvalidConfig},
		{"negative padding", func(c *Config) { c.GridPadding = -1 }, ErrInvalidConfig},
		{"zero height scale", func(c *Config) { c.HeightKeyScale = 0 }, ErrInvalidConfig},
		{"precision", func(c *Config) { c.Precision = 9 }, ErrInvalidConfig},
		{"inflate", func(c *Config) { c.ObstacleInflate = -0.01 }, ErrInvalidConfig},
		{"miter", func(c *Config) { c.MiterLimit = 0.5 }, ErrInvalidConfig},
		{"min area", func(c *Config) { c.MinTriArea = -1 }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.edit(&c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("agent_radius: 0.4\ncell_size: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.AgentRadius)
	assert.Equal(t, 4.0, cfg.CellSize)
	assert.Equal(t, DefaultPrecision, cfg.Precision, "unset fields keep defaults")

	_, err = ParseConfig([]byte("precision: 12\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseConfig([]byte("cell_size: [1\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navmesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agent_radius: 0.25\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.AgentRadius)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
