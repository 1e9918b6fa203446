package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorustyt/polynav/navmesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRooms = "../../scene/testdata/two_rooms.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := RootCmd()
	c.SetOut(&out)
	c.SetArgs(append(args, "--log-level", "error"))
	err := c.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navmesh.yaml")
	data := "navmesh:\n  agent_radius: 0.1\nlog:\n  console: false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "mesh.bin")
	obj := filepath.Join(dir, "mesh.obj")
	out, err := run(t, "build", "--config", writeConfig(t), "--scene", twoRooms, "--dump", dump, "--obj", obj)
	require.NoError(t, err)
	assert.Contains(t, out, "agent radius 0.10: 1 levels")
	assert.Contains(t, out, "snapshot written")

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	sum, err := navmesh.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.NotEmpty(t, sum.Tris)
	assert.Equal(t, []float64{0}, sum.Levels)

	data, err = os.ReadFile(obj)
	require.NoError(t, err)
	assert.Equal(t, len(sum.Tris), strings.Count(string(data), "\nf "))
}

func TestPathCommand(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "path", "--config", cfg, "--scene", twoRooms, "--from", "2,0,2", "--to", "7,0,2")
	assert.ErrorIs(t, err, errNoPath, "the door is closed")

	out, err := run(t, "path", "--config", cfg, "--scene", twoRooms, "--from", "2,0,2", "--to", "7,0,2", "--open-door", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "2.000,0.000,2.000", lines[0])
	assert.Equal(t, "7.000,0.000,2.000", lines[len(lines)-2])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "length "))

	_, err = run(t, "path", "--config", cfg, "--scene", twoRooms, "--from", "2,0", "--to", "7,0,2")
	assert.Error(t, err)
	_, err = run(t, "path", "--config", cfg, "--scene", twoRooms, "--from", "2,0,2", "--to", "7,0,2", "--open-door", "4")
	assert.Error(t, err)
}

func TestLoadAppConfig(t *testing.T) {
	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAppConfig(), cfg)

	cfg, err = LoadAppConfig(writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.NavMesh.AgentRadius)
	assert.Equal(t, navmesh.DefaultPrecision, cfg.NavMesh.Precision)
	assert.False(t, cfg.Log.Console)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("navmesh:\n  cell_size: -1\n"), 0o644))
	_, err = LoadAppConfig(bad)
	assert.ErrorIs(t, err, navmesh.ErrInvalidConfig)
}
