package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/common/logger"
	"github.com/gorustyt/polynav/navmesh"
	"github.com/gorustyt/polynav/scene"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AppConfig is the CLI config file.
type AppConfig struct {
	NavMesh navmesh.Config `yaml:"navmesh"`
	Log     logger.Config  `yaml:"log"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{NavMesh: navmesh.DefaultConfig(), Log: logger.DefaultConfig()}
}

func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.NavMesh.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type app struct {
	configFile string
	logLevel   string
	cfg        AppConfig
}

func RootCmd() *cobra.Command {
	a := &app{}
	c := &cobra.Command{
		Use:           "navmesh",
		Short:         "build nav meshes from a scene and query paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadAppConfig(a.configFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			a.cfg = cfg
			logger.Init(cfg.Log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}
	c.PersistentFlags().StringVar(&a.configFile, "config", "", "config file")
	c.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	c.AddCommand(BuildCmd(a), PathCmd(a))
	return c
}

// build loads the scene, opens the given doors and returns one updated mesh
// built for the configured agent radius.
func (a *app) build(scenePath string, openDoors []int) (*scene.Scene, *navmesh.NavMesh, error) {
	s, err := scene.Load(scenePath)
	if err != nil {
		return nil, nil, err
	}
	for _, i := range openDoors {
		if _, err := s.ToggleDoor(i); err != nil {
			return nil, nil, err
		}
	}
	r := navmesh.NewRegistry(a.cfg.NavMesh)
	r.AddFloorSource(s)
	r.AddObstacleProvider(s)
	id, err := r.CreateNavMesh(a.cfg.NavMesh.AgentRadius)
	if err != nil {
		return nil, nil, err
	}
	r.UpdateAll()
	m, err := r.Get(id)
	return s, m, err
}

func parseVec3(s string) (common.Vec3, error) {
	var v common.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = f
	}
	return v, nil
}
