package main

import (
	"fmt"
	"os"

	"github.com/gorustyt/polynav/debug_utils"
	"github.com/spf13/cobra"
)

func BuildCmd(a *app) *cobra.Command {
	var scenePath, dump, obj string
	c := &cobra.Command{
		Use:   "build",
		Short: "build the nav mesh of a scene and print its levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.build(scenePath, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			stats := m.AdjacencyStats()
			fmt.Fprintf(out, "agent radius %.2f: %d levels, %d tris, %d linked edges, %d boundary edges\n",
				m.AgentRadius(), len(m.Levels()), len(m.Tris()), stats.Linked, stats.Boundary)
			for _, level := range m.Levels() {
				fmt.Fprintf(out, "  level y=%.3f: %d static, %d dynamic obstacles, %d rings\n",
					level.Y, len(level.StaticObstaclePaths), len(level.DynamicObstaclePaths), len(level.SolutionFinal))
			}
			dl := debug_utils.NewDuDisplayList(len(m.Tris()) * 6)
			m.DebugDrawFilled(dl, debug_utils.DU_DRAWNAVMESH_INNER_EDGES)
			m.DebugDrawObstacles(dl)
			fmt.Fprintf(out, "debug draw: %d tris, %d lines\n",
				dl.Count(debug_utils.DU_DRAW_TRIS), dl.Count(debug_utils.DU_DRAW_LINES))

			if dump != "" {
				if err := os.WriteFile(dump, m.Snapshot(), 0o644); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				fmt.Fprintf(out, "snapshot written to %s\n", dump)
			}
			if obj != "" {
				f, err := os.Create(obj)
				if err != nil {
					return fmt.Errorf("create obj: %w", err)
				}
				defer f.Close()
				if err := m.DumpObj(f); err != nil {
					return err
				}
				fmt.Fprintf(out, "obj written to %s\n", obj)
			}
			return nil
		},
	}
	c.Flags().StringVar(&scenePath, "scene", "", "scene file")
	c.Flags().StringVar(&dump, "dump", "", "write a binary snapshot of the mesh")
	c.Flags().StringVar(&obj, "obj", "", "export the triangles as a Wavefront OBJ file")
	_ = c.MarkFlagRequired("scene")
	return c
}
