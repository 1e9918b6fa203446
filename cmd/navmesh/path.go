package main

import (
	"errors"
	"fmt"

	"github.com/gorustyt/polynav/common"
	"github.com/spf13/cobra"
)

var errNoPath = errors.New("no path")

func PathCmd(a *app) *cobra.Command {
	var (
		scenePath, from, to string
		raw                 bool
		openDoors           []int
	)
	c := &cobra.Command{
		Use:   "path",
		Short: "find a path between two points of a scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVec3(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			goal, err := parseVec3(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			_, m, err := a.build(scenePath, openDoors)
			if err != nil {
				return err
			}
			path := m.FindPath(start, goal)
			if len(path) == 0 {
				return fmt.Errorf("%w from %v to %v", errNoPath, start, goal)
			}
			if !raw {
				path = m.PullPath(path)
			}
			out := cmd.OutOrStdout()
			for _, p := range path {
				fmt.Fprintf(out, "%.3f,%.3f,%.3f\n", p[0], p[1], p[2])
			}
			fmt.Fprintf(out, "length %.3f\n", common.PathLengthXZ(path))
			return nil
		},
	}
	c.Flags().StringVar(&scenePath, "scene", "", "scene file")
	c.Flags().StringVar(&from, "from", "", "start as x,y,z")
	c.Flags().StringVar(&to, "to", "", "goal as x,y,z")
	c.Flags().BoolVar(&raw, "raw", false, "print triangle centers instead of the smoothed path")
	c.Flags().IntSliceVar(&openDoors, "open-door", nil, "open door i before building")
	_ = c.MarkFlagRequired("scene")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
