package navmesh

import (
	"fmt"
	"io"

	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/debug_utils"
)

// DebugDraw streams every triangle edge into dd as green lines.
func (m *NavMesh) DebugDraw(dd debug_utils.DuDebugDraw) {
	if dd == nil || len(m.tris) == 0 {
		return
	}
	dd.Begin(debug_utils.DU_DRAW_LINES, 1)
	for i := range m.tris {
		t := &m.tris[i]
		debug_utils.DuAppendTriEdges(dd, t.V[0], t.V[1], t.V[2], debug_utils.ColorGreen)
	}
	dd.End()
}

// DebugDrawObstacles outlines the obstacle footprints cut from each level.
func (m *NavMesh) DebugDrawObstacles(dd debug_utils.DuDebugDraw) {
	if dd == nil {
		return
	}
	dd.Begin(debug_utils.DU_DRAW_LINES, 1)
	for _, level := range m.Levels() {
		for _, p := range level.StaticObstaclePaths {
			debug_utils.DuAppendRing(dd, p, level.Y, debug_utils.ColorRed)
		}
		for _, p := range level.DynamicObstaclePaths {
			debug_utils.DuAppendRing(dd, p, level.Y, debug_utils.ColorBlue)
		}
	}
	dd.End()
}

// DrawPath draws a path in white with a point on every vertex.
func DrawPath(dd debug_utils.DuDebugDraw, path []common.Vec3) {
	debug_utils.DuDebugDrawPath(dd, path, debug_utils.ColorWhite, 2, 6)
}

func (m *NavMesh) TriCount() int { return len(m.tris) }
func (m *NavMesh) TriVerts(i int) (a, b, c common.Vec3) {
	t := &m.tris[i]
	return t.V[0], t.V[1], t.V[2]
}
func (m *NavMesh) TriNeighbor(i, e int) int { return m.tris[i].Neighbor[e] }

// DebugDrawFilled draws filled triangles with the mesh boundary outlined.
func (m *NavMesh) DebugDrawFilled(dd debug_utils.DuDebugDraw, flags int) {
	debug_utils.DuDebugDrawNavTris(dd, m, debug_utils.ColorGreen, flags)
}

// DebugDrawCorridor highlights the triangles returned by FindPathTris.
func (m *NavMesh) DebugDrawCorridor(dd debug_utils.DuDebugDraw, tris []int) {
	debug_utils.DuDebugDrawNavTriList(dd, m, tris, debug_utils.DuRGBA(255, 196, 0, 255))
}

func (m *NavMesh) DumpObj(w io.Writer) error {
	if err := debug_utils.DuDumpNavTrisToObj(m, w); err != nil {
		return fmt.Errorf("dump navmesh %s: %w", m.id, err)
	}
	return nil
}
