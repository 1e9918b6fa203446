package debug_utils

import "github.com/gorustyt/polynav/common"

const (
	DU_DRAWNAVMESH_INNER_EDGES = 0x01
	DU_DRAWNAVMESH_VERTS       = 0x02
)

// DuNavTris is the triangle view of a nav mesh the drawers walk. A negative
// neighbor marks a boundary edge.
type DuNavTris interface {
	TriCount() int
	TriVerts(i int) (a, b, c common.Vec3)
	TriNeighbor(i, e int) int
}

func drawTriBoundaries(dd DuDebugDraw, tris DuNavTris, col Colorb, linew float64, inner bool) {
	dd.Begin(DU_DRAW_LINES, linew)
	for i := 0; i < tris.TriCount(); i++ {
		a, b, c := tris.TriVerts(i)
		v := [3]common.Vec3{a, b, c}
		for j := 0; j < 3; j++ {
			nb := tris.TriNeighbor(i, j)
			if inner {
				// shared edges once
				if nb < i {
					continue
				}
			} else if nb >= 0 {
				continue
			}
			dd.Vertex(v[j], col)
			dd.Vertex(v[(j+1)%3], col)
		}
	}
	dd.End()
}

// DuDebugDrawNavTris fills the triangles with a translucent col and outlines
// the mesh boundary.
func DuDebugDrawNavTris(dd DuDebugDraw, tris DuNavTris, col Colorb, flags int) {
	if dd == nil || tris == nil {
		return
	}
	dd.DepthMask(false)

	c := DuTransCol(col, 64)
	dd.Begin(DU_DRAW_TRIS)
	for i := 0; i < tris.TriCount(); i++ {
		a, b, v := tris.TriVerts(i)
		dd.Vertex(a, c)
		dd.Vertex(b, c)
		dd.Vertex(v, c)
	}
	dd.End()

	// Draw inter tri boundaries
	if flags&DU_DRAWNAVMESH_INNER_EDGES != 0 {
		drawTriBoundaries(dd, tris, DuRGBA(0, 48, 64, 32), 1.5, true)
	}

	// Draw outer boundaries
	drawTriBoundaries(dd, tris, DuRGBA(0, 48, 64, 220), 2.5, false)

	if flags&DU_DRAWNAVMESH_VERTS != 0 {
		vcol := DuRGBA(0, 0, 0, 196)
		dd.Begin(DU_DRAW_POINTS, 3.0)
		for i := 0; i < tris.TriCount(); i++ {
			a, b, v := tris.TriVerts(i)
			dd.Vertex(a, vcol)
			dd.Vertex(b, vcol)
			dd.Vertex(v, vcol)
		}
		dd.End()
	}

	dd.DepthMask(true)
}

// DuDebugDrawNavTriList highlights a set of triangles, typically the corridor
// a path search went through. Out of range indices are skipped.
func DuDebugDrawNavTriList(dd DuDebugDraw, tris DuNavTris, list []int, col Colorb) {
	if dd == nil || tris == nil || len(list) == 0 {
		return
	}
	dd.DepthMask(false)
	c := DuTransCol(col, 64)
	dd.Begin(DU_DRAW_TRIS)
	for _, i := range list {
		if i < 0 || i >= tris.TriCount() {
			continue
		}
		a, b, v := tris.TriVerts(i)
		dd.Vertex(a, c)
		dd.Vertex(b, c)
		dd.Vertex(v, c)
	}
	dd.End()
	dd.DepthMask(true)
}
