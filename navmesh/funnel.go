package navmesh

import (
	"github.com/gorustyt/polynav/common"
)

// sharedEdge finds the edge triangles a and b have in common.
func (m *NavMesh) sharedEdge(a, b int) (e0, e1 common.Vec3, ok bool) {
	ta, tb := &m.tris[a], &m.tris[b]
	for ea := 0; ea < 3; ea++ {
		a0, a1 := ta.Edge(ea)
		for eb := 0; eb < 3; eb++ {
			b0, b1 := tb.Edge(eb)
			same01 := common.VdistSqr(a0, b0) < portalEpsSq && common.VdistSqr(a1, b1) < portalEpsSq
			same10 := common.VdistSqr(a0, b1) < portalEpsSq && common.VdistSqr(a1, b0) < portalEpsSq
			if same01 || same10 {
				return a0, a1, true
			}
		}
	}
	return e0, e1, false
}

// BuildPortalsFromCenters turns a point path with its triangle indices into
// the portal list the funnel walks. The first and last portals are the
// degenerate start and goal. Steps that stay inside one triangle, or whose
// triangles share no edge, add no portal. Left and right are classified
// against the direction between the two path points.
func (m *NavMesh) BuildPortalsFromCenters(path []common.Vec3, tris []int) []Portal {
	if len(path) < 2 || len(path) != len(tris) {
		return nil
	}
	for _, ti := range tris {
		if ti < 0 || ti >= len(m.tris) {
			return nil
		}
	}

	portals := make([]Portal, 0, len(path)+1)
	portals = append(portals, Portal{Left: path[0], Right: path[0]})
	for i := 0; i+1 < len(path); i++ {
		if tris[i] == tris[i+1] {
			continue
		}
		e0, e1, ok := m.sharedEdge(tris[i], tris[i+1])
		if !ok {
			continue
		}

		cur := common.ToXZ(path[i])
		dir := common.ToXZ(path[i+1]).Sub(cur)
		lenSq := dir.Dot(dir)
		if lenSq < 1e-8 {
			continue
		}
		dir = dir.Normalize()

		c0 := common.Cross2D(dir, common.ToXZ(e0).Sub(cur))
		c1 := common.Cross2D(dir, common.ToXZ(e1).Sub(cur))

		var p Portal
		switch {
		case c0 > 0 && c1 < 0:
			p = Portal{Left: e1, Right: e0}
		case c1 > 0 && c0 < 0:
			p = Portal{Left: e0, Right: e1}
		case c0 >= c1:
			p = Portal{Left: e1, Right: e0}
		default:
			p = Portal{Left: e0, Right: e1}
		}
		portals = append(portals, p)
	}
	last := path[len(path)-1]
	return append(portals, Portal{Left: last, Right: last})
}

// Funnel pulls the string through the portals. The first portal's left point
// is the start and the last portal's left point the goal; the output starts
// and ends with exactly those points.
func Funnel(portals []Portal) []common.Vec3 {
	n := len(portals)
	if n == 0 {
		return nil
	}
	result := make([]common.Vec3, 0, n+1)

	apex := common.ToXZ(portals[0].Left)
	left := apex
	right := common.ToXZ(portals[0].Right)
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	result = append(result, portals[0].Left)

	for i := 1; i < n; i++ {
		newLeft := common.ToXZ(portals[i].Left)
		newRight := common.ToXZ(portals[i].Right)

		// right side
		if common.TriArea2D(apex, right, newRight) <= 0 {
			if common.Vdist2DSqr(apex, right) < funnelEqSq || common.TriArea2D(apex, left, newRight) > 0 {
				right = newRight
				rightIndex = i
			} else {
				// right crossed over left, left becomes the new apex
				result = append(result, portals[leftIndex].Left)
				apex = common.ToXZ(portals[leftIndex].Left)
				apexIndex = leftIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}

		// left side
		if common.TriArea2D(apex, left, newLeft) >= 0 {
			if common.Vdist2DSqr(apex, left) < funnelEqSq || common.TriArea2D(apex, right, newLeft) < 0 {
				left = newLeft
				leftIndex = i
			} else {
				result = append(result, portals[rightIndex].Right)
				apex = common.ToXZ(portals[rightIndex].Right)
				apexIndex = rightIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	goal := portals[n-1].Left
	if result[len(result)-1] != goal {
		result = append(result, goal)
	}
	return result
}

// Funnel is the method form of the package level Funnel.
func (m *NavMesh) Funnel(portals []Portal) []common.Vec3 {
	return Funnel(portals)
}

// PullPath smooths a raw FindPath result. Triangle indices are looked up
// again from the points, so any point off the mesh returns the input as is,
// as does a path shorter than two points or an empty mesh.
func (m *NavMesh) PullPath(path []common.Vec3) []common.Vec3 {
	if len(path) < 2 || len(m.tris) == 0 {
		return path
	}
	tris := make([]int, len(path))
	for i, p := range path {
		tris[i] = m.FindContainingTriIndex(p)
		if tris[i] < 0 {
			return path
		}
	}
	return Funnel(m.BuildPortalsFromCenters(path, tris))
}
