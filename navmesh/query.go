package navmesh

import (
	"math"
	"slices"

	"github.com/gorustyt/polynav/common"
)

const (
	nodeOpen   = 0x01
	nodeClosed = 0x02
)

type searchNode struct {
	tri    int
	parent int
	g      float64 // cost from start
	f      float64 // g plus heuristic
	flags  uint8
	_index int // heap position
}

func (n *searchNode) SetIndex(index int) {
	n._index = index
}

func (n *searchNode) GetIndex() int {
	return n._index
}

// FindContainingTriIndex returns the triangle under p on the xz plane, or -1.
// When triangles of several levels contain p the one whose surface is closest
// to p's height wins; on a tie the lowest index wins.
func (m *NavMesh) FindContainingTriIndex(p common.Vec3) int {
	if m.grid == nil {
		return -1
	}
	best := -1
	bestDist := math.MaxFloat64
	for _, i := range m.grid.Candidates(p[0], p[2]) {
		t := &m.tris[i]
		if !t.Contains(p) {
			continue
		}
		d := common.Abs(t.HeightAt(p[0], p[2]) - p[1])
		if d < bestDist || (d == bestDist && i < best) {
			best, bestDist = i, d
		}
	}
	return best
}

// FindPath returns start, the centers of the intermediate triangles and dest,
// with both endpoints snapped onto the mesh surface. An empty result means no
// path exists or an endpoint is off the mesh.
func (m *NavMesh) FindPath(start, dest common.Vec3) []common.Vec3 {
	path, _ := m.FindPathTris(start, dest)
	return path
}

// FindPathTris is FindPath plus the triangle index of every returned point.
func (m *NavMesh) FindPathTris(start, dest common.Vec3) ([]common.Vec3, []int) {
	if len(m.tris) == 0 {
		return nil, nil
	}
	startTri := m.FindContainingTriIndex(start)
	endTri := m.FindContainingTriIndex(dest)
	if startTri < 0 || endTri < 0 {
		return nil, nil
	}
	s := start
	s[1] = m.tris[startTri].HeightAt(start[0], start[2])
	d := dest
	d[1] = m.tris[endTri].HeightAt(dest[0], dest[2])

	if startTri == endTri {
		return []common.Vec3{s, d}, []int{startTri, startTri}
	}

	triPath := m.search(startTri, endTri, dest)
	if len(triPath) == 0 {
		return nil, nil
	}
	path := make([]common.Vec3, 0, len(triPath))
	path = append(path, s)
	for _, ti := range triPath[1 : len(triPath)-1] {
		path = append(path, m.tris[ti].Center)
	}
	path = append(path, d)
	return path, triPath
}

func (m *NavMesh) heuristic(tri int, dest common.Vec3) float64 {
	return common.VdistXZ(m.tris[tri].Center, dest)
}

// search runs A* over triangle centers with xz distances and returns the
// triangle sequence from startTri to endTri, or nil.
func (m *NavMesh) search(startTri, endTri int, dest common.Vec3) []int {
	if cap(m.nodes) < len(m.tris) {
		m.nodes = make([]searchNode, len(m.tris))
	}
	m.nodes = m.nodes[:len(m.tris)]
	for i := range m.nodes {
		m.nodes[i] = searchNode{tri: i, parent: -1, g: math.MaxFloat64, f: math.MaxFloat64, _index: -1}
	}
	m.open.Reset()

	startNode := &m.nodes[startTri]
	startNode.g = 0
	startNode.f = m.heuristic(startTri, dest)
	startNode.flags = nodeOpen
	m.open.Offer(startNode)

	found := false
	for !m.open.Empty() {
		cur := m.open.Poll()
		cur.flags &^= nodeOpen
		cur.flags |= nodeClosed
		if cur.tri == endTri {
			found = true
			break
		}
		curTri := &m.tris[cur.tri]
		for _, nb := range curTri.Neighbor {
			if nb < 0 {
				continue
			}
			next := &m.nodes[nb]
			if next.flags&nodeClosed != 0 {
				continue
			}
			g := cur.g + common.VdistXZ(curTri.Center, m.tris[nb].Center)
			if next.flags&nodeOpen != 0 && g >= next.g {
				continue
			}
			next.parent = cur.tri
			next.g = g
			next.f = g + m.heuristic(nb, dest)
			if next.flags&nodeOpen != 0 {
				m.open.Update(next)
			} else {
				next.flags |= nodeOpen
				m.open.Offer(next)
			}
		}
	}
	if !found {
		return nil
	}

	var triPath []int
	for cur := endTri; cur != -1; cur = m.nodes[cur].parent {
		triPath = append(triPath, cur)
		if len(triPath) > len(m.tris) {
			return nil
		}
	}
	slices.Reverse(triPath)
	common.AssertTrue(triPath[0] == startTri, "navmesh: broken parent chain")
	return triPath
}
