package navmesh

import (
	"cmp"
	"math"
	"slices"

	"github.com/gorustyt/polynav/common"
	"go.uber.org/zap"
)

func (m *NavMesh) vertexKey(v common.Vec3) vertexKey {
	scale := math.Pow(10, float64(m.cfg.Precision))
	return vertexKey{
		int64(math.Round(v[0] * scale)),
		int64(math.Round(v[1] * scale)),
		int64(math.Round(v[2] * scale)),
	}
}

func compareVertexKey(a, b vertexKey) int {
	for i := 0; i < 3; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (m *NavMesh) edgeKey(a, b common.Vec3) edgeKey {
	ka, kb := m.vertexKey(a), m.vertexKey(b)
	if compareVertexKey(kb, ka) < 0 {
		ka, kb = kb, ka
	}
	return edgeKey{ka, kb}
}

func compareEdgeRef(a, b EdgeRef) int {
	if c := compareVertexKey(a.Key[0], b.Key[0]); c != 0 {
		return c
	}
	if c := compareVertexKey(a.Key[1], b.Key[1]); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Tri, b.Tri); c != 0 {
		return c
	}
	return cmp.Compare(a.Edge, b.Edge)
}

// BuildNeighbors links triangles sharing an edge. Every edge is keyed by its
// quantized endpoints, the keys are sorted and equal runs are scanned: a run
// of two links both triangles, a run of one is a boundary edge and anything
// else is counted as a conflict and left unlinked. Keys include the height,
// so different levels never connect.
func (m *NavMesh) BuildNeighbors() AdjacencyStats {
	refs := m.edgeScratch[:0]
	for i := range m.tris {
		t := &m.tris[i]
		t.Neighbor = [3]int{-1, -1, -1}
		for e := 0; e < 3; e++ {
			a, b := t.Edge(e)
			refs = append(refs, EdgeRef{Key: m.edgeKey(a, b), Tri: i, Edge: e})
		}
	}
	slices.SortFunc(refs, compareEdgeRef)
	m.edgeScratch = refs

	stats := AdjacencyStats{Edges: len(refs)}
	for i := 0; i < len(refs); {
		j := i + 1
		for j < len(refs) && refs[j].Key == refs[i].Key {
			j++
		}
		switch n := j - i; {
		case n == 1:
			stats.Boundary++
		case n == 2 && m.canPair(refs[i], refs[i+1]):
			r0, r1 := refs[i], refs[i+1]
			m.tris[r0.Tri].Neighbor[r0.Edge] = r1.Tri
			m.tris[r1.Tri].Neighbor[r1.Edge] = r0.Tri
			stats.Linked++
		default:
			stats.Conflicts++
			a, b := m.tris[refs[i].Tri].Edge(refs[i].Edge)
			m.log.Warn("unpaired shared edge",
				zap.Int("refs", n),
				zap.Float64s("a", a[:]),
				zap.Float64s("b", b[:]))
		}
		i = j
	}
	m.stats = stats
	return stats
}

// canPair accepts two refs of different triangles that walk the shared edge
// in opposite directions, as counter clockwise neighbours do.
func (m *NavMesh) canPair(r0, r1 EdgeRef) bool {
	if r0.Tri == r1.Tri {
		return false
	}
	a0, _ := m.tris[r0.Tri].Edge(r0.Edge)
	a1, _ := m.tris[r1.Tri].Edge(r1.Edge)
	return m.vertexKey(a0) != m.vertexKey(a1)
}
