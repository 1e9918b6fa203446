package navmesh

import (
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
	"github.com/gorustyt/polynav/polybool"
)

const (
	// containment tolerance of the barycentric triangle test
	containsEps = 1e-4
	// squared distance under which portal endpoints are the same point
	portalEpsSq = 1e-6
	// squared distance under which the funnel apex and a side coincide
	funnelEqSq = 1e-6
)

// NavTri is one walkable triangle. Vertices are rounded to the mesh precision
// and wound counter clockwise on the xz plane. Neighbor[e] is the triangle
// across edge V[e]->V[e+1], or -1.
type NavTri struct {
	V         [3]common.Vec3
	Neighbor  [3]int
	Center    common.Vec3
	BoundsMin common.Vec3
	BoundsMax common.Vec3
}

func (t *NavTri) Edge(e int) (a, b common.Vec3) {
	return t.V[e], t.V[common.Next(e, 3)]
}

// Contains tests p against the triangle on the xz plane, ignoring height.
func (t *NavTri) Contains(p common.Vec3) bool {
	if p[0] < t.BoundsMin[0]-containsEps || p[0] > t.BoundsMax[0]+containsEps ||
		p[2] < t.BoundsMin[2]-containsEps || p[2] > t.BoundsMax[2]+containsEps {
		return false
	}
	return geom.PointInTriXZ(t.V[0], t.V[1], t.V[2], p, containsEps)
}

// HeightAt interpolates the surface height at (x, z).
func (t *NavTri) HeightAt(x, z float64) float64 {
	u, v, w, ok := geom.Barycentric(t.V[0], t.V[1], t.V[2], common.Vec3{x, 0, z})
	if !ok {
		return t.Center[1]
	}
	return u*t.V[0][1] + v*t.V[1][1] + w*t.V[2][1]
}

func (t *NavTri) Area() float64 {
	return common.Abs(common.TriAreaXZ(t.V[0], t.V[1], t.V[2])) * 0.5
}

// LevelInfo is the 2D polygon state of one floor height.
type LevelInfo struct {
	Key int
	Y   float64

	FloorPaths           polybool.Paths
	StaticObstaclePaths  polybool.Paths
	DynamicObstaclePaths polybool.Paths

	SolutionStatic  polybool.Paths // floors minus static obstacles
	SolutionDynamic polybool.Paths // SolutionStatic minus dynamic obstacles
	SolutionFinal   polybool.Paths // SolutionDynamic deflated by the agent radius
}

// Portal is the crossing segment between two consecutive corridor triangles,
// as seen walking forward.
type Portal struct {
	Left  common.Vec3
	Right common.Vec3
}

type vertexKey [3]int64

// edgeKey is direction independent: the smaller vertex key comes first.
type edgeKey [2]vertexKey

// EdgeRef is one triangle edge under its quantized key.
type EdgeRef struct {
	Key  edgeKey
	Tri  int
	Edge int
}

// AdjacencyStats summarises the last BuildNeighbors pass.
type AdjacencyStats struct {
	Edges     int // edge refs scanned
	Linked    int // neighbor pairs linked
	Boundary  int // edges with no partner
	Conflicts int // keys shared by more than two edges, or by two edges that cannot pair
}

type State int

const (
	StateClean State = iota
	StateStaticDirty
	StateDynamicDirty
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateStaticDirty:
		return "static-dirty"
	case StateDynamicDirty:
		return "dynamic-dirty"
	}
	return "unknown"
}
