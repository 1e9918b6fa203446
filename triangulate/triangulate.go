package triangulate

import (
	"fmt"
	"math"

	libtess2 "github.com/hajimehoshi/go-libtess2"
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
)

// Rings whose absolute area is below this are treated as degenerate.
const MinRingArea = 1e-9

// Polygon is one outer boundary with the holes it contains.
type Polygon struct {
	Outer []common.Vec2
	Holes [][]common.Vec2
}

type ringInfo struct {
	pts      []common.Vec2
	area     float64
	min, max common.Vec2
}

// BuildPolygons groups boolean output rings into outer+holes polygons.
// Rings sharing the sign that covers the most total area are outers, the
// rest are holes. Each hole joins the smallest outer containing its first
// point; holes without a container are dropped.
func BuildPolygons(rings [][]common.Vec2) []Polygon {
	infos := make([]ringInfo, 0, len(rings))
	var sumPos, sumNeg float64
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		a := geom.SignedArea(r)
		if math.Abs(a) < MinRingArea {
			continue
		}
		if a > 0 {
			sumPos += a
		} else {
			sumNeg -= a
		}
		mn, mx := geom.RingBounds(r)
		infos = append(infos, ringInfo{pts: r, area: a, min: mn, max: mx})
	}
	if len(infos) == 0 {
		return nil
	}

	outerPositive := sumPos >= sumNeg
	isOuter := func(r ringInfo) bool {
		if outerPositive {
			return r.area > 0
		}
		return r.area < 0
	}

	var polys []Polygon
	var outers []ringInfo
	for _, r := range infos {
		if !isOuter(r) {
			continue
		}
		polys = append(polys, Polygon{Outer: r.pts})
		outers = append(outers, r)
	}

	for _, r := range infos {
		if isOuter(r) {
			continue
		}
		p := r.pts[0]
		best := -1
		bestArea := math.MaxFloat64
		for i, o := range outers {
			if !geom.BoundsContain(o.min, o.max, p) {
				continue
			}
			if !geom.PointInPolygon(p, o.pts) {
				continue
			}
			if a := math.Abs(o.area); a < bestArea {
				best, bestArea = i, a
			}
		}
		if best >= 0 {
			polys[best].Holes = append(polys[best].Holes, r.pts)
		}
	}
	return polys
}

// Triangulator turns polygons with holes into indexed triangles. It keeps
// scratch buffers between calls and must not be shared between goroutines.
type Triangulator struct {
	contours []libtess2.Contour
}

func NewTriangulator() *Triangulator {
	return &Triangulator{}
}

func (t *Triangulator) addContour(ring []common.Vec2) {
	var c libtess2.Contour
	if n := len(t.contours); n < cap(t.contours) {
		c = t.contours[:n+1][n][:0]
	}
	for _, v := range ring {
		c = append(c, libtess2.Vertex{X: float32(v[0]), Y: float32(v[1])})
	}
	t.contours = append(t.contours, c)
}

// Triangulate returns the vertex list and a flat index buffer, three indices
// per triangle.
func (t *Triangulator) Triangulate(poly Polygon) ([]common.Vec2, []int, error) {
	if len(poly.Outer) < 3 {
		return nil, nil, nil
	}
	t.contours = t.contours[:0]
	t.addContour(poly.Outer)
	for _, h := range poly.Holes {
		if len(h) >= 3 {
			t.addContour(h)
		}
	}

	elems, tessVerts, err := libtess2.Tesselate(t.contours, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, nil, fmt.Errorf("triangulate polygon with %d holes: %w", len(poly.Holes), err)
	}
	verts := make([]common.Vec2, len(tessVerts))
	for i, v := range tessVerts {
		verts[i] = common.Vec2{float64(v.X), float64(v.Y)}
	}
	indices := make([]int, 0, len(elems))
	for i := 0; i+2 < len(elems); i += 3 {
		a, b, c := elems[i], elems[i+1], elems[i+2]
		if a < 0 || b < 0 || c < 0 || a >= len(verts) || b >= len(verts) || c >= len(verts) {
			continue
		}
		indices = append(indices, a, b, c)
	}
	return verts, indices, nil
}
