package debug_utils

import (
	"github.com/gorustyt/polynav/common"
)

type DuDebugDrawPrimitives int

const (
	DU_DRAW_POINTS DuDebugDrawPrimitives = iota
	DU_DRAW_LINES
	DU_DRAW_TRIS
)

// DuDebugDraw is the sink debug geometry is streamed into. Lines take two
// vertices per segment, tris three per triangle.
type DuDebugDraw interface {
	DepthMask(state bool)

	/// Begin drawing primitives.
	///  @param prim [in] primitive type to draw, one of DuDebugDrawPrimitives.
	///  @param size [in] size of a primitive, applies to point size and line width only.
	Begin(prim DuDebugDrawPrimitives, size ...float64)

	/// Submit a vertex
	///  @param pos [in] position of the verts.
	///  @param color [in] color of the verts.
	Vertex(pos common.Vec3, color Colorb)

	/// End drawing primitives.
	End()
}

type DuDebugDrawBase struct {
}

func NewDuDebugDraw() DuDebugDraw {
	return &DuDebugDrawBase{}
}

func (d *DuDebugDrawBase) DepthMask(state bool)                              {}
func (d *DuDebugDrawBase) Begin(prim DuDebugDrawPrimitives, size ...float64) {}
func (d *DuDebugDrawBase) Vertex(pos common.Vec3, color Colorb)              {}
func (d *DuDebugDrawBase) End()                                              {}

func primSize(size []float64) float64 {
	if len(size) > 0 {
		return size[0]
	}
	return 1
}

func DuAppendCross(dd DuDebugDraw, p common.Vec3, s float64, col Colorb) {
	if dd == nil {
		return
	}
	dd.Vertex(common.Vec3{p[0] - s, p[1], p[2]}, col)
	dd.Vertex(common.Vec3{p[0] + s, p[1], p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1] - s, p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1] + s, p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1], p[2] - s}, col)
	dd.Vertex(common.Vec3{p[0], p[1], p[2] + s}, col)
}

func DuDebugDrawCross(dd DuDebugDraw, p common.Vec3, size float64, col Colorb, lineWidth float64) {
	if dd == nil {
		return
	}
	dd.Begin(DU_DRAW_LINES, lineWidth)
	DuAppendCross(dd, p, size, col)
	dd.End()
}

// DuAppendTriEdges submits the three edges of a triangle as line pairs.
func DuAppendTriEdges(dd DuDebugDraw, a, b, c common.Vec3, col Colorb) {
	dd.Vertex(a, col)
	dd.Vertex(b, col)
	dd.Vertex(b, col)
	dd.Vertex(c, col)
	dd.Vertex(c, col)
	dd.Vertex(a, col)
}

// DuAppendRing submits a closed xz ring lifted to height y.
func DuAppendRing(dd DuDebugDraw, ring []common.Vec2, y float64, col Colorb) {
	for i := range ring {
		j := common.Next(i, len(ring))
		dd.Vertex(common.FromXZ(ring[i], y), col)
		dd.Vertex(common.FromXZ(ring[j], y), col)
	}
}

// DuDebugDrawPath draws a polyline with a point on every vertex.
func DuDebugDrawPath(dd DuDebugDraw, path []common.Vec3, col Colorb, lineWidth, pointSize float64) {
	if dd == nil || len(path) == 0 {
		return
	}
	if len(path) >= 2 {
		dd.Begin(DU_DRAW_LINES, lineWidth)
		for i := 0; i+1 < len(path); i++ {
			dd.Vertex(path[i], col)
			dd.Vertex(path[i+1], col)
		}
		dd.End()
	}
	dd.Begin(DU_DRAW_POINTS, pointSize)
	for _, p := range path {
		dd.Vertex(p, col)
	}
	dd.End()
}

type duBatch struct {
	prim  DuDebugDrawPrimitives
	size  float64
	first int
	count int
}

// DuDisplayList records everything submitted to it so it can be inspected or
// replayed into another sink later.
type DuDisplayList struct {
	m_pos       []common.Vec3
	m_color     []Colorb
	m_batches   []duBatch
	m_open      bool
	m_depthMask bool
}

func NewDuDisplayList(cap int) *DuDisplayList {
	if cap < 8 {
		cap = 512
	}
	return &DuDisplayList{
		m_pos:       make([]common.Vec3, 0, cap),
		m_color:     make([]Colorb, 0, cap),
		m_depthMask: true,
	}
}

func (d *DuDisplayList) DepthMask(state bool) {
	d.m_depthMask = state
}

func (d *DuDisplayList) Begin(prim DuDebugDrawPrimitives, size ...float64) {
	common.AssertTrue(!d.m_open, "DuDisplayList: Begin without End")
	d.m_open = true
	d.m_batches = append(d.m_batches, duBatch{prim: prim, size: primSize(size), first: len(d.m_pos)})
}

func (d *DuDisplayList) Vertex(pos common.Vec3, color Colorb) {
	common.AssertTrue(d.m_open, "DuDisplayList: Vertex outside Begin/End")
	d.m_pos = append(d.m_pos, pos)
	d.m_color = append(d.m_color, color)
	d.m_batches[len(d.m_batches)-1].count++
}

func (d *DuDisplayList) End() {
	d.m_open = false
}

func (d *DuDisplayList) Clear() {
	d.m_pos = d.m_pos[:0]
	d.m_color = d.m_color[:0]
	d.m_batches = d.m_batches[:0]
	d.m_open = false
}

// Count returns how many primitives of the given type were recorded.
func (d *DuDisplayList) Count(prim DuDebugDrawPrimitives) int {
	per := 1
	switch prim {
	case DU_DRAW_LINES:
		per = 2
	case DU_DRAW_TRIS:
		per = 3
	}
	n := 0
	for _, b := range d.m_batches {
		if b.prim == prim {
			n += b.count / per
		}
	}
	return n
}

func (d *DuDisplayList) Vertices() []common.Vec3 {
	return d.m_pos
}

func (d *DuDisplayList) Colors() []Colorb {
	return d.m_color
}

// Draw replays the recorded batches into dd.
func (d *DuDisplayList) Draw(dd DuDebugDraw) {
	if dd == nil || len(d.m_pos) == 0 {
		return
	}
	dd.DepthMask(d.m_depthMask)
	for _, b := range d.m_batches {
		if b.count == 0 {
			continue
		}
		dd.Begin(b.prim, b.size)
		for i := b.first; i < b.first+b.count; i++ {
			dd.Vertex(d.m_pos[i], d.m_color[i])
		}
		dd.End()
	}
}
