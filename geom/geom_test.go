package geom

import (
	"math"
	"testing"

	"github.com/gorustyt/polynav/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, z0, x1, z1 float64) []common.Vec2 {
	return []common.Vec2{{x0, z0}, {x1, z0}, {x1, z1}, {x0, z1}}
}

func TestConvexHull2D(t *testing.T) {
	pts := []common.Vec2{{0, 0}, {2, 0}, {1, 1}, {2, 2}, {0, 2}, {1, 0}, {1, 2}}
	hull := ConvexHull2D(pts)
	require.Len(t, hull, 4, "interior and collinear points are dropped")
	assert.Greater(t, SignedArea(hull), 0.0, "hull is counter clockwise")
	assert.InDelta(t, 4.0, SignedArea(hull), 1e-12)

	// input is not reordered
	assert.Equal(t, common.Vec2{0, 0}, pts[0])
	assert.Equal(t, common.Vec2{2, 0}, pts[1])
}

func TestConvexHull2DDegenerate(t *testing.T) {
	line := []common.Vec2{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	assert.Less(t, len(ConvexHull2D(line)), 3)

	tri := []common.Vec2{{0, 0}, {1, 0}, {0, 1}}
	assert.Equal(t, tri, ConvexHull2D(tri))
}

func TestSignedArea(t *testing.T) {
	ccw := square(0, 0, 2, 3)
	assert.InDelta(t, 6.0, SignedArea(ccw), 1e-12)
	cw := []common.Vec2{ccw[3], ccw[2], ccw[1], ccw[0]}
	assert.InDelta(t, -6.0, SignedArea(cw), 1e-12)
	assert.Equal(t, 0.0, SignedArea(ccw[:2]))
}

func TestPointInPolygon(t *testing.T) {
	// L shaped ring
	ring := []common.Vec2{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}}
	assert.True(t, PointInPolygon(common.Vec2{0.5, 3}, ring))
	assert.True(t, PointInPolygon(common.Vec2{3, 0.5}, ring))
	assert.False(t, PointInPolygon(common.Vec2{3, 3}, ring))
	assert.False(t, PointInPolygon(common.Vec2{-1, 0.5}, ring))

	reversed := make([]common.Vec2, len(ring))
	for i := range ring {
		reversed[i] = ring[len(ring)-1-i]
	}
	assert.True(t, PointInPolygon(common.Vec2{0.5, 3}, reversed), "orientation does not matter")
	assert.Equal(t, -1, WindingNumber(common.Vec2{0.5, 3}, reversed))
}

func TestPointInTriXZ(t *testing.T) {
	a := common.Vec3{0, 0, 0}
	b := common.Vec3{2, 0, 0}
	c := common.Vec3{0, 5, 2}
	assert.True(t, PointInTriXZ(a, b, c, common.Vec3{0.5, 100, 0.5}, 1e-4), "height is ignored")
	assert.True(t, PointInTriXZ(a, b, c, common.Vec3{1, 0, 0}, 1e-4), "edge counts as inside")
	assert.False(t, PointInTriXZ(a, b, c, common.Vec3{1.5, 0, 1.5}, 1e-4))
	assert.False(t, PointInTriXZ(a, a, a, a, 1e-4), "degenerate triangle contains nothing")
}

func TestBarycentric(t *testing.T) {
	a := common.Vec3{0, 0, 0}
	b := common.Vec3{2, 2, 0}
	c := common.Vec3{0, 4, 2}
	u, v, w, ok := Barycentric(a, b, c, common.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 0.5, u, 1e-12)
	assert.InDelta(t, 0.5, v, 1e-12)
	assert.InDelta(t, 0.0, w, 1e-12)
}

func TestExtractFootprintAxisAligned(t *testing.T) {
	box := NewOBB(common.Vec3{5, 0.5, 5}, common.Vec3{1, 0.5, 1}, common.Quat{W: 1})
	fp, ok := ExtractFootprint(box, 0.02)
	require.True(t, ok)
	require.Len(t, fp.Ring, 4)
	mn, mx := RingBounds(fp.Ring)
	assert.InDelta(t, 3.98, mn[0], 1e-9)
	assert.InDelta(t, 3.98, mn[1], 1e-9)
	assert.InDelta(t, 6.02, mx[0], 1e-9)
	assert.InDelta(t, 6.02, mx[1], 1e-9)
	assert.InDelta(t, -0.02, fp.MinY, 1e-9)
	assert.InDelta(t, 1.02, fp.MaxY, 1e-9)

	assert.True(t, fp.SpansHeight(0, 0.05))
	assert.True(t, fp.SpansHeight(1.05, 0.05))
	assert.False(t, fp.SpansHeight(3, 0.05))
}

func TestExtractFootprintRotated(t *testing.T) {
	box := NewOBBYaw(common.Vec3{0, 1, 0}, common.Vec3{1, 1, 1}, math.Pi/4)
	fp, ok := ExtractFootprint(box, 0)
	require.True(t, ok)
	require.Len(t, fp.Ring, 4)
	assert.InDelta(t, 4.0, SignedArea(fp.Ring), 1e-9, "rotation keeps the area")
	mn, mx := RingBounds(fp.Ring)
	assert.InDelta(t, -math.Sqrt2, mn[0], 1e-9)
	assert.InDelta(t, math.Sqrt2, mx[0], 1e-9)
	assert.InDelta(t, math.Sqrt2, mx[1], 1e-9)
	assert.True(t, box.Center().ApproxEqual(common.Vec3{0, 1, 0}))
}

func TestExtractFootprintDegenerate(t *testing.T) {
	// a zero size box seen from above collapses to a point
	box := NewOBB(common.Vec3{1, 0, 1}, common.Vec3{0, 1, 0}, common.Quat{W: 1})
	_, ok := ExtractFootprint(box, 0)
	assert.False(t, ok)
}
