package debug_utils

import (
	"testing"

	"github.com/gorustyt/polynav/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayListPath(t *testing.T) {
	dl := NewDuDisplayList(0)
	path := []common.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}
	DuDebugDrawPath(dl, path, ColorWhite, 2, 4)

	assert.Equal(t, 2, dl.Count(DU_DRAW_LINES))
	assert.Equal(t, 3, dl.Count(DU_DRAW_POINTS))
	assert.Equal(t, 0, dl.Count(DU_DRAW_TRIS))
	require.Len(t, dl.Vertices(), 7)
	for _, c := range dl.Colors() {
		assert.Equal(t, ColorWhite, c)
	}

	one := NewDuDisplayList(0)
	DuDebugDrawPath(one, path[:1], ColorWhite, 1, 1)
	assert.Equal(t, 0, one.Count(DU_DRAW_LINES))
	assert.Equal(t, 1, one.Count(DU_DRAW_POINTS))
}

func TestDisplayListReplay(t *testing.T) {
	src := NewDuDisplayList(16)
	src.Begin(DU_DRAW_LINES)
	DuAppendTriEdges(src, common.Vec3{0, 0, 0}, common.Vec3{1, 0, 0}, common.Vec3{0, 0, 1}, ColorGreen)
	src.End()
	DuDebugDrawCross(src, common.Vec3{1, 1, 1}, 0.5, ColorRed, 1)

	dst := NewDuDisplayList(16)
	src.Draw(dst)
	assert.Equal(t, src.Vertices(), dst.Vertices())
	assert.Equal(t, 6, dst.Count(DU_DRAW_LINES))

	src.Clear()
	assert.Empty(t, src.Vertices())
	src.Draw(NewDuDebugDraw())
}

func TestDisplayListMisuse(t *testing.T) {
	dl := NewDuDisplayList(0)
	assert.Panics(t, func() { dl.Vertex(common.Vec3{}, ColorBlack) })
	dl.Begin(DU_DRAW_POINTS)
	assert.Panics(t, func() { dl.Begin(DU_DRAW_POINTS) })
}

func TestRing(t *testing.T) {
	dl := NewDuDisplayList(0)
	dl.Begin(DU_DRAW_LINES)
	DuAppendRing(dl, []common.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 2, ColorBlue)
	dl.End()
	assert.Equal(t, 4, dl.Count(DU_DRAW_LINES))
	assert.Equal(t, common.Vec3{0, 2, 1}, dl.Vertices()[6])
}

func TestColors(t *testing.T) {
	c := DuRGBA(200, 100, 50, 255)
	assert.Equal(t, uint8(200), c.R())
	var back Colorb
	back.FromInt(c.Int())
	assert.Equal(t, c, back)
	assert.Equal(t, DuRGBA(100, 50, 25, 255), DuDarkenCol(c))
	assert.Equal(t, DuRGBA(255, 255, 255, 255), DuLerpCol(ColorBlack, ColorWhite, 255))
	assert.Equal(t, uint8(10), DuTransCol(c, 10).A())
	assert.NotEqual(t, DuIntToCol(1, 255), DuIntToCol(2, 255))
}
