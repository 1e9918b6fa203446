package debug_utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gorustyt/polynav/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unit square split along its diagonal
type squareTris struct{}

var squareVerts = [2][3]common.Vec3{
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}},
	{{0, 0, 0}, {1, 0, 1}, {0, 0, 1}},
}

func (squareTris) TriCount() int { return 2 }
func (squareTris) TriVerts(i int) (a, b, c common.Vec3) {
	return squareVerts[i][0], squareVerts[i][1], squareVerts[i][2]
}
func (squareTris) TriNeighbor(i, e int) int {
	switch {
	case i == 0 && e == 2:
		return 1
	case i == 1 && e == 0:
		return 0
	}
	return -1
}

func TestDrawNavTris(t *testing.T) {
	dl := NewDuDisplayList(0)
	DuDebugDrawNavTris(dl, squareTris{}, ColorGreen, 0)
	assert.Equal(t, 2, dl.Count(DU_DRAW_TRIS))
	assert.Equal(t, 4, dl.Count(DU_DRAW_LINES))
	assert.Equal(t, 0, dl.Count(DU_DRAW_POINTS))
	assert.Equal(t, DuTransCol(ColorGreen, 64), dl.Colors()[0])

	dl.Clear()
	DuDebugDrawNavTris(dl, squareTris{}, ColorGreen, DU_DRAWNAVMESH_INNER_EDGES|DU_DRAWNAVMESH_VERTS)
	assert.Equal(t, 5, dl.Count(DU_DRAW_LINES))
	assert.Equal(t, 6, dl.Count(DU_DRAW_POINTS))

	dl.Clear()
	DuDebugDrawNavTriList(dl, squareTris{}, []int{1, 5, -1}, ColorRed)
	assert.Equal(t, 1, dl.Count(DU_DRAW_TRIS))

	assert.NotPanics(t, func() { DuDebugDrawNavTris(nil, squareTris{}, ColorGreen, 0) })
}

func TestDumpNavTrisToObj(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DuDumpNavTrisToObj(squareTris{}, &buf))
	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "\nv "))
	assert.Contains(t, out, "f 1 2 3\n")
	assert.Contains(t, out, "f 1 3 4\n")

	assert.Error(t, DuDumpNavTrisToObj(squareTris{}, nil))
}
