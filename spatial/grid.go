package spatial

import (
	"math"

	"github.com/gorustyt/polynav/common"
)

// Grid is a uniform xz bucket index. Each cell lists the items whose bounds
// overlap it, so a point lookup only tests a handful of candidates.
type Grid struct {
	Min      common.Vec2
	CellSize float64
	W, H     int
	cells    [][]int
}

// NewGrid covers [min, max] widened by padding on every side. A non-positive
// cell size falls back to 1.
func NewGrid(min, max common.Vec2, cellSize, padding float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Grid{
		Min:      common.Vec2{min[0] - padding, min[1] - padding},
		CellSize: cellSize,
	}
	g.W = max1(int(math.Ceil((max[0]+padding-g.Min[0])/cellSize)))
	g.H = max1(int(math.Ceil((max[1]+padding-g.Min[1])/cellSize)))
	g.cells = make([][]int, g.W*g.H)
	return g
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func (g *Grid) Dims() (w, h int) {
	return g.W, g.H
}

// Cell returns the clamped cell coordinates of (x, z).
func (g *Grid) Cell(x, z float64) (cx, cz int) {
	cx = common.Clamp(int(math.Floor((x-g.Min[0])/g.CellSize)), 0, g.W-1)
	cz = common.Clamp(int(math.Floor((z-g.Min[1])/g.CellSize)), 0, g.H-1)
	return cx, cz
}

func (g *Grid) inside(x, z float64) bool {
	return x >= g.Min[0] && z >= g.Min[1] &&
		x <= g.Min[0]+float64(g.W)*g.CellSize && z <= g.Min[1]+float64(g.H)*g.CellSize
}

// Insert adds idx to every cell overlapped by the box [min, max].
func (g *Grid) Insert(idx int, min, max common.Vec2) {
	x0, z0 := g.Cell(min[0], min[1])
	x1, z1 := g.Cell(max[0], max[1])
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			c := z*g.W + x
			g.cells[c] = append(g.cells[c], idx)
		}
	}
}

// Candidates returns the items bucketed in the cell containing (x, z), or nil
// when the point lies outside the grid. The slice is owned by the grid.
func (g *Grid) Candidates(x, z float64) []int {
	if !g.inside(x, z) {
		return nil
	}
	cx, cz := g.Cell(x, z)
	return g.cells[cz*g.W+cx]
}

// CellItems returns the bucket at the given cell coordinates.
func (g *Grid) CellItems(cx, cz int) []int {
	if cx < 0 || cz < 0 || cx >= g.W || cz >= g.H {
		return nil
	}
	return g.cells[cz*g.W+cx]
}
