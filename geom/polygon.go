package geom

import (
	"math"
	"slices"

	"github.com/gorustyt/polynav/common"
)

// ConvexHull2D computes the hull with the monotone chain method. The result is
// counter clockwise with collinear points removed. Three or fewer points are
// returned unchanged.
func ConvexHull2D(points []common.Vec2) []common.Vec2 {
	n := len(points)
	if n <= 3 {
		return slices.Clone(points)
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b common.Vec2) int {
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		if a[1] < b[1] {
			return -1
		}
		if a[1] > b[1] {
			return 1
		}
		return 0
	})

	hull := make([]common.Vec2, 0, 2*n)
	// lower
	for i := 0; i < n; i++ {
		for len(hull) >= 2 && common.TriArea2D(hull[len(hull)-2], hull[len(hull)-1], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pts[i])
	}
	// upper
	t := len(hull) + 1
	for i := n - 1; i > 0; i-- {
		for len(hull) >= t && common.TriArea2D(hull[len(hull)-2], hull[len(hull)-1], pts[i-1]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pts[i-1])
	}
	if len(hull) > 1 {
		hull = hull[:len(hull)-1]
	}
	return hull
}

// SignedArea is the shoelace area of a ring, positive when counter clockwise.
func SignedArea(ring []common.Vec2) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		j := common.Next(i, n)
		a += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return a * 0.5
}

func RingBounds(ring []common.Vec2) (mn, mx common.Vec2) {
	mn = common.Vec2{math.MaxFloat64, math.MaxFloat64}
	mx = common.Vec2{-math.MaxFloat64, -math.MaxFloat64}
	for _, p := range ring {
		mn[0] = min(mn[0], p[0])
		mn[1] = min(mn[1], p[1])
		mx[0] = max(mx[0], p[0])
		mx[1] = max(mx[1], p[1])
	}
	return mn, mx
}

// BoundsContain reports whether p lies inside the closed box [mn, mx].
func BoundsContain(mn, mx, p common.Vec2) bool {
	return p[0] >= mn[0] && p[0] <= mx[0] && p[1] >= mn[1] && p[1] <= mx[1]
}

// WindingNumber of ring around p. Zero means outside.
func WindingNumber(p common.Vec2, ring []common.Vec2) int {
	wn := 0
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[common.Next(i, n)]
		if a[1] <= p[1] {
			if b[1] > p[1] && common.TriArea2D(a, b, p) > 0 {
				wn++
			}
		} else if b[1] <= p[1] && common.TriArea2D(a, b, p) < 0 {
			wn--
		}
	}
	return wn
}

func PointInPolygon(p common.Vec2, ring []common.Vec2) bool {
	return WindingNumber(p, ring) != 0
}

// PointInTriXZ is a barycentric containment test on the xz plane. Points on
// an edge, within eps, count as inside.
func PointInTriXZ(a, b, c, p common.Vec3, eps float64) bool {
	pa := common.ToXZ(a)
	v0 := common.ToXZ(b).Sub(pa)
	v1 := common.ToXZ(c).Sub(pa)
	v2 := common.ToXZ(p).Sub(pa)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	v := (d11*d20 - d01*d21) * inv
	w := (d00*d21 - d01*d20) * inv
	u := 1 - v - w
	return u >= -eps && v >= -eps && w >= -eps
}

// Barycentric returns the weights of p against triangle abc on the xz plane.
func Barycentric(a, b, c, p common.Vec3) (u, v, w float64, ok bool) {
	pa := common.ToXZ(a)
	v0 := common.ToXZ(b).Sub(pa)
	v1 := common.ToXZ(c).Sub(pa)
	v2 := common.ToXZ(p).Sub(pa)
	denom := common.Cross2D(v0, v1)
	if denom == 0 {
		return 0, 0, 0, false
	}
	v = common.Cross2D(v2, v1) / denom
	w = common.Cross2D(v0, v2) / denom
	return 1 - v - w, v, w, true
}
