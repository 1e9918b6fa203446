package common

import (
	"cmp"
	"math"
)

// / Returns the square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// / Returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// / Projects a world position onto the horizontal plane. [(x, z)]
func ToXZ(p Vec3) Vec2 {
	return Vec2{p[0], p[2]}
}

// / Lifts a horizontal position back to world space at height y.
func FromXZ(p Vec2, y float64) Vec3 {
	return Vec3{p[0], y, p[1]}
}

// / Derives the signed xz-plane area of a triangle, doubled.
// / Positive when c lies counter clockwise of a->b in (x, z) coordinates.
func TriArea2D(a, b, c Vec2) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// / Same as TriArea2D but on world positions, ignoring y.
func TriAreaXZ(a, b, c Vec3) float64 {
	return TriArea2D(ToXZ(a), ToXZ(b), ToXZ(c))
}

func Cross2D(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

func Vdist2DSqr(a, b Vec2) float64 {
	return Sqr(b[0]-a[0]) + Sqr(b[1]-a[1])
}

func VdistXZ(a, b Vec3) float64 {
	return math.Sqrt(Vdist2DSqr(ToXZ(a), ToXZ(b)))
}

func VdistSqr(a, b Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// / Rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// / Rounds every component of p to the given number of decimal places.
func RoundVec3(p Vec3, decimals int) Vec3 {
	return Vec3{RoundTo(p[0], decimals), RoundTo(p[1], decimals), RoundTo(p[2], decimals)}
}

func Vmin(mn, v Vec3) Vec3 {
	return Vec3{min(mn[0], v[0]), min(mn[1], v[1]), min(mn[2], v[2])}
}

func Vmax(mx, v Vec3) Vec3 {
	return Vec3{max(mx[0], v[0]), max(mx[1], v[1]), max(mx[2], v[2])}
}

// / Total xz length of a polyline.
func PathLengthXZ(path []Vec3) float64 {
	var l float64
	for i := 1; i < len(path); i++ {
		l += VdistXZ(path[i-1], path[i])
	}
	return l
}
