package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorustyt/polynav/common"
)

// OBB is an oriented bounding box given as local bounds plus a world transform.
type OBB struct {
	LocalMin common.Vec3
	LocalMax common.Vec3
	World    common.Mat4
}

// NewOBB builds a box centered at center, rotated by rot.
func NewOBB(center, halfExtents common.Vec3, rot common.Quat) OBB {
	world := mgl64.Translate3D(center[0], center[1], center[2]).Mul4(rot.Normalize().Mat4())
	return OBB{
		LocalMin: halfExtents.Mul(-1),
		LocalMax: halfExtents,
		World:    world,
	}
}

// NewOBBYaw builds a box rotated about the world up axis.
func NewOBBYaw(center, halfExtents common.Vec3, yaw float64) OBB {
	return NewOBB(center, halfExtents, mgl64.QuatRotate(yaw, common.Vec3{0, 1, 0}))
}

func NewOBBFromMinMax(localMin, localMax common.Vec3, world common.Mat4) OBB {
	return OBB{LocalMin: localMin, LocalMax: localMax, World: world}
}

// Corners returns the 8 world space corners of the box grown by inflate in local space.
func (o OBB) Corners(inflate float64) [8]common.Vec3 {
	d := common.Vec3{inflate, inflate, inflate}
	mn := o.LocalMin.Sub(d)
	mx := o.LocalMax.Add(d)
	local := [8]common.Vec3{
		{mn[0], mn[1], mn[2]}, {mx[0], mn[1], mn[2]},
		{mn[0], mx[1], mn[2]}, {mx[0], mx[1], mn[2]},
		{mn[0], mn[1], mx[2]}, {mx[0], mn[1], mx[2]},
		{mn[0], mx[1], mx[2]}, {mx[0], mx[1], mx[2]},
	}
	var out [8]common.Vec3
	for i, c := range local {
		out[i] = o.World.Mul4x1(c.Vec4(1)).Vec3()
	}
	return out
}

func (o OBB) Center() common.Vec3 {
	c := o.LocalMin.Add(o.LocalMax).Mul(0.5)
	return o.World.Mul4x1(c.Vec4(1)).Vec3()
}

// Footprint is the closed convex xz outline of an obstacle and the vertical
// range it occupies.
type Footprint struct {
	Ring []common.Vec2
	MinY float64
	MaxY float64
}

// SpansHeight reports whether a floor at height y cuts through the footprint's
// vertical extent, widened by buffer.
func (f Footprint) SpansHeight(y, buffer float64) bool {
	return y >= f.MinY-buffer && y <= f.MaxY+buffer
}

// ExtractFootprint projects the inflated box onto the xz plane. It reports
// false for boxes whose hull degenerates to fewer than 3 points.
func ExtractFootprint(o OBB, inflate float64) (Footprint, bool) {
	corners := o.Corners(inflate)
	fp := Footprint{MinY: math.MaxFloat64, MaxY: -math.MaxFloat64}
	xz := make([]common.Vec2, 0, len(corners))
	for _, c := range corners {
		fp.MinY = min(fp.MinY, c[1])
		fp.MaxY = max(fp.MaxY, c[1])
		xz = append(xz, common.ToXZ(c))
	}
	fp.Ring = ConvexHull2D(xz)
	if len(fp.Ring) < 3 {
		return Footprint{}, false
	}
	return fp, true
}
