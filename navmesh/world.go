package navmesh

import (
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
)

// Floor is a walkable planar polygon. The height of the whole floor is taken
// from its first point.
type Floor struct {
	Points []common.Vec3
}

// RectFloor is an axis aligned floor quad at height y.
func RectFloor(x0, z0, x1, z1, y float64) Floor {
	return Floor{Points: []common.Vec3{{x0, y, z0}, {x1, y, z0}, {x1, y, z1}, {x0, y, z1}}}
}

type FloorSource interface {
	Floors() []Floor
}

type ObstacleKind int

const (
	ObstacleStatic ObstacleKind = iota
	ObstacleDynamic
)

func (k ObstacleKind) String() string {
	if k == ObstacleDynamic {
		return "dynamic"
	}
	return "static"
}

// Obstacle is anything that blocks walking, given as an oriented box.
// Static obstacles are applied on static rebuilds, dynamic ones on every
// dynamic rebuild.
type Obstacle struct {
	Box  geom.OBB
	Kind ObstacleKind
}

type ObstacleProvider interface {
	Obstacles() []Obstacle
}

type FloorList []Floor

func (l FloorList) Floors() []Floor { return l }

type ObstacleList []Obstacle

func (l ObstacleList) Obstacles() []Obstacle { return l }
