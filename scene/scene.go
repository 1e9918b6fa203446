package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
	"github.com/gorustyt/polynav/navmesh"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScene = errors.New("scene: invalid scene")
	ErrNoSuchDoor   = errors.New("scene: no such door")
)

const DefaultDoorOpenAngle = 90.0

// Floor is either an explicit outline or an axis aligned rect [x0, z0, x1, z1]
// at height Y.
type Floor struct {
	Points []common.Vec3 `yaml:"points"`
	Rect   []float64     `yaml:"rect"`
	Y      float64       `yaml:"y"`
}

// Box is a piece of furniture. Yaw is in degrees about the up axis.
type Box struct {
	Center      common.Vec3 `yaml:"center"`
	HalfExtents common.Vec3 `yaml:"half_extents"`
	Yaw         float64     `yaml:"yaw"`
	Dynamic     bool        `yaml:"dynamic"`
}

func (b Box) OBB() geom.OBB {
	return geom.NewOBBYaw(b.Center, b.HalfExtents, mgl64.DegToRad(b.Yaw))
}

// Door is a slab hinged on one vertical edge. Closed, the slab runs from the
// hinge along the local x axis rotated by Yaw; open, it swings a further
// OpenAngle degrees around the hinge.
type Door struct {
	Hinge     common.Vec3 `yaml:"hinge"`
	Width     float64     `yaml:"width"`
	Thickness float64     `yaml:"thickness"`
	Height    float64     `yaml:"height"`
	Yaw       float64     `yaml:"yaw"`
	OpenAngle float64     `yaml:"open_angle"`
	Open      bool        `yaml:"open"`
}

// Angle is the current slab yaw in degrees.
func (d *Door) Angle() float64 {
	if d.Open {
		return d.Yaw + d.OpenAngle
	}
	return d.Yaw
}

func (d *Door) OBB() geom.OBB {
	rot := mgl64.QuatRotate(mgl64.DegToRad(d.Angle()), common.Vec3{0, 1, 0})
	center := d.Hinge.Add(rot.Rotate(common.Vec3{d.Width / 2, d.Height / 2, 0}))
	return geom.NewOBB(center, common.Vec3{d.Width / 2, d.Height / 2, d.Thickness / 2}, rot)
}

// Scene is a static world description loaded from YAML. It feeds floors and
// obstacles to nav meshes; doors are dynamic obstacles.
type Scene struct {
	FloorDefs []Floor `yaml:"floors"`
	Boxes     []Box   `yaml:"boxes"`
	Doors     []*Door `yaml:"doors"`
}

func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for _, d := range s.Doors {
		if d != nil && d.OpenAngle == 0 {
			d.OpenAngle = DefaultDoorOpenAngle
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

func (s *Scene) Validate() error {
	for i, f := range s.FloorDefs {
		switch {
		case len(f.Rect) > 0 && len(f.Points) > 0:
			return fmt.Errorf("%w: floor %d has both points and rect", ErrInvalidScene, i)
		case len(f.Rect) > 0 && len(f.Rect) != 4:
			return fmt.Errorf("%w: floor %d rect needs 4 values, got %d", ErrInvalidScene, i, len(f.Rect))
		case len(f.Rect) == 0 && len(f.Points) < 3:
			return fmt.Errorf("%w: floor %d has %d points", ErrInvalidScene, i, len(f.Points))
		}
	}
	for i, b := range s.Boxes {
		if b.HalfExtents[0] < 0 || b.HalfExtents[1] < 0 || b.HalfExtents[2] < 0 {
			return fmt.Errorf("%w: box %d has negative extents", ErrInvalidScene, i)
		}
	}
	for i, d := range s.Doors {
		if d == nil || d.Width <= 0 || d.Height <= 0 || d.Thickness < 0 {
			return fmt.Errorf("%w: door %d needs a positive width and height", ErrInvalidScene, i)
		}
	}
	return nil
}

func (s *Scene) Floors() []navmesh.Floor {
	out := make([]navmesh.Floor, 0, len(s.FloorDefs))
	for _, f := range s.FloorDefs {
		if len(f.Rect) == 4 {
			out = append(out, navmesh.RectFloor(f.Rect[0], f.Rect[1], f.Rect[2], f.Rect[3], f.Y))
			continue
		}
		out = append(out, navmesh.Floor{Points: f.Points})
	}
	return out
}

func (s *Scene) Obstacles() []navmesh.Obstacle {
	out := make([]navmesh.Obstacle, 0, len(s.Boxes)+len(s.Doors))
	for _, b := range s.Boxes {
		kind := navmesh.ObstacleStatic
		if b.Dynamic {
			kind = navmesh.ObstacleDynamic
		}
		out = append(out, navmesh.Obstacle{Box: b.OBB(), Kind: kind})
	}
	for _, d := range s.Doors {
		out = append(out, navmesh.Obstacle{Box: d.OBB(), Kind: navmesh.ObstacleDynamic})
	}
	return out
}

// ToggleDoor flips door i and returns its new state. Nav meshes fed by this
// scene need MarkDynamicDirty afterwards.
func (s *Scene) ToggleDoor(i int) (bool, error) {
	if i < 0 || i >= len(s.Doors) {
		return false, fmt.Errorf("%w: %d of %d", ErrNoSuchDoor, i, len(s.Doors))
	}
	d := s.Doors[i]
	d.Open = !d.Open
	return d.Open, nil
}
