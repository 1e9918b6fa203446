package scene

import (
	"testing"

	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
	"github.com/gorustyt/polynav/navmesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTwoRooms(t *testing.T) *Scene {
	t.Helper()
	s, err := Load("testdata/two_rooms.yaml")
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	s := loadTwoRooms(t)
	require.Len(t, s.FloorDefs, 3)
	require.Len(t, s.Boxes, 1)
	require.Len(t, s.Doors, 1)
	assert.Equal(t, DefaultDoorOpenAngle, s.Doors[0].OpenAngle)
	assert.False(t, s.Doors[0].Open)

	floors := s.Floors()
	require.Len(t, floors, 3)
	assert.Equal(t, navmesh.RectFloor(5, 0, 9, 4, 0), floors[1])
	assert.Equal(t, common.Vec3{3.5, 0, 1.5}, floors[2].Points[0])

	obs := s.Obstacles()
	require.Len(t, obs, 2)
	assert.Equal(t, navmesh.ObstacleStatic, obs[0].Kind)
	assert.Equal(t, navmesh.ObstacleDynamic, obs[1].Kind)

	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"two points":     "floors:\n  - points: [[0, 0, 0], [1, 0, 0]]\n",
		"short rect":     "floors:\n  - rect: [0, 0, 1]\n",
		"points or rect": "floors:\n  - rect: [0, 0, 1, 1]\n    points: [[0, 0, 0], [1, 0, 0], [1, 0, 1]]\n",
		"negative box":   "boxes:\n  - half_extents: [-1, 1, 1]\n",
		"flat door":      "doors:\n  - width: 1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}

	_, err := Parse([]byte("floors: {"))
	assert.Error(t, err)
}

func TestDoorPose(t *testing.T) {
	d := &Door{Hinge: common.Vec3{4.5, 0, 1.2}, Width: 1.6, Thickness: 0.1, Height: 2, Yaw: -90, OpenAngle: 90}

	fp, ok := geom.ExtractFootprint(d.OBB(), 0)
	require.True(t, ok)
	mn, mx := geom.RingBounds(fp.Ring)
	assert.InDelta(t, 4.45, mn[0], 1e-9)
	assert.InDelta(t, 4.55, mx[0], 1e-9)
	assert.InDelta(t, 1.2, mn[1], 1e-9)
	assert.InDelta(t, 2.8, mx[1], 1e-9)
	assert.InDelta(t, 0.0, fp.MinY, 1e-9)
	assert.InDelta(t, 2.0, fp.MaxY, 1e-9)

	d.Open = true
	assert.Equal(t, 0.0, d.Angle())
	fp, ok = geom.ExtractFootprint(d.OBB(), 0)
	require.True(t, ok)
	mn, mx = geom.RingBounds(fp.Ring)
	assert.InDelta(t, 4.5, mn[0], 1e-9)
	assert.InDelta(t, 6.1, mx[0], 1e-9)
	assert.InDelta(t, 1.15, mn[1], 1e-9)
	assert.InDelta(t, 1.25, mx[1], 1e-9)
}

func TestToggleDoorReroutes(t *testing.T) {
	s := loadTwoRooms(t)
	r := navmesh.NewRegistry(navmesh.DefaultConfig())
	r.AddFloorSource(s)
	r.AddObstacleProvider(s)
	id, err := r.CreateNavMesh(0.1)
	require.NoError(t, err)
	m, err := r.Get(id)
	require.NoError(t, err)
	require.Equal(t, 1, r.UpdateAll())

	start := common.Vec3{2, 0, 2}
	goal := common.Vec3{7, 0, 2}
	assert.Empty(t, m.FindPath(start, goal))

	open, err := s.ToggleDoor(0)
	require.NoError(t, err)
	assert.True(t, open)
	r.MarkDynamicDirty()
	require.Equal(t, 1, r.UpdateAll())
	path := m.PullPath(m.FindPath(start, goal))
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])

	_, err = s.ToggleDoor(3)
	assert.ErrorIs(t, err, ErrNoSuchDoor)
}
