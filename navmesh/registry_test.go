package navmesh

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gorustyt/polynav/debug_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	r.AddFloorSource(FloorList{RectFloor(0, 0, 10, 10, 0)})

	small, err := r.CreateNavMesh(0.2)
	require.NoError(t, err)
	// sources added after creation reach existing meshes too
	r.AddObstacleProvider(ObstacleList{centerBox(ObstacleStatic)})
	large, err := r.CreateNavMesh(0.8)
	require.NoError(t, err)
	assert.NotEqual(t, small, large)
	assert.Equal(t, 2, r.Len())

	_, err = r.CreateNavMesh(-1)
	assert.ErrorIs(t, err, ErrInvalidAgentRadius)
	assert.Equal(t, 2, r.Len())

	assert.Equal(t, 2, r.UpdateAll())
	assert.Equal(t, 0, r.UpdateAll())

	ms, err := r.Get(small)
	require.NoError(t, err)
	ml, err := r.Get(large)
	require.NoError(t, err)
	assert.Equal(t, 0.2, ms.AgentRadius())
	assert.Greater(t, meshArea(ms), meshArea(ml), "larger agents get less room")
	level, ok := ml.Level(0)
	require.True(t, ok)
	assert.Len(t, level.StaticObstaclePaths, 1)

	got, ok := r.GetByAgentRadius(0.8)
	require.True(t, ok)
	assert.Same(t, ml, got)
	_, ok = r.GetByAgentRadius(0.5)
	assert.False(t, ok)
	assert.Equal(t, []*NavMesh{ms, ml}, r.Meshes())

	r.MarkDynamicDirty()
	assert.Equal(t, StateDynamicDirty, ms.State())
	r.MarkStaticDirty()
	assert.Equal(t, StateStaticDirty, ml.State())
	assert.Equal(t, 2, r.UpdateAll())

	dl := debug_utils.NewDuDisplayList(0)
	r.DebugDraw(dl)
	assert.Equal(t, 3*(len(ms.Tris())+len(ml.Tris())), dl.Count(debug_utils.DU_DRAW_LINES))

	require.NoError(t, r.Remove(small))
	assert.Equal(t, 1, r.Len())
	_, err = r.Get(small)
	assert.ErrorIs(t, err, ErrUnknownNavMesh)
	assert.ErrorIs(t, r.Remove(small), ErrUnknownNavMesh)
	_, err = r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrUnknownNavMesh)
}
