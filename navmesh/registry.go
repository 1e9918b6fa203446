package navmesh

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/gorustyt/polynav/common/logger"
	"github.com/gorustyt/polynav/debug_utils"
	"go.uber.org/zap"
)

// Registry owns the nav meshes of a world, one per agent radius, under opaque
// ids. World sources registered here are shared by every mesh, including
// meshes created later.
type Registry struct {
	base      Config
	meshes    map[uuid.UUID]*NavMesh
	order     []uuid.UUID
	floors    []FloorSource
	providers []ObstacleProvider
}

// NewRegistry uses base for every mesh it creates, overriding only the agent
// radius.
func NewRegistry(base Config) *Registry {
	return &Registry{base: base, meshes: map[uuid.UUID]*NavMesh{}}
}

func (r *Registry) CreateNavMesh(agentRadius float64) (uuid.UUID, error) {
	cfg := r.base
	cfg.AgentRadius = agentRadius
	if err := cfg.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("create nav mesh: %w", err)
	}
	m := NewNavMesh(cfg)
	for _, f := range r.floors {
		m.AddFloorSource(f)
	}
	for _, p := range r.providers {
		m.AddObstacleProvider(p)
	}
	r.meshes[m.ID()] = m
	r.order = append(r.order, m.ID())
	logger.L().Info("nav mesh created", zap.Stringer("id", m.ID()), zap.Float64("agent_radius", agentRadius))
	return m.ID(), nil
}

func (r *Registry) Get(id uuid.UUID) (*NavMesh, error) {
	m, ok := r.meshes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNavMesh, id)
	}
	return m, nil
}

// GetByAgentRadius returns the oldest mesh built for exactly that radius.
func (r *Registry) GetByAgentRadius(radius float64) (*NavMesh, bool) {
	for _, id := range r.order {
		if m := r.meshes[id]; m.AgentRadius() == radius {
			return m, true
		}
	}
	return nil, false
}

func (r *Registry) Remove(id uuid.UUID) error {
	if _, ok := r.meshes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNavMesh, id)
	}
	delete(r.meshes, id)
	r.order = slices.DeleteFunc(r.order, func(o uuid.UUID) bool { return o == id })
	return nil
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Meshes lists the meshes in creation order.
func (r *Registry) Meshes() []*NavMesh {
	out := make([]*NavMesh, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.meshes[id])
	}
	return out
}

func (r *Registry) AddFloorSource(s FloorSource) {
	r.floors = append(r.floors, s)
	for _, m := range r.Meshes() {
		m.AddFloorSource(s)
	}
}

func (r *Registry) AddObstacleProvider(p ObstacleProvider) {
	r.providers = append(r.providers, p)
	for _, m := range r.Meshes() {
		m.AddObstacleProvider(p)
	}
}

func (r *Registry) MarkStaticDirty() {
	for _, m := range r.Meshes() {
		m.MarkStaticDirty()
	}
}

func (r *Registry) MarkDynamicDirty() {
	for _, m := range r.Meshes() {
		m.MarkDynamicDirty()
	}
}

// UpdateAll updates every mesh in creation order and returns how many were
// rebuilt.
func (r *Registry) UpdateAll() int {
	n := 0
	for _, m := range r.Meshes() {
		if m.Update() {
			n++
		}
	}
	return n
}

func (r *Registry) DebugDraw(dd debug_utils.DuDebugDraw) {
	for _, m := range r.Meshes() {
		m.DebugDraw(dd)
	}
}
