package navmesh

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/common/logger"
	"github.com/gorustyt/polynav/geom"
	"github.com/gorustyt/polynav/polybool"
	"github.com/gorustyt/polynav/spatial"
	"github.com/gorustyt/polynav/triangulate"
	"go.uber.org/zap"
)

type footprintObstacle struct {
	fp   geom.Footprint
	kind ObstacleKind
}

// NavMesh turns floors and obstacles into a triangle graph for one agent
// radius. It is not safe for concurrent use: queries and rebuilds share
// instance owned scratch buffers.
type NavMesh struct {
	id  uuid.UUID
	cfg Config
	log *zap.Logger

	engine *polybool.Engine
	tess   *triangulate.Triangulator

	floorSources []FloorSource
	providers    []ObstacleProvider
	footprints   []footprintObstacle

	staticDirty  bool
	dynamicDirty bool

	levels    map[int]*LevelInfo
	levelKeys []int // sorted

	tris      []NavTri
	boundsMin common.Vec3
	boundsMax common.Vec3
	grid      *spatial.Grid
	stats     AdjacencyStats

	edgeScratch []EdgeRef
	nodes       []searchNode
	open        common.NodeQueue[*searchNode]
}

// NewNavMesh creates an empty mesh. Both dirty flags start set so the first
// Update builds everything. The config is assumed validated.
func NewNavMesh(cfg Config) *NavMesh {
	id := uuid.New()
	m := &NavMesh{
		id:           id,
		cfg:          cfg,
		log:          logger.L().With(zap.Stringer("navmesh", id)),
		engine:       polybool.NewEngine(cfg.Precision),
		tess:         triangulate.NewTriangulator(),
		staticDirty:  true,
		dynamicDirty: true,
		levels:       map[int]*LevelInfo{},
	}
	m.open = common.NewNodeQueue(func(a, b *searchNode) bool { return a.f < b.f })
	return m
}

func (m *NavMesh) ID() uuid.UUID        { return m.id }
func (m *NavMesh) Config() Config       { return m.cfg }
func (m *NavMesh) AgentRadius() float64 { return m.cfg.AgentRadius }

func (m *NavMesh) AddFloorSource(s FloorSource) {
	m.floorSources = append(m.floorSources, s)
	m.staticDirty = true
}

func (m *NavMesh) AddObstacleProvider(p ObstacleProvider) {
	m.providers = append(m.providers, p)
	m.staticDirty = true
	m.dynamicDirty = true
}

// AddObstacle registers a footprint directly, bypassing box extraction.
func (m *NavMesh) AddObstacle(fp geom.Footprint, kind ObstacleKind) {
	m.footprints = append(m.footprints, footprintObstacle{fp: fp, kind: kind})
	m.markDirty(kind)
}

// ClearObstacles drops every footprint added with AddObstacle.
func (m *NavMesh) ClearObstacles() {
	if len(m.footprints) == 0 {
		return
	}
	m.footprints = m.footprints[:0]
	m.staticDirty = true
}

func (m *NavMesh) markDirty(kind ObstacleKind) {
	if kind == ObstacleDynamic {
		m.dynamicDirty = true
	} else {
		m.staticDirty = true
	}
}

func (m *NavMesh) MarkStaticDirty()  { m.staticDirty = true }
func (m *NavMesh) MarkDynamicDirty() { m.dynamicDirty = true }

func (m *NavMesh) State() State {
	switch {
	case m.staticDirty:
		return StateStaticDirty
	case m.dynamicDirty:
		return StateDynamicDirty
	}
	return StateClean
}

// Update rebuilds whatever is dirty and reports whether the triangle set was
// replaced. A static rebuild recreates the levels, so dynamic obstacles are
// always reapplied after it.
func (m *NavMesh) Update() bool {
	if !m.staticDirty && !m.dynamicDirty {
		return false
	}
	start := time.Now()
	if m.staticDirty {
		m.UpdateStaticPaths()
	}
	m.UpdateDynamicPaths()
	m.rebuildTris()
	m.staticDirty = false
	m.dynamicDirty = false
	m.log.Debug("navmesh rebuilt",
		zap.Int("levels", len(m.levelKeys)),
		zap.Int("tris", len(m.tris)),
		zap.Int("boundary_edges", m.stats.Boundary),
		zap.Duration("took", time.Since(start)))
	return true
}

func (m *NavMesh) heightKey(y float64) int {
	return int(math.Round(y * m.cfg.HeightKeyScale))
}

// UpdateStaticPaths regathers floors and static obstacles and recomputes
// every level's static solution. Levels are recreated from the floors.
func (m *NavMesh) UpdateStaticPaths() {
	m.levels = map[int]*LevelInfo{}
	m.levelKeys = m.levelKeys[:0]
	for _, src := range m.floorSources {
		for _, f := range src.Floors() {
			if len(f.Points) < 3 {
				continue
			}
			y := f.Points[0][1]
			key := m.heightKey(y)
			level, ok := m.levels[key]
			if !ok {
				level = &LevelInfo{Key: key, Y: y}
				m.levels[key] = level
				m.levelKeys = append(m.levelKeys, key)
			}
			ring := make(polybool.Path, len(f.Points))
			for i, p := range f.Points {
				ring[i] = common.ToXZ(p)
			}
			level.FloorPaths = append(level.FloorPaths, ring)
		}
	}
	slices.Sort(m.levelKeys)

	m.attachFootprints(ObstacleStatic, func(l *LevelInfo, p polybool.Path) {
		l.StaticObstaclePaths = append(l.StaticObstaclePaths, p)
	})

	for _, key := range m.levelKeys {
		level := m.levels[key]
		floor := m.engine.Union(level.FloorPaths)
		if len(level.StaticObstaclePaths) > 0 {
			level.SolutionStatic = m.engine.Difference(floor, m.engine.Union(level.StaticObstaclePaths))
		} else {
			level.SolutionStatic = floor
		}
	}
}

// UpdateDynamicPaths recomputes the dynamic solution of every level on top
// of the current static one.
func (m *NavMesh) UpdateDynamicPaths() {
	for _, key := range m.levelKeys {
		m.levels[key].DynamicObstaclePaths = nil
	}
	m.attachFootprints(ObstacleDynamic, func(l *LevelInfo, p polybool.Path) {
		l.DynamicObstaclePaths = append(l.DynamicObstaclePaths, p)
	})
	for _, key := range m.levelKeys {
		level := m.levels[key]
		if len(level.DynamicObstaclePaths) > 0 {
			level.SolutionDynamic = m.engine.Difference(level.SolutionStatic, m.engine.Union(level.DynamicObstaclePaths))
		} else {
			level.SolutionDynamic = level.SolutionStatic.Clone()
		}
	}
}

// attachFootprints adds each obstacle of the given kind to every level whose
// height it spans.
func (m *NavMesh) attachFootprints(kind ObstacleKind, add func(l *LevelInfo, p polybool.Path)) {
	attach := func(fp geom.Footprint) {
		for _, key := range m.levelKeys {
			level := m.levels[key]
			if fp.SpansHeight(level.Y, m.cfg.LevelYBuffer) {
				add(level, slices.Clone(fp.Ring))
			}
		}
	}
	for _, p := range m.providers {
		for _, o := range p.Obstacles() {
			if o.Kind != kind {
				continue
			}
			fp, ok := geom.ExtractFootprint(o.Box, m.cfg.ObstacleInflate)
			if !ok {
				m.log.Debug("skip degenerate obstacle", zap.Stringer("kind", kind))
				continue
			}
			attach(fp)
		}
	}
	for _, f := range m.footprints {
		if f.kind == kind && len(f.fp.Ring) >= 3 {
			attach(f.fp)
		}
	}
}

func (m *NavMesh) rebuildTris() {
	m.tris = m.tris[:0]
	m.boundsMin = common.Vec3{}
	m.boundsMax = common.Vec3{}
	for _, key := range m.levelKeys {
		level := m.levels[key]
		solution := level.SolutionDynamic
		if m.cfg.AgentRadius > 0 {
			solution = m.engine.Deflate(solution, m.cfg.AgentRadius, m.cfg.MiterLimit)
		}
		level.SolutionFinal = solution
		if len(solution) == 0 {
			m.log.Debug("level has no walkable area", zap.Float64("y", level.Y))
			continue
		}

		rings := make([][]common.Vec2, len(solution))
		for i, p := range solution {
			rings[i] = p
		}
		for _, poly := range triangulate.BuildPolygons(rings) {
			verts, indices, err := m.tess.Triangulate(poly)
			if err != nil {
				m.log.Warn("triangulation failed", zap.Float64("y", level.Y), zap.Error(err))
				continue
			}
			for i := 0; i+2 < len(indices); i += 3 {
				m.AddTri(
					common.FromXZ(verts[indices[i]], level.Y),
					common.FromXZ(verts[indices[i+1]], level.Y),
					common.FromXZ(verts[indices[i+2]], level.Y),
				)
			}
		}
	}
	m.BuildNeighbors()
	m.BuildGrid()
}

// AddTri rounds the vertices to the mesh precision, rejects triangles whose
// xz area falls below MinTriArea and stores the rest counter clockwise.
func (m *NavMesh) AddTri(a, b, c common.Vec3) bool {
	a = common.RoundVec3(a, m.cfg.Precision)
	b = common.RoundVec3(b, m.cfg.Precision)
	c = common.RoundVec3(c, m.cfg.Precision)
	area2 := common.TriAreaXZ(a, b, c)
	if math.Abs(area2)*0.5 < m.cfg.MinTriArea || area2 == 0 {
		return false
	}
	if area2 < 0 {
		b, c = c, b
	}
	tri := NavTri{
		V:        [3]common.Vec3{a, b, c},
		Neighbor: [3]int{-1, -1, -1},
		Center:   a.Add(b).Add(c).Mul(1.0 / 3.0),
	}
	tri.BoundsMin = common.Vmin(common.Vmin(a, b), c)
	tri.BoundsMax = common.Vmax(common.Vmax(a, b), c)

	if len(m.tris) == 0 {
		m.boundsMin, m.boundsMax = tri.BoundsMin, tri.BoundsMax
	} else {
		m.boundsMin = common.Vmin(m.boundsMin, tri.BoundsMin)
		m.boundsMax = common.Vmax(m.boundsMax, tri.BoundsMax)
	}
	m.tris = append(m.tris, tri)
	return true
}

// BuildGrid rebuilds the spatial index used by point queries. Update calls it;
// callers assembling a mesh with AddTri call it themselves.
func (m *NavMesh) BuildGrid() {
	if len(m.tris) == 0 {
		m.grid = nil
		return
	}
	m.grid = spatial.NewGrid(common.ToXZ(m.boundsMin), common.ToXZ(m.boundsMax), m.cfg.CellSize, m.cfg.GridPadding)
	for i := range m.tris {
		t := &m.tris[i]
		m.grid.Insert(i, common.ToXZ(t.BoundsMin), common.ToXZ(t.BoundsMax))
	}
}

// Tris returns the live triangle slice. It is replaced on the next rebuild.
func (m *NavMesh) Tris() []NavTri {
	return m.tris
}

func (m *NavMesh) Tri(i int) *NavTri {
	if i < 0 || i >= len(m.tris) {
		return nil
	}
	return &m.tris[i]
}

// Bounds of all triangles. ok is false for an empty mesh.
func (m *NavMesh) Bounds() (mn, mx common.Vec3, ok bool) {
	return m.boundsMin, m.boundsMax, len(m.tris) > 0
}

func (m *NavMesh) Grid() *spatial.Grid {
	return m.grid
}

func (m *NavMesh) AdjacencyStats() AdjacencyStats {
	return m.stats
}

// Levels returns every level ordered by height key.
func (m *NavMesh) Levels() []*LevelInfo {
	out := make([]*LevelInfo, 0, len(m.levelKeys))
	for _, key := range m.levelKeys {
		out = append(out, m.levels[key])
	}
	return out
}

// Level looks up the level whose height key matches y.
func (m *NavMesh) Level(y float64) (*LevelInfo, bool) {
	l, ok := m.levels[m.heightKey(y)]
	return l, ok
}

// Reset drops every derived structure and marks the mesh fully dirty. Sources
// stay registered.
func (m *NavMesh) Reset() {
	m.tris = nil
	m.levels = map[int]*LevelInfo{}
	m.levelKeys = nil
	m.grid = nil
	m.stats = AdjacencyStats{}
	m.boundsMin = common.Vec3{}
	m.boundsMax = common.Vec3{}
	m.nodes = nil
	m.edgeScratch = nil
	m.open.Reset()
	m.staticDirty = true
	m.dynamicDirty = true
}
