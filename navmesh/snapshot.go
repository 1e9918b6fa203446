package navmesh

import (
	"fmt"

	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/common/message"
	"google.golang.org/protobuf/encoding/protowire"
)

// snapshot field numbers
const (
	snapPrecision protowire.Number = 1
	snapLevel     protowire.Number = 2
	snapTri       protowire.Number = 3
	snapGrid      protowire.Number = 4

	levelKey protowire.Number = 1
	levelY   protowire.Number = 2

	triVerts    protowire.Number = 1
	triNeighbor protowire.Number = 2

	gridW     protowire.Number = 1
	gridH     protowire.Number = 2
	gridCell  protowire.Number = 3
	gridMin   protowire.Number = 4
	gridItems protowire.Number = 5
)

// Snapshot encodes levels, triangles with neighbors and grid buckets in
// protobuf wire format. Equal meshes give equal bytes.
func (m *NavMesh) Snapshot() []byte {
	w := message.NewWriter(64 + len(m.tris)*96)
	w.Varint(snapPrecision, uint64(m.cfg.Precision))
	for _, key := range m.levelKeys {
		level := m.levels[key]
		w.Message(snapLevel, func(sub *message.Writer) {
			sub.Sint(levelKey, int64(level.Key))
			sub.Double(levelY, level.Y)
		})
	}
	for i := range m.tris {
		t := &m.tris[i]
		w.Message(snapTri, func(sub *message.Writer) {
			for _, v := range t.V {
				sub.Doubles(triVerts, v[0], v[1], v[2])
			}
			for _, nb := range t.Neighbor {
				sub.Sint(triNeighbor, int64(nb))
			}
		})
	}
	if m.grid != nil {
		w.Message(snapGrid, func(sub *message.Writer) {
			sub.Varint(gridW, uint64(m.grid.W))
			sub.Varint(gridH, uint64(m.grid.H))
			sub.Double(gridCell, m.grid.CellSize)
			sub.Doubles(gridMin, m.grid.Min[0], m.grid.Min[1])
			for z := 0; z < m.grid.H; z++ {
				for x := 0; x < m.grid.W; x++ {
					items := m.grid.CellItems(x, z)
					sub.Message(gridItems, func(cell *message.Writer) {
						for _, it := range items {
							cell.Sint(1, int64(it))
						}
					})
				}
			}
		})
	}
	return w.Bytes()
}

// SnapshotSummary is what DecodeSnapshot recovers from a Snapshot.
type SnapshotSummary struct {
	Precision int
	Levels    []float64
	Tris      []NavTri
	GridCells int
}

func DecodeSnapshot(data []byte) (SnapshotSummary, error) {
	var s SnapshotSummary
	err := message.Decode(data, func(f message.Field) error {
		switch f.Num {
		case snapPrecision:
			s.Precision = int(f.Varint)
		case snapLevel:
			return message.Decode(f.Bytes, func(lf message.Field) error {
				if lf.Num == levelY {
					s.Levels = append(s.Levels, lf.Double())
				}
				return nil
			})
		case snapTri:
			t, err := decodeTri(f.Bytes)
			if err != nil {
				return err
			}
			s.Tris = append(s.Tris, t)
		case snapGrid:
			return message.Decode(f.Bytes, func(gf message.Field) error {
				if gf.Num == gridItems {
					s.GridCells++
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return s, fmt.Errorf("decode navmesh snapshot: %w", err)
	}
	return s, nil
}

func decodeTri(data []byte) (NavTri, error) {
	var t NavTri
	var coords []float64
	var nbs []int
	err := message.Decode(data, func(f message.Field) error {
		switch f.Num {
		case triVerts:
			coords = append(coords, f.Double())
		case triNeighbor:
			nbs = append(nbs, int(f.Sint()))
		}
		return nil
	})
	if err != nil {
		return t, err
	}
	if len(coords) != 9 || len(nbs) != 3 {
		return t, fmt.Errorf("tri with %d coords and %d neighbors", len(coords), len(nbs))
	}
	for i := 0; i < 3; i++ {
		t.V[i] = common.Vec3{coords[i*3], coords[i*3+1], coords[i*3+2]}
		t.Neighbor[i] = nbs[i]
	}
	t.Center = t.V[0].Add(t.V[1]).Add(t.V[2]).Mul(1.0 / 3.0)
	return t, nil
}
