package polybool

import (
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
	"github.com/gorustyt/polynav/common"
	"github.com/gorustyt/polynav/geom"
)

// Path is a closed ring on the xz plane. Paths may mix outer rings and holes.
type Path []common.Vec2
type Paths []Path

func (p Path) Area() float64 {
	return geom.SignedArea(p)
}

// Area sums signed ring areas, so holes subtract.
func (ps Paths) Area() float64 {
	var a float64
	for _, p := range ps {
		a += p.Area()
	}
	return a
}

func (ps Paths) Clone() Paths {
	out := make(Paths, len(ps))
	for i, p := range ps {
		out[i] = slices.Clone(p)
	}
	return out
}

// Engine runs the boolean operations on an integer grid of 10^-Precision
// world units. The same precision is used for nav mesh vertex snapping.
type Engine struct {
	Precision int
	scale     float64
}

func NewEngine(precision int) *Engine {
	return &Engine{Precision: precision, scale: math.Pow(10, float64(precision))}
}

func (e *Engine) toClipper(ps Paths, normalize bool) clipper.Paths {
	out := make(clipper.Paths, 0, len(ps))
	for _, p := range ps {
		if len(p) < 3 {
			continue
		}
		cp := make(clipper.Path, 0, len(p))
		for _, v := range p {
			cp = append(cp, &clipper.IntPoint{
				X: clipper.CInt(math.Round(v[0] * e.scale)),
				Y: clipper.CInt(math.Round(v[1] * e.scale)),
			})
		}
		if normalize && p.Area() < 0 {
			slices.Reverse(cp)
		}
		out = append(out, cp)
	}
	return out
}

func (e *Engine) fromClipper(cps clipper.Paths) Paths {
	out := make(Paths, 0, len(cps))
	for _, cp := range cps {
		if len(cp) < 3 {
			continue
		}
		p := make(Path, len(cp))
		for i, v := range cp {
			p[i] = common.Vec2{float64(v.X) / e.scale, float64(v.Y) / e.scale}
		}
		out = append(out, p)
	}
	return out
}

func (e *Engine) execute(ct clipper.ClipType, subj, clip clipper.Paths) Paths {
	c := clipper.NewClipper(0)
	c.AddPaths(subj, clipper.PtSubject, true)
	if len(clip) > 0 {
		c.AddPaths(clip, clipper.PtClip, true)
	}
	solution, ok := c.Execute1(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return e.fromClipper(solution)
}

// Union merges every ring with the non-zero fill rule. Each input ring is
// treated as a solid region regardless of its winding.
func (e *Engine) Union(ps Paths) Paths {
	subj := e.toClipper(ps, true)
	if len(subj) == 0 {
		return nil
	}
	return e.execute(clipper.CtUnion, subj, nil)
}

// Difference removes clip from subj. Both are expected to be union results.
func (e *Engine) Difference(subj, clip Paths) Paths {
	s := e.toClipper(subj, false)
	if len(s) == 0 {
		return nil
	}
	c := e.toClipper(clip, false)
	if len(c) == 0 {
		return subj.Clone()
	}
	return e.execute(clipper.CtDifference, s, c)
}

// Deflate offsets every ring inward by delta using mitered corners. A delta
// of zero returns a copy.
func (e *Engine) Deflate(ps Paths, delta, miterLimit float64) Paths {
	if delta <= 0 {
		return ps.Clone()
	}
	src := e.toClipper(ps, false)
	if len(src) == 0 {
		return nil
	}
	co := clipper.NewClipperOffset()
	co.MiterLimit = miterLimit
	co.AddPaths(src, clipper.JtMiter, clipper.EtClosedPolygon)
	return e.fromClipper(co.Execute(-delta * e.scale))
}
