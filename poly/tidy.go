package poly

import (
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/internal/xlog"
)

// Tidy removes dead-end loopbacks and redundant collinear midpoints
// from every contour of p in place, then drops any contour left with
// fewer than 3 vertices. tolerance, when non-zero, additionally smooths
// runs of small steps: points are dropped while the perpendicular
// displacement they'd introduce, accumulated since the last kept
// point, stays under tolerance.
//
// Direct port of poly_tidy. The original mutates a linked list in
// place; this port rebuilds each contour's vertex slice instead, which
// is the idiomatic Go equivalent of the same two-pass algorithm.
func Tidy(p *Polygon, tolerance dim.Dim) {
	if p == nil {
		return
	}
	kept := p.Contours[:0]
	for _, c := range p.Contours {
		removeLoopbacks(c)
		if tolerance != 0 {
			smooth(c, tolerance)
		}
		if len(c.Vertices) >= 3 {
			kept = append(kept, c)
		}
	}
	p.Contours = kept
}

// removeLoopbacks repeatedly drops any vertex b whose neighbours a, c
// are coincident with it, or whose perpendicular distance from the
// line a-c is within epsilon — i.e. b contributes no shape.
func removeLoopbacks(c *Contour) {
	const epsilon = dim.Epsilon
	for {
		n := len(c.Vertices)
		if n < 2 {
			return
		}
		removed := false
		for i := 0; i < n; i++ {
			a := c.Vertices[i]
			b := c.Vertices[(i+1)%n]
			cc := c.Vertices[(i+2)%n]
			coincident := b.X == cc.X && b.Y == cc.Y
			r := IntersectPoint(a.X, a.Y, cc.X, cc.Y, b.X, b.Y)
			if !coincident && !r.Exists {
				xlog.Debug().Msg(ErrDegenerateEdge.Error())
			}
			if coincident || !r.Exists || r.DistSq <= epsilon {
				c.Vertices = removeAt(c.Vertices, (i+1)%n)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// smooth performs the tolerance-accumulating midpoint removal pass:
// a run of short edges either side of b is folded away as long as the
// accumulated perpendicular offset stays inside tolerance.
func smooth(c *Contour, tolerance dim.Dim) {
	tol2 := dim.Sq(tolerance)
	var acc float64
	i := 0
	for i < len(c.Vertices) {
		n := len(c.Vertices)
		if n < 2 {
			return
		}
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%n]
		cc := c.Vertices[(i+2)%n]
		ab2 := dim.Sq(a.X-b.X) + dim.Sq(a.Y-b.Y)
		bc2 := dim.Sq(cc.X-b.X) + dim.Sq(cc.Y-b.Y)
		if (ab2 > tol2 && bc2 > tol2) || (ab2 <= tol2 && bc2 <= tol2) {
			r := IntersectPoint(a.X, a.Y, cc.X, cc.Y, b.X, b.Y)
			if r.Exists && r.AB > 0 && r.AB < 1 && absf(acc+r.Side) < float64(tolerance) {
				acc += r.Side
				c.Vertices = removeAt(c.Vertices, (i+1)%n)
				continue
			}
		}
		acc = 0
		i++
	}
}

func removeAt(vs []Vertex, i int) []Vertex {
	return append(vs[:i:i], vs[i+1:]...)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
