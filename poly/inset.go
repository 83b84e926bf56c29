package poly

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
)

// octagonConst is the original's 866/1000 fixed-point stand-in for
// sin(60°)=cos(30°)≈0.866, used to chamfer the "fat sausage" corners.
const octagonConst = 866

// Inset returns a new polygon offset from p by d: positive d shrinks
// (offsets into the interior), negative d grows (offsets outward).
//
// Direct port of poly_inset: every edge of p is thickened into an
// octagonal "sausage" of half-width |d|, all sausages are unioned into
// a border, and:
//   - outset (d<0): result = UNION(border, p)
//   - inset  (d>0): result = DIFFERENCE(thick, p) ∩ p, where thick is
//     the union of the sausages alone
//
// p is tidied (tolerance |d|/20) before building the border, and the
// result is tidied at the same tolerance before being returned.
func Inset(p *Polygon, d dim.Dim) *Polygon {
	if p.Empty() {
		return New()
	}
	width := dim.Abs(d)
	Tidy(p, width/20)

	var b Builder
	for _, c := range p.Contours {
		n := len(c.Vertices)
		for i := 0; i < n; i++ {
			a := c.Vertices[i]
			bb := c.Vertices[(i+1)%n]
			sausageEdge(&b, a, bb, width)
		}
	}
	border := b.Build()

	if d < 0 {
		out := Clip(Union, border, p)
		Tidy(out, width/20)
		return out
	}
	thick := Clip(Union, border)
	diff := Clip(Difference, thick, p)
	out := Clip(Intersect, diff, p)
	Tidy(out, width/20)
	return out
}

// sausageEdge emits one octagon panel thickening edge a->b by width,
// reproducing the eight poly_add calls in the original verbatim.
func sausageEdge(b *Builder, a, bb Vertex, width dim.Dim) {
	dx := bb.X - a.X
	dy := bb.Y - a.Y
	l := math.Sqrt(float64(dim.Sq(dx) + dim.Sq(dy)))
	if l == 0 {
		return
	}
	dx = dim.Dim(float64(width) * float64(dx) / l)
	dy = dim.Dim(float64(width) * float64(dy) / l)
	flag := a.Flag

	b.Start()
	b.Add(bb.X-dy, bb.Y+dx, flag)
	b.Add(bb.X-dy/2+dx*octagonConst/1000, bb.Y+dx/2+dy*octagonConst/1000, flag)
	b.Add(bb.X+dy/2+dx*octagonConst/1000, bb.Y-dx/2+dy*octagonConst/1000, flag)
	b.Add(bb.X+dy, bb.Y-dx, flag)
	b.Add(a.X+dy, a.Y-dx, flag)
	b.Add(a.X+dy/2-dx*octagonConst/1000, a.Y-dx/2-dy*octagonConst/1000, flag)
	b.Add(a.X-dy/2-dx*octagonConst/1000, a.Y+dx/2-dy*octagonConst/1000, flag)
	b.Add(a.X-dy, a.Y+dx, flag)
}
