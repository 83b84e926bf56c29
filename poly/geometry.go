package poly

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
)

// IntersectPointResult is the output of IntersectPoint.
type IntersectPointResult struct {
	X, Y   dim.Dim // P, the point on A-B closest to C
	AB     float64 // position of P on A-B: A=0, B=1
	DistSq dim.Dim // squared distance P-C
	Side   float64 // signed distance P-C: negative left of A-B, positive right
	Exists bool    // false iff A==B (zero-length segment)
}

// IntersectPoint finds P on line A-B closest to point C. It is the
// direct port of the original's poly_intersect_point: a perpendicular
// projection of C onto A-B, plus the squared perpendicular distance
// used throughout Tidy and Clip as a collinearity/overlap test.
func IntersectPoint(ax, ay, bx, by, cx, cy dim.Dim) IntersectPointResult {
	dx := bx - ax
	dy := by - ay
	l2 := dim.Sq(dx) + dim.Sq(dy)
	if l2 == 0 {
		return IntersectPointResult{}
	}
	abh := (cx-ax)*dx + (cy-ay)*dy
	ab := float64(abh) / float64(l2)
	px := ax + dim.Dim(abh*dx)/l2
	py := ay + dim.Dim(abh*dy)/l2
	sh := (ay-cy)*dx - (ax-cx)*dy
	side := float64(sh) * math.Sqrt(float64(l2)) / float64(l2)
	distSq := dim.Dim(sh * sh / l2)
	return IntersectPointResult{X: px, Y: py, AB: ab, DistSq: distSq, Side: side, Exists: true}
}

// IntersectLineResult is the output of IntersectLine.
type IntersectLineResult struct {
	X, Y   dim.Dim // P, the intersection of line A-B and line C-D
	AB, CD float64 // position of P on A-B (resp. C-D): start=0, end=1
	Exists bool    // false iff the lines are parallel (or degenerate)
}

// IntersectLine finds P, the intersection of infinite lines A-B and
// C-D. Direct port of poly_intersect_line.
func IntersectLine(ax, ay, bx, by, cx, cy, dx, dy dim.Dim) IntersectLineResult {
	d := (dy-cy)*(bx-ax) - (dx-cx)*(by-ay)
	if d == 0 {
		return IntersectLineResult{}
	}
	abh := float64((dx-cx)*(ay-cy) - (dy-cy)*(ax-cx))
	ab := abh / float64(d)
	x := ax + dim.Dim(abh*float64(bx-ax))/d
	y := ay + dim.Dim(abh*float64(by-ay))/d
	cd := float64((bx-ax)*(ay-cy)-(by-ay)*(ax-cx)) / float64(d)
	return IntersectLineResult{X: x, Y: y, AB: ab, CD: cd, Exists: true}
}
