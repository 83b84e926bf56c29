package poly

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
)

// Order reorders p's contours in place into a greedy nearest-neighbour
// walk starting from (x, y): repeatedly picks whichever remaining
// contour has the vertex closest to the current pen position, rotates
// that contour (if closed) to start at that vertex, appends it to the
// output order, and advances the pen position to the contour's new
// start vertex.
//
// Open contours (Dir == 0) are special-cased exactly as in the
// original: only their first vertex is considered as a candidate, and
// they are never rotated, since an open path has no freedom to choose
// its starting end without also reversing it.
//
// Order returns the final pen position so callers can thread it into
// the next call across multiple polygons in a pipeline.
func Order(p *Polygon, x, y dim.Dim) (dim.Dim, dim.Dim) {
	if p.Empty() {
		return x, y
	}
	remaining := append([]*Contour(nil), p.Contours...)
	ordered := make([]*Contour, 0, len(remaining))

	for len(remaining) > 0 {
		bestIdx := -1
		bestDist := math.MaxFloat64
		bestVertIdx := 0
		for i, c := range remaining {
			if len(c.Vertices) == 0 {
				continue
			}
			if c.Dir == 0 {
				v := c.Vertices[0]
				d := dist(v, x, y)
				if bestIdx == -1 || d < bestDist {
					bestIdx, bestDist, bestVertIdx = i, d, 0
				}
				continue
			}
			for j, v := range c.Vertices {
				d := dist(v, x, y)
				if bestIdx == -1 || d < bestDist {
					bestIdx, bestDist, bestVertIdx = i, d, j
				}
			}
		}
		if bestIdx == -1 {
			break
		}
		c := remaining[bestIdx]
		if c.Dir != 0 && bestVertIdx != 0 {
			c.Vertices = append(c.Vertices[bestVertIdx:], c.Vertices[:bestVertIdx]...)
		}
		ordered = append(ordered, c)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		x, y = c.Vertices[0].X, c.Vertices[0].Y
	}

	p.Contours = ordered
	return x, y
}

func dist(v Vertex, x, y dim.Dim) float64 {
	dx := float64(v.X - x)
	dy := float64(v.Y - y)
	return math.Sqrt(dx*dx + dy*dy)
}
