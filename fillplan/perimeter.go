package fillplan

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/poly"
)

// Perimeter builds the loops-deep perimeter ring(s) for s and fills
// s.Fill with whatever area remains inside the innermost loop. The
// outermost loop is inset by half the extrusion width (so the outer
// wall sits centred on the true surface) and the fill boundary lies a
// further half width inside the innermost loop, on that wall's inner
// edge; loops in between step by a full width. When fast is set, every
// inset after the outermost loop (the inner loops and the fill) gets an
// extra, coarser Tidy pass (tolerance width/10).
//
// Direct port of fill_perimeter.
func Perimeter(s *Slice, width dim.Dim, loops int, fast bool) {
	if loops == 0 {
		s.Fill = s.Outline
		return
	}

	layers := make([]*poly.Polygon, loops)
	q := poly.Inset(s.Outline.Clone(), width/2)
	for l := 0; l < loops; l++ {
		layers[l] = q
		step := width / 2
		if l+1 < loops {
			step = width
		}
		q = poly.Inset(q.Clone(), step)
		if fast {
			poly.Tidy(q, width/10)
		}
	}
	s.Fill = q

	for l := loops - 1; l >= 0; l-- {
		insertContoursOrdered(&s.Extrude[Perimeter], layers[l])
	}
}

// insertContoursOrdered splices every contour of src into *dst, each
// one placed immediately after whichever existing contour starts
// closest to it — the same "find closest, append after it" placement
// fill_perimeter uses so each loop tends to print as a contiguous
// travel path.
func insertContoursOrdered(dst **poly.Polygon, src *poly.Polygon) {
	if src.Empty() {
		return
	}
	if *dst == nil {
		*dst = poly.New()
	}
	for _, c := range src.Contours {
		if len(c.Vertices) == 0 {
			continue
		}
		if len((*dst).Contours) == 0 {
			(*dst).Contours = append((*dst).Contours, c)
			continue
		}
		bestIdx := 0
		bestDist := math.MaxFloat64
		for i, z := range (*dst).Contours {
			if len(z.Vertices) == 0 {
				continue
			}
			dx := float64(z.Vertices[0].X - c.Vertices[0].X)
			dy := float64(z.Vertices[0].Y - c.Vertices[0].Y)
			d := dx*dx + dy*dy
			if d < bestDist {
				bestIdx, bestDist = i, d
			}
		}
		out := make([]*poly.Contour, 0, len((*dst).Contours)+1)
		out = append(out, (*dst).Contours[:bestIdx+1]...)
		out = append(out, c)
		out = append(out, (*dst).Contours[bestIdx+1:]...)
		(*dst).Contours = out
	}
}
