package fillplan

import (
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/poly"
)

// Area decomposes every slice's fill region into flying (nothing
// below), solid (needs full density because it isn't backed by
// `layers` slices both above and below) and infill (everything else),
// and accumulates the running union of every outline into border.
//
// Direct port of fill_area's single pass over the slice chain: the
// "solid" test uses a sliding window of 2*layers+1 slices centred on
// the current one, intersecting fill regions across that whole window
// — only area that survives the intersection with every slice in the
// window (i.e. is backed solidly both above and below) stays outside
// `solid`.
func Area(slices []*Slice, border *poly.Polygon, width dim.Dim, layers int) *poly.Polygon {
	if border == nil {
		border = poly.New()
	}
	var prev *Slice
	base := 0
	for i, s := range slices {
		border = poly.Clip(poly.Union, border, s.Outline)

		if prev != nil {
			p := poly.Subtract(s.Fill, prev.Outline)
			q := poly.Inset(p, -width*2)
			s.Flying = poly.Clip(poly.Intersect, s.Fill, q)
		} else {
			s.Flying = poly.New()
		}

		var window *poly.Polygon
		if i-base >= layers {
			window = poly.Clip(poly.Union, s.Fill)
			n := layers*2 + 1
			for l := base; l < len(slices) && n > 0; l++ {
				if slices[l] != s {
					window = poly.Clip(poly.Intersect, slices[l].Fill, window)
				}
				n--
			}
			if n > 0 {
				// window ran off the end of the chain before every
				// slot was consumed: not enough layers on both sides,
				// so this area gets no solid-from-window backing.
				window = nil
			}
		}

		q := poly.Subtract(s.Fill, emptyIfNil(window))
		supported := poly.Subtract(q, s.Flying)

		closed := poly.Inset(poly.Inset(supported, width), -width)
		s.Solid = poly.Clip(poly.Intersect, s.Fill, closed)

		rest := poly.Subtract(s.Fill, s.Solid)
		s.Infill = poly.Subtract(rest, s.Flying)

		prev = s
		if i-base >= layers {
			base++
		}
	}
	return border
}

func emptyIfNil(p *poly.Polygon) *poly.Polygon {
	if p == nil {
		return poly.New()
	}
	return p
}
