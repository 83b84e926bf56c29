package fillplan

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/internal/xlog"
	"github.com/revk3d/e3dgo/poly"
)

// Anchor builds the first-layer anchor skirt: a ring standing off from
// the first slice's outline by offset, broken up by small diamond
// barbs spaced step apart along its length (so the anchor snaps off
// cleanly once printing is done), plus loops-1 additional plain rings
// stepping outward by width. The join ring (with its barbs subtracted
// out) is returned as anchorjoin; it is not placed in any of first's
// Extrude bins. Any extra rings go into anchor, and newBorder is border
// unioned with one further ring outside the outermost anchor ring;
// when loops is 1 no extra ring is built and border is returned as is.
//
// Direct port of fill_anchor.
func Anchor(first *Slice, next *Slice, border *poly.Polygon, loops int, width, offset, step dim.Dim) (anchorjoin, anchor, newBorder *poly.Polygon) {
	if first == nil || loops <= 0 {
		return poly.New(), poly.New(), border
	}

	p := poly.Inset(first.Outline.Clone(), width/2)
	ol := poly.Inset(p, -width-offset)

	j := barbs(ol, offset, step)
	join := poly.Subtract(ol, j)

	var ol2 *poly.Polygon
	if next != nil {
		t1 := poly.Inset(next.Outline.Clone(), width/2)
		ol2 = poly.Inset(t1, -width)
		join = poly.Clip(poly.Union, join, ol2)
	}

	anchorjoin = join
	newBorder = border

	loops--
	if loops == 0 {
		return anchorjoin, poly.New(), border
	}

	var ring *poly.Polygon
	if ol2 != nil {
		ring = poly.Clip(poly.Union, ol, ol2)
	} else {
		ring = ol
	}
	ring = poly.Inset(ring, -width)

	anchor = poly.New()
	for loops > 0 {
		nxt := poly.Inset(ring, -width)
		poly.Tidy(ring, width/8)
		prefixExtrude(&anchor, ring)
		ring = nxt
		loops--
	}
	newBorder = poly.Clip(poly.Union, newBorder, ring)
	return anchorjoin, anchor, newBorder
}

// barbs builds the small diamond cutouts, spaced step apart along
// every edge of ol and offset off the edge perpendicular to its
// direction, that get subtracted out of the join ring so the anchor
// snaps off along a serrated line.
func barbs(ol *poly.Polygon, offset, step dim.Dim) *poly.Polygon {
	var b poly.Builder
	for _, c := range ol.Contours {
		n := len(c.Vertices)
		if n == 0 {
			continue
		}
		d := step
		for i := 0; i < n; i++ {
			a := c.Vertices[i]
			bb := c.Vertices[(i+1)%n]
			dx := float64(bb.X - a.X)
			dy := float64(bb.Y - a.Y)
			l := dim.Dim(math.Sqrt(dx*dx + dy*dy))
			if l == 0 {
				xlog.Warn().Msg("degenerate zero-length edge in anchor outline, skipping")
				continue
			}
			ox := dim.Dim(float64(bb.X-a.X) * float64(offset) / float64(l))
			oy := dim.Dim(float64(bb.Y-a.Y) * float64(offset) / float64(l))
			for d < l {
				x := a.X + dim.Dim(float64(bb.X-a.X)*float64(d)/float64(l))
				y := a.Y + dim.Dim(float64(bb.Y-a.Y)*float64(d)/float64(l))
				b.Start()
				b.Add(x+ox, y+oy, 0)
				b.Add(x+oy, y-ox, 0)
				b.Add(x-ox, y-oy, 0)
				b.Add(x-oy, y+ox, 0)
				d += step
			}
			d -= l
		}
	}
	return b.Build()
}
