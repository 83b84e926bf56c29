// Package pathorder drives nearest-neighbour contour ordering across a
// whole slice stack. Perimeter and fill contours are left in the order
// fillplan produced them (their own placement already aims for short
// travel moves); flying-layer and reserved-bin contours are reordered
// per slice, threading the pen position from one slice straight into
// the next so travel moves between layers stay short too.
//
// Grounded on _examples/original_source/e3d-common.c's poly_order and
// its call sites in e3d.c's main loop (the "not ordering perimeters"
// pass that threads x/y across every slice before G-code is emitted).
package pathorder

import (
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/fillplan"
	"github.com/revk3d/e3dgo/poly"
)

// Order reorders the Flying and Reserved extrude bins of every slice,
// threading the pen position starting at (startX, startY) across the
// whole stack, and returns the final pen position.
func Order(slices []*fillplan.Slice, startX, startY dim.Dim) (dim.Dim, dim.Dim) {
	x, y := startX, startY
	for _, s := range slices {
		if ref := lastReference(s); ref != nil {
			x, y = ref.X, ref.Y
		}
		for bin := fillplan.Flying; bin < fillplan.BinCount; bin++ {
			x, y = poly.Order(s.Extrude[bin], x, y)
		}
	}
	return x, y
}

// lastReference returns the last vertex of the last contour of
// whichever of the Fill or Perimeter bins is populated (Fill takes
// priority, matching the original's search from the highest
// non-perimeter-adjacent bin downward), or nil if neither bin has any
// contours.
func lastReference(s *fillplan.Slice) *poly.Vertex {
	for _, bin := range []int{fillplan.Fill, fillplan.Perimeter} {
		p := s.Extrude[bin]
		if p.Empty() {
			continue
		}
		c := p.Contours[len(p.Contours)-1]
		if len(c.Vertices) == 0 {
			continue
		}
		v := c.Vertices[len(c.Vertices)-1]
		return &v
	}
	return nil
}
