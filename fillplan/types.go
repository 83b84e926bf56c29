// Package fillplan turns one slice outline into the set of contours
// actually extruded: perimeter loops, solid/infill/flying area
// decomposition, the zig-zag fill pattern, and the first-layer anchor
// skirt. Grounded on _examples/original_source/e3d-fill.c.
package fillplan

import (
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/poly"
)

// Extrude bin indices, matching the original's EXTRUDE_* enum order.
// The fourth bin (Reserved) is carried but never populated, reproducing
// the original's own unexplained reservation rather than inventing a
// use for it (see DESIGN.md Open Questions).
const (
	Perimeter = iota
	Fill
	Flying
	Reserved
	BinCount
)

// Slice is one layer's geometry at every stage of fill planning.
type Slice struct {
	Z       dim.Dim
	Outline *poly.Polygon
	Fill    *poly.Polygon // outline minus the perimeter loops
	Solid   *poly.Polygon // fill area not backed by enough layers above/below
	Infill  *poly.Polygon // fill area needing only sparse support
	Flying  *poly.Polygon // fill area with nothing below it (bridges)
	Extrude [BinCount]*poly.Polygon
}

// NewSlice wraps an outline polygon for planning.
func NewSlice(z dim.Dim, outline *poly.Polygon) *Slice {
	return &Slice{Z: z, Outline: outline}
}

// prefixExtrude splices src's contours to the front of *dst,
// mirroring the original's prefix_extrude.
func prefixExtrude(dst **poly.Polygon, src *poly.Polygon) {
	if src.Empty() {
		return
	}
	if *dst == nil {
		*dst = src
		return
	}
	(*dst).Contours = append(append([]*poly.Contour(nil), src.Contours...), (*dst).Contours...)
}

// appendExtrude splices src's contours to the back of *dst, mirroring
// the original's append_extrude.
func appendExtrude(dst **poly.Polygon, src *poly.Polygon) {
	if src.Empty() {
		return
	}
	if *dst == nil {
		*dst = src
		return
	}
	(*dst).Contours = append((*dst).Contours, src.Contours...)
}
