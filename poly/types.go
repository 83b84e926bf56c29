// Package poly implements the winding-number polygon algebra at the
// heart of the slicing pipeline: contour construction, cleanup
// (Tidy), offsetting (Inset), boolean combination (Clip) and output
// ordering (Order).
//
// Overview
//
// A Polygon is a bag of Contours; a Contour is a cyclic sequence of
// Vertex values plus a winding direction. Clip and Subtract leave their
// Polygon arguments unchanged and return a fresh Polygon owned by the
// caller. Tidy and Order rework their argument in place, and Inset
// tidies its argument in place before building a fresh result from it.
//
// Coordinate System
//
// Coordinates are dim.Dim fixed-point values. Clip and Inset both
// operate purely in that fixed-point domain; no floating point enters
// except as an intermediate in a handful of numeric primitives
// (IntersectPoint's side distance, sqrt in Inset's edge normal), exactly
// as in the reference C implementation this package is ported from.
package poly

import "github.com/revk3d/e3dgo/dim"

// Vertex is a single point of a Contour. Flag carries an opaque,
// caller-defined tag on the edge from this vertex to the next one;
// Clip sums the flags of the inputs that contribute to each output
// edge, so callers can use it to track provenance (e.g. "which facet
// this segment came from") through a boolean operation.
type Vertex struct {
	X, Y dim.Dim
	Flag int
}

// Contour is a cyclic sequence of vertices. Dir is the contour's
// winding direction: +1 clockwise, -1 counter-clockwise, 0 for an open
// path (produced by fill-planning code; Clip emits it only for a
// leftover path it could not close).
type Contour struct {
	Vertices []Vertex
	Dir      int8
}

// Polygon is an unordered bag of contours.
type Polygon struct {
	Contours []*Contour
}

// New returns an empty Polygon.
func New() *Polygon {
	return &Polygon{}
}

// Empty reports whether p has no contours (or is nil).
func (p *Polygon) Empty() bool {
	return p == nil || len(p.Contours) == 0
}

// ClipOp selects the boolean combination Clip performs. The numeric
// values mirror the original POLY_UNION/POLY_INTERSECT/POLY_DIFFERENCE/
// POLY_XOR constants because Clip's winding-threshold math is written
// directly in terms of them (see clip.go).
type ClipOp int

const (
	// Union keeps regions wound at least once by any input.
	Union ClipOp = 1
	// Intersect keeps regions wound at least twice. The threshold is 2
	// whatever the number of inputs; callers needing a higher threshold
	// pass it explicitly via IntersectN.
	Intersect ClipOp = 2
	// Difference keeps regions wound at least once but fewer than -Op
	// (2) times: the union of the inputs minus their two-way
	// intersection. Subtract builds a∖b from it.
	Difference ClipOp = -2
	// Xor keeps regions with odd total winding, ignoring direction.
	Xor ClipOp = 0
)

// IntersectN returns the ClipOp for "wound by at least n inputs",
// generalizing Intersect (n=2) to deeper stacks.
func IntersectN(n int) ClipOp {
	return ClipOp(n)
}

// DifferenceN returns the ClipOp for "wound at least once but fewer
// than n times": the union of the inputs minus the region wound by at
// least n of them.
func DifferenceN(n int) ClipOp {
	return ClipOp(-n)
}
