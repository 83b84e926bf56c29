// Package mesh is the in-memory triangulated-surface model the
// pipeline slices: a flat list of facets plus their bounding box.
//
// Grounded on the original's stl_t/facet_t (_examples/original_source
// /e3d.h): this package intentionally carries no slice chain, border,
// or anchor state of its own — those belong to build.Result, keeping
// the mesh a pure geometric input that every pipeline stage can read
// without caring who owns the output.
package mesh

import "github.com/revk3d/e3dgo/dim"

// Point is a 3D vertex in fixed-point millimetres.
type Point struct {
	X, Y, Z dim.Dim
}

// Facet is one triangle of the surface.
type Facet struct {
	A, B, C Point
}

// STL is a named triangulated surface and its bounding box.
type STL struct {
	Name   string
	Facets []Facet
	Min    Point
	Max    Point
}

// New computes the bounding box of facets and returns the STL.
func New(name string, facets []Facet) *STL {
	s := &STL{Name: name, Facets: facets}
	s.recomputeBounds()
	return s
}

func (s *STL) recomputeBounds() {
	if len(s.Facets) == 0 {
		s.Min, s.Max = Point{}, Point{}
		return
	}
	first := s.Facets[0].A
	min, max := first, first
	for _, f := range s.Facets {
		for _, v := range [3]Point{f.A, f.B, f.C} {
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.Z < min.Z {
				min.Z = v.Z
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
			if v.Z > max.Z {
				max.Z = v.Z
			}
		}
	}
	s.Min, s.Max = min, max
}

// Origin shifts every facet vertex so that Min becomes (0,0,0),
// matching the driver's pre-slice origin-shift step (e3d.c reads the
// STL then immediately normalizes it to its bounding box before
// slicing). Min/Max are recomputed afterward.
func (s *STL) Origin() {
	dx, dy, dz := s.Min.X, s.Min.Y, s.Min.Z
	for i := range s.Facets {
		f := &s.Facets[i]
		f.A.X -= dx
		f.A.Y -= dy
		f.A.Z -= dz
		f.B.X -= dx
		f.B.Y -= dy
		f.B.Z -= dz
		f.C.X -= dx
		f.C.Y -= dy
		f.C.Z -= dz
	}
	s.recomputeBounds()
}
