package slicer

import (
	"testing"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/mesh"
)

// tetra returns a simple tetrahedron: a triangular base at z=0 and an
// apex at z=10, all four triangular faces wound outward.
func tetra() *mesh.STL {
	p := func(x, y, z float64) mesh.Point {
		return mesh.Point{X: dim.FromReal(x), Y: dim.FromReal(y), Z: dim.FromReal(z)}
	}
	base := []mesh.Point{p(0, 0, 0), p(10, 0, 0), p(5, 10, 0)}
	apex := p(5, 3, 10)
	return mesh.New("tetra", []mesh.Facet{
		{A: base[0], B: base[2], C: base[1]}, // base, wound downward-facing
		{A: base[0], B: base[1], C: apex},
		{A: base[1], B: base[2], C: apex},
		{A: base[2], B: base[0], C: apex},
	})
}

func TestSliceMidHeightProducesOutline(t *testing.T) {
	s := tetra()
	z := dim.FromReal(5)
	out := Slice(s, z, dim.FromReal(0.01))
	if out.Empty() {
		t.Fatalf("expected a non-empty outline at mid height")
	}
}

func TestSliceAboveApexIsEmpty(t *testing.T) {
	s := tetra()
	z := dim.FromReal(20)
	out := Slice(s, z, dim.FromReal(0.01))
	if !out.Empty() {
		t.Fatalf("expected empty outline above the apex")
	}
}

func TestSliceBelowBaseIsEmpty(t *testing.T) {
	s := tetra()
	z := dim.FromReal(-1)
	out := Slice(s, z, dim.FromReal(0.01))
	if !out.Empty() {
		t.Fatalf("expected empty outline below the base")
	}
}
