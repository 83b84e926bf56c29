package fillplan

import (
	"testing"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

func square(side float64) *poly.Polygon {
	s := dim.FromReal(side)
	return poly.FromPoints(1,
		poly.Vertex{X: 0, Y: 0},
		poly.Vertex{X: 0, Y: s},
		poly.Vertex{X: s, Y: s},
		poly.Vertex{X: s, Y: 0},
	)
}

func squareSTL() *mesh.STL {
	return mesh.New("square", []mesh.Facet{
		{
			A: mesh.Point{X: 0, Y: 0, Z: 0},
			B: mesh.Point{X: dim.FromReal(20), Y: 0, Z: 0},
			C: mesh.Point{X: dim.FromReal(20), Y: dim.FromReal(20), Z: 0},
		},
	})
}

func TestExtrudeInfillProducesPaths(t *testing.T) {
	s := NewSlice(0, square(20))
	s.Infill = square(20)
	s.Solid = poly.New()
	s.Flying = poly.New()

	Extrude(squareSTL(), []*Slice{s}, dim.FromReal(0.4), 0.3, 1.0)

	if s.Extrude[Fill].Empty() {
		t.Fatalf("expected sparse infill to produce extrude paths")
	}
}

func TestExtrudeSolidProducesPaths(t *testing.T) {
	s := NewSlice(0, square(20))
	s.Infill = poly.New()
	s.Solid = square(20)
	s.Flying = poly.New()

	Extrude(squareSTL(), []*Slice{s}, dim.FromReal(0.4), 0.3, 1.0)

	if s.Extrude[Fill].Empty() {
		t.Fatalf("expected solid fill to produce extrude paths")
	}
}

func TestExtrudeFlyingProducesSpiral(t *testing.T) {
	s := NewSlice(0, square(20))
	s.Infill = poly.New()
	s.Solid = poly.New()
	s.Flying = square(20)

	Extrude(squareSTL(), []*Slice{s}, dim.FromReal(0.4), 0.3, 1.0)

	if s.Extrude[Flying].Empty() {
		t.Fatalf("expected flying area to produce an inward spiral")
	}
}

func TestExtrudeSkipsEmptyRegions(t *testing.T) {
	s := NewSlice(0, square(20))
	s.Infill = poly.New()
	s.Solid = poly.New()
	s.Flying = poly.New()

	Extrude(squareSTL(), []*Slice{s}, dim.FromReal(0.4), 0.3, 1.0)

	if !s.Extrude[Fill].Empty() {
		t.Fatalf("expected no fill paths when infill and solid are empty")
	}
	if !s.Extrude[Flying].Empty() {
		t.Fatalf("expected no flying paths when flying area is empty")
	}
}
