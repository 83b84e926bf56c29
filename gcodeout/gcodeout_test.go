package gcodeout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revk3d/e3dgo/build"
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/fillplan"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

func testParams() Params {
	return Params{
		LayerHeight: dim.FromReal(0.2),
		WidthRatio:  2.0,
		Filament:    2.9,
		Packing:     1.0,
		Speed0:      dim.FromReal(20),
		Speed:       dim.FromReal(60),
		ZSpeed:      0,
		Hop:         dim.FromReal(1),
		Retract:     1.0,
		EPlaces:     4,
		AnchorFlow:  1.2,
		Places:      3,
	}
}

func testSTL() *mesh.STL {
	return mesh.New("box", []mesh.Facet{
		{
			A: mesh.Point{X: 0, Y: 0, Z: 0},
			B: mesh.Point{X: dim.FromReal(10), Y: 0, Z: 0},
			C: mesh.Point{X: dim.FromReal(10), Y: dim.FromReal(10), Z: 0},
		},
	})
}

func square(side float64) *poly.Polygon {
	s := dim.FromReal(side)
	return poly.FromPoints(1,
		poly.Vertex{X: 0, Y: 0},
		poly.Vertex{X: 0, Y: s},
		poly.Vertex{X: s, Y: s},
		poly.Vertex{X: s, Y: 0},
	)
}

func TestWriteEmitsPreludeAndPostlude(t *testing.T) {
	s := fillplan.NewSlice(0, square(10))
	s.Extrude[fillplan.Perimeter] = square(10)
	result := &build.Result{Slices: []*fillplan.Slice{s}, Border: poly.New(), Anchor: poly.New()}

	var buf bytes.Buffer
	_, err := Write(&buf, testSTL(), result, testParams())
	if err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "G21") {
		t.Fatalf("expected metric prelude line, got:\n%s", out)
	}
	if !strings.Contains(out, "M107") {
		t.Fatalf("expected fan-off postlude line, got:\n%s", out)
	}
}

func TestWriteEmitsExtrusionForPerimeter(t *testing.T) {
	s := fillplan.NewSlice(0, square(10))
	s.Extrude[fillplan.Perimeter] = square(10)
	result := &build.Result{Slices: []*fillplan.Slice{s}, Border: poly.New(), Anchor: poly.New()}

	var buf bytes.Buffer
	_, err := Write(&buf, testSTL(), result, testParams())
	if err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), " E") {
		t.Fatalf("expected at least one extrusion move with an E word")
	}
}

func TestWriteReturnsPositiveTimeEstimate(t *testing.T) {
	s := fillplan.NewSlice(0, square(10))
	s.Extrude[fillplan.Perimeter] = square(10)
	result := &build.Result{Slices: []*fillplan.Slice{s}, Border: poly.New(), Anchor: poly.New()}

	var buf bytes.Buffer
	d, err := Write(&buf, testSTL(), result, testParams())
	if err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	if d <= 0 {
		t.Fatalf("expected a positive time estimate, got %v", d)
	}
}
