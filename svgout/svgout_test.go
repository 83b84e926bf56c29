package svgout

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

func square(side float64) *poly.Polygon {
	s := dim.FromReal(side)
	return poly.FromPoints(1,
		poly.Vertex{X: 0, Y: 0},
		poly.Vertex{X: 0, Y: s},
		poly.Vertex{X: s, Y: s},
		poly.Vertex{X: s, Y: 0},
	)
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

func TestWriteEmitsOneLayerGroupPerSlice(t *testing.T) {
	s1 := fillplan.NewSlice(0, square(10))
	s2 := fillplan.NewSlice(dim.FromReal(0.2), square(10))
	result := &build.Result{Slices: []*fillplan.Slice{s1, s2}, Border: poly.New(), Anchor: poly.New(), Join: poly.New()}

	var buf bytes.Buffer
	if err := Write(&buf, testSTL(), result, dim.FromReal(0.4)); err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "inkscape:groupmode=\"layer\"") != 2 {
		t.Fatalf("expected exactly 2 layer groups, got:\n%s", out)
	}
}

func TestWriteHidesAllButFirstLayer(t *testing.T) {
	s1 := fillplan.NewSlice(0, square(10))
	s2 := fillplan.NewSlice(dim.FromReal(0.2), square(10))
	result := &build.Result{Slices: []*fillplan.Slice{s1, s2}, Border: poly.New(), Anchor: poly.New(), Join: poly.New()}

	var buf bytes.Buffer
	if err := Write(&buf, testSTL(), result, dim.FromReal(0.4)); err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	if strings.Count(buf.String(), "display:none") != 1 {
		t.Fatalf("expected exactly one hidden layer")
	}
}

func TestWriteIsWellFormedXMLShell(t *testing.T) {
	s := fillplan.NewSlice(0, square(10))
	result := &build.Result{Slices: []*fillplan.Slice{s}, Border: poly.New(), Anchor: poly.New(), Join: poly.New()}

	var buf bytes.Buffer
	if err := Write(&buf, testSTL(), result, dim.FromReal(0.4)); err != nil {
		t.Fatalf("Write returned an error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("expected XML declaration at the start")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("expected a closing </svg> tag")
	}
}
