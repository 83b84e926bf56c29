package poly

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// vertexCmp compares two Polygons up to contour/vertex order, since
// Clip makes no promise about which contour or starting vertex comes
// first — only that the same set of rings with the same vertex sets
// comes out.
var vertexCmp = cmp.Options{
	cmpopts.SortSlices(func(a, b *Contour) bool {
		if len(a.Vertices) != len(b.Vertices) {
			return len(a.Vertices) < len(b.Vertices)
		}
		return area(a) < area(b)
	}),
	cmpopts.SortSlices(func(a, b Vertex) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}),
	cmpopts.IgnoreFields(Vertex{}, "Flag"),
}

func box(x0, y0, x1, y1 int64) *Polygon {
	return FromPoints(1,
		Vertex{X: x0, Y: y0},
		Vertex{X: x0, Y: y1},
		Vertex{X: x1, Y: y1},
		Vertex{X: x1, Y: y0},
	)
}

func area(c *Contour) int64 {
	var a int64
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += c.Vertices[i].X*c.Vertices[j].Y - c.Vertices[j].X*c.Vertices[i].Y
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}

func totalArea(p *Polygon) int64 {
	var a int64
	for _, c := range p.Contours {
		a += area(c)
	}
	return a
}

// TestUnionOfTwoBoxes mirrors the original's "boxc"/"boxa" single-box
// sanity case generalized to two disjoint boxes: union area equals the
// sum of both boxes' areas.
func TestUnionOfTwoBoxes(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(200, 0, 300, 100)
	u := Clip(Union, a, b)
	if got, want := totalArea(u), int64(100*100*2); got != want {
		t.Fatalf("union area = %d, want %d", got, want)
	}
	if len(u.Contours) != 2 {
		t.Fatalf("union of disjoint boxes should keep 2 contours, got %d", len(u.Contours))
	}
}

// TestOverlappingUnion mirrors poly_test's "overlap" scenario (two
// identical boxes unioned collapses to one).
func TestOverlappingUnion(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(0, 0, 100, 100)
	u := Clip(Union, a, b)
	if got, want := totalArea(u), int64(100*100); got != want {
		t.Fatalf("union area = %d, want %d", got, want)
	}
}

// TestOverlappingBoxesIntersection intersects two same-direction boxes
// that share only their right/left halves.
func TestOverlappingBoxesIntersection(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(50, 0, 150, 100)
	in := Clip(Intersect, a, b)
	if got, want := totalArea(in), int64(50*100); got != want {
		t.Fatalf("intersect area = %d, want %d", got, want)
	}
}

// TestHoleUnion unions an outer box with a counter-wound inner box
// nested entirely inside it: the result must keep both contours, an
// outer ring and a hole, rather than collapsing to a single solid area
// or cancelling out entirely.
func TestHoleUnion(t *testing.T) {
	outer := box(0, 0, 100, 100)
	// Reverse of box()'s vertex order, so the inner ring winds opposite
	// the outer one and Clip keeps it as a hole rather than merging it
	// into the solid interior.
	inner := FromPoints(1,
		Vertex{X: 10, Y: 10},
		Vertex{X: 90, Y: 10},
		Vertex{X: 90, Y: 90},
		Vertex{X: 10, Y: 90},
	)

	u := Clip(Union, outer, inner)
	if len(u.Contours) != 2 {
		t.Fatalf("got %d contours, want 2 (outer ring + hole)", len(u.Contours))
	}

	areas := map[int64]bool{area(u.Contours[0]): true, area(u.Contours[1]): true}
	if !areas[100*100] || !areas[80*80] {
		t.Fatalf("contour areas = %v, want {%d, %d}", areas, 100*100, 80*80)
	}
}

// TestCancelDifferentWinding mirrors poly_test's "cancel": two
// identical-footprint boxes wound in opposite directions should
// entirely cancel under union (winding number never crosses the
// union threshold).
func TestCancelOppositeWinding(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := FromPoints(-1,
		Vertex{X: 0, Y: 0},
		Vertex{X: 100, Y: 0},
		Vertex{X: 100, Y: 100},
		Vertex{X: 0, Y: 100},
	)
	u := Clip(Union, a, b)
	if !u.Empty() {
		t.Fatalf("canceling union should be empty, got %d contours, area %d", len(u.Contours), totalArea(u))
	}
}

// TestDifferenceOfOverlappingBoxes: difference of two half-overlapping
// boxes keeps the region wound once but not twice: the union minus the
// overlap, i.e. the non-overlapping half of each box.
func TestDifferenceOfOverlappingBoxes(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(50, 0, 150, 100)
	d := Clip(Difference, a, b)
	if got, want := totalArea(d), int64(50*100*2); got != want {
		t.Fatalf("difference area = %d, want %d", got, want)
	}
}

// TestXorOfOverlappingBoxes: xor keeps both non-overlapping slivers.
func TestXorOfOverlappingBoxes(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(50, 0, 150, 100)
	x := Clip(Xor, a, b)
	if got, want := totalArea(x), int64(50*100*2); got != want {
		t.Fatalf("xor area = %d, want %d", got, want)
	}
}

// TestSubtract exercises the poly_sub convenience wrapper.
func TestSubtract(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(50, 0, 150, 100)
	s := Subtract(a, b)
	if got, want := totalArea(s), int64(50*100); got != want {
		t.Fatalf("subtract area = %d, want %d", got, want)
	}
}

// TestEmptyInputsReturnEmptyPolygon exercises Clip's degenerate-input path.
func TestEmptyInputsReturnEmptyPolygon(t *testing.T) {
	out := Clip(Union, New(), New())
	if !out.Empty() {
		t.Fatalf("clip of two empty polygons should be empty")
	}
}

// TestUnionOfIdenticalSquareReproducesSameCorners is scenario S1: two
// identical unit squares at (0,0)-(100,100), UNION, should come back as
// one CW contour with exactly the same four corners.
func TestUnionOfIdenticalSquareReproducesSameCorners(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(0, 0, 100, 100)
	u := Clip(Union, a, b)

	want := box(0, 0, 100, 100)
	if diff := cmp.Diff(want.Contours, u.Contours, vertexCmp); diff != "" {
		t.Fatalf("union of identical squares differs (-want +got):\n%s", diff)
	}
}

// TestSideBySideUnionStaysTwoContours mirrors poly_test's "sidebyside":
// boxes that only share an edge should not merge into a single contour
// incorrectly, and must not lose area.
func TestSideBySideUnion(t *testing.T) {
	a := box(0, 0, 100, 100)
	b := box(100, 0, 200, 100)
	u := Clip(Union, a, b)
	if got, want := totalArea(u), int64(100*100*2); got != want {
		t.Fatalf("union area = %d, want %d", got, want)
	}
}
