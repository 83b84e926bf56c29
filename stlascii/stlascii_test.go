package stlascii

import (
	"strings"
	"testing"
)

const validSTL = `solid cube
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 10 0 0
    vertex 0 10 0
  endloop
endfacet
facet normal 0 0 1
  outer loop
    vertex 0 0 10
    vertex 10 0 10
    vertex 0 10 10
  endloop
endfacet
endsolid cube
`

func TestParseValid(t *testing.T) {
	s, err := Parse(strings.NewReader(validSTL), "unused")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "cube" {
		t.Fatalf("name = %q, want %q", s.Name, "cube")
	}
	if len(s.Facets) != 2 {
		t.Fatalf("facets = %d, want 2", len(s.Facets))
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	doc := strings.ToUpper(validSTL)
	s, err := Parse(strings.NewReader(doc), "unused")
	if err != nil {
		t.Fatalf("unexpected error parsing upper-cased keywords: %v", err)
	}
	if len(s.Facets) != 2 {
		t.Fatalf("facets = %d, want 2", len(s.Facets))
	}
}

func TestParseMissingSolidHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("facet normal 0 0 1\n"), "x")
	if err == nil {
		t.Fatalf("expected error for missing 'solid' header")
	}
}

func TestParseTruncatedFacetReportsLine(t *testing.T) {
	doc := "solid x\nfacet normal 0 0 1\n  outer loop\n    vertex 0 0 0\n"
	_, err := Parse(strings.NewReader(doc), "x")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Line != 4 {
		t.Fatalf("ParseError.Line = %d, want 4", pe.Line)
	}
}

func TestParseBadVertexNumber(t *testing.T) {
	doc := "solid x\nfacet normal 0 0 1\n  outer loop\n    vertex a 0 0\n    vertex 1 0 0\n    vertex 0 1 0\n  endloop\nendfacet\nendsolid\n"
	_, err := Parse(strings.NewReader(doc), "x")
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError for bad vertex number, got %v", err)
	}
}
