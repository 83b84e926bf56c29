// Package stlascii parses the ASCII STL text grammar into a mesh.STL.
// Binary STL is out of scope: the grammar here is purely the
// "solid/facet normal/outer loop/vertex/endloop/endfacet/endsolid"
// text format.
package stlascii

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/mesh"
)

// ParseError is a fatal grammar violation, citing the 1-based input
// line number it was found on.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stlascii: line %d: %s", e.Line, e.Msg)
}

// Parse reads an ASCII STL document from r and returns its mesh. Every
// keyword is matched case-insensitively; any non-blank line that
// doesn't match the expected grammar at its position is a fatal
// *ParseError.
func Parse(r io.Reader, name string) (*mesh.STL, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var facets []mesh.Facet
	line := 0
	solidName := name

	next := func() (string, bool) {
		for sc.Scan() {
			line++
			t := strings.TrimSpace(sc.Text())
			if t == "" {
				continue
			}
			return t, true
		}
		return "", false
	}

	tok, ok := next()
	if !ok {
		return nil, &ParseError{Line: line, Msg: "empty file, expected 'solid'"}
	}
	fields := strings.Fields(tok)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "solid") {
		return nil, &ParseError{Line: line, Msg: "expected 'solid' header"}
	}
	if len(fields) > 1 {
		solidName = strings.Join(fields[1:], " ")
	}

	for {
		tok, ok = next()
		if !ok {
			return nil, &ParseError{Line: line, Msg: "unexpected end of file, expected 'facet' or 'endsolid'"}
		}
		fields = strings.Fields(tok)
		switch strings.ToLower(fields[0]) {
		case "endsolid":
			return mesh.New(solidName, facets), nil
		case "facet":
			f, err := parseFacet(next, &line)
			if err != nil {
				return nil, err
			}
			facets = append(facets, f)
		default:
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("unexpected token %q, expected 'facet' or 'endsolid'", fields[0])}
		}
	}
}

func parseFacet(next func() (string, bool), line *int) (mesh.Facet, error) {
	tok, ok := next()
	if !ok {
		return mesh.Facet{}, &ParseError{Line: *line, Msg: "unexpected end of file, expected 'outer loop'"}
	}
	if f := strings.Fields(tok); len(f) < 2 || !strings.EqualFold(f[0], "outer") || !strings.EqualFold(f[1], "loop") {
		return mesh.Facet{}, &ParseError{Line: *line, Msg: "expected 'outer loop'"}
	}

	var verts [3]mesh.Point
	for i := 0; i < 3; i++ {
		tok, ok = next()
		if !ok {
			return mesh.Facet{}, &ParseError{Line: *line, Msg: "unexpected end of file, expected 'vertex'"}
		}
		f := strings.Fields(tok)
		if len(f) != 4 || !strings.EqualFold(f[0], "vertex") {
			return mesh.Facet{}, &ParseError{Line: *line, Msg: "expected 'vertex x y z'"}
		}
		x, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return mesh.Facet{}, &ParseError{Line: *line, Msg: "bad vertex x: " + err.Error()}
		}
		y, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return mesh.Facet{}, &ParseError{Line: *line, Msg: "bad vertex y: " + err.Error()}
		}
		z, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return mesh.Facet{}, &ParseError{Line: *line, Msg: "bad vertex z: " + err.Error()}
		}
		verts[i] = mesh.Point{X: dim.FromReal(x), Y: dim.FromReal(y), Z: dim.FromReal(z)}
	}

	tok, ok = next()
	if !ok || !strings.EqualFold(strings.Fields(tok)[0], "endloop") {
		return mesh.Facet{}, &ParseError{Line: *line, Msg: "expected 'endloop'"}
	}
	tok, ok = next()
	if !ok || !strings.EqualFold(strings.Fields(tok)[0], "endfacet") {
		return mesh.Facet{}, &ParseError{Line: *line, Msg: "expected 'endfacet'"}
	}

	return mesh.Facet{A: verts[0], B: verts[1], C: verts[2]}, nil
}
