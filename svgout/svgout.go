// Package svgout renders a finished build.Result as an Inkscape-layered
// SVG preview, one layer group per slice, Y-flipped so the model's
// increasing Y goes up while SVG's increasing y goes down.
//
// Grounded on _examples/original_source/e3d-svg.c in full.
package svgout

import (
	"fmt"
	"io"

	"github.com/revk3d/e3dgo/build"
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/fillplan"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

// Write renders the preview to w. width is the nominal extrusion
// width, used only to scale the cosmetic stroke widths of the drawn
// paths the way the original does.
func Write(w io.Writer, stl *mesh.STL, result *build.Result, width dim.Dim) error {
	bw := &errWriter{w: w}
	places := 3

	dimout := func(v dim.Dim) string { return dim.Format(v, places) }

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" version="1.1" width="%s" height="%s">`+"\n",
		dimout(stl.Max.X), dimout(stl.Max.Y))

	outpath := func(p *poly.Polygon, style string, dir int8) {
		if p.Empty() {
			return
		}
		fmt.Fprintf(bw, `<path style="%s" d="`, style)
		for _, c := range p.Contours {
			if len(c.Vertices) == 0 || (dir != 0 && c.Dir != dir) {
				continue
			}
			for i, v := range c.Vertices {
				cmd := "L"
				if i == 0 {
					cmd = "M"
				}
				fmt.Fprintf(bw, " %s %s %s", cmd, dimout(v.X), dimout(stl.Max.Y-v.Y))
			}
			fmt.Fprint(bw, " Z")
		}
		fmt.Fprint(bw, `"/>`+"\n")
	}

	for i, s := range result.Slices {
		hidden := ""
		if i > 0 {
			hidden = ` style="display:none"`
		}
		fmt.Fprintf(bw, `<g inkscape:label="%s" inkscape:groupmode="layer"%s>`+"\n", dimout(s.Z), hidden)

		outpath(s.Outline, "fill:#ff8;stroke:none;fill-opacity:0.5", 0)
		outpath(s.Solid, "fill:#f88;stroke:none;fill-opacity:0.5", 0)
		outpath(s.Infill, "fill:#8ff;stroke:none;fill-opacity:0.5", 0)
		outpath(s.Flying, "fill:#f8f;stroke:none;fill-opacity:0.5", 0)
		outpath(s.Fill, fmt.Sprintf("fill:none;stroke:black;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round;", dimout(width/10)), 0)

		for bin := 0; bin < fillplan.BinCount; bin++ {
			style := fmt.Sprintf("fill:none;stroke:#%X8f;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round;stroke-opacity:0.5",
				bin*4, dimout(width*9/10))
			outpath(s.Extrude[bin], style, 1)
			outpath(s.Extrude[bin], style, -1)
		}

		if i == 0 {
			outpath(result.Anchor, fmt.Sprintf("fill:none;stroke:#84f;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round;stroke-opacity:0.5", dimout(width*9/10)), 0)
			outpath(result.Join, fmt.Sprintf("fill:none;stroke:#8cf;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round;stroke-opacity:0.5", dimout(width*9/10)), 0)
			outpath(result.Border, fmt.Sprintf("fill:none;stroke:green;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round;", dimout(width/10)), 1)
		}

		fmt.Fprintln(bw, "</g>")
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.err
}

// errWriter sticks the first write error so the caller only has to
// check it once, after rendering every element.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
