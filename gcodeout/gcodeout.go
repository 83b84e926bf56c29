// Package gcodeout renders a finished build.Result into an
// absolute-coordinate, metric G-code program.
//
// Grounded on _examples/original_source/e3d-gcode.c in full: a fixed
// prelude and postlude bracket a layer loop that plots the border (to
// guarantee the end stops are hit and, absent an anchor, to prime
// extrusion), the anchor (both winding directions), then each slice's
// perimeter, fill, and flying-layer bins in turn.
package gcodeout

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/revk3d/e3dgo/build"
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/fillplan"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

// Params carries every scalar the emitter needs, independent of how
// the build pipeline arrived at slices and extrude paths.
type Params struct {
	LayerHeight dim.Dim
	WidthRatio  float64
	Filament    float64 // filament diameter, same units as dim.Dim's real value
	Packing     float64 // feed-rate multiplier

	Speed0 dim.Dim // first-layer feed rate
	Speed  dim.Dim // normal feed rate
	ZSpeed dim.Dim // maximum Z feed rate (0 disables the cap)

	Hop        dim.Dim // Z hop height for long travel moves
	Retract    float64 // extruder retract length (mm of filament)
	EPlaces    int     // extruder-axis decimal places
	AnchorFlow float64 // flow multiplier for anchor passes
	Mirror     bool
	Places     int // dimension decimal places (X/Y/Z/F)
}

// Write renders result against stl's centring into w and returns a
// wall-clock time estimate, accumulated the way the original does:
// distance over feed rate, summed across every non-zero-feed move.
func Write(w io.Writer, stl *mesh.STL, result *build.Result, p Params) (time.Duration, error) {
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, p: p}
	wr.cx = (stl.Min.X + stl.Max.X) / 2
	wr.cy = (stl.Min.Y + stl.Max.Y) / 2
	wr.lf = -1 // force the first move to always emit an F word

	wr.prelude()

	lh := dim.ToReal(p.LayerHeight)
	flowrate := lh * lh * p.WidthRatio / p.Filament / p.Filament * p.Packing

	borderFlow := flowrate
	if !result.Anchor.Empty() {
		borderFlow = 0
	}
	wr.plotLoops(result.Border, p.Speed, borderFlow, 1)
	wr.plotLoops(result.Anchor, p.Speed0, flowrate*p.AnchorFlow, 1)
	wr.plotLoops(result.Anchor, p.Speed0, flowrate*p.AnchorFlow, -1)

	sp := p.Speed0
	z := dim.Dim(0)
	for _, s := range result.Slices {
		wr.z = z
		wr.plotLoops(s.Extrude[fillplan.Perimeter], sp, flowrate, 1)
		wr.plotLoops(s.Extrude[fillplan.Perimeter], sp, flowrate, -1)
		wr.plotLoops(s.Extrude[fillplan.Fill], sp, flowrate, 0)
		// flying layer plotted in the order it was generated (an
		// outside-in spiral), both winding directions, at first-layer
		// speed since bridged material needs extra cooling time
		wr.plotLoops(s.Extrude[fillplan.Flying], p.Speed0, flowrate, -1)
		wr.plotLoops(s.Extrude[fillplan.Flying], p.Speed0, flowrate, 1)
		z += p.LayerHeight
		sp = p.Speed
	}

	wr.move(wr.px, wr.py, z+p.Hop, p.Retract)
	wr.move(wr.cx, wr.cy, z+p.Hop, p.Retract)
	wr.move(wr.cx, wr.cy, z+p.LayerHeight*10, p.Retract)
	wr.move(wr.cx, wr.cy, z+p.LayerHeight*20, 0)

	wr.postlude()

	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return time.Duration(wr.t) * time.Microsecond, nil
}

// writer holds the running G-code emission state, standing in for the
// original's stack of static locals captured by g1/move/extrude's
// nested-function closures.
type writer struct {
	w io.Writer
	p Params

	cx, cy dim.Dim
	z      dim.Dim

	lx, ly, lz, lf dim.Dim
	le             float64
	lfSet          bool

	px, py dim.Dim
	pe     float64

	t int64 // accumulated time estimate, microseconds
}

func (wr *writer) prelude() {
	fmt.Fprint(wr.w,
		"G21             ; metric\n"+
			"G90             ; absolute\n"+
			"G92 Z0 E0       ; reset Z and E \n"+
			"M106            ; fan on\n"+
			"G1 Z2 F60       ; up\n"+
			"G1 Z0.1         ; down\n"+
			"G92 Z0          ; origin\n")
	fmt.Fprintf(wr.w, "G92 X%s Y%s\n", wr.dimout(wr.cx), wr.dimout(wr.cy))
}

func (wr *writer) postlude() {
	fmt.Fprint(wr.w,
		"M108 S0         ; Cold hot end\n"+
			"M140 S0         ; Cold bed\n"+
			"M084            ; Disable steppers\n"+
			"M107            ; fan off\n")
}

func (wr *writer) dimout(v dim.Dim) string {
	return dim.Format(v, wr.p.Places)
}

// g1 emits one G1 line for whichever axes actually changed, applying
// the mirror transform and the max-Z-feed cap, and accumulates the
// time estimate.
func (wr *writer) g1(x, y, z dim.Dim, e float64, f dim.Dim) {
	if wr.p.Mirror {
		x = wr.cx*2 - x
	}
	if x == wr.lx && y == wr.ly && z == wr.lz && e == wr.le && wr.lfSet && f == wr.lf {
		return
	}
	if z != wr.lz && wr.p.ZSpeed != 0 {
		dx := float64(x - wr.lx)
		dy := float64(y - wr.ly)
		dz := float64(z - wr.lz)
		de := e - wr.le
		d := dim.Dim(math.Sqrt(dx*dx + dy*dy + dz*dz + de*de))
		adz := dz
		if adz < 0 {
			adz = -adz
		}
		if float64(d)*float64(wr.p.ZSpeed) < adz*float64(f) {
			f = dim.Dim(float64(d) * float64(wr.p.ZSpeed) / adz)
		}
	}

	var line string
	line = "G1"
	if x != wr.lx {
		line += " X" + wr.dimout(x)
	}
	if y != wr.ly {
		line += " Y" + wr.dimout(y)
	}
	if z != wr.lz {
		line += " Z" + wr.dimout(z)
	}
	if e != wr.le {
		line += fmt.Sprintf(" E%.*f", wr.p.EPlaces, e)
	}
	if !wr.lfSet || f != wr.lf {
		line += " F" + wr.dimout(f*60)
	}

	dx := float64(x - wr.lx)
	dy := float64(y - wr.ly)
	dz := float64(z - wr.lz)
	de := e - wr.le
	d := dim.Dim(math.Sqrt(dx*dx + dy*dy + dz*dz + de*de))
	if d != 0 && f != 0 {
		wr.t += int64(d) * 1000000 / int64(f)
	}

	wr.lx, wr.ly, wr.lz, wr.le, wr.lf, wr.lfSet = x, y, z, e, f, true
	fmt.Fprintln(wr.w, line)
}

func (wr *writer) move(x, y, z dim.Dim, back float64) {
	wr.px, wr.py = x, y
	wr.g1(x, y, z, wr.pe-back, wr.p.Speed)
}

func (wr *writer) extrude(x, y, z dim.Dim, speed dim.Dim, flowrate float64) {
	dx := float64(x - wr.px)
	dy := float64(y - wr.py)
	d := math.Sqrt(dx*dx + dy*dy)
	wr.px, wr.py = x, y
	wr.pe += dim.ToReal(dim.Dim(d)) * flowrate
	wr.g1(x, y, z, wr.pe, speed)
}

// plotLoops emits every contour of p whose winding direction matches
// dirFilter (0 means "plot every contour regardless of its own
// direction"), hopping and retracting first whenever the travel move
// to reach it exceeds five layer heights.
func (wr *writer) plotLoops(p *poly.Polygon, speed dim.Dim, flowrate float64, dirFilter int8) {
	if p.Empty() {
		return
	}
	for _, c := range p.Contours {
		if len(c.Vertices) == 0 {
			continue
		}
		if dirFilter != 0 && dirFilter != c.Dir {
			continue
		}
		v0 := c.Vertices[0]
		dx := float64(wr.px - v0.X)
		dy := float64(wr.py - v0.Y)
		d := dim.Dim(math.Sqrt(dx*dx + dy*dy))
		if wr.pe != 0 && d > wr.p.LayerHeight*5 {
			wr.move(wr.px, wr.py, wr.z+wr.p.Hop, wr.p.Retract)
			wr.move(v0.X, v0.Y, wr.z+wr.p.Hop, wr.p.Retract)
		}
		wr.move(v0.X, v0.Y, wr.z, 0)
		for _, v := range c.Vertices[1:] {
			wr.extrude(v.X, v.Y, wr.z, speed, flowrate)
		}
		wr.extrude(v0.X, v0.Y, wr.z, speed, flowrate)
	}
}
