// Package build composes the dimension kernel, polygon algebra,
// slicer, fill planner, and path-ordering driver into the single
// pipeline that turns a loaded mesh into everything a G-code or SVG
// emitter needs.
//
// Grounded on _examples/original_source/e3d.c's main(): origin-shift,
// per-z slicing loop, per-slice perimeter pass (with the
// alternate-layer extra-skins toggle), whole-stack area pass, zig-zag
// extrude pass, optional anchor, then the ordering pass.
package build

import (
	"github.com/google/uuid"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/fillplan"
	"github.com/revk3d/e3dgo/internal/xlog"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/pathorder"
	"github.com/revk3d/e3dgo/poly"
	"github.com/revk3d/e3dgo/slicer"
)

// Config is the fully-resolved parameter bag threaded explicitly
// through the pipeline, replacing the original's process-wide globals.
type Config struct {
	LayerHeight dim.Dim
	WidthRatio  float64 // extrusion width = LayerHeight * WidthRatio
	StartZ      dim.Dim // negative means LayerHeight/2
	EndZ        dim.Dim // negative means the mesh's max Z
	Tolerance   dim.Dim // negative means LayerHeight

	Skins    int // perimeter loops on most layers
	AltSkins int // extra loops on alternate layers (0 disables)
	SkinFast bool

	SolidLayers int     // ±layers window for the solid/flying/infill split
	FillDensity float64 // 0..1, 1 = fully solid infill
	FillFlow    float64 // flow multiplier for sparse infill rasters

	AnchorLoops int
	AnchorGap   dim.Dim // multiplied by width
	AnchorStep  dim.Dim // multiplied by width
}

// Result carries every per-slice and whole-stack output the external
// emitters (gcodeout, svgout) need.
type Result struct {
	RunID  string
	Slices []*fillplan.Slice
	Anchor *poly.Polygon
	Join   *poly.Polygon
	Border *poly.Polygon
	EndX   dim.Dim
	EndY   dim.Dim
}

// Run slices stl per cfg, builds perimeter/area/extrude/anchor for
// every layer, orders the flying-layer paths, and returns the
// finished Result. stl is origin-shifted in place as a side effect,
// matching the original's stl_origin-then-slice order.
func Run(stl *mesh.STL, cfg Config) *Result {
	stl.Origin()

	sz, ez, tol := resolveRange(stl, cfg)
	width := dim.Dim(float64(cfg.LayerHeight) * cfg.WidthRatio)

	var slices []*fillplan.Slice
	for z := sz; z <= ez; z += cfg.LayerHeight {
		outline := slicer.Slice(stl, z, tol)
		if outline.Empty() {
			xlog.Debug().Int64("z", int64(z)).Msg("no facets crossed at this z, skipping slice")
			continue
		}
		slices = append(slices, fillplan.NewSlice(z, outline))
	}

	for i, s := range slices {
		loops := cfg.Skins
		if cfg.AltSkins > 0 && i%2 == 1 {
			loops += cfg.AltSkins
		}
		fillplan.Perimeter(s, width, loops, cfg.SkinFast)
	}

	border := fillplan.Area(slices, poly.New(), width, cfg.SolidLayers)
	fillplan.Extrude(stl, slices, width, cfg.FillDensity, cfg.FillFlow)

	res := &Result{RunID: uuid.NewString(), Slices: slices, Border: border}

	if cfg.AnchorLoops > 0 && len(slices) > 0 {
		var next *fillplan.Slice
		if len(slices) > 1 {
			next = slices[1]
		}
		join, anchor, newBorder := fillplan.Anchor(slices[0], next, border, cfg.AnchorLoops,
			width, width*cfg.AnchorGap, width*cfg.AnchorStep)
		res.Join, res.Anchor, res.Border = join, anchor, newBorder
	}

	res.EndX, res.EndY = pathorder.Order(slices, 0, 0)

	return res
}

func resolveRange(stl *mesh.STL, cfg Config) (sz, ez, tol dim.Dim) {
	sz, ez, tol = cfg.StartZ, cfg.EndZ, cfg.Tolerance
	if tol < 0 {
		tol = cfg.LayerHeight
	}
	if ez < 0 {
		ez = stl.Max.Z
	}
	if sz < 0 {
		sz = cfg.LayerHeight / 2
	}
	if sz < stl.Min.Z {
		sz = stl.Min.Z
	}
	if ez > stl.Max.Z {
		ez = stl.Max.Z
	}
	return
}
