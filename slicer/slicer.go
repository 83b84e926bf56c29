// Package slicer sections a triangulated mesh with a horizontal plane
// at a given Z, producing one outline polygon per call.
//
// Direct port of _examples/original_source/e3d-slice.c: each facet
// crossing z contributes exactly one 2D segment (direction-preserving,
// so the resulting segments already wind consistently with the facet
// normals), and those segments are stitched into closed contours by
// greedily following the nearest unconsumed endpoint within tolerance.
package slicer

import (
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/internal/xlog"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

type point struct{ x, y dim.Dim }

type segment struct {
	p [2]point
}

// Slice sections stl at height z, using tolerance as the maximum gap
// between two segment endpoints that still counts as "connected", and
// returns the resulting closed outline. If no facet crosses z, it
// returns an empty polygon.
func Slice(stl *mesh.STL, z, tolerance dim.Dim) *poly.Polygon {
	segs := extractSegments(stl, z)
	if len(segs) == 0 {
		return poly.New()
	}

	outline := stitch(segs, tolerance*tolerance)

	poly.Tidy(outline, tolerance/10)
	return poly.Clip(poly.Union, outline)
}

// extractSegments finds, for every facet straddling z, the single 2D
// segment where the facet's surface crosses the plane. Segment
// endpoint order preserves the facet's winding: point[dir] is always
// the end that continues the outline in the facet's own direction.
func extractSegments(stl *mesh.STL, z dim.Dim) []segment {
	var segs []segment
	for _, f := range stl.Facets {
		verts := [3]mesh.Point{f.A, f.B, f.C}

		a := 0
		for a < 3 && verts[a].Z > z {
			a++
		}
		if a == 3 {
			continue // all above
		}
		b := 0
		for b < 3 && verts[b].Z <= z {
			b++
		}
		if b == 3 {
			continue // all below
		}
		c := 0
		for c == a || c == b {
			c++
		}

		dir := 0
		if a == (b+1)%3 {
			dir = 1
		}

		var s segment
		ia, ib := a, b
		s.p[dir] = crossing(verts[ia], verts[ib], z)
		if verts[c].Z <= z {
			ia = c
		} else {
			ib = c
		}
		s.p[1-dir] = crossing(verts[ia], verts[ib], z)
		segs = append(segs, s)
	}
	return segs
}

func crossing(a, b mesh.Point, z dim.Dim) point {
	x := a.X + (b.X-a.X)*(z-a.Z)/(b.Z-a.Z)
	y := a.Y + (b.Y-a.Y)*(z-a.Z)/(b.Z-a.Z)
	return point{x: x, y: y}
}

// stitch joins segments end-to-end into closed contours by repeatedly
// following the nearest remaining segment's matching endpoint, within
// tol2 squared distance. A fresh contour starts whenever no remaining
// segment is close enough to continue the current one.
func stitch(segs []segment, tol2 dim.Dim) *poly.Polygon {
	remaining := append([]segment(nil), segs...)

	// Pick a consistent winding direction from the leftmost endpoint
	// of any non-horizontal segment, exactly as the original does
	// before building any contour.
	dir := 0
	found := false
	var startX dim.Dim
	for _, s := range remaining {
		if s.p[0].y == s.p[1].y {
			continue
		}
		for e := 0; e < 2; e++ {
			if !found || s.p[e].x < startX {
				found = true
				startX = s.p[e].x
				if s.p[0].y > s.p[1].y {
					dir = 1
				} else {
					dir = 0
				}
			}
		}
	}

	var bld poly.Builder
	orphans := 0
	for len(remaining) > 0 {
		bld.Start()
		cur := remaining[0]
		remaining = remaining[1:]
		for {
			bld.Add(cur.p[dir].x, cur.p[dir].y, 0)
			x, y := cur.p[1-dir].x, cur.p[1-dir].y

			bestIdx := -1
			var bestD dim.Dim
			for i, s := range remaining {
				d := dim.Sq(s.p[dir].x-x) + dim.Sq(s.p[dir].y-y)
				if bestIdx == -1 || d < bestD {
					bestIdx, bestD = i, d
				}
			}
			if bestIdx == -1 {
				break
			}
			if bestD > tol2 {
				orphans++
				break
			}
			cur = remaining[bestIdx]
			remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		}
	}

	if orphans > 0 {
		xlog.Debug().Int("segments", orphans).Msg("slice contour ended short of its nearest candidate segment")
	}

	return bld.Build()
}
