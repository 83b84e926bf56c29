package fillplan

import (
	"math"

	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/internal/xlog"
	"github.com/revk3d/e3dgo/mesh"
	"github.com/revk3d/e3dgo/poly"
)

// Extrude generates the actual zig-zag/spiral extrusion paths for
// every slice's infill, solid and flying regions and adds them to
// each slice's Extrude bins. layer is the per-slice index used to
// phase successive layers' zig-zag pattern against each other so
// stacked layers cross at an angle instead of stacking in register.
//
// Direct port of fill_extrude: infill (sparse) and solid (full
// density) both go through the zig-zag generator zigZag, prepended to
// the front of the same Fill bin; flying area is instead plotted as a sequence of
// concentric inward insets (an outside-in spiral), appended to the
// Flying bin in the order generated.
func Extrude(stl *mesh.STL, slices []*Slice, width dim.Dim, density, fillFlow float64) {
	for layer, s := range slices {
		zigZag(Fill, stl, s, s.Infill, layer, width, density, fillFlow)
		zigZag(Fill, stl, s, s.Solid, layer, width, 1, 1)

		q := poly.Inset(s.Flying, width/2)
		for !q.Empty() {
			n := poly.Inset(q, width)
			appendExtrude(&s.Extrude[Flying], q)
			q = n
		}
	}
}

// zigZag fills p with a crosshatched zig-zag pattern at the given
// density (1 = fully solid, <1 = sparse infill) and prepends the
// result to a's Extrude[bin]. dir varies the phase/orientation of the
// pattern between calls (successive layers, or the two passes of a
// sparse fill) so that stacked sparse layers interlock instead of
// aligning.
//
// Direct port of the static fill() helper, including its 2-pass sparse
// strategy: pass 0 keeps the "top" side of each clipped strip as an
// open zig-zag path, pass 1 keeps the complementary "bottom" side
// reversed, and the two passes' open paths are stitched end-to-end
// afterward wherever they coincide.
func zigZag(bin int, stl *mesh.STL, a *Slice, p *poly.Polygon, dir int, width dim.Dim, density, fillFlow float64) {
	if p.Empty() {
		return
	}
	if density <= 0 {
		xlog.Warn().Float64("density", density).Msg("fill density is zero or negative, skipping region")
		return
	}
	q := poly.Inset(p, width/2)
	w := stl.Max.X - stl.Min.X
	d := dim.Dim(float64(width) * math.Sqrt2)
	dy := d * 2
	iy := dy - d
	flag := 0
	passes := 1
	if density < 1 {
		dy = dim.Dim(float64(d) * (2.0 * fillFlow / density))
		iy = dy / 2
		flag = 1
		passes = 2
	}

	for pass := 0; pass < passes; pass++ {
		var b poly.Builder
		phase := (d*dim.Dim(dir)/4 + dim.Dim(((dir/2+pass)%2))*dy/2) % dy
		if phase < 0 {
			phase += dy
		}
		for y := stl.Min.Y - w; y < stl.Max.Y+dy; y += dy {
			oy := y + phase
			b.Start()
			if dir&1 != 0 {
				b.Add(stl.Min.X, oy, flag)
				b.Add(stl.Min.X, oy+iy, flag*2)
				b.Add(stl.Max.X, oy+w+iy, flag)
				b.Add(stl.Max.X, oy+w, flag)
			} else {
				b.Add(stl.Max.X, oy, flag)
				b.Add(stl.Min.X, oy+w, flag)
				b.Add(stl.Min.X, oy+w+iy, flag*2)
				b.Add(stl.Max.X, oy+iy, flag)
			}
		}
		strips := b.Build()
		clipped := poly.Clip(poly.Intersect, strips, q)

		if passes > 1 {
			clipped = trimToTopOrBottom(clipped, pass)
		}
		prefixExtrude(&a.Extrude[bin], clipped)
	}

	if passes > 1 {
		joinOpenEnds(a.Extrude[bin])
	}
}

// trimToTopOrBottom keeps, for pass 0, the run of vertices from the
// "top" marker (flag==2) forward to the first flag==1 marker,
// discarding the rest of the contour and leaving an open path; for
// pass 1 it keeps the complementary run, reversed. Contours with no
// top marker are dropped entirely on pass 1, kept whole on pass 0.
func trimToTopOrBottom(p *poly.Polygon, pass int) *poly.Polygon {
	if p.Empty() {
		return p
	}
	var kept []*poly.Contour
	for _, c := range p.Contours {
		n := len(c.Vertices)
		topIdx := -1
		for i, v := range c.Vertices {
			if v.Flag == 2 {
				topIdx = i
			}
		}
		if topIdx == -1 {
			if pass == 0 {
				kept = append(kept, c)
			}
			continue
		}
		endIdx := -1
		for i := 1; i < n; i++ {
			j := (topIdx + i) % n
			if j == topIdx {
				break
			}
			if c.Vertices[j].Flag != 0 {
				endIdx = j
				break
			}
		}
		if endIdx == -1 || c.Vertices[endIdx].Flag != 1 {
			if pass == 0 {
				kept = append(kept, c)
			}
			continue
		}

		var verts []poly.Vertex
		if pass != 0 {
			for i := (topIdx + 1) % n; ; i = (i + 1) % n {
				verts = append([]poly.Vertex{c.Vertices[i]}, verts...)
				if i == endIdx {
					break
				}
			}
		} else {
			for i := endIdx; ; i = (i + 1) % n {
				verts = append(verts, c.Vertices[i])
				if i == topIdx {
					break
				}
			}
		}
		kept = append(kept, &poly.Contour{Vertices: verts, Dir: 0})
	}
	return &poly.Polygon{Contours: kept}
}

// joinOpenEnds stitches any open (Dir==0) contours in p whose tail
// exactly meets another open contour's head, repeating until no more
// joins are possible.
func joinOpenEnds(p *poly.Polygon) {
	if p.Empty() {
		return
	}
	for {
		joined := false
		for i, c := range p.Contours {
			if c.Dir != 0 || len(c.Vertices) == 0 {
				continue
			}
			tail := c.Vertices[len(c.Vertices)-1]
			for j, c2 := range p.Contours {
				if i == j || c2.Dir != 0 || len(c2.Vertices) == 0 {
					continue
				}
				head := c2.Vertices[0]
				if head.X == tail.X && head.Y == tail.Y {
					c.Vertices = append(c.Vertices, c2.Vertices[1:]...)
					p.Contours = append(p.Contours[:j], p.Contours[j+1:]...)
					joined = true
					break
				}
			}
			if joined {
				break
			}
		}
		if !joined {
			return
		}
	}
}
