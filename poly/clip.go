package poly

import (
	"sort"

	"github.com/revk3d/e3dgo/dim"

	"github.com/revk3d/e3dgo/internal/xlog"
)

// segment is a canonicalized directed edge: ax<bx, or ax==bx and
// ay<by. dir is +1 if the edge ran A->B in its source contour, -1 if
// it ran B->A (canonicalization may have swapped the endpoints); flag
// carries the sum of contributing vertex flags.
type segment struct {
	ax, ay, bx, by dim.Dim
	dir            int
	flag           int
}

// Clip returns the set of simple contours resulting from combining
// the given polygons under op, using winding-number logic (clockwise
// inside clockwise is not treated as a hole — direction is part of the
// winding count, not a special case).
//
// This is a direct structural port of poly_clip's four phases:
//  1. extract a canonical directed segment per input edge
//  2. repeatedly sweep left-to-right, splitting any pair of segments
//     that cross or touch, until a full sweep produces no new splits
//  3. coalesce exactly-coincident segments, sweep again accumulating a
//     winding count, and classify each segment as used/unused/reversed
//     per op's threshold rule
//  4. stitch the used segments, in x order, into closed contours
//
// Possible errors: Clip never returns an error. A clip that cannot
// fully close every path (should not happen; indicates numerically
// degenerate input) logs via xlog.Warn and closes the leftover path
// anyway, exactly as the original does.
func Clip(op ClipOp, polys ...*Polygon) *Polygon {
	out := New()
	var segs []*segment
	for _, q := range polys {
		if q.Empty() {
			continue
		}
		q = q.Clone()
		Tidy(q, 0)
		for _, c := range q.Contours {
			n := len(c.Vertices)
			for i := 0; i < n; i++ {
				a := c.Vertices[i]
				b := c.Vertices[(i+1)%n]
				segs = append(segs, canonical(a, b))
			}
		}
	}
	if len(segs) == 0 {
		return out
	}

	segs = sweepToFixedPoint(segs)
	if len(segs) == 0 {
		return out
	}

	segs = coalesce(segs)
	if len(segs) == 0 {
		return out
	}
	stitchPaths(out, segs, op)
	Tidy(out, 0)
	return out
}

// Subtract returns a∖b, i.e. poly_sub: INTERSECT(a, DIFFERENCE(a,b)).
func Subtract(a, b *Polygon) *Polygon {
	d := Clip(Difference, a, b)
	return Clip(Intersect, a, d)
}

func canonical(a, b Vertex) *segment {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return &segment{ax: a.X, ay: a.Y, bx: b.X, by: b.Y, dir: 1, flag: a.Flag}
	}
	return &segment{ax: b.X, ay: b.Y, bx: a.X, by: a.Y, dir: -1, flag: a.Flag}
}

func sortSegs(segs []*segment) {
	sort.Slice(segs, func(i, j int) bool {
		a, b := segs[i], segs[j]
		if a.ax != b.ax {
			return a.ax < b.ax
		}
		if a.ay != b.ay {
			return a.ay < b.ay
		}
		// Same angular sweep-order test as the original's qsort
		// comparator: order by slope of A-B around the shared start,
		// computed at 128-bit precision to stay exact at extreme
		// coordinates.
		return CrossProduct128(a.ax, a.ay, a.bx, a.by, b.bx, b.by).Sign() > 0
	})
}

// recheck flips a segment that split_line turned vertical-with-
// reversed-endpoints back into canonical ay<by order.
func recheck(s *segment) {
	if s.ax != s.bx {
		return
	}
	if s.ay <= s.by {
		return
	}
	s.ay, s.by = s.by, s.ay
	s.dir = -s.dir
}

// sweepToFixedPoint repeats the split-and-resweep sweep until a full
// pass over the active segments introduces no further splits, exactly
// as poly_clip's outer `while(1)` loop does: splitting a segment can
// change its slope enough to newly intersect a segment it previously
// missed, so the whole sweep must be redone from scratch whenever any
// split occurred.
func sweepToFixedPoint(stage1 []*segment) []*segment {
	for {
		sortSegs(stage1)
		splits := 0

		var sweep []*segment
		var queue []*segment // pending split fragments, kept in x order
		var stage2 []*segment
		lastX := stage1[0].ax

		splitLine := func(s *segment, x, y dim.Dim) {
			if x == s.ax && y == s.ay {
				return
			}
			if x == s.bx && y == s.by {
				return
			}
			if x < dim.Min(s.ax, s.bx) || x > dim.Max(s.ax, s.bx) {
				return
			}
			if y < dim.Min(s.ay, s.by) || y > dim.Max(s.ay, s.by) {
				return
			}
			splits++
			n := &segment{ax: x, ay: y, bx: s.bx, by: s.by, dir: s.dir, flag: s.flag}
			s.bx, s.by = x, y
			recheck(n)
			recheck(s)
			i := sort.Search(len(queue), func(i int) bool { return queue[i].ax >= x })
			queue = append(queue, nil)
			copy(queue[i+1:], queue[i:])
			queue[i] = n
		}

		intersectCheck := func(a, b *segment) {
			if a == b {
				return
			}
			if dim.Min(b.ay, b.by) > dim.Max(a.ay, a.by) {
				return
			}
			if dim.Min(a.ay, a.by) > dim.Max(b.ay, b.by) {
				return
			}
			if r := IntersectLine(a.ax, a.ay, a.bx, a.by, b.ax, b.ay, b.bx, b.by); r.Exists {
				if r.X >= dim.Min(a.ax, a.bx) && r.X <= dim.Max(a.ax, a.bx) &&
					r.X >= dim.Min(b.ax, b.bx) && r.X <= dim.Max(b.ax, b.bx) &&
					r.Y >= dim.Min(a.ay, a.by) && r.Y <= dim.Max(a.ay, a.by) &&
					r.Y >= dim.Min(b.ay, b.by) && r.Y <= dim.Max(b.ay, b.by) {
					splitLine(a, r.X, r.Y)
					splitLine(b, r.X, r.Y)
				}
			}
			// parallel/collinear overlap: endpoints of one lying on
			// the other each force a split.
			if r := IntersectPoint(a.ax, a.ay, a.bx, a.by, b.ax, b.ay); r.Exists && r.DistSq == 0 {
				splitLine(a, b.ax, b.ay)
			}
			if r := IntersectPoint(a.ax, a.ay, a.bx, a.by, b.bx, b.by); r.Exists && r.DistSq == 0 {
				splitLine(a, b.bx, b.by)
			}
			if r := IntersectPoint(b.ax, b.ay, b.bx, b.by, a.ax, a.ay); r.Exists && r.DistSq == 0 {
				splitLine(b, a.ax, a.ay)
			}
			if r := IntersectPoint(b.ax, b.ay, b.bx, b.by, a.bx, a.by); r.Exists && r.DistSq == 0 {
				splitLine(b, a.bx, a.by)
			}
		}

		segmentTidy := func(x dim.Dim) {
			keep := sweep[:0]
			for _, s := range sweep {
				if s.bx < x {
					stage2 = append(stage2, s)
					continue
				}
				keep = append(keep, s)
			}
			sweep = keep
		}

		segmentAdd := func(q *segment) {
			for _, s := range sweep {
				intersectCheck(s, q)
			}
			sweep = append(sweep, q)
			if q.ax != lastX {
				lastX = q.ax
				segmentTidy(lastX)
			}
		}

		si := 0
		for si < len(stage1) || len(queue) > 0 {
			var s *segment
			if si < len(stage1) && (len(queue) == 0 || queue[0].ax > stage1[si].ax) {
				s = stage1[si]
				si++
			} else {
				s = queue[0]
				queue = queue[1:]
			}
			segmentAdd(s)
		}
		segmentTidy(dim.Dim(1<<62 - 1))

		if splits == 0 {
			return stage2
		}
		stage1 = stage2
	}
}

// coalesce merges exactly-coincident segments (summing dir and flag)
// and discards any whose combined dir cancels to zero.
func coalesce(stage2 []*segment) []*segment {
	sortSegs(stage2)
	var out []*segment
	i := 0
	for i < len(stage2) {
		s := stage2[i]
		j := i + 1
		for j < len(stage2) && same(stage2[j], s) {
			s.flag += stage2[j].flag
			s.dir += stage2[j].dir
			j++
		}
		if s.dir != 0 {
			out = append(out, s)
		}
		i = j
	}
	return out
}

func same(a, b *segment) bool {
	return a.ax == b.ax && a.ay == b.ay && a.bx == b.bx && a.by == b.by
}

// activePoint is a segment awaiting path-stitching once its column
// (the sweep's x position) has fully passed, carrying the winding
// classification computed when it was swept.
type activePoint struct {
	ax, ay, bx, by dim.Dim
	dir, flag, use int
}

// openEnd is one in-progress output path; a and b are its two loose
// ends (head/tail vertex lists grow from the middle outward exactly
// like the original's path_t, but are kept as plain slices here).
type openEnd struct {
	verts []Vertex // always stored head(a)...tail(b)
}

func stitchPaths(out *Polygon, segs []*segment, op ClipOp) {
	var points []*activePoint
	var paths []*openEnd
	lastX := segs[0].ax - 1

	closeThrough := func(x dim.Dim) {
		remaining := points[:0]
		for _, p := range points {
			if p.bx > x {
				remaining = append(remaining, p)
				continue
			}
			if p.use != 0 {
				ax, ay, bx, by := p.ax, p.ay, p.bx, p.by
				if p.use < 0 {
					ax, bx = bx, ax
					ay, by = by, ay
				}
				closeOrJoin(out, &paths, ax, ay, bx, by, p.use, p.flag)
			}
		}
		points = remaining
	}

	for _, s := range segs {
		if s.ax != lastX {
			closeThrough(s.ax)
			lastX = s.ax
		}

		// Advance past every still-active point whose extended line
		// lies below s at x=s.ax, accumulating the winding
		// contribution of the non-vertical ones — this reproduces the
		// original's dynamic y-ordered insertion via &yp without a
		// linked list.
		wind := 0
		idx := 0
		for idx < len(points) {
			p := points[idx]
			if p.ay*(p.bx-p.ax)+(p.by-p.ay)*(s.ax-p.ax) > s.ay*(p.bx-p.ax) {
				break
			}
			if p.bx > p.ax {
				wind -= p.dir
			}
			idx++
		}

		use, dir := 0, -s.dir
		switch {
		case op > 0:
			if wind < int(op) && wind+dir >= int(op) {
				use--
			} else if wind >= int(op) && wind+dir < int(op) {
				use++
			}
		case op == 0:
			if dir%2 != 0 {
				if wind%2 != 0 {
					use = 1
				} else {
					use = -1
				}
			}
		default:
			n := int(-op)
			if wind < 1 && wind+dir >= 1 {
				use--
			} else if wind >= 1 && wind+dir < 1 {
				use++
			}
			if wind < n && wind+dir >= n {
				use++
			} else if wind >= n && wind+dir < n {
				use--
			}
		}

		p := &activePoint{ax: s.ax, ay: s.ay, bx: s.bx, by: s.by, dir: s.dir, flag: s.flag, use: use}
		points = append(points[:idx], append([]*activePoint{p}, points[idx:]...)...)
	}
	closeThrough(dim.Dim(1<<62 - 1))

	if len(paths) > 0 {
		xlog.Warn().Int("paths", len(paths)).Msg(ErrUnclosedPath.Error())
		for _, pa := range paths {
			c := &Contour{Vertices: pa.verts}
			out.Contours = append(out.Contours, c)
		}
	}
}

// closeOrJoin implements paths_close's per-segment resolution: the
// segment a->b either closes an existing path into a contour, joins
// two distinct open paths end-to-end, tacks onto one open path's
// loose end, or starts a brand new open path.
func closeOrJoin(out *Polygon, paths *[]*openEnd, ax, ay, bx, by dim.Dim, use, flag int) {
	var aIdx, bIdx = -1, -1
	for i, p := range *paths {
		tail := p.verts[len(p.verts)-1]
		if tail.X == ax && tail.Y == ay {
			aIdx = i
		}
		head := p.verts[0]
		if head.X == bx && head.Y == by {
			bIdx = i
		}
	}

	switch {
	case aIdx >= 0 && bIdx >= 0 && aIdx == bIdx:
		p := (*paths)[aIdx]
		dir := int8(0)
		if use > 0 {
			dir = 1
		} else if use < 0 {
			dir = -1
		}
		if ax == bx {
			dir = -dir
		}
		out.Contours = append(out.Contours, &Contour{Vertices: p.verts, Dir: dir})
		*paths = removeOpenEnd(*paths, aIdx)
	case aIdx >= 0 && bIdx >= 0:
		a := (*paths)[aIdx]
		b := (*paths)[bIdx]
		a.verts = append(a.verts, b.verts...)
		*paths = removeOpenEnd(*paths, bIdx)
	case aIdx >= 0:
		p := (*paths)[aIdx]
		p.verts = append(p.verts, Vertex{X: bx, Y: by, Flag: flag})
	case bIdx >= 0:
		p := (*paths)[bIdx]
		p.verts = append([]Vertex{{X: ax, Y: ay, Flag: flag}}, p.verts...)
	default:
		*paths = append(*paths, &openEnd{verts: []Vertex{{X: ax, Y: ay}, {X: bx, Y: by, Flag: flag}}})
	}
}

func removeOpenEnd(paths []*openEnd, i int) []*openEnd {
	return append(paths[:i:i], paths[i+1:]...)
}
