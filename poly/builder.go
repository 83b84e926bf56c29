package poly

import "github.com/revk3d/e3dgo/dim"

// Builder accumulates contours into a Polygon. Its zero value is
// ready to use. Build hands over the accumulated Polygon and resets the
// Builder to its zero value, so no open contour cursor survives it,
// matching the "cursor is null after any public operation" invariant
// the original's poly_start/poly_add cursor enforced.
type Builder struct {
	poly *Polygon
	cur  *Contour
}

// Start begins a new contour; subsequent Add calls append to it until
// the next Start.
func (b *Builder) Start() {
	if b.poly == nil {
		b.poly = New()
	}
	b.cur = &Contour{}
	b.poly.Contours = append(b.poly.Contours, b.cur)
}

// Add appends a vertex to the contour most recently started. It calls
// Start implicitly if no contour is open yet.
func (b *Builder) Add(x, y dim.Dim, flag int) {
	if b.cur == nil {
		b.Start()
	}
	b.cur.Vertices = append(b.cur.Vertices, Vertex{X: x, Y: y, Flag: flag})
}

// Build returns the accumulated Polygon and resets the Builder.
func (b *Builder) Build() *Polygon {
	p := b.poly
	if p == nil {
		p = New()
	}
	b.poly = nil
	b.cur = nil
	return p
}

// FromPoints is a convenience constructor for a single-contour polygon,
// useful in tests and for callers (STL slicing, fill planning) that
// already have a closed vertex loop in hand.
func FromPoints(dir int8, pts ...Vertex) *Polygon {
	c := &Contour{Vertices: append([]Vertex(nil), pts...), Dir: dir}
	return &Polygon{Contours: []*Contour{c}}
}

// Clone returns a deep copy of p so callers can mutate the result
// without aliasing p's storage.
func (p *Polygon) Clone() *Polygon {
	if p == nil {
		return New()
	}
	out := &Polygon{Contours: make([]*Contour, len(p.Contours))}
	for i, c := range p.Contours {
		out.Contours[i] = &Contour{
			Vertices: append([]Vertex(nil), c.Vertices...),
			Dir:      c.Dir,
		}
	}
	return out
}
