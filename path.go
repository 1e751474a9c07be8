package pathbool

import "math"

// Path is an ordered list of segments, open or closed. Closed paths are
// the only kind the boolean operators accept as output; open paths may be
// used as the left-hand operand of Subtract/Intersect against a closed
// right-hand operand (spec §7).
type Path struct {
	Segments []Segment
	Closed   bool
}

// NewPath returns an empty open path.
func NewPath() *Path {
	return &Path{}
}

// Clone returns a deep copy of p; the engine never mutates its operands in place.
func (p *Path) Clone() *Path {
	q := &Path{Closed: p.Closed, Segments: make([]Segment, len(p.Segments))}
	copy(q.Segments, p.Segments)
	return q
}

// MoveTo starts the path at the given anchor. Calling it more than once on
// the same Path is a programmer error for this package's purposes (unlike
// the teacher's flat-command Path, a Path here holds exactly one subpath;
// use CompoundPath for multiple subpaths).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, NewSegment(Vector{x, y}))
	return p
}

// LineTo appends a straight-line segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, NewSegment(Vector{x, y}))
	return p
}

// CubeTo appends a cubic Bézier segment: cp1/cp2 are absolute control
// points for the curve from the current last anchor to (x,y).
func (p *Path) CubeTo(cp1x, cp1y, cp2x, cp2y, x, y float64) *Path {
	n := len(p.Segments)
	if n == 0 {
		p.Segments = append(p.Segments, NewSegment(Vector{}))
		n = 1
	}
	p.Segments[n-1].HandleOut = Vector{cp1x, cp1y}.Sub(p.Segments[n-1].Anchor)
	end := Vector{x, y}
	p.Segments = append(p.Segments, Segment{Anchor: end, HandleIn: Vector{cp2x, cp2y}.Sub(end)})
	return p
}

// Close marks the path closed: an implicit curve connects the last
// segment back to the first.
func (p *Path) Close() *Path {
	p.Closed = true
	return p
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.Segments)
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// NumCurves returns how many curves the path's segments define.
func (p *Path) NumCurves() int {
	if len(p.Segments) == 0 {
		return 0
	}
	if p.Closed {
		return len(p.Segments)
	}
	return len(p.Segments) - 1
}

// Curve returns the i'th curve of the path (0-indexed), wrapping at the
// close for closed paths.
func (p *Path) Curve(i int) Curve {
	n := len(p.Segments)
	j := i + 1
	if j == n {
		j = 0
	}
	return NewCurve(p.Segments[i], p.Segments[j])
}

// Curves returns every curve of the path in order.
func (p *Path) Curves() []Curve {
	n := p.NumCurves()
	cs := make([]Curve, n)
	for i := 0; i < n; i++ {
		cs[i] = p.Curve(i)
	}
	return cs
}

// Translate offsets every anchor by (dx,dy); handles are stored relative to
// their anchor, so they move with it unchanged.
func (p *Path) Translate(dx, dy float64) *Path {
	d := Vector{dx, dy}
	for i := range p.Segments {
		p.Segments[i].Anchor = p.Segments[i].Anchor.Add(d)
	}
	return p
}

// Reverse returns a new path tracing the same geometry in the opposite direction.
func (p *Path) Reverse() *Path {
	n := len(p.Segments)
	q := &Path{Closed: p.Closed, Segments: make([]Segment, n)}
	for i := 0; i < n; i++ {
		s := p.Segments[n-1-i]
		q.Segments[i] = Segment{Anchor: s.Anchor, HandleIn: s.HandleOut, HandleOut: s.HandleIn}
	}
	return q
}

// Bounds returns the path's loose bounding box (union of curve control-polygon boxes).
func (p *Path) Bounds() Bounds {
	b := emptyBounds()
	for _, c := range p.Curves() {
		b = b.Union(c.Bounds())
	}
	return b
}

// Area returns the signed area enclosed by a closed path (positive for
// counter-clockwise, negative for clockwise, in the Y-up mathematical
// sense of the formula) via the shoelace formula
// generalized to cubic Béziers (Green's theorem on each curve).
func (p *Path) Area() float64 {
	if len(p.Segments) < 2 {
		return 0
	}
	a := 0.0
	for _, c := range p.Curves() {
		a += curveSignedAreaContribution(c)
	}
	return a
}

// curveSignedAreaContribution returns the contribution of c to the signed
// area integral (1/2)∮(x dy - y dx), exact for a cubic Bézier (Green's
// theorem applied term-by-term to the Bernstein basis).
func curveSignedAreaContribution(c Curve) float64 {
	x0, y0 := c.P0.X, c.P0.Y
	x1, y1 := c.P1.X, c.P1.Y
	x2, y2 := c.P2.X, c.P2.Y
	x3, y3 := c.P3.X, c.P3.Y
	return 0.3*(x0*y1-x1*y0) + 0.15*(x0*y2-x2*y0) + 0.05*(x0*y3-x3*y0) +
		0.15*(x1*y2-x2*y1) + 0.15*(x1*y3-x3*y1) + 0.3*(x2*y3-x3*y2)
}

// IsClockwise returns true if the path's signed area is negative.
func (p *Path) IsClockwise() bool {
	return p.Area() < 0
}

// SetClockwise returns p (reversed if necessary) oriented clockwise when
// cw is true, counter-clockwise otherwise.
func (p *Path) SetClockwise(cw bool) *Path {
	if p.IsClockwise() != cw {
		return p.Reverse()
	}
	return p
}

// InteriorPoint returns a point inside a closed path, used by the
// orientation fixer (spec §4.8). It starts from the bounding box center
// and, if that isn't actually inside the path's fill, casts a horizontal
// ray and bisects between the first two intercepts. When the ray finds
// fewer than two intercepts it returns the bounding box center, which is
// then not necessarily inside the path.
func (p *Path) InteriorPoint() Vector {
	b := p.Bounds()
	c := b.Center()
	if p.Contains(c) {
		return c
	}
	var xs []float64
	for _, curve := range p.Curves() {
		lo, hi := curve.P0.Y, curve.P3.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo-GeometricEpsilon > c.Y || c.Y > hi+GeometricEpsilon {
			continue
		}
		for _, t := range SolveCubicAxis(curve, 1, c.Y, 0, 1) {
			xs = append(xs, curve.PointAtTime(t).X)
		}
	}
	if len(xs) < 2 {
		return c
	}
	// pick the two smallest intercepts so the midpoint is guaranteed between
	// a pair of crossings rather than straddling the whole span.
	lo, hi := smallestTwo(xs)
	return Vector{(lo + hi) / 2, c.Y}
}

func smallestTwo(xs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(1)
	for _, x := range xs {
		if x < lo {
			hi = lo
			lo = x
		} else if x < hi {
			hi = x
		}
	}
	return lo, hi
}

// Contains reports whether pt lies in the region filled by p under the
// non-zero winding rule, using the engine's own ray-cast winding query.
func (p *Path) Contains(pt Vector) bool {
	return getWindingSimple([]*Path{p}, pt, false).winding != 0
}

// Paths implements PathItem: a single Path is its own one-element subpath list.
func (p *Path) Paths() []*Path {
	return []*Path{p}
}

// FillRuleOf implements PathItem for a bare Path, which always uses NonZero.
func (p *Path) FillRuleOf() FillRule {
	return NonZero
}
