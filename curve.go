package pathbool

// Segment is a node on a Path: an anchor point plus two handle offsets,
// both stored relative to the anchor. A segment implicitly owns the cubic
// Bézier curve running from itself to its successor.
type Segment struct {
	Anchor    Vector
	HandleIn  Vector
	HandleOut Vector
}

// NewSegment returns a plain straight-line segment with no handles.
func NewSegment(anchor Vector) Segment {
	return Segment{Anchor: anchor}
}

// HasHandles returns true if either handle offset is non-zero.
func (s Segment) HasHandles() bool {
	return !s.HandleIn.IsZero() || !s.HandleOut.IsZero()
}

// Curve is the cubic Bézier curve spanned by two successive segments:
// anchor of seg0, the outgoing control point of seg0, the incoming control
// point of seg1, and the anchor of seg1.
type Curve struct {
	P0, P1, P2, P3 Vector
}

// NewCurve builds the absolute-control-point curve owned by seg0, running to seg1.
func NewCurve(seg0, seg1 Segment) Curve {
	return Curve{
		P0: seg0.Anchor,
		P1: seg0.Anchor.Add(seg0.HandleOut),
		P2: seg1.Anchor.Add(seg1.HandleIn),
		P3: seg1.Anchor,
	}
}

// Values returns the curve's eight coordinate values in (x0,y0,x1,y1,x2,y2,x3,y3) order.
func (c Curve) Values() [8]float64 {
	return [8]float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y}
}

// IsStraight reports whether the curve's control points are collinear with
// its anchors, within GeometricEpsilon, i.e. the curve degenerates to the
// line segment from P0 to P3.
func (c Curve) IsStraight() bool {
	d := c.P3.Sub(c.P0)
	if geometricEqual(d.X, 0) && geometricEqual(d.Y, 0) {
		// zero-length chord: straight iff the handles are also degenerate
		return c.P1.Equals(c.P0) && c.P2.Equals(c.P0)
	}
	len2 := d.X*d.X + d.Y*d.Y
	// perpendicular distance of P1 and P2 from the line P0-P3, using the
	// cross-product-over-length formulation (same idiom as the teacher's
	// flattenSmoothCubicBezier s2nom/s2denom test).
	dist := func(p Vector) float64 {
		r := p.Sub(c.P0)
		cross := d.X*r.Y - d.Y*r.X
		return cross * cross / len2
	}
	tol := GeometricEpsilon * GeometricEpsilon
	return dist(c.P1) < tol && dist(c.P2) < tol
}

// PointAtTime evaluates the cubic Bézier at parameter t.
func (c Curve) PointAtTime(t float64) Vector {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Vector{
		a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// TangentAtTime evaluates the (unnormalized) derivative at t. Per spec
// §4.2, callers that need a direction at an endpoint should evaluate at
// CurveTimeEpsilon / 1-CurveTimeEpsilon instead of exactly 0 or 1, since
// the derivative can vanish there when a handle coincides with its anchor.
func (c Curve) TangentAtTime(t float64) Vector {
	u := 1 - t
	a := -3 * u * u
	b := 3 * u*u - 6*u*t
	d := 6*u*t - 3*t*t
	e := 3 * t * t
	return Vector{
		a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// NormalAtTime returns the tangent rotated 90 degrees, not normalized.
func (c Curve) NormalAtTime(t float64) Vector {
	return c.TangentAtTime(t).Rot90CW()
}

// Subdivide splits the curve at t using de Casteljau's algorithm, grounded
// on the teacher's splitCubicBezier.
func (c Curve) Subdivide(t float64) (Curve, Curve) {
	pm := c.P1.Interpolate(c.P2, t)

	q0 := c.P0
	q1 := c.P0.Interpolate(c.P1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := c.P3
	r2 := c.P2.Interpolate(c.P3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return Curve{q0, q1, q2, q3}, Curve{r0, r1, r2, r3}
}

// Bounds returns the (loose) control-polygon bounding box of the curve;
// this over-approximates the tight curve bounds, which is sufficient for
// the fast-reject use the engine makes of it.
func (c Curve) Bounds() Bounds {
	b := emptyBounds()
	b = b.Add(c.P0).Add(c.P1).Add(c.P2).Add(c.P3)
	return b
}

// gaussLegendre8 holds the standard 8-point Gauss-Legendre quadrature
// weights and abscissas on [-1,1] (see Abramowitz & Stegun table 25.4,
// the textbook source also cited by the teacher's corpus for arc-length
// quadrature), used to integrate curve speed for Length.
var gaussLegendre8 = [8][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// Length returns the arc length of the curve over [0,1].
func (c Curve) Length() float64 {
	return c.LengthBetween(0, 1)
}

// LengthBetween returns the arc length of the curve over [t0,t1] by 8-point
// Gauss-Legendre quadrature of the speed |B'(t)|.
func (c Curve) LengthBetween(t0, t1 float64) float64 {
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	mid := (t0 + t1) / 2
	half := (t1 - t0) / 2
	sum := 0.0
	for _, wx := range gaussLegendre8 {
		w, x := wx[0], wx[1]
		t := mid + half*x
		sum += w * c.TangentAtTime(t).Length()
	}
	return sum * half
}

// TimeAt returns the parameter t at which the arc length from 0 equals
// arcLen, found by bisection on the monotonically increasing LengthBetween(0,t).
func (c Curve) TimeAt(arcLen float64) float64 {
	total := c.Length()
	if total <= 0 {
		return 0
	}
	if arcLen <= 0 {
		return 0
	}
	if arcLen >= total {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if c.LengthBetween(0, mid) < arcLen {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// clampCurveTime keeps endpoint parameter queries away from exactly 0 or 1,
// per spec §4.2, so tangent evaluation never degenerates on a zero-length handle.
func clampCurveTime(t float64) float64 {
	if t < CurveTimeEpsilon {
		return CurveTimeEpsilon
	}
	if t > 1-CurveTimeEpsilon {
		return 1 - CurveTimeEpsilon
	}
	return t
}

// DivideAtTime splits the curve owned by (seg0, seg1) at parameter t,
// inserting a new segment between them, and returns the updated seg0, that
// new segment and the updated seg1 so callers can splice it into a Path. When
// setHandles is false, the two resulting segments' handles on the cut side
// are cleared, matching the input's straightness (spec §4.3 step 2).
func DivideAtTime(seg0, seg1 Segment, t float64, setHandles bool) (left Segment, mid Segment, right Segment) {
	c := NewCurve(seg0, seg1)
	a, b := c.Subdivide(t)
	left = Segment{Anchor: seg0.Anchor, HandleIn: seg0.HandleIn, HandleOut: a.P1.Sub(a.P0)}
	mid = Segment{Anchor: a.P3, HandleIn: a.P2.Sub(a.P3), HandleOut: b.P1.Sub(b.P0)}
	right = Segment{Anchor: seg1.Anchor, HandleIn: b.P2.Sub(b.P3), HandleOut: seg1.HandleOut}
	if !setHandles {
		left.HandleOut = Vector{}
		mid.HandleIn = Vector{}
		mid.HandleOut = Vector{}
		right.HandleIn = Vector{}
	}
	return left, mid, right
}
