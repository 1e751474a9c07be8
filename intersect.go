package pathbool

import "math"

// rawHit is one crossing or overlap-endpoint found between two curves,
// before being promoted to a pair of linked opLocations.
type rawHit struct {
	ta, tb  float64
	point   Vector
	overlap bool
}

// findCurveIntersections returns every crossing or overlap-boundary
// location between curves a and b (never the same curve against itself:
// intra-curve self-loops, which only a cusped single cubic can have, are
// not detected — see DESIGN.md). Two closed-form fast paths handle the
// straight-straight case exactly (spec's worked examples are built from
// straight segments); everything else falls back to recursive bounding-box
// subdivision, which is the general curve–curve technique this engine
// uses for true cubic-cubic crossings (spec §4.2).
func findCurveIntersections(a, b Curve) []rawHit {
	aStraight, bStraight := a.IsStraight(), b.IsStraight()
	if aStraight && bStraight {
		return lineLineIntersections(a.P0, a.P3, b.P0, b.P3)
	}
	var hits []rawHit
	subdivideIntersect(a, b, 0, 1, 0, 1, 0, &hits)
	return dedupeHits(hits)
}

func dedupeHits(hits []rawHit) []rawHit {
	out := hits[:0]
	for _, h := range hits {
		dup := false
		for _, o := range out {
			if curveTimeEqual(h.ta, o.ta) && curveTimeEqual(h.tb, o.tb) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, h)
		}
	}
	return out
}

const maxSubdivisionDepth = 32

// subdivideIntersect recursively narrows [ta0,ta1]x[tb0,tb1] by bounding
// box rejection and bisection until the remaining boxes are smaller than
// GeometricEpsilon, at which point their center is recorded as a hit. When
// both full sub-curves keep overlapping all the way to the recursion cap,
// the curves are treated as coincident over that range and the hit is
// flagged as an overlap boundary.
func subdivideIntersect(a, b Curve, ta0, ta1, tb0, tb1 float64, depth int, hits *[]rawHit) {
	ba, bb := a.Bounds(), b.Bounds()
	pad := GeometricEpsilon
	ba.Min.X -= pad
	ba.Min.Y -= pad
	ba.Max.X += pad
	ba.Max.Y += pad
	if !ba.Overlaps(bb) {
		return
	}

	widthA := math.Max(ba.Max.X-ba.Min.X, ba.Max.Y-ba.Min.Y)
	widthB := math.Max(bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y)
	if widthA < GeometricEpsilon && widthB < GeometricEpsilon {
		mid := a.PointAtTime(0.5).Add(b.PointAtTime(0.5)).Mul(0.5)
		*hits = append(*hits, rawHit{ta: (ta0 + ta1) / 2, tb: (tb0 + tb1) / 2, point: mid})
		return
	}
	if depth >= maxSubdivisionDepth {
		// curves stayed coincident at sub-pixel scale all the way to the
		// recursion cap: treat this parameter range as an overlap.
		*hits = append(*hits, rawHit{ta: ta0, tb: tb0, point: a.PointAtTime(0), overlap: true})
		*hits = append(*hits, rawHit{ta: ta1, tb: tb1, point: a.PointAtTime(1), overlap: true})
		return
	}

	if widthA >= widthB {
		a0, a1 := a.Subdivide(0.5)
		tam := (ta0 + ta1) / 2
		subdivideIntersect(a0, b, ta0, tam, tb0, tb1, depth+1, hits)
		subdivideIntersect(a1, b, tam, ta1, tb0, tb1, depth+1, hits)
	} else {
		b0, b1 := b.Subdivide(0.5)
		tbm := (tb0 + tb1) / 2
		subdivideIntersect(a, b0, ta0, ta1, tb0, tbm, depth+1, hits)
		subdivideIntersect(a, b1, ta0, ta1, tbm, tb1, depth+1, hits)
	}
}

// lineLineIntersections is the closed-form two-segment intersection,
// handling the parallel/collinear-overlap case explicitly, grounded on
// the teacher's intersectionLineLine.
func lineLineIntersections(a0, a1, b0, b1 Vector) []rawHit {
	if a0.Equals(a1) || b0.Equals(b1) {
		return nil
	}
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.Cross(db)
	if math.Abs(div) < 1e-12 {
		// parallel: collinear iff b0 lies on the line through a0,a1
		if math.Abs(da.Cross(b0.Sub(a0))) > GeometricEpsilon*da.Length() {
			return nil
		}
		return collinearOverlap(a0, a1, b0, b1)
	}
	ta := db.Cross(a0.Sub(b0)) / div
	tb := da.Cross(a0.Sub(b0)) / div
	if ta < -CurveTimeEpsilon || ta > 1+CurveTimeEpsilon || tb < -CurveTimeEpsilon || tb > 1+CurveTimeEpsilon {
		return nil
	}
	ta = clampUnit01(ta)
	tb = clampUnit01(tb)
	return []rawHit{{ta: ta, tb: tb, point: a0.Interpolate(a1, ta)}}
}

func clampUnit01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// collinearOverlap projects both segments onto the shared line and returns
// the one or two boundary hits of their overlap, or nil if they only
// touch at a point or don't overlap at all.
func collinearOverlap(a0, a1, b0, b1 Vector) []rawHit {
	axis := a1.Sub(a0)
	length2 := axis.Dot(axis)
	proj := func(p Vector) float64 { return p.Sub(a0).Dot(axis) / length2 }
	ca, cb := 0.0, 1.0
	cc, cd := proj(b0), proj(b1)
	lo, hi := cc, cd
	if lo > hi {
		lo, hi = hi, lo
	}
	startA, endA := math.Max(ca, lo), math.Min(cb, hi)
	if startA > endA+CurveTimeEpsilon {
		return nil
	}
	if endA-startA < CurveTimeEpsilon {
		// touch at a single point
		t := startA
		tb := (t - cc) / (cd - cc)
		return []rawHit{{ta: clampUnit01(t), tb: clampUnit01(tb), point: a0.Interpolate(a1, clampUnit01(t))}}
	}
	tb0 := (startA - cc) / (cd - cc)
	tb1 := (endA - cc) / (cd - cc)
	return []rawHit{
		{ta: clampUnit01(startA), tb: clampUnit01(tb0), point: a0.Interpolate(a1, startA), overlap: true},
		{ta: clampUnit01(endA), tb: clampUnit01(tb1), point: a0.Interpolate(a1, endA), overlap: true},
	}
}

// classifyCrossing implements spec §4.2's four-tangent test: the
// intersection is a crossing iff the incoming/outgoing tangent pair of one
// curve separates the incoming/outgoing pair of the other in angular order
// around the shared point. Tangents are sampled at CurveTimeEpsilon /
// 1-CurveTimeEpsilon rather than the exact endpoint to dodge zero-length
// derivatives there.
//
// When one of the four tangents is itself near zero (a cusp sitting right
// at the intersection), the angular-separation test is not reliable; per
// spec §9's open question, this implementation does not attempt the
// incremental parameter-shift refinement and instead conservatively
// reports no crossing, which degrades to a missed crossing rather than a
// tracer that might never terminate on a wrongly-asserted one.
func classifyCrossing(l *opLocation) bool {
	if l.partner == nil {
		return false
	}
	a := l.curve()
	b := l.partner.curve()
	ta, tb := l.time, l.partner.time

	inA, outA := tangentsAround(a, ta)
	inB, outB := tangentsAround(b, tb)
	if nearZero(inA) || nearZero(outA) || nearZero(inB) || nearZero(outB) {
		return false
	}

	angleIn := inA.Angle()
	angleOut := outA.Angle()
	return angleSeparates(angleIn, angleOut, inB.Angle()) != angleSeparates(angleIn, angleOut, outB.Angle())
}

func tangentsAround(c Curve, t float64) (in, out Vector) {
	if t <= CurveTimeEpsilon {
		return c.TangentAtTime(CurveTimeEpsilon).Neg(), c.TangentAtTime(CurveTimeEpsilon)
	}
	if t >= 1-CurveTimeEpsilon {
		return c.TangentAtTime(1 - CurveTimeEpsilon).Neg(), c.TangentAtTime(1 - CurveTimeEpsilon)
	}
	return c.TangentAtTime(t).Neg(), c.TangentAtTime(t)
}

func nearZero(v Vector) bool {
	return v.Length() < 1e-9
}

// angleSeparates reports which side of the (angleIn,angleOut) arc pair the
// angle theta falls on.
func angleSeparates(angleIn, angleOut, theta float64) bool {
	span := normalizeAngle(angleOut - angleIn)
	rel := normalizeAngle(theta - angleIn)
	return rel < span
}

func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
