package pathbool

import "math"

// windingResult is the outcome of a horizontal ray cast through a point,
// sampled at two closely-spaced X offsets (spec §4.5), with one more cast
// nudged in Y when those two disagree: windLeft and
// windRight bracket the exact column the point sits in, so a ray that
// grazes a curve exactly at the sample point can still be resolved by
// comparing the two sides. winding is the two sides' shared value when
// they agree, and onContour records that they did not (the sample sits
// on the boundary itself rather than strictly inside or outside).
type windingResult struct {
	winding   int
	windLeft  int
	windRight int
	onContour bool
}

// getWindingSimple computes winding for a plain containment query (the
// public Path/CompoundPath.Contains), decomposing every curve of every
// path into Y-monotone pieces on the fly. bothSides is unused: a one-shot
// containment query casts a single ray and reports its count as winding,
// windLeft and windRight alike.
func getWindingSimple(paths []*Path, pt Vector, bothSides bool) windingResult {
	var pieces []monoCurve
	for _, p := range paths {
		for _, c := range p.Curves() {
			pieces = append(pieces, monotoneDecompose(c, nil, 1)...)
		}
	}
	w := castRay(pieces, pt.X, pt.Y)
	return windingResult{winding: w, windLeft: w, windRight: w}
}

// castRay sums the signed crossings of a +X ray from (x,y) through every
// Y-monotone piece that brackets y in its half-open [low,high) Y range,
// which avoids double-counting a point shared by two adjacent pieces in
// the ordinary case of a smooth pass-through vertex. It does not avoid it
// on its own at a genuine local-minimum vertex (a "V" where two pieces
// meet and both treat that shared Y as their inclusive low bound); there
// isLocalMinBoundary uses the circular per-path prev/next chain built by
// buildMonotoneSet to recognize the case and suppress the second count
// (spec §4.5's path-boundary winding handling).
func castRay(pieces []monoCurve, x, y float64) int {
	winding := 0
	for i := range pieces {
		mc := &pieces[i]
		if mc.winding == 0 {
			continue // flat-in-Y piece: a horizontal ray through it never crosses transversally
		}
		v0, v3 := mc.curve.P0.Y, mc.curve.P3.Y
		lo, hi := v0, v3
		if lo > hi {
			lo, hi = hi, lo
		}
		if y < lo || y >= hi {
			continue
		}
		if y == lo && isLocalMinBoundary(mc) {
			continue
		}
		roots := SolveCubicAxis(mc.curve, 1, y, 0, 1)
		if len(roots) == 0 {
			continue
		}
		px := mc.curve.PointAtTime(roots[0]).X
		if px > x {
			winding += mc.winding
		}
	}
	return winding
}

// isLocalMinBoundary reports whether mc's low-Y endpoint is a genuine
// local minimum it shares with the immediately preceding piece on the
// same path: mc climbs away from its own start point while its
// predecessor descends into that same point, so both pieces' half-open
// [lo,hi) bracket would otherwise claim that Y at x once each, double
// counting a vertex that a ray should only ever cross zero or one time.
func isLocalMinBoundary(mc *monoCurve) bool {
	return mc.winding == 1 && mc.prev != nil && mc.prev.winding == -1
}

// getWinding is the engine's winding query used by the propagator
// (spec §4.5): it brackets the query point with two rays cast
// WindingEpsilon to either side, reporting both counts along with
// whether they agree. monoSet must already be the full decomposition of
// one side's operand (both operands when testing a combined chain).
func getWinding(pt Vector, monoSet []monoCurve) windingResult {
	left := castRay(monoSet, pt.X-WindingEpsilon, pt.Y)
	right := castRay(monoSet, pt.X+WindingEpsilon, pt.Y)
	res := windingResult{windLeft: left, windRight: right}
	if left == right {
		res.winding = left
		return res
	}
	res.onContour = true
	// the two side samples disagree: the point sits exactly on a contour.
	// A horizontal run of the other operand's boundary at this same Y gives
	// every X-offset sample the same ambiguous reading (spec §4.5's
	// horizontal-piece winding inheritance), so break the tie by nudging Y
	// instead, off whatever flat edge the point landed on.
	if nudged := castRay(monoSet, pt.X, pt.Y+WindingEpsilon); nudged == left || nudged == right {
		res.winding = nudged
		return res
	}
	// fold to whichever side has the larger magnitude, matching the
	// contour the curve chain being tested actually belongs to.
	if absInt(left) >= absInt(right) {
		res.winding = left
	} else {
		res.winding = right
	}
	return res
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// chainMidpoint walks forward from start along next pointers, accumulating
// arc length, and returns the point and owning opSegment at the chain's
// half-length mark (spec §4.4's per-chain sample point), stopping at the
// next segment that starts at a crossing, back at start (closed chain with
// no other crossing), or at a nil next (open chain end).
func chainMidpoint(start *opSegment) (Vector, *opSegment) {
	type piece struct {
		seg    *opSegment
		length float64
	}
	var pieces []piece
	total := 0.0
	s := start
	for {
		n := s.wrappingNext()
		if n == nil {
			break
		}
		l := s.curve().Length()
		pieces = append(pieces, piece{seg: s, length: l})
		total += l
		s = n
		if s == start || segIsCrossing(s) {
			break
		}
	}
	if len(pieces) == 0 {
		return start.point, start
	}
	target := total / 2
	acc := 0.0
	for _, p := range pieces {
		if acc+p.length >= target || p.length == 0 {
			localLen := target - acc
			t := p.seg.curve().TimeAt(localLen)
			return p.seg.curve().PointAtTime(t), p.seg
		}
		acc += p.length
	}
	last := pieces[len(pieces)-1]
	return last.seg.curve().PointAtTime(0.5), last.seg
}

// nearHorizontal reports whether seg's own curve is within 1e-3 radians of
// horizontal at its parameter midpoint. sampleChain then casts its ray
// from the chain's start point instead of the chain's length midpoint,
// since a ray cast exactly along a near-horizontal curve is numerically
// unstable.
func nearHorizontal(seg *opSegment) bool {
	t := seg.curve().TangentAtTime(0.5)
	if t.IsZero() {
		return false
	}
	angle := math.Abs(math.Mod(t.Angle(), math.Pi))
	return angle < 1e-3 || math.Pi-angle < 1e-3
}

// segIsCrossing reports whether any intersection location rooted at seg's
// own point is a genuine crossing, which makes seg the start of a new
// winding chain (spec §4.4): between two crossings, a curve never leaves
// or re-enters the other operand, so one sample per chain suffices.
func segIsCrossing(seg *opSegment) bool {
	head := seg.intersection
	if head == nil {
		return false
	}
	for cur := head; ; cur = cur.next {
		if cur.isCrossing() {
			return true
		}
		if cur.next == head {
			return false
		}
	}
}

// propagateWinding assigns seg.winding and seg.inOther for every segment
// reachable from segs by sampling one point per chain: a maximal run of
// consecutive segments bounded by crossings, within which the curve
// stays consistently inside or outside the other operand. otherSet is
// the other operand's monotone decomposition, queried at each chain's
// sample point to learn whether the chain lies inside it.
func propagateWinding(segs []*opSegment, otherSet []monoCurve) {
	visited := map[*opSegment]bool{}
	// first pass: start a chain at every genuine crossing boundary.
	for _, start := range segs {
		if !visited[start] && segIsCrossing(start) {
			sampleChain(start, otherSet, visited)
		}
	}
	// second pass: anything left belongs to a path with no crossings at
	// all (or only overlaps), so it's a single chain on its own.
	for _, start := range segs {
		if !visited[start] {
			sampleChain(start, otherSet, visited)
		}
	}
}

func sampleChain(start *opSegment, otherSet []monoCurve, visited map[*opSegment]bool) {
	if visited[start] {
		return
	}
	var w windingResult
	var inOther bool
	if start.contour {
		// this chain coincides with a curve of the other operand
		// (markOverlapSegments): ray-casting its midpoint would land
		// exactly on that operand's own boundary, so its winding is
		// fixed at 2 (spec §4.6's mandatory unite rule) rather than sampled.
		w = windingResult{winding: 2, windLeft: 2, windRight: 2, onContour: true}
		inOther = true
	} else {
		pt, sample := chainMidpoint(start)
		if nearHorizontal(sample) {
			pt = start.point
		}
		w = getWinding(pt, otherSet)
		inOther = w.winding != 0
	}

	s := start
	for {
		s.winding = w.winding
		s.inOther = inOther
		s.windingSet = true
		visited[s] = true
		n := s.wrappingNext()
		if n == nil || n == start || visited[n] || segIsCrossing(n) || n.contour != start.contour {
			break
		}
		s = n
	}
}
