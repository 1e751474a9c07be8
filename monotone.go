package pathbool

// monoCurve is one piece of a monotone-in-ordinate decomposition of a
// cubic (spec §4.1): straight segments are emitted unsplit, and a
// non-straight cubic is cut at its Y-extrema (or X-extrema, depending on
// the axis the caller asked for) so every piece is monotone.
type monoCurve struct {
	curve   Curve
	winding int // +1 increasing, -1 decreasing, 0 horizontal/vertical (flat)
	owner   *opSegment
	axis    int // 0 = monotone in X, 1 = monotone in Y

	prev, next *monoCurve // circular per source path, for loop-boundary detection during ray casting
}

// monotoneDecompose splits c (owned by seg, for bookkeeping) into pieces
// monotone along the given axis (0=X, 1=Y).
func monotoneDecompose(c Curve, seg *opSegment, axis int) []monoCurve {
	if c.IsStraight() {
		return []monoCurve{{curve: c, winding: straightWinding(c, axis), owner: seg, axis: axis}}
	}

	var v0, v1, v2, v3 float64
	if axis == 1 {
		v0, v1, v2, v3 = c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y
	} else {
		v0, v1, v2, v3 = c.P0.X, c.P1.X, c.P2.X, c.P3.X
	}
	a := 3*(v1-v2) - v0 + v3
	b := 2 * (v0 + v2 - 2*v1)
	d := v1 - v0

	var roots []float64
	roots = solveQuadratic(a, b, d, CurveTimeEpsilon, 1-CurveTimeEpsilon, roots)
	if len(roots) == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}

	pieces := make([]monoCurve, 0, len(roots)+1)
	rest := c
	prevT := 0.0
	for _, t := range roots {
		localT := (t - prevT) / (1 - prevT)
		left, right := rest.Subdivide(localT)
		pieces = append(pieces, monoCurve{curve: left, owner: seg, axis: axis})
		rest = right
		prevT = t
	}
	pieces = append(pieces, monoCurve{curve: rest, owner: seg, axis: axis})

	for i := range pieces {
		pieces[i].winding = straightWinding(pieces[i].curve, axis)
	}
	return pieces
}

func straightWinding(c Curve, axis int) int {
	var v0, v3 float64
	if axis == 1 {
		v0, v3 = c.P0.Y, c.P3.Y
	} else {
		v0, v3 = c.P0.X, c.P3.X
	}
	if v0 < v3 {
		return 1
	}
	if v0 > v3 {
		return -1
	}
	return 0
}

// buildMonotoneSet decomposes every curve of every path into pieces
// monotone along axis, linking prev/next into one circular list per
// source opPath so the ray caster can detect path boundaries. The slice
// is fully built before any prev/next pointers into it are taken, since
// further appends could otherwise reallocate the backing array and leave
// earlier pointers dangling.
func buildMonotoneSet(paths []*opPath, axis int) []monoCurve {
	var all []monoCurve
	var bounds [][2]int // [start,end) per source path, into all
	for _, p := range paths {
		start := len(all)
		n := p.numCurves()
		for i := 0; i < n; i++ {
			s := p.segments[i]
			all = append(all, monotoneDecompose(s.curve(), s, axis)...)
		}
		if end := len(all); end > start {
			bounds = append(bounds, [2]int{start, end})
		}
	}
	for _, b := range bounds {
		start, end := b[0], b[1]
		for i := start; i < end; i++ {
			if i > start {
				all[i].prev = &all[i-1]
			}
			if i+1 < end {
				all[i].next = &all[i+1]
			}
		}
		all[start].prev = &all[end-1]
		all[end-1].next = &all[start]
	}
	return all
}
