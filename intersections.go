package pathbool

// curveRef names one curve of the working set by its owning segment.
type curveRef struct {
	seg *opSegment
}

func collectCurveRefs(paths []*opPath) []curveRef {
	var refs []curveRef
	for _, p := range paths {
		n := p.numCurves()
		for i := 0; i < n; i++ {
			refs = append(refs, curveRef{seg: p.segments[i]})
		}
	}
	return refs
}

// findIntersections returns every crossing/overlap location between the
// curves of pathsA and the curves of pathsB, each already expanded into a
// mutually-linked pair of opLocations (spec §4.2's CurveLocation.expand).
// When pathsB is nil, it instead finds self-intersections within pathsA,
// skipping curve pairs that are adjacent on the same subpath (they always
// share an endpoint, which is not an intersection).
func findIntersections(pathsA, pathsB []*opPath) []*opLocation {
	refsA := collectCurveRefs(pathsA)
	self := pathsB == nil
	refsB := refsA
	if !self {
		refsB = collectCurveRefs(pathsB)
	}

	var out []*opLocation
	for i, ra := range refsA {
		jStart := 0
		if self {
			jStart = i + 1
		}
		for j := jStart; j < len(refsB); j++ {
			rb := refsB[j]
			if self && adjacentOnSamePath(ra.seg, rb.seg) {
				continue
			}
			ca := ra.seg.curve()
			cb := rb.seg.curve()
			for _, h := range findCurveIntersections(ca, cb) {
				if self && endpointCoincidence(h) {
					continue
				}
				la := &opLocation{startSeg: ra.seg, time: h.ta, point: h.point, overlap: h.overlap, crossing: -1}
				lb := &opLocation{startSeg: rb.seg, time: h.tb, point: h.point, overlap: h.overlap, crossing: -1}
				la.partner = lb
				lb.partner = la
				out = append(out, la, lb)
			}
		}
	}
	return out
}

// adjacentOnSamePath reports whether a and b are the same segment or
// immediate neighbors within the same opPath (accounting for closed-path wraparound).
func adjacentOnSamePath(a, b *opSegment) bool {
	if a == b || a.path != b.path {
		return a == b
	}
	return a.next == b || b.next == a
}

// endpointCoincidence reports a hit that sits exactly at both curves'
// shared anchor point, which for adjacency-filtered self-intersection
// search would otherwise show up spuriously for near-parallel neighbors.
func endpointCoincidence(h rawHit) bool {
	return (h.ta < CurveTimeEpsilon || h.ta > 1-CurveTimeEpsilon) &&
		(h.tb < CurveTimeEpsilon || h.tb > 1-CurveTimeEpsilon) && !h.overlap
}
