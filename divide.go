package pathbool

import "sort"

// divideLocations is spec §4.3's CurveLocation divider: it splits every
// curve that carries one or more not-yet-resolved opLocations at the
// corresponding parameters, splicing freshly created opSegments into the
// owning opPath, and leaves each location pointing at the new segment it
// now starts at (with time reset to 0). Locations already resolved
// (l.segment != nil, e.g. a duplicate produced by a second curve pair
// hitting the same point) are left alone.
//
// Division happens highest-time-first within each curve so that every
// split after the first is performed against the still-untouched lower
// portion of the curve, with its parameter rescaled into that portion's
// own [0,1] range; this mirrors the teacher's repeated right-to-left
// de Casteljau splitting idiom.
func divideLocations(locs []*opLocation) {
	byCurve := map[*opSegment][]*opLocation{}
	for _, l := range locs {
		if l.segment == nil {
			byCurve[l.startSeg] = append(byCurve[l.startSeg], l)
		}
	}

	touched := map[*opPath]bool{}
	for seg0, group := range byCurve {
		sort.Slice(group, func(i, j int) bool { return group[i].time > group[j].time })
		touched[seg0.path] = true

		seg1 := seg0.next
		if seg1 == nil {
			continue // no curve to divide (shouldn't happen: callers only locate on real curves)
		}
		curveEnd := seg1 // the curve's own end vertex, fixed regardless of later splits
		upper := 1.0
		var lastNewSeg *opSegment
		lastTime := -1.0
		for _, l := range group {
			origTime := l.time
			switch {
			case lastNewSeg != nil && curveTimeEqual(origTime, lastTime):
				l.segment = lastNewSeg
				l.time = 0
				linkIntersection(lastNewSeg, l)
				continue
			case origTime > 1-CurveTimeEpsilon:
				// maps onto the curve's own end vertex: reuse it rather than
				// splicing in a near-zero-length segment next to it.
				l.segment = curveEnd
				l.time = 0
				linkIntersection(curveEnd, l)
				continue
			case origTime < CurveTimeEpsilon:
				// maps onto the curve's own start vertex, seg0, for the same reason.
				l.segment = seg0
				l.time = 0
				linkIntersection(seg0, l)
				continue
			}
			localT := clampUnit01(origTime / upper)
			// clear the handles on the cut unless the curve being divided
			// already had some: a straight curve's division must stay straight.
			hasHandles := !seg0.handleOut.IsZero() || !seg1.handleIn.IsZero()
			left, mid, right := DivideAtTime(segmentOf(seg0), segmentOf(seg1), localT, hasHandles)
			seg0.handleOut = left.HandleOut
			anchor := mid.Anchor
			if !hasHandles {
				// the intersection finder reports times on a straight,
				// handle-less curve as linear fractions of its chord.
				anchor = seg0.point.Interpolate(seg1.point, localT)
			}
			newSeg := &opSegment{point: anchor, handleIn: mid.HandleIn, handleOut: mid.HandleOut, path: seg0.path}
			seg1.handleIn = right.HandleIn

			newSeg.prev = seg0
			newSeg.next = seg1
			seg0.next = newSeg
			seg1.prev = newSeg

			l.segment = newSeg
			l.time = 0
			linkIntersection(newSeg, l)

			lastNewSeg = newSeg
			lastTime = origTime
			seg1 = newSeg
			upper = origTime
		}
	}

	for p := range touched {
		rebuildPathSegments(p)
	}
}

func segmentOf(s *opSegment) Segment {
	return Segment{Anchor: s.point, HandleIn: s.handleIn, HandleOut: s.handleOut}
}

// linkIntersection threads loc into the circular chain of locations
// rooted at seg.intersection (spec §4.3 step 4), merging it with an
// existing chain entry at (geometrically) the same point instead of
// duplicating a node, per the no-op condition spec describes for
// locations that already coincide.
func linkIntersection(seg *opSegment, loc *opLocation) {
	head := seg.intersection
	if head == nil {
		loc.next = loc
		loc.prev = loc
		seg.intersection = loc
		return
	}
	for cur := head; ; cur = cur.next {
		if cur == loc {
			return
		}
		if cur.point.Equals(loc.point) {
			// already linked to this chain; nothing to splice.
			return
		}
		if cur.next == head {
			break
		}
	}
	tail := head.prev
	tail.next = loc
	loc.prev = tail
	loc.next = head
	head.prev = loc
}

// rebuildPathSegments recomputes p.segments, p.first and each segment's
// index after divideLocations has spliced new segments into p's linked
// list out from under its old slice.
func rebuildPathSegments(p *opPath) {
	if p.first == nil {
		return
	}
	var ordered []*opSegment
	s := p.first
	for {
		ordered = append(ordered, s)
		s.index = len(ordered) - 1
		next := s.next
		if next == nil || next == p.first {
			break
		}
		s = next
	}
	p.segments = ordered
}
