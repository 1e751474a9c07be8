package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestDivideLocationsSingleCut(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	seg0 := op.segments[0] // (0,0) -> (10,0)
	loc := &opLocation{startSeg: seg0, time: 0.5, point: Vector{5, 0}}

	divideLocations([]*opLocation{loc})

	test.That(t, loc.segment != nil)
	test.T(t, loc.segment.point, Vector{5, 0})
	test.That(t, len(op.segments) == 5)
	test.That(t, op.segments[0].next == loc.segment)
	test.That(t, loc.segment.next == op.segments[2])
}

func TestDivideLocationsMultipleCutsOnOneCurve(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	seg0 := op.segments[0]
	locA := &opLocation{startSeg: seg0, time: 0.25, point: Vector{2.5, 0}}
	locB := &opLocation{startSeg: seg0, time: 0.75, point: Vector{7.5, 0}}

	divideLocations([]*opLocation{locA, locB})

	test.That(t, len(op.segments) == 6)
	test.T(t, locA.segment.point, Vector{2.5, 0})
	test.T(t, locB.segment.point, Vector{7.5, 0})
	test.That(t, op.segments[0].next == locA.segment)
	test.That(t, locA.segment.next == locB.segment)
}

func TestLinkIntersectionChain(t *testing.T) {
	seg := &opSegment{point: Vector{0, 0}}
	l1 := &opLocation{point: Vector{0, 0}}
	l2 := &opLocation{point: Vector{1, 1}}

	linkIntersection(seg, l1)
	linkIntersection(seg, l2)

	test.That(t, seg.intersection == l1)
	test.That(t, l1.next == l2)
	test.That(t, l2.next == l1)
}
