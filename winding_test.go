package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGetWindingSimpleInsideOutside(t *testing.T) {
	pieces := monotoneDecompose(square(0, 0, 10, 10).Curve(0), nil, 1)
	pieces = append(pieces, monotoneDecompose(square(0, 0, 10, 10).Curve(1), nil, 1)...)
	pieces = append(pieces, monotoneDecompose(square(0, 0, 10, 10).Curve(2), nil, 1)...)
	pieces = append(pieces, monotoneDecompose(square(0, 0, 10, 10).Curve(3), nil, 1)...)

	test.That(t, castRay(pieces, 5, 5) != 0)
	test.That(t, castRay(pieces, 50, 50) == 0)
}

func TestGetWindingAgreesOffContour(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	set := buildMonotoneSet([]*opPath{op}, 1)

	w := getWinding(Vector{5, 5}, set)
	test.That(t, !w.onContour)
	test.That(t, w.winding == w.windLeft)
	test.That(t, w.winding == w.windRight)
}

func TestChainMidpoint(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	pt, seg := chainMidpoint(op.segments[0])
	test.That(t, seg != nil)
	test.That(t, pt.X >= 0 && pt.X <= 40) // somewhere along the 40-unit perimeter chain
}

func TestNearHorizontalDetectsFlatCurve(t *testing.T) {
	seg := &opSegment{point: Vector{0, 5}, next: &opSegment{point: Vector{10, 5}}}
	test.That(t, nearHorizontal(seg))

	vertical := &opSegment{point: Vector{0, 0}, next: &opSegment{point: Vector{0, 10}}}
	test.That(t, !nearHorizontal(vertical))
}

func TestPropagateWindingOperandVsOther(t *testing.T) {
	ordinal := 0
	a := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	b := prepareSubpath(square(5, 5, 10, 10), 1, &ordinal)

	setA := buildMonotoneSet([]*opPath{a}, 1)
	setB := buildMonotoneSet([]*opPath{b}, 1)
	propagateWinding(a.segments, setB)
	propagateWinding(b.segments, setA)

	for _, s := range a.segments {
		test.That(t, s.windingSet)
	}
	for _, s := range b.segments {
		test.That(t, s.windingSet)
	}
}
