package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMonotoneDecomposeStraight(t *testing.T) {
	c := Curve{Vector{0, 0}, Vector{0, 0}, Vector{10, 10}, Vector{10, 10}}
	pieces := monotoneDecompose(c, nil, 1)
	test.That(t, len(pieces) == 1)
	test.That(t, pieces[0].winding == 1)
}

func TestMonotoneDecomposeSplitsAtExtremum(t *testing.T) {
	// a curve that rises then falls in Y has one interior extremum.
	c := Curve{Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0}}
	pieces := monotoneDecompose(c, nil, 1)
	test.That(t, len(pieces) == 2)
	test.That(t, pieces[0].winding == 1)
	test.That(t, pieces[1].winding == -1)
}

func TestStraightWindingFlat(t *testing.T) {
	c := Curve{Vector{0, 5}, Vector{3, 5}, Vector{6, 5}, Vector{10, 5}}
	test.That(t, straightWinding(c, 1) == 0)
}

func TestBuildMonotoneSetLinks(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	set := buildMonotoneSet([]*opPath{op}, 1)
	test.That(t, len(set) >= 4)
	for i := range set {
		test.That(t, set[i].next != nil)
		test.That(t, set[i].prev != nil)
	}
	// the circular list should return to its start after len(set) steps.
	cur := &set[0]
	for i := 0; i < len(set); i++ {
		cur = cur.next
	}
	test.That(t, cur == &set[0])
}
