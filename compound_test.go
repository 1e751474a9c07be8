package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFillRuleString(t *testing.T) {
	test.String(t, NonZero.String(), "nonzero")
	test.String(t, EvenOdd.String(), "evenodd")
}

func TestCompoundPathContainsNonZero(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 50, 50).Reverse() // hole, opposite winding
	cp := NewCompoundPath(NonZero, outer, inner)

	test.That(t, cp.Contains(Vector{10, 10}))  // in outer, not in hole
	test.That(t, !cp.Contains(Vector{50, 50})) // in the hole
}

func TestCompoundPathContainsEvenOdd(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 50, 50)
	cp := NewCompoundPath(EvenOdd, outer, inner)

	test.That(t, cp.Contains(Vector{10, 10}))
	test.That(t, !cp.Contains(Vector{50, 50}))
}

func TestCompoundPathArea(t *testing.T) {
	cp := NewCompoundPath(NonZero, square(0, 0, 10, 10), square(0, 0, 5, 5))
	test.Float(t, cp.Area(), 125)
}

func TestCompoundPathAsPathItem(t *testing.T) {
	single := NewCompoundPath(NonZero, square(0, 0, 1, 1))
	_, ok := single.AsPathItem().(*Path)
	test.That(t, ok)

	multi := NewCompoundPath(NonZero, square(0, 0, 1, 1), square(5, 5, 1, 1))
	_, ok = multi.AsPathItem().(*CompoundPath)
	test.That(t, ok)
}
