package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestRelateDisjoint(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 10, 10)
	rel, err := Relate(a, b)
	test.Error(t, err)
	test.That(t, rel == RelDisjoint)
}

func TestRelateEquals(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(0, 0, 10, 10)
	rel, err := Relate(a, b)
	test.Error(t, err)
	test.That(t, rel == RelEquals)
}

func TestRelateContainsAndWithin(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 10, 10)
	rel, err := Relate(outer, inner)
	test.Error(t, err)
	test.That(t, rel == RelContains)

	rel, err = Relate(inner, outer)
	test.Error(t, err)
	test.That(t, rel == RelWithin)
}

func TestRelateOverlaps(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 10, 10)
	rel, err := Relate(a, b)
	test.Error(t, err)
	test.That(t, rel == RelOverlaps)
}

func TestContainsHelper(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 10, 10)
	ok, err := Contains(outer, inner)
	test.Error(t, err)
	test.That(t, ok)

	ok, err = Contains(inner, outer)
	test.Error(t, err)
	test.That(t, !ok)
}

func TestRelationString(t *testing.T) {
	test.String(t, RelDisjoint.String(), "disjoint")
	test.String(t, RelOverlaps.String(), "overlaps")
}
