package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineLineIntersectionCross(t *testing.T) {
	hits := lineLineIntersections(Vector{0, 0}, Vector{10, 10}, Vector{0, 10}, Vector{10, 0})
	test.That(t, len(hits) == 1)
	test.T(t, hits[0].point, Vector{5, 5})
}

func TestLineLineIntersectionParallelNoOverlap(t *testing.T) {
	hits := lineLineIntersections(Vector{0, 0}, Vector{10, 0}, Vector{0, 5}, Vector{10, 5})
	test.That(t, len(hits) == 0)
}

func TestLineLineIntersectionCollinearOverlap(t *testing.T) {
	hits := lineLineIntersections(Vector{0, 0}, Vector{10, 0}, Vector{5, 0}, Vector{15, 0})
	test.That(t, len(hits) == 2)
	test.That(t, hits[0].overlap)
}

func TestLineLineIntersectionNoCross(t *testing.T) {
	hits := lineLineIntersections(Vector{0, 0}, Vector{1, 0}, Vector{5, 5}, Vector{5, 6})
	test.That(t, len(hits) == 0)
}

func TestFindCurveIntersectionsStraight(t *testing.T) {
	a := Curve{Vector{0, 0}, Vector{0, 0}, Vector{10, 10}, Vector{10, 10}}
	b := Curve{Vector{0, 10}, Vector{0, 10}, Vector{10, 0}, Vector{10, 0}}
	hits := findCurveIntersections(a, b)
	test.That(t, len(hits) == 1)
	test.T(t, hits[0].point, Vector{5, 5})
}

func TestFindCurveIntersectionsCurved(t *testing.T) {
	a := Curve{Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0}}
	b := Curve{Vector{0, 5}, Vector{0, 5}, Vector{10, 5}, Vector{10, 5}}
	hits := findCurveIntersections(a, b)
	test.That(t, len(hits) >= 1)
}

func TestFindCurveIntersectionsDisjoint(t *testing.T) {
	a := Curve{Vector{0, 0}, Vector{0, 1}, Vector{1, 1}, Vector{1, 0}}
	b := Curve{Vector{100, 100}, Vector{100, 101}, Vector{101, 101}, Vector{101, 100}}
	hits := findCurveIntersections(a, b)
	test.That(t, len(hits) == 0)
}

func TestAngleSeparates(t *testing.T) {
	test.That(t, angleSeparates(0, 3.0, 1.5))
	test.That(t, !angleSeparates(0, 3.0, 4.5))
}
