package pathbool

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{3, 4}
	test.T(t, a.Add(b), Vector{4, 6})
	test.T(t, a.Sub(b), Vector{-2, -2})
	test.Float(t, a.Dot(b), 11)
	test.Float(t, a.Cross(b), 1*4-2*3)
}

func TestVectorLength(t *testing.T) {
	test.Float(t, Vector{3, 4}.Length(), 5)
	test.T(t, Vector{}.Norm(10), Vector{})
}

func TestVectorRotate(t *testing.T) {
	v := Vector{1, 0}
	test.T(t, v.Rot90CW(), Vector{0, 1})
	test.T(t, v.Rot90CCW(), Vector{0, -1})
}

func TestVectorAngle(t *testing.T) {
	test.Float(t, Vector{1, 0}.Angle(), 0)
	test.Float(t, Vector{0, 1}.Angle(), math.Pi/2)
}

func TestVectorInterpolate(t *testing.T) {
	a, b := Vector{0, 0}, Vector{10, 20}
	test.T(t, a.Interpolate(b, 0.5), Vector{5, 10})
}

func TestBoundsUnion(t *testing.T) {
	a := emptyBounds().Add(Vector{0, 0}).Add(Vector{10, 10})
	b := emptyBounds().Add(Vector{5, 5}).Add(Vector{20, 0})
	u := a.Union(b)
	test.T(t, u.Min, Vector{0, 0})
	test.T(t, u.Max, Vector{20, 10})
}

func TestBoundsOverlaps(t *testing.T) {
	a := emptyBounds().Add(Vector{0, 0}).Add(Vector{10, 10})
	b := emptyBounds().Add(Vector{20, 20}).Add(Vector{30, 30})
	test.That(t, !a.Overlaps(b))
	c := emptyBounds().Add(Vector{5, 5}).Add(Vector{15, 15})
	test.That(t, a.Overlaps(c))
}

func TestBoundsContains(t *testing.T) {
	a := emptyBounds().Add(Vector{0, 0}).Add(Vector{10, 10})
	test.That(t, a.Contains(Vector{5, 5}))
	test.That(t, !a.Contains(Vector{15, 5}))
}
