package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func square(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

func TestPathArea(t *testing.T) {
	p := square(0, 0, 100, 100)
	test.Float(t, p.Area(), 10000)
}

func TestPathAreaClockwise(t *testing.T) {
	p := square(0, 0, 100, 100).Reverse()
	test.Float(t, p.Area(), -10000)
}

func TestPathIsClockwise(t *testing.T) {
	p := square(0, 0, 10, 10)
	test.That(t, !p.IsClockwise())
	test.That(t, p.Reverse().IsClockwise())
}

func TestPathSetClockwise(t *testing.T) {
	p := square(0, 0, 10, 10)
	cw := p.Clone().SetClockwise(true)
	test.That(t, cw.IsClockwise())
	ccw := cw.Clone().SetClockwise(false)
	test.That(t, !ccw.IsClockwise())
}

func TestPathContains(t *testing.T) {
	p := square(0, 0, 10, 10)
	test.That(t, p.Contains(Vector{5, 5}))
	test.That(t, !p.Contains(Vector{50, 50}))
}

func TestPathBounds(t *testing.T) {
	p := square(0, 0, 10, 20)
	b := p.Bounds()
	test.T(t, b.Min, Vector{0, 0})
	test.T(t, b.Max, Vector{10, 20})
}

func TestPathInteriorPoint(t *testing.T) {
	p := square(0, 0, 10, 10)
	ip := p.InteriorPoint()
	test.That(t, p.Contains(ip))
}

func TestPathNumCurves(t *testing.T) {
	p := square(0, 0, 10, 10)
	test.That(t, p.NumCurves() == 4)

	open := NewPath()
	open.MoveTo(0, 0)
	open.LineTo(1, 0)
	open.LineTo(1, 1)
	test.That(t, open.NumCurves() == 2)
}

func TestPathReverse(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubeTo(1, 1, 2, 2, 3, 3)
	r := p.Reverse()
	test.T(t, r.Segments[0].Anchor, Vector{3, 3})
	test.T(t, r.Segments[1].Anchor, Vector{0, 0})
}
