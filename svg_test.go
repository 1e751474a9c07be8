package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPathLine(t *testing.T) {
	cp, err := ParseSVGPath("M0 0L10 0L10 10L0 10Z")
	test.Error(t, err)
	test.That(t, len(cp.Children) == 1)
	p := cp.Children[0]
	test.That(t, p.Closed)
	test.That(t, len(p.Segments) == 4)
	test.T(t, p.Segments[2].Anchor, Vector{10, 10})
}

func TestParseSVGPathRelative(t *testing.T) {
	cp, err := ParseSVGPath("m0 0l10 0l0 10z")
	test.Error(t, err)
	p := cp.Children[0]
	test.T(t, p.Segments[1].Anchor, Vector{10, 0})
	test.T(t, p.Segments[2].Anchor, Vector{10, 10})
}

func TestParseSVGPathCubic(t *testing.T) {
	cp, err := ParseSVGPath("M0 0C0 10 10 10 10 0")
	test.Error(t, err)
	p := cp.Children[0]
	test.That(t, len(p.Segments) == 2)
	test.T(t, p.Segments[0].HandleOut, Vector{0, 10})
	test.T(t, p.Segments[1].HandleIn, Vector{0, 10})
}

func TestParseSVGPathQuadratic(t *testing.T) {
	cp, err := ParseSVGPath("M0 0Q5 10 10 0")
	test.Error(t, err)
	p := cp.Children[0]
	test.That(t, len(p.Segments) == 2)
	mid := Curve{p.Segments[0].Anchor, p.Segments[0].Anchor.Add(p.Segments[0].HandleOut),
		p.Segments[1].Anchor.Add(p.Segments[1].HandleIn), p.Segments[1].Anchor}.PointAtTime(0.5)
	test.That(t, mid.Y > 0) // bulges toward the quadratic control point
}

func TestParseSVGPathMultipleSubpaths(t *testing.T) {
	cp, err := ParseSVGPath("M0 0L10 0ZM20 20L30 20Z")
	test.Error(t, err)
	test.That(t, len(cp.Children) == 2)
}

func TestParseSVGPathHV(t *testing.T) {
	cp, err := ParseSVGPath("M0 0H10V10Z")
	test.Error(t, err)
	p := cp.Children[0]
	test.T(t, p.Segments[1].Anchor, Vector{10, 0})
	test.T(t, p.Segments[2].Anchor, Vector{10, 10})
}

func TestToSVGPathRoundTrip(t *testing.T) {
	p := square(0, 0, 10, 10)
	data := ToSVGPath(p)
	cp, err := ParseSVGPath(data)
	test.Error(t, err)
	test.Float(t, cp.Area(), p.Area())
}

func TestParseSVGPathRejectsArcs(t *testing.T) {
	_, err := ParseSVGPath("M0 0A5 5 0 0 0 10 0")
	test.That(t, err != nil)
}
