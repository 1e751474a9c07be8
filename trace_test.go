package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestOpRuleUnite(t *testing.T) {
	keep, reverse := opRuleFuncs(OpUnite)
	s := &opSegment{path: &opPath{operand: 0}, inOther: true}
	test.That(t, !keep(s))
	test.That(t, !reverse(s))
	s.inOther = false
	test.That(t, keep(s))
}

func TestOpRuleSubtractReversesSecondOperand(t *testing.T) {
	_, reverse := opRuleFuncs(OpSubtract)
	b := &opSegment{path: &opPath{operand: 1}, inOther: true}
	test.That(t, reverse(b))
	a := &opSegment{path: &opPath{operand: 0}, inOther: false}
	test.That(t, !reverse(a))
}

func TestOpRuleExcludeReversesWhenInside(t *testing.T) {
	keep, reverse := opRuleFuncs(OpExclude)
	s := &opSegment{path: &opPath{operand: 0}, inOther: true}
	test.That(t, keep(s)) // exclude keeps everything
	test.That(t, reverse(s))
}

func TestWrappingPrevClosed(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	test.That(t, wrappingPrev(op.segments[0]) == op.segments[len(op.segments)-1])
}

func TestTraceContourClosesSimpleSquare(t *testing.T) {
	ordinal := 0
	op := prepareSubpath(square(0, 0, 10, 10), 0, &ordinal)
	for _, s := range op.segments {
		s.inOther = false
	}
	keep, reverse := opRuleFuncs(OpUnite)
	visited := map[*opSegment]bool{}
	p := traceContour(op.segments[0], keep, reverse, visited)
	test.That(t, p != nil)
	test.That(t, p.Closed)
	test.That(t, len(p.Segments) == 4)
}
