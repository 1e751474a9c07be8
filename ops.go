package pathbool

// Execute runs a boolean operation between two operands and returns the
// result as a CompoundPath under the NonZero fill rule (spec §4, §7):
// prepare both operands into the engine's private representation, find
// every crossing between them, divide both at those crossings, propagate
// each side's winding with respect to the other, trace the kept
// boundary, and fix the resulting contours' relative orientation.
func Execute(op Operation, a, b PathItem) (*CompoundPath, error) {
	if a == nil || b == nil {
		return nil, ErrNilPathItem
	}
	if err := checkOperandShapes(op, a, b); err != nil {
		return nil, err
	}

	ordinal := 0
	pathsA := prepare(a, 0, &ordinal)
	pathsB := prepare(b, 1, &ordinal)

	locs := findIntersections(pathsA, pathsB)
	divideLocations(locs)
	markOverlapSegments(pathsA, pathsB)

	setA := buildMonotoneSet(pathsA, 1)
	setB := buildMonotoneSet(pathsB, 1)
	segsA := flattenSegments(pathsA)
	segsB := flattenSegments(pathsB)
	propagateWinding(segsA, setB)
	propagateWinding(segsB, setA)

	keep, reverse := opRuleFuncs(op)
	all := append(append([]*opSegment{}, segsA...), segsB...)
	traced, err := traceAll(keep, reverse, all)
	if err != nil {
		return nil, err
	}
	return NewCompoundPath(NonZero, fixOrientation(traced, NonZero)...), nil
}

func flattenSegments(paths []*opPath) []*opSegment {
	var out []*opSegment
	for _, p := range paths {
		out = append(out, p.segments...)
	}
	return out
}

// checkOperandShapes enforces spec §7: only Subtract and Intersect
// accept an open path, and only as the left-hand operand.
func checkOperandShapes(op Operation, a, b PathItem) error {
	for _, p := range b.Paths() {
		if !p.Closed {
			return ErrOpenOperand
		}
	}
	if op == OpUnite || op == OpExclude {
		for _, p := range a.Paths() {
			if !p.Closed {
				return ErrOpenOperand
			}
		}
	}
	return nil
}

// Unite returns the union of a and b.
func Unite(a, b PathItem) (*CompoundPath, error) { return Execute(OpUnite, a, b) }

// Intersect returns the region common to both a and b.
func Intersect(a, b PathItem) (*CompoundPath, error) { return Execute(OpIntersect, a, b) }

// Subtract returns a with the region covered by b removed. a may be an open path.
func Subtract(a, b PathItem) (*CompoundPath, error) { return Execute(OpSubtract, a, b) }

// Exclude returns the symmetric difference of a and b.
func Exclude(a, b PathItem) (*CompoundPath, error) { return Execute(OpExclude, a, b) }

// Divide returns a compound path split along every crossing between a
// and b: the part of a outside b, the part of b outside a, and their
// shared intersection, each as independent closed contours. This is the
// union of Subtract(a,b), Subtract(b,a) and Intersect(a,b).
func Divide(a, b PathItem) (*CompoundPath, error) {
	aOnly, err := Execute(OpSubtract, a, b)
	if err != nil {
		return nil, err
	}
	bOnly, err := Execute(OpSubtract, b, a)
	if err != nil {
		return nil, err
	}
	both, err := Execute(OpIntersect, a, b)
	if err != nil {
		return nil, err
	}
	var children []*Path
	children = append(children, aOnly.Children...)
	children = append(children, bOnly.Children...)
	children = append(children, both.Children...)
	return NewCompoundPath(NonZero, children...), nil
}

// ResolveCrossings returns item with its own self-intersections cut and
// reconciled against its fill rule (spec §4, the single-operand case the
// binary operators generalize): a figure-eight drawn with NonZero fill,
// for instance, comes back as two separate non-overlapping loops.
func ResolveCrossings(item PathItem) (*CompoundPath, error) {
	if item == nil {
		return nil, ErrNilPathItem
	}
	ordinal := 0
	paths := prepare(item, 0, &ordinal)
	locs := findIntersections(paths, nil)
	divideLocations(locs)

	set := buildMonotoneSet(paths, 1)
	segs := flattenSegments(paths)
	propagateWinding(segs, set)

	rule := item.FillRuleOf()
	keep := func(s *opSegment) bool {
		if rule == EvenOdd {
			return s.winding%2 != 0
		}
		return s.winding != 0
	}
	reverse := func(*opSegment) bool { return false }

	traced, err := traceAll(keep, reverse, segs)
	if err != nil {
		return nil, err
	}
	return NewCompoundPath(NonZero, fixOrientation(traced, rule)...), nil
}
