package pathbool

import "math"

// Relation classifies how two PathItems' filled regions relate to each
// other, in the style of the DE-9IM-lite classifications common to
// polygon-clipping libraries (spec §12's supplement to the core boolean
// operators): rather than exposing a matrix, this package collapses the
// cases callers actually branch on into one enum.
type Relation int

const (
	RelDisjoint Relation = iota
	RelTouches
	RelOverlaps
	RelContains
	RelWithin
	RelEquals
)

func (r Relation) String() string {
	switch r {
	case RelDisjoint:
		return "disjoint"
	case RelTouches:
		return "touches"
	case RelOverlaps:
		return "overlaps"
	case RelContains:
		return "contains"
	case RelWithin:
		return "within"
	case RelEquals:
		return "equals"
	}
	return "unknown"
}

// areaEpsilon is the absolute-area tolerance Relate uses to treat a
// near-zero intersection/difference area as exactly zero; it scales with
// the bounding boxes involved so a relation test on a tiny path and one
// on a huge path are equally forgiving in relative terms.
func areaEpsilon(a, b PathItem) float64 {
	scale := math.Max(boundsOf(a).Area(), boundsOf(b).Area())
	return math.Max(1e-9, scale*1e-9)
}

func boundsOf(item PathItem) Bounds {
	b := emptyBounds()
	for _, p := range item.Paths() {
		b = b.Union(p.Bounds())
	}
	return b
}

func totalArea(item PathItem) float64 {
	a := 0.0
	for _, p := range item.Paths() {
		a += math.Abs(p.Area())
	}
	return a
}

// Relate classifies the relationship between a and b's filled regions.
// It is built entirely from the boolean operators already defined on
// PathItem, so it carries no additional geometric machinery of its own.
func Relate(a, b PathItem) (Relation, error) {
	if !boundsOf(a).Overlaps(boundsOf(b)) {
		return RelDisjoint, nil
	}

	inter, err := Intersect(a, b)
	if err != nil {
		return 0, err
	}
	interArea := totalArea(inter)
	eps := areaEpsilon(a, b)
	if interArea < eps {
		return RelDisjoint, nil
	}

	aMinusB, err := Subtract(a, b)
	if err != nil {
		return 0, err
	}
	bMinusA, err := Subtract(b, a)
	if err != nil {
		return 0, err
	}
	aOnlyArea := totalArea(aMinusB)
	bOnlyArea := totalArea(bMinusA)

	switch {
	case aOnlyArea < eps && bOnlyArea < eps:
		return RelEquals, nil
	case aOnlyArea < eps:
		return RelWithin, nil
	case bOnlyArea < eps:
		return RelContains, nil
	}

	totalA := totalArea(a)
	totalB := totalArea(b)
	if interArea < eps*10 && (interArea/math.Max(totalA, totalB)) < 1e-6 {
		return RelTouches, nil
	}
	return RelOverlaps, nil
}

// Contains reports whether every point of b's filled region also lies in
// a's, computed the same way Relate does (b with a removed leaves nothing).
func Contains(a, b PathItem) (bool, error) {
	rel, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return rel == RelContains || rel == RelEquals, nil
}
