package pathbool

import "sort"

// fixOrientation reorders holes to wind opposite their containing outer
// shell (spec §4.7–§4.8): after tracing, every contour already has a
// geometrically correct direction, but a path made of several
// independently-traced contours (an outer shell plus the holes the
// tracer happened to also close) needs the holes flipped relative to
// whichever contour directly contains them, so a renderer's even-odd or
// nonzero fill shows the hole as empty. rule selects which of spec
// §4.7's two branches applies: EvenOdd forces strict CW/CCW alternation
// by containment depth; NonZero instead accumulates a signed winding down
// the containment chain and drops any contour whose own contribution
// never takes that running total through zero, since such a contour's
// boundary marks no actual fill/no-fill transition under non-zero fill.
//
// order lists the contours from smallest bounding-box area to largest.
// The even-odd branch derives each contour's depth by counting the larger
// contours that contain it, so visiting order does not affect it; the
// non-zero branch walks order from largest to smallest, so every
// containing shell is settled before the contours inside it.
func fixOrientation(paths []*Path, rule FillRule) []*Path {
	n := len(paths)
	if n <= 1 {
		return paths
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	areas := make([]float64, n)
	interior := make([]Vector, n)
	for i, p := range paths {
		areas[i] = p.Bounds().Area()
		interior[i] = p.InteriorPoint()
	}
	sort.Slice(order, func(i, j int) bool { return areas[order[i]] < areas[order[j]] })

	if rule == NonZero {
		return fixOrientationNonZero(paths, areas, interior, order)
	}
	return fixOrientationEvenOdd(paths, areas, interior, order)
}

func fixOrientationEvenOdd(paths []*Path, areas []float64, interior []Vector, order []int) []*Path {
	n := len(paths)
	depth := make([]int, n)
	for _, i := range order {
		d := 0
		for _, j := range order {
			if i == j || areas[j] <= areas[i] {
				continue
			}
			if paths[j].Contains(interior[i]) {
				d++
			}
		}
		depth[i] = d
	}

	out := make([]*Path, n)
	for i, p := range paths {
		// spec: the outermost sub-path (depth 0) is clockwise; sub-paths
		// at odd depth are CCW, at even depth CW again.
		wantCW := depth[i]%2 == 0
		out[i] = p.SetClockwise(wantCW)
	}
	return out
}

// fixOrientationNonZero implements spec §4.7's non-zero branch. Walking
// the containment chain from largest contour to smallest, each path's own
// direction (its as-traced orientation, CCW contributing +1 and CW -1)
// adds to its immediate container's already-computed running winding. If
// the container's running winding was already non-zero and stays
// non-zero once this path's contribution is added, the path's boundary
// never actually toggles the region between filled and unfilled, so it is
// dropped rather than emitted; the container's winding is left unchanged
// by the drop since the winding number at that nesting level doesn't
// depend on whether its own boundary is drawn.
func fixOrientationNonZero(paths []*Path, areas []float64, interior []Vector, order []int) []*Path {
	n := len(paths)
	desc := make([]int, n)
	for k, i := range order {
		desc[n-1-k] = i
	}

	winding := make([]int, n)
	excluded := make([]bool, n)
	for rank, i := range desc {
		containerWinding := 0
		containerArea := -1.0
		for _, j := range desc[:rank] {
			if areas[j] <= areas[i] {
				continue
			}
			if paths[j].Contains(interior[i]) && (containerArea < 0 || areas[j] < containerArea) {
				containerArea = areas[j]
				containerWinding = winding[j]
			}
		}
		own := -1
		if !paths[i].IsClockwise() {
			own = 1
		}
		winding[i] = containerWinding + own
		excluded[i] = containerWinding != 0 && winding[i] != 0
	}

	var out []*Path
	for i, p := range paths {
		if !excluded[i] {
			out = append(out, p)
		}
	}
	return out
}
