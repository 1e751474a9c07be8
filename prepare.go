package pathbool

// prepare clones the subpaths of a PathItem into the engine's private
// working representation (spec §3's preparePath): the result is freely
// mutable, and input paths are never touched.
func prepare(item PathItem, operand int, ordinal *int) []*opPath {
	var out []*opPath
	for _, p := range item.Paths() {
		out = append(out, prepareSubpath(p, operand, ordinal))
	}
	return out
}

func prepareSubpath(p *Path, operand int, ordinal *int) *opPath {
	op := &opPath{closed: p.Closed, operand: operand, ordinal: *ordinal}
	*ordinal++
	op.segments = make([]*opSegment, len(p.Segments))
	for i, s := range p.Segments {
		op.segments[i] = &opSegment{
			point:     s.Anchor,
			handleIn:  s.HandleIn,
			handleOut: s.HandleOut,
			path:      op,
			index:     i,
		}
	}
	n := len(op.segments)
	for i := 0; i < n; i++ {
		if i+1 < n {
			op.segments[i].next = op.segments[i+1]
			op.segments[i+1].prev = op.segments[i]
		}
	}
	if p.Closed && n > 0 {
		op.segments[n-1].next = op.segments[0]
		op.segments[0].prev = op.segments[n-1]
	}
	if n > 0 {
		op.first = op.segments[0]
	}
	return op
}

// toPublic converts an opPath back into a plain Path (used once tracing
// has produced final output segments that no longer need engine state).
func (p *opPath) toPublic() *Path {
	out := &Path{Closed: p.closed, Segments: make([]Segment, len(p.segments))}
	for i, s := range p.segments {
		out.Segments[i] = Segment{Anchor: s.point, HandleIn: s.handleIn, HandleOut: s.handleOut}
	}
	return out
}
