package pathbool

import (
	"errors"
	"io"
	"log"
)

// Logger receives non-fatal diagnostics the engine would otherwise swallow:
// near-degenerate discarded contours, larger open results left over from a
// broken trace, and similar numerical-degeneracy conditions described in
// spec §7. It defaults to discarding everything; callers that want the
// diagnostics set pathbool.Logger = log.New(os.Stderr, "pathbool: ", 0).
var Logger = log.New(io.Discard, "pathbool: ", 0)

// ErrOpenOperand is returned when an operation is given an open path in a
// combination the engine does not support (only subtract/intersect accept
// an open left-hand operand against a closed right-hand operand).
var ErrOpenOperand = errors.New("pathbool: open path only supported as the left operand of subtract or intersect")

// ErrNilPathItem is a programmer error: a nil PathItem was passed to an operator.
var ErrNilPathItem = errors.New("pathbool: nil PathItem")

// ErrNonCubicSegment is a programmer error: a path contained a segment this
// engine cannot treat as a cubic Bézier (e.g. produced by a caller that
// forgot to pre-convert arcs/quadratics, which spec §1 states is out of scope).
var ErrNonCubicSegment = errors.New("pathbool: non-cubic curve segment")

// ErrDidNotTerminate is the safety-net error returned when traceAll starts
// more than maxTraceIterations traces (spec §5) instead of looping forever.
// A single trace that reaches the same cap is discarded as incomplete and
// logged, not reported through this error.
var ErrDidNotTerminate = errors.New("pathbool: boolean operation failed to terminate")
