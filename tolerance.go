package pathbool

import "math"

// Numeric tolerances used throughout the engine. They differ in role and
// are kept distinct rather than collapsed into one constant: CurveTimeEpsilon
// guards proximity in curve-parameter space, GeometricEpsilon guards
// proximity in user-space units, and WindingEpsilon sizes the abscissa band
// used by the ray-cast winding query. Tests that need tighter or looser
// tolerances save and restore these around the call, the way the teacher's
// own Epsilon/Tolerance package variables are handled.
var (
	CurveTimeEpsilon = 1e-8
	GeometricEpsilon = 1e-7
	WindingEpsilon   = 1e-9
)

func curveTimeEqual(a, b float64) bool {
	return math.Abs(a-b) < CurveTimeEpsilon
}

func geometricEqual(a, b float64) bool {
	return math.Abs(a-b) < GeometricEpsilon
}
