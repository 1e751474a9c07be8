package pathbool

import "math"

// solveQuadratic finds the real roots of a*t^2 + b*t + c = 0 that fall
// within [tMin, tMax], appending them to roots and returning the updated
// slice. Degenerate (near-linear) cases fall through to the linear solve.
func solveQuadratic(a, b, c, tMin, tMax float64, roots []float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return roots
		}
		t := -c / b
		if tMin <= t && t <= tMax {
			roots = append(roots, t)
		}
		return roots
	}
	d := b*b - 4*a*c
	if d < 0 {
		return roots
	}
	sq := math.Sqrt(d)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if tMin <= t1 && t1 <= tMax {
		roots = append(roots, t1)
	}
	if !curveTimeEqual(t1, t2) && tMin <= t2 && t2 <= tMax {
		roots = append(roots, t2)
	}
	return roots
}

// solveCubic finds the real roots of a*t^3 + b*t^2 + c*t + d = 0 within
// [tMin, tMax] using Cardano's method with the standard trigonometric
// branch for three real roots, followed by one step of Newton polishing
// (the same two-stage "closed form then refine" idiom the teacher's path
// utilities use for inflection/root finding).
func solveCubic(a, b, c, d, tMin, tMax float64, roots []float64) []float64 {
	if math.Abs(a) < 1e-12 {
		return solveQuadratic(b, c, d, tMin, tMax, roots)
	}

	// normalize to t^3 + pt^2 + qt + r = 0
	p := b / a
	q := c / a
	r := d / a

	// depress to u^3 + Pu + Q = 0 via t = u - p/3
	shift := p / 3
	P := q - p*p/3
	Q := 2*p*p*p/27 - p*q/3 + r

	var us []float64
	disc := Q*Q/4 + P*P*P/27
	if disc > 1e-15 {
		sq := math.Sqrt(disc)
		u1 := math.Cbrt(-Q/2 + sq)
		u2 := math.Cbrt(-Q/2 - sq)
		us = append(us, u1+u2)
	} else if disc > -1e-15 {
		u := math.Cbrt(-Q / 2)
		us = append(us, 2*u, -u)
	} else {
		// three real roots: trigonometric form
		m := 2 * math.Sqrt(-P/3)
		theta := math.Acos(clampUnit(3*Q/(P*m))) / 3
		for k := 0; k < 3; k++ {
			us = append(us, m*math.Cos(theta-2*math.Pi*float64(k)/3))
		}
	}

	for _, u := range us {
		t := u - shift
		t = newtonPolishCubic(a, b, c, d, t)
		if tMin-CurveTimeEpsilon <= t && t <= tMax+CurveTimeEpsilon {
			if t < tMin {
				t = tMin
			}
			if t > tMax {
				t = tMax
			}
			roots = appendUniqueRoot(roots, t)
		}
	}
	return roots
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

func newtonPolishCubic(a, b, c, d, t float64) float64 {
	for i := 0; i < 4; i++ {
		f := ((a*t+b)*t+c)*t + d
		fp := (3*a*t+2*b)*t + c
		if fp == 0 {
			break
		}
		dt := f / fp
		t -= dt
		if math.Abs(dt) < 1e-14 {
			break
		}
	}
	return t
}

func appendUniqueRoot(roots []float64, t float64) []float64 {
	for _, r := range roots {
		if curveTimeEqual(r, t) {
			return roots
		}
	}
	return append(roots, t)
}

// axisCubicCoefficients returns the monomial coefficients of B(t)-v along
// the given axis (0=x, 1=y) for the cubic with the given control values,
// i.e. the coefficients of a*t^3+b*t^2+c*t+d = B_axis(t) - v.
func axisCubicCoefficients(c Curve, axis int, v float64) (a, b, d2, e float64) {
	var v0, v1, v2, v3 float64
	if axis == 0 {
		v0, v1, v2, v3 = c.P0.X, c.P1.X, c.P2.X, c.P3.X
	} else {
		v0, v1, v2, v3 = c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y
	}
	a = -v0 + 3*v1 - 3*v2 + v3
	b = 3*v0 - 6*v1 + 3*v2
	d2 = -3*v0 + 3*v1
	e = v0 - v
	return a, b, d2, e
}

// SolveCubicAxis finds the parameters t in [tMin,tMax] at which the curve's
// coordinate along axis (0=x, 1=y) equals v.
func SolveCubicAxis(c Curve, axis int, v, tMin, tMax float64) []float64 {
	a, b, d, e := axisCubicCoefficients(c, axis, v)
	return solveCubic(a, b, d, e, tMin, tMax, nil)
}
