package pathbool

import "math"

// Vector is a point or a displacement in 2D user space, after any affine
// transform a caller applied upstream has already been baked into the
// geometry. Coordinates are plain IEEE-754 doubles.
type Vector struct {
	X, Y float64
}

// IsZero returns true if v is exactly the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0
}

// Equals returns true if v and w are equal within GeometricEpsilon.
func (v Vector) Equals(w Vector) bool {
	return geometricEqual(v.X, w.X) && geometricEqual(v.Y, w.Y)
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the Z component of the 3D cross product (v,0) x (w,0).
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Norm returns v scaled to the given length; the zero vector maps to itself.
func (v Vector) Norm(length float64) Vector {
	d := v.Length()
	if geometricEqual(d, 0.0) {
		return Vector{}
	}
	return Vector{v.X / d * length, v.Y / d * length}
}

// Rot90CW rotates v 90 degrees clockwise (in a Y-down screen frame).
func (v Vector) Rot90CW() Vector {
	return Vector{-v.Y, v.X}
}

// Rot90CCW rotates v 90 degrees counter-clockwise (in a Y-down screen frame).
func (v Vector) Rot90CCW() Vector {
	return Vector{v.Y, -v.X}
}

// Angle returns the angle of v from the positive X axis, in radians, in (-pi, pi].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Interpolate linearly interpolates between v and w at parameter t.
func (v Vector) Interpolate(w Vector, t float64) Vector {
	return Vector{(1-t)*v.X + t*w.X, (1-t)*v.Y + t*w.Y}
}

// Bounds is an axis-aligned bounding box. An empty Bounds has Min.X > Max.X.
type Bounds struct {
	Min, Max Vector
}

func emptyBounds() Bounds {
	return Bounds{Vector{math.Inf(1), math.Inf(1)}, Vector{math.Inf(-1), math.Inf(-1)}}
}

func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b Bounds) Add(v Vector) Bounds {
	if v.X < b.Min.X {
		b.Min.X = v.X
	}
	if v.Y < b.Min.Y {
		b.Min.Y = v.Y
	}
	if v.X > b.Max.X {
		b.Max.X = v.X
	}
	if v.Y > b.Max.Y {
		b.Max.Y = v.Y
	}
	return b
}

func (b Bounds) Union(c Bounds) Bounds {
	if c.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return c
	}
	return b.Add(c.Min).Add(c.Max)
}

// Area returns the area of the bounding box (0 for an empty box).
func (b Bounds) Area() float64 {
	if b.IsEmpty() {
		return 0.0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

func (b Bounds) Center() Vector {
	return Vector{(b.Min.X + b.Max.X) / 2.0, (b.Min.Y + b.Max.Y) / 2.0}
}

// Contains returns true if v lies within (or on) b.
func (b Bounds) Contains(v Vector) bool {
	return b.Min.X <= v.X && v.X <= b.Max.X && b.Min.Y <= v.Y && v.Y <= b.Max.Y
}

// Overlaps returns true if b and c share any point.
func (b Bounds) Overlaps(c Bounds) bool {
	if b.IsEmpty() || c.IsEmpty() {
		return false
	}
	return b.Min.X <= c.Max.X && c.Min.X <= b.Max.X && b.Min.Y <= c.Max.Y && c.Min.Y <= b.Max.Y
}
