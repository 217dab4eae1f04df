package medal

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping (x, y) to (a*x + b*y + c, d*x + e*y + f).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves every point in place.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a counter-clockwise rotation about the origin by angle
// radians.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateDeg is Rotate with the angle given in degrees. Multiples of 90
// degrees produce exact matrices so quarter turns do not accumulate
// rounding noise.
func RotateDeg(deg float64) Matrix {
	turns := math.Mod(deg, 360)
	if turns < 0 {
		turns += 360
	}
	switch turns {
	case 0:
		return Identity()
	case 90:
		return Matrix{B: -1, D: 1}
	case 180:
		return Matrix{A: -1, E: -1}
	case 270:
		return Matrix{B: 1, D: -1}
	}
	return Rotate(Radians(deg))
}

// Multiply returns m * other, which applies other first and m second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
