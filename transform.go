package geom2

import "github.com/chewxy/math32"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
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

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float32 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation. ok is false when the
// matrix is singular within EPS.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if IsZero(det) {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies only the linear part of the transformation,
// ignoring translation. Use it for displacement vectors.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// IsSimilarity reports whether the transformation preserves circles:
// uniform scaling, rotation, translation and reflection, but no shear
// or anisotropic scale (within EPS).
func (m Matrix) IsSimilarity() bool {
	col0 := Pt(m.A, m.D)
	col1 := Pt(m.B, m.E)
	return IsZero(col0.Dot(col1)) && IsZero(col0.LengthSq()-col1.LengthSq())
}

// ApplyLine transforms both defining points of a line.
func (m Matrix) ApplyLine(l Line) Line {
	return Line{A: m.TransformPoint(l.A), B: m.TransformPoint(l.B)}
}

// ApplySegment transforms both endpoints of a segment.
func (m Matrix) ApplySegment(s LineSegment) LineSegment {
	return LineSegment{A: m.TransformPoint(s.A), B: m.TransformPoint(s.B)}
}

// ApplyCircle transforms a circle. ok is false when the matrix is not
// a similarity, since the image would then be an ellipse that geom2
// does not model.
func (m Matrix) ApplyCircle(c Circle) (Circle, bool) {
	if !m.IsSimilarity() {
		return Circle{}, false
	}
	scale := Pt(m.A, m.D).Length()
	return Circle{
		Center: m.TransformPoint(c.Center),
		Radius: c.radius() * scale,
	}, true
}

// ApplyRing transforms every vertex of a ring in place and returns it.
func (m Matrix) ApplyRing(r Ring) Ring {
	for i, p := range r {
		r[i] = m.TransformPoint(p)
	}
	return r
}
