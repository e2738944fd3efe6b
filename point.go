package geom2

import "github.com/chewxy/math32"

// Point represents a 2D point or vector with float32 coordinates.
// The same type serves both roles: shape definitions read it as a
// position, the intersection algorithms read differences of positions
// as displacement vectors.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// FromAngle returns the unit vector at the given angle in radians.
func FromAngle(theta float32) Point {
	sin, cos := math32.Sincos(theta)
	return Point{X: cos, Y: sin}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the negation of the point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Useful for determining the sign of the angle between vectors.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length (magnitude) of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length when you only need to compare magnitudes.
func (p Point) LengthSq() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float32) Point {
	sin, cos := math32.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees
// counter-clockwise).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Atan2 returns the angle of the vector in radians.
func (p Point) Atan2() float32 {
	return math32.Atan2(p.Y, p.X)
}

// NearZero reports whether both coordinates are within EPS of zero.
// Shape degeneracy checks compare coordinate-wise rather than by
// length, matching the tolerance model of the rest of the package.
func (p Point) NearZero() bool {
	return IsZero(p.X) && IsZero(p.Y)
}

// Approx reports whether two points are approximately equal within
// epsilon, coordinate-wise.
func (p Point) Approx(q Point, epsilon float32) bool {
	return math32.Abs(p.X-q.X) < epsilon && math32.Abs(p.Y-q.Y) < epsilon
}
