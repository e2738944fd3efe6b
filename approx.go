package geom2

import "github.com/chewxy/math32"

// ApproxEq is the opt-in approximate-equality capability: absolute
// difference within a caller-supplied epsilon, field by field. The
// core algorithms never depend on it; it exists so external code (and
// the tests) can compare shapes without exact float equality. External
// shape types may implement it to interoperate with the same
// comparison helpers.
type ApproxEq[T any] interface {
	ApproxEqual(other T, epsilon float32) bool
}

// ApproxEqual reports whether two lines are approximately equal.
func (l Line) ApproxEqual(other Line, epsilon float32) bool {
	return l.A.Approx(other.A, epsilon) && l.B.Approx(other.B, epsilon)
}

// ApproxEqual reports whether two segments are approximately equal.
func (s LineSegment) ApproxEqual(other LineSegment, epsilon float32) bool {
	return s.A.Approx(other.A, epsilon) && s.B.Approx(other.B, epsilon)
}

// ApproxEqual reports whether two circles are approximately equal.
func (c Circle) ApproxEqual(other Circle, epsilon float32) bool {
	return c.Center.Approx(other.Center, epsilon) &&
		math32.Abs(c.Radius-other.Radius) < epsilon
}

// ApproxEqual reports whether two disks are approximately equal.
func (d Disk) ApproxEqual(other Disk, epsilon float32) bool {
	return d.Circle.ApproxEqual(other.Circle, epsilon)
}

// ApproxEqual reports whether two arcs are approximately equal.
func (a Arc) ApproxEqual(other Arc, epsilon float32) bool {
	return a.Center.Approx(other.Center, epsilon) &&
		math32.Abs(a.Radius-other.Radius) < epsilon &&
		math32.Abs(a.Start-other.Start) < epsilon &&
		math32.Abs(a.End-other.End) < epsilon
}

// ApproxEqual reports whether two chord arcs are approximately equal.
func (a ChordArc) ApproxEqual(other ChordArc, epsilon float32) bool {
	return a.A.Approx(other.A, epsilon) && a.B.Approx(other.B, epsilon) &&
		math32.Abs(a.Sagitta-other.Sagitta) < epsilon
}

// ApproxEqual reports whether two arc vertices are approximately
// equal.
func (v ArcVertex) ApproxEqual(other ArcVertex, epsilon float32) bool {
	return v.Point.Approx(other.Point, epsilon) &&
		math32.Abs(v.Sagitta-other.Sagitta) < epsilon
}

// ApproxEqual reports whether two half-planes are approximately equal.
func (h HalfPlane) ApproxEqual(other HalfPlane, epsilon float32) bool {
	return h.Normal.Approx(other.Normal, epsilon) &&
		math32.Abs(h.Offset-other.Offset) < epsilon
}

// ApproxEqual reports whether two moments are approximately equal.
func (m Moment) ApproxEqual(other Moment, epsilon float32) bool {
	return math32.Abs(m.Area-other.Area) < epsilon &&
		m.Centroid.Approx(other.Centroid, epsilon)
}

// RingsApprox reports whether two vertex sequences are approximately
// equal, vertex for vertex.
func RingsApprox(a, b VertexSource, epsilon float32) bool {
	if a.NumVertices() != b.NumVertices() {
		return false
	}
	for i := 0; i < a.NumVertices(); i++ {
		if !a.Vertex(i).Approx(b.Vertex(i), epsilon) {
			return false
		}
	}
	return true
}
