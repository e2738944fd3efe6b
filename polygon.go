package geom2

import (
	"iter"

	"github.com/chewxy/math32"
)

// VertexSource is the storage capability a polygon requires: it
// exposes an ordered sequence of vertices by count and index. Any
// storage works — the growable [Ring], a fixed-size array wrapper, or
// a view into caller-owned data — so polygons stay allocation-free
// beyond the storage itself.
type VertexSource interface {
	NumVertices() int
	Vertex(i int) Point
}

// Ring is the default growable vertex storage, a slice of points in
// boundary order.
type Ring []Point

// NumVertices returns the number of vertices in the ring.
func (r Ring) NumVertices() int { return len(r) }

// Vertex returns the i-th vertex.
func (r Ring) Vertex(i int) Point { return r[i] }

// Polygon is a closed polygon generic over its vertex storage. The
// vertex order defines the orientation; the boundary implicitly closes
// from the last vertex back to the first. Polygons with fewer than
// three vertices are degenerate: zero area, no interior.
type Polygon[S VertexSource] struct {
	Vertices S
}

// NewPolygon creates a polygon over the given vertex storage.
func NewPolygon[S VertexSource](vertices S) Polygon[S] {
	return Polygon[S]{Vertices: vertices}
}

// PolygonOf creates a Ring-backed polygon from a vertex list.
func PolygonOf(vertices ...Point) Polygon[Ring] {
	return NewPolygon(Ring(vertices))
}

// Len returns the number of vertices.
func (p Polygon[S]) Len() int {
	return p.Vertices.NumVertices()
}

// IsEmpty reports whether the polygon has no vertices.
func (p Polygon[S]) IsEmpty() bool {
	return p.Len() == 0
}

// Edges returns the polygon's edges as a lazy, restartable sequence.
// Edge i connects vertex i to vertex i+1, the last edge wrapping back
// to vertex 0. Edges are synthesized on demand and never materialized.
func (p Polygon[S]) Edges() iter.Seq[LineSegment] {
	return func(yield func(LineSegment) bool) {
		n := p.Len()
		for i := 0; i < n; i++ {
			e := LineSegment{
				A: p.Vertices.Vertex(i),
				B: p.Vertices.Vertex((i + 1) % n),
			}
			if !yield(e) {
				return
			}
		}
	}
}

// WindingNumber2 sums the signed ray crossings of each edge, scaled to
// twice the winding count so one counter-clockwise wrap yields 2. The
// result is unspecified but deterministic within EPS of the boundary.
func (p Polygon[S]) WindingNumber2(point Point) int {
	winding := 0
	for e := range p.Edges() {
		v0, v1 := e.A, e.B
		if v0.Y <= point.Y {
			// Upward crossing counts when point is left of the edge.
			if v1.Y > point.Y && v1.Sub(v0).Cross(point.Sub(v0)) > 0 {
				winding++
			}
		} else if v1.Y <= point.Y && v1.Sub(v0).Cross(point.Sub(v0)) < 0 {
			// Downward crossing counts when point is right of the edge.
			winding--
		}
	}
	return 2 * winding
}

// Contains reports whether point is inside the polygon under the
// nonzero winding rule, which stays correct for self-intersecting and
// clockwise polygons. Degenerate polygons (fewer than three vertices)
// contain nothing.
func (p Polygon[S]) Contains(point Point) bool {
	return p.WindingNumber2(point) != 0
}

// accumulate runs the shoelace accumulation, returning twice the
// signed area and the raw first-moment sum.
func (p Polygon[S]) accumulate() (area2 float32, first Point) {
	for e := range p.Edges() {
		cross := e.A.Cross(e.B)
		area2 += cross
		first = first.Add(e.A.Add(e.B).Mul(cross))
	}
	return area2, first
}

// Moment returns the polygon's moments by Green's-theorem shoelace
// accumulation. The area is reported unsigned; orientation is exposed
// separately via [Polygon.Orientation]. Polygons whose area vanishes
// within EPS report zero area and their first vertex as centroid.
func (p Polygon[S]) Moment() Moment {
	area2, first := p.accumulate()
	area := math32.Abs(area2) * 0.5
	if area < EPS {
		return Moment{Area: 0, Centroid: p.referencePoint()}
	}
	// Dividing by the signed sum keeps the centroid correct for
	// clockwise polygons.
	return Moment{Area: area, Centroid: first.Div(3 * area2)}
}

// referencePoint is the deterministic centroid stand-in for degenerate
// polygons: the first vertex, or the origin when there is none.
func (p Polygon[S]) referencePoint() Point {
	if p.IsEmpty() {
		return Point{}
	}
	return p.Vertices.Vertex(0)
}

// Area returns the polygon's unsigned area.
func (p Polygon[S]) Area() float32 {
	return p.Moment().Area
}

// Centroid returns the polygon's centroid.
func (p Polygon[S]) Centroid() Point {
	return p.Moment().Centroid
}

// Orientation classifies the vertex order: +1 counter-clockwise, -1
// clockwise, 0 for degenerate (collinear or fewer than three
// vertices). It is the sign of the signed shoelace area.
func (p Polygon[S]) Orientation() int {
	area2, _ := p.accumulate()
	return Sign(area2 * 0.5)
}

// IsConvex reports whether all turns along the boundary share one
// sign. Degenerate polygons count as convex.
func (p Polygon[S]) IsConvex() bool {
	n := p.Len()
	var sign float32
	for i := 0; i < n; i++ {
		a := p.Vertices.Vertex(i)
		b := p.Vertices.Vertex((i + 1) % n)
		c := p.Vertices.Vertex((i + 2) % n)
		cross := b.Sub(a).Cross(c.Sub(b))
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return false
		}
	}
	return true
}

// AppendClipHalfPlane appends the vertices of the polygon clipped by a
// half-plane to dst and returns the extended slice. This is the
// caller-chosen-storage form of [Polygon.ClipHalfPlane]: dst may be
// backed by a preallocated fixed-capacity array. Clipping against one
// half-plane emits at most Len()+1 vertices.
func (p Polygon[S]) AppendClipHalfPlane(dst Ring, h HalfPlane) Ring {
	n := p.Len()
	if n == 0 {
		return dst
	}
	boundary := h.EdgeLine()
	prev := p.Vertices.Vertex(n - 1)
	prevInside := h.Contains(prev)
	for i := 0; i < n; i++ {
		v := p.Vertices.Vertex(i)
		inside := h.Contains(v)
		switch {
		case prevInside && inside:
			dst = append(dst, v)
		case prevInside && !inside:
			// Leaving: emit the boundary crossing.
			if x, ok := boundary.IntersectSegment(LineSegment{A: prev, B: v}); ok {
				dst = append(dst, x)
			}
		case !prevInside && inside:
			// Entering: emit the boundary crossing, then the vertex.
			if x, ok := boundary.IntersectSegment(LineSegment{A: prev, B: v}); ok {
				dst = append(dst, x)
			}
			dst = append(dst, v)
		}
		prev, prevInside = v, inside
	}
	return dst
}

// ClipHalfPlane returns the polygon clipped by a half-plane
// (Sutherland–Hodgman against a single plane). ok is false when the
// polygon lies entirely outside.
func (p Polygon[S]) ClipHalfPlane(h HalfPlane) (Polygon[Ring], bool) {
	out := p.AppendClipHalfPlane(make(Ring, 0, p.Len()+1), h)
	if len(out) == 0 {
		return Polygon[Ring]{}, false
	}
	return NewPolygon(out), true
}

// IntersectPolygon clips a polygon by the half-plane.
func (h HalfPlane) IntersectPolygon(p VertexSource) (Polygon[Ring], bool) {
	return NewPolygon(p).ClipHalfPlane(h)
}

// AppendClipPolygon appends the vertices of the polygon clipped by
// another polygon to dst and returns the extended slice. ok is false
// when the intersection is empty or the clip polygon is degenerate, in
// which case dst is returned unextended.
func (p Polygon[S]) AppendClipPolygon(dst Ring, clip VertexSource) (Ring, bool) {
	cp := NewPolygon(clip)
	orient := cp.Orientation()
	if orient == 0 {
		Logger().Debug("geom2: degenerate clip polygon", "vertices", clip.NumVertices())
		return dst, false
	}

	base := len(dst)
	for i := 0; i < p.Len(); i++ {
		dst = append(dst, p.Vertices.Vertex(i))
	}
	scratch := make(Ring, 0, len(dst)-base+cp.Len())

	for e := range cp.Edges() {
		h := HalfPlaneFromEdge(e.A, e.B)
		if orient < 0 {
			h = h.Flip()
		}
		scratch = NewPolygon(dst[base:]).AppendClipHalfPlane(scratch[:0], h)
		dst = append(dst[:base], scratch...)
		if len(dst) == base {
			return dst, false
		}
	}
	return dst, true
}

// ClipPolygon returns the intersection of the polygon with another
// polygon by clipping against each of the other's edges treated as
// half-planes. The clip polygon's orientation is normalized first, so
// clockwise clip polygons behave like counter-clockwise ones. The
// construction is only exact for convex clip polygons; concave clip
// polygons are not supported. ok is false when the intersection is
// empty or the clip polygon is degenerate.
func (p Polygon[S]) ClipPolygon(clip VertexSource) (Polygon[Ring], bool) {
	out, ok := p.AppendClipPolygon(nil, clip)
	if !ok {
		return Polygon[Ring]{}, false
	}
	return NewPolygon(out), true
}
