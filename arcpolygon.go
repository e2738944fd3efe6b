package geom2

import (
	"iter"

	"github.com/chewxy/math32"
)

// ArcVertex is a vertex of an [ArcPolygon] together with the sagitta
// of the edge leaving it. A zero sagitta makes the edge a straight
// segment; a nonzero sagitta bows it into a circular arc (positive to
// the right of the edge direction, as in [ChordArc]).
type ArcVertex struct {
	Point   Point
	Sagitta float32
}

// ArcVertexSource is the storage capability of an arc polygon: an
// ordered sequence of arc vertices by count and index.
type ArcVertexSource interface {
	NumVertices() int
	ArcVertex(i int) ArcVertex
}

// ArcRing is the default growable arc-vertex storage.
type ArcRing []ArcVertex

// NumVertices returns the number of vertices in the ring.
func (r ArcRing) NumVertices() int { return len(r) }

// ArcVertex returns the i-th arc vertex.
func (r ArcRing) ArcVertex(i int) ArcVertex { return r[i] }

// ArcFrame adapts arc-vertex storage to plain vertex storage by
// dropping the sagittas, so the straight-edge frame of an arc polygon
// can be handled by the ordinary [Polygon] algorithms without copying.
type ArcFrame[S ArcVertexSource] struct {
	src S
}

// NumVertices returns the number of vertices.
func (f ArcFrame[S]) NumVertices() int { return f.src.NumVertices() }

// Vertex returns the position of the i-th arc vertex.
func (f ArcFrame[S]) Vertex(i int) Point { return f.src.ArcVertex(i).Point }

// ArcPolygon is a closed polygon whose edges may be circular arcs
// instead of straight segments. It composes the polygon contracts with
// per-edge [DiskSegment] contributions rather than reimplementing
// them: winding numbers and moments are the frame polygon's plus one
// lobe per curved edge.
type ArcPolygon[S ArcVertexSource] struct {
	Vertices S
}

// NewArcPolygon creates an arc polygon over the given storage.
func NewArcPolygon[S ArcVertexSource](vertices S) ArcPolygon[S] {
	return ArcPolygon[S]{Vertices: vertices}
}

// ArcPolygonOf creates an ArcRing-backed arc polygon from a vertex
// list.
func ArcPolygonOf(vertices ...ArcVertex) ArcPolygon[ArcRing] {
	return NewArcPolygon(ArcRing(vertices))
}

// ArcPolygonFromCircle approximates a circle as a regular arc polygon
// with n vertices whose edges are true arcs of the circle, so area and
// winding are exact for any n ≥ 2.
func ArcPolygonFromCircle(c Circle, n int) ArcPolygon[ArcRing] {
	if n < 2 {
		n = 2
	}
	r := c.radius()
	sagitta := r * (1 - math32.Cos(math32.Pi/float32(n)))
	ring := make(ArcRing, n)
	for i := range ring {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		ring[i] = ArcVertex{
			Point:   c.Center.Add(FromAngle(theta).Mul(r)),
			Sagitta: sagitta,
		}
	}
	return NewArcPolygon(ring)
}

// Len returns the number of vertices.
func (p ArcPolygon[S]) Len() int {
	return p.Vertices.NumVertices()
}

// IsEmpty reports whether the arc polygon has no vertices.
func (p ArcPolygon[S]) IsEmpty() bool {
	return p.Len() == 0
}

// Frame returns the straight-edge polygon over the same vertices.
func (p ArcPolygon[S]) Frame() Polygon[ArcFrame[S]] {
	return NewPolygon(ArcFrame[S]{src: p.Vertices})
}

// Edges returns the arc edges as a lazy, restartable sequence. Edge i
// runs from vertex i to vertex i+1 (wrapping) with vertex i's sagitta.
func (p ArcPolygon[S]) Edges() iter.Seq[ChordArc] {
	return func(yield func(ChordArc) bool) {
		n := p.Len()
		for i := 0; i < n; i++ {
			a := p.Vertices.ArcVertex(i)
			b := p.Vertices.ArcVertex((i + 1) % n)
			e := ChordArc{A: a.Point, B: b.Point, Sagitta: a.Sagitta}
			if !yield(e) {
				return
			}
		}
	}
}

// WindingNumber2 is the frame polygon's winding number plus the signed
// lobe contribution of each curved edge.
func (p ArcPolygon[S]) WindingNumber2(point Point) int {
	winding := p.Frame().WindingNumber2(point)
	for e := range p.Edges() {
		sign := Sign(e.Sagitta)
		if sign == 0 {
			continue
		}
		winding += sign * DiskSegmentFromChordArc(e).WindingNumber2(point)
	}
	return winding
}

// Contains reports whether point is inside the arc polygon under the
// nonzero winding rule.
func (p ArcPolygon[S]) Contains(point Point) bool {
	return p.WindingNumber2(point) != 0
}

// Moment merges the frame polygon's moment with one circular-segment
// lobe per curved edge. Lobes with negative sagitta bow into the
// interior and subtract.
func (p ArcPolygon[S]) Moment() Moment {
	m := p.Frame().Moment()
	for e := range p.Edges() {
		sign := Sign(e.Sagitta)
		if sign == 0 {
			continue
		}
		lobe := DiskSegmentFromChordArc(e).Moment()
		if sign < 0 {
			lobe = lobe.Neg()
		}
		m = m.Merge(lobe)
	}
	return m
}

// Area returns the arc polygon's area.
func (p ArcPolygon[S]) Area() float32 {
	return p.Moment().Area
}

// Centroid returns the arc polygon's centroid.
func (p ArcPolygon[S]) Centroid() Point {
	return p.Moment().Centroid
}

// clipDiskRaw walks the polygon boundary against the disk and emits
// the clipped vertex sequence before deduplication. Straight runs keep
// their vertices; each excursion outside the disk is shortened to the
// chord crossing points and later reconnected by an arc of the disk
// boundary.
func clipDiskRaw[S VertexSource](p Polygon[S], d Disk, out []ArcVertex) []ArcVertex {
	n := p.Len()
	if n == 0 {
		return out
	}
	circle := d.Edge()
	r := d.radius()
	sagittaTo := func(from, to Point) float32 {
		return r - (Line{A: from, B: to}).SignedDistance(d.Center)
	}

	var first, last Point
	var haveFirst, haveLast bool

	prev := p.Vertices.Vertex(0)
	prevInside := d.Contains(prev)
	for i := 1; i <= n; i++ {
		v := p.Vertices.Vertex(i % n)
		inside := d.Contains(v)
		switch {
		case prevInside && inside:
			out = append(out, ArcVertex{Point: prev})
		case prevInside && !inside:
			// Leaving the disk: remember the exit crossing for the
			// reconnecting arc.
			exit := v
			if pts, ok := circle.IntersectLine(Line{A: prev, B: v}); ok {
				exit = pts[1]
			}
			last, haveLast = exit, true
			out = append(out, ArcVertex{Point: prev})
		case !prevInside && inside:
			entry := prev
			if pts, ok := circle.IntersectLine(Line{A: prev, B: v}); ok {
				entry = pts[0]
			}
			if haveLast {
				out = append(out, ArcVertex{Point: last, Sagitta: sagittaTo(last, entry)})
			} else if !haveFirst {
				first, haveFirst = entry, true
			}
			out = append(out, ArcVertex{Point: entry})
		default:
			// Both endpoints outside: the edge may still cut through
			// the disk.
			pts, hit, ok := circle.IntersectSegment(LineSegment{A: prev, B: v})
			if ok && hit[0] && hit[1] {
				if haveLast {
					out = append(out, ArcVertex{Point: last, Sagitta: sagittaTo(last, pts[0])})
				} else if !haveFirst {
					first, haveFirst = pts[0], true
				}
				out = append(out, ArcVertex{Point: pts[0]})
				last, haveLast = pts[1], true
			}
		}
		prev, prevInside = v, inside
	}
	if haveFirst && haveLast {
		out = append(out, ArcVertex{Point: last, Sagitta: sagittaTo(last, first)})
	}
	return out
}

// appendDeduped appends raw to dst, dropping each vertex whose point
// coincides (within EPS) with its cyclic successor's.
func appendDeduped(dst ArcRing, raw []ArcVertex) ArcRing {
	n := len(raw)
	for i := 0; i < n; i++ {
		next := raw[(i+1)%n]
		if !raw[i].Point.Sub(next.Point).NearZero() {
			dst = append(dst, raw[i])
		}
	}
	return dst
}

// AppendClipDisk appends the vertices of the polygon clipped by a disk
// to dst and returns the extended slice. ok is false when polygon and
// disk do not overlap; when the disk lies entirely inside the polygon
// the whole disk is appended as a two-arc polygon.
func (p Polygon[S]) AppendClipDisk(dst ArcRing, d Disk) (ArcRing, bool) {
	raw := clipDiskRaw(p, d, nil)
	if len(raw) > 0 {
		return appendDeduped(dst, raw), true
	}
	if p.Contains(d.Center) {
		whole := d.PolygonN(2)
		for i := 0; i < whole.Len(); i++ {
			dst = append(dst, whole.Vertices.ArcVertex(i))
		}
		return dst, true
	}
	return dst, false
}

// ClipDisk returns the intersection of the polygon with a disk as an
// arc polygon: straight edges where the polygon boundary survives, arc
// edges where the disk boundary does. ok is false when they do not
// overlap.
func (p Polygon[S]) ClipDisk(d Disk) (ArcPolygon[ArcRing], bool) {
	out, ok := p.AppendClipDisk(nil, d)
	if !ok {
		return ArcPolygon[ArcRing]{}, false
	}
	return NewArcPolygon(out), true
}

// IntersectPolygon clips a polygon by the disk.
func (d Disk) IntersectPolygon(p VertexSource) (ArcPolygon[ArcRing], bool) {
	return NewPolygon(p).ClipDisk(d)
}
