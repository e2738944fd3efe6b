package geom2

import "github.com/chewxy/math32"

// Circle is a circle boundary defined by its center and radius.
//
//	     ..---..
//	   *         *
//	 /             \
//	|               |
//	|       +------>|
//	|       c   r   |
//	 \             /
//	   .         .
//	     ``---``
//
// Where c is the center and r is the radius. A Circle is only the
// boundary curve; use [Disk] for the filled interior.
type Circle struct {
	Center Point
	Radius float32
}

// Fill returns the filled disk bounded by this circle.
func (c Circle) Fill() Disk {
	return Disk{Circle: c}
}

// radius returns the effective radius. A negative radius is malformed
// input and classifies as degenerate rather than crashing downstream
// math.
func (c Circle) radius() float32 {
	return max(c.Radius, 0)
}

// Disk is a filled disk: the interior plus the boundary circle,
// oriented counter-clockwise.
type Disk struct {
	Circle
}

// NewDisk creates a disk with the given center and radius.
func NewDisk(center Point, radius float32) Disk {
	return Disk{Circle: Circle{Center: center, Radius: radius}}
}

// Edge returns the boundary circle of this disk.
func (d Disk) Edge() Circle {
	return d.Circle
}

// WindingNumber2 is 2 for points inside the disk and 0 outside,
// computed directly from the distance to the center rather than from
// an edge loop.
func (d Disk) WindingNumber2(point Point) int {
	r := d.radius()
	if d.Center.Sub(point).LengthSq() <= r*r {
		return 2
	}
	return 0
}

// Contains reports whether point lies inside the disk, boundary
// included.
func (d Disk) Contains(point Point) bool {
	return d.WindingNumber2(point) != 0
}

// Moment returns the closed-form moments of the disk.
func (d Disk) Moment() Moment {
	r := d.radius()
	return Moment{
		Area:     math32.Pi * r * r,
		Centroid: d.Center,
	}
}

// Area returns the disk's area.
func (d Disk) Area() float32 {
	return d.Moment().Area
}

// Centroid returns the disk's centroid, which is its center.
func (d Disk) Centroid() Point {
	return d.Center
}

// IntersectLine returns the up-to-two intersection points of the
// circle boundary with an infinite line, ordered along the line's A→B
// direction. A tangent line yields two equal points. Degenerate lines
// and lines missing the circle yield no intersection.
func (c Circle) IntersectLine(l Line) ([2]Point, bool) {
	if l.IsDegenerate() {
		return [2]Point{}, false
	}
	r := c.radius()
	dir := l.Direction().Normalize()
	foot := l.A.Add(dir.Mul(c.Center.Sub(l.A).Dot(dir)))
	dist := c.Center.Distance(foot)
	if dist > r+EPS {
		return [2]Point{}, false
	}
	half := math32.Sqrt(max((r-dist)*(r+dist), 0))
	return [2]Point{
		foot.Sub(dir.Mul(half)),
		foot.Add(dir.Mul(half)),
	}, true
}

// IntersectCircle returns the intersection of the line with a circle.
func (l Line) IntersectCircle(c Circle) ([2]Point, bool) {
	return c.IntersectLine(l)
}

// IntersectSegment intersects the circle boundary with a line segment.
// points holds the intersections of the segment's carrier line; hit
// marks which of them actually fall within the segment. ok is false
// when even the carrier line misses the circle.
func (c Circle) IntersectSegment(s LineSegment) (points [2]Point, hit [2]bool, ok bool) {
	points, ok = c.IntersectLine(s.Line())
	if !ok {
		return [2]Point{}, [2]bool{}, false
	}
	hit[0] = s.IsBetween(points[0])
	hit[1] = s.IsBetween(points[1])
	return points, hit, true
}

// IntersectCircle returns the intersection of the segment with a
// circle boundary.
func (s LineSegment) IntersectCircle(c Circle) ([2]Point, [2]bool, bool) {
	return c.IntersectSegment(s)
}

// Intersect returns the up-to-two points where two circle boundaries
// cross, symmetric about the line joining the centers. Tangent circles
// yield two equal points. Separate, nested and coincident circles have
// no intersection: coincident circles overlap in infinitely many
// points, which is deliberately reported as no unique intersection.
func (c Circle) Intersect(other Circle) ([2]Point, bool) {
	r1 := c.radius()
	r2 := other.radius()
	rel := other.Center.Sub(c.Center)
	dist := rel.Length()

	if dist < EPS {
		// Concentric. Coincident or nested either way, no finite
		// point set.
		return [2]Point{}, false
	}
	if dist > r1+r2+EPS {
		return [2]Point{}, false
	}
	if dist < math32.Abs(r1-r2)-EPS {
		// One circle strictly inside the other.
		return [2]Point{}, false
	}

	dir := rel.Div(dist)
	a := 0.5 * (dist + (r1*r1-r2*r2)/dist)
	h := math32.Sqrt(max((r1-a)*(r1+a), 0))
	m := c.Center.Add(dir.Mul(a))
	return [2]Point{
		m.Add(dir.Perp().Mul(h)),
		m.Sub(dir.Perp().Mul(h)),
	}, true
}

// IntersectHalfPlane clips the circle boundary by a half-plane.
// When the boundary crosses the half-plane edge, arc is the part of
// the boundary inside the half-plane. When the circle lies entirely
// inside, whole is true and arc is unset. ok is false when the circle
// lies entirely outside.
func (c Circle) IntersectHalfPlane(h HalfPlane) (arc ChordArc, whole, ok bool) {
	r := c.radius()
	d := h.Distance(c.Center)
	if d+r <= EPS {
		// Entirely outside, at most touching the boundary.
		return ChordArc{}, false, false
	}
	if d-r >= -EPS {
		return ChordArc{}, true, true
	}
	halfChord := math32.Sqrt(max((r-d)*(r+d), 0))
	mid := c.Center.Sub(h.Normal.Mul(d))
	// Endpoints ordered so the positive sagitta bulges into the
	// half-plane.
	return ChordArc{
		A:       mid.Sub(h.Normal.Perp().Mul(halfChord)),
		B:       mid.Add(h.Normal.Perp().Mul(halfChord)),
		Sagitta: r + d,
	}, false, true
}

// IntersectCircle clips a circle boundary by the half-plane.
func (h HalfPlane) IntersectCircle(c Circle) (ChordArc, bool, bool) {
	return c.IntersectHalfPlane(h)
}

// IntersectHalfPlane clips the disk by a half-plane. The overlap is
// held lazily as a [DiskSegment]; no polygonal approximation is made.
// When the disk lies entirely inside the half-plane, whole is true and
// the overlap is the disk itself. ok is false when they do not overlap.
func (d Disk) IntersectHalfPlane(h HalfPlane) (seg DiskSegment, whole, ok bool) {
	_, whole, ok = d.Edge().IntersectHalfPlane(h)
	if !ok || whole {
		return DiskSegment{}, whole, ok
	}
	return DiskSegment{D: d, H: h}, false, true
}

// IntersectDisk clips a disk by the half-plane.
func (h HalfPlane) IntersectDisk(d Disk) (DiskSegment, bool, bool) {
	return d.IntersectHalfPlane(h)
}

// Intersect computes the overlap of two disks. When the boundaries
// cross, the overlap is the lens-shaped two-arc polygon spanned by the
// crossing points and isLens is true. When one disk contains the
// other, inner is the contained disk and isLens is false. ok is false
// when the disks do not overlap at all.
func (d Disk) Intersect(other Disk) (lens ArcPolygon[ArcRing], inner Disk, isLens, ok bool) {
	r1 := d.radius()
	r2 := other.radius()
	rel := other.Center.Sub(d.Center)
	dist := rel.Length()

	if dist > r1+r2+EPS {
		return ArcPolygon[ArcRing]{}, Disk{}, false, false
	}
	if dist <= math32.Abs(r1-r2)+EPS {
		// One disk is inside the other.
		if r1 < r2 {
			return ArcPolygon[ArcRing]{}, d, false, true
		}
		return ArcPolygon[ArcRing]{}, other, false, true
	}

	dir := rel.Div(dist)

	// Apothems of the common chord in each disk.
	a1 := 0.5 * (dist + (r1*r1-r2*r2)/dist)
	a2 := dist - a1

	h := math32.Sqrt(max((r1-a1)*(r1+a1), 0))
	m := d.Center.Add(dir.Mul(a1))

	lens = NewArcPolygon(ArcRing{
		{Point: m.Sub(dir.Perp().Mul(h)), Sagitta: r1 - a1},
		{Point: m.Add(dir.Perp().Mul(h)), Sagitta: r2 - a2},
	})
	return lens, Disk{}, true, true
}

// PolygonN approximates the disk as an arc polygon with n vertices,
// each edge a circular arc of the boundary. n is clamped to at least 2
// (two half-circle arcs reproduce the disk exactly).
func (d Disk) PolygonN(n int) ArcPolygon[ArcRing] {
	if n < 2 {
		n = 2
	}
	return ArcPolygonFromCircle(d.Edge(), n)
}
