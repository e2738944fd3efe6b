package geom2

// Line is an infinite line through two distinct points, oriented A→B.
type Line struct {
	A, B Point
}

// LineSegment is a line segment bounded by two points, oriented A→B.
type LineSegment struct {
	A, B Point
}

// IsDegenerate reports whether the two defining points coincide
// within EPS.
func (l Line) IsDegenerate() bool {
	return l.B.Sub(l.A).NearZero()
}

// Direction returns the unnormalized direction vector B-A.
func (l Line) Direction() Point {
	return l.B.Sub(l.A)
}

// IsNear reports whether point lies within the EPS-neighbourhood of
// the line.
func (l Line) IsNear(point Point) bool {
	r := l.B.Sub(l.A)
	if r.NearZero() {
		return point.Sub(l.A).NearZero()
	}
	return IsZero(r.Cross(point.Sub(l.A)))
}

// SignedDistance returns the distance from point to the line, positive
// when point lies to the left of A→B. For a degenerate line it falls
// back to the distance from A.
func (l Line) SignedDistance(point Point) float32 {
	r := l.B.Sub(l.A)
	length := r.Length()
	if IsZero(length) {
		return point.Distance(l.A)
	}
	return r.Cross(point.Sub(l.A)) / length
}

// Line returns the infinite line containing this segment.
func (s LineSegment) Line() Line {
	return Line{A: s.A, B: s.B}
}

// Midpoint returns the midpoint of the segment.
func (s LineSegment) Midpoint() Point {
	return s.A.Add(s.B).Mul(0.5)
}

// IsDegenerate reports whether this segment has zero length within EPS.
func (s LineSegment) IsDegenerate() bool {
	return s.Line().IsDegenerate()
}

// IsNear reports whether point lies within the EPS-neighbourhood of
// the segment.
func (s LineSegment) IsNear(point Point) bool {
	r := s.B.Sub(s.A)
	if r.NearZero() {
		return point.Sub(s.A).NearZero()
	}
	if !IsZero(r.Cross(point.Sub(s.A))) {
		return false
	}
	dot := point.Sub(s.A).Dot(r)
	return dot >= -EPS && dot <= r.LengthSq()+EPS
}

// IsBetween reports whether a point already known to lie on the
// segment's line falls between the two endpoints, EPS-inclusive.
func (s LineSegment) IsBetween(point Point) bool {
	r := s.B.Sub(s.A)
	if r.NearZero() {
		return point.Sub(s.A).NearZero()
	}
	dot := point.Sub(s.A).Dot(r)
	return dot >= -EPS && dot <= r.LengthSq()+EPS
}

// paramInRange reports whether a parametric coordinate lies in [0, 1]
// with EPS slack at both ends, so touching endpoints count as hits.
func paramInRange(u float32) bool {
	return u >= -EPS && u <= 1+EPS
}

// Intersect returns the intersection point of two infinite lines.
//
// Parallel non-coincident lines do not intersect. Coincident lines
// have no unique intersection; a deterministic representative point on
// the common line is returned instead. Degenerate (point-like) lines
// intersect when the point lies on the other line.
func (l Line) Intersect(other Line) (Point, bool) {
	p, q := l.A, other.A
	r := l.B.Sub(l.A)
	s := other.B.Sub(other.A)
	pq := q.Sub(p)

	den := r.Cross(s)
	pqr := pq.Cross(r)
	pqs := pq.Cross(s)

	if !IsZero(den) {
		return l.A.Lerp(l.B, pqs/den), true
	}
	switch {
	case !r.NearZero() && !s.NearZero():
		// Parallel lines. Coincident within EPS yields a
		// representative point.
		if IsZero(pqs) {
			return p, true
		}
		return Point{}, false
	case r.NearZero() && !s.NearZero():
		// Line l is degenerate.
		if IsZero(pqs) {
			return p, true
		}
		return Point{}, false
	case !r.NearZero() && s.NearZero():
		// Line other is degenerate.
		if IsZero(pqr) {
			return q, true
		}
		return Point{}, false
	default:
		// Both lines are degenerate.
		if pq.NearZero() {
			return p, true
		}
		return Point{}, false
	}
}

// IntersectSegment returns the intersection of the line with a segment.
func (l Line) IntersectSegment(s LineSegment) (Point, bool) {
	return s.IntersectLine(l)
}

// IntersectLine returns the intersection of the segment with an
// infinite line. A segment collinear with the line reports its own
// midpoint as the representative intersection.
func (s LineSegment) IntersectLine(other Line) (Point, bool) {
	p, q := s.A, other.A
	r := s.B.Sub(s.A)
	t := other.B.Sub(other.A)
	pq := q.Sub(p)

	den := r.Cross(t)
	pqr := pq.Cross(r)
	pqt := pq.Cross(t)

	if !IsZero(den) {
		u := pqt / den
		if paramInRange(u) {
			return s.A.Lerp(s.B, u), true
		}
		return Point{}, false
	}
	switch {
	case !r.NearZero() && !t.NearZero():
		// Segment is parallel to the line. Overlapping within EPS
		// yields the segment's midpoint.
		if IsZero(pqt) {
			return p.Add(r.Mul(0.5)), true
		}
		return Point{}, false
	case r.NearZero() && !t.NearZero():
		// Segment is degenerate.
		if IsZero(pqt) {
			return p, true
		}
		return Point{}, false
	case !r.NearZero() && t.NearZero():
		// Line is degenerate.
		u := pq.Dot(r) / r.LengthSq()
		if IsZero(pqr) && paramInRange(u) {
			return q, true
		}
		return Point{}, false
	default:
		// Both are degenerate.
		if pq.NearZero() {
			return p, true
		}
		return Point{}, false
	}
}

// Intersect returns the intersection point of two segments. Touching
// endpoints count as intersecting. Collinear overlapping segments have
// no unique intersection; the midpoint of the overlapping region is
// returned as a deterministic representative.
func (s LineSegment) Intersect(other LineSegment) (Point, bool) {
	p, q := s.A, other.A
	r := s.B.Sub(s.A)
	t := other.B.Sub(other.A)
	pq := q.Sub(p)

	den := r.Cross(t)
	pqr := pq.Cross(r)
	pqt := pq.Cross(t)

	if !IsZero(den) {
		u := pqt / den
		v := pqr / den
		if paramInRange(u) && paramInRange(v) {
			return s.A.Lerp(s.B, u), true
		}
		return Point{}, false
	}
	switch {
	case !r.NearZero() && !t.NearZero():
		if !IsZero(pqr) {
			// Parallel but not collinear.
			return Point{}, false
		}
		// Collinear segments: project other onto s and check the
		// parametric ranges for overlap.
		t0 := pq.Dot(r) / r.LengthSq()
		t1 := pq.Add(t).Dot(r) / r.LengthSq()
		tMin, tMax := t0, t1
		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}
		if tMax < -EPS || tMin > 1+EPS {
			return Point{}, false
		}
		overlapStart := max(tMin, 0)
		overlapEnd := min(tMax, 1)
		return s.A.Add(r.Mul((overlapStart + overlapEnd) * 0.5)), true
	case r.NearZero() && !t.NearZero():
		// Segment s is degenerate.
		v := -pq.Dot(t) / t.LengthSq()
		if IsZero(pqt) && paramInRange(v) {
			return p, true
		}
		return Point{}, false
	case !r.NearZero() && t.NearZero():
		// Segment other is degenerate.
		u := pq.Dot(r) / r.LengthSq()
		if IsZero(pqr) && paramInRange(u) {
			return q, true
		}
		return Point{}, false
	default:
		// Both segments are degenerate.
		if pq.NearZero() {
			return p, true
		}
		return Point{}, false
	}
}
