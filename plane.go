package geom2

// HalfPlane is the set of points on one side of an infinite boundary
// line. The normal points from free space into the half-plane, so
// Distance is positive for points inside.
type HalfPlane struct {
	// Normal is the unit normal of the boundary, pointing into the
	// half-plane.
	Normal Point
	// Offset is the dot product of any boundary point with the
	// normal. The origin is inside when Offset is negative.
	Offset float32
}

// HalfPlaneFromNormal constructs a half-plane whose boundary passes
// through point and whose inside lies in the direction of normal.
// Normal must be normalized.
func HalfPlaneFromNormal(point, normal Point) HalfPlane {
	return HalfPlane{
		Normal: normal,
		Offset: point.Dot(normal),
	}
}

// HalfPlaneFromEdge constructs a half-plane from two points on its
// boundary. When looking from a towards b, the left side is inside.
func HalfPlaneFromEdge(a, b Point) HalfPlane {
	return HalfPlaneFromNormal(a, b.Sub(a).Perp().Normalize())
}

// Distance returns the signed distance from point to the boundary,
// positive when point is inside the half-plane.
func (h HalfPlane) Distance(point Point) float32 {
	return point.Dot(h.Normal) - h.Offset
}

// BoundaryPoint returns some point on the boundary line.
func (h HalfPlane) BoundaryPoint() Point {
	return h.Normal.Mul(h.Offset)
}

// EdgeLine returns the boundary as a Line, oriented so that the
// half-plane's inside is on its left.
func (h HalfPlane) EdgeLine() Line {
	p := h.BoundaryPoint()
	return Line{A: p, B: p.Sub(h.Normal.Perp())}
}

// Flip returns the complementary half-plane on the other side of the
// same boundary.
func (h HalfPlane) Flip() HalfPlane {
	return HalfPlane{Normal: h.Normal.Neg(), Offset: -h.Offset}
}

// WindingNumber2 is ±1 depending on the side the point lies on, and 0
// within EPS of the boundary. The boundary of a half-plane subtends a
// half-turn, hence the magnitude 1.
func (h HalfPlane) WindingNumber2(point Point) int {
	return Sign(h.Distance(point))
}

// Contains reports whether point lies inside the half-plane, boundary
// included (EPS-inclusive). A half-plane is unbounded, so it tests the
// signed distance directly rather than applying the nonzero winding
// rule.
func (h HalfPlane) Contains(point Point) bool {
	return h.Distance(point) > -EPS
}
