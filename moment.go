package geom2

// Moment holds the integrated moments of a shape: the zeroth moment
// (signed area) and the area-weighted centroid derived from the first
// moment.
type Moment struct {
	// Area is the zeroth moment.
	Area float32
	// Centroid is the first moment divided by the area.
	Centroid Point
}

// Merge combines two moments into the moment of the union of the
// underlying shapes, assuming they do not overlap. Negative areas
// subtract, so holes can be carved out by merging a negated moment.
// If the combined area vanishes the result is the zero Moment.
func (m Moment) Merge(other Moment) Moment {
	area := m.Area + other.Area
	if IsZero(area) {
		return Moment{}
	}
	centroid := m.Centroid.Mul(m.Area).Add(other.Centroid.Mul(other.Area)).Div(area)
	return Moment{Area: area, Centroid: centroid}
}

// Neg returns the moment with its area negated. Merging a negated
// moment removes the shape's contribution.
func (m Moment) Neg() Moment {
	return Moment{Area: -m.Area, Centroid: m.Centroid}
}

// Closed is a shape with an oriented closed boundary.
type Closed interface {
	// WindingNumber2 is the rotation angle of the boundary around
	// point, divided by pi. A non-self-intersecting counter-clockwise
	// boundary yields 2 for points inside and 0 for points outside.
	// The result is unspecified within the EPS-neighbourhood of the
	// boundary, but deterministic.
	WindingNumber2(point Point) int

	// Contains reports whether point is inside the shape, using the
	// nonzero winding rule.
	Contains(point Point) bool
}

// Integrable is a shape whose area and centroid can be computed.
type Integrable interface {
	// Moment returns the integrated moments of the shape.
	Moment() Moment

	// Area returns the shape's area.
	Area() float32

	// Centroid returns the shape's centroid. Shapes whose area is
	// within EPS of zero report their defining reference point.
	Centroid() Point
}
