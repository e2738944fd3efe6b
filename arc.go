package geom2

import "github.com/chewxy/math32"

// Arc is a circular arc defined by its center, radius and the start
// and end angles in radians. The sweep runs counter-clockwise from
// Start to End, wrapping around when End < Start.
//
// For the [Closed] and [Integrable] contracts an Arc stands for its
// pie sector: the region swept between the two bounding radii.
type Arc struct {
	Center     Point
	Radius     float32
	Start, End float32
}

// Sweep returns the counter-clockwise sweep angle in [0, 2π).
func (a Arc) Sweep() float32 {
	sweep := math32.Mod(a.End-a.Start, 2*math32.Pi)
	if sweep < 0 {
		sweep += 2 * math32.Pi
	}
	return sweep
}

// StartPoint returns the point on the arc at the start angle.
func (a Arc) StartPoint() Point {
	return a.Center.Add(FromAngle(a.Start).Mul(max(a.Radius, 0)))
}

// EndPoint returns the point on the arc at the end angle.
func (a Arc) EndPoint() Point {
	return a.Center.Add(FromAngle(a.End).Mul(max(a.Radius, 0)))
}

// Chord returns the segment connecting the arc's endpoints.
func (a Arc) Chord() LineSegment {
	return LineSegment{A: a.StartPoint(), B: a.EndPoint()}
}

// ChordArc returns the same arc in chord-and-sagitta form.
func (a Arc) ChordArc() ChordArc {
	r := max(a.Radius, 0)
	return ChordArc{
		A:       a.StartPoint(),
		B:       a.EndPoint(),
		Sagitta: r * (1 - math32.Cos(a.Sweep()*0.5)),
	}
}

// WindingNumber2 is 2 for points inside the sector and 0 outside.
func (a Arc) WindingNumber2(point Point) int {
	if a.Contains(point) {
		return 2
	}
	return 0
}

// Contains reports whether point lies inside the pie sector, boundary
// included.
func (a Arc) Contains(point Point) bool {
	r := max(a.Radius, 0)
	rel := point.Sub(a.Center)
	if rel.LengthSq() > r*r+EPS {
		return false
	}
	if rel.NearZero() {
		return true
	}
	theta := math32.Mod(rel.Atan2()-a.Start, 2*math32.Pi)
	if theta < 0 {
		theta += 2 * math32.Pi
	}
	return theta <= a.Sweep()+EPS
}

// Moment returns the closed-form moments of the pie sector: area
// r²θ/2 with the centroid on the bisector at 4r·sin(θ/2)/(3θ) from
// the center. Degenerate sectors report zero area and the center as
// centroid.
func (a Arc) Moment() Moment {
	r := max(a.Radius, 0)
	sweep := a.Sweep()
	area := 0.5 * r * r * sweep
	if area < EPS {
		return Moment{Area: 0, Centroid: a.Center}
	}
	dist := 4 * r * math32.Sin(sweep*0.5) / (3 * sweep)
	bisector := FromAngle(a.Start + sweep*0.5)
	return Moment{
		Area:     area,
		Centroid: a.Center.Add(bisector.Mul(dist)),
	}
}

// Area returns the sector's area.
func (a Arc) Area() float32 {
	return a.Moment().Area
}

// Centroid returns the sector's centroid.
func (a Arc) Centroid() Point {
	return a.Moment().Centroid
}

// ChordArc is a circular arc defined by its chord endpoints and its
// sagitta: the distance from the midpoint of the chord to the midpoint
// of the arc.
//
//	     ..-+-..
//	   *    |    * arc
//	 /      | s    \
//	|       |       |
//	+-------+-------+
//	A     chord     B
//
// The sagitta is signed. When looking from A to B, a positive sagitta
// bulges the arc to the right of the chord, a negative sagitta to the
// left.
type ChordArc struct {
	A, B    Point
	Sagitta float32
}

// Chord returns the segment connecting the arc's endpoints.
func (a ChordArc) Chord() LineSegment {
	return LineSegment{A: a.A, B: a.B}
}

// Radius returns the radius of the circle carrying the arc, derived
// from the half-chord h and sagitta s as (h²+s²)/(2s). Zero for a
// flat (zero-sagitta) arc.
func (a ChordArc) Radius() float32 {
	s := math32.Abs(a.Sagitta)
	if s < EPS {
		return 0
	}
	h := 0.5 * a.B.Sub(a.A).Length()
	return (h*h + s*s) / (2 * s)
}

// CircleCenter returns the center of the circle carrying the arc. For
// a flat (zero-sagitta) arc it returns the chord midpoint.
func (a ChordArc) CircleCenter() Point {
	mid := a.Chord().Midpoint()
	s := math32.Abs(a.Sagitta)
	if s < EPS {
		return mid
	}
	return mid.Add(a.bulgeNormal().Mul(s - a.Radius()))
}

// bulgeNormal returns the unit normal of the chord pointing towards
// the arc, or a fixed fallback when the chord is degenerate so that
// full-circle arcs written as a near-zero chord stay deterministic.
func (a ChordArc) bulgeNormal() Point {
	n := a.B.Sub(a.A).Perp().Normalize().Neg()
	if (n == Point{}) {
		n = Pt(0, 1)
	}
	if a.Sagitta < 0 {
		n = n.Neg()
	}
	return n
}

// DiskSegment is a disk clipped by a half-plane, held lazily as the
// pair rather than eagerly discretized. It may be empty (no overlap)
// or the full disk (half-plane contains it); in between it is a proper
// circular segment bounded by an arc and its chord.
type DiskSegment struct {
	D Disk
	H HalfPlane
}

// DiskSegmentFromChordArc builds the disk segment bounded by the arc
// and its chord. The sign of the sagitta only selects the side of the
// chord; orientation bookkeeping for negative-sagitta lobes is the
// caller's concern (see [ArcPolygon]).
func DiskSegmentFromChordArc(a ChordArc) DiskSegment {
	mid := a.Chord().Midpoint()
	s := math32.Abs(a.Sagitta)
	n := a.bulgeNormal()
	if s < EPS {
		// Flat arc: an empty segment anchored at the chord midpoint.
		return DiskSegment{
			D: NewDisk(mid, 0),
			H: HalfPlaneFromNormal(mid, n),
		}
	}
	r := a.Radius()
	return DiskSegment{
		D: NewDisk(mid.Add(n.Mul(s-r)), r),
		H: HalfPlaneFromNormal(mid, n),
	}
}

// sagitta derives the segment's sagitta from the disk/half-plane pair,
// clamped to [0, 2r].
func (s DiskSegment) sagitta() float32 {
	r := s.D.radius()
	return min(max(r+s.H.Distance(s.D.Center), 0), 2*r)
}

// WindingNumber2 is 2 for points inside the segment and 0 outside.
func (s DiskSegment) WindingNumber2(point Point) int {
	if s.Contains(point) {
		return 2
	}
	return 0
}

// Contains reports whether point lies in the intersection of the disk
// and the half-plane. The two predicates combine analytically; no
// polygonal approximation is involved.
func (s DiskSegment) Contains(point Point) bool {
	return s.D.Contains(point) && s.H.Contains(point)
}

// approxCircle is the maximum sagitta-to-radius ratio below which the
// circular arc is integrated as a parabola to avoid cancellation in
// the exact formula.
const approxCircle float32 = 1e-4

// Moment returns the moments of the circular segment. The area is the
// closed-form r²(θ - sinθcosθ) expression written via the sagitta; for
// very shallow segments a parabolic approximation is used instead.
func (s DiskSegment) Moment() Moment {
	r := s.D.radius()
	if IsZero(r) {
		return Moment{Area: 0, Centroid: s.D.Center}
	}
	d := s.H.Distance(s.D.Center)
	mid := s.D.Center.Sub(s.H.Normal.Mul(min(max(d, -r), r)))
	sag := s.sagitta()
	if sag < EPS {
		return Moment{Area: 0, Centroid: mid}
	}

	halfChord := math32.Sqrt(max((r-d)*(r+d), 0))
	cosine := 1 - sag/r
	sine := halfChord / r

	var area, offset float32
	if sag > approxCircle*r {
		area = math32.Acos(min(max(cosine, -1), 1)) - cosine*sine
		offset = (2.0 / 3.0) * sine * sine * sine / area
	} else {
		// Approximate the shallow arc by a parabola.
		y := 1 - math32.Abs(cosine)
		area = (4.0 / 3.0) * math32.Sqrt(2*y) * y
		offset = 1 - 0.3*y
		if cosine <= 0 {
			full := math32.Pi - area
			offset = -offset * area / full
			area = full
		}
	}

	return Moment{
		Area:     area * r * r,
		Centroid: mid.Add(s.H.Normal.Mul(sag + r*(offset-1))),
	}
}

// Area returns the segment's area.
func (s DiskSegment) Area() float32 {
	return s.Moment().Area
}

// Centroid returns the segment's centroid.
func (s DiskSegment) Centroid() Point {
	return s.Moment().Centroid
}
