package geom2

import "testing"

func TestMoment_Merge(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Moment
		area     float32
		centroid Point
	}{
		{
			name:     "equal areas",
			a:        Moment{Area: 1, Centroid: Pt(0, 0)},
			b:        Moment{Area: 1, Centroid: Pt(2, 0)},
			area:     2,
			centroid: Pt(1, 0),
		},
		{
			name:     "weighted",
			a:        Moment{Area: 3, Centroid: Pt(0, 0)},
			b:        Moment{Area: 1, Centroid: Pt(4, 4)},
			area:     4,
			centroid: Pt(1, 1),
		},
		{
			name:     "hole subtracts",
			a:        Moment{Area: 4, Centroid: Pt(0, 0)},
			b:        Moment{Area: 1, Centroid: Pt(1, 0)}.Neg(),
			area:     3,
			centroid: Pt(-1.0 / 3.0, 0),
		},
		{
			name: "cancellation collapses to zero",
			a:    Moment{Area: 1, Centroid: Pt(0, 0)},
			b:    Moment{Area: 1, Centroid: Pt(5, 5)}.Neg(),
			area: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.a.Merge(tt.b)
			approxf(t, m.Area, tt.area, testEps, "area")
			if tt.area != 0 {
				approxPt(t, m.Centroid, tt.centroid, testEps, "centroid")
			} else {
				approxPt(t, m.Centroid, Point{}, testEps, "zero moment centroid")
			}
		})
	}
}

func TestMoment_Merge_MatchesShoelace(t *testing.T) {
	// Two halves of a square merge into the square's moment.
	left := PolygonOf(Pt(0, 0), Pt(1, 0), Pt(1, 2), Pt(0, 2)).Moment()
	right := PolygonOf(Pt(1, 0), Pt(2, 0), Pt(2, 2), Pt(1, 2)).Moment()
	whole := PolygonOf(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)).Moment()

	m := left.Merge(right)
	approxf(t, m.Area, whole.Area, testEps, "area")
	approxPt(t, m.Centroid, whole.Centroid, testEps, "centroid")
}

func TestMoment_Neg(t *testing.T) {
	m := Moment{Area: 2, Centroid: Pt(3, 4)}
	n := m.Neg()
	approxf(t, n.Area, -2, testEps, "area negated")
	approxPt(t, n.Centroid, m.Centroid, testEps, "centroid unchanged")
}

func TestClosedIntegrable_Implementations(t *testing.T) {
	shapes := []struct {
		name string
		c    Closed
		i    Integrable
	}{
		{"disk", NewDisk(Pt(0, 0), 1), NewDisk(Pt(0, 0), 1)},
		{"polygon", unitSquare(), unitSquare()},
		{"arc polygon", ArcPolygonFromCircle(Circle{Radius: 1}, 3), ArcPolygonFromCircle(Circle{Radius: 1}, 3)},
		{
			"disk segment",
			DiskSegment{D: NewDisk(Pt(0, 0), 1), H: HalfPlaneFromNormal(Pt(0, 0), Pt(0, 1))},
			DiskSegment{D: NewDisk(Pt(0, 0), 1), H: HalfPlaneFromNormal(Pt(0, 0), Pt(0, 1))},
		},
	}

	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			if s.i.Area() <= 0 {
				t.Errorf("Area() = %v, want positive", s.i.Area())
			}
			if !s.c.Contains(s.i.Centroid()) {
				t.Errorf("centroid %v should lie inside the shape", s.i.Centroid())
			}
		})
	}
}
