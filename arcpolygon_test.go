package geom2

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestArcPolygonFromCircle(t *testing.T) {
	c := Circle{Center: Pt(1, -1), Radius: 2}

	for _, n := range []int{2, 3, 4, 8} {
		p := ArcPolygonFromCircle(c, n)
		if p.Len() != n {
			t.Fatalf("n=%d: Len() = %d", n, p.Len())
		}
		m := p.Moment()
		approxf(t, m.Area, 4*math32.Pi, 1e-2, "area is exact for any vertex count")
		approxPt(t, m.Centroid, c.Center, 1e-2, "centroid")
	}
}

func TestArcPolygon_Contains(t *testing.T) {
	p := ArcPolygonFromCircle(Circle{Center: Pt(0, 0), Radius: 2}, 3)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center", Pt(0, 0), true},
		{"inside a lobe", Pt(0, -1.9), true},
		{"outside", Pt(3, 0), false},
		{"just outside a lobe", Pt(0, -2.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestArcPolygon_NegativeSagitta(t *testing.T) {
	// A 4x4 square whose bottom edge bows inward with sagitta -1.
	p := ArcPolygonOf(
		ArcVertex{Point: Pt(0, 0), Sagitta: -1},
		ArcVertex{Point: Pt(4, 0)},
		ArcVertex{Point: Pt(4, 4)},
		ArcVertex{Point: Pt(0, 4)},
	)

	// Chord 4, sagitta 1: carrier radius 2.5, lobe area
	// r²(θ - sinθcosθ) with cosθ = 0.6.
	theta := math32.Acos(0.6)
	lobe := 2.5 * 2.5 * (theta - 0.6*0.8)
	approxf(t, p.Area(), 16-lobe, 1e-3, "inward lobe subtracts")

	if p.Contains(Pt(2, 0.5)) {
		t.Error("point inside the bowed-away lobe should be outside")
	}
	if !p.Contains(Pt(2, 1.5)) {
		t.Error("point above the lobe should be inside")
	}
	if !p.Contains(Pt(0.2, 3.8)) {
		t.Error("far corner should be unaffected")
	}
}

func TestArcPolygon_Frame(t *testing.T) {
	p := ArcPolygonOf(
		ArcVertex{Point: Pt(0, 0), Sagitta: 1},
		ArcVertex{Point: Pt(4, 0), Sagitta: -0.5},
		ArcVertex{Point: Pt(2, 3)},
	)
	f := p.Frame()
	if f.Len() != 3 {
		t.Fatalf("frame Len() = %d, want 3", f.Len())
	}
	approxf(t, f.Area(), 6, testEps, "frame drops the sagittas")
	approxPt(t, f.Vertices.Vertex(1), Pt(4, 0), testEps, "frame vertex")
}

func TestArcPolygon_Edges(t *testing.T) {
	p := ArcPolygonOf(
		ArcVertex{Point: Pt(0, 0), Sagitta: 0.5},
		ArcVertex{Point: Pt(2, 0)},
		ArcVertex{Point: Pt(1, 2), Sagitta: -0.25},
	)

	var got []ChordArc
	for e := range p.Edges() {
		got = append(got, e)
	}
	if len(got) != 3 {
		t.Fatalf("edge count = %d, want 3", len(got))
	}
	approxf(t, got[0].Sagitta, 0.5, testEps, "edge carries its start vertex's sagitta")
	approxPt(t, got[2].A, Pt(1, 2), testEps, "last edge start")
	approxPt(t, got[2].B, Pt(0, 0), testEps, "last edge wraps")
	approxf(t, got[2].Sagitta, -0.25, testEps, "wrapping edge sagitta")
}

func TestPolygon_ClipDisk(t *testing.T) {
	t.Run("quarter disk", func(t *testing.T) {
		sq := PolygonOf(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
		d := NewDisk(Pt(0, 0), 1)
		got, ok := sq.ClipDisk(d)
		if !ok {
			t.Fatal("overlap should be non-empty")
		}
		if got.Len() != 3 {
			t.Fatalf("vertex count = %d, want 3", got.Len())
		}
		approxf(t, got.Area(), math32.Pi/4, 1e-3, "quarter-disk area")
		if !got.Contains(Pt(0.3, 0.3)) {
			t.Error("interior point should be contained")
		}
		if got.Contains(Pt(0.9, 0.9)) {
			t.Error("square corner outside the disk should be clipped away")
		}
	})

	t.Run("band through disk", func(t *testing.T) {
		rect := PolygonOf(Pt(-3, -0.5), Pt(3, -0.5), Pt(3, 0.5), Pt(-3, 0.5))
		d := NewDisk(Pt(0, 0), 1)
		got, ok := rect.ClipDisk(d)
		if !ok {
			t.Fatal("overlap should be non-empty")
		}
		if got.Len() != 4 {
			t.Fatalf("vertex count = %d, want 4", got.Len())
		}
		// Disk area between y = ±0.5: 2(y√(1-y²) + asin y) at y = 0.5.
		want := 2 * (0.5*math32.Sqrt(0.75) + math32.Asin(0.5))
		approxf(t, got.Area(), want, 1e-3, "band area")
	})

	t.Run("polygon inside disk", func(t *testing.T) {
		sq := PolygonOf(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
		d := NewDisk(Pt(0.5, 0.5), 5)
		got, ok := sq.ClipDisk(d)
		if !ok {
			t.Fatal("overlap should be non-empty")
		}
		approxf(t, got.Area(), 1, 1e-3, "polygon survives untouched")
	})

	t.Run("disk inside polygon", func(t *testing.T) {
		sq := PolygonOf(Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-5, 5))
		d := NewDisk(Pt(0, 0), 1)
		got, ok := sq.ClipDisk(d)
		if !ok {
			t.Fatal("overlap should be non-empty")
		}
		if got.Len() != 2 {
			t.Fatalf("vertex count = %d, want the two-arc disk", got.Len())
		}
		approxf(t, got.Area(), math32.Pi, 1e-3, "whole disk survives")
		approxPt(t, got.Centroid(), Pt(0, 0), 1e-3, "disk centroid")
	})

	t.Run("disjoint", func(t *testing.T) {
		sq := PolygonOf(Pt(10, 10), Pt(11, 10), Pt(11, 11), Pt(10, 11))
		d := NewDisk(Pt(0, 0), 1)
		if _, ok := sq.ClipDisk(d); ok {
			t.Error("disjoint shapes should not overlap")
		}
	})
}

func TestDisk_IntersectPolygon(t *testing.T) {
	d := NewDisk(Pt(0, 0), 1)
	got, ok := d.IntersectPolygon(Ring{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)})
	if !ok {
		t.Fatal("overlap should be non-empty")
	}
	approxf(t, got.Area(), math32.Pi/4, 1e-3, "quarter-disk area")
}

func TestPolygon_AppendClipDisk_Reuse(t *testing.T) {
	sq := PolygonOf(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	d := NewDisk(Pt(0, 0), 1)

	buf := make(ArcRing, 0, 8)
	out, ok := sq.AppendClipDisk(buf, d)
	if !ok {
		t.Fatal("overlap should be non-empty")
	}
	if len(out) != 3 {
		t.Fatalf("clipped vertex count = %d, want 3", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("clip should reuse the caller's backing array")
	}
}
