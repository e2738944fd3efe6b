// Command geomdemo demonstrates the geom2 computational-geometry
// kernel by clipping a few shapes against each other and rasterizing
// the results to a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/geom2"
	"golang.org/x/image/vector"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "geomdemo.png", "output file")
	)
	flag.Parse()

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	fillBackground(dst, color.RGBA{R: 24, G: 28, B: 38, A: 255})

	drawPolygonClipDemo(dst)
	drawDiskClipDemo(dst)
	drawLensDemo(dst)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func fillBackground(dst *image.RGBA, c color.Color) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// drawPolygonClipDemo clips a square against a triangle and paints
// both inputs and their intersection.
func drawPolygonClipDemo(dst *image.RGBA) {
	square := geom2.PolygonOf(
		geom2.Pt(60, 60), geom2.Pt(260, 60),
		geom2.Pt(260, 260), geom2.Pt(60, 260),
	)
	triangle := geom2.PolygonOf(
		geom2.Pt(160, 160), geom2.Pt(360, 160), geom2.Pt(260, 360),
	)

	fillRing(dst, square.Vertices, color.RGBA{R: 220, G: 90, B: 90, A: 140})
	fillRing(dst, triangle.Vertices, color.RGBA{R: 90, G: 220, B: 90, A: 140})

	if clipped, ok := square.ClipPolygon(triangle.Vertices); ok {
		fillRing(dst, clipped.Vertices, color.RGBA{R: 250, G: 250, B: 120, A: 255})
	}
}

// drawDiskClipDemo clips a square against a disk, producing an arc
// polygon with mixed straight and curved edges.
func drawDiskClipDemo(dst *image.RGBA) {
	square := geom2.PolygonOf(
		geom2.Pt(440, 60), geom2.Pt(640, 60),
		geom2.Pt(640, 260), geom2.Pt(440, 260),
	)
	disk := geom2.NewDisk(geom2.Pt(640, 260), 130)

	fillRing(dst, square.Vertices, color.RGBA{R: 90, G: 130, B: 220, A: 140})
	fillArcRing(dst, disk.PolygonN(16).Vertices, color.RGBA{R: 220, G: 160, B: 90, A: 140})

	if clipped, ok := square.ClipDisk(disk); ok {
		fillArcRing(dst, clipped.Vertices, color.RGBA{R: 120, G: 250, B: 250, A: 255})
	}
}

// drawLensDemo intersects two disks into a lens.
func drawLensDemo(dst *image.RGBA) {
	a := geom2.NewDisk(geom2.Pt(240, 450), 110)
	b := geom2.NewDisk(geom2.Pt(390, 450), 90)

	fillArcRing(dst, a.PolygonN(16).Vertices, color.RGBA{R: 200, G: 110, B: 220, A: 140})
	fillArcRing(dst, b.PolygonN(16).Vertices, color.RGBA{R: 110, G: 220, B: 200, A: 140})

	if lens, _, isLens, ok := a.Intersect(b); ok && isLens {
		fillArcRing(dst, lens.Vertices, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}

// fillRing rasterizes a straight-edge polygon with x/image/vector.
func fillRing(dst *image.RGBA, ring geom2.Ring, c color.Color) {
	if len(ring) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		r.LineTo(p.X, p.Y)
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillArcRing rasterizes an arc polygon, flattening each curved edge
// into short line segments.
func fillArcRing(dst *image.RGBA, ring geom2.ArcRing, c color.Color) {
	if len(ring) < 2 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(ring[0].Point.X, ring[0].Point.Y)
	ap := geom2.NewArcPolygon(ring)
	for e := range ap.Edges() {
		flattenArc(r, e)
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// arcFlattenSegments is the number of chords substituted for each
// curved edge when rasterizing.
const arcFlattenSegments = 24

// flattenArc appends lines approximating the arc from its current
// start point (assumed to be the rasterizer's pen position) to its
// end point.
func flattenArc(r *vector.Rasterizer, e geom2.ChordArc) {
	if math32.Abs(e.Sagitta) < 1e-3 {
		r.LineTo(e.B.X, e.B.Y)
		return
	}
	ctr := e.CircleCenter()
	rad := e.Radius()

	// Bulge point: chord midpoint pushed towards the arc.
	n := e.B.Sub(e.A).Perp().Normalize().Neg()
	if e.Sagitta < 0 {
		n = n.Neg()
	}
	bulge := e.Chord().Midpoint().Add(n.Mul(math32.Abs(e.Sagitta)))

	a0 := e.A.Sub(ctr).Atan2()
	a1 := e.B.Sub(ctr).Atan2()
	ab := bulge.Sub(ctr).Atan2()

	ccw := func(from, to float32) float32 {
		d := math32.Mod(to-from, 2*math32.Pi)
		if d < 0 {
			d += 2 * math32.Pi
		}
		return d
	}
	sweep := ccw(a0, a1)
	if ccw(a0, ab) > sweep {
		// The bulge is not on the CCW path; go clockwise instead.
		sweep -= 2 * math32.Pi
	}

	for i := 1; i <= arcFlattenSegments; i++ {
		theta := a0 + sweep*float32(i)/arcFlattenSegments
		p := ctr.Add(geom2.FromAngle(theta).Mul(rad))
		r.LineTo(p.X, p.Y)
	}
}
