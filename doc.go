// Package geom2 provides a computational-geometry kernel for 2D shapes.
//
// # Overview
//
// geom2 is a pure Go library of 2D shape primitives — lines, segments,
// circles, disks, arcs, half-planes, polygons and composite arc/disk
// shapes — together with pairwise intersection algorithms, winding-number
// point containment, and Green's-theorem moments (area and centroid).
// It is designed as a companion to the GoGPU ecosystem: shape math that
// stays useful whether the result is rendered, simulated, or never drawn
// at all.
//
// # Quick Start
//
//	import "github.com/gogpu/geom2"
//
//	square := geom2.PolygonOf(
//	    geom2.Pt(0, 0), geom2.Pt(1, 0), geom2.Pt(1, 1), geom2.Pt(0, 1),
//	)
//	square.Area()                       // 1
//	square.Contains(geom2.Pt(0.5, 0.5)) // true
//
//	disk := geom2.NewDisk(geom2.Pt(0, 0), 1)
//	plane := geom2.HalfPlaneFromEdge(geom2.Pt(0, 0), geom2.Pt(1, 0))
//	seg, whole, ok := disk.IntersectHalfPlane(plane)
//
// # Numerical Model
//
// Coordinates are float32. All comparisons route through a single
// process-wide tolerance [EPS]; values within EPS are treated as zero so
// that every algorithm agrees on what "parallel", "tangent" and
// "degenerate" mean. Results within an EPS-neighbourhood of a boundary
// are deterministic but unspecified.
//
// # Containment
//
// Closed shapes classify points with the nonzero winding rule:
// a point is inside when its winding number is nonzero. This handles
// self-intersecting and clockwise polygons, unlike the even-odd rule.
//
// # Allocation
//
// Polygons are generic over their vertex storage and edges are
// synthesized lazily, so fixed-capacity, heap-free storage works
// everywhere the growable [Ring] does. Clipping has append-style
// variants that write into caller-supplied storage.
//
// # Coordinate System
//
// geom2 is orientation-agnostic, but its conventions assume the
// mathematical frame:
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//   - Counter-clockwise boundaries enclose positive area
package geom2

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
