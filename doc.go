// Package medal provides the geometry used to design laser-cut medal blanks.
//
// # Overview
//
// A medal design is built in one direction: parameters feed the shape
// generator (package shape) and the motif generator (package motif), the
// composer (package compose) places ribbon hole, motifs and text, and the
// validator (package constraints) checks the result against the limits of
// the cutting machine. Renderers (package export) only read the finished
// design.
//
// This package holds the primitives everything else shares:
//   - Point, Matrix and Rect
//   - Ring, a closed simple polygon with area, containment, boundary
//     distance and self-intersection checks
//   - Polyline, an open stroke used for engraved line art
//   - BufferInward, which erodes a ring to expose regions too thin to
//     survive cutting
//
// # Quick Start
//
//	ring, err := shape.Generate(shape.Circle, shape.Params{Width: 70})
//	if err != nil {
//		log.Fatal(err)
//	}
//	eroded := medal.BufferInward(ring, 1.0)
//	fmt.Printf("%.0f mm² of %.0f mm² survives\n", eroded.Area(), ring.Area())
//
// # Coordinate System
//
//   - Units are millimeters
//   - Origin at the medal center
//   - X increases right, Y increases up
//   - Angles in degrees at the API surface, counter-clockwise
//
// Every operation is a pure function of its inputs. Nothing is cached or
// shared, so designs can be composed concurrently.
package medal

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
