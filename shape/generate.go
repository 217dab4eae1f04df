// Package shape generates medal outlines.
//
// Every generator returns a simple, counter-clockwise, implicitly closed
// medal.Ring centered on the origin. Rotation from Params is applied last, about the origin.
package shape

import (
	"fmt"

	"github.com/gogpu/medal"
)

// generator builds the unrotated outline of one variant.
type generator func(p Params) medal.Ring

// generators is the dispatch table, indexed by Variant. Every declared
// variant must have an entry.
var generators = [variantCount]generator{
	Circle:           circle,
	Hexagon:          hexagon,
	Octagon:          octagon,
	Star:             star,
	Shield:           shield,
	Drop:             drop,
	Rectangle:        roundedRectangle,
	RoundedRectangle: roundedRectangle,
	Gear:             gear,
	Leaf:             leaf,
}

// Generate builds the outline for variant v. Zero fields of p take their
// defaults. The only error is ErrUnknownVariant; non-positive sizes are
// the caller's responsibility.
func Generate(v Variant, p Params) (medal.Ring, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	p = p.withDefaults(v)
	ring := generators[v](p)
	if p.Rotation != 0 {
		ring = ring.Rotate(p.Rotation)
	}
	medal.Logger().Debug("shape generated",
		"variant", v.String(), "vertices", len(ring), "area", ring.Area())
	return ring, nil
}

// MustGenerate is like Generate but panics on error. It suits tests and
// package-level presets where the variant is a constant.
func MustGenerate(v Variant, p Params) medal.Ring {
	ring, err := Generate(v, p)
	if err != nil {
		panic(err)
	}
	return ring
}

// RibbonHolePosition returns the default ribbon hole center for an
// outline: horizontally centered, margin millimeters below the top edge.
func RibbonHolePosition(ring medal.Ring, margin float64) medal.Point {
	b := ring.BoundingBox()
	return medal.Pt((b.Min.X+b.Max.X)/2, b.Max.Y-margin)
}
