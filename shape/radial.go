package shape

import (
	"math"

	"github.com/gogpu/medal"
)

// circleSegments approximates a disk; 64 segments per quarter turn keeps
// the chord error under 0.01 mm at 120 mm.
const circleSegments = 256

func circle(p Params) medal.Ring {
	return regularPolygon(circleSegments, p.Width/2, 0)
}

func hexagon(p Params) medal.Ring {
	offset := 0.0
	if p.PointyTop {
		offset = math.Pi / 6
	}
	return fitWidth(regularPolygon(6, p.Width/2, offset), p.Width)
}

func octagon(p Params) medal.Ring {
	return fitWidth(regularPolygon(8, p.Width/2, math.Pi/8), p.Width)
}

// regularPolygon places n vertices evenly on a circle of radius r, the
// first at angle offset radians.
func regularPolygon(n int, r, offset float64) medal.Ring {
	ring := make(medal.Ring, n)
	for i := range ring {
		ring[i] = medal.Polar(r, offset+2*math.Pi*float64(i)/float64(n))
	}
	return ring
}

// star alternates outer and inner radius vertices, 2*Points in total,
// starting with a tip straight up.
func star(p Params) medal.Ring {
	n := p.Points
	if n < 2 {
		n = DefaultStarPoints
	}
	outer := p.Width / 2
	inner := outer * p.InnerRatio
	ring := make(medal.Ring, 2*n)
	for i := range ring {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		ring[i] = medal.Polar(r, math.Pi/2+math.Pi*float64(i)/float64(n))
	}
	return fitWidth(ring, p.Width)
}

// Angular breakpoints of one gear tooth as fractions of the tooth pitch:
// inner base, end of inner flat, top of rise, end of tooth face, bottom of
// fall. The spans are 20/5/50/5/20 percent.
var toothBreaks = [5]struct {
	at    float64
	outer bool
}{
	{0, false},
	{0.20, false},
	{0.25, true},
	{0.75, true},
	{0.80, false},
}

func gear(p Params) medal.Ring {
	teeth := p.Teeth
	if teeth < 3 {
		teeth = DefaultGearTeeth
	}
	outer := p.Width / 2
	inner := outer - p.ToothDepth
	if inner <= 0 {
		inner = outer / 2
	}
	pitch := 2 * math.Pi / float64(teeth)

	ring := make(medal.Ring, 0, 5*teeth)
	for i := 0; i < teeth; i++ {
		base := float64(i)*pitch - math.Pi/2
		for _, b := range toothBreaks {
			r := inner
			if b.outer {
				r = outer
			}
			ring = append(ring, medal.Polar(r, base+pitch*b.at))
		}
	}
	return fitWidth(ring, p.Width)
}

// fitWidth scales ring uniformly about the origin so its larger bounding
// dimension equals width.
func fitWidth(ring medal.Ring, width float64) medal.Ring {
	d := ring.BoundingBox().MaxDim()
	if d == 0 || d == width {
		return ring
	}
	s := width / d
	return ring.Transform(medal.Scale(s, s))
}
