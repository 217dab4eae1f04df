package shape

import (
	"math"

	"github.com/gogpu/medal"
)

// arcSegmentsPerQuarter sets the resolution of rounded corners.
const arcSegmentsPerQuarter = 16

// roundedRectangle insets the rectangle by the corner radius and grows it
// back out with round joins, so each corner is a true arc of that radius
// centered on the matching corner of the inset rectangle.
func roundedRectangle(p Params) medal.Ring {
	r := math.Min(p.CornerRadius, math.Min(p.Width, p.Height)/2)
	if r < 0 {
		r = 0
	}
	ix, iy := p.Width/2-r, p.Height/2-r
	if r == 0 {
		return medal.Ring{
			medal.Pt(ix, -iy), medal.Pt(ix, iy), medal.Pt(-ix, iy), medal.Pt(-ix, -iy),
		}
	}

	inset := [4]medal.Point{
		medal.Pt(ix, iy),
		medal.Pt(-ix, iy),
		medal.Pt(-ix, -iy),
		medal.Pt(ix, -iy),
	}
	ring := make(medal.Ring, 0, 4*(arcSegmentsPerQuarter+1))
	for corner, c := range inset {
		start := float64(corner) * math.Pi / 2
		ring = appendArc(ring, c, r, start, start+math.Pi/2, arcSegmentsPerQuarter)
	}
	return dedupe(ring)
}

// appendArc appends the points of a counter-clockwise arc around center,
// both endpoints included. Quadrant angles are snapped so axis-aligned
// extremes land exactly on the requested size.
func appendArc(dst medal.Ring, center medal.Point, r, from, to float64, segments int) medal.Ring {
	for k := 0; k <= segments; k++ {
		a := from + (to-from)*float64(k)/float64(segments)
		dst = append(dst, center.Add(snappedPolar(r, a)))
	}
	return dst
}

func snappedPolar(r, a float64) medal.Point {
	q := a / (math.Pi / 2)
	if n := math.Round(q); math.Abs(q-n) < 1e-9 {
		switch int(n) % 4 {
		case 0:
			return medal.Pt(r, 0)
		case 1:
			return medal.Pt(0, r)
		case 2:
			return medal.Pt(-r, 0)
		case 3:
			return medal.Pt(0, -r)
		}
	}
	return medal.Polar(r, a)
}

// dedupe drops consecutive duplicate vertices, including a last vertex
// equal to the first. Fully rounded ends produce such duplicates.
func dedupe(ring medal.Ring) medal.Ring {
	out := ring[:0:0]
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
