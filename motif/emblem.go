package motif

import (
	"math"

	"github.com/gogpu/medal"
)

// Laurel proportions in millimeters.
const (
	laurelInset       = 5.0
	laurelStemPoints  = 20
	laurelLeafPoints  = 10
	laurelLeafLength  = 8.0
	laurelLeafWidth   = 3.0
	laurelStemNarrows = 0.3
)

// laurel draws two mirrored stems rising from the bottom, each carrying
// 2*Detail leaves. Stems lean inward toward the top, and leaves shrink
// in length and curvature the farther they sit from the base.
func laurel(p Params) []medal.Polyline {
	leaves := 2 * p.Detail
	reach := p.Width/2 - laurelInset

	stemX := func(side, t float64) float64 {
		return side * reach * (1 - t*laurelStemNarrows)
	}
	stemY := func(t float64) float64 {
		return -p.Height/2 + p.Height*t
	}

	lines := make([]medal.Polyline, 0, 2*(leaves+1))
	for _, side := range [2]float64{-1, 1} {
		stem := make(medal.Polyline, laurelStemPoints)
		for i := range stem {
			t := float64(i) / (laurelStemPoints - 1)
			stem[i] = medal.Pt(stemX(side, t), stemY(t))
		}
		lines = append(lines, stem)

		for i := 0; i < leaves; i++ {
			t := float64(i+1) / float64(leaves+1)
			bx, by := stemX(side, t), stemY(t)
			leaf := make(medal.Polyline, laurelLeafPoints)
			for j := range leaf {
				lt := float64(j) / (laurelLeafPoints - 1)
				leaf[j] = medal.Pt(
					bx+side*laurelLeafLength*lt*(1-t*0.5),
					by+laurelLeafWidth*math.Sin(lt*math.Pi)*(1-t*0.3))
			}
			lines = append(lines, leaf)
		}
	}
	return lines
}

// rays draws 4*Detail radial strokes from half the outer radius to the
// outer radius, Width/2. The first ray points straight down.
func rays(p Params) []medal.Polyline {
	n := 4 * p.Detail
	outer := p.Width / 2
	inner := outer / 2

	lines := make([]medal.Polyline, n)
	for i := range lines {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		lines[i] = medal.Polyline{medal.Polar(inner, a), medal.Polar(outer, a)}
	}
	return lines
}

// chevrons stacks Detail V strokes evenly down the motif height, tips
// pointing down.
func chevrons(p Params) []medal.Polyline {
	n := p.Detail
	spacing := p.Height / float64(n+1)
	rise := spacing * 0.3

	lines := make([]medal.Polyline, n)
	for i := range lines {
		y := p.Height/2 - float64(i+1)*spacing
		lines[i] = medal.Polyline{
			medal.Pt(-p.Width/2, y+rise),
			medal.Pt(0, y),
			medal.Pt(p.Width/2, y+rise),
		}
	}
	return lines
}
