package shape

import (
	"math"

	"github.com/gogpu/medal"
)

// Point counts of the sampled curves.
const (
	shieldCurvePoints = 16
	dropPoints        = 32
	leafPoints        = 24
)

// shield has a straight top edge and two mirrored sides that run straight
// down for the upper 35% of the height, then curve in to a bottom point.
func shield(p Params) medal.Ring {
	w, h := p.Width/2, p.Height/2
	shoulder := h - p.Height*0.35
	curve := p.Height * 0.65

	side := func(t float64) (x, y float64) {
		return w * (1 - t) * (1 - t*0.3), shoulder - curve*t
	}

	ring := make(medal.Ring, 0, 2*shieldCurvePoints+4)
	ring = append(ring, medal.Pt(w, h), medal.Pt(-w, h), medal.Pt(-w, shoulder))
	for i := 1; i < shieldCurvePoints; i++ {
		x, y := side(float64(i) / shieldCurvePoints)
		ring = append(ring, medal.Pt(-x, y))
	}
	ring = append(ring, medal.Pt(0, -h))
	for i := shieldCurvePoints - 1; i > 0; i-- {
		x, y := side(float64(i) / shieldCurvePoints)
		ring = append(ring, medal.Pt(x, y))
	}
	return append(ring, medal.Pt(w, shoulder))
}

// drop is a half disk at the bottom with straight sides rising one radius
// above its center, then tapering to a tip at the top along
// x = r * (1 - t^1.5), so the taper accelerates near the tip.
func drop(p Params) medal.Ring {
	r := p.Width / 2
	cy := -p.Height/2 + r
	tipY := p.Height / 2
	shoulder := math.Min(cy+r, tipY)
	half := dropPoints / 2
	quarter := dropPoints / 4

	taper := func(t float64) (x, y float64) {
		return r * (1 - math.Pow(t, 1.5)), shoulder + (tipY-shoulder)*t
	}

	ring := make(medal.Ring, 0, dropPoints)
	for i := 0; i <= half; i++ {
		a := math.Pi + math.Pi*float64(i)/float64(half)
		ring = append(ring, medal.Pt(r*math.Cos(a), cy+r*math.Sin(a)))
	}
	for i := 1; i < quarter; i++ {
		x, y := taper(float64(i) / float64(quarter))
		ring = append(ring, medal.Pt(x, y))
	}
	ring = append(ring, medal.Pt(0, tipY))
	for i := quarter - 1; i > 0; i-- {
		x, y := taper(float64(i) / float64(quarter))
		ring = append(ring, medal.Pt(-x, y))
	}
	return ring
}

// leaf runs tip to tip along the Y axis. Its half width follows
// sin(t*pi) narrowed by a linear taper (1 - 0.3t) toward the top.
func leaf(p Params) medal.Ring {
	w, h := p.Width/2, p.Height

	envelope := func(t float64) (x, y float64) {
		return w * math.Sin(t*math.Pi) * (1 - t*0.3), -h/2 + h*t
	}

	ring := make(medal.Ring, 0, 2*leafPoints)
	ring = append(ring, medal.Pt(0, -h/2))
	for i := 1; i < leafPoints; i++ {
		x, y := envelope(float64(i) / leafPoints)
		ring = append(ring, medal.Pt(x, y))
	}
	ring = append(ring, medal.Pt(0, h/2))
	for i := leafPoints - 1; i > 0; i-- {
		x, y := envelope(float64(i) / leafPoints)
		ring = append(ring, medal.Pt(-x, y))
	}
	return ring
}
