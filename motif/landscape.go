package motif

import (
	"math"

	"github.com/gogpu/medal"
)

// Height profiles for the default three-element landscapes. Other counts
// use full height throughout.
var (
	skylineHeights  = []float64{0.8, 1.0, 0.6}
	detailedHeights = []float64{0.7, 1.0, 0.5}
	treeHeights     = []float64{0.7, 1.0, 0.8}
)

func heightAt(profile []float64, n, i int) float64 {
	if n != len(profile) {
		return 1
	}
	return profile[i]
}

// mountains draws Detail peaks on a baseline at y=0. The simple style is
// one zig-zag skyline; the detailed style draws each mountain apart with
// a snow cap stroke under its summit.
func mountains(p Params) []medal.Polyline {
	n := p.Detail
	peakWidth := p.Width / float64(n)
	left := -p.Width / 2

	if !p.Detailed {
		line := make(medal.Polyline, 0, 2*n+1)
		line = append(line, medal.Pt(left, 0))
		for i := 0; i < n; i++ {
			base := left + float64(i)*peakWidth
			h := p.Height * heightAt(skylineHeights, n, i)
			line = append(line,
				medal.Pt(base+peakWidth/2, h),
				medal.Pt(base+peakWidth, 0))
		}
		return []medal.Polyline{line}
	}

	lines := make([]medal.Polyline, 0, 2*n)
	for i := 0; i < n; i++ {
		base := left + float64(i)*peakWidth
		peak := medal.Pt(base+peakWidth/2, p.Height*detailedHeights[i%len(detailedHeights)])
		snowY := peak.Y * 0.7
		snow := peakWidth * 0.25
		lines = append(lines,
			medal.Polyline{
				medal.Pt(base+peakWidth*0.1, 0),
				peak,
				medal.Pt(base+peakWidth*0.9, 0),
			},
			medal.Polyline{
				medal.Pt(peak.X-snow, snowY),
				peak,
				medal.Pt(peak.X+snow, snowY),
			})
	}
	return lines
}

// wavesPerCycle is the sample count of one sine period.
const wavesPerCycle = 10

// waves draws Rows rows of Detail sine periods each, the rows stacked
// downward 0.6*Height apart with amplitude Height/2.
func waves(p Params) []medal.Polyline {
	n := p.Detail
	waveWidth := p.Width / float64(n)
	spacing := p.Height * 0.6

	lines := make([]medal.Polyline, 0, p.Rows)
	for row := 0; row < p.Rows; row++ {
		base := -float64(row) * spacing
		line := make(medal.Polyline, 0, n*wavesPerCycle+1)
		for i := 0; i <= n*wavesPerCycle; i++ {
			t := float64(i) / wavesPerCycle
			line = append(line, medal.Pt(
				-p.Width/2+t*waveWidth,
				base+p.Height*0.5*math.Sin(2*math.Pi*t)))
		}
		lines = append(lines, line)
	}
	return lines
}

// trees draws Detail conifers standing on y=0. Each tree is a closed
// triangle followed by a separate trunk stroke below the baseline.
func trees(p Params) []medal.Polyline {
	n := p.Detail
	spacing := p.Width / float64(n)
	treeWidth := spacing * 0.6
	trunkWidth := treeWidth * 0.15
	trunkDepth := -p.Height * 0.1

	lines := make([]medal.Polyline, 0, 2*n)
	for i := 0; i < n; i++ {
		cx := -p.Width/2 + spacing*(float64(i)+0.5)
		h := p.Height * heightAt(treeHeights, n, i)
		lines = append(lines,
			medal.Polyline{
				medal.Pt(cx-treeWidth/2, 0),
				medal.Pt(cx, h),
				medal.Pt(cx+treeWidth/2, 0),
				medal.Pt(cx-treeWidth/2, 0),
			},
			medal.Polyline{
				medal.Pt(cx-trunkWidth, 0),
				medal.Pt(cx-trunkWidth, trunkDepth),
				medal.Pt(cx+trunkWidth, trunkDepth),
				medal.Pt(cx+trunkWidth, 0),
			})
	}
	return lines
}
