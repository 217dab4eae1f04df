package motif

import "github.com/gogpu/medal"

// laneSpacing is the distance between running track lanes.
const laneSpacing = 4.0

// runningTrack draws Detail horizontal lanes centered on y=0.
func runningTrack(p Params) []medal.Polyline {
	n := p.Detail
	lines := make([]medal.Polyline, n)
	for i := range lines {
		y := (float64(i) - float64(n)/2 + 0.5) * laneSpacing
		lines[i] = medal.Polyline{medal.Pt(-p.Width/2, y), medal.Pt(p.Width/2, y)}
	}
	return lines
}

// finishLine draws a checkerboard of closed squares, 2*Detail columns
// wide and as many whole rows as fit the height. Only squares where row
// and column have the same parity are emitted.
func finishLine(p Params) []medal.Polyline {
	cols := 2 * p.Detail
	size := p.Width / float64(cols)
	rows := int(p.Height / size)

	var lines []medal.Polyline
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			x := -p.Width/2 + float64(col)*size
			y := -p.Height/2 + float64(row)*size
			lines = append(lines, medal.Polyline{
				medal.Pt(x, y),
				medal.Pt(x+size, y),
				medal.Pt(x+size, y+size),
				medal.Pt(x, y+size),
				medal.Pt(x, y),
			})
		}
	}
	return lines
}
