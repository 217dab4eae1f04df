package motif

import (
	"errors"
	"math"

	"github.com/skip2/go-qrcode"

	"github.com/gogpu/medal"
)

// ErrEmptyContent is returned by the QR code motif when there is nothing
// to encode.
var ErrEmptyContent = errors.New("motif: qr code content is empty")

// qrLevel is the error correction used for engraved codes. Medium
// survives the small defects of wood grain without growing the symbol
// much.
const qrLevel = qrcode.Medium

// qrCode engraves the dark modules of a QR symbol as horizontal strokes.
// The symbol is square, min(Width, Height) on a side, without a quiet
// zone. Each module row is covered by Detail passes, and passes alternate
// direction so the laser head travels back and forth across the code.
// Runs are shortened by half a pass at each end so round caps stay within
// the module edges, and never by more than a quarter module so a single
// dark module still gets a stroke.
func qrCode(p Params) ([]medal.Polyline, error) {
	if p.Content == "" {
		return nil, ErrEmptyContent
	}
	qr, err := qrcode.New(p.Content, qrLevel)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true
	bitmap := qr.Bitmap()
	dim := len(bitmap)
	if dim == 0 {
		return nil, ErrEmptyContent
	}

	side := math.Min(p.Width, p.Height)
	module := side / float64(dim)
	passes := p.Detail
	pitch := module / float64(passes)
	inset := math.Min(pitch, module/2) / 2
	left, top := -side/2, side/2

	var lines []medal.Polyline
	for y, row := range bitmap {
		for i := 0; i < passes; i++ {
			line := y*passes + i
			py := top - (float64(line)+0.5)*pitch
			runs := darkRuns(row)
			if line%2 != 0 {
				for a, b := 0, len(runs)-1; a < b; a, b = a+1, b-1 {
					runs[a], runs[b] = runs[b], runs[a]
				}
			}
			for _, r := range runs {
				x0 := left + float64(r[0])*module + inset
				x1 := left + float64(r[1])*module - inset
				if line%2 != 0 {
					x0, x1 = x1, x0
				}
				lines = append(lines, medal.Polyline{medal.Pt(x0, py), medal.Pt(x1, py)})
			}
		}
	}
	return lines, nil
}

// darkRuns returns the [start, end) module ranges of consecutive dark
// modules in row, left to right.
func darkRuns(row []bool) [][2]int {
	var runs [][2]int
	start := -1
	for x, on := range row {
		switch {
		case on && start < 0:
			start = x
		case !on && start >= 0:
			runs = append(runs, [2]int{start, x})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(row)})
	}
	return runs
}
