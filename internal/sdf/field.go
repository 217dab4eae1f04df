// Package sdf samples signed distance fields of simple polygons and traces
// their level sets. The root medal package uses it to erode outlines.
package sdf

import "math"

// Point is a 2D coordinate. It mirrors medal.Point so this package stays
// free of import cycles.
type Point struct {
	X, Y float64
}

// Field is a regular grid of signed distances. Positive values lie inside
// the sampled polygon, negative values outside. Sample (i, j) sits at
// Origin + (i*Step, j*Step).
type Field struct {
	Origin     Point
	Step       float64
	Cols, Rows int
	Values     []float64
}

// Sample evaluates the signed distance to poly on a grid with the given
// pitch. The grid is padded by two cells beyond the polygon bounds so every
// border sample lies outside.
func Sample(poly []Point, step float64) *Field {
	if len(poly) < 3 || step <= 0 {
		return &Field{Step: step}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	const pad = 2
	f := &Field{
		Origin: Point{X: minX - pad*step, Y: minY - pad*step},
		Step:   step,
		Cols:   int(math.Ceil((maxX-minX)/step)) + 2*pad + 1,
		Rows:   int(math.Ceil((maxY-minY)/step)) + 2*pad + 1,
	}
	f.Values = make([]float64, f.Cols*f.Rows)

	for j := 0; j < f.Rows; j++ {
		y := f.Origin.Y + float64(j)*step
		for i := 0; i < f.Cols; i++ {
			p := Point{X: f.Origin.X + float64(i)*step, Y: y}
			d := distance(poly, p)
			if !inside(poly, p) {
				d = -d
			}
			f.Values[j*f.Cols+i] = d
		}
	}
	return f
}

// At returns sample (i, j).
func (f *Field) At(i, j int) float64 {
	return f.Values[j*f.Cols+i]
}

// Pos returns the position of sample (i, j).
func (f *Field) Pos(i, j int) Point {
	return Point{X: f.Origin.X + float64(i)*f.Step, Y: f.Origin.Y + float64(j)*f.Step}
}

// Max returns the largest sample, or -Inf for an empty field.
func (f *Field) Max() float64 {
	best := math.Inf(-1)
	for _, v := range f.Values {
		if v > best {
			best = v
		}
	}
	return best
}

// inside is an even-odd crossing test.
func inside(poly []Point, p Point) bool {
	in := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

// distance returns the unsigned distance from p to the polygon boundary.
func distance(poly []Point, p Point) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		lenSq := dx*dx + dy*dy
		t := 0.0
		if lenSq > 0 {
			t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
			t = math.Max(0, math.Min(1, t))
		}
		ex, ey := a.X+t*dx-p.X, a.Y+t*dy-p.Y
		if d := ex*ex + ey*ey; d < best {
			best = d
		}
	}
	return math.Sqrt(best)
}
