package medal

// Polyline is an open sequence of points. Consecutive points are joined by
// straight segments; the last point is not joined back to the first.
type Polyline []Point

// Clone returns a deep copy of l.
func (l Polyline) Clone() Polyline {
	if l == nil {
		return nil
	}
	out := make(Polyline, len(l))
	copy(out, l)
	return out
}

// Transform returns a new polyline with m applied to every point.
func (l Polyline) Transform(m Matrix) Polyline {
	out := make(Polyline, len(l))
	for i, p := range l {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Translate returns the polyline moved by (dx, dy).
func (l Polyline) Translate(dx, dy float64) Polyline {
	out := make(Polyline, len(l))
	for i, p := range l {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// BoundingBox returns the axis-aligned bounds of the points.
func (l Polyline) BoundingBox() Rect {
	return boundsOf(l)
}

// Length returns the summed length of all segments.
func (l Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(l); i++ {
		total += l[i-1].Distance(l[i])
	}
	return total
}

// TranslateAll moves every polyline in lines by (dx, dy) and returns the
// moved copies. A zero offset still copies so callers never share storage.
func TranslateAll(lines []Polyline, dx, dy float64) []Polyline {
	if lines == nil {
		return nil
	}
	out := make([]Polyline, len(lines))
	for i, l := range lines {
		out[i] = l.Translate(dx, dy)
	}
	return out
}
