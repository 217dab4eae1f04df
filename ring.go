package medal

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by Ring.Validate.
var (
	ErrTooFewVertices = errors.New("medal: ring needs at least 3 distinct vertices")
	ErrNonFinite      = errors.New("medal: ring has a non-finite coordinate")
	ErrZeroArea       = errors.New("medal: ring encloses no area")
)

// SelfIntersectionError reports two non-adjacent ring edges that touch or
// cross. Edge i runs from vertex i to vertex i+1 (wrapping).
type SelfIntersectionError struct {
	EdgeA, EdgeB int
	At           Point
}

func (e *SelfIntersectionError) Error() string {
	return fmt.Sprintf("medal: ring self-intersects: edges %d and %d meet near (%.3f, %.3f)",
		e.EdgeA, e.EdgeB, e.At.X, e.At.Y)
}

// Ring is a closed polygon boundary. The closing edge from the last vertex
// back to the first is implicit; a trailing copy of the first vertex is
// tolerated and ignored.
type Ring []Point

// Len returns the number of vertices, not counting a repeated closing point.
func (r Ring) Len() int {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	return n
}

// vertices returns the ring without a repeated closing point.
func (r Ring) vertices() []Point {
	return r[:r.Len()]
}

// Clone returns a deep copy of r.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Closed returns the vertices with the first point appended at the end,
// the form SVG polygons and most plotters expect.
func (r Ring) Closed() []Point {
	v := r.vertices()
	if len(v) == 0 {
		return nil
	}
	out := make([]Point, 0, len(v)+1)
	out = append(out, v...)
	return append(out, v[0])
}

// BoundingBox returns the axis-aligned bounds of the ring.
func (r Ring) BoundingBox() Rect {
	return boundsOf(r.vertices())
}

// SignedArea returns the shoelace area; positive for counter-clockwise
// rings.
func (r Ring) SignedArea() float64 {
	v := r.vertices()
	if len(v) < 3 {
		return 0
	}
	var sum float64
	for i, p := range v {
		q := v[(i+1)%len(v)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Area returns the enclosed area in mm².
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Winding returns the winding number of the ring around pt.
func (r Ring) Winding(pt Point) int {
	v := r.vertices()
	winding := 0
	for i, p0 := range v {
		p1 := v[(i+1)%len(v)]
		if p0.Y <= pt.Y {
			if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
				winding++
			}
		} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
			winding--
		}
	}
	return winding
}

// isLeft is positive when pt lies left of the directed line p0->p1,
// negative when right, zero when collinear.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Contains reports whether pt lies strictly inside the ring using the
// non-zero winding rule.
func (r Ring) Contains(pt Point) bool {
	if r.Len() < 3 {
		return false
	}
	return r.Winding(pt) != 0
}

// ContainsDisk reports whether the closed disk of the given radius around
// center lies entirely inside the ring.
func (r Ring) ContainsDisk(center Point, radius float64) bool {
	if !r.Contains(center) {
		return false
	}
	return r.DistanceToBoundary(center) >= radius
}

// DistanceToBoundary returns the shortest distance from pt to any edge of
// the ring, regardless of whether pt is inside.
func (r Ring) DistanceToBoundary(pt Point) float64 {
	v := r.vertices()
	if len(v) == 0 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i, a := range v {
		b := v[(i+1)%len(v)]
		if d := SegmentDistance(pt, a, b); d < best {
			best = d
		}
	}
	return best
}

// SegmentDistance returns the distance from p to the segment a-b.
func SegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

// Validate checks that the ring is a well-formed simple polygon: finite
// coordinates, at least three distinct vertices, non-zero area and no two
// non-adjacent edges touching.
func (r Ring) Validate() error {
	v := r.vertices()
	for _, p := range v {
		if !p.IsFinite() {
			return ErrNonFinite
		}
	}
	if countDistinct(v) < 3 {
		return ErrTooFewVertices
	}
	n := len(v)
	for i := 0; i < n; i++ {
		a0, a1 := v[i], v[(i+1)%n]
		if a0 == a1 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b0, b1 := v[j], v[(j+1)%n]
			if b0 == b1 {
				continue
			}
			if segmentsTouch(a0, a1, b0, b1) {
				return &SelfIntersectionError{EdgeA: i, EdgeB: j, At: a0.Lerp(a1, 0.5)}
			}
		}
	}
	if r.Area() == 0 {
		return ErrZeroArea
	}
	return nil
}

// IsSimple reports whether Validate succeeds.
func (r Ring) IsSimple() bool {
	return r.Validate() == nil
}

func countDistinct(pts []Point) int {
	seen := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// segmentsTouch reports whether segments p1-p2 and q1-q2 share any point.
func segmentsTouch(p1, p2, q1, q2 Point) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

func orientation(a, b, c Point) float64 {
	v := isLeft(a, b, c)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment assumes p is collinear with a-b.
func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// Transform returns a new ring with m applied to every vertex.
func (r Ring) Transform(m Matrix) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Rotate returns the ring rotated counter-clockwise by deg degrees about
// the origin.
func (r Ring) Rotate(deg float64) Ring {
	return r.Transform(RotateDeg(deg))
}

// Translate returns the ring moved by (dx, dy).
func (r Ring) Translate(dx, dy float64) Ring {
	return r.Transform(Translate(dx, dy))
}
