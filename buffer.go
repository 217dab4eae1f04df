package medal

import (
	"math"

	"github.com/gogpu/medal/internal/sdf"
)

// Sampling limits for BufferInward. The pitch never exceeds maxBufferStep
// and the long side of the outline spans at least bufferCells cells. When
// the level set sits close to the deepest point of the ring the grid is
// refined down to minBufferStep, as long as samples times edges stays
// under maxBufferWork.
const (
	maxBufferStep = 0.5
	bufferCells   = 256
	minBufferStep = 0.002
	maxBufferWork = 1 << 26
	refineCells   = 4
)

// Region is a set of disjoint rings. Eroding a simple polygon can split it
// into islands but never opens a hole, so a Region carries outer
// boundaries only.
type Region []Ring

// IsEmpty reports whether the region holds no area.
func (g Region) IsEmpty() bool {
	return len(g) == 0
}

// Area returns the summed area of all rings.
func (g Region) Area() float64 {
	var total float64
	for _, r := range g {
		total += r.Area()
	}
	return total
}

// BoundingBox returns the bounds of every ring together.
func (g Region) BoundingBox() Rect {
	if len(g) == 0 {
		return Rect{}
	}
	b := g[0].BoundingBox()
	for _, r := range g[1:] {
		b = b.Union(r.BoundingBox())
	}
	return b
}

// BufferInward erodes ring by distance d: the result holds every point of
// the ring that lies farther than d from its boundary. An empty Region
// means the shape collapses entirely, which is how thin and fragile parts
// are detected. d <= 0 returns a copy of the ring.
//
// The erosion is computed by sampling the signed distance field of the
// ring on a grid and tracing the level set at d with marching squares, so
// results are accurate to roughly the grid pitch (at most 0.5 mm). Walls
// only slightly thicker than 2d are resampled on a finer grid until the
// eroded band spans several cells.
func BufferInward(ring Ring, d float64) Region {
	if ring.Len() < 3 {
		return nil
	}
	if d <= 0 {
		return Region{ring.Clone()}
	}
	bounds := ring.BoundingBox()
	if d*2 > math.Min(bounds.Width(), bounds.Height()) {
		return nil
	}

	step := math.Min(maxBufferStep, bounds.MaxDim()/bufferCells)
	poly := make([]sdf.Point, ring.Len())
	for i, p := range ring.vertices() {
		poly[i] = sdf.Point{X: p.X, Y: p.Y}
	}

	field := sdf.Sample(poly, step)
	for {
		margin := field.Max() - d
		if margin >= refineCells*step {
			break
		}
		// The distance field is 1-Lipschitz: nothing lies deeper than the
		// best sample plus half a cell diagonal.
		if margin+step*math.Sqrt2/2 <= 0 {
			return nil
		}
		next := step / 2
		if next < minBufferStep || gridSamples(bounds, next)*float64(len(poly)) > maxBufferWork {
			break
		}
		step = next
		field = sdf.Sample(poly, step)
	}
	if field.Max() <= d {
		return nil
	}

	loops := field.Contour(d)
	out := make(Region, 0, len(loops))
	for _, loop := range loops {
		if sdf.Area(loop) <= 0 {
			continue
		}
		r := make(Ring, len(loop))
		for i, p := range loop {
			r[i] = Point{X: p.X, Y: p.Y}
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	Logger().Debug("buffer inward",
		"distance", d, "step", step, "rings", len(out), "area", out.Area())
	return out
}

// gridSamples is the number of samples sdf.Sample takes over bounds.
func gridSamples(bounds Rect, step float64) float64 {
	return (math.Ceil(bounds.Width()/step) + 5) * (math.Ceil(bounds.Height()/step) + 5)
}
