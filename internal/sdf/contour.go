package sdf

// edgeKey identifies a grid edge. A horizontal edge joins samples (i, j)
// and (i+1, j); a vertical edge joins (i, j) and (i, j+1).
type edgeKey struct {
	i, j     int
	vertical bool
}

// crossing is a level-set intersection on one side of a cell. Exit
// crossings leave the inside region when walking the cell counter-clockwise.
type crossing struct {
	key  edgeKey
	exit bool
}

// Contour traces the closed curves where the field equals level. Samples
// strictly greater than level count as inside. Every returned loop is
// counter-clockwise (inside on the left) and carries no repeated closing
// point. Loops are returned in scan order, so output is deterministic.
func (f *Field) Contour(level float64) [][]Point {
	if f.Cols < 2 || f.Rows < 2 {
		return nil
	}

	next := make(map[edgeKey]edgeKey)
	var starts []edgeKey

	in := func(i, j int) bool { return f.At(i, j) > level }

	for j := 0; j < f.Rows-1; j++ {
		for i := 0; i < f.Cols-1; i++ {
			// Corners counter-clockwise from bottom-left; side k runs from
			// corner k to corner k+1.
			corners := [4]bool{in(i, j), in(i+1, j), in(i+1, j+1), in(i, j+1)}
			if corners[0] == corners[1] && corners[1] == corners[2] && corners[2] == corners[3] {
				continue
			}
			sides := [4]edgeKey{
				{i: i, j: j},
				{i: i + 1, j: j, vertical: true},
				{i: i, j: j + 1},
				{i: i, j: j, vertical: true},
			}

			var xs []crossing
			for k := 0; k < 4; k++ {
				a, b := corners[k], corners[(k+1)%4]
				if a != b {
					xs = append(xs, crossing{key: sides[k], exit: a})
				}
			}

			// With four crossings the cell is a saddle. The averaged
			// center decides whether the two inside corners connect.
			joined := true
			if len(xs) == 4 {
				center := (f.At(i, j) + f.At(i+1, j) + f.At(i+1, j+1) + f.At(i, j+1)) / 4
				joined = center > level
			}

			for k, x := range xs {
				if !x.exit {
					continue
				}
				var to crossing
				if joined {
					to = xs[(k+1)%len(xs)]
				} else {
					to = xs[(k+len(xs)-1)%len(xs)]
				}
				next[x.key] = to.key
				starts = append(starts, x.key)
			}
		}
	}

	visited := make(map[edgeKey]bool, len(next))
	var loops [][]Point
	for _, start := range starts {
		if visited[start] {
			continue
		}
		var loop []Point
		key := start
		for !visited[key] {
			visited[key] = true
			p := f.interpolate(key, level)
			if len(loop) == 0 || loop[len(loop)-1] != p {
				loop = append(loop, p)
			}
			nk, ok := next[key]
			if !ok {
				break
			}
			key = nk
		}
		if len(loop) > 1 && loop[0] == loop[len(loop)-1] {
			loop = loop[:len(loop)-1]
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// interpolate places the level crossing along edge k. The position is
// computed from the lower sample towards the higher one so the two cells
// sharing the edge agree exactly.
func (f *Field) interpolate(k edgeKey, level float64) Point {
	i1, j1 := k.i+1, k.j
	if k.vertical {
		i1, j1 = k.i, k.j+1
	}
	a, b := f.At(k.i, k.j), f.At(i1, j1)
	t := 0.5
	if a != b {
		t = (level - a) / (b - a)
	}
	pa, pb := f.Pos(k.i, k.j), f.Pos(i1, j1)
	return Point{
		X: pa.X + (pb.X-pa.X)*t,
		Y: pa.Y + (pb.Y-pa.Y)*t,
	}
}

// Area returns the shoelace area of a loop; positive when
// counter-clockwise.
func Area(loop []Point) float64 {
	var sum float64
	n := len(loop)
	for i, p := range loop {
		q := loop[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
