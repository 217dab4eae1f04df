package sdf

import (
	"math"
	"testing"
)

func square(side float64) []Point {
	h := side / 2
	return []Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
}

func TestSampleSigns(t *testing.T) {
	f := Sample(square(10), 0.5)
	if f.Cols < 2 || f.Rows < 2 {
		t.Fatalf("field is %dx%d", f.Cols, f.Rows)
	}
	// Padding keeps every border sample outside.
	for i := 0; i < f.Cols; i++ {
		if f.At(i, 0) >= 0 || f.At(i, f.Rows-1) >= 0 {
			t.Fatalf("border sample in column %d is not outside", i)
		}
	}
	if got := f.Max(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Max() = %v, want 5", got)
	}
}

func TestSampleEmpty(t *testing.T) {
	f := Sample([]Point{{0, 0}, {1, 1}}, 0.5)
	if len(f.Values) != 0 {
		t.Errorf("Sample(2 points) has %d values, want 0", len(f.Values))
	}
	if !math.IsInf(f.Max(), -1) {
		t.Errorf("Max() of empty field = %v, want -Inf", f.Max())
	}
	if loops := f.Contour(0); loops != nil {
		t.Errorf("Contour() of empty field = %v, want nil", loops)
	}
}

func TestContourSquare(t *testing.T) {
	f := Sample(square(20), 0.25)
	tests := []struct {
		level float64
		want  float64
	}{
		{1, 18 * 18},
		{4, 12 * 12},
		{9, 2 * 2},
	}
	for _, tt := range tests {
		loops := f.Contour(tt.level)
		if len(loops) != 1 {
			t.Fatalf("Contour(%v) = %d loops, want 1", tt.level, len(loops))
		}
		got := Area(loops[0])
		if got <= 0 {
			t.Errorf("Contour(%v) loop is clockwise", tt.level)
		}
		// Marching squares cuts each corner by a fraction of a cell, so
		// small loops get an absolute allowance of a few cells.
		tol := math.Max(0.01*tt.want, 4*f.Step*f.Step)
		if math.Abs(got-tt.want) > tol {
			t.Errorf("Contour(%v) area = %v, want about %v", tt.level, got, tt.want)
		}
	}
}

func TestContourAboveMax(t *testing.T) {
	f := Sample(square(10), 0.5)
	if loops := f.Contour(6); len(loops) != 0 {
		t.Errorf("Contour(6) = %d loops, want 0", len(loops))
	}
}

func TestContourSaddleJoinsThroughCenter(t *testing.T) {
	// Inside corners at (0,0) and (1,1) with a high center value.
	f := &Field{Step: 1, Cols: 2, Rows: 2, Values: []float64{3, -1, -1, 3}}
	f = pad(f)
	loops := f.Contour(0)
	if len(loops) != 1 {
		t.Errorf("joined saddle = %d loops, want 1", len(loops))
	}

	f = &Field{Step: 1, Cols: 2, Rows: 2, Values: []float64{1, -3, -3, 1}}
	f = pad(f)
	loops = f.Contour(0)
	if len(loops) != 2 {
		t.Errorf("split saddle = %d loops, want 2", len(loops))
	}
}

// pad surrounds f with a ring of strongly negative samples so every
// contour closes.
func pad(f *Field) *Field {
	out := &Field{Step: f.Step, Cols: f.Cols + 2, Rows: f.Rows + 2}
	out.Values = make([]float64, out.Cols*out.Rows)
	for k := range out.Values {
		out.Values[k] = -10
	}
	for j := 0; j < f.Rows; j++ {
		for i := 0; i < f.Cols; i++ {
			out.Values[(j+1)*out.Cols+i+1] = f.At(i, j)
		}
	}
	return out
}

func TestArea(t *testing.T) {
	ccw := square(2)
	if got := Area(ccw); got != 4 {
		t.Errorf("Area(ccw) = %v, want 4", got)
	}
	cw := []Point{ccw[3], ccw[2], ccw[1], ccw[0]}
	if got := Area(cw); got != -4 {
		t.Errorf("Area(cw) = %v, want -4", got)
	}
}
