package medal

import (
	"math"
	"testing"
)

func TestRotateDegQuarterTurnsAreExact(t *testing.T) {
	tests := []struct {
		deg  float64
		in   Point
		want Point
	}{
		{0, Pt(3, 4), Pt(3, 4)},
		{90, Pt(3, 4), Pt(-4, 3)},
		{180, Pt(3, 4), Pt(-3, -4)},
		{270, Pt(3, 4), Pt(4, -3)},
		{360, Pt(3, 4), Pt(3, 4)},
		{-90, Pt(3, 4), Pt(4, -3)},
		{720, Pt(3, 4), Pt(3, 4)},
	}
	for _, tt := range tests {
		got := RotateDeg(tt.deg).TransformPoint(tt.in)
		if got != tt.want {
			t.Errorf("RotateDeg(%v).TransformPoint(%v) = %v, want %v", tt.deg, tt.in, got, tt.want)
		}
	}
}

func TestRotateDegMatchesRotate(t *testing.T) {
	for _, deg := range []float64{15, 45, 123.5, -30} {
		a := RotateDeg(deg).TransformPoint(Pt(10, 0))
		b := Rotate(deg * math.Pi / 180).TransformPoint(Pt(10, 0))
		if !a.Approx(b, 1e-12) {
			t.Errorf("RotateDeg(%v) = %v, Rotate = %v", deg, a, b)
		}
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 23)
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"full turn", RotateDeg(360), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translation", Translate(1, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
