package medal

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Lerp(q, 0.5); got != Pt(2, 1) {
		t.Errorf("Lerp = %v, want (2, 1)", got)
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if !got.Approx(Pt(0, 1), eps) {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}
}

func TestPolar(t *testing.T) {
	got := Polar(2, math.Pi)
	if !got.Approx(Pt(-2, 0), eps) {
		t.Errorf("Polar(2, pi) = %v, want (-2, 0)", got)
	}
	if r := Radians(180); r != math.Pi {
		t.Errorf("Radians(180) = %v, want pi", r)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(1, 2), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(1)), false},
		{Pt(math.Inf(-1), 0), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, -5), Pt(-10, 5))
	if r.Min != Pt(-10, -5) || r.Max != Pt(10, 5) {
		t.Fatalf("NewRect = %+v, want normalized corners", r)
	}
	if r.Width() != 20 || r.Height() != 10 || r.MaxDim() != 20 {
		t.Errorf("size = %vx%v max %v, want 20x10 max 20", r.Width(), r.Height(), r.MaxDim())
	}
	if r.Center() != Pt(0, 0) {
		t.Errorf("Center = %v, want origin", r.Center())
	}
	if !r.Contains(Pt(10, 5)) || r.Contains(Pt(11, 0)) {
		t.Error("Contains should include the edge and exclude outside points")
	}
	in := r.Inset(2)
	if in.Width() != 16 || in.Height() != 6 {
		t.Errorf("Inset(2) = %vx%v, want 16x6", in.Width(), in.Height())
	}
	u := r.Union(NewRect(Pt(0, 0), Pt(30, 1)))
	if u.Max.X != 30 || u.Min.X != -10 {
		t.Errorf("Union = %+v", u)
	}
}

func TestPolyline(t *testing.T) {
	l := Polyline{Pt(0, 0), Pt(3, 4), Pt(3, 10)}
	if got := l.Length(); math.Abs(got-11) > eps {
		t.Errorf("Length = %v, want 11", got)
	}
	moved := l.Translate(1, 1)
	if moved[0] != Pt(1, 1) || l[0] != Pt(0, 0) {
		t.Errorf("Translate mutated the receiver or moved wrong: %v, %v", moved[0], l[0])
	}
	b := l.BoundingBox()
	if b.Width() != 3 || b.Height() != 10 {
		t.Errorf("BoundingBox = %+v", b)
	}

	all := TranslateAll([]Polyline{l}, 0, 0)
	all[0][0] = Pt(99, 99)
	if l[0] != Pt(0, 0) {
		t.Error("TranslateAll must copy its input")
	}
}
