package medal

import (
	"errors"
	"math"
	"testing"
)

func square(side float64) Ring {
	h := side / 2
	return Ring{Pt(-h, -h), Pt(h, -h), Pt(h, h), Pt(-h, h)}
}

func disk(diameter float64, n int) Ring {
	r := make(Ring, n)
	for i := range r {
		r[i] = Polar(diameter/2, 2*math.Pi*float64(i)/float64(n))
	}
	return r
}

func TestRingArea(t *testing.T) {
	sq := square(10)
	if got := sq.SignedArea(); got != 100 {
		t.Errorf("SignedArea(ccw) = %v, want 100", got)
	}
	cw := Ring{sq[3], sq[2], sq[1], sq[0]}
	if got := cw.SignedArea(); got != -100 {
		t.Errorf("SignedArea(cw) = %v, want -100", got)
	}
	if got := cw.Area(); got != 100 {
		t.Errorf("Area(cw) = %v, want 100", got)
	}
}

func TestRingClosingPointIgnored(t *testing.T) {
	sq := square(10)
	closed := append(sq.Clone(), sq[0])
	if closed.Len() != 4 {
		t.Errorf("Len = %d, want 4", closed.Len())
	}
	if closed.Area() != sq.Area() {
		t.Errorf("Area with closing point = %v, want %v", closed.Area(), sq.Area())
	}
	if got := sq.Closed(); len(got) != 5 || got[4] != got[0] {
		t.Errorf("Closed() = %v, want 5 points ending at the first", got)
	}
}

func TestRingBoundingBox(t *testing.T) {
	b := disk(80, 256).BoundingBox()
	if math.Abs(b.Width()-80) > 1e-9 || math.Abs(b.Height()-80) > 1e-9 {
		t.Errorf("BoundingBox = %vx%v, want 80x80", b.Width(), b.Height())
	}
}

func TestRingContains(t *testing.T) {
	sq := square(10)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(0, 0), true},
		{"near edge", Pt(4.99, 0), true},
		{"outside", Pt(6, 0), false},
		{"far outside", Pt(100, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRingContainsDisk(t *testing.T) {
	sq := square(10)
	if !sq.ContainsDisk(Pt(0, 0), 5) {
		t.Error("ContainsDisk(center, 5) = false, want true")
	}
	if sq.ContainsDisk(Pt(3, 0), 2.5) {
		t.Error("ContainsDisk(3,0 r2.5) = true, want false")
	}
	if sq.ContainsDisk(Pt(20, 0), 1) {
		t.Error("ContainsDisk outside = true, want false")
	}
}

func TestRingDistanceToBoundary(t *testing.T) {
	sq := square(10)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(0, 0), 5},
		{Pt(3, 0), 2},
		{Pt(8, 0), 3},
		{Pt(8, 9), 5},
	}
	for _, tt := range tests {
		if got := sq.DistanceToBoundary(tt.p); math.Abs(got-tt.want) > eps {
			t.Errorf("DistanceToBoundary(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRingValidate(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want error
	}{
		{"square", square(10), nil},
		{"disk", disk(80, 256), nil},
		{"two points", Ring{Pt(0, 0), Pt(1, 0)}, ErrTooFewVertices},
		{"repeated points", Ring{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(1, 0)}, ErrTooFewVertices},
		{"collinear", Ring{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, ErrZeroArea},
		{"nan", Ring{Pt(0, 0), Pt(1, 0), Pt(math.NaN(), 1)}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ring.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRingValidateBowTie(t *testing.T) {
	bowTie := Ring{Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10)}
	err := bowTie.Validate()
	var si *SelfIntersectionError
	if !errors.As(err, &si) {
		t.Fatalf("Validate() = %v, want *SelfIntersectionError", err)
	}
	if si.EdgeA != 0 || si.EdgeB != 2 {
		t.Errorf("edges = %d, %d, want 0, 2", si.EdgeA, si.EdgeB)
	}
	if bowTie.IsSimple() {
		t.Error("IsSimple() = true for a bow tie")
	}
}

func TestRingRotateFullTurn(t *testing.T) {
	r := disk(70, 64).Translate(3, -2)
	got := r.Rotate(360)
	for i := range r {
		if !got[i].Approx(r[i], 1e-9) {
			t.Fatalf("vertex %d = %v, want %v", i, got[i], r[i])
		}
	}
}

func TestRingTransformDoesNotMutate(t *testing.T) {
	sq := square(10)
	_ = sq.Translate(5, 5)
	if sq[0] != Pt(-5, -5) {
		t.Errorf("Translate mutated receiver: %v", sq[0])
	}
}
