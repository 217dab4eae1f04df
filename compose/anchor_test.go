package compose

import (
	"errors"
	"testing"
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"center", AnchorCenter},
		{"TOP", AnchorTop},
		{" bottom ", AnchorBottom},
		{"arc_top", AnchorArcTop},
		{"arc-bottom", AnchorArcBottom},
		{"Arc Top", AnchorArcTop},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if err != nil {
				t.Fatalf("ParseAnchor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseAnchor("around"); !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("ParseAnchor(around) error = %v, want ErrUnknownAnchor", err)
	}
}

func TestAnchorText(t *testing.T) {
	for _, name := range AnchorNames() {
		var a Anchor
		if err := a.UnmarshalText([]byte(name)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", name, err)
		}
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		if string(text) != name {
			t.Errorf("round trip of %q gave %q", name, text)
		}
	}
	if _, err := Anchor(42).MarshalText(); !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("MarshalText(42) error = %v, want ErrUnknownAnchor", err)
	}
	if got := Anchor(42).String(); got != "Anchor(42)" {
		t.Errorf("String() = %q, want Anchor(42)", got)
	}
}

func TestAnchorCurved(t *testing.T) {
	for _, a := range []Anchor{AnchorCenter, AnchorTop, AnchorBottom} {
		if a.Curved() {
			t.Errorf("%v.Curved() = true", a)
		}
	}
	for _, a := range []Anchor{AnchorArcTop, AnchorArcBottom} {
		if !a.Curved() {
			t.Errorf("%v.Curved() = false", a)
		}
	}
}
