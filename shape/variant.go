package shape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned for a Variant outside the declared set or
// a name that does not parse. There is no sensible default outline, so the
// shape generator never falls back silently.
var ErrUnknownVariant = errors.New("shape: unknown variant")

// Variant selects a medal silhouette.
type Variant int

const (
	// Circle is a 256-segment disk.
	Circle Variant = iota

	// Hexagon is a regular hexagon, flat top by default.
	Hexagon

	// Octagon is a regular octagon with flat top and sides.
	Octagon

	// Star is a star with alternating outer and inner vertices, apex up.
	Star

	// Shield is an escutcheon: straight top, curved sides to a bottom point.
	Shield

	// Drop is a water drop: round base tapering to a point at the top.
	Drop

	// Rectangle is a rectangle with small (5 mm default) rounded corners.
	Rectangle

	// RoundedRectangle is a rectangle with 8 mm default rounded corners.
	RoundedRectangle

	// Gear is a toothed wheel.
	Gear

	// Leaf is a symmetric tip-to-tip leaf.
	Leaf

	variantCount
)

var variantNames = [variantCount]string{
	Circle:           "circle",
	Hexagon:          "hexagon",
	Octagon:          "octagon",
	Star:             "star",
	Shield:           "shield",
	Drop:             "drop",
	Rectangle:        "rectangle",
	RoundedRectangle: "rounded_rectangle",
	Gear:             "gear",
	Leaf:             "leaf",
}

// Variants returns every declared variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Variant(0); v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// String returns the variant name, e.g. "rounded_rectangle".
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a variant name. Matching ignores case and accepts
// '-' or ' ' in place of '_'.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for v, n := range variantNames {
		if n == key {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVariant, name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(variantNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Names returns the names of all variants, used for enumerations in
// schemas and CLI help.
func Names() []string {
	out := make([]string, len(variantNames))
	copy(out, variantNames[:])
	return out
}
