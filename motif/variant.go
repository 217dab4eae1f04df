package motif

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned for a Variant outside the declared set or
// a name that does not parse.
var ErrUnknownVariant = errors.New("motif: unknown variant")

// Variant selects a decorative line-art recipe.
type Variant int

const (
	// Mountains is a skyline of peaks, optionally with snow caps.
	Mountains Variant = iota

	// Waves is rows of sine waves.
	Waves

	// Laurel is a wreath of two mirrored stems carrying leaves.
	Laurel

	// Rays radiate from the center between two radii.
	Rays

	// Chevrons are stacked V strokes.
	Chevrons

	// Trees are conifer silhouettes with separate trunks.
	Trees

	// RunningTrack is a set of parallel lanes.
	RunningTrack

	// FinishLine is a checkerboard of closed squares.
	FinishLine

	// QRCode engraves the modules of a QR code as horizontal strokes.
	QRCode

	variantCount
)

var variantNames = [variantCount]string{
	Mountains:    "mountains",
	Waves:        "waves",
	Laurel:       "laurel",
	Rays:         "rays",
	Chevrons:     "chevrons",
	Trees:        "trees",
	RunningTrack: "running_track",
	FinishLine:   "finish_line",
	QRCode:       "qr_code",
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

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a motif name, ignoring case and accepting '-' or
// ' ' in place of '_'.
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

// Names returns the names of all variants.
func Names() []string {
	out := make([]string, len(variantNames))
	copy(out, variantNames[:])
	return out
}
