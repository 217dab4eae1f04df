package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAnchor is returned when a text anchor name does not parse.
var ErrUnknownAnchor = errors.New("compose: unknown text anchor")

// Anchor names where a text element sits on the medal.
type Anchor int

const (
	// AnchorCenter centers the text on the medal. It is the zero value.
	AnchorCenter Anchor = iota

	// AnchorTop places a straight line of text below the top edge.
	AnchorTop

	// AnchorBottom places a straight line of text above the bottom edge.
	AnchorBottom

	// AnchorArcTop bends the text along an arc across the top.
	AnchorArcTop

	// AnchorArcBottom bends the text along an arc across the bottom.
	AnchorArcBottom

	anchorCount
)

var anchorNames = [anchorCount]string{
	AnchorCenter:    "center",
	AnchorTop:       "top",
	AnchorBottom:    "bottom",
	AnchorArcTop:    "arc_top",
	AnchorArcBottom: "arc_bottom",
}

// Curved reports whether text at this anchor follows an arc.
func (a Anchor) Curved() bool {
	return a == AnchorArcTop || a == AnchorArcBottom
}

func (a Anchor) String() string {
	if a < 0 || a >= anchorCount {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor resolves an anchor name, ignoring case and accepting '-' or
// ' ' in place of '_'.
func ParseAnchor(name string) (Anchor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for a, n := range anchorNames {
		if n == key {
			return Anchor(a), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAnchor, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if a < 0 || a >= anchorCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAnchor, int(a))
	}
	return []byte(anchorNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AnchorNames returns the names of all anchors.
func AnchorNames() []string {
	out := make([]string, len(anchorNames))
	copy(out, anchorNames[:])
	return out
}
