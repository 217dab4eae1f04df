package export

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Wood is a preview material: the colour of the blank and the colour of
// burnt engraving on it.
type Wood struct {
	Name    string
	Fill    color.RGBA
	Engrave color.RGBA
}

// DefaultWood is used when a design names no wood or an unknown one.
const DefaultWood = "hetre"

var woods = map[string]Wood{
	"hetre":   {"hetre", rgb(0xD4A574), rgb(0x4A3728)},
	"chene":   {"chene", rgb(0xC19A6B), rgb(0x3D2914)},
	"noyer":   {"noyer", rgb(0x5C4033), rgb(0x2C1810)},
	"erable":  {"erable", rgb(0xE8DCC4), rgb(0x5A4A3A)},
	"bouleau": {"bouleau", rgb(0xF5DEB3), rgb(0x6B4423)},
}

// Production colours understood by laser drivers.
var (
	CutColor     = rgb(0xFF0000)
	EngraveColor = rgb(0x0000FF)
)

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// LookupWood returns the wood with the given name, ignoring case.
func LookupWood(name string) (Wood, bool) {
	w, ok := woods[strings.ToLower(strings.TrimSpace(name))]
	return w, ok
}

// WoodNames returns the known wood names, sorted.
func WoodNames() []string {
	names := make([]string, 0, len(woods))
	for n := range woods {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
