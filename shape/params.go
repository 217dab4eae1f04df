package shape

// Defaults applied to zero-valued Params fields.
const (
	DefaultWidth             = 70.0
	DefaultStarPoints        = 5
	DefaultStarInnerRatio    = 0.4
	DefaultGearTeeth         = 12
	DefaultGearToothDepth    = 5.0
	DefaultRectangleRadius   = 5.0
	DefaultRoundedRectRadius = 8.0

	// DefaultDropAspect is the body width of a drop relative to its height
	// when no height is given.
	DefaultDropAspect = 5.0 / 7.0
)

// Params drives one shape variant. All lengths are in millimeters.
//
// Only Width, Height, Rotation and CornerRadius apply to every variant;
// the remaining fields tune a single variant and are ignored elsewhere.
// Zero values select defaults.
type Params struct {
	// Width is the outer width. Radial variants (circle, polygons, star,
	// gear) are fitted so their larger bounding dimension equals Width.
	Width float64 `yaml:"width" json:"width"`

	// Height is the outer height of shield, drop, leaf and rectangles.
	// Zero means Height = Width. A drop without a height keeps Width as its
	// long side and narrows its body to DefaultDropAspect.
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`

	// Rotation in degrees, counter-clockwise about the origin, applied
	// after generation.
	Rotation float64 `yaml:"rotation,omitempty" json:"rotation,omitempty"`

	// CornerRadius of rectangles.
	CornerRadius float64 `yaml:"corner_radius,omitempty" json:"corner_radius,omitempty"`

	// Points is the number of star tips.
	Points int `yaml:"points,omitempty" json:"points,omitempty"`

	// InnerRatio is the star inner radius as a fraction of the outer one.
	InnerRatio float64 `yaml:"inner_ratio,omitempty" json:"inner_ratio,omitempty"`

	// Teeth is the number of gear teeth.
	Teeth int `yaml:"teeth,omitempty" json:"teeth,omitempty"`

	// ToothDepth is the radial depth of gear teeth.
	ToothDepth float64 `yaml:"tooth_depth,omitempty" json:"tooth_depth,omitempty"`

	// PointyTop turns the hexagon by 30 degrees so a vertex points up.
	PointyTop bool `yaml:"pointy_top,omitempty" json:"pointy_top,omitempty"`
}

// withDefaults returns a copy of p with zero fields resolved.
func (p Params) withDefaults(v Variant) Params {
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = p.Width
		if v == Drop {
			p.Width *= DefaultDropAspect
		}
	}
	if p.Points == 0 {
		p.Points = DefaultStarPoints
	}
	if p.InnerRatio == 0 {
		p.InnerRatio = DefaultStarInnerRatio
	}
	if p.Teeth == 0 {
		p.Teeth = DefaultGearTeeth
	}
	if p.ToothDepth == 0 {
		p.ToothDepth = DefaultGearToothDepth
	}
	if p.CornerRadius == 0 {
		switch v {
		case Rectangle:
			p.CornerRadius = DefaultRectangleRadius
		case RoundedRectangle:
			p.CornerRadius = DefaultRoundedRectRadius
		}
	}
	return p
}
