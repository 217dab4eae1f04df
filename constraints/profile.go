// Package constraints checks medal designs against the limits of a laser
// cutting machine.
//
// A Profile holds the limits. The Validate functions are pure: they read a
// Profile and some geometry and return a Result listing blocking errors
// and non-blocking warnings. Failed checks are never Go errors.
package constraints

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile is wrapped by every error Profile.Check reports.
var ErrInvalidProfile = errors.New("constraints: invalid profile")

// Profile is a named set of manufacturing limits. All lengths are in
// millimeters. Treat a Profile as immutable; derive variants with New and
// options instead of editing shared values.
type Profile struct {
	Name string `yaml:"name"`

	// Work area of the machine bed.
	MaxWidth  float64 `yaml:"max_width"`
	MaxHeight float64 `yaml:"max_height"`

	// MaterialThicknesses lists the stock thicknesses the shop can cut.
	MaterialThicknesses []float64 `yaml:"material_thicknesses,flow"`

	MinLineWidth   float64 `yaml:"min_line_width"`
	MinDetailSize  float64 `yaml:"min_detail_size"`
	MinBridgeWidth float64 `yaml:"min_bridge_width"`
	Kerf           float64 `yaml:"kerf"`

	// Overall medal size, compared against the larger bounding dimension.
	MinMedalSize float64 `yaml:"min_medal_size"`
	MaxMedalSize float64 `yaml:"max_medal_size"`
	SafeMargin   float64 `yaml:"safe_margin"`

	RibbonHoleDiameter  float64 `yaml:"ribbon_hole_diameter"`
	RibbonHoleMinMargin float64 `yaml:"ribbon_hole_min_margin"`

	MinTextHeight     float64 `yaml:"min_text_height"`
	MinEngravingWidth float64 `yaml:"min_engraving_width"`
}

// Default returns the limits of a Trotec laser working 3 to 6 mm wood.
func Default() Profile {
	return Profile{
		Name:                "trotec",
		MaxWidth:            600,
		MaxHeight:           300,
		MaterialThicknesses: []float64{3, 4, 5, 6},
		MinLineWidth:        0.5,
		MinDetailSize:       1.0,
		MinBridgeWidth:      2.0,
		Kerf:                0.15,
		MinMedalSize:        40,
		MaxMedalSize:        120,
		SafeMargin:          2.0,
		RibbonHoleDiameter:  4.0,
		RibbonHoleMinMargin: 5.0,
		MinTextHeight:       3.0,
		MinEngravingWidth:   0.3,
	}
}

// Option adjusts a Profile built by New.
type Option func(*Profile)

// New returns the default profile with opts applied in order.
//
// Example:
//
//	p := constraints.New(
//	    constraints.WithName("epilog"),
//	    constraints.WithWorkArea(300, 200),
//	)
func New(opts ...Option) Profile {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithName sets the profile name.
func WithName(name string) Option {
	return func(p *Profile) { p.Name = name }
}

// WithWorkArea sets the machine bed size.
func WithWorkArea(width, height float64) Option {
	return func(p *Profile) {
		p.MaxWidth = width
		p.MaxHeight = height
	}
}

// WithMedalSize sets the accepted range of the larger medal dimension.
func WithMedalSize(minSize, maxSize float64) Option {
	return func(p *Profile) {
		p.MinMedalSize = minSize
		p.MaxMedalSize = maxSize
	}
}

// WithBridgeWidth sets the thinnest material wall that survives cutting.
func WithBridgeWidth(w float64) Option {
	return func(p *Profile) { p.MinBridgeWidth = w }
}

// WithKerf sets the width burnt away by the beam.
func WithKerf(k float64) Option {
	return func(p *Profile) { p.Kerf = k }
}

// WithRibbonHole sets the hole diameter and its minimum distance from the
// edge.
func WithRibbonHole(diameter, margin float64) Option {
	return func(p *Profile) {
		p.RibbonHoleDiameter = diameter
		p.RibbonHoleMinMargin = margin
	}
}

// WithMinTextHeight sets the smallest engravable text height.
func WithMinTextHeight(h float64) Option {
	return func(p *Profile) { p.MinTextHeight = h }
}

// WithMaterialThicknesses replaces the supported stock thicknesses.
func WithMaterialThicknesses(t ...float64) Option {
	return func(p *Profile) { p.MaterialThicknesses = slices.Clone(t) }
}

// WithSafeMargin sets the engraving-free band along the outline.
func WithSafeMargin(m float64) Option {
	return func(p *Profile) { p.SafeMargin = m }
}

// WithMinDetailSize sets the smallest engravable feature.
func WithMinDetailSize(s float64) Option {
	return func(p *Profile) { p.MinDetailSize = s }
}

// WithEngravingWidth sets the minimum engraving stroke width.
func WithEngravingWidth(w float64) Option {
	return func(p *Profile) { p.MinEngravingWidth = w }
}

// Clone returns a copy of p that shares no storage with it.
func (p Profile) Clone() Profile {
	p.MaterialThicknesses = slices.Clone(p.MaterialThicknesses)
	return p
}

// Supports reports whether thickness is one of the profile's stock
// thicknesses.
func (p Profile) Supports(thickness float64) bool {
	for _, t := range p.MaterialThicknesses {
		if nearlyEqual(t, thickness) {
			return true
		}
	}
	return false
}

// Check reports every inconsistent limit, joined into one error. Each
// part wraps ErrInvalidProfile.
func (p Profile) Check() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidProfile}, args...)...))
	}

	if p.MaxWidth <= 0 || p.MaxHeight <= 0 {
		bad("work area %gx%g must be positive", p.MaxWidth, p.MaxHeight)
	}
	if p.MinMedalSize <= 0 || p.MaxMedalSize < p.MinMedalSize {
		bad("medal size range %g..%g", p.MinMedalSize, p.MaxMedalSize)
	}
	if p.MinBridgeWidth < 0 {
		bad("negative bridge width %g", p.MinBridgeWidth)
	}
	if p.Kerf < 0 {
		bad("negative kerf %g", p.Kerf)
	}
	if p.SafeMargin < 0 {
		bad("negative safe margin %g", p.SafeMargin)
	}
	if p.RibbonHoleDiameter <= 0 || p.RibbonHoleMinMargin < 0 {
		bad("ribbon hole %g mm with margin %g mm", p.RibbonHoleDiameter, p.RibbonHoleMinMargin)
	}
	if p.MinTextHeight <= 0 {
		bad("minimum text height %g must be positive", p.MinTextHeight)
	}
	for _, t := range p.MaterialThicknesses {
		if t <= 0 {
			bad("material thickness %g must be positive", t)
		}
	}
	return errors.Join(errs...)
}

// MarshalYAML writes the profile with its thicknesses in ascending order.
func (p Profile) MarshalYAML() (any, error) {
	type plain Profile
	out := plain(p.Clone())
	slices.Sort(out.MaterialThicknesses)
	return out, nil
}

// LoadProfile reads a YAML document and overlays it on Default, so a file
// only needs the limits that differ. An empty document yields the
// defaults. The result is checked before it is returned.
func LoadProfile(r io.Reader) (Profile, error) {
	p := Default()
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("constraints: decode profile: %w", err)
	}
	if err := p.Check(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func nearlyEqual(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}
