package compose

import (
	"github.com/google/uuid"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/constraints"
	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

// EventType tags the kind of event a medal is made for.
type EventType string

// Known event types. Compositions may carry any other value.
const (
	EventTrail     EventType = "trail"
	EventRunning   EventType = "running"
	EventSwimming  EventType = "swimming"
	EventCorporate EventType = "corporate"
	EventCustom    EventType = "custom"
)

// Composition is the caller's description of a medal. The zero value of
// most fields selects a default; use NewComposition for a composition
// with a ribbon hole enabled.
type Composition struct {
	Name  string    `yaml:"name" json:"name" jsonschema:"required"`
	Event EventType `yaml:"event,omitempty" json:"event,omitempty"`

	Shape       shape.Variant `yaml:"shape" json:"shape" jsonschema:"required"`
	ShapeParams shape.Params  `yaml:"shape_params" json:"shape_params"`

	RibbonHole RibbonHole `yaml:"ribbon_hole" json:"ribbon_hole"`

	// Motifs are drawn in order, first declared first.
	Motifs []MotifElement `yaml:"motifs,omitempty" json:"motifs,omitempty"`
	Texts  []TextElement  `yaml:"texts,omitempty" json:"texts,omitempty"`

	// BorderInset, when positive, engraves a frame that follows the
	// outline this far inside it.
	BorderInset float64 `yaml:"border_inset,omitempty" json:"border_inset,omitempty"`

	// Material is the stock thickness in millimeters; zero leaves it
	// unspecified.
	Material float64 `yaml:"material,omitempty" json:"material,omitempty"`

	// Wood names the preview wood species.
	Wood string `yaml:"wood,omitempty" json:"wood,omitempty"`
}

// RibbonHole configures the mounting hole.
type RibbonHole struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Diameter of the hole; zero uses the profile's ribbon hole diameter.
	Diameter float64 `yaml:"diameter,omitempty" json:"diameter,omitempty"`

	// Position is the explicit hole center. Nil places the hole
	// automatically, AutoHoleMargin below the top of the outline.
	Position *medal.Point `yaml:"position,omitempty" json:"position,omitempty"`
}

// MotifElement places one motif on the medal.
type MotifElement struct {
	Motif  motif.Variant `yaml:"motif" json:"motif" jsonschema:"required"`
	Params motif.Params  `yaml:"params" json:"params"`

	// Position is added to every motif point after generation.
	Position medal.Point `yaml:"position,omitempty" json:"position,omitempty"`
}

// TextElement is a line of engraved text.
type TextElement struct {
	Content string `yaml:"content" json:"content" jsonschema:"required"`
	Anchor  Anchor `yaml:"anchor,omitempty" json:"anchor,omitempty"`

	// Height is the nominal glyph height in millimeters; zero means
	// DefaultTextHeight.
	Height     float64 `yaml:"height,omitempty" json:"height,omitempty"`
	FontFamily string  `yaml:"font_family,omitempty" json:"font_family,omitempty"`
	Bold       bool    `yaml:"bold,omitempty" json:"bold,omitempty"`

	// OffsetY shifts straight text vertically.
	OffsetY float64 `yaml:"offset_y,omitempty" json:"offset_y,omitempty"`

	// CurveRadius overrides the derived radius of arc anchors.
	CurveRadius float64 `yaml:"curve_radius,omitempty" json:"curve_radius,omitempty"`
}

// NewComposition returns an empty circular composition with an automatic
// ribbon hole.
func NewComposition(name string) Composition {
	return Composition{
		Name:        name,
		Shape:       shape.Circle,
		ShapeParams: shape.Params{Width: shape.DefaultWidth},
		RibbonHole:  RibbonHole{Enabled: true},
	}
}

// Hole is a resolved ribbon hole.
type Hole struct {
	Center medal.Point `json:"center"`
	Radius float64     `json:"radius"`
}

// Design is a composed medal, ready for rendering. It owns all of its
// geometry.
type Design struct {
	// ID is derived from the composition and profile, so identical
	// inputs always produce the same ID.
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Event EventType `json:"event,omitempty"`

	Outline medal.Ring `json:"outline"`
	Hole    *Hole      `json:"hole,omitempty"`

	// MotifLines are already in outline coordinates.
	MotifLines  []medal.Polyline `json:"motif_lines"`
	BorderLines []medal.Polyline `json:"border_lines,omitempty"`
	Texts       []TextPlacement  `json:"texts"`

	Bounds   medal.Rect `json:"bounds"`
	Material float64    `json:"material,omitempty"`
	Wood     string     `json:"wood,omitempty"`

	Result constraints.Result `json:"result"`
}

// Valid reports whether the design passed every blocking check.
func (d *Design) Valid() bool {
	return d.Result.Valid
}

// EngravedLines returns the motif lines followed by the border lines.
func (d *Design) EngravedLines() []medal.Polyline {
	out := make([]medal.Polyline, 0, len(d.MotifLines)+len(d.BorderLines))
	out = append(out, d.MotifLines...)
	return append(out, d.BorderLines...)
}
