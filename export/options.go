package export

import "github.com/gogpu/medal"

// Default margins around the design, in millimeters.
const (
	PreviewMargin    = 10.0
	ProductionMargin = 5.0
)

// Stroke widths in millimeters.
const (
	previewOutlineWidth = 0.5
	previewHoleWidth    = 0.3
	previewLineWidth    = 0.4
	productionWidth     = 0.1
)

// Option configures WriteSVG and WritePNG.
type Option func(*options)

type options struct {
	wood       string
	margin     float64
	production bool
	cutLines   bool
}

// WithWood selects the preview wood by name. It overrides the design's
// own wood.
func WithWood(name string) Option {
	return func(o *options) {
		o.wood = name
	}
}

// WithMargin sets the blank space around the design.
func WithMargin(mm float64) Option {
	return func(o *options) {
		o.margin = mm
	}
}

// Production switches to the laser file layout: red hairline cuts, blue
// hairline engraving and no fills. Curved text is left out since laser
// drivers cannot follow text paths.
func Production() Option {
	return func(o *options) {
		o.production = true
	}
}

// WithCutLines draws the preview outline in the cut colour.
func WithCutLines() Option {
	return func(o *options) {
		o.cutLines = true
	}
}

func newOptions(wood string, opts []Option) options {
	o := options{wood: wood, margin: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.margin < 0 {
		o.margin = PreviewMargin
		if o.production {
			o.margin = ProductionMargin
		}
	}
	return o
}

// resolveWood falls back to DefaultWood for unknown names.
func (o options) resolveWood() Wood {
	if o.wood == "" {
		return woods[DefaultWood]
	}
	w, ok := LookupWood(o.wood)
	if !ok {
		medal.Logger().Warn("unknown wood, using default", "wood", o.wood, "default", DefaultWood)
		return woods[DefaultWood]
	}
	return w
}

// page is the area drawn, in design coordinates.
func (o options) page(bounds medal.Rect) medal.Rect {
	return bounds.Inset(-o.margin)
}
