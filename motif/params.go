package motif

// Defaults applied to zero-valued Params fields.
const (
	DefaultWidth  = 60.0
	DefaultHeight = 20.0
	DefaultDetail = 3
	DefaultRows   = 2
)

// Params drives one motif variant. Lengths are in millimeters.
//
// Detail is the density knob shared by every variant: the number of
// peaks, waves, chevrons, trees or lanes; twice that many laurel leaves
// per side and finish-line columns; four times that many rays; the
// number of engraving passes per QR module row.
type Params struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Detail int     `yaml:"detail,omitempty" json:"detail,omitempty"`

	// OffsetX and OffsetY translate every point after generation.
	OffsetX float64 `yaml:"offset_x,omitempty" json:"offset_x,omitempty"`
	OffsetY float64 `yaml:"offset_y,omitempty" json:"offset_y,omitempty"`

	// Detailed draws separate mountains with snow caps instead of one
	// skyline.
	Detailed bool `yaml:"detailed,omitempty" json:"detailed,omitempty"`

	// Rows is the number of wave rows.
	Rows int `yaml:"rows,omitempty" json:"rows,omitempty"`

	// Content is the text encoded by the QR code motif.
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

func (p Params) withDefaults() Params {
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.Detail <= 0 {
		p.Detail = DefaultDetail
	}
	if p.Rows <= 0 {
		p.Rows = DefaultRows
	}
	return p
}
