package compose

import (
	"github.com/gogpu/medal"
)

// Text layout constants, in millimeters.
const (
	// DefaultTextHeight applies to text elements without a height.
	DefaultTextHeight = 8.0

	// DefaultFontFamily applies to text elements without a font family.
	DefaultFontFamily = "Arial"

	// TopTextInset is the distance of top-anchored text below the top of
	// the outline bounding box.
	TopTextInset = 15.0

	// BottomTextInset is the distance of bottom-anchored text above the
	// bottom of the outline bounding box.
	BottomTextInset = 10.0

	// ArcTextInset is subtracted from half the outline width to get the
	// default radius of arc-anchored text.
	ArcTextInset = 8.0
)

// TextPlacement is a text element resolved to design coordinates.
//
// Straight text is centered horizontally on Position, with its baseline at
// Position.Y. Curved text follows a half circle of Radius around Position,
// running from ArcStart to ArcEnd; StartAngle is 180 for the top arc and 0
// for the bottom one.
type TextPlacement struct {
	Content    string      `json:"content"`
	Anchor     Anchor      `json:"anchor"`
	Position   medal.Point `json:"position"`
	Height     float64     `json:"height"`
	FontFamily string      `json:"font_family"`
	Bold       bool        `json:"bold,omitempty"`

	Curved     bool        `json:"curved,omitempty"`
	Radius     float64     `json:"radius,omitempty"`
	StartAngle float64     `json:"start_angle,omitempty"`
	ArcStart   medal.Point `json:"arc_start"`
	ArcEnd     medal.Point `json:"arc_end"`
}

// placeText resolves t against the outline bounds.
func placeText(t TextElement, bounds medal.Rect) TextPlacement {
	pl := TextPlacement{
		Content:    t.Content,
		Anchor:     t.Anchor,
		Height:     t.Height,
		FontFamily: t.FontFamily,
		Bold:       t.Bold,
	}
	if pl.Height == 0 {
		pl.Height = DefaultTextHeight
	}
	if pl.FontFamily == "" {
		pl.FontFamily = DefaultFontFamily
	}

	center := bounds.Center()
	switch t.Anchor {
	case AnchorTop:
		pl.Position = medal.Pt(center.X, bounds.Max.Y-TopTextInset+t.OffsetY)
	case AnchorBottom:
		pl.Position = medal.Pt(center.X, bounds.Min.Y+BottomTextInset+t.OffsetY)
	case AnchorArcTop, AnchorArcBottom:
		pl.Position = center
		pl.Curved = true
		pl.Radius = t.CurveRadius
		if pl.Radius == 0 {
			pl.Radius = bounds.Width()/2 - ArcTextInset
		}
		left := medal.Pt(center.X-pl.Radius, center.Y)
		right := medal.Pt(center.X+pl.Radius, center.Y)
		if t.Anchor == AnchorArcTop {
			pl.StartAngle = 180
			pl.ArcStart, pl.ArcEnd = left, right
		} else {
			pl.ArcStart, pl.ArcEnd = right, left
		}
	default:
		pl.Position = medal.Pt(center.X, center.Y+t.OffsetY)
	}
	return pl
}
