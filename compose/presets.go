package compose

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

// ErrUnknownEvent is returned by Preset for an event type without a preset.
var ErrUnknownEvent = errors.New("compose: unknown event type")

// Preset defaults.
const (
	DefaultYear         = "2026"
	DefaultDistance     = "42K"
	DefaultDiameter     = 70.0
	DefaultSwimDiameter = 65.0
	DefaultCompany      = "OOOVATION"
	DefaultConceptName  = "Custom Medal"
	DefaultWood         = "hetre"
)

// PresetOptions fills a preset. Zero fields take the preset's defaults.
type PresetOptions struct {
	EventName string
	Year      string
	Diameter  float64
	Wood      string

	// Distance is the trail distance label.
	Distance string

	// Company heads the corporate medal.
	Company string

	// The remaining fields drive Custom only.
	Shape         shape.Variant
	Primary       motif.Variant
	Secondary     *motif.Variant
	TextMain      string
	TextSecondary string
	ConceptName   string
}

func (o PresetOptions) withDefaults(event string, diameter float64) PresetOptions {
	if o.EventName == "" {
		o.EventName = event
	}
	if o.Year == "" {
		o.Year = DefaultYear
	}
	if o.Diameter <= 0 {
		o.Diameter = diameter
	}
	return o
}

// upper capitalizes an event name for engraving. It handles accented
// letters, so "Traversée" becomes "TRAVERSÉE".
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Preset returns the composition preset for event type kind.
func Preset(kind EventType, o PresetOptions) (Composition, error) {
	switch kind {
	case EventTrail:
		return Trail(o), nil
	case EventRunning:
		return Running(o), nil
	case EventSwimming:
		return Swimming(o), nil
	case EventCorporate:
		return Corporate(o), nil
	case EventCustom:
		return Custom(o), nil
	}
	return Composition{}, fmt.Errorf("%w %q", ErrUnknownEvent, kind)
}

// Trail is a circular medal with mountains over trees, the event name
// arched across the top, the distance in the middle and the year arched
// across the bottom.
func Trail(o PresetOptions) Composition {
	o = o.withDefaults("Trail des Montagnes", DefaultDiameter)
	if o.Distance == "" {
		o.Distance = DefaultDistance
	}
	d := o.Diameter
	c := NewComposition(o.EventName + " " + o.Year)
	c.Event = EventTrail
	c.Wood = o.Wood
	c.ShapeParams = shape.Params{Width: d}
	c.Motifs = []MotifElement{
		{Motif: motif.Mountains, Params: motif.Params{Width: d * 0.7, Height: d * 0.3}, Position: medal.Pt(0, -5)},
		{Motif: motif.Trees, Params: motif.Params{Width: d * 0.5, Height: d * 0.2}, Position: medal.Pt(0, -d*0.25)},
	}
	c.Texts = []TextElement{
		{Content: upper(o.EventName), Anchor: AnchorArcTop, Height: 5, Bold: true},
		{Content: o.Distance, Anchor: AnchorCenter, Height: 14, Bold: true, OffsetY: 5},
		{Content: o.Year, Anchor: AnchorArcBottom, Height: 5},
	}
	return c
}

// Running is a hexagonal road race medal with a running track and
// chevrons.
func Running(o PresetOptions) Composition {
	o = o.withDefaults("Marathon de Paris", DefaultDiameter)
	d := o.Diameter
	c := NewComposition(o.EventName + " " + o.Year)
	c.Event = EventRunning
	c.Wood = o.Wood
	c.Shape = shape.Hexagon
	c.ShapeParams = shape.Params{Width: d}
	c.Motifs = []MotifElement{
		{Motif: motif.RunningTrack, Params: motif.Params{Width: d * 0.6}, Position: medal.Pt(0, -10)},
		{Motif: motif.Chevrons, Params: motif.Params{Width: d * 0.4, Height: 12}, Position: medal.Pt(0, 5)},
	}
	c.Texts = []TextElement{
		{Content: upper(o.EventName), Anchor: AnchorTop, Height: 5, Bold: true, OffsetY: -5},
		{Content: "FINISHER", Anchor: AnchorCenter, Height: 8, Bold: true},
		{Content: o.Year, Anchor: AnchorBottom, Height: 6, OffsetY: 5},
	}
	return c
}

// Swimming is a drop with waves.
func Swimming(o PresetOptions) Composition {
	o = o.withDefaults("Traversée du Lac", DefaultSwimDiameter)
	d := o.Diameter
	c := NewComposition(o.EventName + " " + o.Year)
	c.Event = EventSwimming
	c.Wood = o.Wood
	c.Shape = shape.Drop
	c.ShapeParams = shape.Params{Width: d * 0.8, Height: d}
	c.Motifs = []MotifElement{
		{Motif: motif.Waves, Params: motif.Params{Width: d * 0.6, Height: 15}, Position: medal.Pt(0, -15)},
	}
	c.Texts = []TextElement{
		{Content: upper(o.EventName), Anchor: AnchorTop, Height: 4.5, Bold: true, OffsetY: -10},
		{Content: o.Year, Anchor: AnchorBottom, Height: 6, OffsetY: 10},
	}
	return c
}

// Corporate is a shield with a laurel wreath and the company name on top.
func Corporate(o PresetOptions) Composition {
	o = o.withDefaults("Team Building", DefaultDiameter)
	if o.Company == "" {
		o.Company = DefaultCompany
	}
	d := o.Diameter
	c := NewComposition(o.Company + " - " + o.EventName + " " + o.Year)
	c.Event = EventCorporate
	c.Wood = o.Wood
	c.Shape = shape.Shield
	c.ShapeParams = shape.Params{Width: d * 0.85, Height: d}
	c.Motifs = []MotifElement{
		{Motif: motif.Laurel, Params: motif.Params{Width: d * 0.7, Height: d * 0.5}, Position: medal.Pt(0, -5)},
	}
	c.Texts = []TextElement{
		{Content: o.Company, Anchor: AnchorTop, Height: 6, Bold: true, OffsetY: -8},
		{Content: upper(o.EventName), Anchor: AnchorCenter, Height: 5, OffsetY: 5},
		{Content: o.Year, Anchor: AnchorBottom, Height: 5, OffsetY: 8},
	}
	return c
}

// Custom assembles a medal from a shape, a primary motif and an optional
// secondary one. Circles get arched texts, other shapes straight ones.
// It is the preset fed by the creative-suggestion service.
func Custom(o PresetOptions) Composition {
	o = o.withDefaults("", DefaultDiameter)
	if o.TextMain == "" {
		o.TextMain = "ÉVÉNEMENT"
	}
	if o.TextSecondary == "" {
		o.TextSecondary = "FINISHER"
	}
	if o.ConceptName == "" {
		o.ConceptName = DefaultConceptName
	}
	if o.Wood == "" {
		o.Wood = DefaultWood
	}
	d := o.Diameter

	c := NewComposition(o.ConceptName)
	c.Event = EventCustom
	c.Wood = o.Wood
	c.Shape = o.Shape
	c.ShapeParams = shape.Params{Width: d}
	switch o.Shape {
	case shape.Shield, shape.Drop, shape.Leaf:
		c.ShapeParams = shape.Params{Width: d * 0.85, Height: d}
	}

	c.Motifs = []MotifElement{
		{Motif: o.Primary, Params: motif.Params{Width: d * 0.6, Height: d * 0.25}, Position: medal.Pt(0, -5)},
	}
	if o.Secondary != nil {
		c.Motifs = append(c.Motifs, MotifElement{
			Motif:    *o.Secondary,
			Params:   motif.Params{Width: d * 0.4, Height: d * 0.15},
			Position: medal.Pt(0, -d*0.22),
		})
	}

	if o.Shape == shape.Circle {
		c.Texts = []TextElement{
			{Content: o.TextMain, Anchor: AnchorArcTop, Height: 5, Bold: true},
			{Content: o.TextSecondary, Anchor: AnchorCenter, Height: 8, Bold: true, OffsetY: 8},
			{Content: o.Year, Anchor: AnchorArcBottom, Height: 5},
		}
	} else {
		c.Texts = []TextElement{
			{Content: o.TextMain, Anchor: AnchorTop, Height: 5, Bold: true, OffsetY: -5},
			{Content: o.TextSecondary, Anchor: AnchorCenter, Height: 7, Bold: true},
			{Content: o.Year, Anchor: AnchorBottom, Height: 5, OffsetY: 5},
		}
	}
	return c
}
