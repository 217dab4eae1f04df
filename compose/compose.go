// Package compose turns a Composition into a validated Design.
//
// Compose runs the whole pipeline in one synchronous pass: outline,
// ribbon hole, motifs, border and text, with every manufacturability
// check collected into the Design's Result. A failed check never aborts
// the pass, so callers can always inspect why a design is invalid.
package compose

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/constraints"
	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

// AutoHoleMargin is the distance of an automatically placed ribbon hole
// center below the top of the outline bounding box.
const AutoHoleMargin = 8.0

// designNamespace seeds the name-based design IDs.
var designNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gogpu/medal/design"))

// Compose builds and validates the design described by c against profile
// p. The only error is an unknown shape variant, wrapping
// shape.ErrUnknownVariant; every other problem lands in Design.Result.
//
// Compose is deterministic: identical inputs yield identical designs,
// including the ID.
func Compose(c Composition, p constraints.Profile) (*Design, error) {
	outline, err := shape.Generate(c.Shape, c.ShapeParams)
	if err != nil {
		return nil, fmt.Errorf("compose %q: %w", c.Name, err)
	}
	log := medal.Logger().With("design", c.Name)

	var b constraints.Builder
	b.Merge(constraints.ValidateOutline(outline, p))
	b.Merge(constraints.ValidateMaterial(c.Material, p))
	bounds := outline.BoundingBox()

	d := &Design{
		ID:       designID(c, p),
		Name:     c.Name,
		Event:    c.Event,
		Outline:  outline,
		Bounds:   bounds,
		Material: c.Material,
		Wood:     c.Wood,
	}

	if c.RibbonHole.Enabled {
		d.Hole = resolveHole(c.RibbonHole, outline, p)
		hp := p.Clone()
		hp.RibbonHoleDiameter = 2 * d.Hole.Radius
		b.Merge(constraints.ValidateHole(outline, d.Hole.Center, hp))
		log.Debug("ribbon hole placed", "x", d.Hole.Center.X, "y", d.Hole.Center.Y, "radius", d.Hole.Radius)
	}

	d.MotifLines = make([]medal.Polyline, 0)
	for i, m := range c.Motifs {
		lines, err := motif.Generate(m.Motif, m.Params)
		if err != nil {
			b.Error(constraints.CodeMotifFailed, "motif %d (%s): %v", i, m.Motif, err)
			continue
		}
		if m.Position != (medal.Point{}) {
			lines = medal.TranslateAll(lines, m.Position.X, m.Position.Y)
		}
		d.MotifLines = append(d.MotifLines, lines...)
	}
	b.Merge(constraints.ValidateMotifs(d.MotifLines, outline, p))
	d.BorderLines = motif.Border(outline, c.BorderInset)

	d.Texts = make([]TextPlacement, 0, len(c.Texts))
	for _, t := range c.Texts {
		pl := placeText(t, bounds)
		b.Merge(constraints.ValidateText(pl.Height, p))
		d.Texts = append(d.Texts, pl)
	}

	d.Result = b.Result()
	log.Debug("design composed",
		"id", d.ID.String(),
		"motif_lines", len(d.MotifLines),
		"border_lines", len(d.BorderLines),
		"texts", len(d.Texts),
		"warnings", len(d.Result.Warnings))
	if !d.Result.Valid {
		log.Warn("design invalid", "errors", len(d.Result.Errors))
	}
	return d, nil
}

func resolveHole(rh RibbonHole, outline medal.Ring, p constraints.Profile) *Hole {
	diameter := rh.Diameter
	if diameter <= 0 {
		diameter = p.RibbonHoleDiameter
	}
	center := shape.RibbonHolePosition(outline, AutoHoleMargin)
	if rh.Position != nil {
		center = *rh.Position
	}
	return &Hole{Center: center, Radius: diameter / 2}
}

// designID hashes the canonical JSON of the inputs. A composition that
// cannot be encoded (an unknown motif variant) hashes the encoding error
// instead, which is just as deterministic.
func designID(c Composition, p constraints.Profile) uuid.UUID {
	data, err := json.Marshal(struct {
		Composition Composition         `json:"composition"`
		Profile     constraints.Profile `json:"profile"`
	}{c, p})
	if err != nil {
		data = []byte(c.Name + "\x00" + err.Error())
	}
	return uuid.NewSHA1(designNamespace, data)
}
