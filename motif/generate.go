// Package motif generates decorative line art for engraving.
//
// Motifs are open polylines in motif-local coordinates centered on the
// origin. They carry no fill; the renderer strokes them with the
// engraving width.
package motif

import (
	"fmt"

	"github.com/gogpu/medal"
)

type generator func(p Params) ([]medal.Polyline, error)

// generators is indexed by Variant. Every declared variant must have an
// entry.
var generators = [variantCount]generator{
	Mountains:    infallible(mountains),
	Waves:        infallible(waves),
	Laurel:       infallible(laurel),
	Rays:         infallible(rays),
	Chevrons:     infallible(chevrons),
	Trees:        infallible(trees),
	RunningTrack: infallible(runningTrack),
	FinishLine:   infallible(finishLine),
	QRCode:       qrCode,
}

func infallible(fn func(Params) []medal.Polyline) generator {
	return func(p Params) ([]medal.Polyline, error) {
		return fn(p), nil
	}
}

// Generate builds the polylines of motif v. Zero fields of p take their
// defaults, and a non-zero offset moves every point afterwards.
//
// An unknown variant returns an empty list together with
// ErrUnknownVariant, so callers that only range over the lines keep
// working while a typo in a variant name is still reported.
func Generate(v Variant, p Params) ([]medal.Polyline, error) {
	if !v.Valid() {
		medal.Logger().Warn("unknown motif variant", "variant", int(v))
		return []medal.Polyline{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	p = p.withDefaults()
	lines, err := generators[v](p)
	if err != nil {
		return []medal.Polyline{}, fmt.Errorf("motif %s: %w", v, err)
	}
	if p.OffsetX != 0 || p.OffsetY != 0 {
		lines = medal.TranslateAll(lines, p.OffsetX, p.OffsetY)
	}
	medal.Logger().Debug("motif generated",
		"variant", v.String(), "lines", len(lines), "detail", p.Detail)
	return lines, nil
}
