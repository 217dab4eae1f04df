package motif

import "github.com/gogpu/medal"

// Border returns an engraved frame that follows outline at inset
// millimeters inside it. Every ring of the eroded outline becomes one
// closed polyline. An outline too small for the inset yields no lines.
func Border(outline medal.Ring, inset float64) []medal.Polyline {
	if inset <= 0 {
		return nil
	}
	region := medal.BufferInward(outline, inset)
	lines := make([]medal.Polyline, 0, len(region))
	for _, ring := range region {
		lines = append(lines, medal.Polyline(ring.Closed()))
	}
	return lines
}
