package constraints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/medal"
)

// Thresholds shared by every profile.
const (
	// FragileAreaRatio is the share of area that must survive erosion by
	// half the bridge width before a shape is reported as fragile.
	FragileAreaRatio = 0.3

	// MinSurfaceArea is the blank area in mm² below which a medal is
	// reported as very small.
	MinSurfaceArea = 500.0

	// ReadableTextFactor scales MinTextHeight to the height below which
	// text is legal but hard to read.
	ReadableTextFactor = 1.5
)

// ValidateOutline checks a medal outline: geometry, work area, overall
// size, wall thickness and surface. A malformed ring stops the check
// after the geometry error.
func ValidateOutline(outline medal.Ring, p Profile) Result {
	var b Builder
	if err := outline.Validate(); err != nil {
		b.Error(CodeInvalidGeometry, "invalid geometry: %v", err)
		return b.Result()
	}

	bounds := outline.BoundingBox()
	width, height := bounds.Width(), bounds.Height()
	if width > p.MaxWidth {
		b.Error(CodeWidthExceeded, "width %.1f mm exceeds the %g mm work area", width, p.MaxWidth)
	}
	if height > p.MaxHeight {
		b.Error(CodeHeightExceeded, "height %.1f mm exceeds the %g mm work area", height, p.MaxHeight)
	}

	size := bounds.MaxDim()
	if size < p.MinMedalSize {
		b.Error(CodeTooSmall, "medal too small: %.1f mm < minimum %g mm", size, p.MinMedalSize)
	}
	if size > p.MaxMedalSize {
		b.Error(CodeTooLarge, "medal too large: %.1f mm > maximum %g mm", size, p.MaxMedalSize)
	}

	area := outline.Area()
	eroded := medal.BufferInward(outline, p.MinBridgeWidth/2)
	switch {
	case eroded.IsEmpty():
		b.Error(CodeTooThin, "shape too thin: walls under %g mm will not survive cutting", p.MinBridgeWidth)
	case eroded.Area() < area*FragileAreaRatio:
		b.Warn(CodeFragile, "some areas may be fragile after cutting (%.0f%% of the surface keeps a %g mm wall)",
			100*eroded.Area()/area, p.MinBridgeWidth)
	}

	if area < MinSurfaceArea {
		b.Warn(CodeSmallSurface, "very small surface: %.0f mm²", area)
	}
	return b.Result()
}

// ValidateHole checks a ribbon hole of the profile's diameter centered at
// center: it must lie fully inside the outline and keep the minimum
// margin to the edge.
func ValidateHole(outline medal.Ring, center medal.Point, p Profile) Result {
	var b Builder
	radius := p.RibbonHoleDiameter / 2
	if !outline.ContainsDisk(center, radius) {
		b.Error(CodeHoleOutside, "ribbon hole at (%.1f, %.1f) extends outside the medal", center.X, center.Y)
	}
	minDist := radius + p.RibbonHoleMinMargin
	if d := outline.DistanceToBoundary(center); d < minDist {
		b.Error(CodeHoleNearEdge, "ribbon hole too close to the edge: %.1f mm < minimum %.1f mm", d, minDist)
	}
	return b.Result()
}

// ValidateText checks a nominal engraved text height.
func ValidateText(height float64, p Profile) Result {
	var b Builder
	switch {
	case height < p.MinTextHeight:
		b.Error(CodeTextTooSmall, "text too small: %.1f mm < minimum %g mm", height, p.MinTextHeight)
	case height < p.MinTextHeight*ReadableTextFactor:
		b.Warn(CodeTextSmall, "small text (%.1f mm), reduced readability", height)
	}
	return b.Result()
}

// ValidateMaterial checks that thickness is a stock the profile supports.
// Zero means the material is not specified and passes.
func ValidateMaterial(thickness float64, p Profile) Result {
	var b Builder
	if thickness != 0 && !p.Supports(thickness) {
		b.Error(CodeUnsupportedMaterial, "material thickness %g mm not supported (available: %s mm)",
			thickness, formatList(p.MaterialThicknesses))
	}
	return b.Result()
}

// ValidateMotifs reports engraving that reaches into the safe margin
// along the outline or strokes smaller than the minimum detail size. It
// only ever warns: engraving never weakens the blank.
func ValidateMotifs(lines []medal.Polyline, outline medal.Ring, p Profile) Result {
	var b Builder
	var inMargin, tiny int
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if line.BoundingBox().MaxDim() < p.MinDetailSize {
			tiny++
		}
		for _, pt := range line {
			if !outline.Contains(pt) || outline.DistanceToBoundary(pt) < p.SafeMargin {
				inMargin++
				break
			}
		}
	}
	if inMargin > 0 {
		b.Warn(CodeMotifInMargin, "%d motif line(s) reach into the %g mm safe margin", inMargin, p.SafeMargin)
	}
	if tiny > 0 {
		b.Warn(CodeMotifTooSmall, "%d motif line(s) smaller than the %g mm minimum detail", tiny, p.MinDetailSize)
	}
	return b.Result()
}

func formatList(values []float64) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}
