package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/compose"
)

// DefaultScale is the PNG resolution in pixels per millimeter.
const DefaultScale = 5.0

// raster maps design millimeters onto image pixels, flipping Y.
type raster struct {
	page  medal.Rect
	scale float64
	img   *image.RGBA

	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

func newRaster(page medal.Rect, scale float64) *raster {
	w := int(page.Width()*scale + 0.5)
	h := int(page.Height()*scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &raster{
		page:   page,
		scale:  scale,
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
	}
}

func (r *raster) px(p medal.Point) fixed.Point26_6 {
	return rasterx.ToFixedP((p.X-r.page.Min.X)*r.scale, (r.page.Max.Y-p.Y)*r.scale)
}

func (r *raster) fillRing(ring medal.Ring, c color.Color) {
	if len(ring) < 3 {
		return
	}
	r.filler.Start(r.px(ring[0]))
	for _, p := range ring[1:] {
		r.filler.Line(r.px(p))
	}
	r.filler.Stop(true)
	r.filler.SetColor(c)
	r.filler.Draw()
	r.filler.Clear()
}

func (r *raster) fillDisk(center medal.Point, radius float64, c color.Color) {
	cx, cy := (center.X-r.page.Min.X)*r.scale, (r.page.Max.Y-center.Y)*r.scale
	rasterx.AddCircle(cx, cy, radius*r.scale, r.filler)
	r.filler.SetColor(c)
	r.filler.Draw()
	r.filler.Clear()
}

func (r *raster) setStroke(mm float64) {
	width := fixed.Int26_6(mm * r.scale * 64)
	r.dasher.SetStroke(width, 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
}

// strokePath strokes pts, closing the path when closed is set.
func (r *raster) strokePath(pts []medal.Point, closed bool) {
	if len(pts) < 2 {
		return
	}
	r.dasher.Start(r.px(pts[0]))
	for _, p := range pts[1:] {
		r.dasher.Line(r.px(p))
	}
	r.dasher.Stop(closed)
}

func (r *raster) strokeCircle(center medal.Point, radius float64) {
	cx, cy := (center.X-r.page.Min.X)*r.scale, (r.page.Max.Y-center.Y)*r.scale
	rasterx.AddCircle(cx, cy, radius*r.scale, r.dasher)
}

func (r *raster) draw(c color.Color) {
	r.dasher.SetColor(c)
	r.dasher.Draw()
	r.dasher.Clear()
}

// WritePNG rasterizes d at scale pixels per millimeter and encodes it as
// PNG. A non-positive scale means DefaultScale. Text is not drawn.
func WritePNG(w io.Writer, d *compose.Design, scale float64, opts ...Option) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	o := newOptions(d.Wood, opts)
	page := o.page(d.Bounds)
	if page.Width() <= 0 || page.Height() <= 0 {
		return fmt.Errorf("export: empty page for design %q", d.Name)
	}
	r := newRaster(page, scale)

	if o.production {
		r.setStroke(productionWidth)
		r.strokePath(d.Outline, true)
		if d.Hole != nil {
			r.strokeCircle(d.Hole.Center, d.Hole.Radius)
		}
		r.draw(CutColor)
		for _, l := range d.EngravedLines() {
			r.strokePath(l, false)
		}
		r.draw(EngraveColor)
	} else {
		wood := o.resolveWood()
		outlineStroke := wood.Engrave
		if o.cutLines {
			outlineStroke = CutColor
		}
		r.fillRing(d.Outline, wood.Fill)
		if d.Hole != nil {
			r.fillDisk(d.Hole.Center, d.Hole.Radius, color.White)
		}

		r.setStroke(previewOutlineWidth)
		r.strokePath(d.Outline, true)
		r.draw(outlineStroke)
		if d.Hole != nil {
			r.setStroke(previewHoleWidth)
			r.strokeCircle(d.Hole.Center, d.Hole.Radius)
			r.draw(outlineStroke)
		}

		r.setStroke(previewLineWidth)
		for _, l := range d.EngravedLines() {
			r.strokePath(l, false)
		}
		r.draw(wood.Engrave)
	}

	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	medal.Logger().Debug("png written",
		"design", d.Name, "width", r.img.Bounds().Dx(), "height", r.img.Bounds().Dy())
	return nil
}
