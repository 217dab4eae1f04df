// Package export renders composed medal designs as SVG and PNG.
//
// Export performs no validation: it draws whatever the Design holds. Call
// compose.Compose first and check Design.Valid before sending a file to
// the laser.
package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/compose"
)

// svgWriter keeps the first write error, so drawing code can ignore
// errors until the end.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func points(pts []medal.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// WriteSVG writes d as an SVG document sized in millimeters. Geometry is
// drawn in a group flipped by scale(1,-1), so design coordinates keep Y
// pointing up; text is drawn outside it so glyphs stay upright.
func WriteSVG(w io.Writer, d *compose.Design, opts ...Option) error {
	o := newOptions(d.Wood, opts)
	s := &svgWriter{w: bufio.NewWriter(w)}
	page := o.page(d.Bounds)

	s.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%smm\" height=\"%smm\" viewBox=\"%s %s %s %s\">\n",
		num(page.Width()), num(page.Height()),
		num(page.Min.X), num(-page.Max.Y), num(page.Width()), num(page.Height()))
	s.printf("<title>%s</title>\n", escape(d.Name))

	if o.production {
		writeProduction(s, d)
	} else {
		writePreview(s, d, o)
	}
	s.printf("</svg>\n")

	if err := s.flush(); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	medal.Logger().Debug("svg written", "design", d.Name, "production", o.production)
	return nil
}

func writePreview(s *svgWriter, d *compose.Design, o options) {
	wood := o.resolveWood()
	outlineStroke := wood.Engrave
	if o.cutLines {
		outlineStroke = CutColor
	}

	s.printf("<g transform=\"scale(1,-1)\">\n")
	s.printf("<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		points(d.Outline), hex(wood.Fill), hex(outlineStroke), num(previewOutlineWidth))
	if d.Hole != nil {
		s.printf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"white\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(d.Hole.Center.X), num(d.Hole.Center.Y), num(d.Hole.Radius),
			hex(outlineStroke), num(previewHoleWidth))
	}
	writeLines(s, d.EngravedLines(), wood.Engrave, previewLineWidth)
	s.printf("</g>\n")

	writeTexts(s, d.Texts, wood.Engrave, true)
}

func writeProduction(s *svgWriter, d *compose.Design) {
	s.printf("<g transform=\"scale(1,-1)\">\n")
	s.printf("<g id=\"cut\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\">\n", hex(CutColor), num(productionWidth))
	s.printf("<polygon points=\"%s\"/>\n", points(d.Outline))
	if d.Hole != nil {
		s.printf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\"/>\n",
			num(d.Hole.Center.X), num(d.Hole.Center.Y), num(d.Hole.Radius))
	}
	s.printf("</g>\n")
	writeLines(s, d.EngravedLines(), EngraveColor, productionWidth)
	s.printf("</g>\n")

	writeTexts(s, d.Texts, EngraveColor, false)
}

func writeLines(s *svgWriter, lines []medal.Polyline, c color.RGBA, width float64) {
	s.printf("<g id=\"engrave\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" stroke-linejoin=\"round\">\n",
		hex(c), num(width))
	for _, l := range lines {
		if len(l) < 2 {
			continue
		}
		s.printf("<polyline points=\"%s\"/>\n", points(l))
	}
	s.printf("</g>\n")
}

// writeTexts draws text placements in flipped page coordinates. Curved
// text follows a half-circle path: the top arc runs left to right over
// the center, the bottom arc right to left under it.
func writeTexts(s *svgWriter, texts []compose.TextPlacement, c color.RGBA, curved bool) {
	for i, t := range texts {
		weight := "normal"
		if t.Bold {
			weight = "bold"
		}
		style := fmt.Sprintf("font-family=\"%s\" font-size=\"%smm\" font-weight=\"%s\" fill=\"%s\" text-anchor=\"middle\"",
			escape(t.FontFamily), num(t.Height), weight, hex(c))

		if !t.Curved {
			s.printf("<text x=\"%s\" y=\"%s\" %s>%s</text>\n",
				num(t.Position.X), num(-t.Position.Y), style, escape(t.Content))
			continue
		}
		if !curved {
			continue
		}
		id := fmt.Sprintf("text-arc-%d", i)
		s.printf("<path id=\"%s\" fill=\"none\" d=\"M %s,%s A %s,%s 0 0,1 %s,%s\"/>\n", id,
			num(t.ArcStart.X), num(-t.ArcStart.Y), num(t.Radius), num(t.Radius),
			num(t.ArcEnd.X), num(-t.ArcEnd.Y))
		s.printf("<text %s><textPath href=\"#%s\" startOffset=\"50%%\">%s</textPath></text>\n",
			style, id, escape(t.Content))
	}
}
