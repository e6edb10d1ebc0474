// Implements a PDF backend to render Sierpinski triangles,
// by wrapping github.com/benoitkugler/pdf.
package fractalpdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/golang/geo/r2"
)

var _ fractal.Surface = (*Surface)(nil) // assert interface conformance

// Surface writes a single page content stream.
// Coordinates are flipped so that the y axis goes down,
// as for the other backends.
type Surface struct {
	pdf   *contentstream.Appearance
	path  fractaldraw.Path
	style fractaldraw.Style

	width, height float64
	// Compress enables Flate compression of the page content.
	Compress bool
}

// NewSurface returns a surface for a page of `width` x `height` points.
func NewSurface(width, height float64, style fractaldraw.Style) *Surface {
	app := contentstream.NewAppearance(width, height)
	s := &Surface{pdf: &app, style: style, width: width, height: height}

	s.pdf.Ops(contentstream.OpSave{})
	if style.Background.A != 0 {
		s.setFill(style.Background)
		s.pdf.Ops(
			contentstream.OpRectangle{X: 0, Y: 0, W: width, H: height},
			contentstream.OpFill{},
		)
	}
	s.pdf.Ops(
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}},
		contentstream.OpSetLineWidth{W: style.LineWidth},
		contentstream.OpSetLineJoin{Style: joinStyle(style.Join)},
	)
	return s
}

func joinStyle(j fractaldraw.JoinMode) uint8 {
	switch j {
	case fractaldraw.Round:
		return 1
	case fractaldraw.Bevel:
		return 2
	default: // miter
		return 0
	}
}

func (s *Surface) setFill(c color.NRGBA) {
	s.pdf.SetColorFill(c)
	if c.A != 0xff {
		s.pdf.SetFillAlpha(float64(c.A) / 255)
	}
}

func (s *Surface) setStroke(c color.NRGBA) {
	s.pdf.SetColorStroke(c)
	if c.A != 0xff {
		s.pdf.SetStrokeAlpha(float64(c.A) / 255)
	}
}

// pather writes the path operators
type pather struct {
	pdf *contentstream.Appearance
}

func (p pather) Start(a r2.Point) { p.pdf.Ops(contentstream.OpMoveTo{X: a.X, Y: a.Y}) }

func (p pather) Line(b r2.Point) { p.pdf.Ops(contentstream.OpLineTo{X: b.X, Y: b.Y}) }

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) BeginPath() { s.path.BeginPath() }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) ClosePath() { s.path.ClosePath() }

// Stroke writes the current path, since painting
// ends a path in a PDF content stream.
func (s *Surface) Stroke() {
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("pdf: stroking an empty path")
		return
	}
	s.setStroke(s.style.StrokeColor)
	s.path.AddTo(pather{s.pdf})
	s.pdf.Ops(contentstream.OpStroke{})
}

func (s *Surface) Fill() {
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("pdf: filling an empty path")
		return
	}
	s.setFill(s.style.FillColor)
	s.path.AddTo(pather{s.pdf})
	s.pdf.Ops(contentstream.OpFill{})
}

// Write closes the content stream and writes a one page
// document to `w`. The surface should not be used afterwards.
func (s *Surface) Write(w io.Writer) error {
	s.pdf.Ops(contentstream.OpRestore{})

	page := new(model.PageObject)
	s.pdf.ApplyToPageObject(page, s.Compress)

	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page)
	if err := doc.Write(w, nil); err != nil {
		return fmt.Errorf("can't write PDF document: %s", err)
	}
	return nil
}

// RenderPDF renders a triangle of the given depth
// on a `width` x `height` page, written to `w`.
func RenderPDF(w io.Writer, width, height float64, style fractaldraw.Style, opts fractaldraw.Options) error {
	s := NewSurface(width, height, style)
	s.Compress = true
	fractaldraw.Render(s, width, height, opts)
	return s.Write(w)
}
