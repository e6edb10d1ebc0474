// Implements a SVG backend to render Sierpinski triangles,
// writing one path element per paint operation.
package fractalsvg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/benoitkugler/sierpinski/fractaldraw"
)

var _ fractal.Surface = (*Surface)(nil) // assert interface conformance

type element struct {
	d      string
	stroke bool // else fill
}

type Surface struct {
	path     fractaldraw.Path
	style    fractaldraw.Style
	elements []element

	width, height float64
}

func NewSurface(width, height float64, style fractaldraw.Style) *Surface {
	return &Surface{style: style, width: width, height: height}
}

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) BeginPath() { s.path.BeginPath() }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) ClosePath() { s.path.ClosePath() }

func (s *Surface) Stroke() { s.paint(true) }

func (s *Surface) Fill() { s.paint(false) }

func (s *Surface) paint(stroke bool) {
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("svg: painting an empty path", "stroke", stroke)
		return
	}
	s.elements = append(s.elements, element{d: s.path.ToSVGPath(), stroke: stroke})
}

// Len returns the number of path elements.
func (s *Surface) Len() int { return len(s.elements) }

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// opacity returns the SVG opacity of `a`, or an empty string if opaque
func opacity(attr string, a uint8) string {
	if a == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, attr, float64(a)/255)
}

// WriteTo writes the SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countWriter{w: bw}

	cw.printf(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	cw.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		s.width, s.height, s.width, s.height)
	if bg := s.style.Background; bg.A != 0 {
		cw.printf(`<rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
			fractaldraw.FormatColor(opaque(bg)), opacity("fill-opacity", bg.A))
	}

	stroke, fill := s.style.StrokeColor, s.style.FillColor
	cw.printf(`<g stroke-width="%g" stroke-linejoin="%s">`+"\n", s.style.LineWidth, s.style.Join)
	for _, el := range s.elements {
		if el.stroke {
			cw.printf(`<path d="%s" fill="none" stroke="%s"%s/>`+"\n",
				el.d, fractaldraw.FormatColor(opaque(stroke)), opacity("stroke-opacity", stroke.A))
		} else {
			cw.printf(`<path d="%s" fill="%s"%s stroke="none"/>`+"\n",
				el.d, fractaldraw.FormatColor(opaque(fill)), opacity("fill-opacity", fill.A))
		}
	}
	cw.printf("</g>\n</svg>\n")

	if cw.err != nil {
		return cw.n, fmt.Errorf("can't write SVG document: %s", cw.err)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("can't write SVG document: %s", err)
	}
	return cw.n, nil
}

// RenderSVG renders a triangle of the given depth
// in a `width` x `height` document, written to `w`.
func RenderSVG(w io.Writer, width, height float64, style fractaldraw.Style, opts fractaldraw.Options) error {
	s := NewSurface(width, height, style)
	fractaldraw.Render(s, width, height, opts)
	_, err := s.WriteTo(w)
	return err
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

// printf writes to the underlying writer, until the first error
func (c *countWriter) printf(format string, a ...interface{}) {
	fmt.Fprintf(c, format, a...)
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
