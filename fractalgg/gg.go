// Implements a backend rendering Sierpinski triangles
// with the gogpu/gg 2D graphics library.
package fractalgg

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/gogpu/gg"
	"github.com/golang/geo/r2"
)

var _ fractal.Surface = (*Surface)(nil) // assert interface conformance

// Surface paints on a gg.Context.
// The first painting error is kept and returned by Err;
// the following paint operations are then skipped.
type Surface struct {
	dc    *gg.Context
	path  fractaldraw.Path
	style fractaldraw.Style
	err   error
}

var joinToJoin = [...]gg.LineJoin{
	fractaldraw.Miter: gg.LineJoinMiter,
	fractaldraw.Round: gg.LineJoinRound,
	fractaldraw.Bevel: gg.LineJoinBevel,
}

// NewSurface creates a `width` x `height` context.
// Close should be called when done.
func NewSurface(width, height int, style fractaldraw.Style) *Surface {
	dc := gg.NewContext(width, height)
	if style.Background.A != 0 {
		dc.ClearWithColor(gg.FromColor(style.Background))
	}
	dc.SetLineWidth(style.LineWidth)
	dc.SetLineJoin(joinToJoin[style.Join])
	return &Surface{dc: dc, style: style}
}

// pather sends the path to the context
type pather struct {
	dc *gg.Context
}

func (p pather) Start(a r2.Point) { p.dc.MoveTo(a.X, a.Y) }

func (p pather) Line(b r2.Point) { p.dc.LineTo(b.X, b.Y) }

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.dc.ClosePath()
	}
}

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) BeginPath() { s.path.BeginPath() }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) ClosePath() { s.path.ClosePath() }

func (s *Surface) Stroke() {
	s.paint("stroke", s.style.StrokeColor, s.dc.Stroke)
}

func (s *Surface) Fill() {
	s.paint("fill", s.style.FillColor, s.dc.Fill)
}

// paint replays the path on the context, which
// clears it after painting
func (s *Surface) paint(op string, c color.NRGBA, do func() error) {
	if s.err != nil {
		return
	}
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("gg: painting an empty path", "op", op)
		return
	}
	s.dc.ClearPath()
	s.path.AddTo(pather{s.dc})
	s.dc.SetColor(c)
	if err := do(); err != nil {
		s.err = fmt.Errorf("gg %s: %w", op, err)
		fractaldraw.Logger().Warn("gg: painting failed", "op", op, "err", err)
	}
}

// Err returns the first painting error, if any.
func (s *Surface) Err() error { return s.err }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the rendered image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }

// RasterImage renders a triangle of the given depth
// into a new `width` x `height` image and returns it.
func RasterImage(width, height int, style fractaldraw.Style, opts fractaldraw.Options) (image.Image, error) {
	s := NewSurface(width, height, style)
	defer s.Close()
	fractaldraw.Render(s, float64(width), float64(height), opts)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Image(), nil
}
