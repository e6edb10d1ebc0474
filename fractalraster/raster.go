// Implements a raster backend to render Sierpinski triangles,
// by wrapping rasterx.
package fractalraster

import (
	"image"

	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/golang/geo/r2"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ fractal.Surface = (*Surface)(nil) // assert interface conformance

type Surface struct {
	img    draw.Image
	path   fractaldraw.Path
	style  fractaldraw.Style
	dasher *rasterx.Dasher // strokes
	filler *rasterx.Filler // we use separated instance
}

// NewSurface returns a surface painting on `img`, whose
// bounds should start at (0, 0).
// The style background, if not transparent, is painted right away.
func NewSurface(img draw.Image, style fractaldraw.Style) *Surface {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	s := &Surface{
		img:    img,
		style:  style,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
	if style.Background.A != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	s.dasher.SetStroke(fToFixed(style.LineWidth), fToFixed(4), rasterx.ButtCap, nil,
		rasterx.FlatGap, joinToJoin[style.Join], nil, 0)
	return s
}

// RasterImage renders a triangle of the given depth
// into a new `width` x `height` image and returns it.
func RasterImage(width, height int, style fractaldraw.Style, opts fractaldraw.Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fractaldraw.Render(NewSurface(img, style), float64(width), float64(height), opts)
	return img
}

// Image returns the destination image.
func (s *Surface) Image() draw.Image { return s.img }

var joinToJoin = [...]rasterx.JoinMode{
	fractaldraw.Miter: rasterx.Miter,
	fractaldraw.Round: rasterx.Round,
	fractaldraw.Bevel: rasterx.Bevel,
}

func fToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func toFixed(p r2.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fToFixed(p.X), Y: fToFixed(p.Y)}
}

// adder sends the path to rasterx
type adder struct {
	r rasterx.Adder
}

func (a adder) Start(p r2.Point)    { a.r.Start(toFixed(p)) }
func (a adder) Line(p r2.Point)     { a.r.Line(toFixed(p)) }
func (a adder) Stop(closeLoop bool) { a.r.Stop(closeLoop) }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) BeginPath() { s.path.BeginPath() }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) ClosePath() { s.path.ClosePath() }

func (s *Surface) Stroke() {
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("raster: stroking an empty path")
		return
	}
	s.dasher.Clear()
	s.path.AddTo(adder{s.dasher})
	s.dasher.SetColor(s.style.StrokeColor)
	s.dasher.Draw()
}

func (s *Surface) Fill() {
	if s.path.IsEmpty() {
		fractaldraw.Logger().Warn("raster: filling an empty path")
		return
	}
	s.filler.Clear()
	s.filler.SetWinding(true)
	s.path.AddTo(adder{s.filler})
	s.filler.SetColor(s.style.FillColor)
	s.filler.Draw()
}
