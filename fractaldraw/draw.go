// Given a target size and a depth, implements how to
// draw a Sierpinski triangle on a surface.
// This requires a backend implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package fractaldraw

import (
	"log/slog"

	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/golang/geo/r2"
)

// MaxDepth bounds the depth accepted by the configuration and the server.
// Deeper triangles are smaller than a pixel for any sensible image,
// and a depth of 12 already draws 797160 triangles.
const MaxDepth = 12

// Options tunes Render.
type Options struct {
	Depth int
	// FillRoot fills the outline of the root triangle,
	// before it is split.
	FillRoot bool
	// Iterative uses an explicit stack instead of recursion.
	Iterative bool
}

// Render draws the root triangle, with its apex at the top center of
// a `width` x `height` region and spanning its full height,
// then splits it `opts.Depth` times.
func Render(s fractal.Surface, width, height float64, opts Options) fractal.Triangle {
	logger := Logger()
	logger.Debug("render start",
		slog.Float64("width", width), slog.Float64("height", height),
		slog.Int("depth", opts.Depth), slog.Int("triangles", 1+fractal.DrawCount(opts.Depth)))

	root := fractal.NewTriangle(r2.Point{X: width / 2, Y: 0}, height, s).Draw()
	if opts.FillRoot {
		root.Fill()
	}
	if opts.Iterative {
		root.SplitStack(opts.Depth)
	} else {
		root.Split(opts.Depth)
	}

	logger.Debug("render done", slog.Int("depth", opts.Depth))
	return root
}
