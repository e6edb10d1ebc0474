// Implements the geometry of the Sierpinski triangle and its
// recursive subdivision. Drawing is delegated to a Surface,
// such as a rasterizer or a pdf writer.
package fractal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Surface knows how to do the actual draw operations,
// with the semantic of an HTML canvas 2D context.
type Surface interface {
	// MoveTo starts a new sub path at (x, y)
	MoveTo(x, y float64)

	// BeginPath discards the current path
	BeginPath()

	// LineTo adds a line from the current point to (x, y)
	LineTo(x, y float64)

	// ClosePath joins the current sub path to its start point
	ClosePath()

	// Stroke outlines the current path
	Stroke()

	// Fill paints the interior of the current path
	Fill()
}

// Triangle is a point-up triangle, described by its apex
// and its height. The base is horizontal, below the apex.
// The surface is borrowed: a Triangle never owns it.
type Triangle struct {
	apex    r2.Point
	height  float64
	surface Surface
}

// NewTriangle returns a triangle drawing on `s`.
// It panics if height is negative or NaN.
func NewTriangle(apex r2.Point, height float64, s Surface) Triangle {
	if height < 0 || math.IsNaN(height) {
		panic(fmt.Sprintf("fractal: invalid triangle height %v", height))
	}
	return Triangle{apex: apex, height: height, surface: s}
}

func (t Triangle) Apex() r2.Point { return t.apex }

func (t Triangle) Height() float64 { return t.height }

func (t Triangle) Surface() Surface { return t.surface }

// BaseWidth returns half the height.
// This proportion is kept from the first renderer, not the
// width of an equilateral triangle.
func (t Triangle) BaseWidth() float64 { return t.height / 2 }

func (t Triangle) HalfBaseWidth() float64 { return t.BaseWidth() / 2 }

func (t Triangle) HalfHeight() float64 { return t.height / 2 }

// Left returns the left vertex of the base.
func (t Triangle) Left() r2.Point {
	return r2.Point{X: t.apex.X - t.BaseWidth(), Y: t.apex.Y + t.height}
}

// Right returns the right vertex of the base.
func (t Triangle) Right() r2.Point {
	return r2.Point{X: t.apex.X + t.BaseWidth(), Y: t.apex.Y + t.height}
}

// Bounds returns the smallest rectangle containing the three vertices.
func (t Triangle) Bounds() r2.Rect {
	return r2.RectFromPoints(t.apex, t.Left(), t.Right())
}

// TopSub shares the apex of `t`, with half its height.
func (t Triangle) TopSub() Triangle {
	return Triangle{apex: t.apex, height: t.HalfHeight(), surface: t.surface}
}

func (t Triangle) LeftSub() Triangle {
	apex := r2.Point{X: t.apex.X - t.HalfBaseWidth(), Y: t.apex.Y + t.HalfHeight()}
	return Triangle{apex: apex, height: t.HalfHeight(), surface: t.surface}
}

func (t Triangle) RightSub() Triangle {
	apex := r2.Point{X: t.apex.X + t.HalfBaseWidth(), Y: t.apex.Y + t.HalfHeight()}
	return Triangle{apex: apex, height: t.HalfHeight(), surface: t.surface}
}

// Subdivide returns the top, left and right sub triangles, in drawing order.
func (t Triangle) Subdivide() [3]Triangle {
	return [3]Triangle{t.TopSub(), t.LeftSub(), t.RightSub()}
}

// Draw outlines the triangle on its surface, and returns it
// so that calls may be chained, as in t.Draw().Split(6).
//
// The pen is moved to the apex before the path is begun.
// On a canvas, BeginPath discards that move, and the first
// LineTo starts the path instead; the closed outline is the same.
func (t Triangle) Draw() Triangle {
	left, right := t.Left(), t.Right()
	s := t.surface

	s.MoveTo(t.apex.X, t.apex.Y)
	s.BeginPath()
	s.LineTo(left.X, left.Y)
	s.LineTo(right.X, right.Y)
	s.LineTo(t.apex.X, t.apex.Y)
	s.ClosePath()
	s.Stroke()

	return t
}

// Fill paints the current path of the surface, which
// is the outline of `t` right after t.Draw().
func (t Triangle) Fill() {
	t.surface.Fill()
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{apex: (%g, %g), height: %g}", t.apex.X, t.apex.Y, t.height)
}
