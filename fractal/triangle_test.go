package fractal

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/golang/geo/r2"
)

// callLog records surface calls as strings
type callLog struct {
	calls []string
}

func (c *callLog) MoveTo(x, y float64) { c.calls = append(c.calls, fmt.Sprintf("M%g,%g", x, y)) }
func (c *callLog) BeginPath()          { c.calls = append(c.calls, "B") }
func (c *callLog) LineTo(x, y float64) { c.calls = append(c.calls, fmt.Sprintf("L%g,%g", x, y)) }
func (c *callLog) ClosePath()          { c.calls = append(c.calls, "Z") }
func (c *callLog) Stroke()             { c.calls = append(c.calls, "S") }
func (c *callLog) Fill()               { c.calls = append(c.calls, "F") }

func (c *callLog) count(call string) int {
	n := 0
	for _, s := range c.calls {
		if s == call {
			n++
		}
	}
	return n
}

func TestDerivedSizes(t *testing.T) {
	for _, h := range []float64{0, 1, 3, 600, 1e6} {
		tr := NewTriangle(r2.Point{}, h, nil)
		if tr.BaseWidth() != h/2 {
			t.Errorf("base width of %g: got %g", h, tr.BaseWidth())
		}
		if tr.HalfBaseWidth() != h/4 {
			t.Errorf("half base width of %g: got %g", h, tr.HalfBaseWidth())
		}
		if tr.HalfHeight() != h/2 {
			t.Errorf("half height of %g: got %g", h, tr.HalfHeight())
		}
	}
}

func TestVertices(t *testing.T) {
	tr := NewTriangle(r2.Point{X: 10, Y: 20}, 8, nil)
	if got, exp := tr.Left(), (r2.Point{X: 6, Y: 28}); got != exp {
		t.Errorf("left: expected %v, got %v", exp, got)
	}
	if got, exp := tr.Right(), (r2.Point{X: 14, Y: 28}); got != exp {
		t.Errorf("right: expected %v, got %v", exp, got)
	}
	bounds := tr.Bounds()
	if bounds.Lo() != (r2.Point{X: 6, Y: 20}) || bounds.Hi() != (r2.Point{X: 14, Y: 28}) {
		t.Errorf("unexpected bounds %v", bounds)
	}
}

func TestSubTriangles(t *testing.T) {
	tr := NewTriangle(r2.Point{X: 300, Y: 0}, 600, nil)
	for i, exp := range [3]r2.Point{{X: 300, Y: 0}, {X: 150, Y: 300}, {X: 450, Y: 300}} {
		sub := tr.Subdivide()[i]
		if sub.Apex() != exp {
			t.Errorf("sub triangle %d: expected apex %v, got %v", i, exp, sub.Apex())
		}
		if sub.Height() != 300 {
			t.Errorf("sub triangle %d: expected height 300, got %g", i, sub.Height())
		}
	}
	if tr.TopSub() != tr.Subdivide()[0] || tr.LeftSub() != tr.Subdivide()[1] || tr.RightSub() != tr.Subdivide()[2] {
		t.Error("Subdivide is not consistent with TopSub, LeftSub and RightSub")
	}
}

func TestInvalidHeight(t *testing.T) {
	for _, h := range []float64{-1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for height %v", h)
				}
			}()
			NewTriangle(r2.Point{}, h, nil)
		}()
	}
}

func TestDraw(t *testing.T) {
	var log callLog
	tr := NewTriangle(r2.Point{X: 300, Y: 0}, 600, &log)
	if got := tr.Draw(); got != tr {
		t.Errorf("Draw should return its receiver, got %v", got)
	}
	exp := []string{"M300,0", "B", "L0,600", "L600,600", "L300,0", "Z", "S"}
	if !reflect.DeepEqual(log.calls, exp) {
		t.Errorf("expected %v, got %v", exp, log.calls)
	}

	// drawing is repeatable
	tr.Draw()
	if !reflect.DeepEqual(log.calls[7:], exp) {
		t.Errorf("second draw: expected %v, got %v", exp, log.calls[7:])
	}
	if tr.Apex() != (r2.Point{X: 300, Y: 0}) || tr.Height() != 600 {
		t.Errorf("triangle modified by Draw: %v", tr)
	}
}

func TestFill(t *testing.T) {
	var log callLog
	NewTriangle(r2.Point{X: 1, Y: 1}, 2, &log).Fill()
	if !reflect.DeepEqual(log.calls, []string{"F"}) {
		t.Errorf("unexpected calls %v", log.calls)
	}
}
