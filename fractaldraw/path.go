package fractaldraw

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
)

// This file defines the path model shared by the painting backends.

// Subpath is a polyline, optionally closed.
type Subpath struct {
	Points []r2.Point
	Closed bool
}

// Path accumulates the commands sent to a surface between two
// BeginPath calls, following the rules of a canvas 2D context:
//   - BeginPath discards every sub path
//   - LineTo without a current point starts a sub path at that point
//   - ClosePath starts a new sub path at the start of the closed one
//
// Painting does not consume the path.
type Path struct {
	subpaths []Subpath
}

func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// BeginPath discards the sub paths.
func (p *Path) BeginPath() {
	p.subpaths = p.subpaths[:0]
}

// MoveTo starts a new sub path.
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []r2.Point{{X: x, Y: y}}})
}

// LineTo adds a segment to the current sub path.
func (p *Path) LineTo(x, y float64) {
	cur := p.current()
	if cur == nil {
		p.MoveTo(x, y)
		return
	}
	cur.Points = append(cur.Points, r2.Point{X: x, Y: y})
}

// ClosePath marks the current sub path as closed.
func (p *Path) ClosePath() {
	cur := p.current()
	if cur == nil {
		return
	}
	cur.Closed = true
	start := cur.Points[0]
	p.MoveTo(start.X, start.Y)
}

// Subpaths returns the sub paths with at least one segment.
// The returned slice must not be modified.
func (p *Path) Subpaths() []Subpath {
	out := make([]Subpath, 0, len(p.subpaths))
	for _, sp := range p.subpaths {
		if len(sp.Points) >= 2 {
			out = append(out, sp)
		}
	}
	return out
}

// IsEmpty returns true if nothing would be painted.
func (p *Path) IsEmpty() bool {
	for _, sp := range p.subpaths {
		if len(sp.Points) >= 2 {
			return false
		}
	}
	return true
}

// Adder is implemented by the backends consuming a Path.
type Adder interface {
	// Start starts a new sub path at the given point.
	Start(a r2.Point)
	// Line adds a line segment to the sub path
	Line(b r2.Point)
	// Stop ends the sub path, joining its ends if `closeLoop` is true
	Stop(closeLoop bool)
}

// AddTo replays the sub paths on `a`.
func (p *Path) AddTo(a Adder) {
	for _, sp := range p.Subpaths() {
		a.Start(sp.Points[0])
		for _, pt := range sp.Points[1:] {
			a.Line(pt)
		}
		a.Stop(sp.Closed)
	}
}

// ToSVGPath returns a string representation of the path,
// suitable for the 'd' attribute of a svg path element.
func (p *Path) ToSVGPath() string {
	var chunks []string
	for _, sp := range p.Subpaths() {
		chunks = append(chunks, fmt.Sprintf("M%4.3f,%4.3f", sp.Points[0].X, sp.Points[0].Y))
		for _, pt := range sp.Points[1:] {
			chunks = append(chunks, fmt.Sprintf("L%4.3f,%4.3f", pt.X, pt.Y))
		}
		if sp.Closed {
			chunks = append(chunks, "Z")
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p *Path) String() string {
	return p.ToSVGPath()
}
