// Implements a surface backend which records the draw
// operations, so that they can be inspected or replayed
// on another surface.
package fractalrecord

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/sierpinski/fractal"
)

var _ fractal.Surface = (*Recorder)(nil) // assert interface conformance

type kind uint8

const (
	kindMoveTo kind = iota
	kindBeginPath
	kindLineTo
	kindClosePath
	kindStroke
	kindFill
)

// Command is one recorded surface call.
type Command interface {
	kind() kind
	fmt.Stringer
}

type MoveTo struct{ X, Y float64 }

type BeginPath struct{}

type LineTo struct{ X, Y float64 }

type ClosePath struct{}

type Stroke struct{}

type Fill struct{}

func (MoveTo) kind() kind    { return kindMoveTo }
func (BeginPath) kind() kind { return kindBeginPath }
func (LineTo) kind() kind    { return kindLineTo }
func (ClosePath) kind() kind { return kindClosePath }
func (Stroke) kind() kind    { return kindStroke }
func (Fill) kind() kind      { return kindFill }

func (op MoveTo) String() string { return fmt.Sprintf("M%g,%g", op.X, op.Y) }
func (BeginPath) String() string { return "B" }
func (op LineTo) String() string { return fmt.Sprintf("L%g,%g", op.X, op.Y) }
func (ClosePath) String() string { return "Z" }
func (Stroke) String() string    { return "S" }
func (Fill) String() string      { return "F" }

// Recorder is a surface storing the commands it receives.
// The zero value is ready to use.
type Recorder struct {
	commands []Command
}

func (r *Recorder) MoveTo(x, y float64) { r.commands = append(r.commands, MoveTo{x, y}) }
func (r *Recorder) BeginPath()          { r.commands = append(r.commands, BeginPath{}) }
func (r *Recorder) LineTo(x, y float64) { r.commands = append(r.commands, LineTo{x, y}) }
func (r *Recorder) ClosePath()          { r.commands = append(r.commands, ClosePath{}) }
func (r *Recorder) Stroke()             { r.commands = append(r.commands, Stroke{}) }
func (r *Recorder) Fill()               { r.commands = append(r.commands, Fill{}) }

// Commands returns the recorded commands, which should not be modified.
func (r *Recorder) Commands() []Command { return r.commands }

// Reset discards the recorded commands.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// Replay sends the recorded commands to `s`, in order.
func (r *Recorder) Replay(s fractal.Surface) {
	for _, op := range r.commands {
		switch op := op.(type) {
		case MoveTo:
			s.MoveTo(op.X, op.Y)
		case BeginPath:
			s.BeginPath()
		case LineTo:
			s.LineTo(op.X, op.Y)
		case ClosePath:
			s.ClosePath()
		case Stroke:
			s.Stroke()
		case Fill:
			s.Fill()
		}
	}
}

// Stats counts the recorded commands by kind.
type Stats struct {
	MoveTo, BeginPath, LineTo, ClosePath int
	// Stroke is also the number of drawn triangles.
	Stroke, Fill int
}

func (s Stats) Total() int {
	return s.MoveTo + s.BeginPath + s.LineTo + s.ClosePath + s.Stroke + s.Fill
}

func (s Stats) String() string {
	return fmt.Sprintf("%d commands: %d move, %d begin, %d line, %d close, %d stroke, %d fill",
		s.Total(), s.MoveTo, s.BeginPath, s.LineTo, s.ClosePath, s.Stroke, s.Fill)
}

func (r *Recorder) Stats() Stats {
	var out Stats
	for _, op := range r.commands {
		switch op.kind() {
		case kindMoveTo:
			out.MoveTo++
		case kindBeginPath:
			out.BeginPath++
		case kindLineTo:
			out.LineTo++
		case kindClosePath:
			out.ClosePath++
		case kindStroke:
			out.Stroke++
		case kindFill:
			out.Fill++
		}
	}
	return out
}

// String returns one command per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.commands {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
