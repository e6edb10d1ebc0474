package fractaldraw

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/golang/geo/r2"
)

type adderLog []string

func (a *adderLog) Start(p r2.Point) { *a = append(*a, fmt.Sprintf("start %g,%g", p.X, p.Y)) }
func (a *adderLog) Line(p r2.Point)  { *a = append(*a, fmt.Sprintf("line %g,%g", p.X, p.Y)) }
func (a *adderLog) Stop(closeLoop bool) {
	if closeLoop {
		*a = append(*a, "close")
	} else {
		*a = append(*a, "stop")
	}
}

func TestTriangleOutline(t *testing.T) {
	var p Path
	// the sequence issued by fractal.Triangle.Draw
	p.MoveTo(300, 0)
	p.BeginPath()
	p.LineTo(0, 600)
	p.LineTo(600, 600)
	p.LineTo(300, 0)
	p.ClosePath()

	subs := p.Subpaths()
	if len(subs) != 1 {
		t.Fatalf("expected one sub path, got %d", len(subs))
	}
	exp := []r2.Point{{X: 0, Y: 600}, {X: 600, Y: 600}, {X: 300, Y: 0}}
	if !reflect.DeepEqual(subs[0].Points, exp) || !subs[0].Closed {
		t.Errorf("unexpected sub path %v", subs[0])
	}
	if got := p.ToSVGPath(); got != "M0.000,600.000 L600.000,600.000 L300.000,0.000 Z" {
		t.Errorf("unexpected svg path %s", got)
	}
}

func TestBeginPathDiscards(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	if p.IsEmpty() {
		t.Fatal("path should not be empty")
	}
	p.BeginPath()
	if !p.IsEmpty() || len(p.Subpaths()) != 0 {
		t.Error("BeginPath should discard the sub paths")
	}

	// a lone MoveTo paints nothing
	p.MoveTo(5, 5)
	if !p.IsEmpty() {
		t.Error("a single point should not be painted")
	}

	// ClosePath without sub path is a no-op
	p.BeginPath()
	p.ClosePath()
	if len(p.subpaths) != 0 {
		t.Error("ClosePath should be ignored on an empty path")
	}
}

func TestClosePathStartsSubpath(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.LineTo(2, 2)
	p.ClosePath()
	p.LineTo(0, 0)

	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("expected 2 sub paths, got %d", len(subs))
	}
	if !reflect.DeepEqual(subs[1].Points, []r2.Point{{X: 1, Y: 1}, {X: 0, Y: 0}}) || subs[1].Closed {
		t.Errorf("unexpected second sub path %v", subs[1].Points)
	}
}

func TestAddTo(t *testing.T) {
	var p Path
	p.BeginPath()
	p.LineTo(0, 0)
	p.LineTo(4, 0)
	p.ClosePath()
	p.MoveTo(7, 7)
	p.LineTo(8, 8)

	var log adderLog
	p.AddTo(&log)
	exp := adderLog{"start 0,0", "line 4,0", "close", "start 7,7", "line 8,8", "stop"}
	if !reflect.DeepEqual(log, exp) {
		t.Errorf("expected %v, got %v", exp, log)
	}
}
