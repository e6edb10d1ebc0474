package fractaldraw_test

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/sierpinski/fractal"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalrecord"
	"github.com/golang/geo/r2"
)

func TestRenderReference(t *testing.T) {
	var rec fractalrecord.Recorder
	root := fractaldraw.Render(&rec, 600, 600, fractaldraw.Options{Depth: 6})

	if root.Apex() != (r2.Point{X: 300, Y: 0}) || root.Height() != 600 {
		t.Errorf("unexpected root %s", root)
	}
	stats := rec.Stats()
	if stats.Stroke != 1+fractal.DrawCount(6) {
		t.Errorf("expected %d triangles, got %d", 1+fractal.DrawCount(6), stats.Stroke)
	}
	if stats.Fill != 0 {
		t.Errorf("unexpected fill")
	}
}

func TestRenderFillRoot(t *testing.T) {
	var rec fractalrecord.Recorder
	fractaldraw.Render(&rec, 100, 100, fractaldraw.Options{Depth: 1, FillRoot: true})

	cmds := rec.Commands()
	// the fill comes right after the root stroke
	if _, ok := cmds[7].(fractalrecord.Fill); !ok {
		t.Errorf("expected a fill after the root outline, got %s", cmds[7])
	}
	if rec.Stats().Fill != 1 {
		t.Errorf("expected exactly one fill, got %d", rec.Stats().Fill)
	}
}

func TestRenderIterative(t *testing.T) {
	var rec, iter fractalrecord.Recorder
	fractaldraw.Render(&rec, 600, 400, fractaldraw.Options{Depth: 5})
	fractaldraw.Render(&iter, 600, 400, fractaldraw.Options{Depth: 5, Iterative: true})
	if !reflect.DeepEqual(rec.Commands(), iter.Commands()) {
		t.Error("iterative rendering should issue the same commands")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	fractaldraw.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer fractaldraw.SetLogger(nil)

	var rec fractalrecord.Recorder
	fractaldraw.Render(&rec, 10, 10, fractaldraw.Options{Depth: 2})
	if !strings.Contains(buf.String(), "triangles=13") {
		t.Errorf("expected the triangle count in the log, got %s", buf.String())
	}

	fractaldraw.SetLogger(nil)
	buf.Reset()
	fractaldraw.Render(&rec, 10, 10, fractaldraw.Options{Depth: 2})
	if buf.Len() != 0 {
		t.Error("the default logger should be silent")
	}
	if fractaldraw.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("the default logger should discard every level")
	}
}
