package config

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/sierpinski/fractaldraw"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	style, err := cfg.Style.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if style != fractaldraw.DefaultStyle {
		t.Errorf("expected the default style, got %v", style)
	}
	if opts := cfg.Options(); opts.Depth != 6 || opts.FillRoot || opts.Iterative {
		t.Errorf("unexpected options %v", opts)
	}
}

func TestRead(t *testing.T) {
	cfg, err := Read("testdata/sierpinski.xml")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "gg" || cfg.Depth != 6 {
		t.Errorf("unexpected config %v", cfg)
	}
	style, _ := cfg.Style.Resolve()
	if style.LineWidth != 1.5 || style.Join != fractaldraw.Bevel {
		t.Errorf("unexpected style %v", style)
	}
}

func TestReadLatin1(t *testing.T) {
	cfg, err := Read("testdata/latin1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "triangle-été.pdf" {
		t.Errorf("unexpected output %q", cfg.Output)
	}
	if cfg.Format != "pdf" {
		t.Errorf("format should be normalized, got %q", cfg.Format)
	}
	if cfg.Width != 300 || cfg.Height != 200 || cfg.Depth != 3 || !cfg.FillRoot {
		t.Errorf("unexpected config %v", cfg)
	}
	// not specified in the file
	if cfg.Backend != "rasterx" {
		t.Errorf("expected default backend, got %q", cfg.Backend)
	}
	style, err := cfg.Style.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if style.StrokeColor != (color.NRGBA{0xff, 0, 0, 0xff}) || style.Join != fractaldraw.Round {
		t.Errorf("unexpected style %v", style)
	}
	if style.FillColor != fractaldraw.DefaultStyle.FillColor {
		t.Errorf("fill should keep its default, got %v", style.FillColor)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := ReadStream(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ReadStream(strings.NewReader("<sierpinski><depth>x</depth></sierpinski>")); err == nil {
		t.Error("expected error for invalid depth")
	}
	if _, err := Read("testdata/missing.xml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	for _, mod := range []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = MaxSize + 1 },
		func(c *Config) { c.Depth = -1 },
		func(c *Config) { c.Depth = fractaldraw.MaxDepth + 1 },
		func(c *Config) { c.Depth = 20 },
		func(c *Config) { c.Format, c.Depth = "trace", MaxDocumentDepth+1 },
		func(c *Config) { c.Format, c.Depth = "svg", MaxDocumentDepth+1 },
		func(c *Config) { c.Format = "gif" },
		func(c *Config) { c.Backend = "cairo" },
		func(c *Config) { c.Style.Stroke = "red" },
		func(c *Config) { c.Style.Join = "square" },
		func(c *Config) { c.Style.LineWidth = -2 },
	} {
		cfg := Default()
		mod(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("config %v: expected ErrInvalid, got %v", cfg, err)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	for format, exp := range map[string]int{
		"png":   fractaldraw.MaxDepth,
		"pdf":   fractaldraw.MaxDepth,
		"svg":   MaxDocumentDepth,
		"trace": MaxDocumentDepth,
	} {
		if got := MaxDepth(format); got != exp {
			t.Errorf("%s: expected %d, got %d", format, exp, got)
		}
		cfg := Default()
		cfg.Format, cfg.Depth = format, exp
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: depth %d should be accepted: %s", format, exp, err)
		}
	}
	if fractaldraw.MaxDepth > 12 {
		t.Errorf("depth bound %d is too large to render", fractaldraw.MaxDepth)
	}
}

func TestOutputName(t *testing.T) {
	cfg, err := ReadStream(strings.NewReader("<sierpinski><format>pdf</format></sierpinski>"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.OutputName(); got != "sierpinski.pdf" {
		t.Errorf("expected a name matching the format, got %s", got)
	}
	cfg.Output = "out.bin"
	if got := cfg.OutputName(); got != "out.bin" {
		t.Errorf("expected the explicit output, got %s", got)
	}
	if got := Default().OutputName(); got != "sierpinski.png" {
		t.Errorf("unexpected default output %s", got)
	}
}

func TestNormalizeFormat(t *testing.T) {
	for in, exp := range map[string]string{
		"png":    "png",
		" PDF ":  "pdf",
		"TIF":    "tiff",
		"tiff":   "tiff",
		"Trace":  "trace",
		"gif":    "gif",
	} {
		if got := NormalizeFormat(in); got != exp {
			t.Errorf("%q: expected %q, got %q", in, exp, got)
		}
	}
	cfg, err := ReadStream(strings.NewReader("<sierpinski><format>tif</format></sierpinski>"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("the tif alias should be accepted: %s", err)
	}
}
