// Provides the configuration of a rendering, read from
// an XML file such as
//
//	<sierpinski>
//		<width>600</width>
//		<height>600</height>
//		<depth>6</depth>
//		<format>png</format>
//		<style stroke="#000000" fill="#d0d0d0" lineWidth="1" join="miter"/>
//	</sierpinski>
//
// Missing elements keep their default value.
package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/sierpinski/fractaldraw"
	"golang.org/x/net/html/charset"
)

// ErrInvalid is wrapped by the errors returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// MaxSize bounds the width and height of the output, in pixels or points.
const MaxSize = 8192

// Formats lists the supported output formats.
var Formats = []string{"png", "bmp", "tiff", "pdf", "svg", "trace"}

// NormalizeFormat lower cases `format` and maps
// the aliases to the names listed in Formats.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "tif" {
		return "tiff"
	}
	return format
}

// MaxDocumentDepth bounds the depth of the formats keeping one
// record per triangle in memory (svg and trace).
const MaxDocumentDepth = 10

// MaxDepth returns the deepest split accepted for `format`.
func MaxDepth(format string) int {
	switch format {
	case "svg", "trace":
		return MaxDocumentDepth
	default:
		return fractaldraw.MaxDepth
	}
}

// Backends lists the rasterizers usable for the png, bmp and tiff formats.
var Backends = []string{"rasterx", "gg"}

// Style is the textual form of fractaldraw.Style.
type Style struct {
	Stroke     string  `xml:"stroke,attr"`
	Fill       string  `xml:"fill,attr"`
	Background string  `xml:"background,attr"`
	LineWidth  float64 `xml:"lineWidth,attr"`
	Join       string  `xml:"join,attr"`
}

type Config struct {
	XMLName   xml.Name `xml:"sierpinski"`
	Width     int      `xml:"width"`
	Height    int      `xml:"height"`
	Depth     int      `xml:"depth"`
	Format    string   `xml:"format"`
	Backend   string   `xml:"backend"`
	Output    string   `xml:"output"` // optional, see OutputName
	FillRoot  bool     `xml:"fillRoot"`
	Iterative bool     `xml:"iterative"`
	Style     Style    `xml:"style"`
}

// Default returns the reference rendering: a 600 x 600 PNG,
// with a depth of 6.
func Default() Config {
	ds := fractaldraw.DefaultStyle
	return Config{
		Width:   600,
		Height:  600,
		Depth:   6,
		Format:  "png",
		Backend: "rasterx",
		Style: Style{
			Stroke:     fractaldraw.FormatColor(ds.StrokeColor),
			Fill:       fractaldraw.FormatColor(ds.FillColor),
			Background: fractaldraw.FormatColor(ds.Background),
			LineWidth:  ds.LineWidth,
			Join:       ds.Join.String(),
		},
	}
}

// ReadStream reads the configuration from the given io.Reader,
// on top of the default values.
// The encoding declared in the XML prolog is honored.
func ReadStream(stream io.Reader) (Config, error) {
	cfg := Default()
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, errors.New("empty configuration file")
		}
		return cfg, fmt.Errorf("can't decode configuration: %s", err)
	}
	cfg.Format = NormalizeFormat(cfg.Format)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return cfg, nil
}

// Read reads the configuration from the named file.
func Read(file string) (Config, error) {
	fin, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer fin.Close()
	return ReadStream(fin)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Validate checks the ranges of the values and
// the syntax of the style.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxSize || cfg.Height > MaxSize {
		return fmt.Errorf("%w: size %dx%d out of range (1 to %d)", ErrInvalid, cfg.Width, cfg.Height, MaxSize)
	}
	if !contains(Formats, cfg.Format) {
		return fmt.Errorf("%w: unknown format %q (expected one of %s)", ErrInvalid, cfg.Format, strings.Join(Formats, ", "))
	}
	if limit := MaxDepth(cfg.Format); cfg.Depth < 0 || cfg.Depth > limit {
		return fmt.Errorf("%w: depth %d out of range for %s (0 to %d)", ErrInvalid, cfg.Depth, cfg.Format, limit)
	}
	if !contains(Backends, cfg.Backend) {
		return fmt.Errorf("%w: unknown backend %q (expected one of %s)", ErrInvalid, cfg.Backend, strings.Join(Backends, ", "))
	}
	if _, err := cfg.Style.Resolve(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return nil
}

// OutputName returns the output file, or "sierpinski.<format>"
// when none is set.
func (cfg Config) OutputName() string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return "sierpinski." + cfg.Format
}

// Options returns the rendering options.
func (cfg Config) Options() fractaldraw.Options {
	return fractaldraw.Options{Depth: cfg.Depth, FillRoot: cfg.FillRoot, Iterative: cfg.Iterative}
}

// Resolve parses the colors and the join mode.
// Empty values are taken from fractaldraw.DefaultStyle.
func (s Style) Resolve() (fractaldraw.Style, error) {
	out := fractaldraw.DefaultStyle
	var err error
	for _, c := range [...]struct {
		field string
		value string
		dst   *color.NRGBA
	}{
		{"stroke", s.Stroke, &out.StrokeColor},
		{"fill", s.Fill, &out.FillColor},
		{"background", s.Background, &out.Background},
	} {
		if c.value == "" {
			continue
		}
		*c.dst, err = fractaldraw.ParseColor(c.value)
		if err != nil {
			return out, fmt.Errorf("%s: %s", c.field, err)
		}
	}
	if s.LineWidth < 0 {
		return out, fmt.Errorf("negative line width %g", s.LineWidth)
	}
	if s.LineWidth > 0 {
		out.LineWidth = s.LineWidth
	}
	if s.Join != "" {
		out.Join, err = fractaldraw.ParseJoinMode(s.Join)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
