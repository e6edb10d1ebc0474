package fractaldraw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Miter JoinMode = iota
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Miter:
		return "miter"
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// ParseJoinMode accepts the names returned by JoinMode.String,
// case insensitively.
func ParseJoinMode(s string) (JoinMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miter":
		return Miter, nil
	case "round":
		return Round, nil
	case "bevel":
		return Bevel, nil
	}
	return 0, fmt.Errorf("invalid join mode %q", s)
}

// Style holds the paint settings of a surface.
type Style struct {
	StrokeColor color.NRGBA
	FillColor   color.NRGBA
	// Background is painted before any drawing, when not fully transparent.
	Background color.NRGBA
	LineWidth  float64
	Join       JoinMode
}

// DefaultStyle strokes with black 1px lines, fills in
// light gray, on a white background.
var DefaultStyle = Style{
	StrokeColor: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	FillColor:   color.NRGBA{0xd0, 0xd0, 0xd0, 0xff},
	Background:  color.NRGBA{0xff, 0xff, 0xff, 0xff},
	LineWidth:   1,
	Join:        Miter,
}

// ParseColor reads colors in the '#rrggbb', '#rrggbbaa' or '#rgb' forms.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: missing #", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %s", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor is the inverse of ParseColor. The alpha
// component is omitted when opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
