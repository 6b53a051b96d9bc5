package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a parsed color value. Concrete type is either RGB or HSL, use a
// type switch on it to get to the channels.
type Color interface {
	Space() Space
	String() string
}

// RGB color, all channels are in [0,255]. Alpha 255 is fully opaque.
type RGB struct {
	R, G, B, A int
}

func (c RGB) Space() Space {
	return SpaceRGB
}

// HexString returns "#rrggbb" in lower case.
func (c RGB) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAString returns "#rrggbbaa" in lower case.
func (c RGB) HexAString() string {
	return c.HexString() + fmt.Sprintf("%02x", c.A)
}

// String returns modern CSS functional notation. Alpha is only present when
// color is not fully opaque.
func (c RGB) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "rgb(%d %d %d", c.R, c.G, c.B)
	if c.A != int(AlphaScaleRGB) {
		sb.WriteString(" / " + formatFraction(float64(c.A)/float64(AlphaScaleRGB)))
	}
	sb.WriteByte(')')
	return sb.String()
}

// HSL color. Hue is in degrees and may be fractional, saturation and
// lightness are percentages. Alpha is in [0,100], 100 is fully opaque.
type HSL struct {
	H, S, L float64
	A       int
}

func (c HSL) Space() Space {
	return SpaceHSL
}

func (c HSL) String() string {
	var sb strings.Builder
	sb.WriteString("hsl(" + formatNumber(c.H) + " " + formatNumber(c.S) + "% " + formatNumber(c.L) + "%")
	if c.A != int(AlphaScaleHSL) {
		sb.WriteString(" / " + formatFraction(float64(c.A)/float64(AlphaScaleHSL)))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Channels returns channel values keyed by their single letter CSS names.
func Channels(c Color) map[string]float64 {
	switch v := c.(type) {
	case RGB:
		return map[string]float64{"r": float64(v.R), "g": float64(v.G), "b": float64(v.B), "a": float64(v.A)}
	case HSL:
		return map[string]float64{"h": v.H, "s": v.S, "l": v.L, "a": float64(v.A)}
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFraction(v float64) string {
	return formatNumber(math.Round(v*1000) / 1000)
}
