package colors

import (
	"fmt"
	"math"
	"strconv"
)

// ParseHex extracts channels from #rgb, #rgba, #rrggbb and #rrggbbaa
// literals. Alpha defaults to 255 when absent.
func ParseHex(input string) (RGB, error) {
	if !isHex.MatchString(input) && !isHexAlpha.MatchString(input) {
		return RGB{}, &FormatError{Input: input, Grammar: "hex"}
	}

	digits := input[1:]
	width := 2
	if len(digits) == 3 || len(digits) == 4 {
		// short form, every digit is doubled
		width = 1
	}

	values := make([]int, 0, 4)
	for i := 0; i < len(digits); i += width {
		d := digits[i : i+width]
		if width == 1 {
			d += d
		}
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: input, Grammar: "hex", Err: err}
		}
		values = append(values, int(v))
	}

	c := RGB{R: values[0], G: values[1], B: values[2], A: int(AlphaScaleRGB)}
	if len(values) == 4 {
		c.A = values[3]
	}
	return c, nil
}

// ParseRGB extracts channels from rgb() and rgba() literals. Percentages are
// scaled to 0-255, alpha is normalized on 255 scale and defaults to 255.
func ParseRGB(input string) (RGB, error) {
	if !isRGB.MatchString(input) && !isRGBA.MatchString(input) {
		return RGB{}, &FormatError{Input: input, Grammar: "rgb"}
	}
	channels, err := functionChannels(input, "rgb")
	if err != nil {
		return RGB{}, err
	}

	c := RGB{
		R: rgbChannel(channels[0]),
		G: rgbChannel(channels[1]),
		B: rgbChannel(channels[2]),
		A: int(AlphaScaleRGB),
	}
	if len(channels) == 4 {
		c.A = normalizeAlpha(channels[3], AlphaScaleRGB)
	}
	return c, nil
}

// ParseHSL extracts channels from hsl() and hsla() literals. Hue number is
// used as is: "turn" and "rad" suffixes are accepted but not converted to
// degrees (see Parser option WithHueUnits). Saturation and lightness are
// truncated to integers, alpha is normalized on 100 scale and defaults to 100.
func ParseHSL(input string) (HSL, error) {
	return parseHSL(input, false)
}

func parseHSL(input string, convertHue bool) (HSL, error) {
	if !isHSL.MatchString(input) && !isHSLA.MatchString(input) {
		return HSL{}, &FormatError{Input: input, Grammar: "hsl"}
	}
	channels, err := functionChannels(input, "hsl")
	if err != nil {
		return HSL{}, err
	}

	c := HSL{
		H: channels[0].Value,
		S: math.Trunc(channels[1].Value),
		L: math.Trunc(channels[2].Value),
		A: int(AlphaScaleHSL),
	}
	if convertHue {
		c.H = hueDegrees(channels[0])
	}
	if len(channels) == 4 {
		c.A = normalizeAlpha(channels[3], AlphaScaleHSL)
	}
	return c, nil
}

// functionChannels scans validated functional notation. Grammars guarantee
// three or four channels, anything else means lexer and grammar disagree.
func functionChannels(input, grammar string) ([]Channel, error) {
	channels, err := scanChannels(input)
	if err != nil {
		return nil, &FormatError{Input: input, Grammar: grammar, Err: err}
	}
	if len(channels) != 3 && len(channels) != 4 {
		return nil, &FormatError{Input: input, Grammar: grammar,
			Err: fmt.Errorf("expected 3 or 4 channels, got %d", len(channels))}
	}
	return channels, nil
}

func rgbChannel(c Channel) int {
	if c.isPercentage() {
		return int(math.Round(c.Value * 255 / 100))
	}
	return int(c.Value)
}

// hueDegrees converts hue angle to degrees in [0,360).
func hueDegrees(c Channel) float64 {
	h := c.Value
	switch c.Unit {
	case "turn":
		h *= 360
	case "rad":
		h *= 180 / math.Pi
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
