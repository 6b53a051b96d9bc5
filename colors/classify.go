// Package colors parses CSS color literals (hex, rgb/rgba and hsl/hsla
// notations) into channel values and converts between RGB and HSL.
package colors

import "regexp"

// Grammar building blocks. Patterns only decide whether a literal is well
// formed, channel values are extracted separately.
const (
	byteInt    = `((1?[1-9]?\d)|10\d|(2[0-4]\d)|25[0-5])`
	percentage = `(([1-9]?\d(\.\d+)?)|100|(\.\d+))%`
	alphaValue = `((0?\.\d+)|[01]|` + percentage + `)`
	hueValue   = `((((([12]?[1-9]?\d)|[12]0\d|(3[0-5]\d))(\.\d+)?)|(\.\d+))(deg)?|(0|0?\.\d+)turn|(([0-6](\.\d+)?)|(\.\d+))rad)`

	rgbIntegers    = `((` + byteInt + `,\s?){2}|(` + byteInt + `\s){2})` + byteInt
	rgbPercentages = `((` + percentage + `,\s?){2}|(` + percentage + `\s){2})` + percentage

	rgbaLegacy = `(` + byteInt + `,\s?){3}|(` + percentage + `,\s?){3}`
	rgbaModern = `((` + byteInt + `\s){3}|(` + percentage + `\s){3})/\s`

	hslLegacy = `(,\s?` + percentage + `){2}`
	hslModern = `(\s` + percentage + `){2}`
)

var (
	isHex      = regexp.MustCompile(`(?i)^#([\da-f]{3}){1,2}$`)
	isHexAlpha = regexp.MustCompile(`(?i)^#([\da-f]{4}){1,2}$`)
	isRGB      = regexp.MustCompile(`(?i)^rgb\((` + rgbIntegers + `|` + rgbPercentages + `)\)$`)
	isRGBA     = regexp.MustCompile(`(?i)^rgba\(((` + rgbaLegacy + `)|` + rgbaModern + `)` + alphaValue + `\)$`)
	isHSL      = regexp.MustCompile(`(?i)^hsl\(` + hueValue + `(` + hslLegacy + `|` + hslModern + `)\)$`)
	isHSLA     = regexp.MustCompile(`(?i)^hsla\(` + hueValue + `((` + hslLegacy + `,\s?)|(` + hslModern + `\s/\s))` + alphaValue + `\)$`)
)

// FormatDescriptor tells which grammar family a literal belongs to and which
// color space its channels describe.
type FormatDescriptor struct {
	Space  Space
	Format Format
}

func (fd FormatDescriptor) String() string {
	if fd.IsUnknown() {
		return "UNKNOWN"
	}
	return fd.Format.String() + "/" + fd.Space.String()
}

// IsUnknown reports whether descriptor marks literal no grammar accepts.
func (fd FormatDescriptor) IsUnknown() bool {
	return fd == unknown
}

// returned by Classify for literals no grammar accepts
var unknown = FormatDescriptor{Space: -1, Format: -1}

var grammars = []struct {
	re *regexp.Regexp
	fd FormatDescriptor
}{
	{isHex, FormatDescriptor{Space: SpaceRGB, Format: FormatHEX}},
	{isHexAlpha, FormatDescriptor{Space: SpaceRGB, Format: FormatHEX}},
	{isRGB, FormatDescriptor{Space: SpaceRGB, Format: FormatRGB}},
	{isRGBA, FormatDescriptor{Space: SpaceRGB, Format: FormatRGB}},
	{isHSL, FormatDescriptor{Space: SpaceHSL, Format: FormatHSL}},
	{isHSLA, FormatDescriptor{Space: SpaceHSL, Format: FormatHSL}},
}

// Classify matches input against known color grammars in order of
// precedence, first match wins. It never fails: literals which are not
// recognized produce descriptor for which IsUnknown is true and false.
func Classify(input string) (FormatDescriptor, bool) {
	for _, g := range grammars {
		if g.re.MatchString(input) {
			return g.fd, true
		}
	}
	return unknown, false
}

// SpaceOf returns "RGB" or "HSL" for recognized literals and "UNKNOWN"
// otherwise.
func SpaceOf(input string) string {
	fd, ok := Classify(input)
	if !ok {
		return "UNKNOWN"
	}
	return fd.Space.String()
}
