package colors

import "fmt"

type options struct {
	hueUnits bool
}

// ParseColor classifies input and extracts its channels. Result is RGB for
// hex and rgb()/rgba() literals and HSL for hsl()/hsla() ones. Literals which
// match no grammar produce FormatError wrapping ErrUnknownFormat.
func ParseColor(input string) (Color, error) {
	return parseColor(input, options{})
}

// ParseValue is ParseColor for values of unknown type (decoded YAML, for
// example). Strings, byte slices and fmt.Stringer are accepted, anything else
// is reported with TypeError.
func ParseValue(v any) (Color, error) {
	return parseValue(v, options{})
}

func parseValue(v any, opts options) (Color, error) {
	switch t := v.(type) {
	case string:
		return parseColor(t, opts)
	case []byte:
		return parseColor(string(t), opts)
	case fmt.Stringer:
		return parseColor(t.String(), opts)
	default:
		return nil, &TypeError{Value: v}
	}
}

func parseColor(input string, opts options) (Color, error) {
	fd, ok := Classify(input)
	if !ok {
		return nil, &FormatError{Input: input, Grammar: "color", Err: ErrUnknownFormat}
	}

	var (
		c   Color
		err error
	)
	switch fd.Format {
	case FormatHEX:
		c, err = ParseHex(input)
	case FormatRGB:
		c, err = ParseRGB(input)
	case FormatHSL:
		c, err = parseHSL(input, opts.hueUnits)
	default:
		// this should never happen
		panic(fmt.Sprintf("unsupported color format %s", fd.Format))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
