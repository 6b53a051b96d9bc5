package colors

import (
	"errors"
	"io"
	"math"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

// Channel is a single numeric argument of a functional color notation.
type Channel struct {
	Raw   string  // token as written, e.g. "50%", "3.14rad", "0.5"
	Value float64 // numeric part
	Unit  string  // lower cased suffix: "", "%", "deg", "turn" or "rad"
}

func (c Channel) isPercentage() bool {
	return c.Unit == "%"
}

// newChannel splits numeric token into its value and unit. Second return is
// false when token does not start with a number.
func newChannel(token []byte) (Channel, bool) {
	v, n := strconv.ParseFloat(token)
	if n == 0 {
		return Channel{}, false
	}
	return Channel{
		Raw:   string(token),
		Value: v,
		Unit:  strings.ToLower(string(token[n:])),
	}, true
}

// scanChannels returns numeric, percentage and dimension tokens of a
// functional notation in source order.
func scanChannels(input string) ([]Channel, error) {
	lexer := css.NewLexer(parse.NewInputString(input))

	channels := make([]Channel, 0, 4)
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return channels, nil
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			if c, ok := newChannel(data); ok {
				channels = append(channels, c)
			}
		}
	}
}

// AlphaScale is the integer range alpha channel is normalized to.
type AlphaScale int

// Alpha ranges differ between color spaces and are kept apart on purpose.
const (
	AlphaScaleRGB AlphaScale = 255
	AlphaScaleHSL AlphaScale = 100
)

// NormalizeAlpha converts alpha token to an integer. Percentage tokens are
// returned as written (rounded) whatever the scale is, so "50%" is always 50.
// Bare numbers are fractions of one and are multiplied by scale.
func NormalizeAlpha(token string, scale AlphaScale) (int, error) {
	c, ok := newChannel([]byte(strings.TrimSpace(token)))
	if !ok || (c.Unit != "" && !c.isPercentage()) {
		return 0, &FormatError{Input: token, Grammar: "alpha"}
	}
	return normalizeAlpha(c, scale), nil
}

func normalizeAlpha(c Channel, scale AlphaScale) int {
	if c.isPercentage() {
		return int(math.Round(c.Value))
	}
	return int(math.Round(c.Value * float64(scale)))
}
