package colors

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser runs the same pipeline as ParseColor with logging and optional
// behavior changes. It is immutable and safe for concurrent use.
type Parser struct {
	log  *zap.Logger
	opts options
}

// Option changes Parser behavior.
type Option func(*options)

// WithHueUnits makes hsl() hue "turn" and "rad" units to be converted to
// degrees. Without it hue number is taken as degrees whatever the unit.
func WithHueUnits(enable bool) Option {
	return func(o *options) {
		o.hueUnits = enable
	}
}

// NewParser creates a new color parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("color-parser")}
	for _, setOpt := range opts {
		setOpt(&p.opts)
	}
	return p
}

// Parse parses single color literal.
func (p *Parser) Parse(input string) (Color, error) {
	return p.logResult(input, func() (Color, error) { return parseColor(input, p.opts) })
}

// ParseValue parses value of unknown type, see ParseValue function.
func (p *Parser) ParseValue(v any) (Color, error) {
	return p.logResult(v, func() (Color, error) { return parseValue(v, p.opts) })
}

// ParseAll parses every input and returns results in the same order. Failed
// entries are nil, all failures are combined into the returned error.
func (p *Parser) ParseAll(inputs []string) ([]Color, error) {
	var (
		errs error
		out  = make([]Color, len(inputs))
	)
	for i, in := range inputs {
		c, err := p.Parse(in)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[i] = c
	}
	return out, errs
}

func (p *Parser) logResult(input any, fn func() (Color, error)) (Color, error) {
	c, err := fn()
	if err != nil {
		p.log.Debug("Unable to parse color", zap.Any("input", input), zap.Error(err))
		return nil, err
	}
	p.log.Debug("Parsed color", zap.Any("input", input), zap.Stringer("space", c.Space()), zap.Stringer("value", c))
	return c, nil
}
