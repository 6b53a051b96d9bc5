package colors_test

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/criticalmash/bikeshed-colors/colors"
)

func TestParser_NilLogger(t *testing.T) {
	p := colors.NewParser(nil)
	c, err := p.Parse("#000")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.(colors.RGB) != (colors.RGB{A: 255}) {
		t.Errorf("Parse() = %v", c)
	}
}

func TestParser_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := colors.NewParser(zap.New(core))

	if _, err := p.Parse("hsl(10 20% 30%)"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := p.Parse("nope"); err == nil {
		t.Fatal("Parse() expected error")
	}

	parsed := logs.FilterMessage("Parsed color").All()
	if len(parsed) != 1 {
		t.Fatalf("expected 1 'Parsed color' entry, got %d", len(parsed))
	}
	if parsed[0].LoggerName != "color-parser" {
		t.Errorf("logger name = %q, want %q", parsed[0].LoggerName, "color-parser")
	}
	if got := parsed[0].ContextMap()["space"]; got != "HSL" {
		t.Errorf("logged space = %v, want HSL", got)
	}
	if logs.FilterMessage("Unable to parse color").Len() != 1 {
		t.Error("expected failure to be logged")
	}
}

func TestParser_HueUnits(t *testing.T) {
	tests := []struct {
		input string
		raw   float64
		deg   float64
	}{
		{"hsl(0.5turn 100% 50%)", 0.5, 180},
		{"hsl(.25turn, 100%, 50%)", 0.25, 90},
		{"hsla(3.14rad,100%,50%,0.5)", 3.14, 3.14 * 180 / math.Pi},
		{"hsl(90deg 100% 50%)", 90, 90},
		{"hsl(270 100% 50%)", 270, 270},
		{"hsl(6.5rad 1% 1%)", 6.5, 6.5*180/math.Pi - 360},
	}

	plain := colors.NewParser(zap.NewNop())
	converting := colors.NewParser(zap.NewNop(), colors.WithHueUnits(true))

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := plain.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if h := c.(colors.HSL).H; math.Abs(h-tt.raw) > 1e-9 {
				t.Errorf("hue = %v, want %v", h, tt.raw)
			}

			c, err = converting.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if h := c.(colors.HSL).H; math.Abs(h-tt.deg) > 1e-9 {
				t.Errorf("converted hue = %v, want %v", h, tt.deg)
			}
		})
	}
}

func TestParser_ParseAll(t *testing.T) {
	p := colors.NewParser(zap.NewNop())

	out, err := p.ParseAll([]string{"#fff", "bad", "hsl(1 2% 3%)", "rgb(1,2)"})
	if err == nil {
		t.Fatal("ParseAll() expected error")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("ParseAll() reported %d errors, want 2", n)
	}
	if !errors.Is(err, colors.ErrUnknownFormat) {
		t.Errorf("ParseAll() error = %v, want ErrUnknownFormat", err)
	}
	if len(out) != 4 {
		t.Fatalf("ParseAll() returned %d results, want 4", len(out))
	}
	if out[0] == nil || out[2] == nil || out[1] != nil || out[3] != nil {
		t.Errorf("ParseAll() = %v", out)
	}

	out, err = p.ParseAll([]string{"#000", "rgb(0 0 0)"})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if out[0] != out[1] {
		t.Errorf("ParseAll() = %v, expected equal colors", out)
	}
}

func TestParser_ParseValue(t *testing.T) {
	p := colors.NewParser(zap.NewNop())
	if _, err := p.ParseValue(7); err == nil {
		t.Error("ParseValue(7) expected error")
	}
	c, err := p.ParseValue([]byte("rgba(1 2 3 / 1)"))
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}
	if c.(colors.RGB).HexAString() != "#010203ff" {
		t.Errorf("ParseValue() = %v", c)
	}
}
