// Package inspect implements program commands: it parses color literals
// coming from the command line, standard input or palette files and prints
// them either through configured text template or as YAML.
package inspect

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	yaml "gopkg.in/yaml.v3"

	"github.com/criticalmash/bikeshed-colors/colors"
	"github.com/criticalmash/bikeshed-colors/config"
)

// Values is a struct that holds variables we make available for template
// expansion, it is also what gets written for YAML output.
type Values struct {
	Name     string             `yaml:"name,omitempty"`
	Input    string             `yaml:"input"`
	Space    string             `yaml:"space"`
	Format   string             `yaml:"format"`
	CSS      string             `yaml:"css"`
	Hex      string             `yaml:"hex,omitempty"`
	HexA     string             `yaml:"hexa,omitempty"`
	Channels map[string]float64 `yaml:"channels,flow"`
}

func buildValues(name, input string, c colors.Color) Values {
	v := Values{
		Name:     name,
		Input:    input,
		Space:    c.Space().String(),
		CSS:      c.String(),
		Channels: colors.Channels(c),
	}
	if fd, ok := colors.Classify(input); ok {
		v.Format = fd.Format.String()
	}
	if rgb, ok := c.(colors.RGB); ok {
		v.Hex, v.HexA = rgb.HexString(), rgb.HexAString()
	}
	return v
}

// classification is a YAML record of classify command.
type classification struct {
	Input      string `yaml:"input"`
	Descriptor string `yaml:"descriptor"`
	Space      string `yaml:"space,omitempty"`
}

// printer writes text lines immediately, YAML records are collected and
// written as a single document on flush.
type printer struct {
	out     io.Writer
	tmpl    *template.Template
	yaml    bool
	records []any
}

func newPrinter(out io.Writer, cfg *config.OutputConfig) (*printer, error) {
	p := &printer{out: out, yaml: cfg.Format == config.OutputFmtYaml}
	if p.yaml {
		return p, nil
	}
	tmpl, err := config.NewTemplate(config.OutputTemplateFieldName, cfg.Template)
	if err != nil {
		return nil, err
	}
	p.tmpl = tmpl
	return p, nil
}

func (p *printer) color(v Values) error {
	if p.yaml {
		p.records = append(p.records, v)
		return nil
	}
	buf := new(bytes.Buffer)
	if err := p.tmpl.Execute(buf, v); err != nil {
		return fmt.Errorf("unable to execute output template: %w", err)
	}
	buf.WriteByte('\n')
	_, err := p.out.Write(buf.Bytes())
	return err
}

func (p *printer) line(text string, rec any) error {
	if p.yaml {
		p.records = append(p.records, rec)
		return nil
	}
	_, err := fmt.Fprintln(p.out, text)
	return err
}

func (p *printer) flush() error {
	if !p.yaml || len(p.records) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(p.records); err != nil {
		return fmt.Errorf("unable to write yaml: %w", err)
	}
	return enc.Close()
}
