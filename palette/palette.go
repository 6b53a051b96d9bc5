// Package palette loads named color collections from YAML documents.
//
// Palette file looks like this:
//
//	name: bikeshed
//	colors:
//	  primary: "#3366cc"
//	  accent: hsl(30deg 90% 55%)
//	  overlay: rgba(0, 0, 0, 0.4)
//
// Hex literals must be quoted, otherwise YAML treats them as comments.
package palette

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/criticalmash/bikeshed-colors/colors"
)

// ErrEmpty is returned when document has no colors at all.
var ErrEmpty = errors.New("palette has no colors")

// Entry is a single named palette color.
type Entry struct {
	Name string
	// Raw is the value as decoded from YAML
	Raw   any
	Color colors.Color
	Line  int
}

type Palette struct {
	Name    string
	Entries []Entry
}

// Lookup returns color of the named entry.
func (p *Palette) Lookup(name string) (colors.Color, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e.Color, true
		}
	}
	return nil, false
}

// Names returns entry names in palette order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		names = append(names, e.Name)
	}
	return names
}

type Loader struct {
	log     *zap.Logger
	parser  *colors.Parser
	natural bool
}

type Option func(*Loader)

// WithNaturalOrder sorts entries by name using natural order ("gray2" before
// "gray10") instead of keeping document order.
func WithNaturalOrder() Option {
	return func(l *Loader) {
		l.natural = true
	}
}

// NewLoader creates palette loader. When parser is nil colors are parsed
// with default settings.
func NewLoader(log *zap.Logger, parser *colors.Parser, opts ...Option) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	if parser == nil {
		parser = colors.NewParser(log)
	}
	l := &Loader{log: log.Named("palette"), parser: parser}
	for _, setOpt := range opts {
		setOpt(l)
	}
	return l
}

// Load reads and decodes palette file.
func (l *Loader) Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read palette: %w", err)
	}
	p, err := l.Decode(data)
	if p == nil {
		return nil, fmt.Errorf("unable to load palette '%s': %w", path, err)
	}
	return p, err
}

// Decode builds palette from YAML document. Entries which could not be parsed
// are left out and reported in the returned error, so caller gets both
// palette with all good entries and the combined error.
func (l *Loader) Decode(data []byte) (*Palette, error) {
	var doc struct {
		Name   string    `yaml:"name"`
		Colors yaml.Node `yaml:"colors"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}

	switch doc.Colors.Kind {
	case 0:
		return nil, ErrEmpty
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("colors must be a mapping of names to color literals (line %d)", doc.Colors.Line)
	}

	var (
		errs error
		p    = &Palette{Name: doc.Name}
		seen = make(map[string]int, len(doc.Colors.Content)/2)
	)
	for i := 0; i+1 < len(doc.Colors.Content); i += 2 {
		key, value := doc.Colors.Content[i], doc.Colors.Content[i+1]
		name := key.Value

		if line, ok := seen[name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("palette entry %q (line %d): already defined on line %d", name, key.Line, line))
			continue
		}
		seen[name] = key.Line

		e, err := l.entry(name, key.Line, value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("palette entry %q (line %d): %w", name, key.Line, err))
			continue
		}
		p.Entries = append(p.Entries, e)
	}

	if l.natural {
		sort.SliceStable(p.Entries, func(i, j int) bool {
			return natural.Less(p.Entries[i].Name, p.Entries[j].Name)
		})
	}

	l.log.Debug("Palette decoded",
		zap.String("name", p.Name),
		zap.Int("entries", len(p.Entries)),
		zap.Int("errors", len(multierr.Errors(errs))))

	if len(p.Entries) == 0 && errs == nil {
		return nil, ErrEmpty
	}
	return p, errs
}

func (l *Loader) entry(name string, line int, value *yaml.Node) (Entry, error) {
	if value.Tag == "!!null" {
		return Entry{}, errors.New("no value, hex literals must be quoted")
	}

	var raw any
	if err := value.Decode(&raw); err != nil {
		return Entry{}, err
	}
	c, err := l.parser.ParseValue(raw)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Raw: raw, Color: c, Line: line}, nil
}
