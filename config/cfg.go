package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ParsingConfig struct {
		ConvertHueUnits bool `yaml:"convert_hue_units"`
	}

	OutputConfig struct {
		Format   OutputFmt `yaml:"format" validate:"gte=0"`
		Template string    `yaml:"template" validate:"required_if=Format 0"`
	}

	PaletteConfig struct {
		Sort SortMode `yaml:"sort" validate:"gte=0"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Parsing ParsingConfig `yaml:"parsing"`
		Output  OutputConfig  `yaml:"output"`
		Palette PaletteConfig `yaml:"palette"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputTemplateFieldName TemplateFieldName = "template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputTemplateFieldName)),
)

// NewTemplate compiles output template with slim-sprig functions available.
func NewTemplate(name TemplateFieldName, text string) (*template.Template, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	return tmpl, nil
}

// checkTemplates makes sure text output template could be compiled, so
// broken configuration is reported at load time rather than on first output.
func checkTemplates(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok || cfg.Output.Format != OutputFmtText {
		return
	}
	if _, err := NewTemplate(OutputTemplateFieldName, cfg.Output.Template); err != nil {
		sl.ReportError(cfg.Output.Template, "Template", "Template", "template", err.Error())
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkTemplates)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
