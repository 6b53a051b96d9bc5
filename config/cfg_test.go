package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Parsing.ConvertHueUnits {
		t.Error("Hue unit conversion should be off by default")
	}
	if cfg.Output.Format != OutputFmtText {
		t.Errorf("Output format = %v, want text", cfg.Output.Format)
	}
	if !strings.Contains(cfg.Output.Template, "{{") {
		t.Errorf("Output template was expanded during load: %q", cfg.Output.Template)
	}
	if cfg.Palette.Sort != SortModeDocument {
		t.Errorf("Palette sort = %v, want document", cfg.Palette.Sort)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
parsing:
  convert_hue_units: true
output:
  format: yaml
palette:
  sort: natural
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Parsing.ConvertHueUnits {
		t.Error("Expected ConvertHueUnits to be true")
	}
	if cfg.Output.Format != OutputFmtYaml {
		t.Errorf("Output format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.Output.Template == "" {
		t.Error("Template from defaults should survive when file does not set it")
	}
	if cfg.Palette.Sort != SortModeNatural {
		t.Errorf("Palette sort = %v, want natural", cfg.Palette.Sort)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: 1
parsing:
  convert_hue_units: true
  invalid indent
`)
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	path := writeConfig(t, `version: 1
unknown_field: value
`)
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid version", "version: 2\n"},
		{"unknown output format", "version: 1\noutput:\n  format: json\n"},
		{"unknown sort mode", "version: 1\npalette:\n  sort: random\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"broken template", "version: 1\noutput:\n  template: '{{ .Input '\n"},
		{"empty template", "version: 1\noutput:\n  template: ''\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_YamlIgnoresTemplate(t *testing.T) {
	path := writeConfig(t, "version: 1\noutput:\n  format: yaml\n  template: ''\n")
	if _, err := LoadConfiguration(path); err != nil {
		t.Errorf("Template should not be required for yaml output: %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Parsing: ParsingConfig{ConvertHueUnits: true},
		Output:  OutputConfig{Format: OutputFmtYaml},
		Palette: PaletteConfig{Sort: SortModeNatural},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !bytes.Contains(data, []byte("format: yaml")) {
		t.Errorf("Dump() should write enums by name:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if *cfg2 != *cfg {
		t.Errorf("Config mismatch after dump/load: got %+v, want %+v", *cfg2, *cfg)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestNewTemplate(t *testing.T) {
	tmpl, err := NewTemplate(OutputTemplateFieldName, `{{ .Input | quote }} {{ .Space | lower }}`)
	if err != nil {
		t.Fatalf("NewTemplate() error = %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Input": "#fff", "Space": "RGB"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := buf.String(); got != `"#fff" rgb` {
		t.Errorf("Execute() = %q", got)
	}

	if _, err := NewTemplate(OutputTemplateFieldName, `{{ nosuchfunc }}`); err == nil {
		t.Error("Expected error for unknown template function")
	}
}
