package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigurationNoFile(t *testing.T) {
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

	if cfg.Document.Language != "en" {
		t.Errorf("Default language = %q, want en", cfg.Document.Language)
	}
	if cfg.Document.Template != "two-column" {
		t.Errorf("Default template = %q, want two-column", cfg.Document.Template)
	}
	if !cfg.Document.Hyphenate {
		t.Error("Hyphenation should be on by default")
	}
	if cfg.Document.Theme.PrimaryColor != "#003087" {
		t.Errorf("Default primary color = %q", cfg.Document.Theme.PrimaryColor)
	}
	if cfg.Document.Layout.PageSize != "a4" {
		t.Errorf("Default page size = %q, want a4", cfg.Document.Layout.PageSize)
	}
	if cfg.Document.Layout.LeftColumnRatio != 0.3 {
		t.Errorf("Default left column ratio = %f, want 0.3", cfg.Document.Layout.LeftColumnRatio)
	}
	if cfg.Document.Density.SparseBelow != 0.4 || cfg.Document.Density.DenseAbove != 0.8 {
		t.Errorf("Default density thresholds = %f/%f, want 0.4/0.8",
			cfg.Document.Density.SparseBelow, cfg.Document.Density.DenseAbove)
	}
}

func TestLoadConfigurationWithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  language: en-US
  hyphenate: false
  template: sidebar
  theme:
    primary_color: "#112233"
  layout:
    page_size: letter
    line_spacing: 12
logging:
  console:
    level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.Language != "en-US" {
		t.Errorf("Language = %q, want en-US", cfg.Document.Language)
	}
	if cfg.Document.Hyphenate {
		t.Error("Hyphenate should be overridden to false")
	}
	if cfg.Document.Template != "sidebar" {
		t.Errorf("Template = %q, want sidebar", cfg.Document.Template)
	}
	if cfg.Document.Theme.PrimaryColor != "#112233" {
		t.Errorf("PrimaryColor = %q, want #112233", cfg.Document.Theme.PrimaryColor)
	}
	if cfg.Document.Layout.PageSize != "letter" {
		t.Errorf("PageSize = %q, want letter", cfg.Document.Layout.PageSize)
	}
	if cfg.Document.Layout.LineSpacing != 12 {
		t.Errorf("LineSpacing = %f, want 12", cfg.Document.Layout.LineSpacing)
	}

	// values not mentioned in the file keep template defaults
	if cfg.Document.Theme.SecondaryColor != "#0070CC" {
		t.Errorf("SecondaryColor = %q, want template default", cfg.Document.Theme.SecondaryColor)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfigurationUnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\ndocument:\n  lang: ru\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("unknown configuration field should be rejected")
	}
}

func TestLoadConfigurationInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad template", "version: 1\ndocument:\n  template: fancy\n"},
		{"bad page size", "version: 1\ndocument:\n  layout:\n    page_size: tabloid\n"},
		{"bad color", "version: 1\ndocument:\n  theme:\n    primary_color: blueish\n"},
		{"bad ratio", "version: 1\ndocument:\n  layout:\n    left_column_width_ratio: 1.5\n"},
		{"bad version", "version: 2\n"},
		{"bad language", "version: 1\ndocument:\n  language: not a tag\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tc.body), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("expected configuration to be rejected")
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "version: 1") {
		t.Error("prepared configuration should contain version")
	}
	// template fields must not be expanded
	if !strings.Contains(out, "{{ .Name }}") {
		t.Error("output name template should be left unexpanded")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	back, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("reloading dumped config error = %v", err)
	}

	if back.Document.Theme != cfg.Document.Theme {
		t.Errorf("theme did not survive round trip: %+v vs %+v", back.Document.Theme, cfg.Document.Theme)
	}
	if back.Document.Layout != cfg.Document.Layout {
		t.Errorf("layout did not survive round trip: %+v vs %+v", back.Document.Layout, cfg.Document.Layout)
	}
}
