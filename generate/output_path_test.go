package generate

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"cvg/common"
	"cvg/config"
	"cvg/content"
	"cvg/state"
)

func setupTestEnvForOutputPath(t *testing.T, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:       logger,
		Cfg:       cfg,
		OutputDir: "/output",
	}
}

func setupTestContentForPath(t *testing.T) *content.Content {
	t.Helper()
	return &content.Content{
		SrcName: "Jordan Mills CV.json",
		Doc: &content.Document{
			Candidate: content.Candidate{Name: "Jordan Mills"},
		},
	}
}

func TestBuildOutputPath_DefaultName(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, "")

	result := buildOutputPath(c, "/data/Jordan Mills CV.json", common.OutputFmtPdf, "two-column", common.DensityTierBalanced, env)
	expected := filepath.Join("/output", "Jordan Mills CV.pdf")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_DefaultNameTransliterated(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, "")

	result := buildOutputPath(c, "/data/Жордан CV.json", common.OutputFmtDocx, "two-column", common.DensityTierBalanced, env)
	expected := filepath.Join("/output", "zhordan-cv.docx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, "{{ .Name }}-{{ .Template }}")

	result := buildOutputPath(c, "/data/cv.json", common.OutputFmtPdf, "sidebar", common.DensityTierBalanced, env)
	expected := filepath.Join("/output", "Jordan Mills-sidebar.pdf")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_TemplateWithSubdirs(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, "{{ .Tier }}/{{ .Name }}")

	result := buildOutputPath(c, "/data/cv.json", common.OutputFmtPdf, "two-column", common.DensityTierDense, env)
	expected := filepath.Join("/output", "dense", "Jordan Mills.pdf")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_BadTemplateFallsBack(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, "{{ .NoSuchField }}")

	result := buildOutputPath(c, "/data/cv.json", common.OutputFmtPdf, "two-column", common.DensityTierBalanced, env)
	expected := filepath.Join("/output", "cv.pdf")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}
