package layout

import (
	"testing"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

func baseDocumentConfig() *config.DocumentConfig {
	return &config.DocumentConfig{
		Fonts: config.FontsConfig{
			Header: config.FontConfig{Name: "Helvetica-Bold"},
			Body:   config.FontConfig{Name: "Helvetica"},
			Icons:  config.FontConfig{Name: "ZapfDingbats"},
		},
		Theme: config.ThemeConfig{
			PrimaryColor:    "#003087",
			SecondaryColor:  "#0070CC",
			AccentColor:     "#BEDCF9",
			BackgroundColor: "#F5F8FC",
			TextColor:       "#333333",
			HeaderFontSize:  14,
			BodyFontSize:    11.5,
		},
		Layout: baseLayoutConfig(),
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#003087", RGB{0, 48, 135}, true},
		{"#FFFFFF", RGB{255, 255, 255}, true},
		{"#fff", RGB{255, 255, 255}, true},
		{"#333333", RGB{51, 51, 51}, true},
		{"blueish", RGB{}, false},
		{"#12345", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseHexColor(%q) error = %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseHexColor(%q) should fail", tc.in)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveThemeBalanced(t *testing.T) {
	th, err := ResolveTheme(common.DensityTierBalanced, baseDocumentConfig(), nil, nil)
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}

	if th.Primary != (RGB{0, 48, 135}) {
		t.Errorf("primary color = %v", th.Primary)
	}
	if th.HeaderFont != "Helvetica-Bold" || th.BodyFont != "Helvetica" || th.IconFont != "ZapfDingbats" {
		t.Errorf("fonts = %q/%q/%q", th.HeaderFont, th.BodyFont, th.IconFont)
	}
	// balanced tier keeps configured sizes and spacing
	if th.HeaderFontSize != 14 || th.BodyFontSize != 11.5 || th.LineSpacing != 13 {
		t.Errorf("balanced sizes = %f/%f/%f", th.HeaderFontSize, th.BodyFontSize, th.LineSpacing)
	}
	if !near(th.SectionSpacing, 21.6) || !near(th.ParagraphSpacing, 8.64) {
		t.Errorf("balanced spacing = %f/%f", th.SectionSpacing, th.ParagraphSpacing)
	}
}

func TestResolveThemeTiers(t *testing.T) {
	cfg := baseDocumentConfig()

	dense, err := ResolveTheme(common.DensityTierDense, cfg, nil, nil)
	if err != nil {
		t.Fatalf("ResolveTheme(dense) error = %v", err)
	}
	sparse, err := ResolveTheme(common.DensityTierSparse, cfg, nil, nil)
	if err != nil {
		t.Fatalf("ResolveTheme(sparse) error = %v", err)
	}
	balanced, err := ResolveTheme(common.DensityTierBalanced, cfg, nil, nil)
	if err != nil {
		t.Fatalf("ResolveTheme(balanced) error = %v", err)
	}

	if dense.HeaderFontSize != 13 || dense.BodyFontSize != 11 || dense.LineSpacing != 12 {
		t.Errorf("dense sizes = %f/%f/%f", dense.HeaderFontSize, dense.BodyFontSize, dense.LineSpacing)
	}
	if sparse.HeaderFontSize != 16 || sparse.BodyFontSize != 12 || sparse.LineSpacing != 14 {
		t.Errorf("sparse sizes = %f/%f/%f", sparse.HeaderFontSize, sparse.BodyFontSize, sparse.LineSpacing)
	}

	// denser content never gets looser spacing
	if dense.LineSpacing > balanced.LineSpacing || balanced.LineSpacing > sparse.LineSpacing {
		t.Error("line spacing not monotonic across tiers")
	}
	if dense.SectionSpacing > balanced.SectionSpacing || balanced.SectionSpacing > sparse.SectionSpacing {
		t.Error("section spacing not monotonic across tiers")
	}
	if dense.ParagraphSpacing > balanced.ParagraphSpacing || balanced.ParagraphSpacing > sparse.ParagraphSpacing {
		t.Error("paragraph spacing not monotonic across tiers")
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	themeOver := &content.ThemeOverride{
		PrimaryColor:   "#112233",
		HeaderFont:     "Georgia-Bold",
		HeaderFontSize: 15,
	}
	layoutOver := &content.LayoutOverride{
		LineSpacing:      10,
		ParagraphSpacing: 0.1,
	}

	th, err := ResolveTheme(common.DensityTierBalanced, baseDocumentConfig(), themeOver, layoutOver)
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}

	if th.Primary != (RGB{17, 34, 51}) {
		t.Errorf("primary color = %v, want override", th.Primary)
	}
	if th.HeaderFont != "Georgia-Bold" {
		t.Errorf("header font = %q, want override", th.HeaderFont)
	}
	if th.HeaderFontSize != 15 {
		t.Errorf("header size = %f, want 15", th.HeaderFontSize)
	}
	if th.LineSpacing != 10 || !near(th.ParagraphSpacing, 7.2) {
		t.Errorf("spacing overrides = %f/%f", th.LineSpacing, th.ParagraphSpacing)
	}
	// fields not overridden keep resolved values
	if th.Secondary != (RGB{0, 112, 204}) || th.BodyFont != "Helvetica" {
		t.Error("untouched theme values changed")
	}
}

func TestResolveThemeBadOverrideColor(t *testing.T) {
	over := &content.ThemeOverride{AccentColor: "shiny"}
	if _, err := ResolveTheme(common.DensityTierBalanced, baseDocumentConfig(), over, nil); err == nil {
		t.Error("invalid override color should be rejected")
	}
}
