package layout

import (
	"fmt"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

// RGB is a color triple ready for the drawing surface.
type RGB struct {
	R, G, B int
}

// ParseHexColor parses "#RRGGBB" and the short "#RGB" form.
func ParseHexColor(s string) (RGB, error) {
	var c RGB
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B); err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// Hex returns the color as uppercase RRGGBB without the leading hash, the
// form OOXML attributes expect.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Theme is the fully resolved visual style for one render pass: colors,
// font names and the density-adjusted sizes and spacing. All spacing values
// are in points.
type Theme struct {
	Tier common.DensityTier

	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Background RGB
	Text       RGB

	HeaderFont string
	BodyFont   string
	IconFont   string

	HeaderFontSize float64
	BodyFontSize   float64

	SectionSpacing   float64
	LineSpacing      float64
	ParagraphSpacing float64
}

// tierMetrics are the size and spacing constants a density tier selects.
// Balanced content keeps configured values, the packed and airy tiers use
// fixed constants so denser content never gets looser spacing.
type tierMetrics struct {
	headerSize float64
	bodySize   float64
	line       float64
	section    float64
	paragraph  float64
}

var tierTable = map[common.DensityTier]tierMetrics{
	common.DensityTierDense:  {headerSize: 13, bodySize: 11, line: 12, section: 0.25 * PointsPerInch, paragraph: 0.1 * PointsPerInch},
	common.DensityTierSparse: {headerSize: 16, bodySize: 12, line: 14, section: 0.35 * PointsPerInch, paragraph: 0.15 * PointsPerInch},
}

// ResolveTheme builds the Theme for a render pass. Resolution order: colors
// and fonts come from configuration, sizes and spacing from the density tier
// (balanced tier keeps configured values), per-document overrides win last.
func ResolveTheme(tier common.DensityTier, cfg *config.DocumentConfig, themeOver *content.ThemeOverride, layoutOver *content.LayoutOverride) (*Theme, error) {

	t := &Theme{
		Tier:             tier,
		HeaderFont:       cfg.Fonts.Header.Name,
		BodyFont:         cfg.Fonts.Body.Name,
		IconFont:         cfg.Fonts.Icons.Name,
		HeaderFontSize:   cfg.Theme.HeaderFontSize,
		BodyFontSize:     cfg.Theme.BodyFontSize,
		SectionSpacing:   cfg.Layout.SectionSpacing * PointsPerInch,
		LineSpacing:      cfg.Layout.LineSpacing,
		ParagraphSpacing: cfg.Layout.ParagraphSpacing * PointsPerInch,
	}

	if m, ok := tierTable[tier]; ok {
		t.HeaderFontSize = m.headerSize
		t.BodyFontSize = m.bodySize
		t.LineSpacing = m.line
		t.SectionSpacing = m.section
		t.ParagraphSpacing = m.paragraph
	}

	colors := []struct {
		dst      *RGB
		cfgValue string
		override string
	}{
		{&t.Primary, cfg.Theme.PrimaryColor, overrideColor(themeOver, func(o *content.ThemeOverride) string { return o.PrimaryColor })},
		{&t.Secondary, cfg.Theme.SecondaryColor, overrideColor(themeOver, func(o *content.ThemeOverride) string { return o.SecondaryColor })},
		{&t.Accent, cfg.Theme.AccentColor, overrideColor(themeOver, func(o *content.ThemeOverride) string { return o.AccentColor })},
		{&t.Background, cfg.Theme.BackgroundColor, overrideColor(themeOver, func(o *content.ThemeOverride) string { return o.BackgroundColor })},
		{&t.Text, cfg.Theme.TextColor, overrideColor(themeOver, func(o *content.ThemeOverride) string { return o.TextColor })},
	}
	for _, c := range colors {
		value := c.cfgValue
		if len(c.override) > 0 {
			value = c.override
		}
		rgb, err := ParseHexColor(value)
		if err != nil {
			return nil, err
		}
		*c.dst = rgb
	}

	if themeOver != nil {
		if len(themeOver.HeaderFont) > 0 {
			t.HeaderFont = themeOver.HeaderFont
		}
		if len(themeOver.BodyFont) > 0 {
			t.BodyFont = themeOver.BodyFont
		}
		if themeOver.HeaderFontSize > 0 {
			t.HeaderFontSize = themeOver.HeaderFontSize
		}
		if themeOver.BodyFontSize > 0 {
			t.BodyFontSize = themeOver.BodyFontSize
		}
	}
	if layoutOver != nil {
		if layoutOver.SectionSpacing > 0 {
			t.SectionSpacing = layoutOver.SectionSpacing * PointsPerInch
		}
		if layoutOver.LineSpacing > 0 {
			t.LineSpacing = layoutOver.LineSpacing
		}
		if layoutOver.ParagraphSpacing > 0 {
			t.ParagraphSpacing = layoutOver.ParagraphSpacing * PointsPerInch
		}
	}
	return t, nil
}

func overrideColor(over *content.ThemeOverride, pick func(*content.ThemeOverride) string) string {
	if over == nil {
		return ""
	}
	return pick(over)
}
