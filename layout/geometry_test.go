package layout

import (
	"math"
	"testing"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

func baseLayoutConfig() config.LayoutConfig {
	return config.LayoutConfig{
		PageSize:         "a4",
		LeftMargin:       0.3,
		RightMargin:      0.3,
		TopMargin:        0.4,
		BottomMargin:     0.4,
		BannerHeight:     1.4,
		LeftColumnRatio:  0.3,
		SectionSpacing:   0.3,
		LineSpacing:      13,
		ParagraphSpacing: 0.12,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(baseLayoutConfig(), nil)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	if g.PageSize != common.PageSizeA4 {
		t.Errorf("page size = %v, want a4", g.PageSize)
	}
	if !near(g.PageWidth, 595.28) || !near(g.PageHeight, 841.89) {
		t.Errorf("a4 dimensions = %f x %f", g.PageWidth, g.PageHeight)
	}
	if !near(g.LeftMargin, 21.6) {
		t.Errorf("left margin = %f, want 21.6pt", g.LeftMargin)
	}
	if !near(g.BannerHeight, 100.8) {
		t.Errorf("banner height = %f, want 100.8pt", g.BannerHeight)
	}
}

func TestNewGeometryOverrides(t *testing.T) {
	over := &content.LayoutOverride{
		PageSize:        "letter",
		TopMargin:       0.5,
		LeftColumnRatio: 0.35,
	}

	g, err := NewGeometry(baseLayoutConfig(), over)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	if g.PageSize != common.PageSizeLetter {
		t.Errorf("page size = %v, want letter", g.PageSize)
	}
	if !near(g.TopMargin, 36) {
		t.Errorf("top margin = %f, want 36pt", g.TopMargin)
	}
	if !near(g.LeftColumnRatio, 0.35) {
		t.Errorf("ratio = %f, want 0.35", g.LeftColumnRatio)
	}
	// untouched values keep configured ones
	if !near(g.BottomMargin, 28.8) {
		t.Errorf("bottom margin = %f, want 28.8pt", g.BottomMargin)
	}
}

func TestNewGeometryBadPageSize(t *testing.T) {
	cfg := baseLayoutConfig()
	cfg.PageSize = "tabloid"
	if _, err := NewGeometry(cfg, nil); err == nil {
		t.Error("unknown page size should be rejected")
	}
}

func TestGeometryDerived(t *testing.T) {
	g, err := NewGeometry(baseLayoutConfig(), nil)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	if !near(g.ContentWidth(), g.PageWidth-43.2) {
		t.Errorf("content width = %f", g.ContentWidth())
	}
	if !near(g.ContentTop(), g.PageHeight-28.8) {
		t.Errorf("content top = %f", g.ContentTop())
	}
	if !near(g.ColumnTop(), g.PageHeight-100.8-28.8) {
		t.Errorf("column top = %f", g.ColumnTop())
	}
	if !near(g.LeftColumnWidth(), g.PageWidth*0.3) {
		t.Errorf("left column width = %f", g.LeftColumnWidth())
	}
	if !near(g.RightColumnX(), g.LeftColumnWidth()) {
		t.Errorf("right column x = %f", g.RightColumnX())
	}
	if !near(g.LeftColumnWidth()+g.RightColumnWidth()+g.RightMargin, g.PageWidth) {
		t.Error("columns and right margin should cover the page width")
	}
}
