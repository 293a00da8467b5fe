// Package layout holds page geometry, content density scoring and page break
// planning shared by all rendering templates.
package layout

import (
	"fmt"
	"strings"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

// PointsPerInch converts configured dimensions to PDF points.
const PointsPerInch = 72.0

// Geometry is the resolved physical page plan in points. Configured values
// are in inches, per-document overrides win over configuration.
type Geometry struct {
	PageSize   common.PageSize
	PageWidth  float64
	PageHeight float64

	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64

	BannerHeight    float64
	LeftColumnRatio float64
}

// NewGeometry resolves page geometry from configuration with optional
// per-document overrides. Zero override values keep configured ones.
func NewGeometry(cfg config.LayoutConfig, over *content.LayoutOverride) (*Geometry, error) {

	name := cfg.PageSize
	if over != nil && len(over.PageSize) > 0 {
		name = over.PageSize
	}
	ps, err := common.ParsePageSize(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("unsupported page size %q: %w", name, err)
	}
	w, h := ps.Dims()

	g := &Geometry{
		PageSize:        ps,
		PageWidth:       w,
		PageHeight:      h,
		LeftMargin:      cfg.LeftMargin * PointsPerInch,
		RightMargin:     cfg.RightMargin * PointsPerInch,
		TopMargin:       cfg.TopMargin * PointsPerInch,
		BottomMargin:    cfg.BottomMargin * PointsPerInch,
		BannerHeight:    cfg.BannerHeight * PointsPerInch,
		LeftColumnRatio: cfg.LeftColumnRatio,
	}

	if over != nil {
		if over.LeftMargin > 0 {
			g.LeftMargin = over.LeftMargin * PointsPerInch
		}
		if over.RightMargin > 0 {
			g.RightMargin = over.RightMargin * PointsPerInch
		}
		if over.TopMargin > 0 {
			g.TopMargin = over.TopMargin * PointsPerInch
		}
		if over.BottomMargin > 0 {
			g.BottomMargin = over.BottomMargin * PointsPerInch
		}
		if over.BannerHeight > 0 {
			g.BannerHeight = over.BannerHeight * PointsPerInch
		}
		if over.LeftColumnRatio > 0 {
			g.LeftColumnRatio = over.LeftColumnRatio
		}
	}

	if g.LeftColumnRatio <= 0 || g.LeftColumnRatio >= 1 {
		return nil, fmt.Errorf("left column ratio %f out of range", g.LeftColumnRatio)
	}
	return g, nil
}

// ContentWidth is the page width between the side margins.
func (g *Geometry) ContentWidth() float64 {
	return g.PageWidth - g.LeftMargin - g.RightMargin
}

// ContentHeight is the page height between the vertical margins.
func (g *Geometry) ContentHeight() float64 {
	return g.PageHeight - g.TopMargin - g.BottomMargin
}

// ContentTop is the cursor position at the top of the content area, directly
// under the top margin.
func (g *Geometry) ContentTop() float64 {
	return g.PageHeight - g.TopMargin
}

// ColumnTop is the cursor position where column content starts, under the
// banner. Continuation pages redraw the banner so the same value applies on
// every page.
func (g *Geometry) ColumnTop() float64 {
	return g.PageHeight - g.BannerHeight - g.TopMargin
}

// LeftColumnWidth is the full width of the left column including its share of
// the left margin.
func (g *Geometry) LeftColumnWidth() float64 {
	return g.PageWidth * g.LeftColumnRatio
}

// RightColumnX is the x coordinate where the right column starts.
func (g *Geometry) RightColumnX() float64 {
	return g.LeftColumnWidth()
}

// RightColumnWidth is the drawable width of the right column.
func (g *Geometry) RightColumnWidth() float64 {
	return g.PageWidth - g.RightColumnX() - g.RightMargin
}
