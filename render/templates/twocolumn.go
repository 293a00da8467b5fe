package templates

import (
	"context"

	"cvg/render"
)

// TwoColumn is the banner layout: a full width banner on top, a tinted left
// column with skills and education, the main narrative on the right. Both
// columns share one page sequence and the banner repaints on every page.
type TwoColumn struct{}

func (*TwoColumn) Name() string { return "two-column" }

func (*TwoColumn) Render(ctx context.Context, job *Job, surf render.Surface) (render.Result, error) {
	if err := ctx.Err(); err != nil {
		return render.Result{}, err
	}

	geom := job.Geom
	p := newPainter(job, surf, geom.ColumnTop())
	chrome := func() { p.drawBanner(true) }
	chrome()

	leftX := geom.LeftMargin
	leftWidth := geom.LeftColumnWidth() - geom.LeftMargin
	rightX := geom.LeftColumnWidth() + geom.LeftMargin*0.8
	rightWidth := geom.PageWidth - rightX - geom.RightMargin
	top := geom.ColumnTop()

	leftY := p.skillsSection(leftX, leftWidth, top, chrome)
	rightY := p.profileSection(rightX, rightWidth, top, chrome)

	leftY = p.educationSection(leftX, leftWidth, leftY, chrome)
	p.moreDetailsSection(leftX, leftWidth, leftY, chrome)

	// the left column may have moved to a later page, the right column
	// resumes at the top of the current one
	if p.flow.Page() > 1 {
		rightY = top
	}
	rightY = p.experienceSection(rightX, rightWidth, rightY, chrome)
	p.projectsSection(rightX, rightWidth, rightY, chrome)

	return render.Result{Pages: surf.Pages()}, nil
}
