package templates

import (
	"context"
	"strings"

	"cvg/content"
	"cvg/layout"
	"cvg/render"
)

// vertical space the minimal header occupies below the top margin
const minimalHeaderHeight = 1.5 * layout.PointsPerInch

// SingleColumn is the minimal layout: a slim header with the name, a
// horizontal contact row and all sections flowing in one column. The header
// repaints on every page.
type SingleColumn struct{}

func (*SingleColumn) Name() string { return "single-column" }

func (*SingleColumn) Render(ctx context.Context, job *Job, surf render.Surface) (render.Result, error) {
	if err := ctx.Err(); err != nil {
		return render.Result{}, err
	}

	geom := job.Geom
	p := newPainter(job, surf, geom.ContentTop()-minimalHeaderHeight)
	chrome := func() { p.drawMinimalHeader() }
	chrome()

	x := geom.LeftMargin
	width := geom.ContentWidth()
	y := p.flow.Top()

	y = p.minimalProfile(x, width, y, chrome)
	y = p.minimalSkills(x, width, y, chrome)
	y = p.minimalExperience(x, width, y, chrome)

	// trailing sections move to a fresh page whole when they do not fit
	y = p.minimalEducation(x, width, y, chrome)
	y = p.minimalProjects(x, width, y, chrome)
	p.minimalInfo(x, width, y, chrome)

	return render.Result{Pages: surf.Pages()}, nil
}

func (p *painter) drawMinimalHeader() {
	geom := p.geom

	nameY := geom.PageHeight - geom.TopMargin - 0.3*layout.PointsPerInch
	p.surf.Text(geom.LeftMargin, nameY, p.doc.Candidate.Name, p.state(p.th.HeaderFont, 18, p.th.Primary))

	lineY := nameY - 0.2*layout.PointsPerInch
	p.surf.Line(geom.LeftMargin, lineY, geom.PageWidth-geom.RightMargin, lineY, p.th.Accent, 1)

	p.drawMinimalContacts(lineY - 0.3*layout.PointsPerInch)

	if len(p.job.Picture) > 0 {
		radius := geom.RightMargin * 0.8
		if radius > 30 {
			radius = 30
		}
		p.surf.CircleImage(p.job.Picture, p.job.PictureFormat,
			geom.PageWidth-geom.RightMargin-radius, nameY-0.1*layout.PointsPerInch, radius, p.th.Secondary)
	}
}

// drawMinimalContacts lays the first contact entries out in one centered row,
// truncating entries which would not share the row.
func (p *painter) drawMinimalContacts(y float64) {
	entries := p.doc.Candidate.Contact
	if len(entries) > 4 {
		entries = entries[:4]
	}
	if len(entries) == 0 {
		return
	}

	const iconSize, textSize, gap = 9.0, 9.0, 25.0
	maxItem := p.geom.ContentWidth()/float64(len(entries)) - gap

	type item struct {
		icon, iconFont, text string
		width                float64
	}
	items := make([]item, 0, len(entries))
	total := 0.0
	for _, e := range entries {
		it := item{icon: e.Icon, iconFont: p.th.IconFont, text: e.Text}
		if p.surf.TextWidth(it.icon, it.iconFont, iconSize) <= 0 {
			it.icon, it.iconFont = bulletGlyph, p.th.BodyFont
		}
		iconW := p.surf.TextWidth(it.icon, it.iconFont, iconSize)
		if iconW+5+p.surf.TextWidth(it.text, p.th.BodyFont, textSize) > maxItem {
			it.text = p.engine(p.th.BodyFont, textSize).TruncateWithEllipsis(it.text, maxItem-iconW-5)
		}
		it.width = iconW + 5 + p.surf.TextWidth(it.text, p.th.BodyFont, textSize)
		items = append(items, it)
		total += it.width
	}
	total += gap * float64(len(items)-1)

	x := (p.geom.PageWidth - total) / 2
	if x < p.geom.LeftMargin {
		x = p.geom.LeftMargin
	}
	for _, it := range items {
		p.surf.Text(x, y, it.icon, p.state(it.iconFont, iconSize, p.th.Text))
		iconW := p.surf.TextWidth(it.icon, it.iconFont, iconSize)
		p.surf.Text(x+iconW+5, y, it.text, p.state(p.th.BodyFont, textSize, p.th.Text))
		x += it.width + gap
	}
}

// minimalSectionHeader draws a plain title with a short accent underline.
func (p *painter) minimalSectionHeader(title string, x, y, width float64) float64 {
	p.surf.Text(x, y, title, p.state(p.th.HeaderFont, p.th.HeaderFontSize+1, p.th.Primary))

	lineY := y - 0.1*layout.PointsPerInch
	p.surf.Line(x, lineY, x+width*0.4, lineY, p.th.Accent, 0.5)
	return y
}

func (p *painter) minimalProfile(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Profile) == 0 {
		return startY
	}

	y := p.minimalSectionHeader("PROFILE", x, startY, width)
	y -= p.th.LineSpacing

	lead := p.th.LineSpacing * 1.3
	for _, paragraph := range splitParagraphs(p.doc.Profile) {
		y = p.flow.CheckPageBreak(y, p.textHeight(paragraph, width, lead, p.th.BodyFont, p.th.BodyFontSize), chrome)
		y = p.drawWrapped(paragraph, x, y, width, 0, lead, p.bodyState())
		y -= p.th.LineSpacing
	}
	return y - p.th.SectionSpacing
}

// minimalSkills renders short categories inline with their skills and wraps
// the longer ones onto their own block.
func (p *painter) minimalSkills(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.TechnicalSkills) == 0 {
		return startY
	}

	y := p.minimalSectionHeader("TECHNICAL SKILLS", x, startY, width)
	y -= p.th.LineSpacing * 1.2

	for _, group := range p.doc.TechnicalSkills {
		heading := group.Category + ":"
		joined := strings.Join(group.Skills, ", ")

		y = p.flow.CheckPageBreak(y,
			p.textHeight(heading+" "+joined, width, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize), chrome)

		p.surf.Text(x, y, heading, p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Text))
		headingW := p.surf.TextWidth(heading, p.th.HeaderFont, p.th.BodyFontSize)

		if headingW < width*0.25 && len(joined) < 50 {
			p.surf.Text(x+headingW+5, y, joined, p.bodyState())
			y -= p.th.LineSpacing * 1.2
		} else {
			y -= p.th.LineSpacing
			y = p.drawWrapped(joined, x, y, width-5, 10, p.th.LineSpacing, p.bodyState())
			y -= p.th.LineSpacing * 1.2
		}
	}
	return y - p.th.SectionSpacing
}

func (p *painter) minimalExperience(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Experience.Companies) == 0 {
		return startY
	}

	y := startY
	header := func() {
		y = p.minimalSectionHeader("PROFESSIONAL EXPERIENCE", x, y, width)
		y -= p.th.LineSpacing * 1.5
	}
	header()

	for i, company := range p.doc.Experience.Companies {
		needed := p.estimateFlowCompany(company, i == 0, width)
		if p.flow.Remaining(y)-5 < needed {
			p.flow.NewPage(chrome)
			y = p.flow.Top()
			header()
		}

		y = p.companyHeading(company, i == 0, x, y, width)

		for _, role := range company.Roles {
			p.surf.Text(x+10, y, role.Title, p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Secondary))
			y -= p.th.LineSpacing

			for _, resp := range role.Responsibilities {
				y = p.drawBulleted(resp, x+20, y, width-20, p.bodyState())
				y -= p.th.LineSpacing * 0.5
			}
			y -= p.th.LineSpacing * 0.5
		}
		y -= p.th.ParagraphSpacing
	}
	return y - p.th.SectionSpacing
}

func (p *painter) estimateMinimalEducation(e content.EducationItem, width float64) float64 {
	h := p.th.LineSpacing
	if len(e.Degree) > 0 {
		h += p.textHeight(e.Degree, width-10, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize)
	}
	return h + p.th.ParagraphSpacing*0.5
}

func (p *painter) minimalEducation(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Education.Items) == 0 {
		return startY
	}

	total := p.th.LineSpacing * 2
	for _, e := range p.doc.Education.Items {
		total += p.estimateMinimalEducation(e, width)
	}

	y := startY
	if p.flow.Remaining(y) < total+p.th.SectionSpacing {
		p.flow.NewPage(chrome)
		y = p.flow.Top()
	}

	y = p.minimalSectionHeader("EDUCATION", x, y, width)
	y -= p.th.LineSpacing * 1.5

	for _, e := range p.doc.Education.Items {
		y = p.flow.CheckPageBreak(y, p.estimateMinimalEducation(e, width), chrome)

		p.surf.Text(x, y, e.Institution, p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Primary))

		if len(e.Duration) > 0 {
			st := p.state(p.th.BodyFont, p.th.BodyFontSize-0.5, p.th.Text)
			durW := p.surf.TextWidth(e.Duration, st.Font, st.Size)
			instW := p.surf.TextWidth(e.Institution, p.th.HeaderFont, p.th.BodyFontSize)
			if instW+10 < width-durW {
				p.surf.Text(x+width-durW, y, e.Duration, st)
			} else {
				y -= p.th.LineSpacing * 0.8
				p.surf.Text(x+10, y, e.Duration, st)
				y -= p.th.LineSpacing * 0.2
			}
		}
		y -= p.th.LineSpacing

		if len(e.Degree) > 0 {
			y = p.drawWrapped(e.Degree, x+10, y, width-10, 0, p.th.LineSpacing, p.bodyState())
		}
		y -= p.th.ParagraphSpacing * 0.5
	}
	return y - p.th.SectionSpacing
}

func (p *painter) minimalProjects(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Projects) == 0 {
		return startY
	}

	estimate := func(pr content.Project) float64 {
		h := p.textHeight(pr.Title, width, p.th.LineSpacing, p.th.HeaderFont, p.th.BodyFontSize)
		if len(pr.Description) > 0 {
			h += p.textHeight(pr.Description, width-10, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize)
		}
		return h + p.th.ParagraphSpacing*0.5
	}

	total := p.th.LineSpacing * 2
	for _, pr := range p.doc.Projects {
		total += estimate(pr)
	}

	y := startY
	if p.flow.Remaining(y) < total+p.th.SectionSpacing {
		p.flow.NewPage(chrome)
		y = p.flow.Top()
	}

	y = p.minimalSectionHeader("PROJECTS & ACHIEVEMENTS", x, y, width)
	y -= p.th.LineSpacing * 1.5

	for _, pr := range p.doc.Projects {
		y = p.flow.CheckPageBreak(y, estimate(pr), chrome)

		y = p.drawWrapped(pr.Title, x, y, width, 0, p.th.LineSpacing,
			p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Primary))

		if len(pr.Description) > 0 {
			y = p.drawWrapped(pr.Description, x+10, y, width-10, 0, p.th.LineSpacing, p.bodyState())
		}
		y -= p.th.ParagraphSpacing * 0.5
	}
	return y - p.th.SectionSpacing
}

func (p *painter) minimalInfo(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.AdditionalInfo) == 0 {
		return startY
	}

	total := p.th.LineSpacing * 2
	for _, info := range p.doc.AdditionalInfo {
		total += p.bulletHeight(info, width-5) + p.th.LineSpacing*0.6
	}

	y := startY
	if p.flow.Remaining(y) < total+p.th.SectionSpacing {
		p.flow.NewPage(chrome)
		y = p.flow.Top()
	}

	y = p.minimalSectionHeader("ADDITIONAL INFORMATION", x, y, width)
	y -= p.th.LineSpacing * 1.5

	for _, info := range p.doc.AdditionalInfo {
		y = p.flow.CheckPageBreak(y, p.bulletHeight(info, width-5)+p.th.LineSpacing*0.6, chrome)
		y = p.drawBulleted(info, x+5, y, width-5, p.bodyState())
		y -= p.th.LineSpacing * 0.6
	}
	return y - p.th.SectionSpacing
}
