package templates

import (
	"context"

	"cvg/content"
	"cvg/layout"
	"cvg/render"
)

// horizontal inset of sidebar content from the column edge
const sidebarInset = 0.3 * layout.PointsPerInch

// Sidebar is the modern layout: a full height tinted sidebar with picture,
// contacts, skills and education, the main narrative beside it. The sidebar
// background repaints on every page.
type Sidebar struct{}

func (*Sidebar) Name() string { return "sidebar" }

func (*Sidebar) Render(ctx context.Context, job *Job, surf render.Surface) (render.Result, error) {
	if err := ctx.Err(); err != nil {
		return render.Result{}, err
	}

	geom := job.Geom
	p := newPainter(job, surf, geom.ContentTop())
	chrome := func() { p.drawSidebarChrome() }
	chrome()

	sideWidth := geom.LeftColumnWidth()
	mainX := sideWidth + 0.3*layout.PointsPerInch
	mainWidth := geom.PageWidth - mainX - geom.RightMargin
	top := geom.ContentTop()

	y := p.sidebarPicture(0, sideWidth, top)
	y = p.sidebarContacts(0, sideWidth, y, chrome)
	y = p.sidebarSkills(0, sideWidth, y, chrome)
	y = p.sidebarEducation(0, sideWidth, y, chrome)
	p.sidebarMoreDetails(0, sideWidth, y, chrome)

	mainY := p.mainName(mainX, top)
	mainY = p.mainProfile(mainX, mainWidth, mainY, chrome)
	mainY = p.mainExperience(mainX, mainWidth, mainY, chrome)
	p.mainProjects(mainX, mainWidth, mainY, chrome)

	return render.Result{Pages: surf.Pages()}, nil
}

func (p *painter) drawSidebarChrome() {
	p.surf.FillRect(0, 0, p.geom.LeftColumnWidth(), p.geom.PageHeight, p.th.Primary)
}

// sidebarSectionHeader draws a white title with a secondary underline. The
// caller applies spacing below it.
func (p *painter) sidebarSectionHeader(title string, x, y, width float64) float64 {
	p.surf.Text(x+sidebarInset, y, title, p.state(p.th.HeaderFont, p.th.HeaderFontSize, white))

	lineY := y - 0.15*layout.PointsPerInch
	p.surf.Line(x+sidebarInset, lineY, x+width-sidebarInset, lineY, p.th.Secondary, 1)
	return y
}

func (p *painter) sidebarPicture(x, width, startY float64) float64 {
	if len(p.job.Picture) == 0 {
		return startY
	}

	radius := width / 3
	if max := 1.2 * layout.PointsPerInch; radius > max {
		radius = max
	}
	centerY := startY - 1.5*layout.PointsPerInch
	p.surf.CircleImage(p.job.Picture, p.job.PictureFormat, x+width/2, centerY, radius, p.th.Secondary)

	return centerY - radius - 0.5*layout.PointsPerInch
}

func (p *painter) sidebarContacts(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Candidate.Contact) == 0 {
		return startY
	}

	y := p.sidebarSectionHeader("CONTACT", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	textX := x + sidebarInset + 0.4*layout.PointsPerInch
	available := width - 0.7*layout.PointsPerInch

	for _, c := range p.doc.Candidate.Contact {
		y = p.flow.CheckPageBreak(y, p.th.LineSpacing*1.5, chrome)

		icon, iconFont := c.Icon, p.th.IconFont
		if p.surf.TextWidth(icon, iconFont, 12) <= 0 {
			icon, iconFont = bulletGlyph, p.th.BodyFont
		}
		p.surf.Text(x+sidebarInset, y, icon, p.state(iconFont, 12, white))

		text := c.Text
		if p.surf.TextWidth(text, p.th.BodyFont, p.th.BodyFontSize) > available {
			text = p.engine(p.th.BodyFont, p.th.BodyFontSize).TruncateWithEllipsis(text, available)
		}
		p.surf.Text(textX, y, text, p.state(p.th.BodyFont, p.th.BodyFontSize, white))

		y -= p.th.LineSpacing * 1.2
	}
	return y - p.th.SectionSpacing
}

// sidebarBullet draws a white bulleted item, wrapped to the sidebar width.
// Returns the baseline of the last drawn line.
func (p *painter) sidebarBullet(text string, x, y, width float64) float64 {
	bulletX := x + 0.4*layout.PointsPerInch
	textX := bulletX + 0.2*layout.PointsPerInch
	available := width - (textX - x) - sidebarInset

	st := p.state(p.th.BodyFont, p.th.BodyFontSize, white)
	p.surf.Text(bulletX, y, bulletGlyph, st)

	for i, line := range p.engine(st.Font, st.Size).Wrap(text, available) {
		if i > 0 {
			y -= p.th.LineSpacing
		}
		if len(line) > 0 {
			p.surf.Text(textX, y, line, st)
		}
	}
	return y
}

func (p *painter) sidebarSkills(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.TechnicalSkills) == 0 {
		return startY
	}

	title := "TECHNICAL SKILLS"
	if p.surf.TextWidth(title, p.th.HeaderFont, p.th.HeaderFontSize) > width-0.6*layout.PointsPerInch {
		title = "TECH SKILLS"
	}
	y := p.sidebarSectionHeader(title, x, startY, width)
	y -= p.th.LineSpacing * 1.5

	for _, group := range p.doc.TechnicalSkills {
		total := p.th.LineSpacing * 1.5
		for _, skill := range group.Skills {
			total += p.textHeight(skill, width-0.9*layout.PointsPerInch, p.th.LineSpacing,
				p.th.BodyFont, p.th.BodyFontSize) + p.th.LineSpacing*0.7
		}
		y = p.flow.CheckPageBreak(y, total, chrome)

		p.surf.Text(x+sidebarInset, y, group.Category, p.state(p.th.HeaderFont, p.th.BodyFontSize, white))
		y -= p.th.LineSpacing * 1.2

		for _, skill := range group.Skills {
			y = p.sidebarBullet(skill, x, y, width)
			y -= p.th.LineSpacing * 0.7
		}
		y -= p.th.LineSpacing * 0.5
	}
	return y - p.th.SectionSpacing
}

func (p *painter) sidebarEducation(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Education.Items) == 0 {
		return startY
	}

	y := p.sidebarSectionHeader("EDUCATION", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	for _, e := range p.doc.Education.Items {
		needed := p.textHeight(e.Institution, width-0.6*layout.PointsPerInch, p.th.LineSpacing,
			p.th.HeaderFont, p.th.BodyFontSize) + p.th.LineSpacing*0.5
		if len(e.Degree) > 0 {
			needed += p.textHeight(e.Degree, width-0.8*layout.PointsPerInch, p.th.LineSpacing,
				p.th.BodyFont, p.th.BodyFontSize) + p.th.LineSpacing*0.5
		}
		if len(e.Duration) > 0 {
			needed += p.th.LineSpacing
		}
		needed += p.th.ParagraphSpacing
		y = p.flow.CheckPageBreak(y, needed, chrome)

		y = p.drawWrapped(e.Institution, x, y, width-sidebarInset, sidebarInset, p.th.LineSpacing,
			p.state(p.th.HeaderFont, p.th.BodyFontSize, white))
		y -= p.th.LineSpacing * 0.5

		if len(e.Degree) > 0 {
			y = p.drawWrapped(e.Degree, x, y, width-0.4*layout.PointsPerInch, 0.4*layout.PointsPerInch,
				p.th.LineSpacing, p.state(p.th.BodyFont, p.th.BodyFontSize, white))
			y -= p.th.LineSpacing * 0.5
		}
		if len(e.Duration) > 0 {
			p.surf.Text(x+0.4*layout.PointsPerInch, y, e.Duration,
				p.state(p.th.BodyFont, p.th.BodyFontSize-0.5, white))
			y -= p.th.LineSpacing
		}
		y -= p.th.ParagraphSpacing
	}
	return y - p.th.SectionSpacing
}

func (p *painter) sidebarMoreDetails(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.AdditionalInfo) == 0 {
		return startY
	}

	y := p.sidebarSectionHeader("MORE DETAILS", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	for _, info := range p.doc.AdditionalInfo {
		needed := p.textHeight(info, width-0.9*layout.PointsPerInch, p.th.LineSpacing,
			p.th.BodyFont, p.th.BodyFontSize) + p.th.LineSpacing
		y = p.flow.CheckPageBreak(y, needed, chrome)

		y = p.sidebarBullet(info, x, y, width)
		y -= p.th.LineSpacing
	}
	return y - p.th.SectionSpacing
}

// mainSectionHeader draws the main column header with a primary underline.
func (p *painter) mainSectionHeader(title string, x, y, width float64) float64 {
	p.surf.Text(x, y, title, p.state(p.th.HeaderFont, p.th.HeaderFontSize+1, p.th.Primary))

	lineY := y - 0.15*layout.PointsPerInch
	p.surf.Line(x, lineY, x+width, lineY, p.th.Primary, 1)
	return y
}

func (p *painter) mainName(x, startY float64) float64 {
	p.surf.Text(x, startY-0.5*layout.PointsPerInch, p.doc.Candidate.Name,
		p.state(p.th.HeaderFont, 24, p.th.Primary))
	return startY - layout.PointsPerInch
}

func (p *painter) mainProfile(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Profile) == 0 {
		return startY
	}

	y := p.mainSectionHeader("PROFILE", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	lead := p.th.LineSpacing * 1.3
	for _, paragraph := range splitParagraphs(p.doc.Profile) {
		height := p.textHeight(paragraph, width, lead, p.th.BodyFont, p.th.BodyFontSize)
		y = p.flow.CheckPageBreak(y, height, chrome)
		y = p.drawWrapped(paragraph, x, y, width, 0, lead, p.bodyState())
		y -= p.th.LineSpacing
	}
	return y - p.th.SectionSpacing
}

// companyHeading draws the company name with the period right aligned when it
// fits, on the next line otherwise.
func (p *painter) companyHeading(c content.Company, first bool, x, y, width float64) float64 {
	period := c.DateRange(first)

	p.surf.Text(x, y, c.Name, p.state(p.th.HeaderFont, p.th.BodyFontSize+1, p.th.Primary))

	if len(period) == 0 {
		return y - p.th.LineSpacing*1.2
	}

	nameW := p.surf.TextWidth(c.Name, p.th.HeaderFont, p.th.BodyFontSize+1)
	periodW := p.surf.TextWidth(period, p.th.BodyFont, p.th.BodyFontSize)
	if nameW+20+periodW <= width {
		p.surf.Text(x+width-periodW, y, period, p.bodyState())
		return y - p.th.LineSpacing*1.2
	}

	y -= p.th.LineSpacing
	p.surf.Text(x+20, y, period, p.bodyState())
	return y - p.th.LineSpacing*0.7
}

func (p *painter) estimateCompanyHeading(c content.Company, first bool, width float64) float64 {
	nameW := p.surf.TextWidth(c.Name, p.th.HeaderFont, p.th.BodyFontSize+1)
	periodW := p.surf.TextWidth(c.DateRange(first), p.th.BodyFont, p.th.BodyFontSize)
	if nameW+20+periodW <= width {
		return p.th.LineSpacing * 1.5
	}
	return p.th.LineSpacing * 2.5
}

// estimateFlowCompany overestimates a company entry for keep-together
// decisions in the flowing layouts.
func (p *painter) estimateFlowCompany(c content.Company, first bool, width float64) float64 {
	total := p.estimateCompanyHeading(c, first, width)
	for _, role := range c.Roles {
		total += p.th.LineSpacing * 1.5
		for _, resp := range role.Responsibilities {
			total += p.bulletHeight(resp, width-0.4*layout.PointsPerInch) + p.th.LineSpacing*0.5
		}
		total += p.th.LineSpacing
	}
	return total + p.th.ParagraphSpacing*2
}

func (p *painter) mainExperience(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Experience.Companies) == 0 {
		return startY
	}

	y := startY
	header := func() {
		y = p.mainSectionHeader("PROFESSIONAL EXPERIENCE", x, y, width)
		y -= p.th.LineSpacing * 1.5
	}
	header()

	for i, company := range p.doc.Experience.Companies {
		needed := p.estimateFlowCompany(company, i == 0, width) + 20
		if p.flow.Remaining(y)-5 < needed {
			p.flow.NewPage(chrome)
			y = p.flow.Top()
			header()
		}

		y = p.companyHeading(company, i == 0, x, y, width)

		for _, role := range company.Roles {
			roleNeeded := p.th.LineSpacing * 2
			for _, resp := range role.Responsibilities {
				roleNeeded += p.bulletHeight(resp, width-0.4*layout.PointsPerInch) + p.th.LineSpacing*0.5
			}
			y = p.flow.CheckPageBreak(y, roleNeeded, chrome)

			p.surf.Text(x+0.2*layout.PointsPerInch, y, role.Title,
				p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Secondary))
			y -= p.th.LineSpacing

			for _, resp := range role.Responsibilities {
				y = p.drawBulleted(resp, x+0.4*layout.PointsPerInch, y, width-0.4*layout.PointsPerInch, p.bodyState())
				y -= p.th.LineSpacing * 0.5
			}
			y -= p.th.LineSpacing
		}
		y -= p.th.ParagraphSpacing
	}
	return y - p.th.SectionSpacing
}

func (p *painter) mainProjects(x, width, startY float64, chrome func()) float64 {
	y := startY

	if len(p.doc.Projects) > 0 {
		y = p.mainSectionHeader("PROJECTS & ACHIEVEMENTS", x, y, width)
		y -= p.th.LineSpacing * 1.5

		for _, project := range p.doc.Projects {
			needed := p.textHeight(project.Title, width, p.th.LineSpacing,
				p.th.HeaderFont, p.th.BodyFontSize) + p.th.LineSpacing*1.5
			if len(project.Description) > 0 {
				needed += p.textHeight(project.Description, width-0.2*layout.PointsPerInch,
					p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize)
			}
			y = p.flow.CheckPageBreak(y, needed, chrome)

			p.surf.Text(x, y, project.Title, p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Primary))
			y -= p.th.LineSpacing

			if len(project.Description) > 0 {
				y = p.drawWrapped(project.Description, x, y, width, 0.2*layout.PointsPerInch,
					p.th.LineSpacing, p.bodyState())
			}
			y -= p.th.ParagraphSpacing
		}
	}

	if len(p.doc.References) > 0 {
		needed := p.textHeight(p.doc.References, width, p.th.LineSpacing,
			p.th.BodyFont, p.th.BodyFontSize) + p.th.LineSpacing*2
		y = p.flow.CheckPageBreak(y, needed, chrome)

		y = p.mainSectionHeader("REFERENCES", x, y, width)
		y -= p.th.LineSpacing * 1.2
		y = p.drawWrapped(p.doc.References, x, y, width, 0, p.th.LineSpacing, p.bodyState())
	}
	return y
}
