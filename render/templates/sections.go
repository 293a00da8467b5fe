package templates

import (
	"go.uber.org/zap"
)

// Shared section routines. Every keep-together decision estimates the block
// with the same wrapping engine its draw call uses, so a block judged to fit
// never runs past the bottom margin.

// skillsSection draws the grouped skills list, one bulleted line per skill.
func (p *painter) skillsSection(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.TechnicalSkills) == 0 {
		return startY
	}

	y := p.multilineSectionHeader("TECHNICAL EXPERTISE", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	for _, group := range p.doc.TechnicalSkills {
		// keep a category together with its skills
		total := p.th.LineSpacing * 1.2
		for _, skill := range group.Skills {
			total += p.bulletHeight(skill, width-bulletIndent) + p.th.LineSpacing*0.4
		}
		total += p.th.LineSpacing * 1.2
		y = p.flow.CheckPageBreak(y, total, chrome)

		p.surf.Text(x+5, y, group.Category, p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Text))
		y -= p.th.LineSpacing * 1.2

		for _, skill := range group.Skills {
			y = p.drawBulleted(skill, x+bulletIndent, y, width-bulletIndent, p.bodyState())
			y -= p.th.LineSpacing * 0.4
		}
		y -= p.th.LineSpacing * 0.8
	}
	return y - p.th.SectionSpacing
}

func (p *painter) estimateEducationItem(item educationItem, width float64) float64 {
	h := p.textHeight(item.institution, width-10, p.th.LineSpacing, p.th.HeaderFont, p.th.BodyFontSize) +
		p.th.LineSpacing*0.4
	for _, detail := range item.details {
		if len(detail) > 0 {
			h += p.textHeight(detail, width-20, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize) +
				p.th.LineSpacing*0.5
		}
	}
	return h + p.th.ParagraphSpacing*0.4
}

type educationItem struct {
	institution string
	details     []string
}

// educationSection keeps each item whole and, when the entire section fits
// on a fresh page but not the current one, moves the whole section there.
func (p *painter) educationSection(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Education.Items) == 0 {
		return startY
	}

	items := make([]educationItem, 0, len(p.doc.Education.Items))
	for _, e := range p.doc.Education.Items {
		items = append(items, educationItem{institution: e.Institution, details: []string{e.Degree, e.Duration}})
	}

	total := headerBandHeight + p.th.LineSpacing*1.2
	for _, item := range items {
		total += p.estimateEducationItem(item, width)
	}
	total += p.th.SectionSpacing * 0.8

	y := startY
	if total > p.flow.Remaining(startY)-5 {
		p.flow.NewPage(chrome)
		y = p.flow.Top()
	}

	header := func() {
		y = p.sectionHeader("EDUCATION", x, y, width)
		y -= p.th.LineSpacing * 1.2
	}
	header()

	for _, item := range items {
		needed := p.estimateEducationItem(item, width)
		if p.flow.Remaining(y)-5 < needed {
			p.flow.NewPage(chrome)
			y = p.flow.Top()
			header()
		}

		y = p.drawWrapped(item.institution, x, y, width-5, 5, p.th.LineSpacing,
			p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Text))
		y -= p.th.LineSpacing * 0.4

		for _, detail := range item.details {
			if len(detail) == 0 {
				continue
			}
			y = p.drawWrapped(detail, x, y, width-10, 10, p.th.LineSpacing, p.bodyState())
			y -= p.th.LineSpacing * 0.5
		}
		y -= p.th.ParagraphSpacing * 0.4
	}
	return y - p.th.SectionSpacing*0.8
}

// moreDetailsSection draws the additional info bullets.
func (p *painter) moreDetailsSection(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.AdditionalInfo) == 0 {
		return startY
	}

	y := p.sectionHeader("MORE DETAILS", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	for _, info := range p.doc.AdditionalInfo {
		y = p.flow.CheckPageBreak(y, p.bulletHeight(info, width-bulletIndent), chrome)
		y = p.drawBulleted(info, x+bulletIndent, y, width-bulletIndent, p.bodyState())
		y -= p.th.LineSpacing * 0.6
	}
	return y - p.th.SectionSpacing
}

// profileSection draws the summary paragraphs with a wider leading.
func (p *painter) profileSection(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Profile) == 0 {
		return startY
	}

	y := p.sectionHeader("PROFILE", x, startY, width)
	y -= p.th.LineSpacing * 1.5

	lead := p.th.LineSpacing * 1.3
	for _, paragraph := range splitParagraphs(p.doc.Profile) {
		height := p.textHeight(paragraph, width-5, lead, p.th.BodyFont, p.th.BodyFontSize)
		y = p.flow.CheckPageBreak(y, height, chrome)
		y = p.drawWrapped(paragraph, x, y, width, 5, lead, p.bodyState())
		y -= p.th.LineSpacing * 1.2
	}
	return y - p.th.ParagraphSpacing*0.5
}

func (p *painter) estimateCompany(i int, width float64) float64 {
	company := p.doc.Experience.Companies[i]

	total := p.textHeight(company.HeaderLine(i == 0), width-5, p.th.LineSpacing,
		p.th.HeaderFont, p.th.BodyFontSize) + p.th.LineSpacing*0.7

	for _, role := range company.Roles {
		total += p.textHeight(role.Title, width-10, p.th.LineSpacing,
			p.th.BodyFont, p.th.BodyFontSize) + p.th.LineSpacing*0.6
		for _, resp := range role.Responsibilities {
			total += p.bulletHeight(resp, width-15) + p.th.LineSpacing*0.2
		}
		total += p.th.LineSpacing * 0.6
	}
	return total + p.th.ParagraphSpacing*0.4
}

// experienceSection draws companies with their roles, keeping each company
// together. A company taller than a full page still renders, overflowing the
// margin instead of being lost.
func (p *painter) experienceSection(x, width, startY float64, chrome func()) float64 {
	if len(p.doc.Experience.Companies) == 0 {
		return startY
	}

	y := startY
	header := func() {
		y = p.sectionHeader("PROFESSIONAL EXPERIENCE", x, y, width)
		y -= p.th.LineSpacing
	}
	header()

	for i, company := range p.doc.Experience.Companies {
		needed := p.estimateCompany(i, width)
		if p.flow.Remaining(y)-5 < needed {
			p.flow.NewPage(chrome)
			y = p.flow.Top()
			header()
			if needed > p.flow.Top()-p.geom.BottomMargin {
				p.job.Log.Warn("Company entry taller than a page, content will overflow",
					zap.String("company", company.Name))
			}
		}

		y = p.drawWrapped(company.HeaderLine(i == 0), x, y, width, 5, p.th.LineSpacing,
			p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Primary))
		y -= p.th.LineSpacing * 0.6

		for _, role := range company.Roles {
			y = p.drawWrapped(role.Title, x, y, width, 10, p.th.LineSpacing,
				p.state(p.th.BodyFont, p.th.BodyFontSize, p.th.Secondary))
			y -= p.th.LineSpacing * 0.5

			for _, resp := range role.Responsibilities {
				y = p.drawBulleted(resp, x+15, y, width-15, p.bodyState())
				y -= p.th.LineSpacing * 0.2
			}
			if len(role.Responsibilities) > 0 {
				y -= p.th.LineSpacing * 0.6
			}
		}
		y -= p.th.ParagraphSpacing * 0.4
	}
	return y
}

func (p *painter) estimateProject(title, description string, width float64) float64 {
	return p.textHeight(title, width-5, p.th.LineSpacing, p.th.HeaderFont, p.th.BodyFontSize) +
		p.th.LineSpacing*0.6 +
		p.textHeight(description, width-15, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize) +
		p.th.ParagraphSpacing*0.4
}

// projectsSection draws projects and the trailing references block.
func (p *painter) projectsSection(x, width, startY float64, chrome func()) float64 {

	y := startY

	if len(p.doc.Projects) > 0 {
		y = p.sectionHeader("PROJECTS & ACHIEVEMENTS", x, y, width)
		y -= p.th.LineSpacing

		for i, project := range p.doc.Projects {
			needed := p.estimateProject(project.Title, project.Description, width)
			if p.flow.Remaining(y)-5 < needed {
				p.flow.NewPage(chrome)
				y = p.flow.Top()
				if i == 0 {
					y = p.sectionHeader("PROJECTS & ACHIEVEMENTS", x, y, width)
					y -= p.th.LineSpacing
				}
			}

			y = p.drawWrapped(project.Title, x, y, width, 5, p.th.LineSpacing,
				p.state(p.th.HeaderFont, p.th.BodyFontSize, p.th.Primary))
			y -= p.th.LineSpacing * 0.6

			y = p.drawWrapped(project.Description, x+10, y, width-10, 5, p.th.LineSpacing, p.bodyState())
			y -= p.th.ParagraphSpacing * 0.4
		}
	}

	if len(p.doc.References) > 0 {
		needed := headerBandHeight + p.th.LineSpacing*1.2 +
			p.textHeight(p.doc.References, width-5, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize)
		if p.flow.Remaining(y)-5 < needed {
			p.flow.NewPage(chrome)
			y = p.flow.Top()
		}

		y = p.sectionHeader("REFERENCES", x, y, width)
		y -= p.th.LineSpacing
		y = p.drawWrapped(p.doc.References, x, y, width, 5, p.th.LineSpacing, p.bodyState())
	}
	return y
}

func splitParagraphs(text string) []string {
	var res []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] == '\n' && text[i+1] == '\n' {
			res = append(res, text[start:i])
			start = i + 2
			i++
		}
	}
	return append(res, text[start:])
}
