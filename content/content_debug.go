package content

import (
	"cvg/utils/debug"
)

// String returns a readable tree of the whole document.
// It exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	d := c.Doc
	tw := debug.NewTreeWriter()

	tw.Line(0, "Candidate: %q (%d contact entries)", d.Candidate.Name, len(d.Candidate.Contact))
	for _, contact := range d.Candidate.Contact {
		tw.Line(1, "Contact icon[%q]", contact.Icon)
		tw.TextBlock(2, "Text", contact.Text)
	}

	tw.TextBlock(0, "Profile", d.Profile)

	if len(d.TechnicalSkills) > 0 {
		tw.Line(0, "Technical skills: %d groups", len(d.TechnicalSkills))
		for _, g := range d.TechnicalSkills {
			tw.Line(1, "%s: %d skills", g.Category, len(g.Skills))
			for _, s := range g.Skills {
				tw.TextBlock(2, "Skill", s)
			}
		}
	}

	if len(d.Experience.Companies) > 0 {
		tw.Line(0, "Experience: %d companies", len(d.Experience.Companies))
		for i, company := range d.Experience.Companies {
			tw.Line(1, "Company[%q] dates[%q] roles[%d]", company.Name, company.DateRange(i == 0), len(company.Roles))
			for _, role := range company.Roles {
				tw.Line(2, "Role[%q] responsibilities[%d]", role.Title, len(role.Responsibilities))
				for _, resp := range role.Responsibilities {
					tw.TextBlock(3, "Item", resp)
				}
			}
		}
	}

	if len(d.Education.Items) > 0 {
		tw.Line(0, "Education: %d items", len(d.Education.Items))
		for _, item := range d.Education.Items {
			tw.Line(1, "Institution[%q] degree[%q] duration[%q]", item.Institution, item.Degree, item.Duration)
		}
	}

	if len(d.Projects) > 0 {
		tw.Line(0, "Projects: %d", len(d.Projects))
		for _, p := range d.Projects {
			tw.Line(1, "Project[%q]", p.Title)
			tw.TextBlock(2, "Description", p.Description)
		}
	}

	if len(d.AdditionalInfo) > 0 {
		tw.Line(0, "Additional info: %d items", len(d.AdditionalInfo))
		for _, info := range d.AdditionalInfo {
			tw.TextBlock(1, "Item", info)
		}
	}

	if d.References != "" {
		tw.TextBlock(0, "References", d.References)
	}

	return tw.String()
}
