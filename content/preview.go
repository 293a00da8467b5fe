package content

// Limits applied when reducing a document to its preview form.
const (
	previewProfileChars    = 200
	previewSkillsPerGroup  = 3
	previewRoleCount       = 1
	previewResponsibyCount = 2
)

// Preview returns a reduced copy of the document: trimmed profile, a few
// skills per category, the most recent company with a single role, and the
// latest education entry. Used for quick single page proofs.
func (c *Content) Preview() *Document {
	doc := c.Doc
	out := &Document{
		Candidate: doc.Candidate,
		Profile:   c.previewProfile(doc.Profile),
		Theme:     doc.Theme,
		Layout:    doc.Layout,
	}

	for _, g := range doc.TechnicalSkills {
		skills := g.Skills
		if len(skills) > previewSkillsPerGroup {
			skills = skills[:previewSkillsPerGroup]
		}
		out.TechnicalSkills = append(out.TechnicalSkills, SkillGroup{Category: g.Category, Skills: skills})
	}

	if len(doc.Experience.Companies) > 0 {
		first := doc.Experience.Companies[0]
		if len(first.Roles) > previewRoleCount {
			first.Roles = first.Roles[:previewRoleCount]
		}
		roles := make([]Role, len(first.Roles))
		for i, role := range first.Roles {
			if len(role.Responsibilities) > previewResponsibyCount {
				role.Responsibilities = role.Responsibilities[:previewResponsibyCount]
			}
			roles[i] = role
		}
		first.Roles = roles
		out.Experience.Companies = []Company{first}
	}

	if len(doc.Education.Items) > 0 {
		out.Education.Items = []EducationItem{doc.Education.Items[0]}
	}

	return out
}

// previewProfile cuts long profile text at a sentence boundary close to the
// character limit. When even the first sentence is too long falls back to a
// hard cut.
func (c *Content) previewProfile(profile string) string {
	if len(profile) <= previewProfileChars {
		return profile
	}

	var out string
	for _, sentence := range c.Splitter.Split(profile) {
		if len(out)+len(sentence) > previewProfileChars {
			break
		}
		out += sentence
	}
	if out == "" {
		runes := []rune(profile)
		if len(runes) > previewProfileChars {
			runes = runes[:previewProfileChars]
		}
		out = string(runes)
	}
	return out + "..."
}
