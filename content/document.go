package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// Document is the structured CV content as loaded from the input JSON.
type Document struct {
	Candidate       Candidate       `json:"candidate"`
	Profile         string          `json:"profile"`
	TechnicalSkills SkillGroups     `json:"technical_skills,omitempty"`
	Education       Education       `json:"education,omitempty"`
	Experience      Experience      `json:"experience,omitempty"`
	AdditionalInfo  []string        `json:"additional_info,omitempty"`
	Projects        []Project       `json:"projects,omitempty"`
	References      string          `json:"references,omitempty"`
	Theme           *ThemeOverride  `json:"theme,omitempty"`
	Layout          *LayoutOverride `json:"layout,omitempty"`
}

type Candidate struct {
	Name    string    `json:"name"`
	Contact []Contact `json:"contact"`
}

// Contact is a single line in the banner contact block. Icon holds a glyph
// from the icon font, Text the value shown next to it.
type Contact struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// SkillGroup is a named category with its skills. Groups keep the order they
// have in the input file.
type SkillGroup struct {
	Category string
	Skills   []string
}

type SkillGroups []SkillGroup

// UnmarshalJSON reads the "technical_skills" object preserving key order,
// which encoding/json map decoding would lose.
func (sg *SkillGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("technical_skills: expected object, got %v", tok)
	}

	var groups SkillGroups
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("technical_skills: expected category name, got %v", tok)
		}
		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("technical_skills[%s]: %w", category, err)
		}
		groups = append(groups, SkillGroup{Category: category, Skills: skills})
	}
	*sg = groups
	return nil
}

// MarshalJSON writes skill groups back as an ordered object.
func (sg SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range sg {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Education struct {
	Items []EducationItem `json:"items"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

type Experience struct {
	Companies []Company `json:"companies"`
}

type Company struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsCurrent bool   `json:"isCurrent,omitempty"`
	Roles     []Role `json:"roles,omitempty"`
}

type Role struct {
	Title            string   `json:"title"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ThemeOverride carries per-document deviations from configured theme
// defaults. Zero values mean "keep the default".
type ThemeOverride struct {
	PrimaryColor    string  `json:"primary_color,omitempty"`
	SecondaryColor  string  `json:"secondary_color,omitempty"`
	AccentColor     string  `json:"accent_color,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty"`
	TextColor       string  `json:"text_color,omitempty"`
	HeaderFont      string  `json:"header_font,omitempty"`
	BodyFont        string  `json:"body_font,omitempty"`
	HeaderFontSize  float64 `json:"header_font_size,omitempty"`
	BodyFontSize    float64 `json:"body_font_size,omitempty"`
}

// LayoutOverride carries per-document deviations from configured layout
// defaults. Margins and spacings are in inches, line spacing in points.
type LayoutOverride struct {
	PageSize         string  `json:"page_size,omitempty"`
	LeftMargin       float64 `json:"left_margin,omitempty"`
	RightMargin      float64 `json:"right_margin,omitempty"`
	TopMargin        float64 `json:"top_margin,omitempty"`
	BottomMargin     float64 `json:"bottom_margin,omitempty"`
	BannerHeight     float64 `json:"banner_height,omitempty"`
	LeftColumnRatio  float64 `json:"left_column_width_ratio,omitempty"`
	SectionSpacing   float64 `json:"section_spacing,omitempty"`
	LineSpacing      float64 `json:"line_spacing,omitempty"`
	ParagraphSpacing float64 `json:"paragraph_spacing,omitempty"`
}

// Load parses CV JSON. Unknown fields are rejected so typos in section names
// surface immediately instead of silently dropping content.
func Load(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode CV data: %w", err)
	}
	return &doc, nil
}

// Validate checks structural requirements. All violations are reported at
// once rather than one per run.
func (d *Document) Validate() error {
	var err error

	if d.Candidate.Name == "" {
		err = multierr.Append(err, fmt.Errorf("candidate section must have a 'name' field"))
	}
	if d.Candidate.Contact == nil {
		err = multierr.Append(err, fmt.Errorf("candidate section must have a 'contact' field"))
	}
	for i, c := range d.Candidate.Contact {
		if c.Icon == "" || c.Text == "" {
			err = multierr.Append(err, fmt.Errorf("contact item %d must contain 'icon' and 'text' fields", i))
		}
	}

	if d.Profile == "" {
		err = multierr.Append(err, fmt.Errorf("required field 'profile' missing from CV data"))
	}

	for i, company := range d.Experience.Companies {
		if company.Name == "" {
			err = multierr.Append(err, fmt.Errorf("company %d must have a 'name' field", i))
		}
	}

	return err
}

// DateRange returns the displayed period for a company. The first company in
// the experience list always reads as current employment.
func (c Company) DateRange(first bool) string {
	if c.StartDate == "" {
		return ""
	}
	end := c.EndDate
	if first || c.IsCurrent {
		end = "Present"
	}
	return c.StartDate + " - " + end
}

// HeaderLine is the company heading as drawn: "Name | start - end".
func (c Company) HeaderLine(first bool) string {
	return c.Name + " | " + c.DateRange(first)
}
