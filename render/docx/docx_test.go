package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"cvg/common"
	"cvg/content"
	"cvg/layout"
)

func testGeometry() *layout.Geometry {
	return &layout.Geometry{
		PageSize:        common.PageSizeA4,
		PageWidth:       595.28,
		PageHeight:      841.89,
		LeftMargin:      21.6,
		RightMargin:     21.6,
		TopMargin:       28.8,
		BottomMargin:    28.8,
		BannerHeight:    100.8,
		LeftColumnRatio: 0.3,
	}
}

func testTheme() *layout.Theme {
	return &layout.Theme{
		Primary:    layout.RGB{R: 0, G: 48, B: 135},
		Secondary:  layout.RGB{R: 0, G: 112, B: 204},
		Background: layout.RGB{R: 245, G: 248, B: 252},
		Text:       layout.RGB{R: 51, G: 51, B: 51},
		BodyFont:   "Calibri",
		HeaderFont: "Calibri-Bold",

		HeaderFontSize: 14,
		BodyFontSize:   11,
	}
}

func testDocument() *content.Document {
	return &content.Document{
		Candidate: content.Candidate{
			Name: "Jordan Mills",
			Contact: []content.Contact{
				{Icon: "@", Text: "jordan@example.com"},
				{Icon: "#", Text: "+1 555 0100"},
				{Icon: "$", Text: "example.com"},
				{Icon: "%", Text: "City"},
			},
		},
		Profile: "First paragraph.\n\nSecond paragraph.",
		TechnicalSkills: content.SkillGroups{
			{Category: "Languages", Skills: []string{"Go", "Python"}},
		},
		Education: content.Education{Items: []content.EducationItem{
			{Institution: "State University", Degree: "BSc", Duration: "2008-2012"},
		}},
		Experience: content.Experience{Companies: []content.Company{
			{Name: "Acme", StartDate: "2019", EndDate: "2024", Roles: []content.Role{
				{Title: "Staff Engineer", Responsibilities: []string{"Owns the data plane"}},
			}},
		}},
		AdditionalInfo: []string{"Open source contributor"},
		Projects:       []content.Project{{Title: "Tracer", Description: "Tracing toolkit"}},
		References:     "Available upon request",
	}
}

func generateParts(t *testing.T) map[string][]byte {
	t.Helper()

	var buf bytes.Buffer
	if err := Generate(context.Background(), testDocument(), testTheme(), testGeometry(), &buf); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("unable to open generated package: %v", err)
	}

	parts := make(map[string][]byte)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open part %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("unable to read part %s: %v", f.Name, err)
		}
		parts[f.Name] = data
	}
	return parts
}

func TestGenerateParts(t *testing.T) {
	parts := generateParts(t)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/settings.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
}

func TestGenerateDocumentContent(t *testing.T) {
	parts := generateParts(t)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(parts["word/document.xml"]); err != nil {
		t.Fatalf("unable to parse document: %v", err)
	}

	var texts []string
	for _, el := range doc.FindElements("//w:t") {
		texts = append(texts, el.Text())
	}
	joined := strings.Join(texts, "\n")

	for _, want := range []string{
		"Jordan Mills",
		"jordan@example.com",
		"TECHNICAL EXPERTISE",
		"• Go",
		"Acme | 2019 - Present",
		"Staff Engineer",
		"• Owns the data plane",
		"PROJECTS & ACHIEVEMENTS",
		"REFERENCES",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("document missing text %q", want)
		}
	}
}

func TestGenerateColumnWidths(t *testing.T) {
	parts := generateParts(t)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(parts["word/document.xml"]); err != nil {
		t.Fatalf("unable to parse document: %v", err)
	}

	cols := doc.FindElements("//w:tblGrid/w:gridCol")
	if len(cols) != 2 {
		t.Fatalf("grid columns = %d, want 2", len(cols))
	}

	sum := 0
	for _, col := range cols {
		v, err := strconv.Atoi(col.SelectAttrValue("w:w", ""))
		if err != nil {
			t.Fatalf("bad column width: %v", err)
		}
		sum += v
	}

	want := int(testGeometry().ContentWidth()*20 + 0.5)
	if diff := sum - want; diff < -2 || diff > 2 {
		t.Errorf("column widths sum to %d twips, want about %d", sum, want)
	}
}

func TestGenerateLeftColumnShaded(t *testing.T) {
	parts := generateParts(t)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(parts["word/document.xml"]); err != nil {
		t.Fatalf("unable to parse document: %v", err)
	}

	shd := doc.FindElement("//w:tc/w:tcPr/w:shd")
	if shd == nil {
		t.Fatal("missing left column shading")
	}
	if got := shd.SelectAttrValue("w:fill", ""); got != "F5F8FC" {
		t.Errorf("shading fill = %q, want F5F8FC", got)
	}
}

func TestGenerateSettingsDocID(t *testing.T) {
	parts := generateParts(t)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(parts["word/settings.xml"]); err != nil {
		t.Fatalf("unable to parse settings: %v", err)
	}

	id := doc.FindElement("//w15:docId")
	if id == nil {
		t.Fatal("missing document id")
	}
	val := id.SelectAttrValue("w15:val", "")
	if len(val) != 38 || !strings.HasPrefix(val, "{") || !strings.HasSuffix(val, "}") {
		t.Errorf("document id %q is not a braced GUID", val)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := Generate(ctx, testDocument(), testTheme(), testGeometry(), &buf); err == nil {
		t.Error("expected context error")
	}
}
