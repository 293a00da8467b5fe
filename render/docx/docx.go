// Package docx writes the CV as an editable Word document. The layout
// mirrors the two column PDF template: a centered name header, a contact
// table and a borderless two column table with the sidebar content shaded.
// OOXML parts are built directly and zipped, there is no intermediate
// document model.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"cvg/content"
	"cvg/layout"
)

const (
	wordNS         = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	w15NS          = "http://schemas.microsoft.com/office/word/2012/wordml"
	mcNS           = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"
	relationsNS    = "http://schemas.openxmlformats.org/package/2006/relationships"
	relTypePrefix  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	corePropsNS    = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	extendedNS     = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	dcNS           = "http://purl.org/dc/elements/1.1/"
)

// Generate writes the complete .docx package to w.
func Generate(ctx context.Context, cv *content.Document, th *layout.Theme, geom *layout.Geometry, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	parts := []struct {
		name  string
		write func(*zip.Writer, *content.Document, *layout.Theme, *layout.Geometry) error
	}{
		{"content types", writeContentTypes},
		{"package relationships", writePackageRels},
		{"document relationships", writeDocumentRels},
		{"core properties", writeCoreProps},
		{"application properties", writeAppProps},
		{"styles", writeStyles},
		{"settings", writeSettings},
		{"document", writeDocument},
	}
	for _, part := range parts {
		if err := part.write(zw, cv, th, geom); err != nil {
			return fmt.Errorf("unable to write %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

func newPart(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc, doc.CreateElement(root)
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// twips formats a point value in twentieths of a point, the unit OOXML
// measures widths and spacing in.
func twips(pt float64) string {
	return strconv.Itoa(int(pt*20 + 0.5))
}

// halfPoints formats a font size the way w:sz expects it.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt*2 + 0.5))
}

func writeContentTypes(zw *zip.Writer, _ *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, types := newPart("Types")
	types.CreateAttr("xmlns", contentTypesNS)

	for ext, ct := range map[string]string{
		"rels": "application/vnd.openxmlformats-package.relationships+xml",
		"xml":  "application/xml",
	} {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", ext)
		def.CreateAttr("ContentType", ct)
	}

	for part, ct := range map[string]string{
		"/word/document.xml": "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
		"/word/styles.xml":   "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml",
		"/word/settings.xml": "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml",
		"/docProps/core.xml": "application/vnd.openxmlformats-package.core-properties+xml",
		"/docProps/app.xml":  "application/vnd.openxmlformats-officedocument.extended-properties+xml",
	} {
		override := types.CreateElement("Override")
		override.CreateAttr("PartName", part)
		override.CreateAttr("ContentType", ct)
	}
	return writeXMLToZip(zw, "[Content_Types].xml", doc)
}

func addRelationship(parent *etree.Element, id, relType, target string) {
	rel := parent.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relTypePrefix+"/"+relType)
	rel.CreateAttr("Target", target)
}

func writePackageRels(zw *zip.Writer, _ *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, rels := newPart("Relationships")
	rels.CreateAttr("xmlns", relationsNS)

	addRelationship(rels, "rId1", "officeDocument", "word/document.xml")
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId2")
	rel.CreateAttr("Type", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties")
	rel.CreateAttr("Target", "docProps/core.xml")
	addRelationship(rels, "rId3", "extended-properties", "docProps/app.xml")

	return writeXMLToZip(zw, "_rels/.rels", doc)
}

func writeDocumentRels(zw *zip.Writer, _ *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, rels := newPart("Relationships")
	rels.CreateAttr("xmlns", relationsNS)

	addRelationship(rels, "rId1", "styles", "styles.xml")
	addRelationship(rels, "rId2", "settings", "settings.xml")

	return writeXMLToZip(zw, "word/_rels/document.xml.rels", doc)
}

func writeCoreProps(zw *zip.Writer, cv *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, props := newPart("cp:coreProperties")
	props.CreateAttr("xmlns:cp", corePropsNS)
	props.CreateAttr("xmlns:dc", dcNS)

	props.CreateElement("dc:title").SetText(cv.Candidate.Name + " CV")
	props.CreateElement("dc:creator").SetText(cv.Candidate.Name)

	return writeXMLToZip(zw, "docProps/core.xml", doc)
}

func writeAppProps(zw *zip.Writer, _ *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, props := newPart("Properties")
	props.CreateAttr("xmlns", extendedNS)
	props.CreateElement("Application").SetText("cvg")

	return writeXMLToZip(zw, "docProps/app.xml", doc)
}

func writeStyles(zw *zip.Writer, _ *content.Document, th *layout.Theme, _ *layout.Geometry) error {
	doc, styles := newPart("w:styles")
	styles.CreateAttr("xmlns:w", wordNS)

	rPr := styles.CreateElement("w:docDefaults").
		CreateElement("w:rPrDefault").
		CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", th.BodyFont)
	fonts.CreateAttr("w:hAnsi", th.BodyFont)
	rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(th.BodyFontSize))

	style := styles.CreateElement("w:style")
	style.CreateAttr("w:type", "paragraph")
	style.CreateAttr("w:styleId", "Normal")
	style.CreateAttr("w:default", "1")
	style.CreateElement("w:name").CreateAttr("w:val", "Normal")

	return writeXMLToZip(zw, "word/styles.xml", doc)
}

func writeSettings(zw *zip.Writer, _ *content.Document, _ *layout.Theme, _ *layout.Geometry) error {
	doc, settings := newPart("w:settings")
	settings.CreateAttr("xmlns:w", wordNS)
	settings.CreateAttr("xmlns:w15", w15NS)
	settings.CreateAttr("xmlns:mc", mcNS)
	settings.CreateAttr("mc:Ignorable", "w15")

	settings.CreateElement("w15:docId").
		CreateAttr("w15:val", "{"+strings.ToUpper(uuid.NewString())+"}")

	return writeXMLToZip(zw, "word/settings.xml", doc)
}

type runProps struct {
	bold  bool
	size  float64
	color string // RRGGBB, empty keeps the default
}

type paraProps struct {
	align       string
	indentLeft  float64
	spaceBefore float64
	spaceAfter  float64
}

func addPara(parent *etree.Element, pp paraProps, text string, rp runProps) {
	p := parent.CreateElement("w:p")

	if pp != (paraProps{}) {
		pPr := p.CreateElement("w:pPr")
		if pp.align != "" {
			pPr.CreateElement("w:jc").CreateAttr("w:val", pp.align)
		}
		if pp.indentLeft > 0 {
			pPr.CreateElement("w:ind").CreateAttr("w:left", twips(pp.indentLeft))
		}
		if pp.spaceBefore > 0 || pp.spaceAfter > 0 {
			spacing := pPr.CreateElement("w:spacing")
			if pp.spaceBefore > 0 {
				spacing.CreateAttr("w:before", twips(pp.spaceBefore))
			}
			if pp.spaceAfter > 0 {
				spacing.CreateAttr("w:after", twips(pp.spaceAfter))
			}
		}
	}

	if len(text) == 0 {
		return
	}
	r := p.CreateElement("w:r")
	rPr := r.CreateElement("w:rPr")
	if rp.bold {
		rPr.CreateElement("w:b")
	}
	if rp.size > 0 {
		rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(rp.size))
	}
	if rp.color != "" {
		rPr.CreateElement("w:color").CreateAttr("w:val", rp.color)
	}
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

func addSectionTitle(parent *etree.Element, title string, before float64) {
	addPara(parent, paraProps{spaceBefore: before, spaceAfter: 6}, title, runProps{bold: true, size: 12})
}

func addNoBorders(tblPr *etree.Element) {
	borders := tblPr.CreateElement("w:tblBorders")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		borders.CreateElement("w:" + side).CreateAttr("w:val", "none")
	}
}

func writeDocument(zw *zip.Writer, cv *content.Document, th *layout.Theme, geom *layout.Geometry) error {
	doc, root := newPart("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	body := root.CreateElement("w:body")

	addHeader(body, cv, th)
	addColumns(body, cv, th, geom)
	addSectPr(body, geom)

	return writeXMLToZip(zw, "word/document.xml", doc)
}

func addHeader(body *etree.Element, cv *content.Document, th *layout.Theme) {
	addPara(body, paraProps{align: "center"}, cv.Candidate.Name,
		runProps{bold: true, size: 18, color: th.Primary.Hex()})

	addContactTable(body, cv.Candidate.Contact)

	// simple separator below the header
	addPara(body, paraProps{}, strings.Repeat("_", 150), runProps{})
}

// addContactTable spreads the contact entries over a borderless centered
// three column table.
func addContactTable(body *etree.Element, contacts []content.Contact) {
	if len(contacts) == 0 {
		return
	}

	tbl := body.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	tblPr.CreateElement("w:jc").CreateAttr("w:val", "center")
	addNoBorders(tblPr)

	tr := tbl.CreateElement("w:tr")
	perColumn := (len(contacts) + 2) / 3
	for col := 0; col < 3; col++ {
		tc := tr.CreateElement("w:tc")
		tc.CreateElement("w:tcPr")

		start := min(col*perColumn, len(contacts))
		end := min(start+perColumn, len(contacts))
		for _, c := range contacts[start:end] {
			addPara(tc, paraProps{align: "center"}, c.Text, runProps{size: 9})
		}
		if start == end {
			tc.CreateElement("w:p")
		}
	}
}

func addColumns(body *etree.Element, cv *content.Document, th *layout.Theme, geom *layout.Geometry) {
	tbl := body.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	addNoBorders(tblPr)

	leftWidth := geom.ContentWidth() * geom.LeftColumnRatio
	rightWidth := geom.ContentWidth() - leftWidth

	grid := tbl.CreateElement("w:tblGrid")
	grid.CreateElement("w:gridCol").CreateAttr("w:w", twips(leftWidth))
	grid.CreateElement("w:gridCol").CreateAttr("w:w", twips(rightWidth))

	tr := tbl.CreateElement("w:tr")

	left := tr.CreateElement("w:tc")
	tcPr := left.CreateElement("w:tcPr")
	width := tcPr.CreateElement("w:tcW")
	width.CreateAttr("w:w", twips(leftWidth))
	width.CreateAttr("w:type", "dxa")
	shading := tcPr.CreateElement("w:shd")
	shading.CreateAttr("w:val", "clear")
	shading.CreateAttr("w:fill", th.Background.Hex())
	addLeftColumn(left, cv)

	right := tr.CreateElement("w:tc")
	tcPr = right.CreateElement("w:tcPr")
	width = tcPr.CreateElement("w:tcW")
	width.CreateAttr("w:w", twips(rightWidth))
	width.CreateAttr("w:type", "dxa")
	addRightColumn(right, cv, th)
}

func addLeftColumn(tc *etree.Element, cv *content.Document) {
	if len(cv.TechnicalSkills) > 0 {
		addSectionTitle(tc, "TECHNICAL EXPERTISE", 0)
		for _, group := range cv.TechnicalSkills {
			addPara(tc, paraProps{}, group.Category, runProps{bold: true, size: 10})
			for _, skill := range group.Skills {
				addPara(tc, paraProps{indentLeft: 10, spaceAfter: 3}, "• "+skill, runProps{size: 9.5})
			}
		}
	}

	if len(cv.Education.Items) > 0 {
		addSectionTitle(tc, "EDUCATION", 12)
		for _, e := range cv.Education.Items {
			addPara(tc, paraProps{}, e.Institution, runProps{bold: true, size: 10})
			if len(e.Degree) > 0 {
				addPara(tc, paraProps{indentLeft: 10}, e.Degree, runProps{size: 9.5})
			}
			if len(e.Duration) > 0 {
				addPara(tc, paraProps{indentLeft: 10, spaceAfter: 6}, e.Duration, runProps{size: 9.5})
			}
		}
	}

	if len(cv.AdditionalInfo) > 0 {
		addSectionTitle(tc, "MORE DETAILS", 12)
		for _, info := range cv.AdditionalInfo {
			addPara(tc, paraProps{indentLeft: 10, spaceAfter: 3}, "• "+info, runProps{size: 9.5})
		}
	}

	// a table cell must end with a paragraph
	tc.CreateElement("w:p")
}

func addRightColumn(tc *etree.Element, cv *content.Document, th *layout.Theme) {
	if len(cv.Profile) > 0 {
		addSectionTitle(tc, "PROFILE", 0)
		for _, paragraph := range strings.Split(cv.Profile, "\n\n") {
			addPara(tc, paraProps{align: "both", indentLeft: 5, spaceAfter: 6}, paragraph, runProps{size: 9.5})
		}
	}

	if len(cv.Experience.Companies) > 0 {
		addSectionTitle(tc, "PROFESSIONAL EXPERIENCE", 12)
		for i, company := range cv.Experience.Companies {
			addPara(tc, paraProps{spaceBefore: 6}, company.HeaderLine(i == 0),
				runProps{bold: true, size: 10, color: th.Primary.Hex()})

			for _, role := range company.Roles {
				addPara(tc, paraProps{indentLeft: 10, spaceAfter: 3}, role.Title,
					runProps{bold: true, size: 9.5, color: th.Secondary.Hex()})

				for _, resp := range role.Responsibilities {
					addPara(tc, paraProps{indentLeft: 15, spaceAfter: 3}, "• "+resp, runProps{size: 9})
				}
			}
		}
	}

	if len(cv.Projects) > 0 {
		addSectionTitle(tc, "PROJECTS & ACHIEVEMENTS", 12)
		for _, project := range cv.Projects {
			addPara(tc, paraProps{spaceBefore: 6}, project.Title,
				runProps{bold: true, size: 10, color: th.Primary.Hex()})
			if len(project.Description) > 0 {
				addPara(tc, paraProps{align: "both", indentLeft: 10, spaceAfter: 3},
					project.Description, runProps{size: 9})
			}
		}
	}

	if len(cv.References) > 0 {
		addSectionTitle(tc, "REFERENCES", 12)
		addPara(tc, paraProps{indentLeft: 5}, cv.References, runProps{size: 9})
	}

	tc.CreateElement("w:p")
}

func addSectPr(body *etree.Element, geom *layout.Geometry) {
	sectPr := body.CreateElement("w:sectPr")

	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", twips(geom.PageWidth))
	pgSz.CreateAttr("w:h", twips(geom.PageHeight))

	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", twips(geom.TopMargin))
	pgMar.CreateAttr("w:bottom", twips(geom.BottomMargin))
	pgMar.CreateAttr("w:left", twips(geom.LeftMargin))
	pgMar.CreateAttr("w:right", twips(geom.RightMargin))
}
