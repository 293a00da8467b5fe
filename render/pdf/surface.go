// Package pdf implements the drawing surface over gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"cvg/config"
	"cvg/layout"
	"cvg/render"
)

// core font families shipped with every PDF viewer, addressed through the
// cp1252 code page
var coreFamilies = map[string]bool{
	"courier":      true,
	"helvetica":    true,
	"arial":        true,
	"times":        true,
	"symbol":       true,
	"zapfdingbats": true,
}

type resolvedFont struct {
	family string
	style  string
	core   bool
}

// Surface draws CV pages into an in-memory PDF document. It implements
// render.Surface with the origin at the bottom left, converting to gofpdf's
// top-left convention on every call.
type Surface struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	height float64
	fonts  map[string]resolvedFont
	log    *zap.Logger
}

// New creates a surface for the given page geometry. Configured fonts with a
// path are registered as UTF-8 TTF fonts under their configured names, core
// font names map onto the built-in families. A registered font that measures
// nothing is replaced with the body core font.
func New(geom *layout.Geometry, fonts config.FontsConfig, log *zap.Logger) (*Surface, error) {

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	s := &Surface{
		pdf:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
		height: geom.PageHeight,
		fonts:  make(map[string]resolvedFont),
		log:    log,
	}

	for _, fc := range []config.FontConfig{fonts.Header, fonts.Body, fonts.Icons} {
		if err := s.registerFont(fc); err != nil {
			return nil, err
		}
	}

	doc.AddPage()
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("unable to initialize PDF surface: %w", err)
	}

	// substitute fonts which cannot produce visible glyphs
	for name, rf := range s.fonts {
		s.pdf.SetFont(rf.family, rf.style, 10)
		if s.pdf.GetStringWidth("AB") <= 0 || s.pdf.Error() != nil {
			s.log.Warn("Font measures nothing, substituting body font", zap.String("font", name))
			s.fonts[name] = s.resolve(fonts.Body.Name)
		}
	}
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("unable to prepare fonts: %w", err)
	}
	return s, nil
}

func (s *Surface) registerFont(fc config.FontConfig) error {
	if _, exists := s.fonts[fc.Name]; exists {
		return nil
	}
	if len(fc.Path) == 0 {
		rf := s.resolve(fc.Name)
		if !rf.core {
			return fmt.Errorf("font %q is not a core font and has no file configured", fc.Name)
		}
		s.fonts[fc.Name] = rf
		return nil
	}
	s.pdf.AddUTF8Font(fc.Name, "", fc.Path)
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("unable to register font %q from %s: %w", fc.Name, fc.Path, err)
	}
	s.fonts[fc.Name] = resolvedFont{family: fc.Name}
	return nil
}

// resolve maps a configured font name like "Helvetica-Bold" onto a gofpdf
// family and style pair.
func (s *Surface) resolve(name string) resolvedFont {
	family, style := name, ""
	if i := strings.IndexByte(name, '-'); i >= 0 {
		switch strings.ToLower(name[i+1:]) {
		case "bold":
			family, style = name[:i], "B"
		case "oblique", "italic":
			family, style = name[:i], "I"
		case "boldoblique", "bolditalic":
			family, style = name[:i], "BI"
		}
	}
	return resolvedFont{family: family, style: style, core: coreFamilies[strings.ToLower(family)]}
}

func (s *Surface) use(name string, size float64) resolvedFont {
	rf, ok := s.fonts[name]
	if !ok {
		rf = s.resolve(name)
		s.fonts[name] = rf
	}
	s.pdf.SetFont(rf.family, rf.style, size)
	return rf
}

func (s *Surface) TextWidth(text, font string, size float64) float64 {
	rf := s.use(font, size)
	if rf.core {
		text = s.tr(text)
	}
	return s.pdf.GetStringWidth(text)
}

func (s *Surface) Text(x, y float64, text string, st render.DrawState) {
	rf := s.use(st.Font, st.Size)
	if rf.core {
		text = s.tr(text)
	}
	s.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	s.pdf.Text(x, s.height-y, text)
}

func (s *Surface) FillRect(x, y, w, h float64, c layout.RGB) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
	s.pdf.Rect(x, s.height-y-h, w, h, "F")
}

func (s *Surface) Line(x1, y1, x2, y2 float64, c layout.RGB, width float64) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, s.height-y1, x2, s.height-y2)
}

func (s *Surface) CircleImage(img []byte, format string, x, y, r float64, border layout.RGB) {
	cy := s.height - y

	opts := gofpdf.ImageOptions{ImageType: format, ReadDpi: false}
	info := s.pdf.RegisterImageOptionsReader(fmt.Sprintf("profile-%d", s.pdf.PageNo()), opts, bytes.NewReader(img))
	if info == nil || s.pdf.Error() != nil {
		s.log.Warn("Unable to place profile image", zap.Error(s.pdf.Error()))
		return
	}

	// image is pre-cropped to a square, scale it to cover the circle
	d := r * 2
	s.pdf.ClipCircle(x, cy, r, false)
	s.pdf.ImageOptions(fmt.Sprintf("profile-%d", s.pdf.PageNo()), x-r, cy-r, d, d, false, opts, 0, "")
	s.pdf.ClipEnd()

	s.pdf.SetDrawColor(border.R, border.G, border.B)
	s.pdf.SetLineWidth(2)
	s.pdf.Circle(x, cy, r, "D")
}

func (s *Surface) AdvancePage() {
	s.pdf.AddPage()
}

func (s *Surface) Pages() int {
	return s.pdf.PageCount()
}

// Output writes the finished document. Any drawing error gofpdf accumulated
// along the way surfaces here.
func (s *Surface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("unable to produce PDF: %w", err)
	}
	return nil
}
