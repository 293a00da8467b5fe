// Package templates implements the CV layout strategies. Each strategy
// plans and draws the whole document on a render.Surface, estimating block
// heights with the same wrapping engine the draw calls use so planned page
// breaks always match drawn output.
package templates

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cvg/content"
	"cvg/layout"
	"cvg/layout/textflow"
	"cvg/render"
)

// Job carries everything one render pass needs.
type Job struct {
	Doc   *content.Document
	Theme *layout.Theme
	Geom  *layout.Geometry
	Hyph  textflow.Hyphenator

	// prepared profile picture, optional
	Picture       []byte
	PictureFormat string

	Log *zap.Logger
}

// Strategy is a complete page layout. Render draws the document and reports
// the resulting page count.
type Strategy interface {
	Name() string
	Render(ctx context.Context, job *Job, surf render.Surface) (render.Result, error)
}

// ForName returns the strategy for a configured template name.
func ForName(name string) (Strategy, error) {
	switch name {
	case "two-column":
		return &TwoColumn{}, nil
	case "sidebar":
		return &Sidebar{}, nil
	case "single-column":
		return &SingleColumn{}, nil
	}
	return nil, fmt.Errorf("unknown template %q", name)
}

// sizedMetrics narrows surface metrics to one font and size for the wrapping
// engine.
type sizedMetrics struct {
	m    render.Metrics
	font string
	size float64
}

func (s sizedMetrics) TextWidth(text string) float64 {
	return s.m.TextWidth(text, s.font, s.size)
}

const (
	bulletGlyph = "•"
	// gap reserved for the bullet, both when drawing and when estimating
	bulletIndent = 10.0
	// single line section header band height
	headerBandHeight = 20.0
)

// painter bundles per-pass drawing state and implements the shared section
// routines the strategies compose.
type painter struct {
	surf render.Surface
	doc  *content.Document
	th   *layout.Theme
	geom *layout.Geometry
	flow *layout.Flow
	job  *Job
}

// newPainter sets up drawing state for one pass. top is the cursor content
// restarts at after every page advance.
func newPainter(job *Job, surf render.Surface, top float64) *painter {
	p := &painter{
		surf: surf,
		doc:  job.Doc,
		th:   job.Theme,
		geom: job.Geom,
		job:  job,
	}
	p.flow = layout.NewFlow(job.Geom, layout.NewPageState(), top, surf.AdvancePage)
	return p
}

func (p *painter) engine(font string, size float64) *textflow.Engine {
	return textflow.New(sizedMetrics{m: p.surf, font: font, size: size}, p.job.Hyph)
}

func (p *painter) state(font string, size float64, c layout.RGB) render.DrawState {
	return render.DrawState{Font: font, Size: size, Color: c}
}

func (p *painter) bodyState() render.DrawState {
	return p.state(p.th.BodyFont, p.th.BodyFontSize, p.th.Text)
}

// textHeight estimates wrapped text height, the exact counterpart of
// drawWrapped with the same arguments.
func (p *painter) textHeight(text string, maxWidth, lineHeight float64, font string, size float64) float64 {
	return p.engine(font, size).EstimateHeight(text, maxWidth, lineHeight)
}

func (p *painter) bulletHeight(text string, maxWidth float64) float64 {
	return p.textHeight(text, maxWidth-bulletIndent, p.th.LineSpacing, p.th.BodyFont, p.th.BodyFontSize)
}

// drawWrapped draws text wrapped to maxWidth-indent starting at baseline y,
// lines indented by indent. Returns the cursor below the drawn block.
func (p *painter) drawWrapped(text string, x, y, maxWidth, indent, lineHeight float64, st render.DrawState) float64 {
	for _, line := range p.engine(st.Font, st.Size).Wrap(text, maxWidth-indent) {
		if len(line) > 0 {
			p.surf.Text(x+indent, y, line, st)
		}
		y -= lineHeight
	}
	return y
}

// drawBulleted draws a bullet at x and the wrapped text indented after it.
func (p *painter) drawBulleted(text string, x, y, maxWidth float64, st render.DrawState) float64 {
	p.surf.Text(x, y, bulletGlyph, st)
	return p.drawWrapped(text, x+bulletIndent, y, maxWidth-bulletIndent, 0, p.th.LineSpacing, st)
}

// sectionHeader draws a single line header band with the accent background.
func (p *painter) sectionHeader(title string, x, y, width float64) float64 {
	p.surf.FillRect(x-5, y-headerBandHeight, width, headerBandHeight, p.th.Accent)

	middle := y - headerBandHeight/2
	st := p.state(p.th.HeaderFont, p.th.HeaderFontSize, p.th.Text)
	p.surf.Text(x, middle-p.th.HeaderFontSize/2+2, title, st)
	return y - headerBandHeight
}

// multilineSectionHeader splits the title at the first space and stacks the
// parts, used for narrow columns.
func (p *painter) multilineSectionHeader(title string, x, y, width float64) float64 {
	lines := splitTitle(title)
	if len(lines) == 1 {
		return p.sectionHeader(title, x, y, width)
	}

	height := float64(len(lines))*p.th.LineSpacing + 10
	p.surf.FillRect(x-5, y-height+8, width, height, p.th.Accent)

	st := p.state(p.th.HeaderFont, p.th.HeaderFontSize, p.th.Text)
	for i, line := range lines {
		p.surf.Text(x, y-float64(i+1)*p.th.LineSpacing+5, line, st)
	}
	return y - height
}

func splitTitle(title string) []string {
	for i := 0; i < len(title); i++ {
		if title[i] == ' ' {
			return []string{title[:i], title[i+1:]}
		}
	}
	return []string{title}
}
