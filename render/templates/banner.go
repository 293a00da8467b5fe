package templates

import (
	"strings"

	"cvg/layout"
)

const (
	nameFontSize       = 22.0
	contactIconSize    = 10.0
	contactTextSize    = 9.5
	contactLineSpacing = 18.0
	contactIconPad     = 6.0
	contactColumnGap   = 35.0
	contactMaxWidth    = 220.0
	contactMaxURLWidth = 160.0
	maxContactEntries  = 6
)

var white = layout.RGB{R: 255, G: 255, B: 255}

type contactLine struct {
	icon     string
	iconFont string
	text     string
}

type contactBlock struct {
	left, right           []contactLine
	leftWidth, rightWidth float64
}

func (b contactBlock) rows() int {
	if len(b.left) > len(b.right) {
		return len(b.left)
	}
	return len(b.right)
}

func (b contactBlock) totalWidth() float64 {
	return b.leftWidth + b.rightWidth + contactColumnGap
}

// contactBlock balances the contact entries into two columns, truncating
// texts which would not fit a column. URLs are cut down to scheme and domain
// instead of a blind ellipsis so they stay recognizable.
func (p *painter) contactBlock() contactBlock {

	entries := p.doc.Candidate.Contact
	if len(entries) > maxContactEntries {
		entries = entries[:maxContactEntries]
	}

	lines := make([]contactLine, 0, len(entries))
	for _, e := range entries {
		l := contactLine{icon: e.Icon, iconFont: p.th.IconFont, text: p.truncateContact(e.Text)}
		// icon font may not carry the glyph at all
		if p.surf.TextWidth(l.icon, l.iconFont, contactIconSize) <= 0 {
			l.icon = bulletGlyph
			l.iconFont = p.th.BodyFont
		}
		lines = append(lines, l)
	}

	half := (len(lines) + 1) / 2
	b := contactBlock{left: lines[:half], right: lines[half:]}
	for _, l := range b.left {
		if w := p.contactLineWidth(l); w > b.leftWidth {
			b.leftWidth = w
		}
	}
	for _, l := range b.right {
		if w := p.contactLineWidth(l); w > b.rightWidth {
			b.rightWidth = w
		}
	}
	return b
}

func (p *painter) contactLineWidth(l contactLine) float64 {
	return p.surf.TextWidth(l.icon, l.iconFont, contactIconSize) +
		contactIconPad +
		p.surf.TextWidth(l.text, p.th.BodyFont, contactTextSize)
}

func (p *painter) truncateContact(text string) string {
	eng := p.engine(p.th.BodyFont, contactTextSize)

	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") || strings.HasPrefix(text, "www.") {
		if p.surf.TextWidth(text, p.th.BodyFont, contactTextSize) <= contactMaxURLWidth {
			return text
		}
		parts := strings.Split(text, "/")
		if len(parts) >= 3 {
			labels := strings.Split(parts[2], ".")
			domain := strings.Join(labels, ".")
			if len(labels) > 2 {
				domain = strings.Join(labels[len(labels)-2:], ".")
			}
			return parts[0] + "//" + domain + "/..."
		}
		return eng.TruncateWithEllipsis(text, contactMaxURLWidth)
	}

	if p.surf.TextWidth(text, p.th.BodyFont, contactTextSize) <= contactMaxWidth {
		return text
	}
	return eng.TruncateWithEllipsis(text, contactMaxWidth)
}

// drawBanner paints the top banner with name, contact details and the
// profile picture. With columnBg set the left column background is painted
// down the rest of the page, two column chrome redraws all of it on every
// page.
func (p *painter) drawBanner(columnBg bool) {

	pageW, pageH := p.geom.PageWidth, p.geom.PageHeight
	banner := p.geom.BannerHeight

	p.surf.FillRect(0, pageH-banner, pageW, banner, p.th.Primary)

	if len(p.job.Picture) > 0 {
		radius := banner * 0.4
		if radius > 50 {
			radius = 50
		}
		p.surf.CircleImage(p.job.Picture, p.job.PictureFormat,
			pageW-radius-25, pageH-banner/2, radius, p.th.Secondary)
	}

	block := p.contactBlock()
	contactHeight := float64(block.rows()) * contactLineSpacing

	// distribute leftover banner space around the name and contacts
	available := banner - nameFontSize - contactHeight
	padding := available * 0.375
	nameY := pageH - padding - nameFontSize
	contactY := nameY - 2*padding

	name := p.doc.Candidate.Name
	nameW := p.surf.TextWidth(name, p.th.HeaderFont, nameFontSize)
	p.surf.Text(pageW/2-nameW/2, nameY, name, p.state(p.th.HeaderFont, nameFontSize, white))

	p.drawContacts(block, contactY)

	if columnBg {
		p.surf.FillRect(0, 0, p.geom.LeftColumnWidth(), pageH-banner, p.th.Background)
	}
}

func (p *painter) drawContacts(block contactBlock, top float64) {

	center := p.geom.PageWidth / 2

	if len(block.left) > 0 && len(block.right) > 0 {
		bottom := top - float64(block.rows())*contactLineSpacing
		p.surf.Line(center, top+10, center, bottom, p.th.Accent, 0.5)
	}

	draw := func(lines []contactLine, x float64) {
		y := top
		for _, l := range lines {
			p.surf.Text(x, y+1, l.icon, p.state(l.iconFont, contactIconSize, white))
			textX := x + contactIconPad + p.surf.TextWidth(l.icon, l.iconFont, contactIconSize)
			p.surf.Text(textX, y, l.text, p.state(p.th.BodyFont, contactTextSize, white))
			y -= contactLineSpacing
		}
	}

	draw(block.left, center-block.totalWidth()/2)
	draw(block.right, center+contactColumnGap/2)
}
