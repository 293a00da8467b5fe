// Package render defines the drawing surface contract rendering templates
// draw on. Coordinates are in points with the origin at the bottom left of
// the page, backends convert to their native conventions.
package render

import (
	"io"

	"cvg/common"
	"cvg/layout"
)

// Metrics measures rendered text. Estimation and drawing go through the same
// implementation so planned heights match drawn ones.
type Metrics interface {
	TextWidth(text, font string, size float64) float64
}

// DrawState carries the font and fill color for a drawing operation. It is
// passed by value with every call, the surface keeps no text state between
// calls.
type DrawState struct {
	Font  string
	Size  float64
	Color layout.RGB
}

// Surface is a paged drawing backend.
type Surface interface {
	Metrics

	// Text draws s with its baseline at (x, y).
	Text(x, y float64, s string, st DrawState)
	// FillRect fills the rectangle with lower left corner at (x, y).
	FillRect(x, y, w, h float64, c layout.RGB)
	// Line strokes a straight line of the given width.
	Line(x1, y1, x2, y2 float64, c layout.RGB, width float64)
	// CircleImage draws an image clipped to a circle centered at (x, y)
	// with a thin border. Image data must be a format the backend accepts.
	CircleImage(img []byte, format string, x, y, r float64, border layout.RGB)

	// AdvancePage flushes the current page and starts the next one.
	AdvancePage()
	Pages() int

	Output(w io.Writer) error
}

// Result is what a completed render pass reports back.
type Result struct {
	Pages        int
	DensityScore float64
	Tier         common.DensityTier
}
