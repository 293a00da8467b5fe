package layout

// breakBuffer keeps content a few points off the bottom margin. Kept small to
// maximize usable page space.
const breakBuffer = 5.0

// PageState tracks the shared page sequence of one render pass. The page
// index is 1-based and shared between columns, vertical cursors are plain
// values owned by the drawing code.
type PageState struct {
	Page int
}

func NewPageState() *PageState {
	return &PageState{Page: 1}
}

// Flow plans page breaks over a linear page sequence. The advance callback
// flushes the current page on the drawing surface and resets its graphics
// defaults, chrome redraw is supplied per call site. top is the cursor value
// content restarts at after every page advance, under whatever chrome the
// template repaints there.
type Flow struct {
	geom    *Geometry
	state   *PageState
	top     float64
	advance func()
}

func NewFlow(geom *Geometry, state *PageState, top float64, advance func()) *Flow {
	return &Flow{geom: geom, state: state, top: top, advance: advance}
}

func (f *Flow) Page() int {
	return f.state.Page
}

// Top is the cursor content restarts at on a fresh page.
func (f *Flow) Top() float64 {
	return f.top
}

// Remaining reports the drawable height left above the bottom margin.
func (f *Flow) Remaining(cursor float64) float64 {
	return cursor - f.geom.BottomMargin
}

// CheckPageBreak returns the cursor to draw the next block at. When the block
// does not fit above the bottom margin the page advances, onBreak redraws
// persistent chrome and the cursor resets to the top of the column area on
// the new page. A block taller than a full page is not broken up here, the
// caller decides whether to split or overflow.
func (f *Flow) CheckPageBreak(cursor, needed float64, onBreak func()) float64 {
	if cursor-needed < f.geom.BottomMargin+breakBuffer {
		f.NewPage(onBreak)
		return f.top
	}
	return cursor
}

// NewPage unconditionally advances to the next page and redraws chrome.
func (f *Flow) NewPage(onBreak func()) {
	f.state.Page++
	if f.advance != nil {
		f.advance()
	}
	if onBreak != nil {
		onBreak()
	}
}
