package layout

import (
	"testing"
)

func testFlow(t *testing.T, advanced *int) (*Flow, *Geometry) {
	t.Helper()
	g, err := NewGeometry(baseLayoutConfig(), nil)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}
	return NewFlow(g, NewPageState(), g.ColumnTop(), func() {
		if advanced != nil {
			*advanced++
		}
	}), g
}

func TestCheckPageBreakFits(t *testing.T) {
	var advanced int
	f, _ := testFlow(t, &advanced)

	// plenty of room: cursor unchanged, no page advance
	got := f.CheckPageBreak(500, 100, nil)
	if got != 500 {
		t.Errorf("cursor = %f, want unchanged 500", got)
	}
	if f.Page() != 1 || advanced != 0 {
		t.Errorf("page advanced without need: page %d, advances %d", f.Page(), advanced)
	}
}

func TestCheckPageBreakOverflow(t *testing.T) {
	var advanced, redrawn int
	f, g := testFlow(t, &advanced)

	got := f.CheckPageBreak(80, 100, func() { redrawn++ })
	if got != g.ColumnTop() {
		t.Errorf("cursor = %f, want top of column %f", got, g.ColumnTop())
	}
	if f.Page() != 2 {
		t.Errorf("page = %d, want 2", f.Page())
	}
	if advanced != 1 || redrawn != 1 {
		t.Errorf("advance/redraw counts = %d/%d, want 1/1", advanced, redrawn)
	}
}

func TestCheckPageBreakBuffer(t *testing.T) {
	f, g := testFlow(t, nil)

	// fits exactly against the buffer boundary
	cursor := g.BottomMargin + breakBuffer + 100
	if got := f.CheckPageBreak(cursor, 100, nil); got != cursor {
		t.Errorf("block touching the buffer boundary should fit, cursor = %f", got)
	}

	// one point less triggers the break
	if got := f.CheckPageBreak(cursor-1, 100, nil); got != g.ColumnTop() {
		t.Errorf("block inside the buffer should break, cursor = %f", got)
	}
}

func TestCheckPageBreakProgress(t *testing.T) {
	f, g := testFlow(t, nil)

	// after a break the new cursor always fits reasonable content
	got := f.CheckPageBreak(g.BottomMargin, 50, nil)
	if got <= g.BottomMargin+breakBuffer+50 {
		t.Errorf("no forward progress after break: cursor %f", got)
	}
}

func TestNewPage(t *testing.T) {
	var advanced int
	f, _ := testFlow(t, &advanced)

	f.NewPage(nil)
	f.NewPage(nil)
	if f.Page() != 3 || advanced != 2 {
		t.Errorf("page/advances = %d/%d, want 3/2", f.Page(), advanced)
	}
}

func TestSharedPageState(t *testing.T) {
	g, err := NewGeometry(baseLayoutConfig(), nil)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	state := NewPageState()
	left := NewFlow(g, state, g.ColumnTop(), nil)
	right := NewFlow(g, state, g.ColumnTop(), nil)

	left.NewPage(nil)
	if right.Page() != 2 {
		t.Errorf("page index should be shared between columns, got %d", right.Page())
	}
}
