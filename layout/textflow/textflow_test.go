package textflow

import (
	"reflect"
	"testing"
)

// runeWidth measures every rune at a fixed width, keeping expectations exact.
type runeWidth float64

func (w runeWidth) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * float64(w)
}

type fakeHyph map[string][]int

func (f fakeHyph) Positions(word string) []int {
	return f[word]
}

func TestWrapEmpty(t *testing.T) {
	e := New(runeWidth(10), nil)
	if got := e.Wrap("", 100); got != nil {
		t.Errorf("Wrap(\"\") = %v, want nil", got)
	}
}

func TestWrapSimple(t *testing.T) {
	e := New(runeWidth(10), nil)

	got := e.Wrap("one two three", 70)
	want := []string{"one two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapWidthBound(t *testing.T) {
	e := New(runeWidth(10), nil)

	text := "the quick brown fox jumps over a lazy dog and keeps on running far away"
	for _, width := range []float64{60, 100, 150, 300} {
		for _, line := range e.Wrap(text, width) {
			if len(line) == 0 {
				continue
			}
			if e.m.TextWidth(line) > width {
				t.Errorf("width %f: line %q measures %f", width, line, e.m.TextWidth(line))
			}
		}
	}
}

func TestWrapShortWordStaysAttached(t *testing.T) {
	e := New(runeWidth(10), nil)

	// "hello world" fills the line exactly, leaving no room for "foo";
	// "world" moves down so the short word is not stranded
	got := e.Wrap("hello world foo", 110)
	want := []string{"hello", "world foo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapShortWordSingleWordLine(t *testing.T) {
	e := New(runeWidth(10), nil)

	// a single word on the line is never moved down for the sake of the
	// short word after it
	got := e.Wrap("engineering to", 130)
	want := []string{"engineering", "to"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapParagraphs(t *testing.T) {
	e := New(runeWidth(10), nil)

	got := e.Wrap("first\n\nsecond", 200)
	want := []string{"first", "", "", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}

	// trailing newlines do not produce trailing empty lines
	got = e.Wrap("only\n\n", 200)
	want = []string{"only"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() with trailing newlines = %v, want %v", got, want)
	}
}

func TestWrapHyphenation(t *testing.T) {
	h := fakeHyph{"hyphenation": {2, 6}}
	e := New(runeWidth(10), h)

	got := e.Wrap("aa hyphenation", 80)
	want := []string{"aa hy-", "phenation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapHyphenationFirstFit(t *testing.T) {
	h := fakeHyph{"hyphenation": {2, 6}}
	e := New(runeWidth(10), h)

	// both positions would produce a fitting head on an empty line, the
	// first one wins
	got := e.Wrap("hyphenation", 70)
	want := []string{"hy-", "phenation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapHyphenationNoFit(t *testing.T) {
	h := fakeHyph{"impossible": {6}}
	e := New(runeWidth(10), h)

	// the only break head "imposs-" is wider than the line, the whole word
	// overflows instead
	got := e.Wrap("impossible", 50)
	want := []string{"impossible"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapShortWordsNeverHyphenated(t *testing.T) {
	h := fakeHyph{"table": {2}}
	e := New(runeWidth(10), h)

	got := e.Wrap("xx table", 60)
	want := []string{"xx", "table"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("five letter word should not be split, got %v", got)
	}
}

func TestWrapOverlongWordOverflows(t *testing.T) {
	e := New(runeWidth(10), nil)

	got := e.Wrap("a extraordinarily b", 80)
	want := []string{"a", "extraordinarily", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %v, want %v", got, want)
	}
}

func TestWrapRewrapStable(t *testing.T) {
	h := fakeHyph{"hyphenation": {2, 6}}
	e := New(runeWidth(10), h)

	text := "some words and a hyphenation case to exercise every branch of the wrapper"
	for _, line := range e.Wrap(text, 90) {
		if len(line) == 0 {
			continue
		}
		again := e.Wrap(line, 90)
		if len(again) != 1 || again[0] != line {
			t.Errorf("line %q does not survive rewrapping: %v", line, again)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	e := New(runeWidth(10), nil)

	if got := e.TruncateWithEllipsis("abcdefghij", 100); got != "abcdefghij" {
		t.Errorf("fitting text should not be touched, got %q", got)
	}
	if got := e.TruncateWithEllipsis("abcdefghij", 60); got != "abc..." {
		t.Errorf("TruncateWithEllipsis() = %q, want abc...", got)
	}
	if got := e.TruncateWithEllipsis("abcdefghij", 30); got != "..." {
		t.Errorf("no room for content: got %q, want bare ellipsis", got)
	}
	if got := e.TruncateWithEllipsis("abcdefghij", 5); got != "..." {
		t.Errorf("ellipsis wider than limit still returned, got %q", got)
	}
}

func TestEstimateHeight(t *testing.T) {
	e := New(runeWidth(10), nil)

	text := "one two three four five six seven"
	lines := e.Wrap(text, 90)
	if got := e.EstimateHeight(text, 90, 13); got != float64(len(lines))*13 {
		t.Errorf("EstimateHeight() = %f, want %f", got, float64(len(lines))*13)
	}

	if got := e.EstimateHeight("", 90, 13); got != 0 {
		t.Errorf("empty text height = %f, want 0", got)
	}
}

func TestEstimateMatchesDraw(t *testing.T) {
	h := fakeHyph{"responsibilities": {3, 6, 9}}
	e := New(runeWidth(10), h)

	text := "owned all responsibilities for the team\n\nand wrote the docs"
	const lineHeight = 12.0

	// simulate the draw loop: one cursor step per wrapped line
	cursor := 500.0
	for range e.Wrap(text, 110) {
		cursor -= lineHeight
	}

	if got := e.EstimateHeight(text, 110, lineHeight); 500.0-cursor != got {
		t.Errorf("estimate %f does not match drawn height %f", got, 500.0-cursor)
	}
}
