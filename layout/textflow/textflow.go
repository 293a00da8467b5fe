// Package textflow implements greedy word wrapping with discretionary
// hyphenation, ellipsis truncation and text height estimation. Wrapping is a
// pure function of the text, the available width and the injected font
// metrics, so estimated heights always match what drawing the same text
// produces.
package textflow

import (
	"strings"
)

// Measurer reports rendered text width in points for the font and size the
// engine wraps for.
type Measurer interface {
	TextWidth(text string) float64
}

// Hyphenator supplies ascending discretionary break positions for a single
// word, as rune counts that may stay on the line with a hyphen appended.
type Hyphenator interface {
	Positions(word string) []int
}

// Engine wraps text for one font/size combination.
type Engine struct {
	m Measurer
	h Hyphenator
}

// New creates an engine. A nil hyphenator disables hyphenation.
func New(m Measurer, h Hyphenator) *Engine {
	return &Engine{m: m, h: h}
}

// Wrap breaks text into lines not exceeding maxWidth. Newlines separate
// paragraphs, a blank line is kept between paragraphs and empty input lines
// survive as empty output lines. Words longer than the line overflow rather
// than being force-broken when no hyphenation point fits.
func (e *Engine) Wrap(text string, maxWidth float64) []string {
	if len(text) == 0 {
		return nil
	}

	var result []string

	paragraphs := strings.Split(text, "\n")
	for i, paragraph := range paragraphs {
		if len(strings.TrimSpace(paragraph)) == 0 {
			result = append(result, "")
			continue
		}

		result = append(result, e.wrapParagraph(paragraph, maxWidth)...)

		if i < len(paragraphs)-1 {
			result = append(result, "")
		}
	}

	// drop trailing empties
	for len(result) > 0 && len(result[len(result)-1]) == 0 {
		result = result[:len(result)-1]
	}
	return result
}

func (e *Engine) wrapParagraph(paragraph string, maxWidth float64) []string {

	var (
		lines        []string
		current      []string
		currentWidth float64
	)
	spaceWidth := e.m.TextWidth(" ")

	words := strings.Fields(paragraph)
	for i, word := range words {
		wordWidth := e.m.TextWidth(word)

		lead := 0.0
		if len(current) > 0 {
			lead = spaceWidth
		}

		if currentWidth+lead+wordWidth <= maxWidth {
			current = append(current, word)
			currentWidth += lead + wordWidth

			// Keep short words (articles, prepositions) attached to the word
			// before them: when the next short word would not fit, move the
			// word just placed to the next line instead.
			if i < len(words)-1 {
				next := words[i+1]
				if len(next) <= 3 && currentWidth+spaceWidth+e.m.TextWidth(next) > maxWidth && len(current) > 1 {
					moved := current[len(current)-1]
					current = current[:len(current)-1]
					lines = append(lines, strings.Join(current, " "))
					current = []string{moved}
					currentWidth = e.m.TextWidth(moved)
				}
			}
			continue
		}

		// word does not fit, try to split it
		if head, rest, ok := e.hyphenateWord(word, maxWidth, currentWidth+lead); ok {
			current = append(current, head)
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
			currentWidth = 0
			if len(rest) > 0 {
				current = append(current, rest)
				currentWidth = e.m.TextWidth(rest)
			}
			continue
		}

		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
		currentWidth = wordWidth
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// hyphenateWord finds the first break position whose head, with a hyphen,
// fits in the space left on the line. Short words are never split.
func (e *Engine) hyphenateWord(word string, maxWidth, lineWidth float64) (head, rest string, ok bool) {
	if e.h == nil {
		return "", "", false
	}

	runes := []rune(word)
	if len(runes) <= 5 {
		return "", "", false
	}

	for _, pos := range e.h.Positions(word) {
		if pos <= 0 || pos >= len(runes) {
			continue
		}
		head = string(runes[:pos]) + "-"
		if lineWidth+e.m.TextWidth(head) <= maxWidth {
			return head, string(runes[pos:]), true
		}
	}
	return "", "", false
}

// TruncateWithEllipsis shortens text to fit maxWidth, appending "..." when
// anything was cut. When even the ellipsis alone does not fit it is returned
// anyway as the minimal marker of elided content.
func (e *Engine) TruncateWithEllipsis(text string, maxWidth float64) string {
	if e.m.TextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "..."
	if maxWidth <= e.m.TextWidth(ellipsis) {
		return ellipsis
	}

	runes := []rune(text)
	for i := len(runes); i > 0; i-- {
		truncated := string(runes[:i])
		if e.m.TextWidth(truncated+ellipsis) <= maxWidth {
			return truncated + ellipsis
		}
	}
	return ellipsis
}

// EstimateHeight returns the vertical space Wrap output occupies at the given
// line height. Draw code advances the cursor once per wrapped line, so the
// estimate is exact by construction.
func (e *Engine) EstimateHeight(text string, maxWidth, lineHeight float64) float64 {
	return float64(len(e.Wrap(text, maxWidth))) * lineHeight
}
