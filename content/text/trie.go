package text

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A trie uses runes rather than characters for indexing, therefore its child
// key values are integers.
type trie struct {
	leaf     bool           // whether the node is a leaf (the end of an input string).
	value    any            // the value associated with the string up to this leaf node.
	children map[rune]*trie // a map of sub-tries for each child rune value.
}

// newTrie creates and returns a new Trie instance.
func newTrie() *trie {
	t := new(trie)
	t.leaf = false
	t.value = nil
	t.children = make(map[rune]*trie)
	return t
}

// Internal function: adds items to the trie, reading runes from a
// strings.Reader.  It returns the leaf node at which the addition ends.
func (p *trie) addRunes(r io.RuneReader) *trie {
	sym, _, err := r.ReadRune()
	if err != nil {
		p.leaf = true
		return p
	}

	n := p.children[sym]
	if n == nil {
		n = newTrie()
		p.children[sym] = n
	}

	// recurse to store sub-runes below the new node
	return n.addRunes(r)
}

// addString adds a string to the trie. If the string is already present, no
// additional storage happens. Yay!
func (p *trie) addString(s string) {
	if len(s) == 0 {
		return
	}

	// append the runes to the trie -- we're ignoring the value in this invocation
	p.addRunes(strings.NewReader(s))
}

// addValue adds a string to the trie, with an associated value.  If the string
// is already present, only the value is updated.
func (p *trie) addValue(s string, v any) {
	if len(s) == 0 {
		return
	}

	// append the runes to the trie
	leaf := p.addRunes(strings.NewReader(s))
	leaf.value = v
}

// Internal string inclusion function.
func (p *trie) includes(r io.RuneReader) *trie {
	rune, _, err := r.ReadRune()
	if err != nil {
		if p.leaf {
			return p
		}
		return nil
	}

	child, ok := p.children[rune]
	if !ok {
		return nil // no node for this rune was in the trie
	}

	// recurse down to the next node with the remainder of the string
	return child.includes(r)
}

// contains tests for the inclusion of a particular string in the Trie.
func (p *trie) contains(s string) bool {
	if len(s) == 0 {
		return false // empty strings can't be included (how could we add them?)
	}
	return p.includes(strings.NewReader(s)) != nil
}

// getValue returns the value associated with the given string.  Double return:
// false if the given string was not present, true if the string was present.
// The value could be both valid and nil.
func (p *trie) getValue(s string) (any, bool) {
	if len(s) == 0 {
		return nil, false
	}

	leaf := p.includes(strings.NewReader(s))
	if leaf == nil {
		return nil, false
	}
	return leaf.value, true
}

// size counts all the nodes of the entire Trie, NOT including the root node.
func (p *trie) size() (sz int) {
	sz = len(p.children)

	for _, child := range p.children {
		sz += child.size()
	}

	return
}

// allSubstringsAndValues returns all anchored substrings of the given string
// within the Trie, with a matching set of their associated values.
func (p *trie) allSubstringsAndValues(s string) ([]string, []any) {

	sv := []string{}
	vv := []any{}

	for pos, rune := range s {
		child, ok := p.children[rune]
		if !ok {
			// return whatever we have so far
			break
		}

		// if this is a leaf node, add the string so far and its value
		if child.leaf {
			sv = append(sv, s[0:pos+utf8.RuneLen(rune)])
			vv = append(vv, child.value)
		}
		p = child
	}
	return sv, vv
}

// addPatternString specialized function for TeX-style hyphenation patterns.
// Accepts strings of the form '.hy2p'. The value it stores is of type []int
func (p *trie) addPatternString(s string) {

	v := []int{}

	const zero = '0'

	// Convert to runes once to avoid byte-offset vs rune-index confusion
	// (range over string yields byte offsets, not rune indices).
	runes := []rune(s)

	for i, sym := range runes {

		if unicode.IsDigit(sym) {
			if i == 0 {
				// This is a prefix number
				v = append(v, int(sym-zero))
			}
			// this is a number referring to the previous character, and has
			// already been handled
			continue
		}

		if i < len(runes)-1 {
			// look ahead to see if it's followed by a number
			next := runes[i+1]
			if unicode.IsDigit(next) {
				// next char is the hyphenation value for this char
				v = append(v, int(next-zero))
			} else {
				// hyphenation for this char is an implied zero
				v = append(v, 0)
			}
		} else {
			// last character gets an implied zero
			v = append(v, 0)
		}
	}

	pure := strings.Map(func(sym rune) rune {
		if unicode.IsDigit(sym) {
			return -1
		}
		return sym
	}, s)

	leaf := p.addRunes(strings.NewReader(pure))
	if leaf == nil {
		return
	}
	leaf.value = v
}
