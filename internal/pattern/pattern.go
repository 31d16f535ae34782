// Package pattern compiles board patterns into word matchers.
//
// A board pattern is a string over a-z, '.' and '_':
//
//	c   a tile already on the board; the word must have that letter there
//	.   a square the player fills from the shelf; only held letters fit
//	_   an unconstrained square; any letter fits
//
// A word matches when its first len(pattern) letters fit the squares and
// every letter after them is one the player holds.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/shelfwords/internal/alphabet"
)

const (
	HeldSquare = '.'
	OpenSquare = alphabet.WildcardToken
)

var ErrPatternCompile = errors.New("pattern cannot be compiled")

type RuleKind int

const (
	Literal RuleKind = iota
	AnyLetter
	NotIn
)

// Rule decides which letters fit a single position.
type Rule struct {
	Kind RuleKind
	// Letter is only set for Literal rules.
	Letter byte
	// Excluded is only set for NotIn rules.
	Excluded alphabet.LetterSet
}

func (r Rule) Accepts(c byte) bool {
	if !alphabet.IsLetter(c) {
		return false
	}
	switch r.Kind {
	case Literal:
		return c == r.Letter
	case AnyLetter:
		return true
	case NotIn:
		return !r.Excluded.Contains(c)
	}
	return false
}

func (r Rule) String() string {
	switch r.Kind {
	case Literal:
		return string(r.Letter)
	case AnyLetter:
		return "_"
	case NotIn:
		return "[^" + r.Excluded.String() + "]"
	}
	return "?"
}

// Mask records which positions of a matched word were supplied by letters
// already written into the pattern. Open positions hold 0.
type Mask []byte

// Count returns how many positions of the mask are fixed to letter.
func (m Mask) Count(letter byte) int {
	n := 0
	for _, c := range m {
		if c != 0 && c == letter {
			n++
		}
	}
	return n
}

func (m Mask) String() string {
	var b strings.Builder
	for _, c := range m {
		if c == 0 {
			b.WriteByte(OpenSquare)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Matcher is a compiled board pattern.
type Matcher struct {
	pattern string
	rules   []Rule
	suffix  Rule
	mask    Mask
}

// Compile translates a board pattern into a Matcher. restricted is the set
// of letters the player does not hold.
func Compile(pattern string, restricted alphabet.LetterSet) (*Matcher, error) {
	m := &Matcher{
		pattern: pattern,
		rules:   make([]Rule, 0, len(pattern)),
		mask:    make(Mask, len(pattern)),
		suffix:  Rule{Kind: NotIn, Excluded: restricted},
	}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == HeldSquare:
			m.rules = append(m.rules, Rule{Kind: NotIn, Excluded: restricted})
		case c == OpenSquare:
			m.rules = append(m.rules, Rule{Kind: AnyLetter})
		case alphabet.IsLetter(c):
			m.rules = append(m.rules, Rule{Kind: Literal, Letter: c})
			m.mask[i] = c
		default:
			return nil, fmt.Errorf("%w: %q has illegal character %q at position %d",
				ErrPatternCompile, pattern, c, i)
		}
	}
	return m, nil
}

// Match reports whether word fits the pattern.
func (m *Matcher) Match(word string) bool {
	if len(word) < len(m.rules) {
		return false
	}
	for i, r := range m.rules {
		if !r.Accepts(word[i]) {
			return false
		}
	}
	for i := len(m.rules); i < len(word); i++ {
		if !m.suffix.Accepts(word[i]) {
			return false
		}
	}
	return true
}

// Mask returns the letter mask of the pattern. Callers must not modify it.
func (m *Matcher) Mask() Mask {
	return m.mask
}

// Pattern returns the board pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Len is the number of positions in the pattern, and so the shortest word
// that can match.
func (m *Matcher) Len() int {
	return len(m.rules)
}

// String renders the compiled rules, with the open suffix shown as a
// starred class.
func (m *Matcher) String() string {
	var b strings.Builder
	for _, r := range m.rules {
		b.WriteString(r.String())
	}
	b.WriteString(m.suffix.String())
	b.WriteByte('*')
	return b.String()
}
