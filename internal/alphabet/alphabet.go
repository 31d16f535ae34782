// Package alphabet holds the lowercase letter set that shelves, patterns
// and scores are expressed over.
package alphabet

import "strings"

const (
	// NumLetters is the size of the playable alphabet.
	NumLetters = 26
	// WildcardToken is the shelf and pattern symbol for a blank.
	WildcardToken = '_'
)

// IsLetter reports whether b is one of the playable letters a-z.
func IsLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// LetterSet is a set of playable letters. The zero value is empty.
type LetterSet [NumLetters]bool

// Full returns the set containing every letter.
func Full() LetterSet {
	var s LetterSet
	for i := range s {
		s[i] = true
	}
	return s
}

// Add puts letter in the set. Non-letters are ignored.
func (s *LetterSet) Add(letter byte) {
	if IsLetter(letter) {
		s[letter-'a'] = true
	}
}

// Remove takes letter out of the set. Non-letters are ignored.
func (s *LetterSet) Remove(letter byte) {
	if IsLetter(letter) {
		s[letter-'a'] = false
	}
}

// Contains reports whether letter is in the set. It is always false for
// non-letters.
func (s LetterSet) Contains(letter byte) bool {
	return IsLetter(letter) && s[letter-'a']
}

func (s LetterSet) Len() int {
	n := 0
	for _, in := range s {
		if in {
			n++
		}
	}
	return n
}

// String returns the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for i, in := range s {
		if in {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
