// Package shelf parses the tiles a player holds and derives the letters
// they cannot supply.
package shelf

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/shelfwords/internal/alphabet"
)

var ErrInvalidShelf = errors.New("invalid shelf")

// Shelf is a parsed set of tiles. It is immutable once built.
type Shelf struct {
	tiles         string
	letterCounts  [alphabet.NumLetters]int
	wildcardCount int
	restricted    alphabet.LetterSet
}

// Parse builds a Shelf from a string of lowercase letters and wildcard
// tokens, e.g. "aeinr_t".
func Parse(tiles string) (*Shelf, error) {
	if tiles == "" {
		return nil, fmt.Errorf("%w: no tiles given", ErrInvalidShelf)
	}
	s := &Shelf{tiles: tiles, restricted: alphabet.Full()}
	for i := 0; i < len(tiles); i++ {
		c := tiles[i]
		switch {
		case c == alphabet.WildcardToken:
			s.wildcardCount++
		case alphabet.IsLetter(c):
			s.letterCounts[c-'a']++
			s.restricted.Remove(c)
		default:
			return nil, fmt.Errorf("%w: illegal character %q at position %d",
				ErrInvalidShelf, c, i)
		}
	}
	log.Debug().Str("shelf", tiles).Str("restricted", s.restricted.String()).
		Int("wildcards", s.wildcardCount).Msg("shelf-parsed")
	return s, nil
}

// Count returns how many tiles of letter the shelf holds.
func (s *Shelf) Count(letter byte) int {
	if !alphabet.IsLetter(letter) {
		return 0
	}
	return s.letterCounts[letter-'a']
}

// WildcardCount returns the number of blank tiles on the shelf.
func (s *Shelf) WildcardCount() int {
	return s.wildcardCount
}

// Letters returns the distinct letters held, in alphabetical order.
func (s *Shelf) Letters() []byte {
	letters := []byte{}
	for i, n := range s.letterCounts {
		if n > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	return letters
}

// Restricted returns the letters not present on the shelf. Wildcards do
// not remove anything from it.
func (s *Shelf) Restricted() alphabet.LetterSet {
	return s.restricted
}

func (s *Shelf) String() string {
	return s.tiles
}
