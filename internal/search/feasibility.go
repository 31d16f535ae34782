package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/shelfwords/internal/shelf"
)

// Feasible reports whether the shelf holds enough tiles to form c.Word.
// For each letter on the shelf, occurrences in the word beyond the ones
// the pattern itself fixes must come from the shelf. Blanks are not
// counted toward any letter.
func Feasible(c Candidate, s *shelf.Shelf) bool {
	for _, letter := range s.Letters() {
		excess := strings.Count(c.Word, string(letter)) - c.Mask.Count(letter)
		if excess > s.Count(letter) {
			return false
		}
	}
	return true
}

// FilterFeasible returns the candidates that pass Feasible, in their
// original order.
func FilterFeasible(candidates []Candidate, s *shelf.Shelf) []Candidate {
	return lo.Filter(candidates, func(c Candidate, _ int) bool {
		return Feasible(c, s)
	})
}
