// Package search runs board patterns against a dictionary and keeps the
// words a shelf can actually form.
package search

import (
	"context"

	"github.com/domino14/shelfwords/internal/dictionary"
	"github.com/domino14/shelfwords/internal/pattern"
)

// Candidate is a dictionary word accepted by a pattern, along with the
// pattern's letter mask.
type Candidate struct {
	Word    string
	Pattern string
	Mask    pattern.Mask
}

// Scan makes one full pass over src and returns every word m accepts, in
// dictionary order.
func Scan(ctx context.Context, src dictionary.Source, m *pattern.Matcher) ([]Candidate, error) {
	candidates := []Candidate{}
	err := src.Words(ctx, m.Len(), func(word string) {
		if m.Match(word) {
			candidates = append(candidates, Candidate{
				Word:    word,
				Pattern: m.Pattern(),
				Mask:    m.Mask(),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
