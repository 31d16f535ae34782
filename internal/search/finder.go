package search

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/shelfwords/internal/dictionary"
	"github.com/domino14/shelfwords/internal/pattern"
	"github.com/domino14/shelfwords/internal/scoring"
	"github.com/domino14/shelfwords/internal/shelf"
)

// ScoredWord is one output record.
type ScoredWord struct {
	Word    string
	Score   int
	Pattern string
}

// Finder ties a shelf to a dictionary.
type Finder struct {
	Shelf      *shelf.Shelf
	Dictionary dictionary.Source
}

// Compile compiles every pattern against the shelf. It fails on the first
// pattern that cannot be compiled, before any dictionary work is done.
func (f *Finder) Compile(patterns []string) ([]*pattern.Matcher, error) {
	matchers := make([]*pattern.Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := pattern.Compile(p, f.Shelf.Restricted())
		if err != nil {
			return nil, err
		}
		log.Debug().Str("pattern", p).Str("compiled", m.String()).Msg("pattern-compiled")
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// Find returns a ScoredWord for every (pattern, word) pair that matches
// and that the shelf can form. Records come out in pattern order, then
// dictionary order.
func (f *Finder) Find(ctx context.Context, patterns []string) ([]ScoredWord, error) {
	defer timeTrack(time.Now(), "find")
	matchers, err := f.Compile(patterns)
	if err != nil {
		return nil, err
	}

	pool := []Candidate{}
	for _, m := range matchers {
		candidates, err := Scan(ctx, f.Dictionary, m)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("pattern", m.Pattern()).
			Str("matches", humanize.Comma(int64(len(candidates)))).Msg("scan-done")
		pool = append(pool, candidates...)
	}

	feasible := FilterFeasible(pool, f.Shelf)
	log.Info().Str("candidates", humanize.Comma(int64(len(pool)))).
		Str("feasible", humanize.Comma(int64(len(feasible)))).
		Strs("patterns", lo.Map(matchers, func(m *pattern.Matcher, _ int) string {
			return m.Pattern()
		})).Msg("filter-done")

	scored := make([]ScoredWord, 0, len(feasible))
	for _, c := range feasible {
		pts, err := scoring.Score(c.Word)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ScoredWord{Word: c.Word, Score: pts, Pattern: c.Pattern})
	}
	return scored, nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}
