package search

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

type scoredWords []ScoredWord

func (ws scoredWords) Len() int      { return len(ws) }
func (ws scoredWords) Swap(i, j int) { ws[i], ws[j] = ws[j], ws[i] }

type byScore struct{ scoredWords }

func (ws byScore) Less(i, j int) bool {
	if ws.scoredWords[i].Score != ws.scoredWords[j].Score {
		return ws.scoredWords[i].Score > ws.scoredWords[j].Score
	}
	return ws.scoredWords[i].Word < ws.scoredWords[j].Word
}

// SortByScore orders words by descending score, then alphabetically.
// Equal records keep their relative order.
func SortByScore(words []ScoredWord) {
	sort.Stable(byScore{words})
}

// WriteResults writes one "<score>\t<word>" line per record.
func WriteResults(w io.Writer, words []ScoredWord) error {
	bw := bufio.NewWriter(w)
	for _, sw := range words {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", sw.Score, sw.Word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
