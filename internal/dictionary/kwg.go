package dictionary

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
)

// wordGraph is the part of a KWG needed to list its words.
type wordGraph interface {
	ArcIndex(nodeIdx uint32) uint32
	Tile(nodeIdx uint32) uint8
	IsEnd(nodeIdx uint32) bool
	InLetterSet(letter tilemapping.MachineLetter, nodeIdx uint32) bool
}

// kwgSource lists every word in a Kurnia Word Graph. The graph holds its
// words in its own order (alphabetical by machine letter).
type kwgSource struct {
	graph   wordGraph
	visible func(tilemapping.MachineWord) string
}

// openKWG loads a graph laid out the way the lexicon tools keep them:
// <data path>/lexica/gaddag/<LEXICON>.kwg. The lexicon name picks the
// alphabet.
func openKWG(path string) (*kwgSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	gaddagDir := filepath.Dir(abs)
	lexicaDir := filepath.Dir(gaddagDir)
	if filepath.Base(gaddagDir) != "gaddag" || filepath.Base(lexicaDir) != "lexica" {
		return nil, fmt.Errorf("%w: %s must live under <data path>/lexica/gaddag",
			ErrDictionaryRead, path)
	}
	lexName := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))

	k, err := kwg.Get(&wglconfig.Config{DataPath: filepath.Dir(lexicaDir)}, lexName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	alph := k.GetAlphabet()
	return &kwgSource{
		graph: k,
		visible: func(mw tilemapping.MachineWord) string {
			return mw.UserVisible(alph)
		},
	}, nil
}

func (s *kwgSource) Words(ctx context.Context, minLength int, fn func(word string)) error {
	// Arc 0 points at the DAWG half of the graph.
	return s.walk(ctx, s.graph.ArcIndex(0), tilemapping.MachineWord{}, minLength, fn)
}

func (s *kwgSource) walk(ctx context.Context, nodeIdx uint32, prefix tilemapping.MachineWord,
	minLength int, fn func(word string)) error {

	if nodeIdx == 0 {
		return nil
	}
	for i := nodeIdx; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ml := tilemapping.MachineLetter(s.graph.Tile(i))
		word := append(prefix, ml)
		if s.graph.InLetterSet(ml, nodeIdx) {
			if w, ok := normalize(s.visible(word)); ok && len(w) >= minLength {
				fn(w)
			}
		}
		if err := s.walk(ctx, s.graph.ArcIndex(i), word, minLength, fn); err != nil {
			return err
		}
		if s.graph.IsEnd(i) {
			return nil
		}
	}
}

func (s *kwgSource) Close() error {
	return nil
}
