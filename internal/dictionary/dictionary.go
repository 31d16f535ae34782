// Package dictionary streams candidate words from a word list. Every call
// to Words is a full scan from the start of the list.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/shelfwords/internal/alphabet"
)

var (
	ErrDictionaryNotFound = errors.New("dictionary not found")
	ErrDictionaryRead     = errors.New("dictionary could not be read")
)

// Source is a re-scannable list of lowercase words.
type Source interface {
	// Words calls fn for every well-formed word at least minLength letters
	// long, in list order.
	Words(ctx context.Context, minLength int, fn func(word string)) error
	Close() error
}

// Open returns a Source for the file at path. Files ending in .db or
// .sqlite are read as lexicon databases, .kwg files as word graphs, and
// anything else as a plain word list with one word per line.
func Open(path string) (Source, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDictionaryRead, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		log.Debug().Str("path", path).Msg("opening-lexicon-db")
		return openLexiconDB(path)
	case ".kwg":
		log.Debug().Str("path", path).Msg("opening-kwg")
		return openKWG(path)
	}
	log.Debug().Str("path", path).Msg("opening-word-list")
	return openTextFile(path)
}

// normalize turns a raw line into a word. Lines that are not made up of
// letters alone are reported as not ok and skipped by every Source.
func normalize(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if !alphabet.IsLetter(w[i]) {
			return "", false
		}
	}
	return w, true
}

// WordList is an in-memory Source.
type WordList []string

func (wl WordList) Words(ctx context.Context, minLength int, fn func(word string)) error {
	for _, line := range wl {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, ok := normalize(line)
		if !ok || len(w) < minLength {
			continue
		}
		fn(w)
	}
	return nil
}

func (wl WordList) Close() error {
	return nil
}
