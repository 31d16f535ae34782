package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// maxLineLength bounds a single word list line. Longer lines are skipped.
const maxLineLength = bufio.MaxScanTokenSize

// textFile re-opens the word list for every scan.
type textFile struct {
	path string
}

func openTextFile(path string) (*textFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	f.Close()
	return &textFile{path: path}, nil
}

func (t *textFile) Words(ctx context.Context, minLength int, fn func(word string)) error {
	f, err := os.Open(t.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, maxLineLength)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, isPrefix, err := r.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
		}
		if isPrefix {
			for isPrefix && err == nil {
				_, isPrefix, err = r.ReadLine()
			}
			if err == io.EOF {
				return nil
			} else if err != nil {
				return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
			}
			log.Debug().Int("line", lineNo).Msg("skipped-long-line")
			continue
		}
		w, ok := normalize(string(line))
		if !ok || len(w) < minLength {
			continue
		}
		fn(w)
	}
}

func (t *textFile) Close() error {
	return nil
}
