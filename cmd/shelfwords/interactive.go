package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// endOfPatterns is the line that ends interactive input.
const endOfPatterns = "eof"

var errInterrupted = errors.New("interrupted")

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// readPatterns prompts on prompts and reads one pattern per line from in.
func readPatterns(in io.ReadCloser, prompts io.Writer) ([]string, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "pattern> ",
		Stdin:           in,
		Stdout:          prompts,
		Stderr:          prompts,
		EOFPrompt:       endOfPatterns,
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
		FuncIsTerminal: func() bool {
			f, ok := in.(*os.File)
			return ok && readline.IsTerminal(int(f.Fd()))
		},
	})
	if err != nil {
		return nil, err
	}
	defer l.Close()
	return collectPatterns(l.Readline)
}

// collectPatterns calls readLine until it sees a line that is exactly eof,
// or the input ends. Blank lines are skipped.
func collectPatterns(readLine func() (string, error)) ([]string, error) {
	patterns := []string{}
	for {
		line, err := readLine()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil, errInterrupted
			}
			continue
		} else if err == io.EOF {
			return patterns, nil
		} else if err != nil {
			return nil, err
		}
		if line == endOfPatterns {
			return patterns, nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		log.Debug().Str("pattern", line).Msg("pattern-read")
		patterns = append(patterns, line)
	}
}
