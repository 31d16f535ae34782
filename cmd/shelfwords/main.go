// shelfwords lists the dictionary words a shelf of tiles can form against a
// board pattern, highest score first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/shelfwords/config"
	"github.com/domino14/shelfwords/internal/dictionary"
	"github.com/domino14/shelfwords/internal/search"
	"github.com/domino14/shelfwords/internal/shelf"
)

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "shelfwords: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)
	log.Debug().Interface("config", cfg).Msg("shelfwords-started")

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shelfwords: %v\n\n", err)
		cfg.PrintUsage()
		os.Exit(2)
	}

	patterns := func() ([]string, error) {
		return []string{cfg.Pattern}, nil
	}
	if cfg.Interactive {
		patterns = func() ([]string, error) {
			return readPatterns(os.Stdin, os.Stderr)
		}
	}
	if err := run(context.Background(), cfg, patterns, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shelfwords: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// run checks the shelf and dictionary before asking for patterns, so bad
// input is reported without waiting on stdin.
func run(ctx context.Context, cfg *config.Config, patterns func() ([]string, error),
	out io.Writer) error {

	sh, err := shelf.Parse(cfg.Shelf)
	if err != nil {
		return err
	}
	src, err := dictionary.Open(cfg.DictionaryPath)
	if err != nil {
		return err
	}
	defer src.Close()

	ps, err := patterns()
	if err != nil {
		return err
	}
	finder := &search.Finder{Shelf: sh, Dictionary: src}
	words, err := finder.Find(ctx, ps)
	if err != nil {
		return err
	}
	if !cfg.ScanOrder {
		search.SortByScore(words)
	}
	return search.WriteResults(out, words)
}
