package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/namsral/flag"
)

const DefaultDictionary = "words.txt"

var (
	ErrMissingRequiredOption = errors.New("missing required option")
	ErrConflictingOptions    = errors.New("conflicting options")
)

type Config struct {
	Shelf          string
	Pattern        string
	Interactive    bool
	DictionaryPath string
	ScanOrder      bool
	LogLevel       string

	fs *flag.FlagSet
}

// Load loads the configs from the given arguments. Every flag can also be
// set through a SHELFWORDS_ prefixed environment variable.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("shelfwords", "SHELFWORDS", flag.ContinueOnError)
	c.fs = fs
	fs.Usage = c.PrintUsage

	// Short and long forms get their own variables so an environment
	// value for one cannot replace the other given on the command line.
	var shelfShort, patternShort string
	var interactiveShort bool
	fs.StringVar(&shelfShort, "s", "", "the tiles on your shelf, e.g. aeinr_t (_ is a blank)")
	fs.StringVar(&c.Shelf, "shelf", "", "long form of -s")
	fs.StringVar(&patternShort, "p", "", "board pattern: letters are fixed tiles, . is a square you fill, _ is any letter")
	fs.StringVar(&c.Pattern, "pattern", "", "long form of -p")
	fs.BoolVar(&interactiveShort, "i", false, "read patterns from standard input, one per line, until a line reading eof")
	fs.BoolVar(&c.Interactive, "interactive", false, "long form of -i")
	fs.BoolVar(&c.ScanOrder, "scan-order", false, "print words in dictionary order instead of highest score first")
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	given := commandLineFlags(fs, args)
	c.Shelf = pick(given, "s", shelfShort, "shelf", c.Shelf)
	c.Pattern = pick(given, "p", patternShort, "pattern", c.Pattern)
	c.Interactive = pick(given, "i", interactiveShort, "interactive", c.Interactive)

	c.DictionaryPath = DefaultDictionary
	switch fs.NArg() {
	case 0:
	case 1:
		c.DictionaryPath = fs.Arg(0)
	default:
		return fmt.Errorf("%w: only one dictionary may be given, got %v",
			ErrConflictingOptions, fs.Args())
	}
	return nil
}

// commandLineFlags returns the names of the flags that appear in args, as
// opposed to ones filled in from the environment.
func commandLineFlags(fs *flag.FlagSet, args []string) map[string]bool {
	given := map[string]bool{}
	consumed := args[:len(args)-fs.NArg()]
	for i := 0; i < len(consumed); i++ {
		a := consumed[i]
		if a == "--" {
			break
		}
		if len(a) < 2 || a[0] != '-' {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		given[name] = true
		f := fs.Lookup(name)
		if f == nil || hasValue {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		// the next argument is this flag's value
		i++
	}
	return given
}

// pick resolves a short/long flag pair. The command line wins over the
// environment, and the long form wins when both are on the command line.
func pick[T comparable](given map[string]bool, short string, shortVal T, long string, longVal T) T {
	var zero T
	switch {
	case given[long]:
		return longVal
	case given[short]:
		return shortVal
	case longVal != zero:
		return longVal
	}
	return shortVal
}

// Validate checks that the loaded options describe a runnable search.
func (c *Config) Validate() error {
	if c.Shelf == "" {
		return fmt.Errorf("%w: a shelf must be given with -s", ErrMissingRequiredOption)
	}
	if c.Pattern != "" && c.Interactive {
		return fmt.Errorf("%w: -p and -i cannot be used together", ErrConflictingOptions)
	}
	if c.Pattern == "" && !c.Interactive {
		return fmt.Errorf("%w: a pattern must be given with -p, or -i for interactive mode",
			ErrMissingRequiredOption)
	}
	return nil
}

func (c *Config) PrintUsage() {
	fmt.Fprintln(os.Stderr, "usage: shelfwords -s SHELF (-p PATTERN | -i) [DICTIONARY]")
	fmt.Fprintf(os.Stderr, "DICTIONARY defaults to %s; .db and .sqlite files are read as lexicon databases, .kwg files as word graphs.\n\n",
		DefaultDictionary)
	if c.fs != nil {
		c.fs.PrintDefaults()
	}
}
