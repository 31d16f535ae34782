package config

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadShortFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"-s", "aeinr_t", "-p", "c.t"}))
	is.Equal(c.Shelf, "aeinr_t")
	is.Equal(c.Pattern, "c.t")
	is.Equal(c.Interactive, false)
	is.Equal(c.DictionaryPath, DefaultDictionary)
	is.Equal(c.LogLevel, "warn")
	is.NoErr(c.Validate())
}

func TestLoadLongFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--shelf", "xyz", "--interactive", "--scan-order", "/tmp/NWL20.db"}))
	is.Equal(c.Shelf, "xyz")
	is.True(c.Interactive)
	is.True(c.ScanOrder)
	is.Equal(c.DictionaryPath, "/tmp/NWL20.db")
	is.NoErr(c.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("SHELFWORDS_SHELF", "qi")
	c := &Config{}
	is.NoErr(c.Load([]string{"-p", "_"}))
	is.Equal(c.Shelf, "qi")
	is.NoErr(c.Validate())
}

func TestCommandLineBeatsEnvForAliases(t *testing.T) {
	is := is.New(t)
	t.Setenv("SHELFWORDS_SHELF", "qi")
	t.Setenv("SHELFWORDS_PATTERN", "zz")
	c := &Config{}
	is.NoErr(c.Load([]string{"-s", "abc", "-p", "c.t", "words.txt"}))
	is.Equal(c.Shelf, "abc")
	is.Equal(c.Pattern, "c.t")
	is.Equal(c.DictionaryPath, "words.txt")

	c = &Config{}
	is.NoErr(c.Load([]string{"--shelf=xyz", "-i"}))
	is.Equal(c.Shelf, "xyz")
	is.Equal(c.Pattern, "zz") // nothing on the command line, so env applies
	is.True(c.Interactive)
}

func TestCommandLineFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	args := []string{"-i", "--shelf", "ab", "-log-level=debug", "dict.txt"}
	is.NoErr(c.Load(args))
	given := commandLineFlags(c.fs, args)
	is.Equal(given, map[string]bool{"i": true, "shelf": true, "log-level": true})
}

func TestTooManyDictionaries(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"-s", "a", "-p", "a", "one.txt", "two.txt"})
	is.True(errors.Is(err, ErrConflictingOptions))
}

type validationtest struct {
	args []string
	err  error
}

var validationTests = []validationtest{
	{[]string{"-p", "cat"}, ErrMissingRequiredOption},
	{[]string{"-s", "abc"}, ErrMissingRequiredOption},
	{[]string{"-s", "abc", "-p", "cat", "-i"}, ErrConflictingOptions},
	{[]string{"-s", "abc", "-i"}, nil},
}

func TestValidate(t *testing.T) {
	for _, tc := range validationTests {
		c := &Config{}
		if err := c.Load(tc.args); err != nil {
			t.Fatalf("load %v: %v", tc.args, err)
		}
		err := c.Validate()
		if tc.err == nil && err != nil {
			t.Errorf("for %v expected no error, got %v", tc.args, err)
		} else if tc.err != nil && !errors.Is(err, tc.err) {
			t.Errorf("for %v expected %v, got %v", tc.args, tc.err, err)
		}
	}
}
