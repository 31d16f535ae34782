package shelf

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestRestrictedAlphabet(t *testing.T) {
	is := is.New(t)
	s, err := Parse("xyz")
	is.NoErr(err)
	r := s.Restricted()
	is.Equal(r.Len(), 23)
	is.Equal(r.String(), "abcdefghijklmnopqrstuvw")
}

func TestRepeatedLetterReducesOnce(t *testing.T) {
	is := is.New(t)
	single, err := Parse("x")
	is.NoErr(err)
	double, err := Parse("xx")
	is.NoErr(err)
	is.Equal(single.Restricted(), double.Restricted())
	is.Equal(single.Count('x'), 1)
	is.Equal(double.Count('x'), 2)
}

func TestWildcards(t *testing.T) {
	is := is.New(t)
	s, err := Parse("a__e")
	is.NoErr(err)
	is.Equal(s.WildcardCount(), 2)
	is.Equal(s.Count('a'), 1)
	is.Equal(s.Count('_'), 0)
	is.Equal(s.Letters(), []byte("ae"))
	// Blanks do not take anything out of the restricted alphabet.
	is.Equal(s.Restricted().Len(), 24)
}

func TestOnlyWildcard(t *testing.T) {
	is := is.New(t)
	s, err := Parse("_")
	is.NoErr(err)
	is.Equal(s.Restricted().Len(), 26)
	is.Equal(len(s.Letters()), 0)
}

type badShelf struct {
	tiles string
	desc  string
}

var badShelves = []badShelf{
	{"", "empty"},
	{"AB", "uppercase"},
	{"ab?", "question mark blank"},
	{"a b", "space"},
	{"ab.", "pattern dot"},
}

func TestInvalidShelf(t *testing.T) {
	for _, tc := range badShelves {
		_, err := Parse(tc.tiles)
		if !errors.Is(err, ErrInvalidShelf) {
			t.Errorf("%s: expected ErrInvalidShelf for %q, got %v", tc.desc, tc.tiles, err)
		}
	}
}
