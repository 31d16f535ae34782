package scoring

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestScore(t *testing.T) {
	type scoretest struct {
		word string
		pts  int
	}
	testCases := []scoretest{
		{"cat", 6},
		{"quiz", 23},
		{"jazz", 31},
		{"arts", 4},
		{"", 0},
		{"abcdefghijklmnopqrstuvwxyz", 96},
	}
	for _, tc := range testCases {
		pts, err := Score(tc.word)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.word, err)
		}
		if pts != tc.pts {
			t.Errorf("For %v, expected %v, got %v", tc.word, tc.pts, pts)
		}
	}
}

func TestLetterValue(t *testing.T) {
	is := is.New(t)
	for letter, want := range map[byte]int{'q': 10, 'z': 10, 'a': 1, 'e': 1, 'x': 8, 'k': 5} {
		v, ok := LetterValue(letter)
		is.True(ok)
		is.Equal(v, want)
	}
	_, ok := LetterValue('_')
	is.True(!ok)
}

func TestScoreInvalidCharacter(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"Cat", "c_t", "ca t", "café"} {
		_, err := Score(w)
		is.True(errors.Is(err, ErrInvalidCharacter))
	}
}
