package scoring

import (
	"errors"
	"fmt"

	"github.com/domino14/shelfwords/internal/alphabet"
)

var ErrInvalidCharacter = errors.New("invalid character in word")

var letterValues = [alphabet.NumLetters]int{
	1, 4, 4, 2, 1, 4, 3, 3, 1, 10, 5, 2, 4, // a-m
	2, 1, 4, 10, 1, 1, 1, 2, 5, 4, 8, 3, 10, // n-z
}

// LetterValue returns the point value of a single letter.
func LetterValue(letter byte) (int, bool) {
	if !alphabet.IsLetter(letter) {
		return 0, false
	}
	return letterValues[letter-'a'], true
}

// Score sums the letter values of every position in word. Letters that came
// from the board or from a blank score the same as any other.
func Score(word string) (int, error) {
	total := 0
	for i := 0; i < len(word); i++ {
		v, ok := LetterValue(word[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, word[i], word)
		}
		total += v
	}
	return total, nil
}
