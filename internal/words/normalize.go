package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// combiningTilde is U+0303, the mark that turns N into Ñ.
const combiningTilde = '\u0303'

// ErrInvalidWord is matched by every *InvalidWordError.
var ErrInvalidWord = errors.New("invalid word")

// InvalidWordError reports a word that cannot be used in a puzzle.
type InvalidWordError struct {
	// Word is the input as given by the user.
	Word string

	// Letter is the first offending rune, or zero when the word is empty.
	Letter rune
}

// Error implements the error interface.
func (e *InvalidWordError) Error() string {
	if e.Letter == 0 {
		return fmt.Sprintf("%v: %q is empty", ErrInvalidWord, e.Word)
	}
	return fmt.Sprintf("%v: %q contains %q", ErrInvalidWord, e.Word, e.Letter)
}

// Unwrap returns ErrInvalidWord.
func (e *InvalidWordError) Unwrap() error {
	return ErrInvalidWord
}

var upper = cases.Upper(language.Spanish)

// Normalize trims s, strips diacritics except the tilde of Ñ, and uppercases
// the result. It does not validate the letters; see Validate.
func Normalize(s string) string {
	decomposed := []rune(norm.NFD.String(strings.TrimSpace(s)))

	var sb strings.Builder
	var base rune
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			if r == combiningTilde && (base == 'n' || base == 'N') {
				sb.WriteRune(r)
			}
			continue
		}
		base = r
		sb.WriteRune(r)
	}

	return upper.String(norm.NFC.String(sb.String()))
}

// Validate checks that word is non-empty and made only of alphabet letters.
func Validate(word string) error {
	if word == "" {
		return &InvalidWordError{Word: word}
	}
	for _, r := range word {
		if !soup.IsLetter(r) {
			return &InvalidWordError{Word: word, Letter: r}
		}
	}
	return nil
}

// NormalizeAll normalizes and validates every word, dropping repeats while
// keeping the first occurrence. The first invalid word aborts with an
// *InvalidWordError naming the original input.
func NormalizeAll(input []string) ([]string, error) {
	seen := make(map[string]bool, len(input))
	result := make([]string, 0, len(input))

	for _, raw := range input {
		word := Normalize(raw)
		if err := Validate(word); err != nil {
			var invalid *InvalidWordError
			if errors.As(err, &invalid) {
				invalid.Word = raw
			}
			return nil, err
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		result = append(result, word)
	}

	return result, nil
}
