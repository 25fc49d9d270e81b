package soup

import "fmt"

// Alphabet holds every letter a puzzle cell may contain: the 26 Latin
// uppercase letters followed by Ñ.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÑ"

// alphabetRunes is Alphabet indexed by rune for uniform sampling.
var alphabetRunes = []rune(Alphabet)

// IsLetter reports whether r belongs to Alphabet.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || r == 'Ñ'
}

// validateLetters returns ErrInvalidLetter if word has a rune outside Alphabet.
func validateLetters(word string) error {
	for _, r := range word {
		if !IsLetter(r) {
			return &letterError{word: word, letter: r}
		}
	}
	return nil
}

type letterError struct {
	word   string
	letter rune
}

func (e *letterError) Error() string {
	return fmt.Sprintf("word %s contains %q: %v", e.word, e.letter, ErrInvalidLetter)
}

func (e *letterError) Unwrap() error {
	return ErrInvalidLetter
}
