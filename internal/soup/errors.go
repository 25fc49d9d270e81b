package soup

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the generator.
// Typed errors below match them through errors.Is.
var (
	// ErrWordTooLong is matched by every *FitError.
	ErrWordTooLong = errors.New("word does not fit the board")

	// ErrCannotPlace is matched by every *PlacementError.
	ErrCannotPlace = errors.New("cannot place word")

	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("invalid board dimensions: rows and cols must be positive")

	// ErrEmptyWord is returned when a word has no letters.
	ErrEmptyWord = errors.New("empty word")

	// ErrInvalidLetter is returned when a word contains a rune outside Alphabet.
	ErrInvalidLetter = errors.New("word contains a letter outside the alphabet")
)

// FitError reports a word that is longer than the board allows.
type FitError struct {
	// Word is the offending word.
	Word string

	// Rows and Cols are the board dimensions the word was checked against.
	Rows int
	Cols int
}

// Error implements the error interface.
func (e *FitError) Error() string {
	return fmt.Sprintf("word %s does not fit a %dx%d board", e.Word, e.Rows, e.Cols)
}

// Is reports whether target is ErrWordTooLong.
func (e *FitError) Is(target error) bool {
	return target == ErrWordTooLong
}

// PlacementError reports a word for which no conflict-free slot was found.
type PlacementError struct {
	// Word is the word that could not be placed.
	Word string

	// Attempts is the number of random placements tried before giving up.
	Attempts int
}

// Error implements the error interface.
func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place word %s after %d attempts", e.Word, e.Attempts)
}

// Unwrap returns ErrCannotPlace.
func (e *PlacementError) Unwrap() error {
	return ErrCannotPlace
}
