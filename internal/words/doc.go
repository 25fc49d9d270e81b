// Package words turns user input into puzzle-ready words.
//
// Puzzles only hold the uppercase letters of soup.Alphabet, so input such as
// "canción" or "Niño" is normalized before generation: accents and other
// diacritics are removed, the tilde of Ñ is kept, and the result is
// uppercased with Spanish casing rules. Words that still contain anything
// outside the alphabet (spaces, digits, punctuation) are rejected.
package words
