// Package main provides the entry point for the sopa CLI.
//
// sopa generates word-search puzzles ("sopas de letras"): the given words
// are hidden horizontally, vertically or diagonally in a board of random
// letters.
//
// Usage:
//
//	sopa generate hola adios luego
//	sopa generate --preset animales --answers
//	sopa batch --count 10 sol luna estrella
//
// See --help for all available options.
package main

func main() {
	Execute()
}
