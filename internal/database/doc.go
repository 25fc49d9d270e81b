// Package database provides SQLite-based storage for sopa's puzzle history.
//
// Every generated puzzle is stored as JSON together with the metadata needed
// to list it (words, board size, seed, orientation summary). Puzzles are keyed
// by the fingerprint of their board, so regenerating a puzzle from the same
// seed updates the existing row instead of adding a duplicate.
//
// The database is a single file in the XDG data directory and is opened with
// modernc.org/sqlite, which needs no cgo.
package database
