// Package batch generates many puzzles concurrently.
//
// Each job gets its own generator from a factory, so no random source or
// board is ever shared between goroutines. Results come back in job order
// and a failing job never cancels its siblings.
package batch
