// Package log builds the slog loggers used by sopa.
//
// Logs go to stderr so they never mix with a puzzle printed on stdout.
// The default level is Warn; verbose mode lowers it to Debug, which shows
// restarts, exhaustive placement scans and batch progress.
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	gen := soup.NewGenerator(soup.Options{Logger: logger})
package log
