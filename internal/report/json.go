package report

import (
	"encoding/json"
	"io"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// JSONWriter outputs puzzles in JSON format.
// Compact output writes one document per line, so a stream of puzzles
// can be consumed as JSON Lines.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the puzzle in JSON format.
func (w *JSONWriter) Write(puzzle *soup.Puzzle) (int, error) {
	return w.writeJSON(puzzle)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport wraps a puzzle with the version of sopa that produced it.
type JSONReport struct {
	// Version is the sopa version that generated this puzzle.
	Version string `json:"version"`

	// Puzzle is the generated puzzle including its answer key.
	Puzzle *soup.Puzzle `json:"puzzle"`
}

// FullJSONWriter outputs puzzles wrapped in a JSONReport.
type FullJSONWriter struct {
	*JSONWriter

	// version is the sopa version string.
	version string
}

// NewFullJSONWriter creates a writer for puzzles with version metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the puzzle wrapped with metadata.
func (w *FullJSONWriter) Write(puzzle *soup.Puzzle) (int, error) {
	return w.writeJSON(&JSONReport{Version: w.version, Puzzle: puzzle})
}
