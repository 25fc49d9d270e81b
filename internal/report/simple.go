package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// ruleWidth is the width of the section separators.
const ruleWidth = 50

// SimpleWriter outputs printable text for terminal display.
// Letters are separated by spaces so the board reads as a square grid.
type SimpleWriter struct {
	baseWriter

	// answers adds the answer key and the solution board.
	answers bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithAnswers configures the writer to include the answer key.
func WithAnswers(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.answers = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the puzzle in human-readable format.
func (w *SimpleWriter) Write(puzzle *soup.Puzzle) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, puzzle)
	writeBoard(&sb, puzzle.Grid.Lines())
	w.writeWords(&sb, puzzle)
	if w.answers {
		w.writeAnswers(&sb, puzzle)
	}

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the title and puzzle properties.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, puzzle *soup.Puzzle) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                 SOPA DE LETRAS\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Size:  %s\n", size(puzzle))
	fmt.Fprintf(sb, "Seed:  %d\n", puzzle.Seed)
	fmt.Fprintf(sb, "Words: %d\n", len(puzzle.Words))
	sb.WriteString("\n")
}

// writeBoard writes board lines with a space between letters.
func writeBoard(sb *strings.Builder, lines []string) {
	for _, line := range lines {
		letters := strings.Split(line, "")
		sb.WriteString("  ")
		sb.WriteString(strings.Join(letters, " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// writeWords writes the list of words to find.
func (w *SimpleWriter) writeWords(sb *strings.Builder, puzzle *soup.Puzzle) {
	writeSection(sb, "WORDS")
	for _, word := range puzzle.Words {
		fmt.Fprintf(sb, "  [ ] %s\n", word)
	}
	sb.WriteString("\n")
}

// writeAnswers writes the answer key followed by the solution board.
func (w *SimpleWriter) writeAnswers(sb *strings.Builder, puzzle *soup.Puzzle) {
	writeSection(sb, "ANSWERS")

	width := 0
	for _, answer := range puzzle.Answers {
		width = max(width, len([]rune(answer.Word)))
	}

	for _, answer := range puzzle.Answers {
		n := len([]rune(answer.Word))
		start := soup.Cell{Row: answer.Row, Col: answer.Col}
		fmt.Fprintf(sb, "  %s%s  %-10s  %s -> %s\n",
			answer.Word,
			strings.Repeat(" ", width-n),
			answer.Orientation,
			position(start),
			position(answer.End(n)),
		)
	}
	sb.WriteString("\n")

	writeBoard(sb, solutionLines(puzzle))
}

// writeSection writes a section title between separators.
func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}
