package report

import (
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// Writer defines the interface for puzzle output.
type Writer interface {
	// Write renders the puzzle to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(puzzle *soup.Puzzle) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the puzzle to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(puzzle *soup.Puzzle) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(puzzle)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// hiddenCell marks cells that are not part of any answer in a solution board.
const hiddenCell = '·'

// solutionLines returns the board with every cell outside the answers hidden.
func solutionLines(puzzle *soup.Puzzle) []string {
	solution := soup.NewGrid(puzzle.Rows, puzzle.Cols)
	for i := range solution {
		for j := range solution[i] {
			solution[i][j] = hiddenCell
		}
	}
	for _, answer := range puzzle.Answers {
		n := len([]rune(answer.Word))
		for _, cell := range answer.Cells(n) {
			solution[cell.Row][cell.Col] = puzzle.Grid[cell.Row][cell.Col]
		}
	}
	return solution.Lines()
}

var titleCase = cases.Title(language.English)

// orientationLabel returns the display name of an orientation, e.g. "Diagonal".
func orientationLabel(o soup.Orientation) string {
	return titleCase.String(o.String())
}

// position formats a cell with 1-based coordinates for people.
func position(c soup.Cell) string {
	return "(" + strconv.Itoa(c.Row+1) + ", " + strconv.Itoa(c.Col+1) + ")"
}

// size formats the board dimensions as rows x cols.
func size(puzzle *soup.Puzzle) string {
	return strconv.Itoa(puzzle.Rows) + "x" + strconv.Itoa(puzzle.Cols)
}
