package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// MarkdownWriter outputs puzzles in GitHub Flavored Markdown.
// The board is rendered as a table so it lines up in any Markdown viewer.
type MarkdownWriter struct {
	baseWriter

	// answers adds the answer key, orientation chart and solution board.
	answers bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownAnswers configures the writer to include the answer key.
func WithMarkdownAnswers(show bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.answers = show
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the puzzle in Markdown format.
func (w *MarkdownWriter) Write(puzzle *soup.Puzzle) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, puzzle)

	md.H2("Board")
	md.PlainText("")
	md.Table(boardTable(puzzle.Grid.Lines()))
	md.PlainText("")

	w.writeWords(md, puzzle)
	if w.answers {
		w.writeAnswers(md, puzzle)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the properties table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, puzzle *soup.Puzzle) {
	md.H1("Sopa de Letras")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Size", size(puzzle)},
			{"Seed", "`" + strconv.FormatUint(puzzle.Seed, 10) + "`"},
			{"Words", strconv.Itoa(len(puzzle.Words))},
			{"Fingerprint", "`" + shortFingerprint(puzzle.Fingerprint) + "`"},
		},
	})
	md.PlainText("")
}

// writeWords writes the list of words to find.
func (w *MarkdownWriter) writeWords(md *markdown.Markdown, puzzle *soup.Puzzle) {
	md.H2("Words")
	md.PlainText("")
	md.BulletList(puzzle.Words...)
	md.PlainText("")
	md.Tip("Words read left to right, top to bottom, or diagonally down and to the right.")
	md.PlainText("")
}

// writeAnswers writes the answer key, the orientation chart and the solution.
func (w *MarkdownWriter) writeAnswers(md *markdown.Markdown, puzzle *soup.Puzzle) {
	md.H2("Answers")
	md.PlainText("")

	rows := make([][]string, len(puzzle.Answers))
	for i, answer := range puzzle.Answers {
		n := len([]rune(answer.Word))
		rows[i] = []string{
			answer.Word,
			orientationLabel(answer.Orientation),
			position(soup.Cell{Row: answer.Row, Col: answer.Col}),
			position(answer.End(n)),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Orientation", "Start", "End"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(puzzle.Answers) > 0 {
		w.writePieChart(md, puzzle)
	}

	md.H2("Solution")
	md.PlainText("")
	md.Table(boardTable(solutionLines(puzzle)))
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the orientation distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, puzzle *soup.Puzzle) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Word Orientations"),
		piechart.WithShowData(true),
	)

	counts := puzzle.OrientationCounts()
	for _, o := range soup.Orientations {
		if counts[o] > 0 {
			chart.LabelAndIntValue(orientationLabel(o), uint64(counts[o])) //nolint:gosec // counts are never negative
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [sopa](https://github.com/artepepep/Sopa-de-Letras)*")
}

// boardTable turns board lines into a table with 1-based row and column headers.
func boardTable(lines []string) markdown.TableSet {
	var cols int
	if len(lines) > 0 {
		cols = len([]rune(lines[0]))
	}

	header := make([]string, cols+1)
	header[0] = "#"
	for j := 1; j <= cols; j++ {
		header[j] = strconv.Itoa(j)
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, strings.Split(line, "")...)
	}

	return markdown.TableSet{Header: header, Rows: rows}
}

// shortFingerprint returns the first 12 hex digits of a fingerprint.
func shortFingerprint(fp string) string {
	if len(fp) <= 12 {
		return fp
	}
	return fp[:12]
}
