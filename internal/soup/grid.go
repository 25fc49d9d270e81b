package soup

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Blank marks a cell that no word has claimed yet.
const Blank = ' '

// Grid is a rows×cols board of letters, indexed as grid[row][col].
// Every row has the same length.
type Grid [][]rune

// NewGrid returns a rows×cols grid with every cell set to Blank.
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for r := range grid {
		row := make([]rune, cols)
		for c := range row {
			row[c] = Blank
		}
		grid[r] = row
	}
	return grid
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// CanPlace reports whether word can be written at p: every cell it would
// occupy must be inside the board and either Blank or already hold the same
// letter. The grid is never modified.
func (g Grid) CanPlace(word string, p Placement) bool {
	return g.canPlace([]rune(word), p)
}

func (g Grid) canPlace(letters []rune, p Placement) bool {
	if !p.InBounds(len(letters), g.Rows(), g.Cols()) {
		return false
	}
	dRow, dCol := p.Orientation.Step()
	for i, letter := range letters {
		current := g[p.Row+i*dRow][p.Col+i*dCol]
		if current != Blank && current != letter {
			return false
		}
	}
	return true
}

// Write writes word along p. It performs no bounds or conflict checks;
// callers must have confirmed the placement with CanPlace. A placement that
// leaves the board panics with an index out of range error.
func (g Grid) Write(word string, p Placement) {
	g.write([]rune(word), p)
}

func (g Grid) write(letters []rune, p Placement) {
	dRow, dCol := p.Orientation.Step()
	for i, letter := range letters {
		g[p.Row+i*dRow][p.Col+i*dCol] = letter
	}
}

// Read returns the n letters found along p, or an empty string when the
// line leaves the board.
func (g Grid) Read(p Placement, n int) string {
	if !p.InBounds(n, g.Rows(), g.Cols()) {
		return ""
	}
	var sb strings.Builder
	for _, cell := range p.Cells(n) {
		sb.WriteRune(g[cell.Row][cell.Col])
	}
	return sb.String()
}

// Slots returns every placement at which word could be written without
// conflict, ordered by orientation, then row, then column.
func (g Grid) Slots(word string) []Placement {
	return g.slots([]rune(word))
}

func (g Grid) slots(letters []rune) []Placement {
	var slots []Placement
	for _, o := range Orientations {
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				p := Placement{Orientation: o, Row: row, Col: col}
				if g.canPlace(letters, p) {
					slots = append(slots, p)
				}
			}
		}
	}
	return slots
}

// Blanks returns the number of Blank cells.
func (g Grid) Blanks() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == Blank {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cp := make(Grid, len(g))
	for i, row := range g {
		cp[i] = make([]rune, len(row))
		copy(cp[i], row)
	}
	return cp
}

// Lines returns each row as a string.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

// String renders the grid one row per line.
func (g Grid) String() string {
	if len(g) == 0 {
		return ""
	}
	return strings.Join(g.Lines(), "\n") + "\n"
}

// MarshalJSON encodes the grid as an array of row strings.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Lines())
}

// UnmarshalJSON decodes an array of row strings.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	grid := make(Grid, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
		if i > 0 && len(grid[i]) != len(grid[0]) {
			return fmt.Errorf("grid row %d has %d cells, want %d", i, len(grid[i]), len(grid[0]))
		}
	}
	*g = grid
	return nil
}
