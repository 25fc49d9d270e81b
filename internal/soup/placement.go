package soup

// Cell is a (row, col) coordinate on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement fixes where a word goes: the orientation plus the anchor cell
// holding its first letter. Together with the word length it determines
// every cell the word occupies.
type Placement struct {
	Orientation Orientation `json:"orientation"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
}

// Cells returns the n cells a word of length n occupies from this placement.
func (p Placement) Cells(n int) []Cell {
	dRow, dCol := p.Orientation.Step()
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Row: p.Row + i*dRow, Col: p.Col + i*dCol}
	}
	return cells
}

// End returns the cell holding the last letter of a word of length n.
func (p Placement) End(n int) Cell {
	dRow, dCol := p.Orientation.Step()
	return Cell{Row: p.Row + (n-1)*dRow, Col: p.Col + (n-1)*dCol}
}

// InBounds reports whether a word of length n fits inside a rows×cols board
// from this placement.
func (p Placement) InBounds(n, rows, cols int) bool {
	if !p.Orientation.Valid() || n <= 0 {
		return false
	}
	if p.Row < 0 || p.Col < 0 || p.Row >= rows || p.Col >= cols {
		return false
	}
	end := p.End(n)
	return end.Row < rows && end.Col < cols
}

// PlacedWord is an answer-key entry: a word and where it was written.
type PlacedWord struct {
	Word string `json:"word"`
	Placement
}
