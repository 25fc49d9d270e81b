package soup

import (
	"encoding/json"
	"strings"
	"testing"
)

// gridFromLines builds a Grid from row strings; '.' stands for Blank.
func gridFromLines(lines ...string) Grid {
	grid := make(Grid, len(lines))
	for i, line := range lines {
		grid[i] = []rune(strings.ReplaceAll(line, ".", string(Blank)))
	}
	return grid
}

// holaGrid returns a 6x6 board with HOLA written horizontally at row 3.
func holaGrid() Grid {
	return gridFromLines(
		"......",
		"......",
		"......",
		"HOLA..",
		"......",
		"......",
	)
}

// TestNewGrid tests blank grid allocation.
func TestNewGrid(t *testing.T) {
	t.Parallel()

	grid := NewGrid(2, 3)

	if grid.Rows() != 2 {
		t.Errorf("expected 2 rows, got %d", grid.Rows())
	}
	if grid.Cols() != 3 {
		t.Errorf("expected 3 cols, got %d", grid.Cols())
	}
	if grid.Blanks() != 6 {
		t.Errorf("expected 6 blank cells, got %d", grid.Blanks())
	}
	for r, row := range grid {
		for c, cell := range row {
			if cell != Blank {
				t.Errorf("cell (%d,%d) = %q, want blank", r, c, cell)
			}
		}
	}
}

// TestGridCanPlace tests the conflict rule against a board holding HOLA.
func TestGridCanPlace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		placement Placement
		want      bool
	}{
		{
			name:      "horizontal on an empty row is accepted",
			placement: Placement{Orientation: Horizontal, Row: 0, Col: 0},
			want:      true,
		},
		{
			name:      "vertical crossing H with I is rejected",
			placement: Placement{Orientation: Vertical, Row: 1, Col: 0},
			want:      false,
		},
		{
			name:      "vertical sharing the O of HOLA is accepted",
			placement: Placement{Orientation: Vertical, Row: 0, Col: 1},
			want:      true,
		},
		{
			name:      "diagonal leaving the board is rejected",
			placement: Placement{Orientation: Diagonal, Row: 0, Col: 3},
			want:      false,
		},
		{
			name:      "horizontal leaving the board is rejected",
			placement: Placement{Orientation: Horizontal, Row: 5, Col: 2},
			want:      false,
		},
		{
			name:      "negative anchor is rejected",
			placement: Placement{Orientation: Vertical, Row: -1, Col: 0},
			want:      false,
		},
		{
			name:      "invalid orientation is rejected",
			placement: Placement{Row: 0, Col: 0},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			grid := holaGrid()
			if got := grid.CanPlace("ADIOS", tt.placement); got != tt.want {
				t.Errorf("CanPlace(ADIOS, %+v) = %v, want %v", tt.placement, got, tt.want)
			}
		})
	}
}

// TestGridCanPlaceIsIdempotent tests that validation never mutates the board.
func TestGridCanPlaceIsIdempotent(t *testing.T) {
	t.Parallel()

	grid := holaGrid()
	before := grid.String()

	placements := []Placement{
		{Orientation: Vertical, Row: 1, Col: 0},
		{Orientation: Vertical, Row: 0, Col: 1},
		{Orientation: Diagonal, Row: 1, Col: 1},
	}
	for _, p := range placements {
		first := grid.CanPlace("ADIOS", p)
		second := grid.CanPlace("ADIOS", p)
		if first != second {
			t.Errorf("CanPlace(%+v) returned %v then %v", p, first, second)
		}
	}

	if after := grid.String(); after != before {
		t.Errorf("grid changed during validation:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// TestGridWrite tests writing in every orientation over existing letters.
func TestGridWrite(t *testing.T) {
	t.Parallel()

	grid := gridFromLines(
		"QCRNB",
		"ACGHP",
		"SAQGV",
		"TVQNH",
		"ÑRIYA",
	)

	steps := []struct {
		orientation Orientation
		want        []string
	}{
		{
			orientation: Horizontal,
			want:        []string{"ADIOS", "ACGHP", "SAQGV", "TVQNH", "ÑRIYA"},
		},
		{
			orientation: Vertical,
			want:        []string{"ADIOS", "DCGHP", "IAQGV", "OVQNH", "SRIYA"},
		},
		{
			orientation: Diagonal,
			want:        []string{"ADIOS", "DDGHP", "IAIGV", "OVQOH", "SRIYS"},
		},
	}

	for _, step := range steps {
		grid.Write("ADIOS", Placement{Orientation: step.orientation, Row: 0, Col: 0})

		got := grid.Lines()
		for i := range step.want {
			if got[i] != step.want[i] {
				t.Fatalf("after %s write, row %d = %q, want %q", step.orientation, i, got[i], step.want[i])
			}
		}
	}
}

// TestGridWritePanicsOutOfBounds tests that the writer does not re-check bounds.
func TestGridWritePanicsOutOfBounds(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic when writing outside the board")
		}
	}()

	grid := NewGrid(3, 3)
	grid.Write("ABCD", Placement{Orientation: Horizontal, Row: 0, Col: 0})
}

// TestGridRead tests reading letters back along a placement.
func TestGridRead(t *testing.T) {
	t.Parallel()

	grid := holaGrid()

	if got := grid.Read(Placement{Orientation: Horizontal, Row: 3, Col: 0}, 4); got != "HOLA" {
		t.Errorf("expected HOLA, got %q", got)
	}
	if got := grid.Read(Placement{Orientation: Horizontal, Row: 3, Col: 4}, 4); got != "" {
		t.Errorf("expected empty string for out-of-bounds read, got %q", got)
	}
}

// TestGridSlots tests exhaustive slot enumeration.
func TestGridSlots(t *testing.T) {
	t.Parallel()

	t.Run("single free row leaves one slot", func(t *testing.T) {
		t.Parallel()

		grid := gridFromLines(
			"XXX",
			"XXX",
			"...",
		)

		slots := grid.Slots("ABC")
		if len(slots) != 1 {
			t.Fatalf("expected 1 slot, got %d: %+v", len(slots), slots)
		}
		want := Placement{Orientation: Horizontal, Row: 2, Col: 0}
		if slots[0] != want {
			t.Errorf("expected %+v, got %+v", want, slots[0])
		}
	})

	t.Run("empty board counts every anchor", func(t *testing.T) {
		t.Parallel()

		grid := NewGrid(3, 3)

		// Two-letter word: 3x2 horizontal, 2x3 vertical, 2x2 diagonal.
		if got := len(grid.Slots("AB")); got != 6+6+4 {
			t.Errorf("expected 16 slots, got %d", got)
		}
	})

	t.Run("full board has no slot", func(t *testing.T) {
		t.Parallel()

		grid := gridFromLines("XX", "XX")
		if slots := grid.Slots("AB"); len(slots) != 0 {
			t.Errorf("expected no slots, got %+v", slots)
		}
	})
}

// TestGridClone tests that clones do not share rows.
func TestGridClone(t *testing.T) {
	t.Parallel()

	grid := holaGrid()
	clone := grid.Clone()
	clone[0][0] = 'Z'

	if grid[0][0] != Blank {
		t.Error("modifying the clone changed the original grid")
	}
}

// TestGridJSON tests the row-string JSON encoding.
func TestGridJSON(t *testing.T) {
	t.Parallel()

	grid := gridFromLines("AÑB", "CDE")

	data, err := json.Marshal(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `["AÑB","CDE"]` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded Grid
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Cols() != 3 || decoded[0][1] != 'Ñ' {
		t.Errorf("unexpected decoded grid: %v", decoded.Lines())
	}

	var ragged Grid
	if err := json.Unmarshal([]byte(`["AB","C"]`), &ragged); err == nil {
		t.Error("expected error for ragged rows")
	}
}
