package soup

import (
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/sha3"
)

// Puzzle is a finished word search together with its answer key.
type Puzzle struct {
	// Words are the target words in the order they were inserted.
	Words []string `json:"words"`

	// Rows and Cols are the board dimensions.
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Seed is the random seed that reproduces this puzzle.
	Seed uint64 `json:"seed"`

	// Grid is the filled board.
	Grid Grid `json:"grid"`

	// Answers records where each word was written, in Words order.
	Answers []PlacedWord `json:"answers"`

	// Fingerprint is the hex SHA3-256 digest of the board.
	Fingerprint string `json:"fingerprint"`

	// CreatedAt is when the puzzle was generated.
	CreatedAt time.Time `json:"created_at"`
}

// newPuzzle assembles a Puzzle and computes its fingerprint.
func newPuzzle(words []string, grid Grid, answers []PlacedWord, seed uint64) *Puzzle {
	return &Puzzle{
		Words:       append([]string(nil), words...),
		Rows:        grid.Rows(),
		Cols:        grid.Cols(),
		Seed:        seed,
		Grid:        grid,
		Answers:     answers,
		Fingerprint: Fingerprint(grid),
		CreatedAt:   time.Now(),
	}
}

// Fingerprint returns the hex SHA3-256 digest of the grid's dimensions and
// letters. Identical boards always share a fingerprint.
func Fingerprint(g Grid) string {
	data := []byte(strconv.Itoa(g.Rows()) + "x" + strconv.Itoa(g.Cols()) + "\n" + g.String())
	hash := sha3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// OrientationCounts returns how many answers use each orientation.
func (p *Puzzle) OrientationCounts() map[Orientation]int {
	counts := make(map[Orientation]int, len(Orientations))
	for _, answer := range p.Answers {
		counts[answer.Orientation]++
	}
	return counts
}
