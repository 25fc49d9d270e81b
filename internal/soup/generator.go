package soup

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
	"unicode/utf8"
)

// Default generation limits.
const (
	// DefaultMaxAttempts is the number of random placements tried per word
	// before falling back to an exhaustive scan.
	DefaultMaxAttempts = 1000

	// DefaultMaxRestarts is the number of times a puzzle is rebuilt from a
	// blank board after a word could not be placed.
	DefaultMaxRestarts = 3
)

// Options configures a Generator.
type Options struct {
	// Seed initializes the random source. Zero picks a time-based seed,
	// which Generator.Seed reports afterwards.
	Seed uint64

	// MaxAttempts bounds random sampling per word. Zero or negative skips
	// random sampling and goes straight to the exhaustive scan, which is then
	// enabled regardless of Exhaustive.
	MaxAttempts int

	// MaxRestarts is how many times the whole puzzle is retried when a word
	// has no slot left. Negative values are treated as zero.
	MaxRestarts int

	// Exhaustive enables the scan of every valid slot once MaxAttempts
	// random placements have failed. The zero Options scans every slot.
	Exhaustive bool

	// Logger receives restart and fallback events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns Options with the default limits, a time-based
// seed and the exhaustive fallback enabled.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		MaxRestarts: DefaultMaxRestarts,
		Exhaustive:  true,
	}
}

// Generator builds puzzles from a private random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	seed   uint64
	opts   Options
	logger *slog.Logger
}

// NewGenerator creates a Generator from opts.
func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if opts.MaxRestarts < 0 {
		opts.MaxRestarts = 0
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 0
		opts.Exhaustive = true
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		rng:    NewRand(seed),
		seed:   seed,
		opts:   opts,
		logger: logger,
	}
}

// NewRand returns a PCG-backed random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// ValidateLengths checks that every word fits a rows×cols board.
//
// A word fits when its length in letters is at most rows and at most cols,
// so it can be written in any orientation. The first offending word is
// reported as a *FitError.
func ValidateLengths(words []string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n == 0 {
			return ErrEmptyWord
		}
		if n > rows || n > cols {
			return &FitError{Word: word, Rows: rows, Cols: cols}
		}
	}
	return nil
}

// SamplePlacement picks a uniformly random orientation and then a uniformly
// random anchor from which word stays inside a rows×cols board. It does not
// look at the letters already on the board.
//
// The word must fit the board (see ValidateLengths); otherwise it panics.
func (g *Generator) SamplePlacement(word string, rows, cols int) Placement {
	return g.samplePlacement(utf8.RuneCountInString(word), rows, cols)
}

func (g *Generator) samplePlacement(n, rows, cols int) Placement {
	o := Orientations[g.rng.IntN(len(Orientations))]
	dRow, dCol := o.Step()

	// Anchor ranges shrink along the axes the word advances on.
	maxRow := rows - 1 - (n-1)*dRow
	maxCol := cols - 1 - (n-1)*dCol

	return Placement{
		Orientation: o,
		Row:         g.rng.IntN(maxRow + 1),
		Col:         g.rng.IntN(maxCol + 1),
	}
}

// Insert writes word into grid at a random conflict-free placement and
// returns that placement.
//
// Up to MaxAttempts random placements are tried. If all of them conflict and
// Exhaustive is set, one of the remaining valid slots is picked at random.
// When no slot exists a *PlacementError is returned and grid is unchanged.
// A word that does not fit the board is rejected as in ValidateLengths.
func (g *Generator) Insert(grid Grid, word string) (Placement, error) {
	letters := []rune(word)
	rows, cols := grid.Rows(), grid.Cols()
	if err := ValidateLengths([]string{word}, rows, cols); err != nil {
		return Placement{}, err
	}

	for range g.opts.MaxAttempts {
		p := g.samplePlacement(len(letters), rows, cols)
		if grid.canPlace(letters, p) {
			grid.write(letters, p)
			return p, nil
		}
	}

	attempts := max(g.opts.MaxAttempts, 0)
	if g.opts.Exhaustive {
		slots := grid.slots(letters)
		g.logger.Debug("random placement exhausted, scanning slots",
			"word", word,
			"attempts", attempts,
			"slots", len(slots),
		)
		if len(slots) > 0 {
			p := slots[g.rng.IntN(len(slots))]
			grid.write(letters, p)
			return p, nil
		}
	}

	return Placement{}, &PlacementError{Word: word, Attempts: attempts}
}

// Fill replaces every Blank cell with a letter drawn uniformly from Alphabet.
// Cells that already hold a letter are left untouched.
func (g *Generator) Fill(grid Grid) {
	for _, row := range grid {
		for c, cell := range row {
			if cell == Blank {
				row[c] = alphabetRunes[g.rng.IntN(len(alphabetRunes))]
			}
		}
	}
}

// Generate builds a rows×cols puzzle containing every word.
//
// Words are validated before anything is written and inserted in input
// order, so earlier words constrain later ones. If a word cannot be placed
// the puzzle is rebuilt from a blank board up to MaxRestarts times. The
// context is checked between words.
func (g *Generator) Generate(ctx context.Context, words []string, rows, cols int) (*Puzzle, error) {
	if err := ValidateLengths(words, rows, cols); err != nil {
		return nil, err
	}
	for _, word := range words {
		if err := validateLetters(word); err != nil {
			return nil, err
		}
	}

	var lastErr error
	for restart := 0; restart <= g.opts.MaxRestarts; restart++ {
		if restart > 0 {
			g.logger.Info("restarting puzzle",
				"restart", restart,
				"maxRestarts", g.opts.MaxRestarts,
				"reason", lastErr,
			)
		}

		grid := NewGrid(rows, cols)
		answers, err := g.placeAll(ctx, grid, words)
		if err == nil {
			g.Fill(grid)
			return newPuzzle(words, grid, answers, g.seed), nil
		}

		var placementErr *PlacementError
		if !errors.As(err, &placementErr) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// placeAll inserts words one by one and collects the answer key.
func (g *Generator) placeAll(ctx context.Context, grid Grid, words []string) ([]PlacedWord, error) {
	answers := make([]PlacedWord, 0, len(words))
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := g.Insert(grid, word)
		if err != nil {
			return nil, err
		}
		answers = append(answers, PlacedWord{Word: word, Placement: p})
	}
	return answers, nil
}

// GeneratePuzzle is the one-call entry point: it builds a puzzle with the
// default limits and returns just the filled grid. A zero seed picks a
// time-based one.
func GeneratePuzzle(words []string, rows, cols int, seed uint64) (Grid, error) {
	opts := DefaultOptions()
	opts.Seed = seed

	puzzle, err := NewGenerator(opts).Generate(context.Background(), words, rows, cols)
	if err != nil {
		return nil, err
	}
	return puzzle.Grid, nil
}
