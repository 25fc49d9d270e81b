// Package soup generates word-search puzzles ("sopas de letras").
//
// A puzzle is a rectangular grid of letters in which every target word is
// written along a straight line: left to right (Horizontal), top to bottom
// (Vertical) or top-left to bottom-right (Diagonal). Cells not used by any
// word are filled with random letters from Alphabet.
//
// # Algorithm
//
// Generation runs in fixed stages:
//
//  1. ValidateLengths rejects words that cannot fit the board.
//  2. NewGrid allocates a blank board.
//  3. Each word, in input order, is inserted by sampling a random
//     orientation and anchor (Generator.SamplePlacement) until Grid.CanPlace
//     accepts it, then written with Grid.Write.
//  4. Generator.Fill replaces the remaining blanks with random letters.
//
// Random sampling is bounded by Options.MaxAttempts per word. Once the budget
// is spent the generator scans every valid slot (Options.Exhaustive) and, if
// the word still has nowhere to go, restarts the whole puzzle up to
// Options.MaxRestarts times before returning a *PlacementError.
//
// # Determinism
//
// A Generator owns its random source. Two generators built with the same
// Options.Seed produce identical puzzles for identical inputs.
//
// # Usage
//
//	gen := soup.NewGenerator(soup.DefaultOptions())
//	puzzle, err := gen.Generate(ctx, []string{"HOLA", "ADIOS"}, 8, 8)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(puzzle.Grid)
package soup
