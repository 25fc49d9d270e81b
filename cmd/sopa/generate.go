package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [word...]",
		Short: "Generate a word-search puzzle",
		Long: `Generate hides the given words in a board of random letters.

Words are normalized before use: accents are removed and letters are
uppercased, but Ñ is kept (canción -> CANCION, niño -> NIÑO). Every word must
fit the board, so it can be at most as long as the number of rows and the
number of columns.

The seed is printed on stderr; pass it back with --seed to get the same board.

Examples:
  # Hide three words in the default 12x12 board
  sopa generate hola adios luego

  # Smaller board with a fixed seed and the answer key
  sopa generate -r 6 -c 8 -s 42 -a sol luna mar

  # Read the words from a file
  sopa generate -w palabras.txt

  # Use a preset from the .sopa file and write Markdown to a file
  sopa generate -p animales -m -o animales.md

  # JSON output
  sopa generate --json hola adios`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerateCmd,
	}

	addPuzzleFlags(cmd)
	cmd.Flags().StringP("preset", "p", "",
		"Use the named preset from the configuration file")
	addOutputFlags(cmd)

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := normalizeWords(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("generating puzzle",
		"words", cfg.Words,
		"rows", cfg.Rows,
		"cols", cfg.Cols,
	)

	generator := soup.NewGenerator(cfg.GeneratorOptions(logger))
	puzzle, err := generator.Generate(ctx, cfg.Words, cfg.Rows, cfg.Cols)
	if err != nil {
		return fmt.Errorf("failed to generate puzzle: %w", err)
	}

	db, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	if err := savePuzzle(ctx, db, puzzle, logger); err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Close error after a successful write is not actionable

	if _, err := newReportWriter(cmd, cfg, output, false).Write(puzzle); err != nil {
		return fmt.Errorf("failed to write puzzle: %w", err)
	}

	printSeed(cmd.ErrOrStderr(), puzzle.Seed)
	return nil
}
