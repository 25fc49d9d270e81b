package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/config"
	"github.com/artepepep/Sopa-de-Letras/internal/database"
)

// defaultHistoryLimit is the number of puzzles listed by default.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, show or delete saved puzzles",
		Long: `History works with the puzzles saved by generate and batch.

Without flags it lists the most recent puzzles. Use --show to print a saved
puzzle again in any output format, and --delete to remove one.

Examples:
  # Last 20 puzzles
  sopa history

  # Print puzzle 3 with its answer key
  sopa history --show 3 -a

  # Export puzzle 3 as Markdown
  sopa history --show 3 -m > sopa.md

  # Remove puzzle 3
  sopa history --delete 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", defaultHistoryLimit,
		"Maximum number of puzzles to list (0 lists all)")
	cmd.Flags().Int64("show", 0, "Print the puzzle with this ID")
	cmd.Flags().Int64("delete", 0, "Delete the puzzle with this ID")
	cmd.Flags().BoolP("json", "j", false,
		"Print the puzzle as JSON (with --show)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the puzzle as Markdown (with --show)")
	cmd.Flags().BoolP("answers", "a", false,
		"Include the answer key (with --show)")
	addDBDirFlag(cmd)

	cmd.MarkFlagsMutuallyExclusive("show", "delete")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	dbDir, err := flags.GetString("db-dir")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(filepath.Join(dbDir, database.FileName)); os.IsNotExist(err) {
		fmt.Fprintln(out, "No puzzles saved yet.")
		return nil
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if flags.Changed("show") {
		id, err := flags.GetInt64("show")
		if err != nil {
			return err
		}
		return showPuzzle(ctx, cmd, db, id)
	}

	if flags.Changed("delete") {
		id, err := flags.GetInt64("delete")
		if err != nil {
			return err
		}
		deleted, err := db.DeletePuzzle(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("puzzle %d not found", id)
		}
		fmt.Fprintf(out, "Deleted puzzle %d\n", id)
		return nil
	}

	limit, err := flags.GetInt("limit")
	if err != nil {
		return err
	}
	return listPuzzles(ctx, cmd, db, limit)
}

// showPuzzle prints a stored puzzle with the regular report writers.
func showPuzzle(ctx context.Context, cmd *cobra.Command, db *database.PuzzleDB, id int64) error {
	puzzle, err := db.GetPuzzle(ctx, id)
	if err != nil {
		return err
	}
	if puzzle == nil {
		return fmt.Errorf("puzzle %d not found", id)
	}

	cfg := config.NewConfig()
	flags := cmd.Flags()
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ShowAnswers, err = flags.GetBool("answers"); err != nil {
		return err
	}

	_, err = newReportWriter(cmd, cfg, cmd.OutOrStdout(), false).Write(puzzle)
	return err
}

// listPuzzles prints one line per stored puzzle, newest first.
func listPuzzles(ctx context.Context, cmd *cobra.Command, db *database.PuzzleDB, limit int) error {
	list, err := db.ListPuzzles(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No puzzles saved yet.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-19s  %-7s  %-20s  %s\n", "ID", "SAVED", "SIZE", "SEED", "WORDS")
	for _, meta := range list {
		saved := "-"
		if !meta.Timestamp.IsZero() {
			saved = meta.Timestamp.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(out, "%-5d  %-19s  %-7s  %-20d  %s\n",
			meta.ID,
			saved,
			fmt.Sprintf("%dx%d", meta.Rows, meta.Cols),
			meta.Seed,
			strings.Join(meta.Words, ", "),
		)
	}
	return nil
}
