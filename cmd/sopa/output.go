package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/config"
	"github.com/artepepep/Sopa-de-Letras/internal/database"
	"github.com/artepepep/Sopa-de-Letras/internal/report"
	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// openOutput returns the report destination: the --output file, or the
// command's stdout. The returned close function is always safe to call.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newReportWriter picks the writer for the configured format.
// When the report goes to a file, the plain text puzzle is also shown on
// stdout unless the format already is plain text.
func newReportWriter(cmd *cobra.Command, cfg *config.Config, output io.Writer, jsonLines bool) report.Writer {
	var writer report.Writer
	switch {
	case cfg.JSONReport && jsonLines:
		writer = report.NewJSONWriter(output)
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output, report.WithMarkdownAnswers(cfg.ShowAnswers))
	default:
		writer = report.NewSimpleWriter(output, report.WithAnswers(cfg.ShowAnswers))
	}

	if cfg.ReportFile != "" && (cfg.JSONReport || cfg.MarkdownReport) {
		return report.NewMultiWriter(writer, report.NewSimpleWriter(cmd.OutOrStdout()))
	}
	return writer
}

// openHistory opens the history database when saving is enabled.
// It returns nil when puzzles should not be saved.
func openHistory(cfg *config.Config, logger *slog.Logger) (*database.PuzzleDB, error) {
	if !cfg.SaveToDB {
		return nil, nil
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())
	return db, nil
}

// savePuzzle stores the puzzle in the history database.
// If db is nil, this function is a no-op.
func savePuzzle(ctx context.Context, db *database.PuzzleDB, puzzle *soup.Puzzle, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	id, err := db.SavePuzzle(ctx, puzzle)
	if err != nil {
		return fmt.Errorf("failed to save puzzle: %w", err)
	}

	logger.Info("puzzle saved to history", "id", id, "fingerprint", puzzle.Fingerprint)
	return nil
}
