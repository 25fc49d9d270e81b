package database

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *PuzzleDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// newTestPuzzle generates a small deterministic puzzle.
func newTestPuzzle(t *testing.T, seed uint64, words ...string) *soup.Puzzle {
	t.Helper()

	if len(words) == 0 {
		words = []string{"HOLA", "ADIOS", "NIÑO"}
	}

	opts := soup.DefaultOptions()
	opts.Seed = seed
	puzzle, err := soup.NewGenerator(opts).Generate(context.Background(), words, 8, 8)
	if err != nil {
		t.Fatalf("failed to generate puzzle: %v", err)
	}
	return puzzle
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		dbPath := filepath.Join(dbDir, FileName)
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
		if db.Path() != dbPath {
			t.Errorf("expected path %q, got %q", dbPath, db.Path())
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		db, err := Open(filepath.Join(t.TempDir(), "missing"), opts)
		if err == nil {
			_ = db.Close()
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("CreateIfNotExists=false opens existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		_ = db.Close()

		db, err = Open(dir, Options{CreateIfNotExists: false})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		_ = db.Close()
	})
}

// TestSaveAndGetPuzzle tests the puzzle round trip.
func TestSaveAndGetPuzzle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	puzzle := newTestPuzzle(t, 42)

	id, err := db.SavePuzzle(ctx, puzzle)
	if err != nil {
		t.Fatalf("failed to save puzzle: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		got, err := db.GetPuzzle(ctx, id)
		if err != nil {
			t.Fatalf("failed to get puzzle: %v", err)
		}
		if got == nil {
			t.Fatal("expected puzzle, got nil")
		}
		if got.Grid.String() != puzzle.Grid.String() {
			t.Errorf("grid mismatch:\n%s\nvs\n%s", got.Grid, puzzle.Grid)
		}
		if !slices.Equal(got.Words, puzzle.Words) {
			t.Errorf("expected words %v, got %v", puzzle.Words, got.Words)
		}
		if got.Seed != 42 {
			t.Errorf("expected seed 42, got %d", got.Seed)
		}
		if !slices.Equal(got.Answers, puzzle.Answers) {
			t.Errorf("expected answers %v, got %v", puzzle.Answers, got.Answers)
		}
	})

	t.Run("by fingerprint", func(t *testing.T) {
		t.Parallel()

		got, err := db.GetPuzzleByFingerprint(ctx, puzzle.Fingerprint)
		if err != nil {
			t.Fatalf("failed to get puzzle: %v", err)
		}
		if got == nil || got.Fingerprint != puzzle.Fingerprint {
			t.Errorf("expected fingerprint %s, got %+v", puzzle.Fingerprint, got)
		}
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		t.Parallel()

		got, err := db.GetPuzzle(ctx, id+1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil puzzle, got %+v", got)
		}
	})

	t.Run("unknown fingerprint returns nil", func(t *testing.T) {
		t.Parallel()

		got, err := db.GetPuzzleByFingerprint(ctx, "deadbeef")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil puzzle, got %+v", got)
		}
	})
}

// TestSavePuzzleUpsert tests that the same board is stored once.
func TestSavePuzzleUpsert(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.SavePuzzle(ctx, newTestPuzzle(t, 7))
	if err != nil {
		t.Fatalf("failed to save puzzle: %v", err)
	}
	second, err := db.SavePuzzle(ctx, newTestPuzzle(t, 7))
	if err != nil {
		t.Fatalf("failed to save puzzle again: %v", err)
	}
	if first != second {
		t.Errorf("expected same id for identical board, got %d and %d", first, second)
	}

	list, err := db.ListPuzzles(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list puzzles: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 stored puzzle, got %d", len(list))
	}
}

// TestSavePuzzleNil tests that a nil puzzle is rejected.
func TestSavePuzzleNil(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	if _, err := db.SavePuzzle(context.Background(), nil); err == nil {
		t.Error("expected error for nil puzzle")
	}
}

// TestSavePuzzleLargeSeed tests seeds above the int64 range.
func TestSavePuzzleLargeSeed(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	const seed = uint64(1<<63 + 12345)
	if _, err := db.SavePuzzle(ctx, newTestPuzzle(t, seed)); err != nil {
		t.Fatalf("failed to save puzzle: %v", err)
	}

	list, err := db.ListPuzzles(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list puzzles: %v", err)
	}
	if len(list) != 1 || list[0].Seed != seed {
		t.Errorf("expected seed %d, got %+v", seed, list)
	}
}

// TestListPuzzles tests listing order, limits and metadata.
func TestListPuzzles(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	var ids []int64
	for seed := uint64(1); seed <= 3; seed++ {
		id, err := db.SavePuzzle(ctx, newTestPuzzle(t, seed, "SOL", "LUNA"))
		if err != nil {
			t.Fatalf("failed to save puzzle: %v", err)
		}
		ids = append(ids, id)
	}

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		list, err := db.ListPuzzles(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list puzzles: %v", err)
		}
		if len(list) != len(ids) {
			t.Fatalf("expected %d puzzles, got %d", len(ids), len(list))
		}
		if list[0].ID != ids[len(ids)-1] {
			t.Errorf("expected newest id %d first, got %d", ids[len(ids)-1], list[0].ID)
		}
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		list, err := db.ListPuzzles(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list puzzles: %v", err)
		}
		if len(list) != 2 {
			t.Errorf("expected 2 puzzles, got %d", len(list))
		}
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()

		list, err := db.ListPuzzles(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list puzzles: %v", err)
		}
		meta := list[0]
		if !slices.Equal(meta.Words, []string{"SOL", "LUNA"}) {
			t.Errorf("unexpected words: %v", meta.Words)
		}
		if meta.Rows != 8 || meta.Cols != 8 {
			t.Errorf("expected 8x8, got %dx%d", meta.Rows, meta.Cols)
		}
		if meta.Timestamp.IsZero() {
			t.Error("expected timestamp to be parsed")
		}
		total := 0
		for _, n := range meta.Orientations {
			total += n
		}
		if total != 2 {
			t.Errorf("expected 2 orientations counted, got %v", meta.Orientations)
		}
	})
}

// TestDeletePuzzle tests removal by id.
func TestDeletePuzzle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	id, err := db.SavePuzzle(ctx, newTestPuzzle(t, 9))
	if err != nil {
		t.Fatalf("failed to save puzzle: %v", err)
	}

	deleted, err := db.DeletePuzzle(ctx, id)
	if err != nil {
		t.Fatalf("failed to delete puzzle: %v", err)
	}
	if !deleted {
		t.Error("expected puzzle to be deleted")
	}

	got, err := db.GetPuzzle(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected deleted puzzle to be gone")
	}

	deleted, err = db.DeletePuzzle(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report nothing deleted")
	}
}

// TestParseTimestamp tests timestamp parsing with various formats.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "SQLite default format", input: "2024-01-15 10:30:00"},
		{name: "ISO 8601 with Z", input: "2024-01-15T10:30:00Z"},
		{name: "ISO 8601 without timezone", input: "2024-01-15T10:30:00"},
		{name: "RFC3339", input: "2024-01-15T10:30:00+00:00"},
		{name: "invalid format", input: "not-a-date", zero: true},
		{name: "empty string", input: "", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if tt.zero {
				if !got.IsZero() {
					t.Errorf("expected zero time, got %v", got)
				}
				return
			}
			if !got.Equal(want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}
