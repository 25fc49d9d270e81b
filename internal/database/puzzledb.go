package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// FileName is the name of the SQLite database file inside the data directory.
const FileName = "sopa.db"

// PuzzleDB provides SQLite-based storage for generated puzzles.
type PuzzleDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures PuzzleDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a PuzzleDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*PuzzleDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc creates it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pdb := &PuzzleDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := pdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pdb, nil
}

// Close closes the database connection.
func (pdb *PuzzleDB) Close() error {
	return pdb.db.Close()
}

// Path returns the location of the database file.
func (pdb *PuzzleDB) Path() string {
	return pdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (pdb *PuzzleDB) createTables() error {
	schema := `
	-- Puzzles store complete generated boards as JSON
	CREATE TABLE IF NOT EXISTS puzzles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fingerprint TEXT NOT NULL UNIQUE,
		words TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		col_count INTEGER NOT NULL,
		seed TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		puzzle_json TEXT NOT NULL,
		orientation_summary TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_timestamp ON puzzles(timestamp);
	`

	_, err := pdb.db.ExecContext(context.Background(), schema)
	return err
}

// PuzzleMetadata contains summary information about a stored puzzle.
// It is used for listing history without loading the full board.
type PuzzleMetadata struct {
	// ID is the unique identifier of the puzzle in the database.
	ID int64

	// Fingerprint is the board digest used as the natural key.
	Fingerprint string

	// Words are the hidden words.
	Words []string

	// Rows and Cols are the board dimensions.
	Rows int
	Cols int

	// Seed reproduces the puzzle.
	Seed uint64

	// Timestamp is when the puzzle was last saved.
	Timestamp time.Time

	// Orientations counts answers per orientation name.
	Orientations map[string]int
}

// SavePuzzle stores a puzzle and returns its ID.
// A puzzle whose fingerprint is already stored replaces the old row's data
// and keeps its ID.
func (pdb *PuzzleDB) SavePuzzle(ctx context.Context, puzzle *soup.Puzzle) (int64, error) {
	if puzzle == nil {
		return 0, errors.New("cannot save nil puzzle")
	}

	puzzleJSON, err := json.Marshal(puzzle)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize puzzle: %w", err)
	}

	wordsJSON, err := json.Marshal(puzzle.Words)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize words: %w", err)
	}

	summary := make(map[string]int, len(soup.Orientations))
	for o, n := range puzzle.OrientationCounts() {
		summary[o.String()] = n
	}
	summaryJSON, _ := json.Marshal(summary) //nolint:errcheck,errchkjson // summary is a simple map; Marshal won't fail

	query := `
	INSERT INTO puzzles (fingerprint, words, row_count, col_count, seed, puzzle_json, orientation_summary)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(fingerprint) DO UPDATE SET
		words = excluded.words,
		seed = excluded.seed,
		puzzle_json = excluded.puzzle_json,
		orientation_summary = excluded.orientation_summary,
		timestamp = CURRENT_TIMESTAMP
	`

	_, err = pdb.db.ExecContext(ctx, query,
		puzzle.Fingerprint,
		string(wordsJSON),
		puzzle.Rows,
		puzzle.Cols,
		strconv.FormatUint(puzzle.Seed, 10),
		string(puzzleJSON),
		string(summaryJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save puzzle: %w", err)
	}

	// LastInsertId is not reliable for the update branch of an upsert.
	var id int64
	err = pdb.db.QueryRowContext(ctx, `SELECT id FROM puzzles WHERE fingerprint = ?`, puzzle.Fingerprint).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read puzzle id: %w", err)
	}

	return id, nil
}

// GetPuzzle retrieves a puzzle by its database ID.
// It returns nil and no error when the ID is unknown.
func (pdb *PuzzleDB) GetPuzzle(ctx context.Context, id int64) (*soup.Puzzle, error) {
	return pdb.getPuzzle(ctx, `SELECT puzzle_json FROM puzzles WHERE id = ?`, id)
}

// GetPuzzleByFingerprint retrieves a puzzle by its board fingerprint.
// It returns nil and no error when no puzzle matches.
func (pdb *PuzzleDB) GetPuzzleByFingerprint(ctx context.Context, fingerprint string) (*soup.Puzzle, error) {
	return pdb.getPuzzle(ctx, `SELECT puzzle_json FROM puzzles WHERE fingerprint = ?`, fingerprint)
}

func (pdb *PuzzleDB) getPuzzle(ctx context.Context, query string, arg any) (*soup.Puzzle, error) {
	var puzzleJSON string
	err := pdb.db.QueryRowContext(ctx, query, arg).Scan(&puzzleJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	var puzzle soup.Puzzle
	if err := json.Unmarshal([]byte(puzzleJSON), &puzzle); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle: %w", err)
	}

	return &puzzle, nil
}

// ListPuzzles returns metadata for the most recent puzzles, newest first.
// A limit of zero or less returns every puzzle.
func (pdb *PuzzleDB) ListPuzzles(ctx context.Context, limit int) ([]PuzzleMetadata, error) {
	query := `
	SELECT id, fingerprint, words, row_count, col_count, seed, timestamp, orientation_summary
	FROM puzzles
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as no limit
	}

	rows, err := pdb.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var results []PuzzleMetadata
	for rows.Next() {
		var meta PuzzleMetadata
		var wordsJSON, seed, timestamp string
		var summaryJSON sql.NullString

		if err := rows.Scan(
			&meta.ID,
			&meta.Fingerprint,
			&wordsJSON,
			&meta.Rows,
			&meta.Cols,
			&seed,
			&timestamp,
			&summaryJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)
		meta.Seed, _ = strconv.ParseUint(seed, 10, 64) //nolint:errcheck // written by SavePuzzle with FormatUint

		if err := json.Unmarshal([]byte(wordsJSON), &meta.Words); err != nil {
			return nil, fmt.Errorf("failed to parse words of puzzle %d: %w", meta.ID, err)
		}

		meta.Orientations = make(map[string]int)
		if summaryJSON.Valid && summaryJSON.String != "" {
			if err := json.Unmarshal([]byte(summaryJSON.String), &meta.Orientations); err != nil {
				meta.Orientations = make(map[string]int)
			}
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// DeletePuzzle removes a puzzle by ID and reports whether a row was deleted.
func (pdb *PuzzleDB) DeletePuzzle(ctx context.Context, id int64) (bool, error) {
	result, err := pdb.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete puzzle: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete puzzle: %w", err)
	}

	return n > 0, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp tries each of timestampFormats and returns the zero time
// when none matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
