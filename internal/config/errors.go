package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can match them
// with errors.Is().
var (
	// ErrNoWords is returned when there is nothing to hide in the puzzle.
	// Words come from positional arguments, --words-file, or a preset.
	ErrNoWords = errors.New("no words specified: provide words as arguments, use --words-file or --preset")

	// ErrInvalidRows is returned when the row count is not positive.
	ErrInvalidRows = errors.New("invalid rows: must be positive")

	// ErrInvalidCols is returned when the column count is not positive.
	ErrInvalidCols = errors.New("invalid cols: must be positive")

	// ErrInvalidMaxAttempts is returned when the random attempt budget is negative.
	// Zero is allowed and leaves placement to the exhaustive scan.
	ErrInvalidMaxAttempts = errors.New("invalid max attempts: must be non-negative")

	// ErrInvalidMaxRestarts is returned when the restart budget is negative.
	ErrInvalidMaxRestarts = errors.New("invalid max restarts: must be non-negative")

	// ErrNoPlacementStrategy is returned when random attempts are zero and the
	// exhaustive scan is disabled, so no word could ever be placed.
	ErrNoPlacementStrategy = errors.New("no placement strategy: --max-attempts 0 requires the exhaustive fallback")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidCount is returned when the number of puzzles to generate is not positive.
	ErrInvalidCount = errors.New("invalid count: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrPresetNotFound is returned when a named preset is missing from the config file.
	ErrPresetNotFound = errors.New("preset not found")
)
