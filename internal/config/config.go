package config

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// Default configuration values.
const (
	// DefaultRows and DefaultCols give a board that comfortably holds ten
	// or so words of classroom length.
	DefaultRows = 12
	DefaultCols = 12

	// DefaultMaxAttempts is the number of random placements tried per word
	// before the exhaustive slot scan takes over.
	DefaultMaxAttempts = soup.DefaultMaxAttempts

	// DefaultMaxRestarts is the number of times a whole puzzle is rebuilt
	// from a blank board after a word could not be placed.
	DefaultMaxRestarts = soup.DefaultMaxRestarts

	// DefaultBatchSize is the number of puzzles generated concurrently.
	DefaultBatchSize = 4

	// DefaultCount is the number of puzzles produced by one invocation.
	DefaultCount = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "sopa"
)

// Config holds all configuration options for sopa.
// It is populated from CLI flags and the preset file and passed down
// explicitly; nothing reads global state.
type Config struct {
	// Words are the words to hide, already normalized by the CLI.
	Words []string

	// Rows and Cols are the board dimensions.
	Rows int
	Cols int

	// Seed drives the generator. Zero picks a time-based seed, which is
	// reported back so the puzzle can be regenerated.
	Seed uint64

	// MaxAttempts is the random placement budget per word.
	MaxAttempts int

	// MaxRestarts is the number of whole-puzzle restarts.
	MaxRestarts int

	// Exhaustive enables the ordered slot scan once random attempts run out.
	Exhaustive bool

	// Verbose enables debug logging.
	Verbose bool

	// BatchSize is the number of puzzles generated concurrently by `sopa batch`.
	BatchSize int

	// Count is the number of puzzles `sopa batch` derives from Words when no
	// presets are used. Seeds are Seed, Seed+1, ...
	Count int

	// ConfigFilePath is the path to the preset file. When empty the file is
	// searched for as described in FindConfigFile.
	ConfigFilePath string

	// Presets holds the presets loaded from the config file, if any.
	Presets *File

	// JSONReport and MarkdownReport select the output format.
	// They are mutually exclusive; neither means the plain text report.
	JSONReport     bool
	MarkdownReport bool

	// ShowAnswers adds the answer key to text and Markdown reports.
	ShowAnswers bool

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// DBDir is the directory of the history database.
	// Defaults to the XDG data directory (~/.local/share/sopa on Linux).
	DBDir string

	// SaveToDB stores generated puzzles in the history database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		MaxAttempts: DefaultMaxAttempts,
		MaxRestarts: DefaultMaxRestarts,
		Exhaustive:  true,
		BatchSize:   DefaultBatchSize,
		Count:       DefaultCount,
		DBDir:       XDGDataDir(),
		SaveToDB:    true,
	}
}

// XDGDataDir returns the XDG data directory for sopa.
// On Linux: ~/.local/share/sopa
// On macOS: ~/Library/Application Support/sopa
// On Windows: %LOCALAPPDATA%\sopa
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for sopa.
// On Linux: ~/.config/sopa
// On macOS: ~/Library/Application Support/sopa
// On Windows: %APPDATA%\sopa
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyPreset copies the fields p sets into the configuration.
func (c *Config) ApplyPreset(p Preset) {
	if len(p.Words) > 0 {
		c.Words = append([]string(nil), p.Words...)
	}
	if p.Rows != 0 {
		c.Rows = p.Rows
	}
	if p.Cols != 0 {
		c.Cols = p.Cols
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.MaxAttempts != nil {
		c.MaxAttempts = *p.MaxAttempts
	}
	if p.MaxRestarts != nil {
		c.MaxRestarts = *p.MaxRestarts
	}
}

// GeneratorOptions returns the soup options described by the configuration.
func (c *Config) GeneratorOptions(logger *slog.Logger) soup.Options {
	return soup.Options{
		Seed:        c.Seed,
		MaxAttempts: c.MaxAttempts,
		MaxRestarts: c.MaxRestarts,
		Exhaustive:  c.Exhaustive,
		Logger:      logger,
	}
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if len(c.Words) == 0 {
		return ErrNoWords
	}

	if c.Rows <= 0 {
		return ErrInvalidRows
	}

	if c.Cols <= 0 {
		return ErrInvalidCols
	}

	if c.MaxAttempts < 0 {
		return ErrInvalidMaxAttempts
	}

	if c.MaxRestarts < 0 {
		return ErrInvalidMaxRestarts
	}

	// Without random attempts the slot scan is the only way to place a word.
	if c.MaxAttempts == 0 && !c.Exhaustive {
		return ErrNoPlacementStrategy
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.Count <= 0 {
		return ErrInvalidCount
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
