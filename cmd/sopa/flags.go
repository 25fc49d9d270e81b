package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/config"
	"github.com/artepepep/Sopa-de-Letras/internal/log"
	"github.com/artepepep/Sopa-de-Letras/internal/words"
)

// stdinPath makes --words-file read from standard input.
const stdinPath = "-"

// addPuzzleFlags registers the board and generator flags shared by
// generate and batch.
func addPuzzleFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("rows", "r", config.DefaultRows,
		"Number of rows on the board")
	cmd.Flags().IntP("cols", "c", config.DefaultCols,
		"Number of columns on the board")
	cmd.Flags().Uint64P("seed", "s", 0,
		"Random seed; 0 picks one from the clock")
	cmd.Flags().StringP("words-file", "w", "",
		"Read words from a file, one per line ('-' for stdin)")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .sopa in current or home directory)")
	cmd.Flags().Int("max-attempts", config.DefaultMaxAttempts,
		"Random placements tried per word before scanning every slot")
	cmd.Flags().Int("max-restarts", config.DefaultMaxRestarts,
		"Times a puzzle is rebuilt when a word cannot be placed")
	cmd.Flags().Bool("no-fallback", false,
		"Disable the exhaustive slot scan after random attempts fail")
}

// addOutputFlags registers the report and history flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("answers", "a", false,
		"Include the answer key in text and Markdown output")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-save", false,
		"Do not store generated puzzles in the history database")
	addDBDirFlag(cmd)
}

// addDBDirFlag registers the history database location flag.
func addDBDirFlag(cmd *cobra.Command) {
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the history database")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the logger for a command; logs go to stderr.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	if jsonLogs, err := cmd.Flags().GetBool("log-json"); err == nil && jsonLogs {
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), verbose)
}

// buildConfig creates a Config from built-in defaults, the config file and
// the command flags, in increasing order of priority. Positional arguments
// and --words-file replace any words from the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Presets, err = loadPresets(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyPreset(cfg.Presets.Defaults)

	if cmd.Flags().Lookup("preset") != nil {
		name, err := cmd.Flags().GetString("preset")
		if err != nil {
			return nil, err
		}
		if name != "" {
			preset, err := cfg.Presets.Preset(name)
			if err != nil {
				return nil, err
			}
			cfg.ApplyPreset(preset)
		}
	}

	if err := applyPuzzleFlags(cmd, cfg); err != nil {
		return nil, err
	}

	input, err := readWordInput(cmd, args)
	if err != nil {
		return nil, err
	}
	if len(input) > 0 {
		cfg.Words = input
	}

	if err := applyOutputFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadPresets loads the config file. A missing file is only an error when
// the user named it explicitly.
func loadPresets(path string) (*config.File, error) {
	found := config.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, path)
		}
		return &config.File{Puzzles: make(map[string]config.Preset)}, nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return file, nil
}

// applyPuzzleFlags copies the board and generator flags the user set
// explicitly, so unset flags never override the config file.
func applyPuzzleFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error
	if flags.Changed("rows") {
		if cfg.Rows, err = flags.GetInt("rows"); err != nil {
			return err
		}
	}
	if flags.Changed("cols") {
		if cfg.Cols, err = flags.GetInt("cols"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return err
		}
	}
	if flags.Changed("max-attempts") {
		if cfg.MaxAttempts, err = flags.GetInt("max-attempts"); err != nil {
			return err
		}
	}
	if flags.Changed("max-restarts") {
		if cfg.MaxRestarts, err = flags.GetInt("max-restarts"); err != nil {
			return err
		}
	}

	noFallback, err := flags.GetBool("no-fallback")
	if err != nil {
		return err
	}
	cfg.Exhaustive = !noFallback

	return nil
}

// applyOutputFlags copies the report and history flags.
func applyOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error
	if cfg.ShowAnswers, err = flags.GetBool("answers"); err != nil {
		return err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return err
	}
	if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
		return err
	}

	noSave, err := flags.GetBool("no-save")
	if err != nil {
		return err
	}
	cfg.SaveToDB = !noSave

	return nil
}

// readWordInput collects words from the arguments and --words-file.
func readWordInput(cmd *cobra.Command, args []string) ([]string, error) {
	input := append([]string(nil), args...)

	path, err := cmd.Flags().GetString("words-file")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return input, nil
	}

	var list []string
	if path == stdinPath {
		list, err = words.ReadList(cmd.InOrStdin())
	} else {
		list, err = words.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	return append(input, list...), nil
}

// normalizeWords normalizes the configured words in place.
func normalizeWords(cfg *config.Config) error {
	normalized, err := words.NormalizeAll(cfg.Words)
	if err != nil {
		return err
	}
	cfg.Words = normalized
	return nil
}

// printSeed tells the user how to reproduce a puzzle.
func printSeed(w io.Writer, seed uint64) {
	fmt.Fprintf(w, "Seed: %d (use --seed %d to generate this puzzle again)\n", seed, seed)
}
