package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/batch"
	"github.com/artepepep/Sopa-de-Letras/internal/config"
)

// errNoBatchJobs is returned when batch has neither words nor presets.
var errNoBatchJobs = errors.New("no words given and no presets found in the configuration file")

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [word...]",
		Short: "Generate several puzzles concurrently",
		Long: `Batch generates many puzzles at once.

With words (arguments or --words-file) it generates --count puzzles from the
same words, using the seeds S, S+1, S+2, ... where S is --seed or a
clock-based value.

Without words it generates one puzzle for every preset in the configuration
file, in preset name order. Board and generator flags still override every
preset.

JSON output is written as JSON Lines, one puzzle per line.

Examples:
  # Ten different boards with the same words
  sopa batch -n 10 sol luna mar estrella

  # Every preset of ./.sopa, eight at a time
  sopa batch -b 8

  # Presets as JSON Lines into a file
  sopa batch --config classroom.yaml --json -o puzzles.jsonl`,
		Args: cobra.ArbitraryArgs,
		RunE: runBatchCmd,
	}

	addPuzzleFlags(cmd)
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of puzzles generated concurrently")
	cmd.Flags().IntP("count", "n", config.DefaultCount,
		"Number of puzzles to generate from the given words")
	addOutputFlags(cmd)

	return cmd
}

// runBatchCmd executes the batch command.
func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return err
	}
	if cfg.Count, err = cmd.Flags().GetInt("count"); err != nil {
		return err
	}

	logger := setupLogger(cmd)

	var jobs []batch.Job
	if len(args) > 0 || cmd.Flags().Changed("words-file") {
		jobs, err = wordJobs(cfg)
	} else {
		jobs, err = presetJobs(cmd, cfg)
	}
	if err != nil {
		return err
	}
	for i := range jobs {
		jobs[i].Options.Logger = logger
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	processor := batch.NewProcessor(
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithLogger(logger),
	)
	results, err := processor.Process(ctx, jobs)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	db, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Close error after a successful write is not actionable

	writer := newReportWriter(cmd, cfg, output, true)
	stderr := cmd.ErrOrStderr()
	failed := 0
	written := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", result.Job.Name, result.Err)
			continue
		}

		if err := savePuzzle(ctx, db, result.Puzzle, logger); err != nil {
			return err
		}

		if written > 0 && !cfg.JSONReport {
			fmt.Fprintln(output)
		}
		if _, err := writer.Write(result.Puzzle); err != nil {
			return fmt.Errorf("failed to write puzzle %s: %w", result.Job.Name, err)
		}
		written++

		fmt.Fprintf(stderr, "%s: seed %d\n", result.Job.Name, result.Puzzle.Seed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}

// wordJobs derives cfg.Count jobs from the configured words with
// consecutive seeds.
func wordJobs(cfg *config.Config) ([]batch.Job, error) {
	if err := normalizeWords(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	base := baseSeed(cfg.Seed)

	jobs := make([]batch.Job, 0, cfg.Count)
	for i := range cfg.Count {
		opts := cfg.GeneratorOptions(nil)
		opts.Seed = base + uint64(i)
		jobs = append(jobs, batch.Job{
			Name:    fmt.Sprintf("puzzle-%d", i+1),
			Words:   cfg.Words,
			Rows:    cfg.Rows,
			Cols:    cfg.Cols,
			Options: opts,
		})
	}
	return jobs, nil
}

// presetJobs builds one job per preset in the configuration file. Presets
// are layered over the file defaults, then the explicit flags are applied
// again so they win over every preset. Presets without a seed get
// consecutive seeds from one clock-based value, in name order.
func presetJobs(cmd *cobra.Command, base *config.Config) ([]batch.Job, error) {
	names := base.Presets.Names()
	if len(names) == 0 {
		return nil, errNoBatchJobs
	}

	clockSeed := baseSeed(0)
	jobs := make([]batch.Job, 0, len(names))
	for i, name := range names {
		preset, err := base.Presets.Preset(name)
		if err != nil {
			return nil, err
		}

		cfg := *base
		cfg.ApplyPreset(preset)
		if err := applyPuzzleFlags(cmd, &cfg); err != nil {
			return nil, err
		}
		if err := normalizeWords(&cfg); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: configuration error: %w", name, err)
		}

		opts := cfg.GeneratorOptions(nil)
		if opts.Seed == 0 {
			opts.Seed = clockSeed + uint64(i)
		}
		jobs = append(jobs, batch.Job{
			Name:    name,
			Words:   cfg.Words,
			Rows:    cfg.Rows,
			Cols:    cfg.Cols,
			Options: opts,
		})
	}
	return jobs, nil
}

// baseSeed returns seed, or a clock-based seed when it is zero.
func baseSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}
