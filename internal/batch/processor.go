package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/artepepep/Sopa-de-Letras/internal/soup"
)

// DefaultConcurrency is the number of puzzles generated at the same time
// when WithConcurrency is not used.
const DefaultConcurrency = 4

// Generator builds one puzzle. *soup.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, words []string, rows, cols int) (*soup.Puzzle, error)
}

// GeneratorFactory returns a fresh generator for a job.
type GeneratorFactory func(job Job) Generator

// Job describes one puzzle to generate.
type Job struct {
	// Name identifies the job in logs and output, e.g. a preset name.
	Name string

	// Words, Rows and Cols are passed to the generator unchanged.
	Words []string
	Rows  int
	Cols  int

	// Options configures the job's generator, including its seed.
	Options soup.Options
}

// Result is the outcome of one job.
type Result struct {
	// Index is the position of the job in the submitted slice.
	Index int

	// Job is the job that produced this result.
	Job Job

	// Puzzle is nil when Err is set.
	Puzzle *soup.Puzzle

	// Err records why the job failed.
	Err error

	// Elapsed is the time spent generating.
	Elapsed time.Duration
}

// Processor runs jobs with bounded concurrency.
type Processor struct {
	// factory creates a new generator for each job.
	factory GeneratorFactory

	// concurrency is the maximum number of jobs running at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithGeneratorFactory replaces the default factory, which builds a
// soup.Generator from Job.Options.
func WithGeneratorFactory(factory GeneratorFactory) Option {
	return func(p *Processor) {
		if factory != nil {
			p.factory = factory
		}
	}
}

// NewProcessor creates a new Processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		factory:     defaultFactory,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	return p
}

func defaultFactory(job Job) Generator {
	return soup.NewGenerator(job.Options)
}

// Process runs every job and returns one Result per job, in job order.
// Job failures are recorded in Result.Err. The returned error is non-nil
// only when ctx is canceled; jobs that never started then carry ctx.Err().
func (p *Processor) Process(ctx context.Context, jobs []Job) ([]Result, error) {
	p.logger.Info("starting batch",
		"total_jobs", len(jobs),
		"concurrency", p.concurrency,
	)
	start := time.Now()

	results := make([]Result, len(jobs))
	err := p.run(ctx, jobs, func(r Result) {
		// Each goroutine owns its own index.
		results[r.Index] = r
	})

	p.logger.Info("batch complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(start),
	)

	return results, err
}

// ProcessWithCallback runs every job and calls callback as each one
// finishes. The callback is invoked from worker goroutines and must be safe
// for concurrent use.
func (p *Processor) ProcessWithCallback(ctx context.Context, jobs []Job, callback func(Result)) error {
	return p.run(ctx, jobs, callback)
}

func (p *Processor) run(ctx context.Context, jobs []Job, done func(Result)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				done(Result{Index: i, Job: job, Err: gctx.Err()})
				return gctx.Err()
			default:
			}

			done(p.generate(gctx, i, job))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Jobs that were already running swallow a cancellation into Result.Err.
	return ctx.Err()
}

// generate runs a single job.
func (p *Processor) generate(ctx context.Context, index int, job Job) Result {
	p.logger.Debug("generating puzzle",
		"job", job.Name,
		"index", index+1,
	)

	start := time.Now()
	puzzle, err := p.factory(job).Generate(ctx, job.Words, job.Rows, job.Cols)
	result := Result{
		Index:   index,
		Job:     job,
		Puzzle:  puzzle,
		Err:     err,
		Elapsed: time.Since(start),
	}

	if err != nil {
		p.logger.Warn("puzzle generation failed",
			"job", job.Name,
			"error", err,
		)
		return result
	}

	p.logger.Debug("puzzle generated",
		"job", job.Name,
		"seed", puzzle.Seed,
		"elapsed", result.Elapsed,
	)

	return result
}
