package batch

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gender-swap/internal/diagnostic"
	"gender-swap/internal/sheet"
)

// Options controls a Runner.
type Options struct {
	InputDir  string
	OutputDir string
	// ProcessFileNames also genders the file names of written sheets.
	ProcessFileNames bool
	// Workers bounds the number of sheets processed at once; below 1 means 1.
	Workers int
	// DryRun transforms sheets and collects diagnostics without writing.
	DryRun bool
}

// Result describes what happened to one input sheet.
type Result struct {
	Source string
	// Name is the output base name, gendered when ProcessFileNames is set.
	Name string
	// Output is the written path; empty for skipped sheets and dry runs.
	Output      string
	Skipped     bool
	Reason      string
	Diagnostics *diagnostic.Diagnostics
}

// Report summarizes one run.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Elapsed time.Duration
	// Results are sorted by source path.
	Results     []Result
	Diagnostics *diagnostic.Diagnostics
}

// Processed returns the number of sheets that were transformed.
func (r *Report) Processed() int {
	n := 0

	for _, res := range r.Results {
		if !res.Skipped {
			n++
		}
	}

	return n
}

// Skipped returns the number of sheets that were left alone.
func (r *Report) Skipped() int {
	return len(r.Results) - r.Processed()
}

// Runner applies one Transformer to sheets on disk.
type Runner struct {
	transformer *sheet.Transformer
	opts        Options
	logger      *zap.Logger
}

// NewRunner returns a Runner, or ErrNoDefinitions when t knows no characters.
// A nil logger discards log output.
func NewRunner(t *sheet.Transformer, opts Options, logger *zap.Logger) (*Runner, error) {
	if t == nil || len(t.Assignment) == 0 {
		return nil, ErrNoDefinitions
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	opts.Workers = max(opts.Workers, 1)

	return &Runner{transformer: t, opts: opts, logger: logger}, nil
}

type job struct {
	source string
	name   string
	result Result
}

// Run processes the accepted sheets directly inside the input directory.
// Only sheets whose name starts with a defined character number are
// transformed; the others are reported as skipped.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.opts.InputDir == "" {
		return nil, ErrNoInput
	}

	if !r.opts.DryRun {
		if err := CheckDirectories(r.opts.InputDir, r.opts.OutputDir); err != nil {
			return nil, err
		}
	}

	paths, err := Discover(r.opts.InputDir, r.transformer.Accepts)
	if err != nil {
		return nil, err
	}

	return r.run(ctx, paths, true)
}

// RunFiles processes an explicit list of sheets. Directories in paths are
// replaced by the accepted sheets directly inside them.
func (r *Runner) RunFiles(ctx context.Context, paths []string) (*Report, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	expanded, err := Expand(paths, r.transformer.Accepts)
	if err != nil {
		return nil, err
	}

	if !r.opts.DryRun {
		if err := CheckOutput(r.opts.OutputDir, expanded); err != nil {
			return nil, err
		}
	}

	return r.run(ctx, expanded, false)
}

func (r *Runner) run(ctx context.Context, paths []string, requireNumber bool) (*Report, error) {
	report := &Report{
		RunID:       uuid.New(),
		Started:     time.Now(),
		Diagnostics: diagnostic.New(nil),
	}

	logger := r.logger.With(zap.Stringer("run_id", report.RunID))
	logger.Info("starting run",
		zap.Int("sheets", len(paths)),
		zap.String("output_dir", r.opts.OutputDir),
		zap.Bool("dry_run", r.opts.DryRun))

	if !r.opts.DryRun {
		if err := prepareOutput(r.opts.OutputDir); err != nil {
			return nil, err
		}
	}

	jobs := r.plan(paths, requireNumber)

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for _, j := range jobs {
		if j.result.Skipped {
			logger.Info("skipping sheet", zap.String("file", j.source), zap.String("reason", j.result.Reason))

			mu.Lock()
			report.Results = append(report.Results, j.result)
			mu.Unlock()

			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := r.process(j)
			if err != nil {
				return err
			}

			logger.Debug("processed sheet",
				zap.String("file", j.source),
				zap.String("output", res.Output),
				zap.Int("diagnostics", res.Diagnostics.Len()))

			mu.Lock()
			defer mu.Unlock()

			report.Results = append(report.Results, res)

			return nil
		})
	}

	err := g.Wait()

	slices.SortFunc(report.Results, func(a, b Result) int {
		return cmp.Compare(a.Source, b.Source)
	})

	for _, res := range report.Results {
		report.Diagnostics.Merge(res.Diagnostics)
	}

	report.Elapsed = time.Since(report.Started)

	if err != nil {
		return report, fmt.Errorf("run %s: %w", report.RunID, err)
	}

	logger.Info("run finished",
		zap.Int("processed", report.Processed()),
		zap.Int("skipped", report.Skipped()),
		zap.Int("warnings", len(report.Diagnostics.Warnings)),
		zap.Duration("elapsed", report.Elapsed))

	return report, nil
}

// plan decides the output name of every sheet up front so that two inputs
// gendered to the same name are detected before anything is written.
func (r *Runner) plan(paths []string, requireNumber bool) []job {
	jobs := make([]job, 0, len(paths))
	claimed := make(map[string]string, len(paths))

	for _, path := range paths {
		base := filepath.Base(path)
		j := job{source: path, name: base}
		j.result = Result{Source: path, Name: base, Diagnostics: diagnostic.New(nil)}

		if requireNumber {
			if _, ok := r.transformer.Number(base); !ok {
				j.result.Skipped = true
				j.result.Reason = "name does not start with a defined character number"
				jobs = append(jobs, j)

				continue
			}
		}

		if r.opts.ProcessFileNames {
			name, diags := r.transformer.Name(base)
			j.result.Diagnostics.Merge(diags)
			j.name = name
			j.result.Name = name
		}

		if other, ok := claimed[j.name]; ok {
			j.result.Skipped = true
			j.result.Reason = fmt.Sprintf("output name %s is already produced by %s", j.name, other)
		} else {
			claimed[j.name] = path
		}

		jobs = append(jobs, j)
	}

	return jobs
}

func (r *Runner) process(j job) (Result, error) {
	res := j.result

	data, err := os.ReadFile(j.source)
	if err != nil {
		return res, fmt.Errorf("reading sheet %s: %w", j.source, err)
	}

	text, diags := r.transformer.Body(filepath.Base(j.source), string(data))
	res.Diagnostics.Merge(diags)

	if r.opts.DryRun {
		return res, nil
	}

	res.Output, err = writeSheet(r.opts.OutputDir, j.name, []byte(text))
	if err != nil {
		return res, err
	}

	return res, nil
}

// Preview returns the gendered text of one sheet without writing anything.
func Preview(t *sheet.Transformer, path string) (string, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading sheet %s: %w", path, err)
	}

	text, diags := t.Body(filepath.Base(path), string(data))

	return text, diags, nil
}
