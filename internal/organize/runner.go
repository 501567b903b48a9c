package organize

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sortd/internal/catalog"
	"sortd/internal/config"
	"sortd/internal/contentid"
	"sortd/internal/executor"
	"sortd/internal/logging"
	"sortd/internal/planner"
	"sortd/internal/preflight"
	"sortd/internal/services"
	"sortd/internal/walker"
)

// LockFileName is the advisory lock taken for the duration of a run.
const LockFileName = "sortd.lock"

// Options adjusts a single run. Zero-value paths fall back to the
// configured source and destination directories.
type Options struct {
	Source     string
	Dest       string
	DryRun     bool
	Classifier planner.Classifier
}

// Result bundles what a run produced.
type Result struct {
	RunID  string
	Plan   *planner.Plan
	Report *executor.Report
}

// Runner executes organize runs against one catalog and configuration.
type Runner struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewRunner(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, catalog: cat, logger: logger}
}

// Run performs one organize pass. Dry runs hold the same lock and produce
// the same plan and logs as apply runs but never mutate the filesystem.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	source := opts.Source
	if source == "" {
		source = r.cfg.Paths.SourceDir
	}
	dest := opts.Dest
	if dest == "" {
		dest = r.cfg.Paths.DestDir
	}
	if source == "" || dest == "" {
		return nil, services.Wrap(services.ErrConfiguration, "organize", "resolve paths", "source and destination directories must be configured", nil)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("run starting",
		logging.String(logging.FieldSource, source),
		logging.String(logging.FieldDestination, dest),
		logging.Bool("dry_run", opts.DryRun))

	lock := flock.New(filepath.Join(r.cfg.Paths.StateDir, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrWrite, "organize", "acquire lock", lock.Path(), err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "organize", "acquire lock", "another run is already in progress", nil)
	}
	defer lock.Unlock()

	r.catalog.ResetSeen()

	checks := []preflight.Result{preflight.CheckSource(source), preflight.CheckDestination(dest)}
	if failure := preflight.FirstFailure(checks); failure != nil {
		return nil, preflight.Err(*failure)
	}

	records, err := walker.Walk(source)
	if err != nil {
		return nil, err
	}
	logger.Info("source walked", logging.Int("files", len(records)))

	if !opts.DryRun {
		var total int64
		for _, rec := range records {
			total += rec.Size
		}
		if result := preflight.CheckFreeSpace(dest, total); !result.Passed {
			return nil, preflight.Err(result)
		}
	}

	hasher := contentid.NewSHA256Hasher(r.cfg.Organize.HashBufferKiB * 1024)
	plannerOpts := []planner.Option{planner.WithMaxRenameAttempts(r.cfg.Organize.MaxRenameAttempts)}
	if opts.Classifier != nil {
		plannerOpts = append(plannerOpts, planner.WithClassifier(opts.Classifier))
	}

	planCtx := services.WithPhase(ctx, "plan")
	plan, err := planner.New(r.catalog, hasher, logging.WithContext(planCtx, r.logger), plannerOpts...).
		Build(planCtx, records, source, dest)
	if err != nil {
		return nil, err
	}

	execCtx := services.WithPhase(ctx, "execute")
	report, err := executor.New(logging.WithContext(execCtx, r.logger), opts.DryRun).
		Execute(execCtx, plan, runID)
	result := &Result{RunID: runID, Plan: plan, Report: report}
	if err != nil {
		return result, err
	}

	logger.Info("run finished",
		logging.Int("moved", report.Moved),
		logging.Int("renamed", report.Renamed),
		logging.Int("duplicates", report.Duplicates),
		logging.Int("unmapped", report.Unmapped),
		logging.Int("failed", report.Failed))
	return result, nil
}

// Describe renders a one-line human summary of a report.
func Describe(report *executor.Report) string {
	mode := "organized"
	if report.DryRun {
		mode = "would organize"
	}
	return fmt.Sprintf("%s %d of %d files (%d moved, %d renamed, %d duplicates, %d unmapped, %d failed)",
		mode, report.Relocated(), report.Total, report.Moved, report.Renamed, report.Duplicates, report.Unmapped, report.Failed)
}
