package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/planner"
	"sortd/internal/services"
)

// Executor walks a plan's actions in order. The same executor code path
// serves apply and dry-run; dry-run only suppresses the mutation itself.
type Executor struct {
	logger *slog.Logger
	dryRun bool
}

func New(logger *slog.Logger, dryRun bool) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{logger: logger, dryRun: dryRun}
}

// Execute performs the plan's actions in order and returns the run report.
// Cancellation is honored between actions, never mid-move: the in-flight
// action finishes, the report is marked stopped, and the context error is
// returned alongside it.
func (e *Executor) Execute(ctx context.Context, plan *planner.Plan, runID string) (*Report, error) {
	report := &Report{
		RunID:  runID,
		DryRun: e.dryRun,
		Total:  len(plan.Actions),
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			report.Stopped = true
			return report, err
		}
		e.perform(action, report)
	}
	return report, nil
}

func (e *Executor) perform(action planner.Action, report *Report) {
	switch action.Kind {
	case planner.ActionMove, planner.ActionRenameMove:
		e.logger.Info(action.Kind.String(),
			logging.String(logging.FieldAction, action.Kind.String()),
			logging.String(logging.FieldSource, action.Source),
			logging.String(logging.FieldDestination, action.Destination))
		if !e.dryRun {
			if err := e.relocate(action); err != nil {
				e.logger.Warn("action failed",
					logging.String(logging.FieldAction, action.Kind.String()),
					logging.String(logging.FieldSource, action.Source),
					logging.Error(err))
				report.Failed++
				report.Failures = append(report.Failures, Failure{Source: action.Source, Reason: err.Error()})
				return
			}
		}
		if action.Kind == planner.ActionMove {
			report.Moved++
		} else {
			report.Renamed++
		}

	case planner.ActionSkipDuplicate:
		e.logger.Info(action.Kind.String(),
			logging.String(logging.FieldAction, action.Kind.String()),
			logging.String(logging.FieldSource, action.Source),
			logging.String(logging.FieldDestination, action.Existing))
		report.Duplicates++

	case planner.ActionSkipUnmapped:
		e.logger.Info(action.Kind.String(),
			logging.String(logging.FieldAction, action.Kind.String()),
			logging.String(logging.FieldSource, action.Source),
			logging.String("extension", action.Extension))
		report.Unmapped++

	case planner.ActionSkipError:
		e.logger.Warn(action.Kind.String(),
			logging.String(logging.FieldAction, action.Kind.String()),
			logging.String(logging.FieldSource, action.Source),
			logging.String(logging.FieldReason, action.Reason))
		report.Failed++
		report.Failures = append(report.Failures, Failure{Source: action.Source, Reason: action.Reason})
	}
}

// relocate creates the category folder and moves the file into it.
func (e *Executor) relocate(action planner.Action) error {
	folder := filepath.Dir(action.Destination)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return services.Wrap(services.ErrWrite, "execute", "create category folder", folder, err)
	}
	if err := fileutil.MoveFile(action.Source, action.Destination); err != nil {
		return services.Wrap(services.ErrWrite, "execute", "move file", fmt.Sprintf("%s -> %s", action.Source, action.Destination), err)
	}
	return nil
}
