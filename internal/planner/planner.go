package planner

import (
	"context"
	"log/slog"
	"path/filepath"

	"sortd/internal/catalog"
	"sortd/internal/contentid"
	"sortd/internal/logging"
	"sortd/internal/walker"
)

// DefaultMaxRenameAttempts bounds the suffix search when a destination
// folder is saturated with colliding names.
const DefaultMaxRenameAttempts = 1000

// Planner builds plans from walked records using an extension catalog for
// classification and a content hasher for duplicate detection.
type Planner struct {
	catalog           *catalog.Catalog
	hasher            contentid.Hasher
	classifier        Classifier
	logger            *slog.Logger
	maxRenameAttempts int
}

// Option adjusts planner construction.
type Option func(*Planner)

// WithClassifier installs a fallback classifier for unmapped extensions.
func WithClassifier(c Classifier) Option {
	return func(p *Planner) { p.classifier = c }
}

// WithMaxRenameAttempts overrides the suffix search bound.
func WithMaxRenameAttempts(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.maxRenameAttempts = n
		}
	}
}

func New(cat *catalog.Catalog, hasher contentid.Hasher, logger *slog.Logger, opts ...Option) *Planner {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Planner{
		catalog:           cat,
		hasher:            hasher,
		logger:            logger,
		maxRenameAttempts: DefaultMaxRenameAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build produces the action plan for the given records, which must be in
// walker order. Build reads destination listings and file content but never
// mutates anything; per-file read failures become skip-error actions while
// the rest of the plan proceeds.
func (p *Planner) Build(ctx context.Context, records []walker.Record, sourceRoot, destRoot string) (*Plan, error) {
	res := newResolver(p.hasher, p.maxRenameAttempts)
	plan := &Plan{
		SourceRoot: sourceRoot,
		DestRoot:   destRoot,
		Actions:    make([]Action, 0, len(records)),
	}

	extCounts := make(map[string]int)
	for _, rec := range records {
		extCounts[rec.Ext]++
	}
	asked := make(map[string]bool)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		category, ok := p.catalog.Lookup(rec.Ext)
		if !ok && p.classifier != nil && !asked[rec.Ext] {
			asked[rec.Ext] = true
			if assigned, accepted := p.classifier.Classify(rec.Ext, extCounts[rec.Ext]); accepted {
				p.catalog.Override(rec.Ext, assigned)
				category, ok = assigned, true
			}
		}
		if !ok {
			plan.Actions = append(plan.Actions, Action{
				Kind:      ActionSkipUnmapped,
				Source:    rec.Path,
				Extension: rec.Ext,
			})
			p.logger.Debug("no category for extension",
				logging.String(logging.FieldSource, rec.Path),
				logging.String("extension", rec.Ext))
			continue
		}

		fingerprint, err := p.hasher.Fingerprint(rec.Path)
		if err != nil {
			plan.Actions = append(plan.Actions, Action{
				Kind:     ActionSkipError,
				Source:   rec.Path,
				Category: category,
				Reason:   err.Error(),
			})
			p.logger.Warn("skipping unreadable file",
				logging.String(logging.FieldSource, rec.Path),
				logging.Error(err))
			continue
		}

		folder := filepath.Join(destRoot, category)
		verdict, err := res.Resolve(folder, rec.Name, fingerprint)
		if err != nil {
			plan.Actions = append(plan.Actions, Action{
				Kind:     ActionSkipError,
				Source:   rec.Path,
				Category: category,
				Reason:   err.Error(),
			})
			p.logger.Warn("skipping file after resolution failure",
				logging.String(logging.FieldSource, rec.Path),
				logging.Error(err))
			continue
		}

		action := Action{
			Kind:        verdict.Kind,
			Source:      rec.Path,
			Destination: verdict.Destination,
			Category:    category,
			Existing:    verdict.Existing,
		}
		plan.Actions = append(plan.Actions, action)
	}

	return plan, nil
}
