package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wingetreport/pkg/errors"
	"github.com/matzehuels/wingetreport/pkg/extract"
	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/integrations"
	"github.com/matzehuels/wingetreport/pkg/integrations/adobe"
	"github.com/matzehuels/wingetreport/pkg/observability"
	"github.com/matzehuels/wingetreport/pkg/record"
	"github.com/matzehuels/wingetreport/pkg/winget"
)

// Runner resolves identifiers using a winget querier and enrichment resolvers.
//
// Runner holds no per-run state; Resolve is a function of the identifier and
// the collaborators, so one Runner may serve concurrent runs.
type Runner struct {
	Querier   winget.Querier
	Resolvers integrations.Chain
	Logger    *log.Logger
}

// NewRunner creates a runner with the default resolver chain.
// If prober is nil, a HEAD prober with the default timeout is used.
// If logger is nil, log.Default() is used.
func NewRunner(q winget.Querier, prober httputil.Prober, logger *log.Logger) *Runner {
	if prober == nil {
		prober = httputil.NewProber(DefaultProbeTimeout)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Querier:   q,
		Resolvers: integrations.Chain{adobe.NewResolver(prober)},
		Logger:    logger,
	}
}

// Execute resolves every identifier in opts and returns the records in input order.
// Per-package failures are recorded in the result; only invalid options and
// context cancellation are returned as errors. An empty identifier list
// yields an empty result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{
		RunID:   uuid.NewString(),
		Records: make([]record.PackageRecord, len(opts.Identifiers)),
	}
	enriched := make([]bool, len(opts.Identifiers))
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, result.RunID, len(opts.Identifiers))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, id := range opts.Identifiers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result.Records[i], enriched[i] = r.resolve(gctx, id, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.GeneratedAt = time.Now()
	result.Stats = Stats{
		Packages: len(result.Records),
		Duration: time.Since(start),
	}
	for i, rec := range result.Records {
		if rec.Failed {
			result.Stats.Failed++
		}
		if enriched[i] {
			result.Stats.Enriched++
		}
	}
	hooks.OnRunComplete(ctx, result.RunID, result.Stats.Packages, result.Stats.Failed, result.Stats.Duration)

	logger.Info("resolved packages",
		"run", result.RunID,
		"packages", result.Stats.Packages,
		"failed", result.Stats.Failed,
		"duration", result.Stats.Duration.Round(time.Millisecond))
	return result, nil
}

// Resolve runs the full per-package pipeline for one identifier with default options.
func (r *Runner) Resolve(ctx context.Context, id string) record.PackageRecord {
	rec, _ := r.resolve(ctx, id, Options{})
	return rec
}

// logger returns the per-run logger from opts, falling back to r.Logger.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// resolve also reports whether a resolver adopted a verified download.
func (r *Runner) resolve(ctx context.Context, id string, opts Options) (record.PackageRecord, bool) {
	logger := r.logger(opts)
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, id)
	start := time.Now()

	rec, err := r.show(ctx, id, logger)
	if err != nil {
		logger.Warn("query failed", "id", id, "err", errors.UserMessage(err))
		hooks.OnResolveComplete(ctx, id, time.Since(start), err)
		return record.NewFailed(id, err), false
	}

	if !opts.SkipVersions {
		rec.PreviousVersion = r.previousVersion(ctx, id, logger)
	}
	enriched := false
	if opts.ShouldEnrich() {
		rec, enriched = r.Resolvers.Enrich(ctx, rec)
	}
	rec = extract.ResolveArchitecture(rec)

	logger.Debug("resolved",
		"id", id,
		"version", rec.Version,
		"previous", rec.PreviousVersion,
		"kind", rec.InstallerKind,
		"arch", rec.Architecture)
	hooks.OnResolveComplete(ctx, id, time.Since(start), nil)
	return rec, enriched
}

// show runs the show query and parses it. A malformed identifier never
// reaches the winget command line and fails with INVALID_IDENTIFIER; any
// other failure is QUERY_FAILED.
func (r *Runner) show(ctx context.Context, id string, logger *log.Logger) (record.PackageRecord, error) {
	if err := errors.ValidateIdentifier(id); err != nil {
		return record.PackageRecord{}, err
	}
	lines, err := r.Querier.Show(ctx, id)
	if err != nil {
		return record.PackageRecord{}, errors.Wrap(errors.ErrCodeQueryFailed, err, "show %s", id)
	}
	logger.Debug("queried", "id", id, "lines", len(lines))

	rec, err := extract.ParseShow(id, lines)
	if err != nil {
		return record.PackageRecord{}, errors.Wrap(errors.ErrCodeQueryFailed, err, "show %s", id)
	}
	return rec, nil
}

// previousVersion never fails; errors leave the Unknown sentinel.
func (r *Runner) previousVersion(ctx context.Context, id string, logger *log.Logger) string {
	lines, err := r.Querier.Versions(ctx, id)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeVersionHistoryFailed, err, "versions %s", id)
		logger.Debug("version history unavailable", "id", id, "err", err)
		return record.Unknown
	}
	return extract.PreviousVersion(lines)
}
