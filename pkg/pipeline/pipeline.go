// Package pipeline resolves package identifiers into report records.
//
// This package implements the per-package driver shared by the CLI, the
// report server and tests. For each identifier it runs, in order:
//
//  1. Show: query winget and fold the output into a record
//  2. Versions: query the version history and extract the previous version
//  3. Enrich: run applicable resolvers (Adobe Acrobat Reader direct links)
//  4. Architecture: infer a missing architecture from the download URL
//
// A malformed identifier or a failed show query yields one ERROR record for
// that identifier and never stops the run; every other failure degrades to sentinel values. The
// result always holds exactly one record per identifier, in input order.
//
// # Usage
//
//	runner := pipeline.NewRunner(winget.NewClient(), httputil.NewProber(0), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Identifiers: []string{"Google.Chrome", "Adobe.Acrobat.Reader.64-bit"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range result.Records {
//	    fmt.Println(r.ID, r.Version)
//	}
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wingetreport/pkg/errors"
	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/record"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultConcurrency resolves packages one at a time.
	DefaultConcurrency = 1

	// MaxConcurrency caps parallel winget processes.
	MaxConcurrency = 16

	// DefaultProbeTimeout bounds each enrichment probe.
	DefaultProbeTimeout = httputil.DefaultProbeTimeout
)

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Identifiers are resolved in order; the result preserves this order.
	Identifiers []string `json:"identifiers"`

	// Concurrency is the number of packages resolved in parallel.
	// Zero selects DefaultConcurrency.
	Concurrency int `json:"concurrency,omitempty"`

	// SkipEnrich disables vendor resolvers.
	SkipEnrich bool `json:"skip_enrich,omitempty"`

	// SkipVersions disables the version history query.
	SkipVersions bool `json:"skip_versions,omitempty"`

	// Runtime options (not serialized)

	// Logger receives run and per-package logs. Nil selects the Runner's logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults trims identifiers, rejects duplicates and applies
// defaults. Individual identifiers are checked per package by the Runner, so
// one malformed entry fails only its own record. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	ids := make([]string, len(o.Identifiers))
	for i, id := range o.Identifiers {
		ids[i] = strings.TrimSpace(id)
	}
	if err := errors.CheckDuplicates(ids); err != nil {
		return err
	}
	o.Identifiers = ids

	if o.Concurrency < 0 || o.Concurrency > MaxConcurrency {
		return errors.New(errors.ErrCodeInvalidInput, "concurrency must be between 1 and %d, got %d", MaxConcurrency, o.Concurrency)
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	o.validated = true
	return nil
}

// ShouldEnrich reports whether vendor resolvers run.
func (o *Options) ShouldEnrich() bool {
	return !o.SkipEnrich
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in reports and logs.
	RunID string `json:"run_id"`

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Records holds one record per identifier, in input order.
	Records []record.PackageRecord `json:"records"`

	// Stats contains timing and outcome counts.
	Stats Stats `json:"stats"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Packages int           `json:"packages"`
	Failed   int           `json:"failed"`
	Enriched int           `json:"enriched"`
	Duration time.Duration `json:"duration"`
}

// Failed returns the records whose show query failed.
func (r *Result) Failed() []record.PackageRecord {
	var out []record.PackageRecord
	for _, rec := range r.Records {
		if rec.Failed {
			out = append(out, rec)
		}
	}
	return out
}
