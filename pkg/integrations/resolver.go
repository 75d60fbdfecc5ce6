package integrations

import (
	"context"

	"github.com/matzehuels/wingetreport/pkg/record"
)

// Resolver enriches records for the identifiers it recognizes.
//
// Enrich must never fail: resolvers replace fields only when they have a
// verified better value and otherwise return the record unchanged.
type Resolver interface {
	// Name identifies the resolver in logs and hooks.
	Name() string
	// Applies reports whether the resolver should run for r.
	Applies(r record.PackageRecord) bool
	// Enrich returns r with any verified replacements applied and reports
	// whether a verified candidate was adopted. Adoption counts even when
	// the candidate equals the value r already held.
	Enrich(ctx context.Context, r record.PackageRecord) (record.PackageRecord, bool)
}

// Chain runs resolvers in order. Each applicable resolver sees the output
// of the previous one.
type Chain []Resolver

// Enrich applies every resolver in c whose Applies reports true. It
// reports whether any of them adopted a candidate.
func (c Chain) Enrich(ctx context.Context, r record.PackageRecord) (record.PackageRecord, bool) {
	adopted := false
	for _, res := range c {
		if !res.Applies(r) {
			continue
		}
		var ok bool
		r, ok = res.Enrich(ctx, r)
		adopted = adopted || ok
	}
	return r, adopted
}
