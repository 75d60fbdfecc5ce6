// Package integrations provides vendor-specific record enrichment.
//
// # Overview
//
// winget metadata is sometimes not what a deployment wants: Adobe Acrobat
// Reader, for example, publishes a full installer while administrators
// usually want the MUI update patch. Resolvers fix such cases per vendor.
// Each vendor has its own subpackage:
//
//   - [adobe]: Acrobat Reader MSP and EXE direct links
//
// # Resolver Pattern
//
// All resolvers implement [Resolver]:
//
//	r := adobe.NewResolver(httputil.NewProber(5 * time.Second))
//	if r.Applies(rec) {
//	    rec, adopted = r.Enrich(ctx, rec)
//	}
//
// Resolvers only replace fields after verifying the replacement, typically
// with a HEAD probe. An unreachable candidate leaves the record unchanged.
// A [Chain] runs several resolvers in order.
//
// # Adding a New Vendor
//
// To add support for a new vendor:
//
//  1. Create a subpackage: pkg/integrations/<vendor>/
//  2. Implement Name, Applies and Enrich
//  3. Fire observability.Enrich() hooks for each probe
//  4. Add the resolver to the chain in pipeline.NewRunner
package integrations
