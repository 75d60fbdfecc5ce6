// Package httputil provides the HTTP plumbing used by enrichment resolvers.
//
// # Overview
//
//   - [NewHTTPClient]: shared client construction with a default timeout
//   - [Prober]: bounded-time existence checks for remote resources
//
// # Probing
//
// A probe issues a HEAD request and reports whether the resource answered
// with a 2xx status before the timeout expired. Every failure mode (DNS
// error, connection refused, non-2xx, timeout) is reported the same way:
// the resource is treated as absent. Probes are never retried.
//
//	p := httputil.NewProber(5 * time.Second)
//	if p.Probe(ctx, "https://example.com/setup.msp") {
//	    // adopt the URL
//	}
package httputil
