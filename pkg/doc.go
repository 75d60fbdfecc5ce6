// Package pkg provides the core libraries for wingetreport.
//
// # Overview
//
// wingetreport turns loosely structured "winget show" output into strict
// package records and renders them as reports. The pkg directory is
// organized into these areas:
//
//  1. [record] - The PackageRecord shape and its sentinels
//  2. [extract] - Line classification, record parsing, version history, architecture
//  3. [winget] - Querying the winget executable (or canned fixtures)
//  4. [integrations] - Vendor resolvers that verify better download links
//  5. [pipeline] - Orchestration (show → versions → enrich → architecture)
//  6. [report] - HTML, CSV and JSON rendering
//
// # Architecture
//
// The typical data flow through wingetreport:
//
//	Package list ([config])
//	         ↓
//	    [winget] package (show + versions output lines)
//	         ↓
//	    [extract] package (record + previous version)
//	         ↓
//	    [integrations] package (verified vendor links)
//	         ↓
//	    [report] package (HTML/CSV/JSON)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(winget.NewClient(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Identifiers: config.DefaultPackages(),
//	})
//	if err != nil {
//	    return err
//	}
//	return report.WriteHTML(w, report.Document{
//	    RunID:       result.RunID,
//	    GeneratedAt: result.GeneratedAt,
//	    Records:     result.Records,
//	})
//
// Supporting packages: [httputil] (download probes), [observability]
// (hooks), [errors] (structured error codes), [buildinfo] (version info).
package pkg
