// Package record defines the per-package result produced by a wingetreport run.
//
// A [PackageRecord] is created empty for one identifier, folded while the
// winget query outputs are scanned, and then treated as read-only by
// renderers. Two distinct sentinels mark missing data:
//
//   - [Unknown] for an individual field that was never observed
//   - [Failure] for the version-bearing fields of a record whose query failed
//
// The two must never be conflated: a record with Version == Unknown was
// found but carried no version line, while Version == Failure means the
// package could not be queried at all.
package record
