// Package winget runs the Windows Package Manager and returns its output as lines.
//
// [Querier] is the collaborator contract consumed by the pipeline. [Client]
// implements it by executing the winget binary; [Static] implements it from
// canned output and backs tests and --dry-run.
//
// Output is returned raw: interpreting it is the job of package extract.
package winget
