// Package extract turns winget's loosely structured text output into
// [record.PackageRecord] values.
//
// # Components
//
//   - [ClassifyLine]: maps one line to a [Field] and its value
//   - [ParseShow]: folds a "winget show" output into a record, resolving
//     conflicting installer signals by precedence
//   - [ParseVersions] and [PreviousVersion]: read a "winget show --versions" table
//   - [ResolveArchitecture]: infers architecture from the download URL
//
// # Merge Rules
//
// Fields do not share one merge rule. Scalar metadata (version, publisher,
// dates, URLs, description) is last-seen-wins; the installer hash is
// first-seen-wins; architecture accumulates distinct tokens; the download
// URL is chosen by rank (MSIX > MSI > first other URL). A declared
// "Installer Type: msix" or "appx" forces the MSIX kind, and MSIX is never
// downgraded once set.
package extract
