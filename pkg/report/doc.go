// Package report renders resolved package records.
//
// A [Document] bundles the records of one run with its identity. Writers
// never mutate records and emit rows in record order:
//
//   - [WriteHTML]: standalone HTML page with a sortable-looking table and
//     per-row details
//   - [WriteCSV]: one row per record with a header line
//   - [WriteJSON]: the document as indented JSON
//
// Failed records render their sentinel values; renderers do not hide them.
package report
