// Package export serializes the compgen catalog, generated pipelines, and
// classic-algorithm bindings to CSV.
//
// Four outputs make up a bundle (see Dir):
//
//   - compression_components.csv  one row per component × parameter variation
//   - classic_algorithms.csv      one row per resolved well-known algorithm
//   - pipeline_combinations.csv   one row per enumerated pipeline (optional)
//   - generation_summary.csv      counts, taxonomy, and a timestamp
//
// Row order is inherited from the catalog and the enumerator, so output is
// deterministic for identical inputs (the summary timestamp aside, which
// tests pin through Config.Now). Pipeline rows are streamed from the
// enumerator's emission hook: the export never materializes the full
// pipeline set in memory.
//
// Column layouts and the JSON encoding of list/map cells are frozen as an
// output contract; see csv.go.
package export
