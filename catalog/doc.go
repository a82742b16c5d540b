// Package catalog provides the "alphabet" of the compression generative
// grammar: an immutable, ordered registry of algorithm building blocks and
// the Cartesian expansion of their parametric variations.
//
// What:
//
//   - Component: an immutable building block with category, stage set,
//     cost annotations, parameter ranges, and composition constraints
//     (prerequisites / incompatibilities).
//   - Category: closed taxonomy (entropy measures, transforms, predictors,
//     dictionary methods, entropy coders, run-length, context models,
//     filters, integer coders).
//   - Stage: abstract pipeline position label (pre-filter, transform,
//     modeling, entropy-coding) — the classifier the grammar operates on.
//   - Catalog: built once via New or Default, read-only afterwards; exposes
//     ordered flat, per-stage, and per-category views plus name lookup.
//   - Variations: odometer-ordered Cartesian product over a component's
//     declared parameter ranges.
//
// Why:
//   - Enumerate the design space of compression pipelines deterministically
//   - Feed documentation, analysis, and test-fixture generation downstream
//   - Keep one shared, immutable source of truth for all searches
//
// Invariants:
//
//   - Component names are globally unique within a catalog instance.
//   - Every component declares a non-empty stage set within [0,3].
//   - Every declared parameter range offers at least one candidate value.
//   - A built catalog is never mutated; pipelines hold references into it.
//
// Errors:
//
//   - ErrEmptyName, ErrDuplicateName     name invariants
//   - ErrNoStages, ErrInvalidStage       stage-set invariants
//   - ErrInvalidCategory                 taxonomy invariant
//   - ErrEmptyParamRange, ErrDuplicateParam  parameter-range invariants
//
// All construction errors are configuration errors: fatal, surfaced by New
// before any enumeration can begin. Accessors never fail.
//
// Concurrency: a built Catalog is immutable; concurrent readers need no
// synchronization.
package catalog
