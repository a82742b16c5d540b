// Package compgen is a generative-grammar engine for exploring the design
// space of compression algorithms — from single building blocks to complete
// multi-stage pipelines.
//
// 🚀 What is compgen?
//
//	A deterministic, zero-surprise enumeration library that brings together:
//		• Catalog: an immutable alphabet of compression primitives
//		  (transforms, predictors, dictionary methods, entropy coders, ...)
//		• Variations: the Cartesian expansion of each component's declared
//		  parameter ranges ("dialects" of a primitive)
//		• Grammar: the fixed stage-transition rules that govern which
//		  component kind may follow which in a pipeline
//		• Enumeration: bounded depth-first search over the grammar,
//		  with prerequisite and incompatibility pruning
//		• Complexity: a heuristic combinator reducing per-stage cost
//		  labels to a single dominant annotation
//
// ✨ Why choose compgen?
//
//   - Deterministic – same catalog, same bounds, byte-identical output
//   - Rock-solid guarantees – immutable catalog, sentinel errors, never
//     panics on caller input
//   - Pure Go core – the engine itself has no hidden deps
//   - Extensible – custom catalogs, hooks (OnPipeline) for streaming use
//
// Under the hood, everything is organized under five subpackages:
//
//	catalog/    — Component, Category, Stage, the built-in registry & variations
//	pipeline/   — stage-transition grammar & the backtracking enumerator
//	complexity/ — dominant-cost-label combinator
//	classic/    — well-known algorithm name → component-sequence bindings
//	export/     — CSV serialization of components, pipelines and classics
//
// Quick ASCII example of a valid pipeline:
//
//	Burrows-Wheeler Transform → Move-to-Front Transform → Zero RLE → Huffman Coding
//
// i.e. the bzip2 family, derived by the grammar 1→2→2→3.
//
// Note: compgen enumerates and annotates algorithm designs; it never executes
// or benchmarks them. Complexity fields are descriptive labels, not metrics.
//
// Dive into README-style docs in each subpackage and the runnable demos in
// examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/compgen
package compgen
