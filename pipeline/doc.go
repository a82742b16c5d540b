// Package pipeline implements the "grammar" half of the compression
// generative system: the fixed stage-transition table and a bounded,
// backtracking depth-first enumerator producing every valid multi-stage
// pipeline over a catalog.
//
// What:
//
//   - Successors / StartStages: the fixed stage-transition grammar.
//     0 (pre-filter) → {1,2,3}; 1 (transform) → {2,3}; 2 (modeling) →
//     {2,3}; 3 (entropy-coding) → {} (terminal). Pipelines may start at
//     stages 0, 1, or 2.
//   - Enumerate(cat, opts...): depth-first search with explicit
//     append/recurse/pop backtracking. Supports:
//   - Depth bounds (WithMinDepth / WithMaxDepth)
//   - Terminal-category requirement (WithRequireEntropyCoder)
//   - Cancellation via context.Context
//   - Streaming emission hook (WithOnPipeline, WithCollect)
//   - Pipeline: an emitted component sequence with helpers for names,
//     combined formula, dominant cost labels, and the all-lossless flag.
//
// Why:
//   - Systematically explore the compression-algorithm design space
//   - Generate deterministic fixtures and documentation tables
//   - Validate composition constraints (prerequisites, incompatibilities)
//
// Determinism:
//
// Emission order is a pure function of catalog declaration order, the depth
// bounds, the terminal requirement, and the fixed start-stage order 0,1,2.
// Identical inputs produce byte-identical ordered output, which is what
// golden-file tests rely on.
//
// Complexity:
//
//   - Enumerate: output-sensitive, worst case O(b^MaxDepth) with branching
//     factor b = max components per stage; memory O(MaxDepth) + results.
//
// Errors:
//
//   - ErrNilCatalog    catalog pointer is nil
//   - ErrDepthBounds   MinDepth < 1 or MaxDepth < MinDepth
//   - context.Canceled enumeration canceled via context
//   - hook errors      propagated from OnPipeline
//
// The engine enforces no internal timeout: callers embedding it in a
// responsive system should run it in a worker of their choosing and cancel
// through WithContext.
package pipeline
