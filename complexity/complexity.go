// Package complexity reduces a sequence of per-component cost annotations
// (informal asymptotic labels such as "O(n log n)") to the single dominant
// label, via substring matching against a fixed severity ranking.
//
// This is a heuristic annotation combinator, not a formal complexity
// calculus: a label containing a higher-ranked substring "wins" even if the
// substring is unrelated to the true combined cost. Downstream consumers
// treat the result as a best-effort annotation, and the exact behavior —
// including tie resolution by first occurrence and the unmatched-input
// fallback — is part of the compatibility contract.
package complexity

import (
	"strings"
)

// DefaultLabel is returned by Combine for empty input. Every pipeline has
// at least one component, so the empty case indicates caller misuse rather
// than a data condition; returning a fixed fallback keeps Combine total.
const DefaultLabel = "O(n)"

// ranking orders known asymptotic label substrings from cheapest to most
// expensive, ending in the incomputable sentinel. The hand-picked order is
// frozen: reordering entries changes every aggregated annotation downstream.
var ranking = []string{
	"O(1)",
	"O(log n)",
	"O(n)",
	"O(n log n)",
	"O(n * max_order)",
	"O(n * window)",
	"O(n * depth)",
	"O(n^2)",
	"O(|Σ|^order)",
	"Incomputable",
}

// Combine returns the input label judged most expensive under the fixed
// severity ranking.
//
// For each label, the highest-ranked ranking entry it contains (substring
// match, not equality) determines its severity; the output is the original
// label holding the overall highest-ranked match. Labels matching nothing
// in the ranking leave the running answer untouched, so an input whose
// labels all are unranked returns the first label unchanged. Ties resolve
// to the earliest occurrence. Combine(nil) returns DefaultLabel.
//
// Complexity: O(len(labels) · len(ranking)) substring scans.
func Combine(labels []string) string {
	worst := DefaultLabel
	if len(labels) > 0 {
		worst = labels[0]
	}

	worstIdx := -1
	for _, label := range labels {
		for idx, pattern := range ranking {
			if strings.Contains(label, pattern) && idx > worstIdx {
				worstIdx = idx
				worst = label
			}
		}
	}

	return worst
}
