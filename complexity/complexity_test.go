package complexity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/compgen/complexity"
)

func TestCombine_DominantLabel(t *testing.T) {
	assert.Equal(t, "O(n log n)",
		complexity.Combine([]string{"O(1)", "O(n)", "O(n log n)"}))
}

func TestCombine_SingleLabel(t *testing.T) {
	assert.Equal(t, "O(n)", complexity.Combine([]string{"O(n)"}))
}

func TestCombine_IncomputableWins(t *testing.T) {
	assert.Equal(t, "Incomputable",
		complexity.Combine([]string{"O(n^2)", "Incomputable", "O(1)"}))
}

func TestCombine_SubstringMatch(t *testing.T) {
	// Ranking entries match by containment, so decorated labels still rank.
	assert.Equal(t, "O(n * max_order)",
		complexity.Combine([]string{"O(n)", "O(n * max_order)"}))
	assert.Equal(t, "O(log n) per integer",
		complexity.Combine([]string{"O(1)", "O(log n) per integer"}))
}

func TestCombine_UnmatchedReturnsFirst(t *testing.T) {
	// None of these contain a ranked substring; the first input survives.
	assert.Equal(t, "O(states)",
		complexity.Combine([]string{"O(states)", "O(width)"}))
}

func TestCombine_TieFirstOccurrence(t *testing.T) {
	// Both labels rank identically; the earlier one is kept.
	assert.Equal(t, "O(n) left",
		complexity.Combine([]string{"O(n) left", "O(n) right"}))
}

func TestCombine_Empty(t *testing.T) {
	// Empty input is caller misuse (every pipeline has ≥1 component);
	// Combine stays total and answers the documented fallback.
	assert.Equal(t, complexity.DefaultLabel, complexity.Combine(nil))
	assert.Equal(t, complexity.DefaultLabel, complexity.Combine([]string{}))
}

func TestCombine_UnmatchedDoesNotOvertake(t *testing.T) {
	// An unranked label never displaces a ranked one, whatever the order.
	assert.Equal(t, "O(1)",
		complexity.Combine([]string{"O(states)", "O(1)"}))
	assert.Equal(t, "O(1)",
		complexity.Combine([]string{"O(1)", "O(states)"}))
}
