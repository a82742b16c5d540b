package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compgen/catalog"
)

func TestVariations_NoRanges(t *testing.T) {
	c := &catalog.Component{
		Category: catalog.Filter,
		Name:     "plain",
		Stages:   []catalog.Stage{catalog.StagePreFilter},
	}

	vs := c.Variations()
	require.Len(t, vs, 1)
	assert.Same(t, c, vs[0].Component)
	assert.Empty(t, vs[0].Params)
	assert.Empty(t, vs[0].Names)
	assert.Equal(t, 1, c.NumVariations())
}

func TestVariations_CartesianProduct(t *testing.T) {
	c := &catalog.Component{
		Category: catalog.Dictionary,
		Name:     "lz",
		Stages:   []catalog.Stage{catalog.StageTransform},
		ParamRanges: []catalog.ParamRange{
			{Name: "window", Values: []any{4096, 8192, 32768}},
			{Name: "lookahead", Values: []any{16, 32}},
		},
	}

	vs := c.Variations()
	require.Len(t, vs, 6)
	assert.Equal(t, 6, c.NumVariations())

	// Odometer order: the last-declared parameter varies fastest.
	assert.Equal(t, map[string]any{"window": 4096, "lookahead": 16}, vs[0].Params)
	assert.Equal(t, map[string]any{"window": 4096, "lookahead": 32}, vs[1].Params)
	assert.Equal(t, map[string]any{"window": 8192, "lookahead": 16}, vs[2].Params)
	assert.Equal(t, map[string]any{"window": 32768, "lookahead": 32}, vs[5].Params)

	// Every variation assigns exactly the declared parameter names.
	for _, v := range vs {
		assert.Equal(t, []string{"window", "lookahead"}, v.Names)
		assert.Len(t, v.Params, 2)
	}

	// All combinations are distinct.
	seen := make(map[[2]any]bool)
	for _, v := range vs {
		key := [2]any{v.Params["window"], v.Params["lookahead"]}
		assert.False(t, seen[key], "duplicate combination %v", key)
		seen[key] = true
	}
}

func TestVariations_Restartable(t *testing.T) {
	cat := catalog.Default()
	c, ok := cat.Lookup("LZ77 (Sliding Window)")
	require.True(t, ok)

	first := c.Variations()
	second := c.Variations()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Params, second[i].Params, "expansion must be a pure function of the component")
	}
}

func TestVariations_DefaultCatalogCounts(t *testing.T) {
	cat := catalog.Default()

	// Spot-check products against the declared ranges.
	ppm, ok := cat.Lookup("Prediction by Partial Matching (PPM)")
	require.True(t, ok)
	assert.Equal(t, 4*5, ppm.NumVariations())
	assert.Len(t, ppm.Variations(), 20)

	lzma, ok := cat.Lookup("LZMA (Lempel-Ziv-Markov chain)")
	require.True(t, ok)
	assert.Equal(t, 4*2*3*3, lzma.NumVariations())

	// Components without ranges expand to exactly one empty configuration.
	unary, ok := cat.Lookup("Unary Code")
	require.True(t, ok)
	vs := unary.Variations()
	require.Len(t, vs, 1)
	assert.Empty(t, vs[0].Params)
}
