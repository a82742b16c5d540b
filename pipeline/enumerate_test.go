package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/pipeline"
)

// buildFTE creates the minimal three-component catalog used across tests:
// a pre-filter F, a transform T, and an entropy coder E, none constrained.
func buildFTE(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Filter, Name: "F", Lossless: true,
			TimeComplexity: "O(n)", SpaceComplexity: "O(1)",
			Stages: []catalog.Stage{catalog.StagePreFilter},
		},
		catalog.Component{
			Category: catalog.Transform, Name: "T", Lossless: true,
			TimeComplexity: "O(n log n)", SpaceComplexity: "O(n)",
			Stages: []catalog.Stage{catalog.StageTransform},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			TimeComplexity: "O(n)", SpaceComplexity: "O(1)",
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	return cat
}

// names flattens the result to component-name sequences for comparison.
func names(res *pipeline.Result) [][]string {
	out := make([][]string, len(res.Pipelines))
	for i, p := range res.Pipelines {
		out[i] = p.Names()
	}

	return out
}

func TestEnumerate_NilCatalog(t *testing.T) {
	res, err := pipeline.Enumerate(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, pipeline.ErrNilCatalog)
}

func TestEnumerate_DepthBounds(t *testing.T) {
	cat := buildFTE(t)

	_, err := pipeline.Enumerate(cat, pipeline.WithMinDepth(0))
	assert.ErrorIs(t, err, pipeline.ErrDepthBounds)

	_, err = pipeline.Enumerate(cat, pipeline.WithMinDepth(3), pipeline.WithMaxDepth(2))
	assert.ErrorIs(t, err, pipeline.ErrDepthBounds)
}

func TestEnumerate_EndToEnd(t *testing.T) {
	cat := buildFTE(t)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2),
		pipeline.WithMaxDepth(3),
		pipeline.WithRequireEntropyCoder(true),
	)
	require.NoError(t, err)

	// Depth-first order: from F the transform branch (stage 1) is explored
	// before the direct hand-off to the coder (stage 3), then T starts.
	assert.Equal(t, [][]string{
		{"F", "T", "E"},
		{"F", "E"},
		{"T", "E"},
	}, names(res))
	assert.Equal(t, 3, res.Emitted)
}

func TestEnumerate_StageLabelsAndGrammar(t *testing.T) {
	res, err := pipeline.Enumerate(buildFTE(t),
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(3))
	require.NoError(t, err)

	for _, p := range res.Pipelines {
		require.NotEmpty(t, p)
		for i := 1; i < len(p); i++ {
			assert.Contains(t, pipeline.Successors(p[i-1].Stage), p[i].Stage,
				"adjacent stages must follow the grammar in %s", p)
		}
	}
}

func TestEnumerate_DepthWindow(t *testing.T) {
	cat := catalog.Default()

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(3))
	require.NoError(t, err)
	require.NotEmpty(t, res.Pipelines)

	for _, p := range res.Pipelines {
		assert.GreaterOrEqual(t, len(p), 2)
		assert.LessOrEqual(t, len(p), 3)
		// Terminal requirement holds by default.
		assert.Equal(t, catalog.EntropyCoder, p[len(p)-1].Component.Category)
	}
}

func TestEnumerate_NoTerminalRequirement(t *testing.T) {
	cat := buildFTE(t)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2),
		pipeline.WithMaxDepth(3),
		pipeline.WithRequireEntropyCoder(false),
	)
	require.NoError(t, err)

	// [F,T] is now acceptable on top of the coder-terminated sequences.
	assert.Contains(t, names(res), []string{"F", "T"})
	assert.Contains(t, names(res), []string{"F", "T", "E"})
}

// TestEnumerate_CompletionNotTerminal verifies that an emitted pipeline is
// still extended: shared prefixes yield completions of several lengths.
func TestEnumerate_CompletionNotTerminal(t *testing.T) {
	// Two modeling components and a coder: modeling may repeat, so both
	// [M1,E] and longer sequences through M2 must appear.
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Predictor, Name: "M1", Lossless: true,
			Stages: []catalog.Stage{catalog.StageModeling},
		},
		catalog.Component{
			Category: catalog.Predictor, Name: "M2", Lossless: true,
			Stages: []catalog.Stage{catalog.StageModeling},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(3))
	require.NoError(t, err)

	got := names(res)
	assert.Contains(t, got, []string{"M1", "E"})
	assert.Contains(t, got, []string{"M1", "M2", "E"})
	assert.Contains(t, got, []string{"M1", "M1", "E"}, "a modeling component may repeat")
}

func TestEnumerate_Prerequisites(t *testing.T) {
	// Z requires M in its prefix; M requires nothing.
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Transform, Name: "B", Lossless: true,
			Stages: []catalog.Stage{catalog.StageTransform},
		},
		catalog.Component{
			Category: catalog.Transform, Name: "M", Lossless: true,
			Stages:        []catalog.Stage{catalog.StageModeling},
			Prerequisites: []string{"B"},
		},
		catalog.Component{
			Category: catalog.RunLength, Name: "Z", Lossless: true,
			Stages:        []catalog.Stage{catalog.StageModeling},
			Prerequisites: []string{"M"},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(4))
	require.NoError(t, err)

	got := names(res)
	assert.Contains(t, got, []string{"B", "M", "Z", "E"})
	for _, seq := range got {
		for i, name := range seq {
			switch name {
			case "M":
				assert.Contains(t, seq[:i], "B", "M needs B before it in %v", seq)
			case "Z":
				assert.Contains(t, seq[:i], "M", "Z needs M before it in %v", seq)
			}
		}
	}
	assert.Positive(t, res.Rejected, "constrained candidates must have been pruned")
}

// TestEnumerate_PrerequisiteCannotStart ensures the head of a pipeline
// faces the same prerequisite check as any later position: an empty prefix
// satisfies nothing.
func TestEnumerate_PrerequisiteCannotStart(t *testing.T) {
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Predictor, Name: "M", Lossless: true,
			Stages:        []catalog.Stage{catalog.StageModeling},
			Prerequisites: []string{"missing"},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(3))
	require.NoError(t, err)

	// "missing" is not in the catalog: permissive, never an error, but M
	// can never be placed, so nothing at all is emitted.
	assert.Empty(t, res.Pipelines)
	assert.Zero(t, res.Emitted)
}

func TestEnumerate_Incompatibility(t *testing.T) {
	// A and B are both modeling components; B refuses to share a pipeline
	// with A. Incompatibility need not be declared symmetrically.
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.ContextModel, Name: "A", Lossless: true,
			Stages: []catalog.Stage{catalog.StageModeling},
		},
		catalog.Component{
			Category: catalog.ContextModel, Name: "B", Lossless: true,
			Stages:           []catalog.Stage{catalog.StageModeling},
			IncompatibleWith: []string{"A"},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2), pipeline.WithMaxDepth(4))
	require.NoError(t, err)

	var sawA, sawB bool
	for _, seq := range names(res) {
		hasA, hasB := false, false
		for _, n := range seq {
			hasA = hasA || n == "A"
			hasB = hasB || n == "B"
		}
		assert.False(t, hasA && hasB, "A and B must never share a pipeline: %v", seq)
		sawA = sawA || hasA
		sawB = sawB || hasB
	}
	assert.True(t, sawA, "pipelines with A alone remain valid")
	assert.True(t, sawB, "pipelines with B alone remain valid")
}

func TestEnumerate_Determinism(t *testing.T) {
	cat := catalog.Default()

	first, err := pipeline.Enumerate(cat, pipeline.WithMaxDepth(3))
	require.NoError(t, err)
	second, err := pipeline.Enumerate(cat, pipeline.WithMaxDepth(3))
	require.NoError(t, err)

	require.Equal(t, first.Emitted, second.Emitted)
	assert.Equal(t, names(first), names(second),
		"identical inputs must produce identical ordered output")
}

func TestEnumerate_HookAndNoCollect(t *testing.T) {
	cat := buildFTE(t)

	var streamed []string
	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2),
		pipeline.WithMaxDepth(3),
		pipeline.WithCollect(false),
		pipeline.WithOnPipeline(func(p pipeline.Pipeline) error {
			streamed = append(streamed, p.String())
			return nil
		}),
	)
	require.NoError(t, err)

	assert.Empty(t, res.Pipelines, "collection disabled")
	assert.Equal(t, 3, res.Emitted)
	assert.Equal(t, []string{"F → T → E", "F → E", "T → E"}, streamed)
}

func TestEnumerate_HookErrorAborts(t *testing.T) {
	cat := buildFTE(t)
	boom := errors.New("boom")

	_, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2),
		pipeline.WithMaxDepth(3),
		pipeline.WithOnPipeline(func(pipeline.Pipeline) error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestEnumerate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Enumerate(catalog.Default(), pipeline.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Helpers(t *testing.T) {
	cat := buildFTE(t)

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(3), pipeline.WithMaxDepth(3))
	require.NoError(t, err)
	require.Len(t, res.Pipelines, 1)

	p := res.Pipelines[0]
	assert.Equal(t, "F → T → E", p.String())
	assert.Equal(t, []string{"F", "T", "E"}, p.Names())
	assert.True(t, p.AllLossless())
	assert.Equal(t, "O(n log n)", p.TimeComplexity())
	assert.Equal(t, "O(n)", p.SpaceComplexity())
}

func TestPipeline_AllLossless_False(t *testing.T) {
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Transform, Name: "lossy", Lossless: false,
			Stages: []catalog.Stage{catalog.StageTransform},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "E", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	require.NoError(t, err)

	res, err := pipeline.Enumerate(cat, pipeline.WithMinDepth(2), pipeline.WithMaxDepth(2))
	require.NoError(t, err)
	require.Len(t, res.Pipelines, 1)
	assert.False(t, res.Pipelines[0].AllLossless())
}
