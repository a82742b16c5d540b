package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/pipeline"
)

func TestSuccessors_Table(t *testing.T) {
	assert.Equal(t,
		[]catalog.Stage{catalog.StageTransform, catalog.StageModeling, catalog.StageEntropyCoding},
		pipeline.Successors(catalog.StagePreFilter))

	// A transform may not directly precede another transform.
	assert.Equal(t,
		[]catalog.Stage{catalog.StageModeling, catalog.StageEntropyCoding},
		pipeline.Successors(catalog.StageTransform))

	// Modeling may repeat or hand off to entropy coding.
	assert.Equal(t,
		[]catalog.Stage{catalog.StageModeling, catalog.StageEntropyCoding},
		pipeline.Successors(catalog.StageModeling))

	// Entropy coding is terminal.
	assert.Empty(t, pipeline.Successors(catalog.StageEntropyCoding))
}

func TestSuccessors_OutOfDomain(t *testing.T) {
	assert.Nil(t, pipeline.Successors(catalog.Stage(-1)))
	assert.Nil(t, pipeline.Successors(catalog.Stage(4)))
}

func TestSuccessors_FreshSlice(t *testing.T) {
	first := pipeline.Successors(catalog.StagePreFilter)
	first[0] = catalog.StageEntropyCoding

	// Mutating a returned slice must not poison the grammar table.
	assert.Equal(t, catalog.StageTransform,
		pipeline.Successors(catalog.StagePreFilter)[0])
}

func TestStartStages(t *testing.T) {
	assert.Equal(t,
		[]catalog.Stage{catalog.StagePreFilter, catalog.StageTransform, catalog.StageModeling},
		pipeline.StartStages())
}
