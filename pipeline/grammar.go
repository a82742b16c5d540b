package pipeline

import (
	"github.com/katalvlaran/compgen/catalog"
)

// transitions is the fixed stage-transition grammar: for each stage, the
// stages that may follow it in a valid pipeline.
//
// The table is a deliberate simplification, preserved as-is:
//   - pre-filter (0) may hand off to any later stage;
//   - a transform (1) may NOT directly precede another transform;
//   - modeling (2) may repeat or hand off to entropy coding;
//   - entropy coding (3) is terminal.
var transitions = [catalog.NumStages][]catalog.Stage{
	catalog.StagePreFilter:     {catalog.StageTransform, catalog.StageModeling, catalog.StageEntropyCoding},
	catalog.StageTransform:     {catalog.StageModeling, catalog.StageEntropyCoding},
	catalog.StageModeling:      {catalog.StageModeling, catalog.StageEntropyCoding},
	catalog.StageEntropyCoding: {},
}

// startStages lists the stages a pipeline may begin at, in the fixed order
// the enumerator tries them. Stage 3 is excluded: an entropy coder cannot
// legally chain to anything, so starting there could never reach the
// minimum depth.
var startStages = [...]catalog.Stage{
	catalog.StagePreFilter,
	catalog.StageTransform,
	catalog.StageModeling,
}

// Successors returns the stages allowed to follow s, in fixed grammar
// order. The function is total over the defined stage domain; the terminal
// stage and any out-of-domain value yield an empty slice. A fresh slice is
// returned on every call.
func Successors(s catalog.Stage) []catalog.Stage {
	if !s.Valid() {
		return nil
	}
	out := make([]catalog.Stage, len(transitions[s]))
	copy(out, transitions[s])

	return out
}

// StartStages returns the valid starting stages in enumeration order
// (pre-filter, transform, modeling). A fresh slice is returned on every call.
func StartStages() []catalog.Stage {
	out := make([]catalog.Stage, len(startStages))
	copy(out, startStages[:])

	return out
}
