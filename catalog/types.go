// Package catalog defines the core Component, Category, and Stage types,
// sentinel errors, and the immutable Catalog container used by the
// enumeration packages of github.com/katalvlaran/compgen.
package catalog

import (
	"errors"
)

// Sentinel errors for catalog construction.
var (
	// ErrEmptyName indicates a component with an empty Name.
	ErrEmptyName = errors.New("catalog: component name is empty")

	// ErrDuplicateName indicates two components sharing the same Name.
	// Names must be globally unique within a catalog instance.
	ErrDuplicateName = errors.New("catalog: duplicate component name")

	// ErrNoStages indicates a component declaring an empty valid-stage set.
	ErrNoStages = errors.New("catalog: component declares no pipeline stages")

	// ErrInvalidStage indicates a stage label outside the defined domain
	// [StagePreFilter, StageEntropyCoding].
	ErrInvalidStage = errors.New("catalog: pipeline stage out of range")

	// ErrInvalidCategory indicates a category value outside the closed
	// enumeration.
	ErrInvalidCategory = errors.New("catalog: category out of range")

	// ErrEmptyParamRange indicates a declared parameter whose candidate
	// value list is empty. A parameter range must offer at least one value.
	ErrEmptyParamRange = errors.New("catalog: parameter range has no candidate values")

	// ErrDuplicateParam indicates a component declaring the same parameter
	// name twice in its range list.
	ErrDuplicateParam = errors.New("catalog: duplicate parameter name")
)

// Category classifies a component by its functional role in a compression
// algorithm. The enumeration is closed: downstream grouping and reporting
// rely on the fixed order below, and the grammar never consults it —
// pipeline position is governed by Stage, not Category.
type Category int

const (
	// EntropyMeasure - information-theoretic foundations (Shannon, Rényi, ...).
	EntropyMeasure Category = iota
	// Transform - reversible data transformations (BWT, delta, wavelet, ...).
	Transform
	// Predictor - statistical modeling / prediction (Markov, PPM, CTW, ...).
	Predictor
	// Dictionary - dictionary-based methods (the LZ family).
	Dictionary
	// EntropyCoder - final bit-level encoding (Huffman, arithmetic, ANS, ...).
	EntropyCoder
	// RunLength - run-length encoding variants.
	RunLength
	// ContextModel - context mixing and modeling.
	ContextModel
	// Filter - pre-/post-processing filters (x86, ARM, color space, ...).
	Filter
	// IntegerCoder - universal integer codes (Elias, Golomb, Rice, ...).
	IntegerCoder

	// NumCategories is the count of defined categories; used to validate
	// Category values and to size per-category indices.
	NumCategories = int(IntegerCoder) + 1
)

// categoryNames holds the stable, export-facing names of each Category,
// indexed by Category value. The spelling is part of the output contract.
var categoryNames = [NumCategories]string{
	"ENTROPY_MEASURE",
	"TRANSFORM",
	"PREDICTOR",
	"DICTIONARY",
	"ENTROPY_CODER",
	"RUN_LENGTH",
	"CONTEXT_MODEL",
	"FILTER",
	"INTEGER_CODER",
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= EntropyMeasure && int(c) < NumCategories
}

// String returns the stable name of the category, or "UNKNOWN" for values
// outside the defined enumeration.
func (c Category) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}

	return categoryNames[c]
}

// Categories returns all defined categories in fixed enumeration order.
// A fresh slice is returned on every call; callers may mutate it freely.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}

	return out
}

// Stage is an abstract position label within a compression pipeline.
// It is a classifier, not an entity: it indexes components and drives the
// stage-transition grammar in package pipeline.
type Stage int

const (
	// StagePreFilter (0) - pre-processing: entropy measures & filters.
	StagePreFilter Stage = iota
	// StageTransform (1) - reversible transforms.
	StageTransform
	// StageModeling (2) - modeling / prediction; may repeat.
	StageModeling
	// StageEntropyCoding (3) - terminal bit-level encoding.
	StageEntropyCoding

	// NumStages is the count of defined stages; the valid domain is
	// [StagePreFilter, StageEntropyCoding].
	NumStages = int(StageEntropyCoding) + 1
)

// stageNames holds human-readable names indexed by Stage value.
var stageNames = [NumStages]string{
	"pre-filter",
	"transform",
	"modeling",
	"entropy-coding",
}

// Valid reports whether s lies in the defined stage domain.
func (s Stage) Valid() bool {
	return s >= StagePreFilter && int(s) < NumStages
}

// String returns the human-readable stage name, or "unknown" for values
// outside the defined domain.
func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return stageNames[s]
}

// ParamRange declares one tunable parameter of a component together with
// its ordered candidate values. Declaration order matters: it fixes both
// the order of parameters inside every emitted Variation and the odometer
// order of the Cartesian expansion (last-declared parameter varies fastest).
type ParamRange struct {
	// Name is the parameter identifier, unique within the component.
	Name string

	// Values lists the candidate values in declared order. Must be non-empty;
	// an empty list is a configuration error rejected at catalog build time.
	Values []any
}

// Component is an immutable compression-algorithm building block.
//
// Components are constructed once at catalog build time and never mutated
// afterwards. Pipelines reference catalog-owned components; they are never
// copied, so many pipelines may share the same *Component.
type Component struct {
	// Category is the functional classification of the component.
	Category Category

	// Name uniquely identifies the component within its catalog.
	Name string

	// FormulaLaTeX is the mathematical formula in LaTeX notation.
	FormulaLaTeX string

	// FormulaASCII is a plain-text rendering of the formula.
	FormulaASCII string

	// Description explains what the component does.
	Description string

	// Parameters maps parameter names to human-readable descriptions.
	// Purely documentary; the generative machinery reads ParamRanges.
	Parameters map[string]string

	// ParamRanges declares the tunable parameters and their candidate
	// values, in order. May be empty, in which case the component has
	// exactly one Variation with an empty configuration.
	ParamRanges []ParamRange

	// TimeComplexity and SpaceComplexity are free-form asymptotic labels.
	// They are descriptive annotations, not measured costs.
	TimeComplexity  string
	SpaceComplexity string

	// Stages is the non-empty set of pipeline stages the component may
	// occupy. Every entry must lie in [StagePreFilter, StageEntropyCoding].
	Stages []Stage

	// Lossless reports whether the component preserves all information.
	Lossless bool

	// Prerequisites lists component names that must already appear earlier
	// in any pipeline containing this component. Names absent from the
	// catalog are permitted; they simply can never be satisfied.
	Prerequisites []string

	// IncompatibleWith lists component names that must not appear anywhere
	// in the same pipeline. Checked prospectively at insertion time.
	IncompatibleWith []string
}

// HasStage reports whether the component may occupy stage s.
func (c *Component) HasStage(s Stage) bool {
	for _, st := range c.Stages {
		if st == s {
			return true
		}
	}

	return false
}
