// Package pipeline defines types and options for grammar-driven pipeline
// enumeration: the stage-transition grammar, the Element/Pipeline value
// types, functional options (depth bounds, terminal requirement, context
// cancellation, emission hook), and the Result collector.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/complexity"
)

var (
	// ErrNilCatalog is returned when a nil *catalog.Catalog is passed to
	// Enumerate.
	ErrNilCatalog = errors.New("pipeline: catalog is nil")

	// ErrDepthBounds indicates invalid depth bounds: MinDepth < 1 or
	// MaxDepth < MinDepth.
	ErrDepthBounds = errors.New("pipeline: invalid depth bounds")
)

// sep joins component names and formulas in rendered pipelines.
const sep = " → "

// Element is one pipeline entry: a catalog-owned component together with
// the stage label it was inserted under. A component may be stage-valid
// under several labels; the label used at a given position determines what
// the grammar allows next.
type Element struct {
	// Component references the shared, catalog-owned component. Never a copy.
	Component *catalog.Component

	// Stage is the label this component occupies at this position.
	Stage catalog.Stage
}

// Pipeline is an ordered, non-empty sequence of elements satisfying the
// stage-transition grammar and all prerequisite/incompatibility constraints.
// Emitted pipelines are defensive copies: the enumerator's backtracking
// never mutates a pipeline it has already yielded.
type Pipeline []Element

// Names returns the component names in pipeline order.
func (p Pipeline) Names() []string {
	out := make([]string, len(p))
	for i, e := range p {
		out[i] = e.Component.Name
	}

	return out
}

// String renders the pipeline as "A → B → C".
func (p Pipeline) String() string {
	return strings.Join(p.Names(), sep)
}

// Formula renders the pipeline's combined ASCII formula, joining each
// component's FormulaASCII in order.
func (p Pipeline) Formula() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.Component.FormulaASCII
	}

	return strings.Join(parts, sep)
}

// AllLossless reports whether every component in the pipeline preserves
// all information (logical AND over the Lossless flags).
func (p Pipeline) AllLossless() bool {
	for _, e := range p {
		if !e.Component.Lossless {
			return false
		}
	}

	return true
}

// TimeComplexity returns the dominant time-cost annotation of the pipeline
// via complexity.Combine.
func (p Pipeline) TimeComplexity() string {
	labels := make([]string, len(p))
	for i, e := range p {
		labels[i] = e.Component.TimeComplexity
	}

	return complexity.Combine(labels)
}

// SpaceComplexity returns the dominant space-cost annotation of the
// pipeline via complexity.Combine.
func (p Pipeline) SpaceComplexity() string {
	labels := make([]string, len(p))
	for i, e := range p {
		labels[i] = e.Component.SpaceComplexity
	}

	return complexity.Combine(labels)
}

// Default depth bounds. MaxDepth bounds the combinatorial explosion; it is
// a policy constant, not a correctness requirement, and callers may trade
// completeness for runtime via WithMaxDepth.
const (
	DefaultMinDepth = 2
	DefaultMaxDepth = 6
)

// Option configures optional behavior of Enumerate.
// Use with Enumerate(cat, opts...).
type Option func(*Options)

// Options holds configurable parameters for pipeline enumeration.
// Emission order is a pure function of catalog order, MinDepth, MaxDepth,
// and RequireEntropyCoder: two runs with identical inputs produce identical
// output sequences.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// The engine enforces no internal timeout of its own.
	Ctx context.Context

	// MinDepth is the inclusive lower bound on pipeline length. Default 2.
	MinDepth int

	// MaxDepth is the inclusive upper bound on pipeline length. Default 6.
	MaxDepth int

	// RequireEntropyCoder, when true, accepts only pipelines whose last
	// element belongs to the entropy-coder category. Completion is judged
	// by Category, independent of the stage label the element was inserted
	// under. Default true.
	RequireEntropyCoder bool

	// OnPipeline, if non-nil, is invoked with each accepted pipeline (the
	// defensive copy) at emission time. Returning an error aborts the
	// enumeration with that error.
	OnPipeline func(Pipeline) error

	// Collect controls whether accepted pipelines are retained in
	// Result.Pipelines. Disable for streaming consumption through
	// OnPipeline on large search spaces. Default true.
	Collect bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - MinDepth = 2, MaxDepth = 6
//   - RequireEntropyCoder = true
//   - No emission hook, collection enabled
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		MinDepth:            DefaultMinDepth,
		MaxDepth:            DefaultMaxDepth,
		RequireEntropyCoder: true,
		OnPipeline:          nil,
		Collect:             true,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinDepth returns an Option that sets the inclusive lower bound on
// pipeline length.
func WithMinDepth(n int) Option {
	return func(o *Options) {
		o.MinDepth = n
	}
}

// WithMaxDepth returns an Option that sets the inclusive upper bound on
// pipeline length.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithRequireEntropyCoder returns an Option that controls whether accepted
// pipelines must terminate in an entropy-coder component.
func WithRequireEntropyCoder(require bool) Option {
	return func(o *Options) {
		o.RequireEntropyCoder = require
	}
}

// WithOnPipeline returns an Option that installs fn as the emission hook.
// The hook observes every accepted pipeline in emission order.
func WithOnPipeline(fn func(Pipeline) error) Option {
	return func(o *Options) {
		o.OnPipeline = fn
	}
}

// WithCollect returns an Option that controls retention of accepted
// pipelines in Result.Pipelines.
func WithCollect(collect bool) Option {
	return func(o *Options) {
		o.Collect = collect
	}
}

// Result captures the outcome of an enumeration.
type Result struct {
	// Pipelines holds the accepted pipelines in emission order, unless
	// collection was disabled via WithCollect(false).
	Pipelines []Pipeline

	// Emitted counts accepted pipelines, collected or not.
	Emitted int

	// Rejected counts candidate placements refused by prerequisite or
	// incompatibility constraints. Diagnostic only.
	Rejected int
}
