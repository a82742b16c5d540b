package pipeline

import (
	"fmt"

	"github.com/katalvlaran/compgen/catalog"
)

// walker encapsulates the backtracking state of one enumeration.
// Each Enumerate call owns its walker exclusively; the shared catalog is
// read-only, so concurrent independent enumerations need no locking.
type walker struct {
	cat   *catalog.Catalog // shared, immutable component source
	opts  Options          // resolved options
	res   *Result          // output collector
	stack Pipeline         // current partial pipeline (append/pop discipline)
	names map[string]int   // name → occurrence count in stack
}

// Enumerate performs a bounded depth-first search over the stage-transition
// grammar, yielding every component sequence that respects the grammar,
// satisfies each component's prerequisite and incompatibility constraints
// against the partial pipeline at insertion time, and falls within the
// configured depth bounds.
//
// A partial pipeline of length ≥ MinDepth is emitted as soon as it
// satisfies the terminal rule, and the search still extends it further:
// completion is not terminal, so shared prefixes yield pipelines of several
// lengths. Search stops extending at MaxDepth. Starting stages are tried
// in the fixed order pre-filter, transform, modeling, with candidates in
// catalog order, making emission order fully deterministic.
//
// Constraint names absent from the catalog are not errors: an unknown
// prerequisite can never be satisfied and an unknown incompatibility can
// never collide. Such components silently contribute no (or unconstrained)
// pipelines.
//
// Errors:
//
//   - ErrNilCatalog         cat is nil
//   - ErrDepthBounds        MinDepth < 1 or MaxDepth < MinDepth
//   - context cancellation  propagated from Options.Ctx
//   - hook errors           propagated from OnPipeline
//
// Complexity: output-sensitive; worst case O(b^MaxDepth) for branching
// factor b = max components per stage. Memory O(MaxDepth) for the stack
// plus collected results.
func Enumerate(cat *catalog.Catalog, opts ...Option) (*Result, error) {
	// 1. Validate input catalog.
	if cat == nil {
		return nil, ErrNilCatalog
	}

	// 2. Apply options over deterministic defaults.
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	// 3. Validate depth bounds.
	if eopts.MinDepth < 1 || eopts.MaxDepth < eopts.MinDepth {
		return nil, fmt.Errorf("Enumerate: min=%d max=%d: %w", eopts.MinDepth, eopts.MaxDepth, ErrDepthBounds)
	}

	res := &Result{}
	w := &walker{
		cat:   cat,
		opts:  eopts,
		res:   res,
		stack: make(Pipeline, 0, eopts.MaxDepth),
		names: make(map[string]int),
	}

	// 4. Start the search once per component of each starting stage.
	//    The head faces the same admissibility check against the (empty)
	//    prefix: a component with prerequisites can never open a pipeline.
	for _, start := range startStages {
		for _, comp := range cat.ByStage(start) {
			if !w.admissible(comp) {
				res.Rejected++
				continue
			}
			w.push(comp, start)
			err := w.extend(start)
			w.pop()
			if err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// extend recursively grows the current partial pipeline from currentStage,
// emitting acceptable completions along the way. Standard backtracking:
// append, recurse, pop — partial state never leaks into sibling branches.
func (w *walker) extend(currentStage catalog.Stage) error {
	// 1. Cancellation check, once per node.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Candidate completion: emit when long enough and terminal-valid.
	if len(w.stack) >= w.opts.MinDepth {
		last := w.stack[len(w.stack)-1]
		if !w.opts.RequireEntropyCoder || last.Component.Category == catalog.EntropyCoder {
			if err := w.emit(); err != nil {
				return err
			}
		}
	}

	// 3. Depth bound: stop extending, regardless of whether step 2 emitted.
	if len(w.stack) >= w.opts.MaxDepth {
		return nil
	}

	// 4. Try every candidate of every allowed successor stage, in fixed
	//    grammar order then catalog order. A rejected candidate never
	//    short-circuits its siblings.
	for _, nextStage := range transitions[currentStage] {
		for _, cand := range w.cat.ByStage(nextStage) {
			if !w.admissible(cand) {
				w.res.Rejected++
				continue
			}

			w.push(cand, nextStage)
			err := w.extend(nextStage)
			w.pop()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// admissible checks cand's composition constraints against the current
// partial pipeline: every prerequisite must already be present, and no
// incompatibility may exist in either direction. Incompatibility need not
// be declared symmetrically, so both cand's list against the prefix and
// each prefix entry's list against cand are consulted. The check is
// prospective only: it runs at insertion time against the partial pipeline
// and is never re-evaluated for components that already passed.
func (w *walker) admissible(cand *catalog.Component) bool {
	for _, p := range cand.Prerequisites {
		if w.names[p] == 0 {
			return false
		}
	}
	for _, inc := range cand.IncompatibleWith {
		if w.names[inc] > 0 {
			return false
		}
	}
	for _, e := range w.stack {
		for _, inc := range e.Component.IncompatibleWith {
			if inc == cand.Name {
				return false
			}
		}
	}

	return true
}

// emit records the current partial pipeline as an accepted result,
// materializing a defensive copy so continued backtracking cannot corrupt
// it, and runs the OnPipeline hook if installed.
func (w *walker) emit() error {
	cp := make(Pipeline, len(w.stack))
	copy(cp, w.stack)

	if w.opts.OnPipeline != nil {
		if err := w.opts.OnPipeline(cp); err != nil {
			return fmt.Errorf("pipeline: OnPipeline hook: %w", err)
		}
	}

	if w.opts.Collect {
		w.res.Pipelines = append(w.res.Pipelines, cp)
	}
	w.res.Emitted++

	return nil
}

// push appends comp (under stage) to the partial pipeline.
func (w *walker) push(comp *catalog.Component, stage catalog.Stage) {
	w.stack = append(w.stack, Element{Component: comp, Stage: stage})
	w.names[comp.Name]++
}

// pop restores the partial pipeline to its state before the matching push.
func (w *walker) pop() {
	last := w.stack[len(w.stack)-1]
	w.names[last.Component.Name]--
	w.stack = w.stack[:len(w.stack)-1]
}
