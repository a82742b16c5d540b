package catalog

import (
	"fmt"
)

// Catalog is the immutable, ordered set of components available to the
// enumeration machinery. It is built once via New (or Default) and treated
// as read-only for the remainder of the process: no operation adds, removes,
// or mutates entries after construction.
//
// Ordering contract: Components() preserves declaration order, and the
// per-stage and per-category views preserve the relative declaration order
// of their members. The pipeline enumerator inherits its output order from
// these views, so catalog order is part of the determinism guarantee.
//
// Concurrency: a built Catalog holds no mutable state, so any number of
// goroutines may share one instance without synchronization.
type Catalog struct {
	components []*Component             // declaration order
	byName     map[string]*Component    // unique-name index
	byStage    [NumStages][]*Component  // stage → ordered members
	byCategory [NumCategories][]*Component // category → ordered members
}

// Option configures catalog construction. Use with New(opts...).
type Option func(*config)

// config collects the components to build from. Options apply in order;
// WithComponents calls accumulate.
type config struct {
	components []Component
}

// WithComponents appends cs to the set of components the catalog is built
// from. Declaration order is the order of WithComponents calls and the
// order within each call.
func WithComponents(cs ...Component) Option {
	return func(cfg *config) {
		cfg.components = append(cfg.components, cs...)
	}
}

// New builds a Catalog from the components supplied via options, validating
// every entry. Validation failures are configuration errors: they are fatal
// and reported immediately so enumeration never begins on bad data.
//
// Errors (branch with errors.Is):
//
//   - ErrEmptyName        component with empty Name
//   - ErrDuplicateName    Name collides with an earlier component
//   - ErrInvalidCategory  category outside the closed enumeration
//   - ErrNoStages         empty valid-stage set
//   - ErrInvalidStage     stage outside [StagePreFilter, StageEntropyCoding]
//   - ErrEmptyParamRange  declared parameter with no candidate values
//   - ErrDuplicateParam   parameter name declared twice
//
// Complexity: O(C·(S+P)) for C components with S stages and P parameters.
func New(opts ...Option) (*Catalog, error) {
	// 1. Resolve options in order (last-wins is irrelevant: appends only).
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	cat := &Catalog{
		components: make([]*Component, 0, len(cfg.components)),
		byName:     make(map[string]*Component, len(cfg.components)),
	}

	// 2. Validate and index each component in declaration order.
	for i := range cfg.components {
		// Copy once into catalog ownership; callers keep no alias.
		c := cfg.components[i]
		if err := validate(&c); err != nil {
			return nil, fmt.Errorf("New: component %d (%q): %w", i, c.Name, err)
		}
		if _, exists := cat.byName[c.Name]; exists {
			return nil, fmt.Errorf("New: component %d (%q): %w", i, c.Name, ErrDuplicateName)
		}

		cat.components = append(cat.components, &c)
		cat.byName[c.Name] = &c
		cat.byCategory[c.Category] = append(cat.byCategory[c.Category], &c)
		for _, s := range c.Stages {
			cat.byStage[s] = append(cat.byStage[s], &c)
		}
	}

	return cat, nil
}

// validate checks a single component's structural invariants.
func validate(c *Component) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if !c.Category.Valid() {
		return fmt.Errorf("category %d: %w", int(c.Category), ErrInvalidCategory)
	}
	if len(c.Stages) == 0 {
		return ErrNoStages
	}
	for _, s := range c.Stages {
		if !s.Valid() {
			return fmt.Errorf("stage %d: %w", int(s), ErrInvalidStage)
		}
	}

	seen := make(map[string]struct{}, len(c.ParamRanges))
	for _, pr := range c.ParamRanges {
		if pr.Name == "" {
			return fmt.Errorf("parameter: %w", ErrEmptyName)
		}
		if _, dup := seen[pr.Name]; dup {
			return fmt.Errorf("parameter %q: %w", pr.Name, ErrDuplicateParam)
		}
		seen[pr.Name] = struct{}{}
		if len(pr.Values) == 0 {
			return fmt.Errorf("parameter %q: %w", pr.Name, ErrEmptyParamRange)
		}
	}

	return nil
}

// Len returns the number of components in the catalog.
func (cat *Catalog) Len() int { return len(cat.components) }

// Components returns the full component list in declaration order.
// The returned slice is fresh; the pointed-to components are shared and
// must be treated as read-only.
func (cat *Catalog) Components() []*Component {
	out := make([]*Component, len(cat.components))
	copy(out, cat.components)

	return out
}

// ByStage returns the components valid at stage s, in declaration order.
// Stages outside the defined domain yield an empty slice.
func (cat *Catalog) ByStage(s Stage) []*Component {
	if !s.Valid() {
		return nil
	}
	out := make([]*Component, len(cat.byStage[s]))
	copy(out, cat.byStage[s])

	return out
}

// ByCategory returns the components of category c, in declaration order.
// Categories outside the defined enumeration yield an empty slice.
func (cat *Catalog) ByCategory(c Category) []*Component {
	if !c.Valid() {
		return nil
	}
	out := make([]*Component, len(cat.byCategory[c]))
	copy(out, cat.byCategory[c])

	return out
}

// Lookup returns the component with the given name, or (nil, false) when
// the name is absent from the catalog.
func (cat *Catalog) Lookup(name string) (*Component, bool) {
	c, ok := cat.byName[name]

	return c, ok
}
