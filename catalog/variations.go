package catalog

// Variation pairs a component with one concrete parameter assignment drawn
// from the Cartesian product of its declared parameter ranges.
type Variation struct {
	// Component is the catalog-owned component this variation configures.
	Component *Component

	// Names lists the assigned parameter names in declared order.
	Names []string

	// Params maps each parameter name to its chosen value.
	Params map[string]any
}

// NumVariations returns the size of the component's variation space:
// the product of its parameter-range sizes, or 1 when no ranges are
// declared (the single empty configuration).
func (c *Component) NumVariations() int {
	n := 1
	for _, pr := range c.ParamRanges {
		n *= len(pr.Values)
	}

	return n
}

// Variations expands the full Cartesian product of the component's declared
// parameter ranges. A component with no ranges yields exactly one Variation
// with an empty configuration.
//
// Ordering contract: standard odometer order — the last-declared parameter
// varies fastest — so the sequence is deterministic and reproducible.
// The expansion is a pure function of the component: every call builds a
// fresh slice, so it is finite and restartable with no shared cursor.
//
// Complexity: O(Π|range_i| · k) time and memory for k declared parameters.
func (c *Component) Variations() []Variation {
	k := len(c.ParamRanges)
	if k == 0 {
		return []Variation{{
			Component: c,
			Names:     nil,
			Params:    map[string]any{},
		}}
	}

	names := make([]string, k)
	for i, pr := range c.ParamRanges {
		names[i] = pr.Name
	}

	out := make([]Variation, 0, c.NumVariations())

	// Odometer over range indices: idx[k-1] (last parameter) ticks fastest.
	idx := make([]int, k)
	for {
		// 1. Materialize the current combination.
		params := make(map[string]any, k)
		for i, pr := range c.ParamRanges {
			params[pr.Name] = pr.Values[idx[i]]
		}
		out = append(out, Variation{Component: c, Names: names, Params: params})

		// 2. Advance the odometer; carry leftwards until a digit fits.
		pos := k - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(c.ParamRanges[pos].Values) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
