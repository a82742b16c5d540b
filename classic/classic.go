// Package classic binds well-known compression algorithm names to explicit
// ordered component sequences from a catalog.
//
// The binding table is pure data — it is passed through, never produced by
// the enumerator — and resolution is deliberately permissive: a bound name
// absent from the catalog is skipped rather than failing the whole binding,
// so the table tolerates catalog evolution.
package classic

import (
	"strings"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/complexity"
)

// sep joins component formulas in rendered classic pipelines.
const sep = " → "

// Binding names a well-known algorithm and the ordered catalog component
// names it is built from.
type Binding struct {
	// Algorithm is the common name of the compression algorithm.
	Algorithm string

	// Components lists catalog component names in pipeline order.
	Components []string
}

// Known returns the fixed table of well-known algorithm bindings.
// A fresh slice is returned on every call.
func Known() []Binding {
	return []Binding{
		{Algorithm: "DEFLATE", Components: []string{"LZ77 (Sliding Window)", "Canonical Huffman"}},
		{Algorithm: "bzip2", Components: []string{"Burrows-Wheeler Transform", "Move-to-Front Transform", "Zero RLE", "Huffman Coding"}},
		{Algorithm: "LZMA/7z", Components: []string{"Delta Encoding", "LZMA (Lempel-Ziv-Markov chain)"}},
		{Algorithm: "Zstandard", Components: []string{"Zstandard (ZSTD)"}},
		{Algorithm: "PPMd", Components: []string{"Prediction by Partial Matching (PPM)", "Range Coding"}},
		{Algorithm: "PAQ", Components: []string{"Context Mixing (Logistic/PAQ)", "Arithmetic Coding"}},
		{Algorithm: "LZ4", Components: []string{"LZ4 (Fast LZ)"}},
		{Algorithm: "FLAC", Components: []string{"Linear Predictor", "Rice Code"}},
		{Algorithm: "PNG", Components: []string{"PNG Predictors (Paeth)", "Delta Encoding", "LZ77 (Sliding Window)", "Canonical Huffman"}},
		{Algorithm: "CTW", Components: []string{"Context Tree Weighting (CTW)", "Arithmetic Coding"}},
	}
}

// Resolved is a binding resolved against a live catalog: the declared name
// list plus the component references that were actually found.
type Resolved struct {
	// Algorithm is the common name from the binding.
	Algorithm string

	// Names is the declared component-name list, including names that did
	// not resolve. Preserved for reporting.
	Names []string

	// Components holds the resolved catalog components, in declared order,
	// with unresolved names omitted.
	Components []*catalog.Component
}

// Resolve looks each binding's component names up in cat, in order.
// Names absent from the catalog are skipped — resolution never fails —
// and a binding resolving to zero components is dropped entirely.
// Output order follows the input binding order.
func Resolve(cat *catalog.Catalog, bindings []Binding) []Resolved {
	out := make([]Resolved, 0, len(bindings))
	for _, b := range bindings {
		comps := make([]*catalog.Component, 0, len(b.Components))
		for _, name := range b.Components {
			if c, ok := cat.Lookup(name); ok {
				comps = append(comps, c)
			}
		}
		if len(comps) == 0 {
			continue
		}

		out = append(out, Resolved{
			Algorithm:  b.Algorithm,
			Names:      append([]string(nil), b.Components...),
			Components: comps,
		})
	}

	return out
}

// Formula renders the combined ASCII formula of the resolved components.
func (r Resolved) Formula() string {
	parts := make([]string, len(r.Components))
	for i, c := range r.Components {
		parts[i] = c.FormulaASCII
	}

	return strings.Join(parts, sep)
}

// Description joins the resolved components' descriptions with "; ".
func (r Resolved) Description() string {
	parts := make([]string, len(r.Components))
	for i, c := range r.Components {
		parts[i] = c.Description
	}

	return strings.Join(parts, "; ")
}

// TimeComplexity returns the dominant time-cost annotation of the resolved
// components via complexity.Combine.
func (r Resolved) TimeComplexity() string {
	labels := make([]string, len(r.Components))
	for i, c := range r.Components {
		labels[i] = c.TimeComplexity
	}

	return complexity.Combine(labels)
}

// SpaceComplexity returns the dominant space-cost annotation of the
// resolved components via complexity.Combine.
func (r Resolved) SpaceComplexity() string {
	labels := make([]string, len(r.Components))
	for i, c := range r.Components {
		labels[i] = c.SpaceComplexity
	}

	return complexity.Combine(labels)
}
