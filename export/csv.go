package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/classic"
	"github.com/katalvlaran/compgen/pipeline"
)

// Column layouts are part of the output contract; reordering breaks
// downstream consumers.
var (
	componentFields = []string{
		"category", "name", "formula_latex", "formula_ascii",
		"description", "parameters", "parameter_values",
		"complexity_time", "complexity_space", "pipeline_stages",
		"is_lossless", "prerequisites",
	}
	pipelineFields = []string{
		"pipeline_id", "pipeline_name", "pipeline_components",
		"pipeline_formula", "total_time_complexity",
		"total_space_complexity", "num_stages", "all_lossless",
	}
	classicFields = []string{
		"algorithm_name", "pipeline_components", "pipeline_formula",
		"combined_description", "total_time_complexity",
		"total_space_complexity", "num_stages",
	}
	summaryFields = []string{"metric", "value", "description"}
)

// WriteComponents writes one CSV row per component variation (component ×
// Cartesian parameter expansion) in catalog order, returning the number of
// data rows written.
func WriteComponents(w io.Writer, cat *catalog.Catalog) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(componentFields); err != nil {
		return 0, fmt.Errorf("export: components header: %w", err)
	}

	count := 0
	for _, c := range cat.Components() {
		for _, v := range c.Variations() {
			row := []string{
				c.Category.String(),
				c.Name,
				c.FormulaLaTeX,
				c.FormulaASCII,
				c.Description,
				jsonStringMap(c.Parameters),
				jsonOrderedMap(v.Names, v.Params),
				c.TimeComplexity,
				c.SpaceComplexity,
				jsonStages(c.Stages),
				strconv.FormatBool(c.Lossless),
				jsonStringList(c.Prerequisites),
			}
			if err := cw.Write(row); err != nil {
				return count, fmt.Errorf("export: component %q: %w", c.Name, err)
			}
			count++
		}
	}

	cw.Flush()

	return count, cw.Error()
}

// WritePipelines enumerates pipelines over cat with the given options and
// streams one CSV row per emitted pipeline, returning the row count.
// Collection is disabled internally: rows are written from the emission
// hook, so memory stays O(MaxDepth) regardless of the search-space size.
func WritePipelines(w io.Writer, cat *catalog.Catalog, opts ...pipeline.Option) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(pipelineFields); err != nil {
		return 0, fmt.Errorf("export: pipelines header: %w", err)
	}

	id := 0
	emit := func(p pipeline.Pipeline) error {
		id++
		row := []string{
			strconv.Itoa(id),
			p.String(),
			jsonStringList(p.Names()),
			p.Formula(),
			p.TimeComplexity(),
			p.SpaceComplexity(),
			strconv.Itoa(len(p)),
			strconv.FormatBool(p.AllLossless()),
		}

		return cw.Write(row)
	}

	// Caller options first; the streaming hook and no-collect mode must win.
	opts = append(opts, pipeline.WithCollect(false), pipeline.WithOnPipeline(emit))
	if _, err := pipeline.Enumerate(cat, opts...); err != nil {
		return id, fmt.Errorf("export: pipelines: %w", err)
	}

	cw.Flush()

	return id, cw.Error()
}

// WriteClassics writes one CSV row per resolved well-known algorithm,
// returning the row count.
func WriteClassics(w io.Writer, resolved []classic.Resolved) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(classicFields); err != nil {
		return 0, fmt.Errorf("export: classics header: %w", err)
	}

	for _, r := range resolved {
		row := []string{
			r.Algorithm,
			jsonStringList(r.Names),
			r.Formula(),
			r.Description(),
			r.TimeComplexity(),
			r.SpaceComplexity(),
			strconv.Itoa(len(r.Components)),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("export: classic %q: %w", r.Algorithm, err)
		}
	}

	cw.Flush()

	return len(resolved), cw.Error()
}

// Summary aggregates generation statistics for the metadata CSV.
type Summary struct {
	Components int       // unique catalog components
	Variations int       // components × parameter variations
	Classics   int       // well-known algorithm rows
	Pipelines  int       // generated pipeline rows
	MaxDepth   int       // depth bound used for pipeline generation
	Timestamp  time.Time // generation time (UTC)
}

// WriteSummary writes the generation-summary CSV. The timestamp is taken
// from s so tests can pin it.
func WriteSummary(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryFields); err != nil {
		return fmt.Errorf("export: summary header: %w", err)
	}

	catNames := make([]string, 0, catalog.NumCategories)
	for _, c := range catalog.Categories() {
		catNames = append(catNames, c.String())
	}

	rows := [][]string{
		{"total_components", strconv.Itoa(s.Components), "Number of unique compression components"},
		{"total_component_variations", strconv.Itoa(s.Variations), "Components × parameter variations"},
		{"classic_algorithms", strconv.Itoa(s.Classics), "Well-known algorithm pipelines"},
		{"generated_pipelines", strconv.Itoa(s.Pipelines), fmt.Sprintf("Valid pipeline combinations (depth ≤ %d)", s.MaxDepth)},
		{"generation_timestamp", s.Timestamp.UTC().Format(time.RFC3339), "UTC timestamp of generation"},
		{"categories", strings.Join(catNames, ", "), "Component categories in taxonomy"},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: summary row %q: %w", row[0], err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// jsonStringList renders names as a JSON array, with nil mapping to "[]".
func jsonStringList(names []string) string {
	if names == nil {
		names = []string{}
	}
	b, _ := json.Marshal(names)

	return string(b)
}

// jsonStringMap renders m as a JSON object with sorted keys (encoding/json
// ordering), nil mapping to "{}". Deterministic for golden files.
func jsonStringMap(m map[string]string) string {
	if m == nil {
		m = map[string]string{}
	}
	b, _ := json.Marshal(m)

	return string(b)
}

// jsonStages renders a stage set as a JSON array of integers.
func jsonStages(stages []catalog.Stage) string {
	ints := make([]int, len(stages))
	for i, s := range stages {
		ints[i] = int(s)
	}
	b, _ := json.Marshal(ints)

	return string(b)
}

// jsonOrderedMap renders a parameter assignment as a JSON object whose keys
// appear in declared parameter order (encoding/json would sort them).
func jsonOrderedMap(names []string, params map[string]any) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		k, _ := json.Marshal(name)
		sb.Write(k)
		sb.WriteString(": ")
		v, err := json.Marshal(params[name])
		if err != nil {
			// Non-finite floats and such: fall back to the fmt rendering.
			v, _ = json.Marshal(fmt.Sprint(params[name]))
		}
		sb.Write(v)
	}
	sb.WriteByte('}')

	return sb.String()
}
