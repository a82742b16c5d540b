package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/classic"
	"github.com/katalvlaran/compgen/pipeline"
)

// ErrNilCatalog is returned when a nil catalog is passed to Dir.
var ErrNilCatalog = errors.New("export: catalog is nil")

// Output file names within the export directory.
const (
	ComponentsFile = "compression_components.csv"
	ClassicsFile   = "classic_algorithms.csv"
	PipelinesFile  = "pipeline_combinations.csv"
	SummaryFile    = "generation_summary.csv"
)

// Config controls a directory export.
type Config struct {
	// IncludePipelines enables the (potentially large) pipeline CSV.
	IncludePipelines bool

	// MinDepth / MaxDepth bound pipeline enumeration.
	MinDepth int
	MaxDepth int

	// RequireEntropyCoder restricts pipelines to those ending in an
	// entropy coder.
	RequireEntropyCoder bool

	// Now supplies the summary timestamp; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig mirrors the defaults of the command-line surface:
// pipelines included, depth 2..4, terminal coder required.
func DefaultConfig() Config {
	return Config{
		IncludePipelines:    true,
		MinDepth:            pipeline.DefaultMinDepth,
		MaxDepth:            4,
		RequireEntropyCoder: true,
		Now:                 nil,
	}
}

// Dir writes the full CSV bundle (components, classics, optionally
// pipelines, and a summary) into dir, creating it if needed. It returns
// the map from output kind ("components", "classics", "pipelines",
// "summary") to the written file path.
func Dir(dir string, cat *catalog.Catalog, cfg Config) (map[string]string, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create dir: %w", err)
	}

	outputs := make(map[string]string, 4)

	// 1. Components with variations.
	componentsPath := filepath.Join(dir, ComponentsFile)
	variations, err := writeFile(componentsPath, func(f *os.File) (int, error) {
		return WriteComponents(f, cat)
	})
	if err != nil {
		return nil, err
	}
	outputs["components"] = componentsPath

	// 2. Classic, well-known algorithms.
	classicsPath := filepath.Join(dir, ClassicsFile)
	resolved := classic.Resolve(cat, classic.Known())
	classics, err := writeFile(classicsPath, func(f *os.File) (int, error) {
		return WriteClassics(f, resolved)
	})
	if err != nil {
		return nil, err
	}
	outputs["classics"] = classicsPath

	// 3. Generated pipeline combinations (optional).
	pipelines := 0
	if cfg.IncludePipelines {
		pipelinesPath := filepath.Join(dir, PipelinesFile)
		pipelines, err = writeFile(pipelinesPath, func(f *os.File) (int, error) {
			return WritePipelines(f, cat,
				pipeline.WithMinDepth(cfg.MinDepth),
				pipeline.WithMaxDepth(cfg.MaxDepth),
				pipeline.WithRequireEntropyCoder(cfg.RequireEntropyCoder),
			)
		})
		if err != nil {
			return nil, err
		}
		outputs["pipelines"] = pipelinesPath
	}

	// 4. Summary metadata.
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	summaryPath := filepath.Join(dir, SummaryFile)
	_, err = writeFile(summaryPath, func(f *os.File) (int, error) {
		return 0, WriteSummary(f, Summary{
			Components: cat.Len(),
			Variations: variations,
			Classics:   classics,
			Pipelines:  pipelines,
			MaxDepth:   cfg.MaxDepth,
			Timestamp:  now(),
		})
	})
	if err != nil {
		return nil, err
	}
	outputs["summary"] = summaryPath

	return outputs, nil
}

// writeFile creates path, runs fn against it, and closes it, favoring the
// write error over the close error.
func writeFile(path string, fn func(*os.File) (int, error)) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: create %s: %w", path, err)
	}

	n, err := fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("export: write %s: %w", path, err)
	}

	return n, nil
}
