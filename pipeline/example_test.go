package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/pipeline"
)

// ExampleEnumerate builds a tiny three-component catalog and enumerates all
// coder-terminated pipelines of length 2..3, demonstrating the deterministic
// depth-first emission order.
func ExampleEnumerate() {
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Filter, Name: "Delta Filter", Lossless: true,
			Stages: []catalog.Stage{catalog.StagePreFilter},
		},
		catalog.Component{
			Category: catalog.Transform, Name: "BWT", Lossless: true,
			Stages: []catalog.Stage{catalog.StageTransform},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "Huffman", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	if err != nil {
		fmt.Println("catalog:", err)
		return
	}

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMinDepth(2),
		pipeline.WithMaxDepth(3),
	)
	if err != nil {
		fmt.Println("enumerate:", err)
		return
	}

	for _, p := range res.Pipelines {
		fmt.Println(p)
	}

	// Output:
	// Delta Filter → BWT → Huffman
	// Delta Filter → Huffman
	// BWT → Huffman
}

// ExampleEnumerate_streaming shows hook-based streaming consumption without
// retaining results, the memory-flat mode for large search spaces.
func ExampleEnumerate_streaming() {
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Dictionary, Name: "LZ77", Lossless: true,
			Stages: []catalog.Stage{catalog.StageModeling},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "rANS", Lossless: true,
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	if err != nil {
		fmt.Println("catalog:", err)
		return
	}

	res, err := pipeline.Enumerate(cat,
		pipeline.WithMaxDepth(4),
		pipeline.WithCollect(false),
		pipeline.WithOnPipeline(func(p pipeline.Pipeline) error {
			fmt.Println(p)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("enumerate:", err)
		return
	}

	fmt.Println("emitted:", res.Emitted, "collected:", len(res.Pipelines))

	// Output:
	// LZ77 → LZ77 → LZ77 → rANS
	// LZ77 → LZ77 → rANS
	// LZ77 → rANS
	// emitted: 3 collected: 0
}

// ExamplePipeline_TimeComplexity aggregates per-component cost labels into
// the pipeline's dominant label.
func ExamplePipeline_TimeComplexity() {
	cat, err := catalog.New(catalog.WithComponents(
		catalog.Component{
			Category: catalog.Transform, Name: "BWT", Lossless: true,
			TimeComplexity: "O(n log n)", SpaceComplexity: "O(n)",
			Stages: []catalog.Stage{catalog.StageTransform},
		},
		catalog.Component{
			Category: catalog.EntropyCoder, Name: "Arithmetic", Lossless: true,
			TimeComplexity: "O(n)", SpaceComplexity: "O(1)",
			Stages: []catalog.Stage{catalog.StageEntropyCoding},
		},
	))
	if err != nil {
		fmt.Println("catalog:", err)
		return
	}

	res, err := pipeline.Enumerate(cat, pipeline.WithMaxDepth(2))
	if err != nil {
		fmt.Println("enumerate:", err)
		return
	}

	p := res.Pipelines[0]
	fmt.Println(p)
	fmt.Println("time: ", p.TimeComplexity())
	fmt.Println("space:", p.SpaceComplexity())

	// Output:
	// BWT → Arithmetic
	// time:  O(n log n)
	// space: O(n)
}
