package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/compgen/catalog"
)

// ExampleComponent_Variations expands the parametric "dialects" of a
// dictionary component: the Cartesian product of its declared ranges,
// with the last-declared parameter ticking fastest.
func ExampleComponent_Variations() {
	cat := catalog.Default()
	lzw, _ := cat.Lookup("LZW (Lempel-Ziv-Welch)")

	for _, v := range lzw.Variations() {
		fmt.Println(v.Component.Name, v.Params["max_bits"])
	}
	// Output:
	// LZW (Lempel-Ziv-Welch) 12
	// LZW (Lempel-Ziv-Welch) 14
	// LZW (Lempel-Ziv-Welch) 16
}

// ExampleCatalog_ByStage lists the components able to open a pipeline at
// the pre-filter stage.
func ExampleCatalog_ByStage() {
	cat := catalog.Default()

	for _, c := range cat.ByStage(catalog.StagePreFilter)[:3] {
		fmt.Printf("%s (%s)\n", c.Name, c.Category)
	}
	// Output:
	// Shannon Entropy (ENTROPY_MEASURE)
	// Conditional Entropy (ENTROPY_MEASURE)
	// Mutual Information (ENTROPY_MEASURE)
}
