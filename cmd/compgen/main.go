// Command compgen generates CSV catalogs of compression-algorithm
// components, their parametric variations, valid multi-stage pipelines,
// and well-known algorithm bindings.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
