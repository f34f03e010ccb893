// Command evenlines places evenly-spaced streamlines over a Perlin direction
// field and writes the curves as JSON for an external renderer.
//
//	evenlines run --config run.yaml --out curves.json
//	evenlines config > run.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
