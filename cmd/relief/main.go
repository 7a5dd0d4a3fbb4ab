// Command relief evaluates relief-flow studies from YAML or JSON files and
// prints the per-case flows and the governing design basis.
//
// Usage:
//
//	relief evaluate study.yaml
//	relief evaluate --json study.json
//	relief sample > study.yaml
//	relief fluids
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
