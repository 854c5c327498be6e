// SPDX-License-Identifier: MIT

// Command cplxdemo prints a walk through the cplx algebra: the built-in tour
// or a scenario loaded from a TOML/YAML file.
package main

import (
	"os"

	"github.com/katalvlaran/lvcplx/cmd/cplxdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
