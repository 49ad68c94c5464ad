// Command gardenplot prices garden plots read from a text map.
package main

import (
	"os"

	"github.com/katalvlaran/gardenplot/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
