package main

import (
	"fmt"
	"os"

	"stopwatches/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stopwatches: %v\n", err)
		os.Exit(1)
	}
}
