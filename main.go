// main is the entry point for the churnscope CLI.
package main

import (
	"github.com/huangsam/churnscope/cmd"
	"github.com/huangsam/churnscope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run churnscope", err)
	}
}
