// main is the entry point for the rategame CLI.
package main

import (
	"github.com/huangsam/rategame/cmd"
	"github.com/huangsam/rategame/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run rategame", err)
	}
}
