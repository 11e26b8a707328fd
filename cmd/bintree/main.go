// Command bintree demonstrates binary search tree operations on a built-in
// dataset and prints the results to stdout.
//
// It takes no arguments and always exits with status 0.
package main

import (
	"os"

	"github.com/npillmayer/bintree/console"
	"github.com/npillmayer/bintree/demo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	printer := console.NewPrinter(os.Stdout, console.ConfigFromTerminal())
	if _, err := demo.Run(demo.DefaultConfig(), printer); err != nil {
		gtrace.CoreTracer.Errorf("bintree: %v", err)
	}
}
