/*
Package console renders the results of tree operations for a terminal.

Everything in here is presentation only: progress bars, traversal listings,
search results and statistics blocks. Colors are used if the output is an
interactive terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
