/*
Package stats computes descriptive statistics over sequences of integers,
usually the in-order traversal of a binary search tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stats

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoData signals that statistics have been requested for an empty sequence.
var ErrNoData = errors.New("stats: no data")
