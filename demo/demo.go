/*
Package demo runs a fixed demonstration of binary search tree operations and
prints a transcript of it.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package demo

import (
	"fmt"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/console"
	"github.com/npillmayer/bintree/stats"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config holds the input of a demonstration run.
type Config struct {
	Dataset []int // values to insert, in order
	Targets []int // values to search for
}

// DefaultConfig returns the built-in dataset and search targets.
func DefaultConfig() Config {
	return Config{
		Dataset: []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45, 55, 65, 75, 85},
		Targets: []int{25, 75, 100, 1, 50},
	}
}

// SearchResult is the outcome of looking up a single target.
type SearchResult struct {
	Target int
	Found  bool
}

// Report collects every value computed during a run.
type Report struct {
	Height        int
	Count         int
	BalanceFactor float64 // Count/Height, for display only
	InOrder       []int
	PreOrder      []int
	PostOrder     []int
	Searches      []SearchResult
	Stats         stats.Summary
	StatsErr      error // stats.ErrNoData for an empty tree
	Released      int   // nodes visited during teardown
}

// BalanceFactor is the ratio of nodes to levels of a tree, or 0 for an empty
// tree. It is a display metric, not a structural property.
func BalanceFactor(count, height int) float64 {
	if height == 0 {
		return 0
	}
	return float64(count) / float64(height)
}

// Run performs the demonstration: build a tree from the dataset, analyze its
// structure, traverse it, search for the targets, compute statistics over the
// in-order sequence and release the tree. The transcript goes to p.
//
// The returned error is the first output error of p, if any; the report is
// complete in any case.
func Run(cfg Config, p *console.Printer) (*Report, error) {
	p.Banner("Binary Tree Demonstration", "Data Structure Analysis")
	report := &Report{}
	tree := bintree.New()
	//
	p.Phase(1, "Tree Construction and Node Insertion")
	for i, v := range cfg.Dataset {
		if !tree.Insert(v) {
			T().Infof("demo: duplicate value %d ignored", v)
		}
		p.Insertion(v, i+1, len(cfg.Dataset))
	}
	//
	p.Phase(2, "Tree Structure Analysis")
	report.Height = tree.Height()
	report.Count = tree.Len()
	report.BalanceFactor = BalanceFactor(report.Count, report.Height)
	p.Metric("Tree Height (Levels)", report.Height)
	p.Metric("Total Node Count", report.Count)
	p.Metric("Tree Balance Factor", fmt.Sprintf("%.2f", report.BalanceFactor))
	//
	p.Phase(3, "Tree Traversal Operations")
	report.InOrder = tree.InOrder()
	report.PreOrder = tree.PreOrder()
	report.PostOrder = tree.PostOrder()
	p.Traversal(bintree.InOrder.String(), report.InOrder)
	p.Traversal(bintree.PreOrder.String(), report.PreOrder)
	p.Traversal(bintree.PostOrder.String(), report.PostOrder)
	//
	p.Phase(4, "Search Operations and Validation")
	report.Searches = make([]SearchResult, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		found := tree.Contains(target)
		report.Searches = append(report.Searches, SearchResult{Target: target, Found: found})
		p.Search(target, found)
	}
	//
	p.Phase(5, "Statistical Analysis")
	report.Stats, report.StatsErr = stats.Of(report.InOrder)
	p.Statistics(report.Stats, report.StatsErr)
	//
	p.Phase(6, "Memory Management")
	report.Released = tree.Release()
	p.Line("Released %d tree nodes.", report.Released)
	//
	p.Line("")
	p.Banner("Binary Tree Demo Completed Successfully")
	if err := p.Err(); err != nil {
		T().Errorf("demo: cannot write transcript: %v", err)
		return report, err
	}
	return report, nil
}
