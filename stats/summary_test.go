package stats

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSummaryOfSortedSequence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	values := []int{10, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85}
	s, err := Of(values)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("summary = %s", s)
	if s.Count != 15 || s.Sum != 745 {
		t.Errorf("expected n=15 and sum=745, have %d and %d", s.Count, s.Sum)
	}
	if s.Mean != 745.0/15 || s.Median != 50 {
		t.Errorf("expected mean=49.67 and median=50, have %.2f and %.2f", s.Mean, s.Median)
	}
	if s.Min != 10 || s.Max != 85 || s.Range() != 75 {
		t.Errorf("expected min=10, max=85, range=75, have %d, %d, %d", s.Min, s.Max, s.Range())
	}
	if s.String() != "n=15 sum=745 mean=49.67 median=50.00 min=10 max=85 range=75" {
		t.Errorf("unexpected summary string %q", s.String())
	}
}

func TestMedian(t *testing.T) {
	for _, tc := range []struct {
		values []int
		median float64
		mean   float64
	}{
		{[]int{7}, 7, 7},
		{[]int{1, 2}, 1.5, 1.5},
		{[]int{4, 1, 3, 2}, 2.5, 2.5},
		{[]int{9, -3, 5}, 5, 11.0 / 3},
		{[]int{-5, -1}, -3, -3},
	} {
		input := slices.Clone(tc.values)
		s, err := Of(input)
		if err != nil {
			t.Fatal(err)
		}
		if s.Median != tc.median || s.Mean != tc.mean {
			t.Errorf("%v: expected median=%v mean=%v, have %v and %v",
				tc.values, tc.median, tc.mean, s.Median, s.Mean)
		}
		if !slices.Equal(input, tc.values) {
			t.Errorf("%v: input sequence has been modified", tc.values)
		}
	}
}

func TestEmptySequence(t *testing.T) {
	s, err := Of(nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, have %v", err)
	}
	if s != (Summary{}) {
		t.Errorf("expected zero summary, have %+v", s)
	}
	if _, err = Of([]int{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty slice, have %v", err)
	}
}

func TestMedianOfExtremeValues(t *testing.T) {
	s, err := Of([]int{math.MaxInt, math.MaxInt - 1})
	if err != nil {
		t.Fatal(err)
	}
	if s.Median != float64(math.MaxInt) {
		t.Errorf("expected median close to MaxInt, have %v", s.Median)
	}
	s, _ = Of([]int{math.MinInt, math.MinInt + 2})
	if s.Median != float64(math.MinInt) {
		t.Errorf("expected median close to MinInt, have %v", s.Median)
	}
	if s.Range() != 2 {
		t.Errorf("expected range=2, have %d", s.Range())
	}
}
