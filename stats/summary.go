package stats

import (
	"fmt"
	"slices"
)

// Summary aggregates descriptive statistics of an integer sequence.
type Summary struct {
	Count  int
	Sum    int
	Min    int
	Max    int
	Mean   float64
	Median float64
}

// Of computes the statistics for values. values is not modified and need not
// be sorted. For an empty sequence Of returns ErrNoData.
//
// Sum is accumulated as an int and wraps around if the total exceeds the int
// range; Mean is derived from Sum and is only meaningful within that limit.
// Median, Min, Max and Range are unaffected.
func Of(values []int) (Summary, error) {
	if len(values) == 0 {
		T().Infof("stats: empty sequence")
		return Summary{}, ErrNoData
	}
	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values {
		s.Sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Mean = float64(s.Sum) / float64(s.Count)
	s.Median = median(values)
	T().Debugf("stats: %s", s)
	return s, nil
}

// Range returns the distance between the largest and the smallest value.
func (s Summary) Range() int {
	return s.Max - s.Min
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d sum=%d mean=%.2f median=%.2f min=%d max=%d range=%d",
		s.Count, s.Sum, s.Mean, s.Median, s.Min, s.Max, s.Range())
}

// median of a non-empty sequence. For an even count it is the average of the
// two central values.
func median(values []int) float64 {
	sorted := values
	if !slices.IsSorted(values) {
		sorted = slices.Clone(values)
		slices.Sort(sorted)
	}
	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1])/2 + float64(sorted[n/2])/2
	}
	return float64(sorted[n/2])
}
