// internal/metrics/reconcile.go
package metrics

import "sort"

// offsetAccumulator gathers the worker samples seen at one time offset.
type offsetAccumulator struct {
	count int
	sum   float64
}

// Reconcile merges per-worker series for one metric kind into a single
// combined series on the union of all offsets (outer join: a worker that
// stopped logging early must not truncate the combined series). With
// CombineSum, workers missing a sample at an offset contribute 0; with
// CombineAverage, only the workers present at that offset divide the sum.
// The result is sorted by offset ascending. No worker data at all yields an
// empty series, which downstream renders as an omitted chart.
func Reconcile(workerSeries []TimeSeries, mode CombineMode) TimeSeries {
	acc := make(map[float64]*offsetAccumulator)
	for _, series := range workerSeries {
		for _, pt := range series {
			a := acc[pt.OffsetSeconds]
			if a == nil {
				a = &offsetAccumulator{}
				acc[pt.OffsetSeconds] = a
			}
			a.count++
			a.sum += pt.Value
		}
	}
	if len(acc) == 0 {
		return nil
	}

	out := make(TimeSeries, 0, len(acc))
	for offset, a := range acc {
		value := a.sum
		if mode == CombineAverage {
			value = a.sum / float64(a.count)
		}
		out = append(out, TimePoint{OffsetSeconds: offset, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OffsetSeconds < out[j].OffsetSeconds
	})
	return out
}
