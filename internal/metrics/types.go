// internal/metrics/types.go
package metrics

// Statistic selects which latency statistic a normalization targets.
type Statistic int

const (
	// StatMean is the arithmetic mean of the per-operation completion times.
	StatMean Statistic = iota
	// StatP95 is the 95th percentile of the per-operation completion times.
	StatP95
)

// CombineMode is the reduction rule applied when merging samples from
// multiple workers at one time offset.
type CombineMode int

const (
	// CombineSum adds the values of all workers present at an offset.
	// Workers with no sample at that offset contribute 0. Correct for
	// additive metrics such as IOPS and bandwidth.
	CombineSum CombineMode = iota
	// CombineAverage averages only the workers that actually have a sample
	// at an offset. Correct for latency, which must not be diluted by
	// workers whose sampling phase skipped that timestamp.
	CombineAverage
)

// LatencyDist is a latency distribution as reported by one worker for one
// direction: a mean plus an optional percentile map keyed by percentile
// label (e.g. "95.000000").
type LatencyDist struct {
	Mean       float64
	Percentile map[string]float64
}

// DirectionMetric is one worker's raw measurement for a single direction
// (read or write). Bandwidth is bytes per second. At most one of the
// latency distributions is populated; both may be absent.
type DirectionMetric struct {
	IOPS    float64
	BWBytes float64
	ClatNs  *LatencyDist // completion latency in nanoseconds
	ClatUs  *LatencyDist // completion latency in microseconds (older generators)
}

// WorkerMetric is one worker's raw measurement for one test.
type WorkerMetric struct {
	Read  DirectionMetric
	Write DirectionMetric
}

// TestSummary is one test's reduced result across all workers. IOPS and
// bandwidth are sums over workers; latency fields are arithmetic means over
// all workers, where a worker that reported nothing contributes 0. An
// all-zero summary signals "no data", not a failure.
type TestSummary struct {
	ReadIOPS          float64 `json:"read_iops"`
	WriteIOPS         float64 `json:"write_iops"`
	ReadMBps          float64 `json:"read_mbps"`
	WriteMBps         float64 `json:"write_mbps"`
	ReadAvgLatencyMs  float64 `json:"read_avg_latency_ms"`
	ReadP95LatencyMs  float64 `json:"read_p95_latency_ms"`
	WriteAvgLatencyMs float64 `json:"write_avg_latency_ms"`
	WriteP95LatencyMs float64 `json:"write_p95_latency_ms"`
}

// TimePoint is one sample of one metric at a given offset from test start.
type TimePoint struct {
	OffsetSeconds float64 `json:"offset_seconds"`
	Value         float64 `json:"value"`
}

// TimeSeries is a sequence of samples ordered by offset ascending.
type TimeSeries []TimePoint

// Scaled returns a copy of the series with every value divided by divisor.
// Unit conversions (KB/s to MB/s, microseconds to milliseconds) happen here,
// after reconciliation, so the combine logic stays unit-agnostic.
func (s TimeSeries) Scaled(divisor float64) TimeSeries {
	if divisor == 0 || len(s) == 0 {
		return s
	}
	out := make(TimeSeries, len(s))
	for i, pt := range s {
		out[i] = TimePoint{OffsetSeconds: pt.OffsetSeconds, Value: pt.Value / divisor}
	}
	return out
}
