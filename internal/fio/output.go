// internal/fio/output.go
package fio

import (
	"encoding/json"
	"fmt"

	"github.com/mwiater/ioreport/internal/metrics"
)

// Output is the top-level fio JSON measurement record.
type Output struct {
	Version string `json:"fio version"`
	Jobs    []Job  `json:"jobs"`
}

// Job is one worker's measurement block.
type Job struct {
	JobName string   `json:"jobname"`
	Read    DirStats `json:"read"`
	Write   DirStats `json:"write"`
}

// DirStats holds one direction's throughput counters and whichever latency
// representation this fio build emits. Modern builds report clat_ns in
// nanoseconds; older ones report clat in microseconds. Either or both may
// be absent, e.g. the read block of a write-only test.
type DirStats struct {
	IOPS    float64  `json:"iops"`
	BWBytes float64  `json:"bw_bytes"`
	ClatNs  *LatDist `json:"clat_ns,omitempty"`
	ClatUs  *LatDist `json:"clat,omitempty"`
}

// LatDist is a latency distribution: mean plus an optional percentile map
// keyed like "95.000000".
type LatDist struct {
	Mean       float64            `json:"mean"`
	Percentile map[string]float64 `json:"percentile,omitempty"`
}

// ParseOutput decodes a raw measurement record. A record that does not
// parse, or that contains no worker entries at all, is malformed and fatal
// for the run; individually missing fields inside a worker entry are fine
// and surface as zeros downstream.
func ParseOutput(data []byte) (*Output, error) {
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("malformed measurement record: %w", err)
	}
	if len(out.Jobs) == 0 {
		return nil, fmt.Errorf("malformed measurement record: no worker entries")
	}
	return &out, nil
}

// WorkerMetrics converts the record into the aggregator's input shape, one
// entry per worker.
func (o *Output) WorkerMetrics() []metrics.WorkerMetric {
	workers := make([]metrics.WorkerMetric, 0, len(o.Jobs))
	for _, job := range o.Jobs {
		workers = append(workers, metrics.WorkerMetric{
			Read:  job.Read.toDirection(),
			Write: job.Write.toDirection(),
		})
	}
	return workers
}

func (d DirStats) toDirection() metrics.DirectionMetric {
	return metrics.DirectionMetric{
		IOPS:    d.IOPS,
		BWBytes: d.BWBytes,
		ClatNs:  d.ClatNs.toDist(),
		ClatUs:  d.ClatUs.toDist(),
	}
}

func (l *LatDist) toDist() *metrics.LatencyDist {
	if l == nil {
		return nil
	}
	return &metrics.LatencyDist{Mean: l.Mean, Percentile: l.Percentile}
}
