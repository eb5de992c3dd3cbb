package fio

import (
	"testing"

	"github.com/mwiater/ioreport/internal/metrics"
)

const sampleRecord = `{
  "fio version": "fio-3.36",
  "jobs": [
    {
      "jobname": "rand-read",
      "read": {
        "iops": 1000,
        "bw_bytes": 4194304,
        "clat_ns": {"mean": 2000000, "percentile": {"95.000000": 4000000}}
      },
      "write": {"iops": 0, "bw_bytes": 0}
    },
    {
      "jobname": "rand-read",
      "read": {"iops": 1500, "bw_bytes": 6291456},
      "write": {"iops": 0, "bw_bytes": 0}
    }
  ]
}`

func TestParseOutputPerWorkerEntries(t *testing.T) {
	out, err := ParseOutput([]byte(sampleRecord))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	workers := out.WorkerMetrics()
	if len(workers) != 2 {
		t.Fatalf("expected 2 workers, got %d", len(workers))
	}
	if workers[0].Read.ClatNs == nil || workers[0].Read.ClatNs.Mean != 2000000 {
		t.Fatalf("worker 0 clat_ns not carried: %+v", workers[0].Read)
	}
	if workers[1].Read.ClatNs != nil {
		t.Fatalf("worker 1 reported no latency, got %+v", workers[1].Read.ClatNs)
	}
}

func TestParseOutputFeedsAggregator(t *testing.T) {
	out, err := ParseOutput([]byte(sampleRecord))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := metrics.Aggregate(out.WorkerMetrics())
	if s.ReadIOPS != 2500 {
		t.Fatalf("read iops: got %v, want 2500", s.ReadIOPS)
	}
	if s.ReadMBps != 10.0 {
		t.Fatalf("read mbps: got %v, want 10.0", s.ReadMBps)
	}
	if s.ReadAvgLatencyMs != 1.0 {
		t.Fatalf("read avg latency: got %v, want 1.0", s.ReadAvgLatencyMs)
	}
}

func TestParseOutputRejectsMalformedRecords(t *testing.T) {
	if _, err := ParseOutput([]byte("not json")); err == nil {
		t.Fatalf("expected error for unparseable record")
	}
	if _, err := ParseOutput([]byte(`{"jobs": []}`)); err == nil {
		t.Fatalf("expected error for record with no worker entries")
	}
}
