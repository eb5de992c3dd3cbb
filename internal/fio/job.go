// internal/fio/job.go
// Package fio drives the external fio workload generator: it builds the
// argument list for each standardized test, invokes the binary, and parses
// the structured measurement output and per-worker time-series logs it
// leaves behind.
package fio

import (
	"fmt"
	"time"
)

// Pattern is the fio rw mode for one test.
type Pattern string

const (
	PatternRead      Pattern = "read"
	PatternWrite     Pattern = "write"
	PatternRandRead  Pattern = "randread"
	PatternRandWrite Pattern = "randwrite"
	PatternRandRW    Pattern = "randrw"
)

// Test describes one workload the generator runs.
type Test struct {
	Name      string
	Pattern   Pattern
	BlockSize string
	// ReadMix is the rwmixread percentage; only meaningful for PatternRandRW.
	ReadMix int
}

// StandardTests returns the five standardized I/O patterns, in report order.
func StandardTests() []Test {
	return []Test{
		{Name: "seq-read", Pattern: PatternRead, BlockSize: "1m"},
		{Name: "seq-write", Pattern: PatternWrite, BlockSize: "1m"},
		{Name: "rand-read", Pattern: PatternRandRead, BlockSize: "4k"},
		{Name: "rand-write", Pattern: PatternRandWrite, BlockSize: "4k"},
		{Name: "mixed-rw", Pattern: PatternRandRW, BlockSize: "4k", ReadMix: 70},
	}
}

// Options carries the run-wide generator parameters that apply to every
// test. They are fixed for the duration of one run.
type Options struct {
	Binary     string
	Target     string
	Size       string
	Runtime    time.Duration
	Workers    int
	QueueDepth int
	Direct     bool
	// LogAvgMs is the averaging window fio applies to its time-series logs.
	LogAvgMs int
}

// Args builds the fio argument list for one test. outputPath receives the
// JSON measurement record; logBase is the prefix for the per-worker
// {base}_{kind}.{workerIndex}.log files.
func Args(t Test, opts Options, outputPath, logBase string) []string {
	direct := 0
	if opts.Direct {
		direct = 1
	}
	logAvg := opts.LogAvgMs
	if logAvg <= 0 {
		logAvg = 1000
	}

	args := []string{
		fmt.Sprintf("--name=%s", t.Name),
		fmt.Sprintf("--filename=%s", opts.Target),
		fmt.Sprintf("--rw=%s", t.Pattern),
		fmt.Sprintf("--bs=%s", t.BlockSize),
		fmt.Sprintf("--size=%s", opts.Size),
		fmt.Sprintf("--iodepth=%d", opts.QueueDepth),
		fmt.Sprintf("--numjobs=%d", opts.Workers),
		fmt.Sprintf("--direct=%d", direct),
		"--time_based",
		fmt.Sprintf("--runtime=%d", int(opts.Runtime.Seconds())),
	}
	if t.Pattern == PatternRandRW && t.ReadMix > 0 {
		args = append(args, fmt.Sprintf("--rwmixread=%d", t.ReadMix))
	}
	// One entry per worker in the JSON record; group_reporting would
	// collapse them and lose the per-worker shape the aggregator needs.
	args = append(args,
		"--output-format=json",
		fmt.Sprintf("--output=%s", outputPath),
		fmt.Sprintf("--write_iops_log=%s", logBase),
		fmt.Sprintf("--write_bw_log=%s", logBase),
		fmt.Sprintf("--write_lat_log=%s", logBase),
		fmt.Sprintf("--log_avg_msec=%d", logAvg),
	)
	return args
}

// WarmupArgs builds a short throwaway pass whose results are discarded. It
// produces no record and no logs; it only exists to prime caches and lay
// out the target file before the measured tests run.
func WarmupArgs(opts Options, duration time.Duration) []string {
	direct := 0
	if opts.Direct {
		direct = 1
	}
	return []string{
		"--name=warmup",
		fmt.Sprintf("--filename=%s", opts.Target),
		"--rw=write",
		"--bs=1m",
		fmt.Sprintf("--size=%s", opts.Size),
		fmt.Sprintf("--iodepth=%d", opts.QueueDepth),
		"--numjobs=1",
		fmt.Sprintf("--direct=%d", direct),
		"--time_based",
		fmt.Sprintf("--runtime=%d", int(duration.Seconds())),
		"--output-format=json",
	}
}
