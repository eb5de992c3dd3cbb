package fio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadWorkerSeries(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "rand-read")
	writeLog(t, base+"_iops.1.log", "1000, 2500, 0, 4096, 0\n2000, 2600, 0, 4096, 0\n")
	writeLog(t, base+"_iops.2.log", "1000, 2400, 0, 4096, 0\n")
	// A different kind's log must not leak in.
	writeLog(t, base+"_bw.1.log", "1000, 10240, 0, 4096, 0\n")

	series, err := LoadWorkerSeries(base, LogIOPS)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 worker series, got %d", len(series))
	}
	if series[0][0].OffsetSeconds != 1.0 || series[0][0].Value != 2500 {
		t.Fatalf("first sample: %+v", series[0][0])
	}
	if len(series[0]) != 2 || len(series[1]) != 1 {
		t.Fatalf("sample counts: %d, %d", len(series[0]), len(series[1]))
	}
}

func TestLoadWorkerSeriesNoLogs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "seq-read")
	series, err := LoadWorkerSeries(base, LogLatency)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("expected no series, got %d", len(series))
	}
}

func TestLoadWorkerSeriesBadLine(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "seq-write")
	writeLog(t, base+"_lat.1.log", "1000, notanumber\n")
	if _, err := LoadWorkerSeries(base, LogLatency); err == nil {
		t.Fatalf("expected error for unparseable log value")
	}
}

func TestRunUsesStubbedCommand(t *testing.T) {
	dir := t.TempDir()
	prev := runCommand
	t.Cleanup(func() { runCommand = prev })

	var gotBinary string
	runCommand = func(binary string, args []string) error {
		gotBinary = binary
		// Simulate the generator writing its measurement record.
		return os.WriteFile(filepath.Join(dir, "rand-read.json"), []byte(sampleRecord), 0o644)
	}

	test := Test{Name: "rand-read", Pattern: PatternRandRead, BlockSize: "4k"}
	opts := baseOptions()
	out, err := Run(test, opts, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if gotBinary != "fio" {
		t.Fatalf("binary: got %q", gotBinary)
	}
	if len(out.Jobs) != 2 {
		t.Fatalf("jobs: got %d", len(out.Jobs))
	}
}
