// internal/fio/run.go
package fio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/mwiater/ioreport/internal/logging"
)

var runCommand = func(binary string, args []string) error {
	cmd := exec.Command(binary, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Run executes one test synchronously and returns the parsed measurement
// record. The raw JSON record lands at <dir>/<test>.json and the per-worker
// logs at <dir>/<test>_{kind}.{workerIndex}.log. A non-zero generator exit
// is fatal for the whole run.
func Run(t Test, opts Options, dir string) (*Output, error) {
	outputPath := filepath.Join(dir, t.Name+".json")
	logBase := filepath.Join(dir, t.Name)

	logging.LogEvent("[FIO] Running test %s (%s, bs=%s)", t.Name, t.Pattern, t.BlockSize)
	if err := runCommand(opts.Binary, Args(t, opts, outputPath, logBase)); err != nil {
		return nil, fmt.Errorf("workload generator failed for test %s: %w", t.Name, err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read measurement record for test %s: %w", t.Name, err)
	}
	out, err := ParseOutput(data)
	if err != nil {
		return nil, fmt.Errorf("test %s: %w", t.Name, err)
	}
	return out, nil
}

// Warmup runs the discarded priming pass.
func Warmup(opts Options, duration time.Duration) error {
	logging.LogEvent("[FIO] Warm-up pass (%s, results discarded)", duration)
	if err := runCommand(opts.Binary, WarmupArgs(opts, duration)); err != nil {
		return fmt.Errorf("warm-up pass failed: %w", err)
	}
	return nil
}
