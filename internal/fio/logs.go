// internal/fio/logs.go
package fio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mwiater/ioreport/internal/metrics"
)

// LogKind names one of the three per-worker time-series logs fio writes.
type LogKind string

const (
	LogIOPS      LogKind = "iops"
	LogBandwidth LogKind = "bw"
	LogLatency   LogKind = "lat"
)

// CombineMode returns the reduction rule for this metric kind: rate and
// bandwidth are additive across workers, latency is averaged.
func (k LogKind) CombineMode() metrics.CombineMode {
	if k == LogLatency {
		return metrics.CombineAverage
	}
	return metrics.CombineSum
}

// SeriesDivisor is the unit conversion applied to the combined series:
// bandwidth logs are KB/s (to MB/s), latency logs are microseconds (to ms).
func (k LogKind) SeriesDivisor() float64 {
	switch k {
	case LogBandwidth:
		return 1024
	case LogLatency:
		return 1000
	default:
		return 1
	}
}

// LoadWorkerSeries reads every {base}_{kind}.{workerIndex}.log file for one
// metric kind, one series per worker. Workers that never produced a log are
// simply not represented; no logs at all yields an empty slice, which
// reconciles to an empty series and an omitted chart.
func LoadWorkerSeries(logBase string, kind LogKind) ([]metrics.TimeSeries, error) {
	pattern := fmt.Sprintf("%s_%s.*.log", logBase, kind)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var all []metrics.TimeSeries
	for _, path := range paths {
		series, err := parseLogFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(series) > 0 {
			all = append(all, series)
		}
	}
	return all, nil
}

// parseLogFile reads one fio log. Each line is
// "offsetMilliseconds, value, direction, blocksize, offset"; only the first
// two fields matter here. Blank lines are skipped.
func parseLogFile(path string) (metrics.TimeSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var series metrics.TimeSeries
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("short log line %q", line)
		}
		offsetMs, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("log offset %q: %w", fields[0], err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("log value %q: %w", fields[1], err)
		}
		series = append(series, metrics.TimePoint{
			OffsetSeconds: offsetMs / 1000,
			Value:         value,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return series, nil
}
