// internal/metrics/aggregate.go
package metrics

// bytesPerMB converts a bytes/sec sum to MB/s.
const bytesPerMB = 1048576.0

// Aggregate reduces the per-worker measurements of one test to a single
// summary. Throughput is additive, so IOPS and bandwidth are summed across
// workers. Latency characterizes per-operation experience, not aggregate
// work done, so the latency fields are arithmetic means over all workers; a
// worker that reported no latency for a direction contributes 0 and still
// counts toward the denominator. A test with zero workers yields the
// all-zero degenerate summary so callers can still render its table row.
func Aggregate(workers []WorkerMetric) TestSummary {
	var s TestSummary
	if len(workers) == 0 {
		return s
	}

	var readBytes, writeBytes float64
	for _, w := range workers {
		s.ReadIOPS += w.Read.IOPS
		s.WriteIOPS += w.Write.IOPS
		readBytes += w.Read.BWBytes
		writeBytes += w.Write.BWBytes

		s.ReadAvgLatencyMs += NormalizeLatency(w.Read, StatMean)
		s.ReadP95LatencyMs += NormalizeLatency(w.Read, StatP95)
		s.WriteAvgLatencyMs += NormalizeLatency(w.Write, StatMean)
		s.WriteP95LatencyMs += NormalizeLatency(w.Write, StatP95)
	}

	s.ReadMBps = readBytes / bytesPerMB
	s.WriteMBps = writeBytes / bytesPerMB

	count := float64(len(workers))
	s.ReadAvgLatencyMs /= count
	s.ReadP95LatencyMs /= count
	s.WriteAvgLatencyMs /= count
	s.WriteP95LatencyMs /= count

	return s
}
