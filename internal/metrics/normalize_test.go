package metrics

import "testing"

func TestNormalizeLatencyNsMean(t *testing.T) {
	d := DirectionMetric{ClatNs: &LatencyDist{Mean: 2000000}}
	if got := NormalizeLatency(d, StatMean); got != 2.0 {
		t.Fatalf("ns mean: got %v, want 2.0", got)
	}
}

func TestNormalizeLatencyUsMean(t *testing.T) {
	d := DirectionMetric{ClatUs: &LatencyDist{Mean: 1500}}
	if got := NormalizeLatency(d, StatMean); got != 1.5 {
		t.Fatalf("us mean: got %v, want 1.5", got)
	}
}

func TestNormalizeLatencyUsPercentileOnly(t *testing.T) {
	d := DirectionMetric{ClatUs: &LatencyDist{Percentile: map[string]float64{"95.000000": 4200}}}
	if got := NormalizeLatency(d, StatP95); got != 4.2 {
		t.Fatalf("us p95: got %v, want 4.2", got)
	}
}

func TestNormalizeLatencyPrefersNanoseconds(t *testing.T) {
	d := DirectionMetric{
		ClatNs: &LatencyDist{Mean: 3000000, Percentile: map[string]float64{"95.000000": 5000000}},
		ClatUs: &LatencyDist{Mean: 999, Percentile: map[string]float64{"95.000000": 999}},
	}
	if got := NormalizeLatency(d, StatMean); got != 3.0 {
		t.Fatalf("mean should come from ns field: got %v", got)
	}
	if got := NormalizeLatency(d, StatP95); got != 5.0 {
		t.Fatalf("p95 should come from ns field: got %v", got)
	}
}

func TestNormalizeLatencyMissingPercentileKeyFallsThrough(t *testing.T) {
	// ns map is populated but has no p95 entry; the us map does.
	d := DirectionMetric{
		ClatNs: &LatencyDist{Percentile: map[string]float64{"99.000000": 8000000}},
		ClatUs: &LatencyDist{Percentile: map[string]float64{"95.000000": 2000}},
	}
	if got := NormalizeLatency(d, StatP95); got != 2.0 {
		t.Fatalf("expected fall-through to us p95: got %v", got)
	}
}

func TestNormalizeLatencyUnpaddedPercentileKey(t *testing.T) {
	d := DirectionMetric{ClatNs: &LatencyDist{Percentile: map[string]float64{"95": 6000000}}}
	if got := NormalizeLatency(d, StatP95); got != 6.0 {
		t.Fatalf("unpadded key: got %v, want 6.0", got)
	}
}

func TestNormalizeLatencyAbsent(t *testing.T) {
	var d DirectionMetric
	if got := NormalizeLatency(d, StatMean); got != 0 {
		t.Fatalf("absent mean: got %v, want 0", got)
	}
	if got := NormalizeLatency(d, StatP95); got != 0 {
		t.Fatalf("absent p95: got %v, want 0", got)
	}
	if kind := d.Latency(StatMean).Kind; kind != LatencyAbsent {
		t.Fatalf("absent kind: got %v", kind)
	}
}
