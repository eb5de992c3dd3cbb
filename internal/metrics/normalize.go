// internal/metrics/normalize.go
package metrics

// LatencyKind tags the unit and statistic a raw latency reading was
// reported in.
type LatencyKind int

const (
	LatencyAbsent LatencyKind = iota
	LatencyNsMean
	LatencyNsP95
	LatencyUsMean
	LatencyUsP95
)

// LatencyValue is one worker's latency reading in its original unit.
type LatencyValue struct {
	Kind  LatencyKind
	Value float64
}

// Millis converts the reading to milliseconds. An absent reading is 0;
// absence is a valid zero-contribution state, not an error.
func (v LatencyValue) Millis() float64 {
	switch v.Kind {
	case LatencyNsMean, LatencyNsP95:
		return v.Value / 1e6
	case LatencyUsMean, LatencyUsP95:
		return v.Value / 1e3
	default:
		return 0
	}
}

// p95Keys are the percentile-map labels accepted for the 95th percentile.
// Current fio pads to six decimals; older builds emit the bare number.
var p95Keys = []string{"95.000000", "95"}

func lookupP95(dist *LatencyDist) (float64, bool) {
	if dist == nil || dist.Percentile == nil {
		return 0, false
	}
	for _, key := range p95Keys {
		if v, ok := dist.Percentile[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// Latency resolves the raw latency fields of a direction to a single tagged
// value for the requested statistic. The most precise unit wins: nanosecond
// fields are preferred over microsecond ones. A percentile map that lacks
// the p95 key counts as absent and falls through to the next candidate.
func (d DirectionMetric) Latency(stat Statistic) LatencyValue {
	switch stat {
	case StatP95:
		if v, ok := lookupP95(d.ClatNs); ok {
			return LatencyValue{Kind: LatencyNsP95, Value: v}
		}
		if v, ok := lookupP95(d.ClatUs); ok {
			return LatencyValue{Kind: LatencyUsP95, Value: v}
		}
	default:
		if d.ClatNs != nil && d.ClatNs.Mean > 0 {
			return LatencyValue{Kind: LatencyNsMean, Value: d.ClatNs.Mean}
		}
		if d.ClatUs != nil && d.ClatUs.Mean > 0 {
			return LatencyValue{Kind: LatencyUsMean, Value: d.ClatUs.Mean}
		}
	}
	return LatencyValue{Kind: LatencyAbsent}
}

// NormalizeLatency reduces a direction's raw latency fields to a
// non-negative millisecond value. It never fails: a direction with no
// populated representation normalizes to 0.
func NormalizeLatency(d DirectionMetric, stat Statistic) float64 {
	return d.Latency(stat).Millis()
}
