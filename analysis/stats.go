package analysis

import "math"

// Stats summarizes a delta sequence.
//
// RMSDeviation is the root mean square of the raw deltas, sqrt(mean(d²)),
// not their standard deviation. For an empty sequence every field is 0.
type Stats struct {
	TotalLength  float64 `json:"total_length"`
	RMSDeviation float64 `json:"rms_deviation"`
	MaxDelta     float64 `json:"max_delta"`
	MinDelta     float64 `json:"min_delta"`
}

// ComputeStats summarizes deltas.
func ComputeStats(deltas []float64) Stats {
	if len(deltas) == 0 {
		return Stats{}
	}
	s := Stats{MaxDelta: deltas[0], MinDelta: deltas[0]}
	var sumSq float64
	for _, d := range deltas {
		s.TotalLength += math.Abs(d)
		sumSq += d * d
		s.MaxDelta = math.Max(s.MaxDelta, d)
		s.MinDelta = math.Min(s.MinDelta, d)
	}
	s.RMSDeviation = math.Sqrt(sumSq / float64(len(deltas)))
	return s
}

// Uniformity is RMSDeviation as a percentage of TotalLength, or 0 when the
// sequence has no length.
func (s Stats) Uniformity() float64 {
	if s.TotalLength == 0 {
		return 0
	}
	return 100 * s.RMSDeviation / s.TotalLength
}
