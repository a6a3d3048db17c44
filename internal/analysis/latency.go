package analysis

import (
	"errors"
	"slices"

	"netlog-analyzer/internal/models"
)

// ErrEmptySample is returned when latency statistics are requested over no values
var ErrEmptySample = errors.New("no RTT samples to summarize")

// Latency computes min, max, mean and median of values
func Latency(values []float64) (models.LatencyStats, error) {
	if len(values) == 0 {
		return models.LatencyStats{}, ErrEmptySample
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return models.LatencyStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
		Median: median(sorted),
	}, nil
}

// median expects sorted input
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// AverageRTTs returns the avg of every summary line across samples, in
// capture order
func AverageRTTs(samples []models.PingSample) []float64 {
	var avgs []float64
	for _, s := range samples {
		for _, st := range s.RTTStats {
			avgs = append(avgs, st.Avg)
		}
	}
	return avgs
}

// LossRates returns the loss percent of each sample; nil entries had no loss line
func LossRates(samples []models.PingSample) []*int {
	rates := make([]*int, len(samples))
	for i, s := range samples {
		rates[i] = s.LossPercent
	}
	return rates
}
