package gcpmonitoring

import (
	"math"
	"sort"

	"github.com/elC0mpa/infra-vision/model"
)

const noDataMessage = "No monitoring data available. Consider installing Cloud Monitoring agent."

// summarize computes the channel statistics over retrieved samples. Missing
// intervals are not imputed; zero samples yield an explicit no-data status.
func summarize(values []float64) model.ChannelSummary {
	if len(values) == 0 {
		return model.ChannelSummary{
			Status:  model.StatusNoData,
			Message: noDataMessage,
		}
	}

	maximum := values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		if v > maximum {
			maximum = v
		}
	}

	return model.ChannelSummary{
		Status:     model.StatusOK,
		Average:    round2(sum / float64(len(values))),
		Maximum:    round2(maximum),
		P95:        round2(p95(values, maximum)),
		DataPoints: len(values),
	}
}

// p95 returns the 95th percentile using the exclusive quantile method when at
// least 20 samples are available, otherwise the maximum as a conservative
// proxy. The exclusive method interpolates at h = (n+1)*0.95 over the sorted
// samples.
func p95(values []float64, maximum float64) float64 {
	n := len(values)
	if n < 20 {
		return maximum
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	h := float64(n+1) * 0.95
	if h <= 1 {
		return sorted[0]
	}
	if h >= float64(n) {
		return sorted[n-1]
	}

	lower := math.Floor(h)
	frac := h - lower
	i := int(lower)
	return sorted[i-1] + frac*(sorted[i]-sorted[i-1])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
