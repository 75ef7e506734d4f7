package indicators

import (
	"math"

	"market-analyzer/models"
)

// CalculateBollinger computes Bollinger Bands over the last period closes.
// When the bands collapse to a single line (constant window) PercentB is
// pinned to 0.5. Returns nil when the series is shorter than the period.
func CalculateBollinger(closes []float64, period int, stdDev float64) *models.BollingerResult {
	if period <= 0 || len(closes) < period {
		return nil
	}

	window := closes[len(closes)-period:]

	var sum float64
	for _, c := range window {
		sum += c
	}
	middle := sum / float64(period)

	var variance float64
	for _, c := range window {
		variance += math.Pow(c-middle, 2)
	}
	sd := math.Sqrt(variance / float64(period))

	upper := middle + stdDev*sd
	lower := middle - stdDev*sd
	last := closes[len(closes)-1]

	percentB := 0.5
	if upper != lower {
		percentB = (last - lower) / (upper - lower)
	}

	var bandwidth float64
	if middle != 0 {
		bandwidth = (upper - lower) / middle
	}

	return &models.BollingerResult{
		Upper:     upper,
		Middle:    middle,
		Lower:     lower,
		PercentB:  percentB,
		Bandwidth: bandwidth,
	}
}
