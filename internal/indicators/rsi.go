package indicators

import (
	"market-analyzer/models"
)

// CalculateRSI computes the Relative Strength Index with Wilder smoothing
// and classifies the last value. Returns nil when the series is not longer
// than the period.
func CalculateRSI(closes []float64, period int) *models.RSIResult {
	if period <= 0 || len(closes) <= period {
		return nil
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change >= 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	// Wilder smoothing over the remainder of the series
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		var gain, loss float64
		if change >= 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	value := 100.0
	if avgLoss > 0 {
		rs := avgGain / avgLoss
		value = 100.0 - (100.0 / (1.0 + rs))
	}

	return &models.RSIResult{
		Value:  value,
		Signal: classifyRSI(value),
	}
}

func classifyRSI(value float64) models.RSISignal {
	switch {
	case value <= 30:
		return models.RSIOversold
	case value >= 70:
		return models.RSIOverbought
	default:
		return models.RSINeutral
	}
}
