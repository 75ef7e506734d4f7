package indicators

import (
	"math"

	"market-analyzer/models"
)

// CalculateATR computes the Average True Range over the last period candles
// and grades volatility relative to the last close. Returns nil when the
// series is not longer than the period.
func CalculateATR(highs, lows, closes []float64, period int) *models.ATRResult {
	if period <= 0 || len(closes) <= period {
		return nil
	}

	trueRanges := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		highLow := highs[i] - lows[i]
		highPrevClose := math.Abs(highs[i] - closes[i-1])
		lowPrevClose := math.Abs(lows[i] - closes[i-1])
		trueRanges = append(trueRanges, math.Max(highLow, math.Max(highPrevClose, lowPrevClose)))
	}

	var sum float64
	for _, tr := range trueRanges[len(trueRanges)-period:] {
		sum += tr
	}
	atr := sum / float64(period)

	lastClose := closes[len(closes)-1]
	var atrPercent float64
	if lastClose != 0 {
		atrPercent = atr / lastClose * 100
	}

	return &models.ATRResult{
		Value:           atr,
		VolatilityLevel: classifyVolatility(atrPercent),
	}
}

func classifyVolatility(atrPercent float64) models.VolatilityLevel {
	switch {
	case atrPercent < 2:
		return models.VolatilityLow
	case atrPercent > 5:
		return models.VolatilityHigh
	default:
		return models.VolatilityMedium
	}
}
