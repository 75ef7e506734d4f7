package indicators

import (
	"math"

	"market-analyzer/models"
)

// CalculateADX computes the Average Directional Index with its +DI/-DI
// components using Wilder smoothing. Returns nil when fewer than 2*period+1
// candles are available.
func CalculateADX(highs, lows, closes []float64, period int) *models.ADXResult {
	if period <= 0 || len(closes) <= period*2 {
		return nil
	}

	n := len(closes)
	plusDM := make([]float64, 0, n-1)
	minusDM := make([]float64, 0, n-1)
	trueRange := make([]float64, 0, n-1)

	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]

		var pDM, mDM float64
		if upMove > downMove && upMove > 0 {
			pDM = upMove
		}
		if downMove > upMove && downMove > 0 {
			mDM = downMove
		}
		plusDM = append(plusDM, pDM)
		minusDM = append(minusDM, mDM)

		tr1 := highs[i] - lows[i]
		tr2 := math.Abs(highs[i] - closes[i-1])
		tr3 := math.Abs(lows[i] - closes[i-1])
		trueRange = append(trueRange, math.Max(tr1, math.Max(tr2, tr3)))
	}

	var smoothedPlusDM, smoothedMinusDM, smoothedTR float64
	for i := 0; i < period; i++ {
		smoothedPlusDM += plusDM[i]
		smoothedMinusDM += minusDM[i]
		smoothedTR += trueRange[i]
	}

	plusDI, minusDI := directionalIndexes(smoothedPlusDM, smoothedMinusDM, smoothedTR)
	adx := dx(plusDI, minusDI)

	for i := period; i < len(trueRange); i++ {
		smoothedPlusDM = smoothedPlusDM - (smoothedPlusDM / float64(period)) + plusDM[i]
		smoothedMinusDM = smoothedMinusDM - (smoothedMinusDM / float64(period)) + minusDM[i]
		smoothedTR = smoothedTR - (smoothedTR / float64(period)) + trueRange[i]

		plusDI, minusDI = directionalIndexes(smoothedPlusDM, smoothedMinusDM, smoothedTR)
		adx = ((float64(period-1) * adx) + dx(plusDI, minusDI)) / float64(period)
	}

	return &models.ADXResult{
		ADX:           adx,
		PlusDI:        plusDI,
		MinusDI:       minusDI,
		TrendStrength: classifyADX(adx),
	}
}

func directionalIndexes(smoothedPlusDM, smoothedMinusDM, smoothedTR float64) (float64, float64) {
	if smoothedTR == 0 {
		return 0, 0
	}
	return (smoothedPlusDM / smoothedTR) * 100, (smoothedMinusDM / smoothedTR) * 100
}

func dx(plusDI, minusDI float64) float64 {
	if plusDI+minusDI == 0 {
		return 0
	}
	return math.Abs(plusDI-minusDI) / (plusDI + minusDI) * 100
}

func classifyADX(adx float64) models.TrendStrength {
	switch {
	case adx >= 50:
		return models.StrengthVeryStrong
	case adx >= 25:
		return models.StrengthStrong
	case adx >= 20:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}
