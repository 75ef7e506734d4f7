package indicators

import (
	"market-analyzer/models"
)

// emaSeries computes the EMA series of prices, seeded with the SMA of the
// first window. The result starts at index period-1 of the input.
func emaSeries(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	var sum float64
	for _, p := range prices[:period] {
		sum += p
	}
	ema := sum / float64(period)

	series := make([]float64, 0, len(prices)-period+1)
	series = append(series, ema)

	multiplier := 2.0 / float64(period+1)
	for _, p := range prices[period:] {
		ema = (p-ema)*multiplier + ema
		series = append(series, ema)
	}
	return series
}

// CalculateEMA returns the final EMA value for one period, or false when the
// series is shorter than the period.
func CalculateEMA(closes []float64, period int) (float64, bool) {
	series := emaSeries(closes, period)
	if len(series) == 0 {
		return 0, false
	}
	return series[len(series)-1], true
}

// CalculateSMA returns the simple average of the last period closes, or
// false when the series is shorter than the period.
func CalculateSMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	var sum float64
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period), true
}

// CalculateEMASeries keeps the final EMA value for each configured period.
// Periods longer than the series are silently omitted.
func CalculateEMASeries(closes []float64, periods []int) []models.MovingAverage {
	var result []models.MovingAverage
	for _, period := range periods {
		if value, ok := CalculateEMA(closes, period); ok {
			result = append(result, models.MovingAverage{Period: period, Value: value})
		}
	}
	return result
}

// CalculateSMASeries keeps the final SMA value for each configured period.
// Periods longer than the series are silently omitted.
func CalculateSMASeries(closes []float64, periods []int) []models.MovingAverage {
	var result []models.MovingAverage
	for _, period := range periods {
		if value, ok := CalculateSMA(closes, period); ok {
			result = append(result, models.MovingAverage{Period: period, Value: value})
		}
	}
	return result
}
