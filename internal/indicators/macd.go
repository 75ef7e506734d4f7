package indicators

import (
	"market-analyzer/models"
)

// CalculateMACD computes the MACD line (fast EMA minus slow EMA), its signal
// line and the histogram, reporting the last values. Returns nil when the
// series is shorter than slowPeriod+signalPeriod closes.
func CalculateMACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) *models.MACDResult {
	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 || fastPeriod >= slowPeriod {
		return nil
	}
	if len(closes) < slowPeriod+signalPeriod {
		return nil
	}

	fastEMA := emaSeries(closes, fastPeriod)
	slowEMA := emaSeries(closes, slowPeriod)

	// The slow series starts slowPeriod-fastPeriod entries later.
	offset := slowPeriod - fastPeriod
	macdLine := make([]float64, len(slowEMA))
	for i := range slowEMA {
		macdLine[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalLine := emaSeries(macdLine, signalPeriod)
	if len(signalLine) == 0 {
		return nil
	}

	macd := macdLine[len(macdLine)-1]
	signal := signalLine[len(signalLine)-1]
	histogram := macd - signal

	trend := models.MACDNeutral
	if histogram > 0 && macd > signal {
		trend = models.MACDBullish
	} else if histogram < 0 && macd < signal {
		trend = models.MACDBearish
	}

	return &models.MACDResult{
		MACD:      macd,
		Signal:    signal,
		Histogram: histogram,
		Trend:     trend,
	}
}
