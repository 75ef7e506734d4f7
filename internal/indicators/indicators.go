package indicators

import (
	"sync"

	"market-analyzer/internal/config"
	"market-analyzer/models"
)

// Compute runs all indicator sub-operations over one candle window. The
// sub-operations have no data dependency on each other and write disjoint
// fields of the result, so they are fanned out on goroutines and joined
// before returning. Every sub-result is nil when its series is too short.
func Compute(candles []models.Candle, params config.IndicatorParams) models.IndicatorSet {
	closes := models.Closes(candles)
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	for i, c := range candles {
		highs[i] = c.High
		lows[i] = c.Low
	}

	var set models.IndicatorSet
	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		set.RSI = CalculateRSI(closes, params.RSIPeriod)
	}()
	go func() {
		defer wg.Done()
		set.MACD = CalculateMACD(closes, params.FastPeriod, params.SlowPeriod, params.SignalPeriod)
	}()
	go func() {
		defer wg.Done()
		set.Bollinger = CalculateBollinger(closes, params.BollingerPeriod, params.StdDev)
	}()
	go func() {
		defer wg.Done()
		set.EMA = CalculateEMASeries(closes, params.EMAPeriods)
		set.SMA = CalculateSMASeries(closes, params.SMAPeriods)
	}()
	go func() {
		defer wg.Done()
		set.ADX = CalculateADX(highs, lows, closes, params.ADXPeriod)
	}()
	go func() {
		defer wg.Done()
		set.ATR = CalculateATR(highs, lows, closes, params.ATRPeriod)
	}()

	wg.Wait()
	return set
}
