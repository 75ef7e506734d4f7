package trend

import (
	"math"

	"market-analyzer/models"
)

const (
	// trendWindow is the number of candles the price change is measured over.
	trendWindow = 20

	// breakoutTolerance is how far past a level the price may sit and still
	// count as a fresh breakout (2%).
	breakoutTolerance = 0.02

	// volumeConfirmRatio is the multiple of the window-average volume the
	// recent average must exceed.
	volumeConfirmRatio = 1.2
)

// Classify combines the price change over the last 20 candles, the computed
// indicators and the detected support/resistance levels into one trend
// assessment. Rules are ordered; later rules override earlier ones. Returns
// nil when fewer than 20 candles are supplied.
func Classify(candles []models.Candle, set models.IndicatorSet, srLevels []models.SupportResistanceLevel) *models.TrendAssessment {
	if len(candles) < trendWindow {
		return nil
	}

	window := candles[len(candles)-trendWindow:]
	current := candles[len(candles)-1].Close
	reference := window[0].Close

	var priceChange float64
	if reference != 0 {
		priceChange = (current - reference) / reference * 100
	}

	trendType := models.TrendSideways
	if priceChange > 5 {
		trendType = models.TrendUptrend
	} else if priceChange < -5 {
		trendType = models.TrendDowntrend
	}

	support, resistance := nearestLevels(srLevels, current)

	// Breakout override: price just above a broken resistance or just below
	// a broken support.
	if broken := brokenResistance(srLevels, current); broken != nil {
		trendType = models.TrendBreakoutUp
		resistance = broken
	} else if broken := brokenSupport(srLevels, current); broken != nil {
		trendType = models.TrendBreakoutDown
		support = broken
	} else if set.RSI != nil {
		// Reversal override, only when no breakout fired.
		if set.RSI.Signal == models.RSIOversold && priceChange > 0 {
			trendType = models.TrendReversalBullish
		} else if set.RSI.Signal == models.RSIOverbought && priceChange < 0 {
			trendType = models.TrendReversalBearish
		}
	}

	strength := strengthFromPriceChange(priceChange)
	if set.ADX != nil {
		strength = set.ADX.TrendStrength
	}

	return &models.TrendAssessment{
		Type:               trendType,
		Strength:           strength,
		Confidence:         confidence(set),
		StartDate:          window[0].Timestamp,
		PriceChangePercent: priceChange,
		SupportLevel:       support,
		ResistanceLevel:    resistance,
		VolumeConfirmation: volumeConfirmed(models.Volumes(candles)),
	}
}

// nearestLevels picks the closest support below and resistance above the
// current price.
func nearestLevels(srLevels []models.SupportResistanceLevel, price float64) (support, resistance *float64) {
	for _, l := range srLevels {
		p := l.Price
		switch l.Type {
		case models.LevelSupport:
			if p < price && (support == nil || p > *support) {
				support = &p
			}
		case models.LevelResistance:
			if p > price && (resistance == nil || p < *resistance) {
				resistance = &p
			}
		}
	}
	return support, resistance
}

// brokenResistance finds the nearest resistance the price has just moved
// above, within the breakout tolerance.
func brokenResistance(srLevels []models.SupportResistanceLevel, price float64) *float64 {
	var best *float64
	for _, l := range srLevels {
		if l.Type != models.LevelResistance {
			continue
		}
		p := l.Price
		if price > p && price <= p*(1+breakoutTolerance) {
			if best == nil || p > *best {
				best = &p
			}
		}
	}
	return best
}

// brokenSupport finds the nearest support the price has just moved below.
func brokenSupport(srLevels []models.SupportResistanceLevel, price float64) *float64 {
	var best *float64
	for _, l := range srLevels {
		if l.Type != models.LevelSupport {
			continue
		}
		p := l.Price
		if price < p && price >= p*(1-breakoutTolerance) {
			if best == nil || p < *best {
				best = &p
			}
		}
	}
	return best
}

func strengthFromPriceChange(priceChange float64) models.TrendStrength {
	abs := math.Abs(priceChange)
	switch {
	case abs > 15:
		return models.StrengthVeryStrong
	case abs > 10:
		return models.StrengthStrong
	case abs > 5:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}

// confidence is a simple additive heuristic, not a calibrated probability.
func confidence(set models.IndicatorSet) float64 {
	c := 0.5
	if set.ADX != nil && set.ADX.ADX > 25 {
		c += 0.2
	}
	if set.MACD != nil && set.MACD.Trend != models.MACDNeutral {
		c += 0.15
	}
	if set.RSI != nil && set.RSI.Signal != models.RSINeutral {
		c += 0.10
	}
	return math.Min(c, 1)
}

// volumeConfirmed reports whether the mean of the last five volumes exceeds
// 1.2x the mean of the whole window.
func volumeConfirmed(volumes []float64) bool {
	if len(volumes) < 5 {
		return false
	}

	var total float64
	for _, v := range volumes {
		total += v
	}
	windowMean := total / float64(len(volumes))

	var recent float64
	for _, v := range volumes[len(volumes)-5:] {
		recent += v
	}
	recentMean := recent / 5

	return recentMean > windowMean*volumeConfirmRatio
}
