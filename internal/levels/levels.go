package levels

import (
	"math"
	"sort"

	"market-analyzer/models"
)

const (
	// mergeTolerance is the clustering distance as a fraction of the
	// incoming candidate price. Measuring against the candidate rather than
	// the stored level makes merging order-sensitive; that asymmetry is part
	// of the heuristic and relied on by callers.
	mergeTolerance = 0.005

	minTouches       = 2
	strengthDivisor  = 5.0
	neighborDistance = 2
)

type level struct {
	price   float64
	kind    models.LevelType
	touches int
}

// Detect scans a candle sequence for swing lows and highs and clusters
// nearby extrema into support/resistance levels. A candle is a swing low
// when its low is strictly below the lows of the two candles on each side
// (swing highs symmetric on highs). Only levels touched at least twice are
// reported, sorted ascending by price.
func Detect(candles []models.Candle) []models.SupportResistanceLevel {
	var found []level

	for i := neighborDistance; i < len(candles)-neighborDistance; i++ {
		if isSwingLow(candles, i) {
			found = merge(found, candles[i].Low, models.LevelSupport)
		}
		if isSwingHigh(candles, i) {
			found = merge(found, candles[i].High, models.LevelResistance)
		}
	}

	var result []models.SupportResistanceLevel
	for _, l := range found {
		if l.touches < minTouches {
			continue
		}
		result = append(result, models.SupportResistanceLevel{
			Price:    l.price,
			Type:     l.kind,
			Touches:  l.touches,
			Strength: math.Min(float64(l.touches)/strengthDivisor, 1),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})
	return result
}

// merge folds a new extreme into the accumulator. A touch within the
// tolerance of an existing level of the same type bumps its count and moves
// its price to the plain mean of the old and new price, so repeated merges
// drift toward recent touches.
func merge(found []level, price float64, kind models.LevelType) []level {
	for i := range found {
		if found[i].kind != kind {
			continue
		}
		if math.Abs(found[i].price-price) <= price*mergeTolerance {
			found[i].touches++
			found[i].price = (found[i].price + price) / 2
			return found
		}
	}
	return append(found, level{price: price, kind: kind, touches: 1})
}

func isSwingLow(candles []models.Candle, i int) bool {
	low := candles[i].Low
	return low < candles[i-1].Low && low < candles[i-2].Low &&
		low < candles[i+1].Low && low < candles[i+2].Low
}

func isSwingHigh(candles []models.Candle, i int) bool {
	high := candles[i].High
	return high > candles[i-1].High && high > candles[i-2].High &&
		high > candles[i+1].High && high > candles[i+2].High
}
