package models

import (
	"time"
)

// Candle represents a single OHLCV price candle. Sequences passed into the
// analysis pipeline must be sorted by ascending timestamp with no duplicates.
type Candle struct {
	Timestamp   time.Time `json:"timestamp"`
	Open        float64   `json:"open"`
	High        float64   `json:"high"`
	Low         float64   `json:"low"`
	Close       float64   `json:"close"`
	Volume      float64   `json:"volume"`
	QuoteVolume float64   `json:"quote_volume,omitempty"`
	Trades      int64     `json:"trades,omitempty"`
}

// Closes extracts the close prices of a candle sequence.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// Volumes extracts the volumes of a candle sequence.
func Volumes(candles []Candle) []float64 {
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		volumes[i] = c.Volume
	}
	return volumes
}
