package models

import (
	"time"
)

// AnalysisResult is the envelope returned by one analysis pass. Symbol and
// timeframe are echoed through opaquely; Timestamp is the last candle's
// timestamp. Nil sub-results mean the window was too short for that
// indicator, not a computed zero.
type AnalysisResult struct {
	Symbol            string                   `json:"symbol"`
	Timeframe         string                   `json:"timeframe"`
	Timestamp         time.Time                `json:"timestamp"`
	RSI               *RSIResult               `json:"rsi,omitempty"`
	MACD              *MACDResult              `json:"macd,omitempty"`
	Bollinger         *BollingerResult         `json:"bollinger,omitempty"`
	EMA               []MovingAverage          `json:"ema,omitempty"`
	SMA               []MovingAverage          `json:"sma,omitempty"`
	ADX               *ADXResult               `json:"adx,omitempty"`
	ATR               *ATRResult               `json:"atr,omitempty"`
	SupportResistance []SupportResistanceLevel `json:"support_resistance"`
	Trend             *TrendAssessment         `json:"trend,omitempty"`
}

// Indicators reassembles the indicator set embedded in the envelope.
func (r *AnalysisResult) Indicators() IndicatorSet {
	return IndicatorSet{
		RSI:       r.RSI,
		MACD:      r.MACD,
		Bollinger: r.Bollinger,
		EMA:       r.EMA,
		SMA:       r.SMA,
		ADX:       r.ADX,
		ATR:       r.ATR,
	}
}
