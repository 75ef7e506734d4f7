package models

// RSISignal classifies the current RSI reading.
type RSISignal string

const (
	RSIOversold   RSISignal = "oversold"
	RSIOverbought RSISignal = "overbought"
	RSINeutral    RSISignal = "neutral"
)

// MACDTrend classifies the relation between the MACD line, its signal line
// and the histogram.
type MACDTrend string

const (
	MACDBullish MACDTrend = "bullish"
	MACDBearish MACDTrend = "bearish"
	MACDNeutral MACDTrend = "neutral"
)

// TrendStrength grades trend strength, either from ADX or from the price
// change fallback in the trend classifier.
type TrendStrength string

const (
	StrengthWeak       TrendStrength = "weak"
	StrengthModerate   TrendStrength = "moderate"
	StrengthStrong     TrendStrength = "strong"
	StrengthVeryStrong TrendStrength = "very_strong"
)

// VolatilityLevel grades ATR relative to the current price.
type VolatilityLevel string

const (
	VolatilityLow    VolatilityLevel = "low"
	VolatilityMedium VolatilityLevel = "medium"
	VolatilityHigh   VolatilityLevel = "high"
)

// RSIResult holds the last RSI value and its classification.
type RSIResult struct {
	Value  float64   `json:"value"`
	Signal RSISignal `json:"signal"`
}

// MACDResult holds the last MACD, signal and histogram values.
type MACDResult struct {
	MACD      float64   `json:"macd"`
	Signal    float64   `json:"signal"`
	Histogram float64   `json:"histogram"`
	Trend     MACDTrend `json:"trend"`
}

// BollingerResult holds the last Bollinger Band values. PercentB is the
// position of the last close inside the bands; when the bands collapse to a
// single line it is pinned to 0.5.
type BollingerResult struct {
	Upper     float64 `json:"upper"`
	Middle    float64 `json:"middle"`
	Lower     float64 `json:"lower"`
	PercentB  float64 `json:"percent_b"`
	Bandwidth float64 `json:"bandwidth"`
}

// MovingAverage is the final value of an EMA or SMA for one period.
type MovingAverage struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

// ADXResult holds the directional movement readings.
type ADXResult struct {
	ADX           float64       `json:"adx"`
	PlusDI        float64       `json:"plus_di"`
	MinusDI       float64       `json:"minus_di"`
	TrendStrength TrendStrength `json:"trend_strength"`
}

// ATRResult holds the average true range and its volatility grade.
type ATRResult struct {
	Value           float64         `json:"value"`
	VolatilityLevel VolatilityLevel `json:"volatility_level"`
}

// IndicatorSet collects the outputs of all indicator sub-operations for one
// candle window. A nil sub-result means the underlying series was too short
// to produce a value; zero is never used to signal absence.
type IndicatorSet struct {
	RSI       *RSIResult       `json:"rsi,omitempty"`
	MACD      *MACDResult      `json:"macd,omitempty"`
	Bollinger *BollingerResult `json:"bollinger,omitempty"`
	EMA       []MovingAverage  `json:"ema,omitempty"`
	SMA       []MovingAverage  `json:"sma,omitempty"`
	ADX       *ADXResult       `json:"adx,omitempty"`
	ATR       *ATRResult       `json:"atr,omitempty"`
}
