package models

import (
	"time"
)

// LevelType distinguishes support from resistance.
type LevelType string

const (
	LevelSupport    LevelType = "support"
	LevelResistance LevelType = "resistance"
)

// SupportResistanceLevel is a clustered price zone built from local extrema.
// Strength grows with the touch count and is capped at 1.
type SupportResistanceLevel struct {
	Price    float64   `json:"price"`
	Type     LevelType `json:"type"`
	Touches  int       `json:"touches"`
	Strength float64   `json:"strength"`
}

// TrendType is the classified market direction.
type TrendType string

const (
	TrendUptrend         TrendType = "uptrend"
	TrendDowntrend       TrendType = "downtrend"
	TrendSideways        TrendType = "sideways"
	TrendBreakoutUp      TrendType = "breakout_up"
	TrendBreakoutDown    TrendType = "breakout_down"
	TrendReversalBullish TrendType = "reversal_bullish"
	TrendReversalBearish TrendType = "reversal_bearish"
)

// TrendAssessment is the combined trend classification for one candle window.
// SupportLevel and ResistanceLevel are nil when no level sits on the relevant
// side of the current price.
type TrendAssessment struct {
	Type               TrendType     `json:"type"`
	Strength           TrendStrength `json:"strength"`
	Confidence         float64       `json:"confidence"`
	StartDate          time.Time     `json:"start_date"`
	PriceChangePercent float64       `json:"price_change_percent"`
	SupportLevel       *float64      `json:"support_level,omitempty"`
	ResistanceLevel    *float64      `json:"resistance_level,omitempty"`
	VolumeConfirmation bool          `json:"volume_confirmation"`
}
