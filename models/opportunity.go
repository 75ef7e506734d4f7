package models

// OpportunityType classifies how a trading opportunity was produced.
type OpportunityType string

const (
	OpportunityTrendFollowing OpportunityType = "trend_following"
	OpportunityMeanReversion  OpportunityType = "mean_reversion"
	OpportunityBreakout       OpportunityType = "breakout"
	OpportunityMomentum       OpportunityType = "momentum"
)

// Direction is the suggested trade side.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Opportunity is a scored, directional trading suggestion. Reasoning lists
// the scoring rules that fired, in evaluation order. TargetPrice, StopLoss
// and RiskRewardRatio are nil when ATR was unavailable.
type Opportunity struct {
	Type            OpportunityType `json:"type"`
	Direction       Direction       `json:"direction"`
	Score           float64         `json:"score"`
	EntryPrice      float64         `json:"entry_price"`
	TargetPrice     *float64        `json:"target_price,omitempty"`
	StopLoss        *float64        `json:"stop_loss,omitempty"`
	RiskRewardRatio *float64        `json:"risk_reward_ratio,omitempty"`
	Reasoning       []string        `json:"reasoning"`
	Indicators      IndicatorSet    `json:"indicators"`
}
