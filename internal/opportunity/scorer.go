package opportunity

import (
	"fmt"
	"math"

	"market-analyzer/models"
)

const (
	baseScore = 50

	targetATRMultiple = 2.0
	stopATRMultiple   = 1.5
)

// Score rates a trading opportunity from the trend assessment and the
// indicator set. Rules run in a fixed order (RSI, MACD, trend, volume, ADX)
// and each appends a reason string; later rules overwrite the type and
// direction chosen by earlier ones. The final score is clamped to [0,100].
// Returns nil when no trend assessment is available.
func Score(price float64, trend *models.TrendAssessment, set models.IndicatorSet) *models.Opportunity {
	if trend == nil {
		return nil
	}

	opp := &models.Opportunity{
		Type:       models.OpportunityMomentum,
		Direction:  models.DirectionLong,
		Score:      baseScore,
		EntryPrice: price,
		Indicators: set,
	}

	scoreRSI(opp, set.RSI)
	scoreMACD(opp, set.MACD, trend)
	scoreTrend(opp, trend)
	if trend.VolumeConfirmation {
		opp.Score += 10
		opp.Reasoning = append(opp.Reasoning, "volume confirms the move")
	}
	if set.ADX != nil && set.ADX.ADX > 25 {
		opp.Score += 5
		opp.Reasoning = append(opp.Reasoning, fmt.Sprintf("ADX %.1f signals an established trend", set.ADX.ADX))
	}

	opp.Score = math.Max(0, math.Min(100, opp.Score))
	applyTargets(opp, set.ATR)
	return opp
}

func scoreRSI(opp *models.Opportunity, rsi *models.RSIResult) {
	if rsi == nil {
		return
	}
	switch rsi.Signal {
	case models.RSIOversold:
		opp.Score += 15
		opp.Direction = models.DirectionLong
		opp.Type = models.OpportunityMeanReversion
		opp.Reasoning = append(opp.Reasoning, fmt.Sprintf("RSI %.1f oversold, bounce candidate", rsi.Value))
	case models.RSIOverbought:
		opp.Score += 10
		opp.Direction = models.DirectionShort
		opp.Type = models.OpportunityMeanReversion
		opp.Reasoning = append(opp.Reasoning, fmt.Sprintf("RSI %.1f overbought, pullback candidate", rsi.Value))
	}
}

func scoreMACD(opp *models.Opportunity, macd *models.MACDResult, trend *models.TrendAssessment) {
	if macd == nil {
		return
	}
	switch macd.Trend {
	case models.MACDBullish:
		if opp.Direction == models.DirectionLong {
			opp.Score += 10
			opp.Reasoning = append(opp.Reasoning, "MACD bullish crossover confirms long")
		}
		if trend.Type == models.TrendUptrend || trend.Type == models.TrendBreakoutUp {
			opp.Score += 5
			opp.Reasoning = append(opp.Reasoning, "MACD aligned with trend")
		}
	case models.MACDBearish:
		if opp.Direction == models.DirectionShort {
			opp.Score += 10
			opp.Reasoning = append(opp.Reasoning, "MACD bearish crossover confirms short")
		}
		if trend.Type == models.TrendDowntrend || trend.Type == models.TrendBreakoutDown {
			opp.Score += 5
			opp.Reasoning = append(opp.Reasoning, "MACD aligned with trend")
		}
	}
}

func scoreTrend(opp *models.Opportunity, trend *models.TrendAssessment) {
	strong := trend.Strength == models.StrengthStrong || trend.Strength == models.StrengthVeryStrong

	switch trend.Type {
	case models.TrendUptrend:
		if strong {
			opp.Score += 10
			opp.Direction = models.DirectionLong
			opp.Type = models.OpportunityTrendFollowing
			opp.Reasoning = append(opp.Reasoning, fmt.Sprintf("%s uptrend", trend.Strength))
		}
	case models.TrendDowntrend:
		if strong {
			opp.Score += 10
			opp.Direction = models.DirectionShort
			opp.Type = models.OpportunityTrendFollowing
			opp.Reasoning = append(opp.Reasoning, fmt.Sprintf("%s downtrend", trend.Strength))
		}
	case models.TrendBreakoutUp:
		opp.Score += 20
		opp.Direction = models.DirectionLong
		opp.Type = models.OpportunityBreakout
		opp.Reasoning = append(opp.Reasoning, "price broke above resistance")
	case models.TrendBreakoutDown:
		opp.Score += 15
		opp.Direction = models.DirectionShort
		opp.Type = models.OpportunityBreakout
		opp.Reasoning = append(opp.Reasoning, "price broke below support")
	}
}

// applyTargets derives target and stop levels from ATR. Both legs stay nil
// when ATR is absent or zero, and the risk/reward ratio is only reported
// when both legs exist.
func applyTargets(opp *models.Opportunity, atr *models.ATRResult) {
	if atr == nil || atr.Value <= 0 {
		return
	}

	var target, stop float64
	if opp.Direction == models.DirectionLong {
		target = opp.EntryPrice + targetATRMultiple*atr.Value
		stop = opp.EntryPrice - stopATRMultiple*atr.Value
	} else {
		target = opp.EntryPrice - targetATRMultiple*atr.Value
		stop = opp.EntryPrice + stopATRMultiple*atr.Value
	}

	ratio := math.Abs(target-opp.EntryPrice) / math.Abs(opp.EntryPrice-stop)

	opp.TargetPrice = &target
	opp.StopLoss = &stop
	opp.RiskRewardRatio = &ratio
}
