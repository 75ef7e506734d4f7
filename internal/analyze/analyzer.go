package analyze

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"market-analyzer/internal/config"
	"market-analyzer/internal/indicators"
	"market-analyzer/internal/levels"
	"market-analyzer/internal/opportunity"
	"market-analyzer/internal/trend"
	"market-analyzer/models"
)

// MinCandles is the hard floor for one analysis pass. Sub-operations degrade
// to absent results on their own; only this floor is a hard error.
const MinCandles = 50

// ErrInsufficientData is returned when fewer than MinCandles candles are
// supplied.
var ErrInsufficientData = errors.New("insufficient candle data")

// Analyzer runs the full analysis pipeline: indicators and level detection,
// then trend classification, then opportunity scoring. It holds only an
// immutable parameter set, so one instance is safe for concurrent use.
type Analyzer struct {
	params config.IndicatorParams
	logger zerolog.Logger
}

// New creates an Analyzer. Zero-valued parameter fields are replaced with
// the canonical defaults once, up front.
func New(params config.IndicatorParams) *Analyzer {
	return &Analyzer{
		params: params.WithDefaults(),
		logger: log.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze runs one analysis pass over an ascending candle sequence. Symbol
// and timeframe are echoed into the result envelope unvalidated.
func (a *Analyzer) Analyze(symbol, timeframe string, candles []models.Candle) (*models.AnalysisResult, error) {
	if len(candles) < MinCandles {
		return nil, fmt.Errorf("%w: got %d candles, need at least %d", ErrInsufficientData, len(candles), MinCandles)
	}
	if err := validateOrder(candles); err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", symbol, err)
	}

	set := indicators.Compute(candles, a.params)
	srLevels := levels.Detect(candles)
	assessment := trend.Classify(candles, set, srLevels)

	if set.ADX == nil || set.ATR == nil || set.MACD == nil {
		a.logger.Debug().
			Str("symbol", symbol).
			Bool("macd", set.MACD != nil).
			Bool("adx", set.ADX != nil).
			Bool("atr", set.ATR != nil).
			Msg("some indicators absent for this window")
	}

	return &models.AnalysisResult{
		Symbol:            symbol,
		Timeframe:         timeframe,
		Timestamp:         candles[len(candles)-1].Timestamp,
		RSI:               set.RSI,
		MACD:              set.MACD,
		Bollinger:         set.Bollinger,
		EMA:               set.EMA,
		SMA:               set.SMA,
		ADX:               set.ADX,
		ATR:               set.ATR,
		SupportResistance: srLevels,
		Trend:             assessment,
	}, nil
}

// FindOpportunity scores a trading opportunity from a completed analysis.
// Returns nil when the analysis produced no trend assessment.
func (a *Analyzer) FindOpportunity(candles []models.Candle, result *models.AnalysisResult) *models.Opportunity {
	if result == nil || len(candles) == 0 {
		return nil
	}

	price := candles[len(candles)-1].Close
	opp := opportunity.Score(price, result.Trend, result.Indicators())
	if opp != nil {
		a.logger.Info().
			Str("symbol", result.Symbol).
			Str("type", string(opp.Type)).
			Str("direction", string(opp.Direction)).
			Float64("score", opp.Score).
			Msg("opportunity scored")
	}
	return opp
}

// validateOrder enforces the input contract: ascending timestamps, no
// duplicates.
func validateOrder(candles []models.Candle) error {
	for i := 1; i < len(candles); i++ {
		if !candles[i].Timestamp.After(candles[i-1].Timestamp) {
			return fmt.Errorf("candles out of order at index %d", i)
		}
	}
	return nil
}
