package analyze

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"market-analyzer/internal/config"
	"market-analyzer/models"
)

func generateTestCandles(n int, generator func(i int) models.Candle) []models.Candle {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, n)
	for i := 0; i < n; i++ {
		c := generator(i)
		if c.Timestamp.IsZero() {
			c.Timestamp = base.Add(time.Duration(i) * time.Hour)
		}
		candles[i] = c
	}
	return candles
}

func risingCandles(n int) []models.Candle {
	return generateTestCandles(n, func(i int) models.Candle {
		close := 100 + float64(i)
		return models.Candle{
			Open:   close - 0.5,
			High:   close + 1,
			Low:    close - 1,
			Close:  close,
			Volume: 1000,
		}
	})
}

func TestAnalyzeInsufficientData(t *testing.T) {
	analyzer := New(config.IndicatorParams{})

	_, err := analyzer.Analyze("BTC/USDT", "1h", risingCandles(49))
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Analyze() error = %v, want ErrInsufficientData", err)
	}

	if _, err := analyzer.Analyze("BTC/USDT", "1h", risingCandles(50)); err != nil {
		t.Errorf("Analyze() on 50 candles failed: %v", err)
	}
}

func TestAnalyzeRejectsUnorderedCandles(t *testing.T) {
	analyzer := New(config.IndicatorParams{})

	candles := risingCandles(60)
	candles[30].Timestamp = candles[29].Timestamp // duplicate

	_, err := analyzer.Analyze("BTC/USDT", "1h", candles)
	if err == nil {
		t.Fatal("Analyze() accepted duplicate timestamps")
	}
	if errors.Is(err, ErrInsufficientData) {
		t.Error("ordering violation misreported as insufficient data")
	}
}

func TestAnalyzeUptrendEndToEnd(t *testing.T) {
	analyzer := New(config.IndicatorParams{})

	result, err := analyzer.Analyze("BTC/USDT", "1h", risingCandles(60))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	if result.Symbol != "BTC/USDT" || result.Timeframe != "1h" {
		t.Errorf("envelope = %s/%s, want BTC/USDT/1h", result.Symbol, result.Timeframe)
	}
	if result.Trend == nil {
		t.Fatal("trend assessment absent")
	}
	if result.Trend.Type != models.TrendUptrend {
		t.Errorf("trend type = %v, want uptrend", result.Trend.Type)
	}
	if s := result.Trend.Strength; s != models.StrengthStrong && s != models.StrengthVeryStrong {
		t.Errorf("trend strength = %v, want strong or very_strong", s)
	}
	if result.RSI == nil {
		t.Fatal("RSI absent")
	}
	if result.RSI.Signal == models.RSIOversold {
		t.Error("RSI reported oversold on a strict uptrend")
	}

	opp := analyzer.FindOpportunity(risingCandles(60), result)
	if opp == nil {
		t.Fatal("FindOpportunity() = nil, want an opportunity")
	}
	if opp.Direction != models.DirectionLong {
		t.Errorf("direction = %v, want long", opp.Direction)
	}
	if opp.Score < 60 {
		t.Errorf("score = %v, want >= 60", opp.Score)
	}
	if opp.EntryPrice != 159 {
		t.Errorf("entry price = %v, want last close 159", opp.EntryPrice)
	}
	if opp.TargetPrice == nil || opp.StopLoss == nil || opp.RiskRewardRatio == nil {
		t.Error("ATR targets missing on a full window")
	} else if *opp.RiskRewardRatio <= 0 {
		t.Errorf("risk/reward = %v, want > 0", *opp.RiskRewardRatio)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	analyzer := New(config.IndicatorParams{})
	candles := risingCandles(70)

	first, err := analyzer.Analyze("ETH/USDT", "4h", candles)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	second, err := analyzer.Analyze("ETH/USDT", "4h", candles)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different results")
	}
}

func TestFindOpportunityNilInputs(t *testing.T) {
	analyzer := New(config.IndicatorParams{})

	if got := analyzer.FindOpportunity(nil, nil); got != nil {
		t.Errorf("FindOpportunity(nil, nil) = %+v, want nil", got)
	}

	result := &models.AnalysisResult{Symbol: "X"}
	if got := analyzer.FindOpportunity(risingCandles(60), result); got != nil {
		t.Errorf("FindOpportunity() without a trend = %+v, want nil", got)
	}
}
