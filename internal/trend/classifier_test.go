package trend

import (
	"math"
	"testing"
	"time"

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

func closesTo(from, to float64, n int) []models.Candle {
	step := (to - from) / float64(n-1)
	return generateTestCandles(n, func(i int) models.Candle {
		close := from + step*float64(i)
		return models.Candle{
			Open:   close,
			High:   close + 0.5,
			Low:    close - 0.5,
			Close:  close,
			Volume: 1000,
		}
	})
}

func TestClassifyInsufficientData(t *testing.T) {
	candles := closesTo(100, 105, 19)
	if got := Classify(candles, models.IndicatorSet{}, nil); got != nil {
		t.Errorf("Classify() on 19 candles = %+v, want nil", got)
	}
}

func TestClassifyBaseTypes(t *testing.T) {
	tests := []struct {
		name     string
		candles  []models.Candle
		expected models.TrendType
	}{
		{"rising more than five percent", closesTo(100, 112, 20), models.TrendUptrend},
		{"falling more than five percent", closesTo(100, 88, 20), models.TrendDowntrend},
		{"flat", closesTo(100, 100, 20), models.TrendSideways},
		{"small move stays sideways", closesTo(100, 103, 20), models.TrendSideways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.candles, models.IndicatorSet{}, nil)
			if got == nil {
				t.Fatal("Classify() = nil, want an assessment")
			}
			if got.Type != tt.expected {
				t.Errorf("trend type = %v, want %v", got.Type, tt.expected)
			}
		})
	}
}

func TestClassifyFlatSeries(t *testing.T) {
	candles := closesTo(100, 100, 20)
	got := Classify(candles, models.IndicatorSet{}, nil)
	if got == nil {
		t.Fatal("Classify() = nil, want an assessment")
	}
	if got.PriceChangePercent != 0 {
		t.Errorf("price change = %v, want 0", got.PriceChangePercent)
	}
	if got.Type != models.TrendSideways {
		t.Errorf("trend type = %v, want sideways", got.Type)
	}
	if got.StartDate != candles[0].Timestamp {
		t.Errorf("start date = %v, want %v", got.StartDate, candles[0].Timestamp)
	}
}

func TestClassifyStrength(t *testing.T) {
	// without ADX the strength falls back to the price change magnitude
	got := Classify(closesTo(100, 112, 20), models.IndicatorSet{}, nil)
	if got.Strength != models.StrengthStrong {
		t.Errorf("strength = %v, want strong for a 12%% move", got.Strength)
	}

	// ADX wins over the fallback when present
	set := models.IndicatorSet{
		ADX: &models.ADXResult{ADX: 55, TrendStrength: models.StrengthVeryStrong},
	}
	got = Classify(closesTo(100, 112, 20), set, nil)
	if got.Strength != models.StrengthVeryStrong {
		t.Errorf("strength = %v, want very_strong from ADX", got.Strength)
	}
}

func TestClassifyBreakoutOverrides(t *testing.T) {
	srLevels := []models.SupportResistanceLevel{
		{Price: 100, Type: models.LevelResistance, Touches: 3, Strength: 0.6},
	}
	// last close 101: just above the broken resistance, inside 2%
	got := Classify(closesTo(98, 101, 20), models.IndicatorSet{}, srLevels)
	if got.Type != models.TrendBreakoutUp {
		t.Errorf("trend type = %v, want breakout_up", got.Type)
	}
	if got.ResistanceLevel == nil || *got.ResistanceLevel != 100 {
		t.Errorf("resistance level = %v, want 100", got.ResistanceLevel)
	}

	srLevels = []models.SupportResistanceLevel{
		{Price: 100, Type: models.LevelSupport, Touches: 3, Strength: 0.6},
	}
	got = Classify(closesTo(102, 99, 20), models.IndicatorSet{}, srLevels)
	if got.Type != models.TrendBreakoutDown {
		t.Errorf("trend type = %v, want breakout_down", got.Type)
	}

	// far beyond the level is no longer a fresh breakout
	srLevels = []models.SupportResistanceLevel{
		{Price: 100, Type: models.LevelResistance, Touches: 3, Strength: 0.6},
	}
	got = Classify(closesTo(100, 110, 20), models.IndicatorSet{}, srLevels)
	if got.Type != models.TrendUptrend {
		t.Errorf("trend type = %v, want plain uptrend", got.Type)
	}
}

func TestClassifyReversalOverrides(t *testing.T) {
	oversold := models.IndicatorSet{
		RSI: &models.RSIResult{Value: 25, Signal: models.RSIOversold},
	}
	got := Classify(closesTo(100, 102, 20), oversold, nil)
	if got.Type != models.TrendReversalBullish {
		t.Errorf("trend type = %v, want reversal_bullish", got.Type)
	}

	overbought := models.IndicatorSet{
		RSI: &models.RSIResult{Value: 78, Signal: models.RSIOverbought},
	}
	got = Classify(closesTo(102, 100, 20), overbought, nil)
	if got.Type != models.TrendReversalBearish {
		t.Errorf("trend type = %v, want reversal_bearish", got.Type)
	}

	// oversold with falling price is not a reversal
	got = Classify(closesTo(102, 100, 20), oversold, nil)
	if got.Type != models.TrendSideways {
		t.Errorf("trend type = %v, want sideways", got.Type)
	}
}

func TestClassifyConfidence(t *testing.T) {
	tests := []struct {
		name     string
		set      models.IndicatorSet
		expected float64
	}{
		{"no indicators", models.IndicatorSet{}, 0.5},
		{
			"all confirmations",
			models.IndicatorSet{
				ADX:  &models.ADXResult{ADX: 30, TrendStrength: models.StrengthStrong},
				MACD: &models.MACDResult{Trend: models.MACDBullish},
				RSI:  &models.RSIResult{Value: 75, Signal: models.RSIOverbought},
			},
			0.95,
		},
		{
			"weak adx does not count",
			models.IndicatorSet{ADX: &models.ADXResult{ADX: 15, TrendStrength: models.StrengthWeak}},
			0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(closesTo(100, 100, 20), tt.set, nil)
			if math.Abs(got.Confidence-tt.expected) > 1e-9 {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.expected)
			}
		})
	}
}

func TestClassifyVolumeConfirmation(t *testing.T) {
	spiking := generateTestCandles(60, func(i int) models.Candle {
		volume := 100.0
		if i >= 55 {
			volume = 300
		}
		return models.Candle{Open: 100, High: 100.5, Low: 99.5, Close: 100, Volume: volume}
	})
	got := Classify(spiking, models.IndicatorSet{}, nil)
	if !got.VolumeConfirmation {
		t.Error("volume confirmation = false, want true for a late volume spike")
	}

	flat := closesTo(100, 100, 60)
	got = Classify(flat, models.IndicatorSet{}, nil)
	if got.VolumeConfirmation {
		t.Error("volume confirmation = true, want false for flat volume")
	}
}
