package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the runner configuration for cmd/analyzer. The library itself
// is configured only through IndicatorParams; none of these variables leak
// into the analysis pipeline.
type Config struct {
	Symbol      string
	Timeframe   string
	CandlesFile string
	LogLevel    string
	MinScore    float64
	Indicators  IndicatorParams
}

// Load initializes the runner configuration from environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Config{
		Symbol:      getEnvWithDefault("SYMBOL", "BTC/USDT"),
		Timeframe:   getEnvWithDefault("TIMEFRAME", "1h"),
		CandlesFile: getEnvWithDefault("CANDLES_FILE", "candles.csv"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		MinScore:    getEnvFloatWithDefault("MIN_SCORE", 60),
		Indicators: IndicatorParams{
			RSIPeriod:       getEnvIntWithDefault("RSI_PERIOD", 0),
			FastPeriod:      getEnvIntWithDefault("MACD_FAST_PERIOD", 0),
			SlowPeriod:      getEnvIntWithDefault("MACD_SLOW_PERIOD", 0),
			SignalPeriod:    getEnvIntWithDefault("MACD_SIGNAL_PERIOD", 0),
			BollingerPeriod: getEnvIntWithDefault("BB_PERIOD", 0),
			StdDev:          getEnvFloatWithDefault("BB_STD_DEV", 0),
			EMAPeriods:      getEnvIntsWithDefault("EMA_PERIODS", nil),
			SMAPeriods:      getEnvIntsWithDefault("SMA_PERIODS", nil),
			ADXPeriod:       getEnvIntWithDefault("ADX_PERIOD", 0),
			ATRPeriod:       getEnvIntWithDefault("ATR_PERIOD", 0),
		}.WithDefaults(),
	}

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvIntsWithDefault(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var periods []int
	for _, part := range strings.Split(value, ",") {
		intValue, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		periods = append(periods, intValue)
	}
	return periods
}
