package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"market-analyzer/internal/analyze"
	"market-analyzer/internal/config"
	"market-analyzer/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting market analyzer")
	printConfig(cfg)

	candles, err := loadCandles(cfg.CandlesFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.CandlesFile).Msg("Failed to load candles")
	}
	log.Info().Int("count", len(candles)).Msg("Loaded candles")

	analyzer := analyze.New(cfg.Indicators)

	result, err := analyzer.Analyze(cfg.Symbol, cfg.Timeframe, candles)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	opp := analyzer.FindOpportunity(candles, result)
	if opp != nil && opp.Score >= cfg.MinScore {
		log.Info().
			Str("direction", string(opp.Direction)).
			Float64("score", opp.Score).
			Msg("Actionable opportunity")
	}

	printResult(result, opp)
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	log.Info().
		Str("Symbol", cfg.Symbol).
		Str("Timeframe", cfg.Timeframe).
		Str("CandlesFile", cfg.CandlesFile).
		Int("RSIPeriod", cfg.Indicators.RSIPeriod).
		Int("MACDFastPeriod", cfg.Indicators.FastPeriod).
		Int("MACDSlowPeriod", cfg.Indicators.SlowPeriod).
		Int("MACDSignalPeriod", cfg.Indicators.SignalPeriod).
		Int("BBPeriod", cfg.Indicators.BollingerPeriod).
		Float64("BBStdDev", cfg.Indicators.StdDev).
		Int("ADXPeriod", cfg.Indicators.ADXPeriod).
		Int("ATRPeriod", cfg.Indicators.ATRPeriod).
		Float64("MinScore", cfg.MinScore).
		Msg("Configuration loaded")
}

// loadCandles reads a CSV file with columns
// timestamp,open,high,low,close,volume. Timestamps are RFC3339 or
// "2006-01-02 15:04:05"; a header row is skipped if present.
func loadCandles(path string) ([]models.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening candle file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var candles []models.Candle
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading candle file: %w", err)
		}
		if len(record) < 6 {
			return nil, fmt.Errorf("expected 6 columns, got %d", len(record))
		}

		ts, err := parseTimestamp(record[0])
		if err != nil {
			if len(candles) == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("parsing timestamp %q: %w", record[0], err)
		}

		values := make([]float64, 5)
		for i := 0; i < 5; i++ {
			values[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing column %d: %w", i+1, err)
			}
		}

		candles = append(candles, models.Candle{
			Timestamp: ts,
			Open:      values[0],
			High:      values[1],
			Low:       values[2],
			Close:     values[3],
			Volume:    values[4],
		})
	}

	return candles, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// printResult writes the analysis envelope and any opportunity as JSON on
// stdout.
func printResult(result *models.AnalysisResult, opp *models.Opportunity) {
	output := struct {
		Analysis    *models.AnalysisResult `json:"analysis"`
		Opportunity *models.Opportunity    `json:"opportunity,omitempty"`
	}{result, opp}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode result")
		return
	}
	fmt.Println(string(encoded))
}
