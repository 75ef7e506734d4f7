package analyze

import (
	"context"
	"sync"

	"market-analyzer/models"
)

// Request is one symbol's analysis job for AnalyzeBatch.
type Request struct {
	Symbol    string
	Timeframe string
	Candles   []models.Candle
}

// BatchResult pairs a request's outcome with its symbol. Exactly one of
// Result/Err is set; Opportunity is set only when the analysis succeeded and
// produced a trend assessment.
type BatchResult struct {
	Symbol      string
	Result      *models.AnalysisResult
	Opportunity *models.Opportunity
	Err         error
}

// AnalyzeBatch runs independent per-symbol analyses on a bounded worker
// pool. Analyses share no state, so workers need no synchronization beyond
// the job channel. Cancelling the context stops dispatching new jobs;
// in-flight analyses run to completion. Results arrive in completion order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, requests []Request, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(requests) {
		workers = len(requests)
	}

	jobs := make(chan Request)
	results := make(chan BatchResult, len(requests))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				res, err := a.Analyze(req.Symbol, req.Timeframe, req.Candles)
				br := BatchResult{Symbol: req.Symbol, Result: res, Err: err}
				if err == nil {
					br.Opportunity = a.FindOpportunity(req.Candles, res)
				}
				results <- br
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, req := range requests {
			select {
			case jobs <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]BatchResult, 0, len(requests))
	for br := range results {
		out = append(out, br)
	}
	return out
}
