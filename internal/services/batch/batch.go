// Package batch scores lead collections concurrently. Scoring is
// embarrassingly parallel: no function reads or writes state shared
// across items, so the only coordination needed is partitioning the
// input.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"crm-insights-engine/internal/metrics"
	"crm-insights-engine/internal/models"
	"crm-insights-engine/internal/services/engine"
	"crm-insights-engine/internal/utils"
)

// Result is one scored lead, in the same position as its input.
type Result struct {
	Lead     *models.Lead `json:"lead"`
	FitScore int          `json:"fit_score"`
}

// Processor fans lead scoring out over a bounded worker pool.
type Processor struct {
	engine  *engine.Engine
	workers int
}

// NewProcessor creates a processor with the given worker count; zero or
// negative means NumCPU.
func NewProcessor(eng *engine.Engine, workers int) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{engine: eng, workers: workers}
}

// ScoreLeads scores every lead and returns results in input order. The
// context is checked between items: cancellation stops dispatching further
// work, and already-dispatched items finish (each completes in bounded
// time, there are no suspension points inside an item). On cancellation
// the slice is returned as scored so far along with ctx.Err().
func (p *Processor) ScoreLeads(ctx context.Context, leads []*models.Lead) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(leads))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = Result{
					Lead:     leads[i],
					FitScore: p.engine.ScoreLeadFit(leads[i]),
				}
				metrics.LeadsScored.Inc()
			}
		}()
	}

	var err error
dispatch:
	for i := range leads {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	elapsed := time.Since(start)
	metrics.BatchDuration.Observe(elapsed.Seconds())
	metrics.BatchSize.Observe(float64(len(leads)))

	utils.GetLogger().Info("Batch scoring complete",
		zap.Int("leads", len(leads)),
		zap.Int("workers", p.workers),
		zap.Duration("elapsed", elapsed),
		zap.Bool("cancelled", err != nil),
	)

	return results, err
}

// GenerateRecommendations runs the recommendation generator and records
// per-type metrics.
func (p *Processor) GenerateRecommendations(leads []*models.Lead, deals []*models.Deal, tasks []*models.Task) []models.Recommendation {
	recommendations := p.engine.GenerateRecommendations(leads, deals, tasks)
	for _, rec := range recommendations {
		metrics.RecommendationsGenerated.WithLabelValues(string(rec.Type)).Inc()
	}
	return recommendations
}
