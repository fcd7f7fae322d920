package engine

import (
	"math"
	"time"

	"crm-insights-engine/internal/models"
)

// Multiplier over the average close time past which a deal counts as
// stagnant for prediction purposes.
const stagnationFactor = 1.5

// Probability multiplier applied to stagnant deals.
const stagnationPenalty = 0.8

// PredictDealOutcome adjusts a deal's stated win probability and estimates
// remaining time-to-close using historical win-rate and deal-age signals.
// With no resolved history the configured fallbacks apply (30-day cycle,
// 0.3 win rate by default), so there is never a division by zero. A nil
// deal is treated as a zero-probability, zero-age deal.
//
// The historical win rate is reported on the prediction but intentionally
// not folded into the probability adjustment; see DealPrediction.
func (e *Engine) PredictDealOutcome(deal *models.Deal, history []*models.Deal) models.DealPrediction {
	now := e.now()

	resolved := make([]*models.Deal, 0, len(history))
	for _, d := range history {
		if d != nil && d.Stage.IsClosed() {
			resolved = append(resolved, d)
		}
	}

	avgCloseTime := e.defaultCloseDays
	winRate := e.defaultWinRate
	if len(resolved) > 0 {
		total := 0.0
		won := 0
		for _, d := range resolved {
			total += closeCycleDays(d, now)
			if d.Stage.IsWon() {
				won++
			}
		}
		avgCloseTime = total / float64(len(resolved))
		winRate = float64(won) / float64(len(resolved))
	}

	var dealAge float64
	adjustedProbability := 0.0
	if deal != nil {
		dealAge = deal.Age(now)
		adjustedProbability = float64(deal.Probability) / 100
	}

	if dealAge > avgCloseTime*stagnationFactor {
		adjustedProbability *= stagnationPenalty
	}

	recommendations := make([]string, 0, 4)
	if adjustedProbability < 0.5 {
		recommendations = append(recommendations,
			"Schedule stakeholder alignment call",
			"Identify and address objections",
		)
	}
	if dealAge > avgCloseTime {
		recommendations = append(recommendations,
			"Create urgency with limited-time offers",
			"Involve senior leadership",
		)
	}

	return models.DealPrediction{
		Probability:     clampInt(int(math.Round(adjustedProbability*100)), 0, 100),
		TimeToCloseDays: math.Max(1, avgCloseTime-dealAge),
		WinRate:         winRate,
		Recommendations: recommendations,
	}
}

// closeCycleDays measures the planned sales cycle of a resolved deal in
// fractional days. Missing dates fall back to now, matching the degraded
// inputs contract.
func closeCycleDays(d *models.Deal, now time.Time) float64 {
	created := d.CreatedAt
	if created.IsZero() {
		created = now
	}
	expected := now
	if d.ExpectedCloseDate != nil {
		expected = *d.ExpectedCloseDate
	}
	return expected.Sub(created).Hours() / 24
}
