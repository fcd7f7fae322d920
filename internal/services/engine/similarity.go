package engine

import (
	"math"
	"sort"
	"strings"

	"crm-insights-engine/internal/models"
)

// Similarity factor weights. Industry, source, and stage equality are
// always evaluated; position and value factors are skipped entirely (not
// zero-scored) when the required data is absent on either side.
const (
	weightIndustry = 0.30
	weightPosition = 0.20
	weightValue    = 0.25
	weightSource   = 0.15
	weightStage    = 0.10
)

// Relative value difference below which two lead values count as similar.
const valueProximityThreshold = 0.3

// Similarity computes a symmetric 0-1 similarity between two leads as a
// weighted average over five factors, divided by the sum of weights
// actually evaluated. A nil lead on either side yields 0.
func (e *Engine) Similarity(a, b *models.Lead) float64 {
	if a == nil || b == nil {
		return 0
	}

	similarity := 0.0
	factors := 0.0

	// Industry equality.
	if a.Industry == b.Industry {
		similarity += weightIndustry
	}
	factors += weightIndustry

	// Position tiering, only when both sides have a position. The
	// director/manager tiers mirror the observed seniority heuristic;
	// both checks are symmetric under argument swap.
	if a.Position != "" && b.Position != "" {
		posA := strings.ToLower(a.Position)
		posB := strings.ToLower(b.Position)
		if strings.Contains(posA, "director") && strings.Contains(posB, "director") {
			similarity += 0.2
		} else if strings.Contains(posA, "manager") && strings.Contains(posB, "manager") {
			similarity += 0.15
		}
		factors += weightPosition
	}

	// Value proximity, only when at least one value is non-zero.
	if a.Value != 0 || b.Value != 0 {
		larger := math.Max(a.Value, b.Value)
		if larger > 0 && math.Abs(a.Value-b.Value)/larger < valueProximityThreshold {
			similarity += weightValue
		}
		factors += weightValue
	}

	// Source equality.
	if a.Source == b.Source {
		similarity += weightSource
	}
	factors += weightSource

	// Stage equality.
	if a.Stage == b.Stage {
		similarity += weightStage
	}
	factors += weightStage

	if factors == 0 {
		return 0
	}
	return clampFloat(similarity/factors, 0, 1)
}

// RankSimilar ranks a candidate pool against a baseline lead. Candidates
// are retained when their similarity exceeds the configured threshold and
// their fit score stays within the configured margin of the baseline fit;
// the result is sorted descending by similarity (ties stay in input order)
// and capped at the configured maximum. Each call is a fresh computation.
func (e *Engine) RankSimilar(base *models.Lead, candidates []*models.Lead) []models.ScoredLead {
	scored := make([]models.ScoredLead, 0, len(candidates))
	if base == nil {
		return scored
	}

	baseScore := e.ScoreLeadFit(base)

	for _, candidate := range candidates {
		if candidate == nil || candidate.ID == base.ID {
			continue
		}

		similarity := e.Similarity(base, candidate)
		fit := e.ScoreLeadFit(candidate)
		if similarity > e.similarityThreshold && fit > baseScore-e.fitScoreMargin {
			scored = append(scored, models.ScoredLead{
				Lead:            *candidate,
				SimilarityScore: similarity,
				FitScore:        fit,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})

	if len(scored) > e.maxSimilarLeads {
		scored = scored[:e.maxSimilarLeads]
	}
	return scored
}
