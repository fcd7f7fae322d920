package engine

import (
	"strings"

	"crm-insights-engine/internal/models"
)

// Base fit score assigned before any signal is evaluated. A nil lead gets
// exactly this score.
const baseFitScore = 50

// ScoreLeadFit computes a 0-100 fitness score for one lead using persona
// match, engagement, and value signals. It is a total function: a nil lead
// returns the base score, unknown enum values simply fail their bonus
// condition, and the result is always clamped to [0, 100].
func (e *Engine) ScoreLeadFit(lead *models.Lead) int {
	score := baseFitScore

	if lead == nil {
		return score
	}

	// Persona match: first persona targeting the lead's industry wins.
	if persona, ok := e.catalog.Match(lead.Industry); ok {
		score += 20

		if lead.Position != "" && matchesJobTitle(lead.Position, persona.JobTitles) {
			score += 15
		}
	}

	// Company size indicators, estimated from deal value. Both thresholds
	// are independent and can fire together.
	if lead.Value > 100000 {
		score += 10
	}
	if lead.Value > 50000 {
		score += 5
	}

	// Engagement indicators.
	if lead.Stage == models.LeadStageQualified || lead.Stage == models.LeadStageProposal {
		score += 10
	}
	if lead.LastContact != nil {
		score += 5
	}

	// Source quality.
	for _, source := range e.highQualitySources {
		if lead.Source == source {
			score += 5
			break
		}
	}

	// The additive terms cannot currently exceed 100, but the clamp is a
	// documented safety invariant, not dead code.
	return clampInt(score, 0, 100)
}

// matchesJobTitle reports whether the position contains any of the persona
// job-title keywords, case-insensitively.
func matchesJobTitle(position string, titles []string) bool {
	lowered := strings.ToLower(position)
	for _, title := range titles {
		if strings.Contains(lowered, strings.ToLower(title)) {
			return true
		}
	}
	return false
}
