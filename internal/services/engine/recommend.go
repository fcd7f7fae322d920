package engine

import (
	"fmt"

	"crm-insights-engine/internal/models"
)

// Fit score above which a contacted lead counts as high priority.
const highPriorityFitThreshold = 80

// GenerateRecommendations scans the lead, deal, and task population and
// emits up to three actionable recommendations in a fixed category order:
// high-priority follow-up, persona-based targeting, stagnant-deal alert.
// Categories whose trigger condition is false are omitted, so the result
// length varies from 0 to 3. Tasks are accepted for interface parity; the
// current rule set does not consult them.
func (e *Engine) GenerateRecommendations(leads []*models.Lead, deals []*models.Deal, tasks []*models.Task) []models.Recommendation {
	_ = tasks

	recommendations := make([]models.Recommendation, 0, 3)

	// High-priority leads waiting for follow-up.
	highScoreLeads := 0
	for _, lead := range leads {
		if lead == nil {
			continue
		}
		if e.ScoreLeadFit(lead) > highPriorityFitThreshold && lead.Stage == models.LeadStageContacted {
			highScoreLeads++
		}
	}
	if highScoreLeads > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        models.RecommendationTypeOpportunity,
			Title:       "High-Priority Leads Need Attention",
			Description: fmt.Sprintf("%d high-scoring leads are waiting for follow-up", highScoreLeads),
			Confidence:  0.9,
			ActionItems: []string{
				"Schedule discovery calls with top-scoring leads",
				"Send personalized follow-up emails",
				"Research company pain points",
			},
			RelatedTo: "leads",
		})
	}

	// Persona-based targeting from closed-won deals.
	wonDeals := 0
	for _, deal := range deals {
		if deal != nil && deal.Stage.IsWon() {
			wonDeals++
		}
	}
	if wonDeals > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        models.RecommendationTypePersonaMatch,
			Title:       "Target Similar Prospects",
			Description: fmt.Sprintf("Based on your %d closed-won deals, focus on Healthcare and Technology sectors", wonDeals),
			Confidence:  0.85,
			ActionItems: []string{
				"Search for CTOs in healthcare technology companies",
				"Target companies with 500+ employees",
				"Focus on decision-makers with innovation budgets",
			},
			RelatedTo: "lead-generation",
		})
	}

	// Stagnant open deals.
	now := e.now()
	stagnantDeals := 0
	for _, deal := range deals {
		if deal == nil || deal.Stage.IsClosed() {
			continue
		}
		if deal.Age(now) > e.stagnationDays {
			stagnantDeals++
		}
	}
	if stagnantDeals > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        models.RecommendationTypeNextAction,
			Title:       "Stagnant Deals Need Action",
			Description: fmt.Sprintf("%d deals have been inactive for over %.0f days", stagnantDeals, e.stagnationDays),
			Confidence:  0.8,
			ActionItems: []string{
				"Schedule check-in calls with prospects",
				"Review and update deal stages",
				"Identify and address blocking issues",
			},
			RelatedTo: "deals",
		})
	}

	return recommendations
}
