package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"crm-insights-engine/internal/models"
)

// Fixed sales velocity reported until enough history exists to derive one.
const defaultSalesVelocity = 30

// Service produces statistical sales analyses. The time source is
// injectable for deterministic timestamps in tests.
type Service struct {
	now func() time.Time
}

// NewService creates an analytics service using the wall clock.
func NewService() *Service {
	return &Service{now: time.Now}
}

// WithClock returns a copy of the service using the given time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// Analyze builds a statistical sales analysis: insights on conversion and
// pipeline health, an executive summary, and key metrics. Empty inputs
// produce zero-valued metrics and no insights referencing missing data.
func (s *Service) Analyze(deals []*models.Deal, leads []*models.Lead, accounts []*models.Account) models.SalesAnalysis {
	dealStats := CalculateDealStats(deals)
	leadStats := CalculateLeadStats(leads)
	now := s.now()

	conversionImpact := models.InsightImpactMedium
	if leadStats.QualificationRate > 25 {
		conversionImpact = models.InsightImpactHigh
	}

	insights := []models.SalesInsight{
		{
			ID:    uuid.NewString(),
			Type:  models.InsightTypeTrend,
			Title: "Lead Conversion Analysis",
			Description: fmt.Sprintf(
				"Current lead qualification rate is %.1f%%. This indicates the quality of incoming leads.",
				leadStats.QualificationRate),
			Impact:     conversionImpact,
			Actionable: true,
			Timestamp:  now,
		},
		{
			ID:    uuid.NewString(),
			Type:  models.InsightTypeOpportunity,
			Title: "Pipeline Health Check",
			Description: fmt.Sprintf(
				"You have %d active deals with a %.1f%% win rate.",
				dealStats.ActiveDealCount, dealStats.WinRate),
			Impact:     models.InsightImpactMedium,
			Actionable: true,
			Timestamp:  now,
		},
	}

	pipelineHealth := 0.0
	if len(deals) > 0 {
		pipelineHealth = math.Min(100, float64(dealStats.ActiveDealCount)/float64(len(deals))*100)
	}

	return models.SalesAnalysis{
		Insights: insights,
		Summary: fmt.Sprintf(
			"Your CRM shows %d deals worth $%.0f with %d leads across %d accounts.",
			len(deals), dealStats.TotalValue, len(leads), len(accounts)),
		KeyMetrics: models.KeyMetrics{
			ConversionRate:  leadStats.QualificationRate,
			AverageDealSize: dealStats.AverageValue,
			SalesVelocity:   defaultSalesVelocity,
			PipelineHealth:  pipelineHealth,
		},
	}
}
