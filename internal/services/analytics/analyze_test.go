package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-insights-engine/internal/models"
	"crm-insights-engine/internal/services/analytics"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *analytics.Service {
	return analytics.NewService().WithClock(func() time.Time { return testNow })
}

func TestAnalyze(t *testing.T) {
	svc := newTestService()

	deals := []*models.Deal{
		{ID: "d1", Value: 100000, Stage: models.DealStageClosedWon},
		{ID: "d2", Value: 60000, Stage: models.DealStageProposal},
	}
	leads := []*models.Lead{
		{ID: "l1", Stage: models.LeadStageQualified},
		{ID: "l2", Stage: models.LeadStageNew},
	}
	accounts := []*models.Account{{ID: "a1", Industry: "Technology"}}

	analysis := svc.Analyze(deals, leads, accounts)

	require.Len(t, analysis.Insights, 2)

	conversion := analysis.Insights[0]
	assert.Equal(t, models.InsightTypeTrend, conversion.Type)
	assert.Equal(t, "Lead Conversion Analysis", conversion.Title)
	assert.Contains(t, conversion.Description, "50.0%")
	// Above the 25% qualification mark.
	assert.Equal(t, models.InsightImpactHigh, conversion.Impact)
	assert.True(t, conversion.Actionable)
	assert.Equal(t, testNow, conversion.Timestamp)
	assert.NotEmpty(t, conversion.ID)

	pipeline := analysis.Insights[1]
	assert.Equal(t, models.InsightTypeOpportunity, pipeline.Type)
	assert.Equal(t, "Pipeline Health Check", pipeline.Title)
	assert.Contains(t, pipeline.Description, "1 active deals")
	assert.Contains(t, pipeline.Description, "50.0% win rate")

	assert.Equal(t, "Your CRM shows 2 deals worth $160000 with 2 leads across 1 accounts.", analysis.Summary)

	assert.InDelta(t, 50, analysis.KeyMetrics.ConversionRate, 1e-9)
	assert.InDelta(t, 80000, analysis.KeyMetrics.AverageDealSize, 1e-9)
	assert.InDelta(t, 30, analysis.KeyMetrics.SalesVelocity, 1e-9)
	assert.InDelta(t, 50, analysis.KeyMetrics.PipelineHealth, 1e-9)
}

func TestAnalyze_LowQualificationRateImpact(t *testing.T) {
	svc := newTestService()

	leads := []*models.Lead{
		{ID: "l1", Stage: models.LeadStageQualified},
		{ID: "l2", Stage: models.LeadStageNew},
		{ID: "l3", Stage: models.LeadStageNew},
		{ID: "l4", Stage: models.LeadStageNew},
	}

	analysis := svc.Analyze(nil, leads, nil)

	require.Len(t, analysis.Insights, 2)
	// 25% does not clear the > 25 bar.
	assert.Equal(t, models.InsightImpactMedium, analysis.Insights[0].Impact)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	svc := newTestService()

	analysis := svc.Analyze(nil, nil, nil)

	require.Len(t, analysis.Insights, 2)
	assert.Equal(t, "Your CRM shows 0 deals worth $0 with 0 leads across 0 accounts.", analysis.Summary)
	assert.Zero(t, analysis.KeyMetrics.ConversionRate)
	assert.Zero(t, analysis.KeyMetrics.AverageDealSize)
	assert.Zero(t, analysis.KeyMetrics.PipelineHealth)
	assert.InDelta(t, 30, analysis.KeyMetrics.SalesVelocity, 1e-9)
}

func TestAnalyze_InsightIDsUnique(t *testing.T) {
	svc := newTestService()

	analysis := svc.Analyze(nil, nil, nil)

	require.Len(t, analysis.Insights, 2)
	assert.NotEqual(t, analysis.Insights[0].ID, analysis.Insights[1].ID)
}
