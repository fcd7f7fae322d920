// Package models defines the data structures for the CRM insights engine.
package models

import (
	"time"
)

// RecommendationType classifies a recommendation.
type RecommendationType string

const (
	RecommendationTypeLeadScoring  RecommendationType = "lead_scoring"
	RecommendationTypeNextAction   RecommendationType = "next_action"
	RecommendationTypePersonaMatch RecommendationType = "persona_match"
	RecommendationTypeOpportunity  RecommendationType = "opportunity"
)

// Recommendation is an actionable insight surfaced to a user. It is created
// fresh on every generator invocation and never persisted by the engine.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Confidence  float64            `json:"confidence"`
	ActionItems []string           `json:"action_items"`
	RelatedTo   string             `json:"related_to,omitempty"`
}

// InsightType classifies a statistical sales insight.
type InsightType string

const (
	InsightTypeTrend          InsightType = "trend"
	InsightTypeOpportunity    InsightType = "opportunity"
	InsightTypeWarning        InsightType = "warning"
	InsightTypeRecommendation InsightType = "recommendation"
)

// InsightImpact grades how significant an insight is.
type InsightImpact string

const (
	InsightImpactHigh   InsightImpact = "high"
	InsightImpactMedium InsightImpact = "medium"
	InsightImpactLow    InsightImpact = "low"
)

// SalesInsight is a portfolio-level observation produced by the analytics
// service.
type SalesInsight struct {
	ID          string        `json:"id"`
	Type        InsightType   `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Impact      InsightImpact `json:"impact"`
	Actionable  bool          `json:"actionable"`
	Timestamp   time.Time     `json:"timestamp"`
}

// KeyMetrics summarizes pipeline health for display dashboards.
type KeyMetrics struct {
	ConversionRate  float64 `json:"conversion_rate"`
	AverageDealSize float64 `json:"average_deal_size"`
	SalesVelocity   float64 `json:"sales_velocity"`
	PipelineHealth  float64 `json:"pipeline_health"`
}

// SalesAnalysis bundles insights, an executive summary, and key metrics.
type SalesAnalysis struct {
	Insights   []SalesInsight `json:"insights"`
	Summary    string         `json:"summary"`
	KeyMetrics KeyMetrics     `json:"key_metrics"`
}
