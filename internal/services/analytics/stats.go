// Package analytics computes portfolio-level sales statistics and
// statistical insights over deal, lead, and account collections.
package analytics

import (
	"sort"
	"strings"

	"crm-insights-engine/internal/models"
)

// DealStats summarizes a deal collection.
type DealStats struct {
	TotalValue        float64                  `json:"total_value"`
	AverageValue      float64                  `json:"average_value"`
	WinRate           float64                  `json:"win_rate"`
	LossRate          float64                  `json:"loss_rate"`
	ActiveDealCount   int                      `json:"active_deal_count"`
	StageDistribution map[models.DealStage]int `json:"stage_distribution"`
}

// SourceCount pairs a lead source with its occurrence count.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// LeadStats summarizes a lead collection.
type LeadStats struct {
	QualificationRate    float64        `json:"qualification_rate"`
	TopSources           []SourceCount  `json:"top_sources"`
	IndustryDistribution map[string]int `json:"industry_distribution"`
	AverageScore         float64        `json:"average_score"`
}

// AccountStats summarizes an account collection.
type AccountStats struct {
	TotalAccounts        int            `json:"total_accounts"`
	IndustryDistribution map[string]int `json:"industry_distribution"`
}

// CalculateDealStats computes totals, rates, and the stage distribution
// for a deal collection. Empty input yields zero values, never a division
// by zero.
func CalculateDealStats(deals []*models.Deal) DealStats {
	stats := DealStats{StageDistribution: make(map[models.DealStage]int)}

	won, lost := 0, 0
	for _, deal := range deals {
		if deal == nil {
			continue
		}
		stats.TotalValue += deal.Value
		stats.StageDistribution[deal.Stage]++
		switch {
		case deal.Stage.IsWon():
			won++
		case deal.Stage.IsLost():
			lost++
		default:
			stats.ActiveDealCount++
		}
	}

	if len(deals) > 0 {
		stats.AverageValue = stats.TotalValue / float64(len(deals))
		stats.WinRate = float64(won) / float64(len(deals)) * 100
		stats.LossRate = float64(lost) / float64(len(deals)) * 100
	}
	return stats
}

// CalculateLeadStats computes qualification rate, source ranking, industry
// distribution, and average score for a lead collection.
func CalculateLeadStats(leads []*models.Lead) LeadStats {
	stats := LeadStats{
		TopSources:           []SourceCount{},
		IndustryDistribution: make(map[string]int),
	}

	qualified := 0
	scoreSum := 0
	sources := make(map[string]int)
	for _, lead := range leads {
		if lead == nil {
			continue
		}
		if lead.Stage == models.LeadStageQualified {
			qualified++
		}
		sources[lead.Source]++
		stats.IndustryDistribution[lead.Industry]++
		scoreSum += lead.Score
	}

	for source, count := range sources {
		stats.TopSources = append(stats.TopSources, SourceCount{Source: source, Count: count})
	}
	sort.Slice(stats.TopSources, func(i, j int) bool {
		if stats.TopSources[i].Count != stats.TopSources[j].Count {
			return stats.TopSources[i].Count > stats.TopSources[j].Count
		}
		return strings.Compare(stats.TopSources[i].Source, stats.TopSources[j].Source) < 0
	})

	if len(leads) > 0 {
		stats.QualificationRate = float64(qualified) / float64(len(leads)) * 100
		stats.AverageScore = float64(scoreSum) / float64(len(leads))
	}
	return stats
}

// CalculateAccountStats computes the industry distribution of an account
// collection.
func CalculateAccountStats(accounts []*models.Account) AccountStats {
	stats := AccountStats{
		TotalAccounts:        len(accounts),
		IndustryDistribution: make(map[string]int),
	}
	for _, account := range accounts {
		if account == nil {
			continue
		}
		stats.IndustryDistribution[account.Industry]++
	}
	return stats
}
