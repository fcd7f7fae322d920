// Package config provides configuration management for the application.
package config

import (
	"runtime"

	"crm-insights-engine/internal/models"
)

// Config holds all configuration values for the application.
type Config struct {
	// Application
	Environment string       `mapstructure:"environment"`
	LogLevel    string       `mapstructure:"log_level"`
	Engine      EngineConfig `mapstructure:"engine"`
	Batch       BatchConfig  `mapstructure:"batch"`
}

// EngineConfig holds the tunable constants of the insights engine. The
// defaults reproduce the canonical catalog and thresholds; they are
// configuration, not business logic to be optimized.
type EngineConfig struct {
	Personas            []models.Persona `mapstructure:"personas"`
	HighQualitySources  []string         `mapstructure:"high_quality_sources"`
	StagnationDays      float64          `mapstructure:"stagnation_days"`
	SimilarityThreshold float64          `mapstructure:"similarity_threshold"`
	FitScoreMargin      int              `mapstructure:"fit_score_margin"`
	MaxSimilarLeads     int              `mapstructure:"max_similar_leads"`
	DefaultCloseDays    float64          `mapstructure:"default_close_days"`
	DefaultWinRate      float64          `mapstructure:"default_win_rate"`
}

// BatchConfig controls concurrent batch evaluation.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// Default returns the built-in configuration. The library works with no
// config file at all; Load only overrides these values.
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Engine: EngineConfig{
			Personas:            DefaultPersonas(),
			HighQualitySources:  []string{"Referral", "LinkedIn", "Trade Show"},
			StagnationDays:      60,
			SimilarityThreshold: 0.6,
			FitScoreMargin:      20,
			MaxSimilarLeads:     10,
			DefaultCloseDays:    30,
			DefaultWinRate:      0.3,
		},
		Batch: BatchConfig{
			Workers: runtime.NumCPU(),
		},
	}
}

// DefaultPersonas returns the canonical persona catalog. Catalog order is
// significant: the fit scorer uses first-match-wins lookup.
func DefaultPersonas() []models.Persona {
	return []models.Persona{
		{
			ID:                "enterprise-tech-cto",
			Name:              "Enterprise Tech CTO",
			Industries:        []string{"Technology", "Software"},
			JobTitles:         []string{"CTO", "VP of Technology", "Chief Technology Officer"},
			CompanySizes:      []string{"1000+", "500-1000"},
			AvgDealValue:      150000,
			ConversionRate:    0.35,
			AvgSalesCycleDays: 90,
			KeyIndicators:     []string{"Innovation", "Scalability", "Security"},
		},
		{
			ID:                "healthcare-director",
			Name:              "Healthcare Operations Director",
			Industries:        []string{"Healthcare", "Medical"},
			JobTitles:         []string{"Director of Operations", "Operations Manager", "VP of Operations"},
			CompanySizes:      []string{"200-500", "500-1000"},
			AvgDealValue:      75000,
			ConversionRate:    0.28,
			AvgSalesCycleDays: 120,
			KeyIndicators:     []string{"Compliance", "Efficiency", "Patient Care"},
		},
		{
			ID:                "finance-cfo",
			Name:              "Finance Executive",
			Industries:        []string{"Finance", "Banking", "Insurance"},
			JobTitles:         []string{"CFO", "Finance Director", "VP of Finance"},
			CompanySizes:      []string{"100-500", "500-1000"},
			AvgDealValue:      100000,
			ConversionRate:    0.32,
			AvgSalesCycleDays: 75,
			KeyIndicators:     []string{"ROI", "Cost Reduction", "Compliance"},
		},
	}
}
