// Package main provides a local CLI harness for the CRM insights engine.
// It feeds JSON datasets through the engine and prints a single JSON
// report to stdout; it owns no network, file-watching, or persistence
// concerns.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"crm-insights-engine/internal/config"
	"crm-insights-engine/internal/models"
	"crm-insights-engine/internal/services/analytics"
	"crm-insights-engine/internal/services/batch"
	"crm-insights-engine/internal/services/engine"
	"crm-insights-engine/internal/services/scoring"
	"crm-insights-engine/internal/utils"
)

// Report is the full CLI output.
type Report struct {
	Scores          []batch.Result                    `json:"scores,omitempty"`
	SimilarLeads    []models.ScoredLead               `json:"similar_leads,omitempty"`
	Recommendations []models.Recommendation           `json:"recommendations"`
	Predictions     map[string]models.DealPrediction  `json:"predictions,omitempty"`
	Breakdowns      map[string]scoring.ScoreBreakdown `json:"breakdowns,omitempty"`
	Analysis        *models.SalesAnalysis             `json:"analysis,omitempty"`
}

func main() {
	leadsPath := flag.String("leads", "", "path to a JSON array of leads")
	dealsPath := flag.String("deals", "", "path to a JSON array of deals")
	tasksPath := flag.String("tasks", "", "path to a JSON array of tasks")
	accountsPath := flag.String("accounts", "", "path to a JSON array of accounts")
	baseLeadID := flag.String("base", "", "lead id to rank the rest of the pool against")
	withBreakdowns := flag.Bool("breakdowns", false, "include detailed per-lead score breakdowns")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	var leads []*models.Lead
	var deals []*models.Deal
	var tasks []*models.Task
	var accounts []*models.Account

	if err := loadDataset(*leadsPath, &leads); err != nil {
		logger.Fatal("Failed to load leads", zap.Error(err))
	}
	if err := loadDataset(*dealsPath, &deals); err != nil {
		logger.Fatal("Failed to load deals", zap.Error(err))
	}
	if err := loadDataset(*tasksPath, &tasks); err != nil {
		logger.Fatal("Failed to load tasks", zap.Error(err))
	}
	if err := loadDataset(*accountsPath, &accounts); err != nil {
		logger.Fatal("Failed to load accounts", zap.Error(err))
	}

	warnInvalid(logger, leads, deals)

	logger.Info("Datasets loaded",
		zap.Int("leads", len(leads)),
		zap.Int("deals", len(deals)),
		zap.Int("tasks", len(tasks)),
		zap.Int("accounts", len(accounts)),
	)

	eng := engine.New(cfg.Engine)
	processor := batch.NewProcessor(eng, cfg.Batch.Workers)

	report := Report{}

	scores, err := processor.ScoreLeads(context.Background(), leads)
	if err != nil {
		logger.Warn("Batch scoring interrupted", zap.Error(err))
	}
	report.Scores = scores

	if *baseLeadID != "" {
		base := findLead(leads, *baseLeadID)
		if base == nil {
			logger.Warn("Base lead not found, skipping similarity ranking",
				zap.String("lead_id", *baseLeadID))
		} else {
			report.SimilarLeads = eng.RankSimilar(base, leads)
		}
	}

	report.Recommendations = processor.GenerateRecommendations(leads, deals, tasks)

	if len(deals) > 0 {
		report.Predictions = make(map[string]models.DealPrediction)
		for _, deal := range deals {
			if deal == nil || deal.Stage.IsClosed() {
				continue
			}
			report.Predictions[deal.ID] = eng.PredictDealOutcome(deal, deals)
		}
	}

	if *withBreakdowns {
		scorer := scoring.NewScorer()
		report.Breakdowns = make(map[string]scoring.ScoreBreakdown)
		for _, lead := range leads {
			if lead != nil {
				report.Breakdowns[lead.ID] = scorer.CalculateBreakdown(lead)
			}
		}
	}

	if len(deals) > 0 || len(leads) > 0 || len(accounts) > 0 {
		analysis := analytics.NewService().Analyze(deals, leads, accounts)
		report.Analysis = &analysis
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logger.Fatal("Failed to encode report", zap.Error(err))
	}
}

// loadDataset decodes a JSON array file into out. An empty path is not an
// error; the corresponding collection stays empty.
func loadDataset(path string, out interface{}) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// warnInvalid logs structural problems in the datasets. The engine
// degrades gracefully either way; these warnings exist so odd results are
// explainable.
func warnInvalid(logger *zap.Logger, leads []*models.Lead, deals []*models.Deal) {
	for _, lead := range leads {
		if lead == nil {
			continue
		}
		if err := models.ValidateLead(lead); err != nil {
			logger.Warn("Invalid lead record", zap.String("lead_id", lead.ID), zap.Error(err))
		}
	}
	for _, deal := range deals {
		if deal == nil {
			continue
		}
		if err := models.ValidateDeal(deal); err != nil {
			logger.Warn("Invalid deal record", zap.String("deal_id", deal.ID), zap.Error(err))
		}
	}
}

func findLead(leads []*models.Lead, id string) *models.Lead {
	for _, lead := range leads {
		if lead != nil && lead.ID == id {
			return lead
		}
	}
	return nil
}
