// Package models defines the data structures for the CRM insights engine.
package models

import (
	"errors"
	"strings"
)

// Common errors. These surface only at the edges (dataset decoding,
// configuration); the engine functions themselves never return errors.
var (
	ErrEmptyLeadID        = errors.New("lead id cannot be empty")
	ErrEmptyDealID        = errors.New("deal id cannot be empty")
	ErrInvalidProbability = errors.New("probability must be between 0 and 100")
	ErrNegativeValue      = errors.New("value cannot be negative")
)

// NormalizeLeadStage converts common stage spellings to canonical values.
// Unknown stages are returned lowercased as-is; the engine treats them as
// simply failing any stage-based condition.
func NormalizeLeadStage(stage string) LeadStage {
	normalized := strings.ToLower(strings.TrimSpace(stage))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	stageMap := map[string]LeadStage{
		"new":         LeadStageNew,
		"open":        LeadStageNew,
		"contacted":   LeadStageContacted,
		"working":     LeadStageContacted,
		"qualified":   LeadStageQualified,
		"proposal":    LeadStageProposal,
		"negotiation": LeadStageNegotiation,
		"closed-won":  LeadStageClosedWon,
		"won":         LeadStageClosedWon,
		"closed-lost": LeadStageClosedLost,
		"lost":        LeadStageClosedLost,
	}

	if mapped, ok := stageMap[normalized]; ok {
		return mapped
	}
	return LeadStage(normalized)
}

// NormalizeDealStage converts common deal stage spellings to canonical
// values. Unknown stages pass through lowercased.
func NormalizeDealStage(stage string) DealStage {
	normalized := strings.ToLower(strings.TrimSpace(stage))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	stageMap := map[string]DealStage{
		"prospecting":   DealStageProspecting,
		"qualification": DealStageQualification,
		"proposal":      DealStageProposal,
		"negotiation":   DealStageNegotiation,
		"closed-won":    DealStageClosedWon,
		"won":           DealStageClosedWon,
		"closed-lost":   DealStageClosedLost,
		"lost":          DealStageClosedLost,
	}

	if mapped, ok := stageMap[normalized]; ok {
		return mapped
	}
	return DealStage(normalized)
}

// ValidateLead checks a caller-supplied lead for structural problems worth
// reporting at load time. The engine itself accepts anything.
func ValidateLead(l *Lead) error {
	if strings.TrimSpace(l.ID) == "" {
		return ErrEmptyLeadID
	}
	if l.Value < 0 {
		return ErrNegativeValue
	}
	return nil
}

// ValidateDeal checks a caller-supplied deal for structural problems worth
// reporting at load time.
func ValidateDeal(d *Deal) error {
	if strings.TrimSpace(d.ID) == "" {
		return ErrEmptyDealID
	}
	if d.Probability < 0 || d.Probability > 100 {
		return ErrInvalidProbability
	}
	if d.Value < 0 {
		return ErrNegativeValue
	}
	return nil
}
