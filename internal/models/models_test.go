package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crm-insights-engine/internal/models"
)

func TestNormalizeLeadStage(t *testing.T) {
	cases := []struct {
		input string
		want  models.LeadStage
	}{
		{"new", models.LeadStageNew},
		{"New", models.LeadStageNew},
		{"  OPEN  ", models.LeadStageNew},
		{"working", models.LeadStageContacted},
		{"contacted", models.LeadStageContacted},
		{"qualified", models.LeadStageQualified},
		{"Closed Won", models.LeadStageClosedWon},
		{"closed_won", models.LeadStageClosedWon},
		{"WON", models.LeadStageClosedWon},
		{"closed-lost", models.LeadStageClosedLost},
		{"lost", models.LeadStageClosedLost},
		{"something-else", models.LeadStage("something-else")},
		{"", models.LeadStage("")},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, models.NormalizeLeadStage(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeDealStage(t *testing.T) {
	cases := []struct {
		input string
		want  models.DealStage
	}{
		{"prospecting", models.DealStageProspecting},
		{"Qualification", models.DealStageQualification},
		{"PROPOSAL", models.DealStageProposal},
		{"Closed Won", models.DealStageClosedWon},
		{"won", models.DealStageClosedWon},
		{"closed_lost", models.DealStageClosedLost},
		{"mystery stage", models.DealStage("mystery-stage")},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, models.NormalizeDealStage(tc.input), "input %q", tc.input)
	}
}

func TestDealStageHelpers(t *testing.T) {
	assert.True(t, models.DealStageClosedWon.IsClosed())
	assert.True(t, models.DealStageClosedWon.IsWon())
	assert.False(t, models.DealStageClosedWon.IsLost())

	assert.True(t, models.DealStageClosedLost.IsClosed())
	assert.False(t, models.DealStageClosedLost.IsWon())
	assert.True(t, models.DealStageClosedLost.IsLost())

	assert.False(t, models.DealStageProposal.IsClosed())
	assert.False(t, models.DealStageProspecting.IsWon())
	assert.False(t, models.DealStage("").IsClosed())
}

func TestValidateLead(t *testing.T) {
	assert.NoError(t, models.ValidateLead(&models.Lead{ID: "lead-001"}))

	assert.ErrorIs(t, models.ValidateLead(&models.Lead{}), models.ErrEmptyLeadID)
	assert.ErrorIs(t, models.ValidateLead(&models.Lead{ID: "   "}), models.ErrEmptyLeadID)
	assert.ErrorIs(t, models.ValidateLead(&models.Lead{ID: "lead-001", Value: -1}), models.ErrNegativeValue)
}

func TestValidateDeal(t *testing.T) {
	assert.NoError(t, models.ValidateDeal(&models.Deal{ID: "deal-001", Probability: 100}))

	assert.ErrorIs(t, models.ValidateDeal(&models.Deal{}), models.ErrEmptyDealID)
	assert.ErrorIs(t, models.ValidateDeal(&models.Deal{ID: "d", Probability: 101}), models.ErrInvalidProbability)
	assert.ErrorIs(t, models.ValidateDeal(&models.Deal{ID: "d", Probability: -1}), models.ErrInvalidProbability)
	assert.ErrorIs(t, models.ValidateDeal(&models.Deal{ID: "d", Value: -100}), models.ErrNegativeValue)
}

func TestDealAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	deal := &models.Deal{CreatedAt: now.AddDate(0, 0, -10)}
	assert.InDelta(t, 10, deal.Age(now), 1e-9)

	half := &models.Deal{CreatedAt: now.Add(-36 * time.Hour)}
	assert.InDelta(t, 1.5, half.Age(now), 1e-9)

	// Unset creation dates read as brand new.
	assert.Zero(t, (&models.Deal{}).Age(now))
}

func TestLeadFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&models.Lead{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Jane", (&models.Lead{FirstName: "Jane"}).FullName())
	assert.Equal(t, "Doe", (&models.Lead{LastName: "Doe"}).FullName())
	assert.Equal(t, "", (&models.Lead{}).FullName())
}

func TestPersonaMatchesIndustry(t *testing.T) {
	persona := &models.Persona{Industries: []string{"Technology", "Software"}}

	assert.True(t, persona.MatchesIndustry("Technology"))
	assert.True(t, persona.MatchesIndustry("Software"))
	assert.False(t, persona.MatchesIndustry("technology"))
	assert.False(t, persona.MatchesIndustry("Finance"))
	assert.False(t, persona.MatchesIndustry(""))
}
