package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-insights-engine/internal/models"
)

func TestSimilarity_NilLeads(t *testing.T) {
	eng := newTestEngine()
	lead := mockLead(nil)

	assert.Zero(t, eng.Similarity(nil, lead))
	assert.Zero(t, eng.Similarity(lead, nil))
	assert.Zero(t, eng.Similarity(nil, nil))
}

func TestSimilarity_IdenticalLeads(t *testing.T) {
	eng := newTestEngine()

	a := mockLead(map[string]interface{}{"position": "Sales Director"})
	b := mockLead(map[string]interface{}{"id": "lead-002", "position": "Sales Director"})

	// All five factors earn full credit: director tier credit is 0.2 of a
	// 0.2 weight, so the total is 1.0.
	assert.InDelta(t, 1.0, eng.Similarity(a, b), 1e-9)
}

func TestSimilarity_Symmetry(t *testing.T) {
	eng := newTestEngine()

	leads := []*models.Lead{
		mockLead(nil),
		mockLead(map[string]interface{}{"id": "l2", "position": "Marketing Director", "value": float64(90000)}),
		mockLead(map[string]interface{}{"id": "l3", "position": "Account Manager", "industry": "Finance"}),
		mockLead(map[string]interface{}{"id": "l4", "position": "", "value": float64(0)}),
		mockLead(map[string]interface{}{"id": "l5", "position": "Director of Engineering Management", "source": "Referral"}),
		{ID: "l6"},
	}

	for i := range leads {
		for j := range leads {
			assert.Equal(t, eng.Similarity(leads[i], leads[j]), eng.Similarity(leads[j], leads[i]),
				"similarity(%s,%s) must equal similarity(%s,%s)",
				leads[i].ID, leads[j].ID, leads[j].ID, leads[i].ID)
		}
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	eng := newTestEngine()

	leads := []*models.Lead{
		mockLead(nil),
		mockLead(map[string]interface{}{"id": "l2", "value": float64(1e12)}),
		{ID: "l3", Value: -500},
		{ID: "l4"},
	}

	for _, a := range leads {
		for _, b := range leads {
			sim := eng.Similarity(a, b)
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}

func TestSimilarity_PositionTiers(t *testing.T) {
	eng := newTestEngine()

	tests := []struct {
		name     string
		posA     string
		posB     string
		expected float64
	}{
		// director tier: 0.2 credit over a full 1.0 denominator, plus
		// industry 0.3, value 0.25, source 0.15, stage 0.1.
		{"both directors", "Sales Director", "Director of Ops", 1.0},
		{"both managers", "Sales Manager", "Account Manager", 0.95},
		{"mixed seniority", "Sales Director", "Account Manager", 0.8},
		{"no tier match", "CTO", "CEO", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mockLead(map[string]interface{}{"position": tt.posA})
			b := mockLead(map[string]interface{}{"id": "lead-002", "position": tt.posB})
			assert.InDelta(t, tt.expected, eng.Similarity(a, b), 1e-9)
		})
	}
}

func TestSimilarity_PositionFactorSkippedWhenMissing(t *testing.T) {
	eng := newTestEngine()

	a := mockLead(map[string]interface{}{"position": ""})
	b := mockLead(map[string]interface{}{"id": "lead-002", "position": "Director"})

	// Denominator shrinks to 0.8: industry + value + source + stage all
	// match, so the result is full similarity.
	assert.InDelta(t, 1.0, eng.Similarity(a, b), 1e-9)
}

func TestSimilarity_ValueFactorSkippedWhenBothZero(t *testing.T) {
	eng := newTestEngine()

	a := mockLead(map[string]interface{}{"position": "", "value": float64(0)})
	b := mockLead(map[string]interface{}{"id": "lead-002", "position": "", "value": float64(0)})

	// Only industry, source, and stage are evaluated; all match.
	assert.InDelta(t, 1.0, eng.Similarity(a, b), 1e-9)
}

func TestSimilarity_ValueProximity(t *testing.T) {
	eng := newTestEngine()

	tests := []struct {
		name     string
		valueA   float64
		valueB   float64
		expected float64
	}{
		// Positions are empty on both sides, so the denominator is 0.8;
		// industry, source, and stage contribute 0.55 of credit.
		{"close values earn credit", 100000, 80000, 1.0},
		{"distant values earn nothing", 100000, 20000, 0.6875},
		{"one zero value earns nothing", 100000, 0, 0.6875},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mockLead(map[string]interface{}{"position": "", "value": tt.valueA})
			b := mockLead(map[string]interface{}{"id": "lead-002", "position": "", "value": tt.valueB})
			assert.InDelta(t, tt.expected, eng.Similarity(a, b), 1e-9)
		})
	}
}

func TestRankSimilar_ExcludesBaseLead(t *testing.T) {
	eng := newTestEngine()
	base := mockLead(nil)

	ranked := eng.RankSimilar(base, []*models.Lead{base, mockLead(map[string]interface{}{"id": "lead-002"})})

	require.Len(t, ranked, 1)
	assert.Equal(t, "lead-002", ranked[0].ID)
}

func TestRankSimilar_NilBaseReturnsEmpty(t *testing.T) {
	eng := newTestEngine()

	assert.Empty(t, eng.RankSimilar(nil, []*models.Lead{mockLead(nil)}))
}

func TestRankSimilar_FiltersByThresholds(t *testing.T) {
	eng := newTestEngine()
	base := mockLead(nil)

	pool := make([]*models.Lead, 0, 15)
	// Three qualifying candidates: same industry/source/stage, close value.
	for i := 0; i < 3; i++ {
		pool = append(pool, mockLead(map[string]interface{}{
			"id":    fmt.Sprintf("match-%d", i),
			"value": float64(140000),
		}))
	}
	// Twelve distractors with nothing in common.
	for i := 0; i < 12; i++ {
		pool = append(pool, &models.Lead{
			ID:       fmt.Sprintf("noise-%d", i),
			Industry: "Retail",
			Stage:    models.LeadStageNegotiation,
			Source:   "Billboard",
		})
	}

	ranked := eng.RankSimilar(base, pool)

	require.Len(t, ranked, 3)
	for _, scored := range ranked {
		assert.Contains(t, scored.ID, "match-")
		assert.Greater(t, scored.SimilarityScore, 0.6)
		assert.Greater(t, scored.FitScore, eng.ScoreLeadFit(base)-20)
	}
}

func TestRankSimilar_SortsDescendingWithStableTies(t *testing.T) {
	eng := newTestEngine()
	base := mockLead(nil)

	// Both tie candidates score identically; the weaker candidate differs
	// in source, lowering its similarity below theirs.
	pool := []*models.Lead{
		mockLead(map[string]interface{}{"id": "tie-first", "value": float64(140000)}),
		mockLead(map[string]interface{}{"id": "weaker", "value": float64(140000), "source": "Website"}),
		mockLead(map[string]interface{}{"id": "tie-second", "value": float64(140000)}),
	}

	ranked := eng.RankSimilar(base, pool)

	require.Len(t, ranked, 3)
	assert.Equal(t, "tie-first", ranked[0].ID)
	assert.Equal(t, "tie-second", ranked[1].ID)
	assert.Equal(t, "weaker", ranked[2].ID)
}

func TestRankSimilar_CapsAtTen(t *testing.T) {
	eng := newTestEngine()
	base := mockLead(nil)

	pool := make([]*models.Lead, 0, 15)
	for i := 0; i < 15; i++ {
		pool = append(pool, mockLead(map[string]interface{}{
			"id":    fmt.Sprintf("clone-%d", i),
			"value": float64(140000),
		}))
	}

	assert.Len(t, eng.RankSimilar(base, pool), 10)
}

func TestRankSimilar_SkipsNilCandidates(t *testing.T) {
	eng := newTestEngine()
	base := mockLead(nil)

	ranked := eng.RankSimilar(base, []*models.Lead{nil, mockLead(map[string]interface{}{"id": "lead-002"}), nil})

	require.Len(t, ranked, 1)
	assert.Equal(t, "lead-002", ranked[0].ID)
}
