package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-insights-engine/internal/config"
	"crm-insights-engine/internal/models"
	"crm-insights-engine/internal/services/engine"
)

func TestCatalog_MatchFirstWins(t *testing.T) {
	catalog := engine.NewCatalog([]models.Persona{
		{Name: "First", Industries: []string{"Technology"}},
		{Name: "Second", Industries: []string{"Technology", "Software"}},
	})

	persona, ok := catalog.Match("Technology")
	require.True(t, ok)
	assert.Equal(t, "First", persona.Name)

	// Software only matches the second entry.
	persona, ok = catalog.Match("Software")
	require.True(t, ok)
	assert.Equal(t, "Second", persona.Name)
}

func TestCatalog_MatchMiss(t *testing.T) {
	catalog := engine.NewCatalog(config.DefaultPersonas())

	persona, ok := catalog.Match("Agriculture")
	assert.False(t, ok)
	assert.Nil(t, persona)

	persona, ok = catalog.Match("")
	assert.False(t, ok)
	assert.Nil(t, persona)
}

func TestCatalog_MatchIsExact(t *testing.T) {
	catalog := engine.NewCatalog(config.DefaultPersonas())

	persona, ok := catalog.Match("Technology")
	require.True(t, ok)
	assert.Equal(t, "Enterprise Tech CTO", persona.Name)

	// Industry comparison is exact, unlike job-title matching.
	_, ok = catalog.Match("technology")
	assert.False(t, ok)
}

func TestCatalog_DefaultPersonasOrder(t *testing.T) {
	catalog := engine.NewCatalog(config.DefaultPersonas())

	require.Equal(t, 3, catalog.Len())

	names := make([]string, 0, catalog.Len())
	for _, p := range catalog.Personas() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Enterprise Tech CTO",
		"Healthcare Operations Director",
		"Finance Executive",
	}, names)
}

func TestCatalog_Empty(t *testing.T) {
	catalog := engine.NewCatalog(nil)

	assert.Zero(t, catalog.Len())
	persona, ok := catalog.Match("Technology")
	assert.False(t, ok)
	assert.Nil(t, persona)
}
