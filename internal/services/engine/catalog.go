package engine

import (
	"crm-insights-engine/internal/models"
)

// Catalog holds the ordered list of reference personas. Order is
// significant: Match returns the first persona targeting an industry, so
// the catalog order is the tie-break policy. The catalog is immutable once
// constructed.
type Catalog struct {
	personas []models.Persona
}

// NewCatalog creates a catalog from the given personas, preserving order.
func NewCatalog(personas []models.Persona) *Catalog {
	copied := make([]models.Persona, len(personas))
	copy(copied, personas)
	return &Catalog{personas: copied}
}

// Match returns the first persona whose industry set contains the given
// industry. A miss yields (nil, false), never an error.
func (c *Catalog) Match(industry string) (*models.Persona, bool) {
	for i := range c.personas {
		if c.personas[i].MatchesIndustry(industry) {
			return &c.personas[i], true
		}
	}
	return nil, false
}

// Personas returns a copy of the catalog contents.
func (c *Catalog) Personas() []models.Persona {
	copied := make([]models.Persona, len(c.personas))
	copy(copied, c.personas)
	return copied
}

// Len returns the number of personas in the catalog.
func (c *Catalog) Len() int {
	return len(c.personas)
}
