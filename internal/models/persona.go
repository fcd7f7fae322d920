// Package models defines the data structures for the CRM insights engine.
package models

// Persona describes an ideal-customer archetype used as a matching
// reference by the fit scorer. Personas are static configuration: they are
// defined at process start and immutable for the process lifetime.
type Persona struct {
	ID                string   `json:"id" mapstructure:"id"`
	Name              string   `json:"name" mapstructure:"name"`
	Industries        []string `json:"industries" mapstructure:"industries"`
	JobTitles         []string `json:"job_titles" mapstructure:"job_titles"`
	CompanySizes      []string `json:"company_sizes" mapstructure:"company_sizes"`
	AvgDealValue      float64  `json:"avg_deal_value" mapstructure:"avg_deal_value"`
	ConversionRate    float64  `json:"conversion_rate" mapstructure:"conversion_rate"`
	AvgSalesCycleDays int      `json:"avg_sales_cycle_days" mapstructure:"avg_sales_cycle_days"`
	KeyIndicators     []string `json:"key_indicators" mapstructure:"key_indicators"`
}

// MatchesIndustry reports whether the persona targets the given industry.
// Matching is exact; an empty industry never matches.
func (p *Persona) MatchesIndustry(industry string) bool {
	if industry == "" {
		return false
	}
	for _, candidate := range p.Industries {
		if candidate == industry {
			return true
		}
	}
	return false
}
