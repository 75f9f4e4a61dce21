package api

import (
	"github.com/biblemarriages/surplus/internal/domain"
)

// OptionsDTO lists the selectable filter values.
type OptionsDTO struct {
	AgeBrackets       []domain.AgeBracket      `json:"ageBrackets"`
	Denominations     []domain.Option          `json:"denominations"`
	ReligiosityLevels []domain.Option          `json:"religiosityLevels"`
	DefaultFilters    domain.CalculatorFilters `json:"defaultFilters"`
}

// ReferenceDTO exposes the loaded reference tables.
type ReferenceDTO struct {
	Census    *domain.CensusData    `json:"census"`
	Religious *domain.ReligiousData `json:"religious"`
}

// TemplateDTO describes a built-in template.
type TemplateDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CalculateRequest is the body of POST /api/calculate. Omitted filters take
// their default values; an omitted polygyny distribution means monogamy.
type CalculateRequest struct {
	Filters  domain.CalculatorFilters     `json:"filters"`
	Polygyny *domain.PolygynyDistribution `json:"polygyny,omitempty"`
}

// CompareRequest is the body of POST /api/compare.
type CompareRequest struct {
	Scenario  domain.Scenario `json:"scenario"`
	Templates []string        `json:"templates"`
}

// BreakEvenRequest is the body of POST /api/break-even. An empty category
// searches every category.
type BreakEvenRequest struct {
	Scenario      domain.Scenario `json:"scenario"`
	Category      string          `json:"category,omitempty"`
	TargetSurplus int64           `json:"targetSurplus"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
