package breakeven

import (
	"fmt"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/shopspring/decimal"
)

// Request asks for the smallest share of men in Category that brings the
// Alternative surplus of Scenario down to TargetSurplus or below.
type Request struct {
	Scenario      *domain.Scenario  `json:"scenario"`
	Category      domain.ShareField `json:"category"`
	TargetSurplus int64             `json:"targetSurplus"`
	MaxIterations int               `json:"maxIterations,omitempty"`
	Tolerance     decimal.Decimal   `json:"tolerance"` // in share percentage points
}

// Result is the outcome of a break-even search.
type Result struct {
	Request         Request `json:"request"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergenceInfo"`

	Share           decimal.Decimal             `json:"share"`
	Distribution    domain.PolygynyDistribution `json:"distribution"`
	WifeCapacity    decimal.Decimal             `json:"wifeCapacity"`
	MonogamySurplus int64                       `json:"monogamySurplus"`
	SurplusReached  int64                       `json:"surplusReached"`
	Calculation     *domain.CalculatorResult    `json:"calculation,omitempty"`
}

// MultiCategoryResult holds one search per polygyny category.
type MultiCategoryResult struct {
	TargetSurplus   int64    `json:"targetSurplus"`
	Results         []Result `json:"results"`
	LowestShare     *Result  `json:"lowestShare,omitempty"`
	LowestCapacity  *Result  `json:"lowestCapacity,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in percentage points
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 50,
	}
}

// Categories lists the searchable polygyny categories in display order.
func Categories() []domain.ShareField {
	return []domain.ShareField{
		domain.ShareTwoWives,
		domain.ShareThreeWives,
		domain.ShareFourPlusWives,
	}
}

// Validate checks that the request can be searched.
func (r *Request) Validate() error {
	if r.Scenario == nil {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "scenario is required",
		}
	}
	if _, err := domain.ParseShareField(string(r.Category)); err != nil {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "invalid category",
			Cause:     err,
		}
	}
	if r.TargetSurplus < 0 {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("target surplus cannot be negative, got %d", r.TargetSurplus),
		}
	}
	if r.Tolerance.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "tolerance cannot be negative",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
