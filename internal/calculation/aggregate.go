package calculation

import "github.com/biblemarriages/surplus/internal/domain"

const (
	MonogamyName        = "Monogamy"
	MonogamyDescription = "Current legal standard: one man, one woman"
)

// AggregateResults sums bracket results into a named scenario. The
// bracket list is retained in order for drill-down.
func AggregateResults(brackets []domain.BracketResult, name, description string) domain.ScenarioResult {
	out := domain.ScenarioResult{
		Name:        name,
		Description: description,
		ByBracket:   brackets,
	}
	if out.ByBracket == nil {
		out.ByBracket = []domain.BracketResult{}
	}
	for _, b := range brackets {
		out.TotalUnmarriedWomen += b.UnmarriedWomen
		out.TotalUnmarriedMen += b.UnmarriedMen
		out.TotalWidows += b.Widows
		out.TotalSurplus += b.Surplus
	}
	out.SurplusPercent = surplusPercent(out.TotalSurplus, out.TotalUnmarriedWomen)
	return out
}
