package calculation

import "github.com/biblemarriages/surplus/internal/domain"

// CalculatePolygynyScenario rescales each monogamy bracket's available men
// by the distribution's wife capacity. Women, men and widow counts carry
// through unchanged; the input slice is not modified.
func CalculatePolygynyScenario(monogamy []domain.BracketResult, dist domain.PolygynyDistribution) []domain.BracketResult {
	capacity := dist.WifeCapacity()
	out := make([]domain.BracketResult, len(monogamy))
	for i, r := range monogamy {
		next := r
		next.AvailableMen = round(float64(r.AvailableMen) * capacity)
		next.Surplus = surplusOf(r.UnmarriedWomen, next.AvailableMen)
		next.SurplusPercent = surplusPercent(next.Surplus, r.UnmarriedWomen)
		out[i] = next
	}
	return out
}
