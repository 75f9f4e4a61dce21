package output

import (
	"fmt"
	"math"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/dustin/go-humanize"
)

// FormatNumber abbreviates head counts for display: millions to one
// decimal ("4.2M"), thousands to whole units ("300K"), smaller values
// comma-grouped.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", math.Round(float64(n)/100_000)/10)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", math.Round(float64(n)/1_000))
	}
	return humanize.Comma(n)
}

// FormatPercent renders a percentage with one decimal, e.g. "30.0%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatCapacity renders a wife capacity, e.g. "1.20x".
func FormatCapacity(c float64) string {
	return fmt.Sprintf("%.2fx", c)
}

// ReductionPercent is the share of the monogamy surplus that the
// Alternative scenario removes, or zero when there is nothing to reduce.
func ReductionPercent(result *domain.CalculatorResult) float64 {
	if result == nil || result.Alternative == nil || result.Monogamy.TotalSurplus == 0 {
		return 0
	}
	return float64(result.SurplusReduction()) / float64(result.Monogamy.TotalSurplus) * 100
}
