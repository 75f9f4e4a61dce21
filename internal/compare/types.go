package compare

import (
	"fmt"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one scenario's key metrics, with deltas against the
// base scenario filled in for alternatives.
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description"`
	Result       *domain.CalculatorResult `json:"-"`

	// Key Metrics
	UnmarriedWomen   int64           `json:"unmarriedWomen"`
	UnmarriedMen     int64           `json:"unmarriedMen"`
	AvailableMen     int64           `json:"availableMen"` // under the effective scenario
	MonogamySurplus  int64           `json:"monogamySurplus"`
	EffectiveSurplus int64           `json:"effectiveSurplus"` // Alternative when present, else Monogamy
	SurplusPercent   decimal.Decimal `json:"surplusPercent"`
	WifeCapacity     decimal.Decimal `json:"wifeCapacity"`

	// Comparison to Base
	SurplusDiffFromBase int64           `json:"surplusDiffFromBase"`
	SurplusPctFromBase  decimal.Decimal `json:"surplusPctFromBase"`
	WomenDiffFromBase   int64           `json:"womenDiffFromBase"`
	RateDiffFromBase    decimal.Decimal `json:"rateDiffFromBase"` // percentage points

	// Scenario Specifics (extracted for display)
	AgeBrackets  string `json:"ageBrackets"`
	Denomination string `json:"denomination"`
	Religiosity  string `json:"religiosity"`
	AgeOverlap   int    `json:"ageOverlap"`
	Polygyny     string `json:"polygyny"`
}

// ComparisonSet is a base scenario compared against alternatives.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from scenario runs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one run.
func (mc *MetricsCalculator) CalculateMetrics(run *domain.ScenarioRun) ComparisonResult {
	res := run.Result
	effective := res.Effective()

	result := ComparisonResult{
		ScenarioName:     run.Name,
		Description:      run.Description,
		Result:           res,
		UnmarriedWomen:   effective.TotalUnmarriedWomen,
		UnmarriedMen:     effective.TotalUnmarriedMen,
		AvailableMen:     mc.availableMen(effective),
		MonogamySurplus:  res.Monogamy.TotalSurplus,
		EffectiveSurplus: effective.TotalSurplus,
		SurplusPercent:   decimal.NewFromFloat(effective.SurplusPercent).Round(2),
		WifeCapacity:     decimal.NewFromInt(1),
		AgeBrackets:      describeBrackets(res.Filters.AgeBrackets),
		Denomination:     res.Filters.Denomination.Label(),
		Religiosity:      res.Filters.Religiosity.Label(),
		AgeOverlap:       res.Filters.AgeOverlap,
		Polygyny:         domain.DefaultMonogamy.Description(),
	}

	if res.PolygynyDistribution != nil {
		result.WifeCapacity = decimal.NewFromFloat(res.PolygynyDistribution.WifeCapacity()).Round(4)
		result.Polygyny = res.PolygynyDistribution.Description()
	}

	return result
}

// CalculateComparison fills in the deltas of scenario against base.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.SurplusDiffFromBase = scenario.EffectiveSurplus - base.EffectiveSurplus
	if base.EffectiveSurplus != 0 {
		scenario.SurplusPctFromBase = decimal.NewFromInt(scenario.SurplusDiffFromBase).
			Div(decimal.NewFromInt(base.EffectiveSurplus)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	scenario.WomenDiffFromBase = scenario.UnmarriedWomen - base.UnmarriedWomen
	scenario.RateDiffFromBase = scenario.SurplusPercent.Sub(base.SurplusPercent)
	return scenario
}

func (mc *MetricsCalculator) availableMen(s domain.ScenarioResult) int64 {
	var total int64
	for _, b := range s.ByBracket {
		total += b.AvailableMen
	}
	return total
}

func describeBrackets(brackets []domain.AgeBracket) string {
	if len(brackets) == domain.NumAgeBrackets() {
		return "all"
	}
	if len(brackets) == 0 {
		return "none"
	}
	labels := make([]string, len(brackets))
	for i, b := range brackets {
		labels[i] = string(b)
	}
	return strings.Join(labels, ",")
}

// GenerateRecommendations names the alternatives that leave the fewest
// surplus women and the lowest surplus rate.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.EffectiveSurplus < lowest.EffectiveSurplus {
			lowest = alt
		}
	}
	if lowest != compSet.BaseResult {
		diff := compSet.BaseResult.EffectiveSurplus - lowest.EffectiveSurplus
		recommendations = append(recommendations,
			"Lowest Surplus: "+lowest.ScenarioName+" leaves "+humanize.Comma(lowest.EffectiveSurplus)+
				" surplus women, "+humanize.Comma(diff)+" fewer than base")
	}

	lowestRate := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SurplusPercent.LessThan(lowestRate.SurplusPercent) {
			lowestRate = alt
		}
	}
	if lowestRate != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Surplus Rate: %s at %s%% (%s points vs base)",
				lowestRate.ScenarioName,
				lowestRate.SurplusPercent.StringFixed(1),
				lowestRate.RateDiffFromBase.StringFixed(1)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "No alternative reduces the surplus below the base scenario")
	}

	return recommendations
}
