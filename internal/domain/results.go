package domain

// BracketResult is one age bracket's computed head counts.
type BracketResult struct {
	AgeBracket     AgeBracket `json:"ageBracket" yaml:"age_bracket"`
	UnmarriedMen   int64      `json:"unmarriedMen" yaml:"unmarried_men"`
	UnmarriedWomen int64      `json:"unmarriedWomen" yaml:"unmarried_women"`
	Widows         int64      `json:"widows" yaml:"widows"`
	AvailableMen   int64      `json:"availableMen" yaml:"available_men"`
	Surplus        int64      `json:"surplus" yaml:"surplus"`
	SurplusPercent float64    `json:"surplusPercent" yaml:"surplus_percent"`
}

// MatchedWomen is the number of women in the bracket who have an available
// man under the scenario.
func (b BracketResult) MatchedWomen() int64 {
	if b.AvailableMen < b.UnmarriedWomen {
		return b.AvailableMen
	}
	return b.UnmarriedWomen
}

// ScenarioResult aggregates bracket results under one marriage structure.
type ScenarioResult struct {
	Name                string          `json:"name" yaml:"name"`
	Description         string          `json:"description" yaml:"description"`
	TotalUnmarriedWomen int64           `json:"totalUnmarriedWomen" yaml:"total_unmarried_women"`
	TotalUnmarriedMen   int64           `json:"totalUnmarriedMen" yaml:"total_unmarried_men"`
	TotalWidows         int64           `json:"totalWidows" yaml:"total_widows"`
	TotalSurplus        int64           `json:"totalSurplus" yaml:"total_surplus"`
	SurplusPercent      float64         `json:"surplusPercent" yaml:"surplus_percent"`
	ByBracket           []BracketResult `json:"byBracket" yaml:"by_bracket"`
}

// CalculatorResult is the engine's output for one invocation.
type CalculatorResult struct {
	Filters              CalculatorFilters     `json:"filters" yaml:"filters"`
	Monogamy             ScenarioResult        `json:"monogamy" yaml:"monogamy"`
	Alternative          *ScenarioResult       `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	PolygynyDistribution *PolygynyDistribution `json:"polygynyDistribution,omitempty" yaml:"polygyny_distribution,omitempty"`
}

// SurplusReduction is how many fewer surplus women the Alternative scenario
// leaves than Monogamy; zero when no Alternative was computed.
func (r *CalculatorResult) SurplusReduction() int64 {
	if r == nil || r.Alternative == nil {
		return 0
	}
	return r.Monogamy.TotalSurplus - r.Alternative.TotalSurplus
}

// Effective returns the Alternative scenario when present, else Monogamy.
func (r *CalculatorResult) Effective() ScenarioResult {
	if r.Alternative != nil {
		return *r.Alternative
	}
	return r.Monogamy
}

// ScenarioRun is a named configured scenario together with its result.
type ScenarioRun struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Result      *CalculatorResult `json:"result" yaml:"result"`
}
