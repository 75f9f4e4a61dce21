package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter is a parameter to sweep in sensitivity analysis.
type SensitivityParameter struct {
	Name        string          `yaml:"name" json:"name"`
	MinValue    decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue    decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps       int             `yaml:"steps" json:"steps"`
	BaseValue   decimal.Decimal `yaml:"base_value" json:"baseValue"`
	Unit        string          `yaml:"unit" json:"unit"` // "years" or "percent"
	Description string          `yaml:"description" json:"description"`
}

// SensitivityPoint is one step of a sweep.
type SensitivityPoint struct {
	Value                 decimal.Decimal   `json:"value"`
	ScenarioName          string            `json:"scenarioName"`
	MonogamySurplus       int64             `json:"monogamySurplus"`
	AlternativeSurplus    int64             `json:"alternativeSurplus"`
	SurplusPercent        decimal.Decimal   `json:"surplusPercent"`
	ChangeFromPrevious    int64             `json:"changeFromPrevious"`
	ChangeFromBase        int64             `json:"changeFromBase"`
	ChangeFromBasePercent decimal.Decimal   `json:"changeFromBasePercent"`
	Result                *CalculatorResult `json:"result,omitempty"`
}

// SensitivitySummary reports the shape of a sweep.
type SensitivitySummary struct {
	BaseSurplus       int64           `json:"baseSurplus"`
	MinSurplus        int64           `json:"minSurplus"`
	MaxSurplus        int64           `json:"maxSurplus"`
	LargestStepChange int64           `json:"largestStepChange"`
	LargestStepAt     decimal.Decimal `json:"largestStepAt"`
	SensitivityScore  decimal.Decimal `json:"sensitivityScore"` // percent change in surplus per unit of parameter
	RiskLevel         string          `json:"riskLevel"`        // "LOW", "MEDIUM", "HIGH"
	Recommendations   []string        `json:"recommendations"`
}

// SensitivityAnalysis is a complete single-parameter sweep.
type SensitivityAnalysis struct {
	BaseScenarioName string               `json:"baseScenarioName"`
	Parameter        SensitivityParameter `json:"parameter"`
	Points           []SensitivityPoint   `json:"points"`
	Summary          SensitivitySummary   `json:"summary"`
}

// Common sensitivity parameters
var (
	AgeOverlapParam = SensitivityParameter{
		Name:        "age_overlap",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(30),
		Steps:       4,
		BaseValue:   decimal.Zero,
		Unit:        "years",
		Description: "Years older men may be than the women they pair with",
	}

	TwoWivesShareParam = SensitivityParameter{
		Name:        "two_wives",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(50),
		Steps:       6,
		BaseValue:   decimal.Zero,
		Unit:        "percent",
		Description: "Percentage of men with two wives",
	}

	ThreeWivesShareParam = SensitivityParameter{
		Name:        "three_wives",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(25),
		Steps:       6,
		BaseValue:   decimal.Zero,
		Unit:        "percent",
		Description: "Percentage of men with three wives",
	}

	FourPlusWivesShareParam = SensitivityParameter{
		Name:        "four_plus_wives",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(10),
		Steps:       6,
		BaseValue:   decimal.Zero,
		Unit:        "percent",
		Description: "Percentage of men with four or more wives",
	}
)

// GetCommonParameters returns the built-in sweep parameters.
func GetCommonParameters() []SensitivityParameter {
	return []SensitivityParameter{
		AgeOverlapParam,
		TwoWivesShareParam,
		ThreeWivesShareParam,
		FourPlusWivesShareParam,
	}
}

// LookupParameter returns a built-in parameter by name.
func LookupParameter(name string) (SensitivityParameter, bool) {
	for _, p := range GetCommonParameters() {
		if p.Name == name {
			return p, true
		}
	}
	return SensitivityParameter{}, false
}

// DetermineRiskLevel classifies the sensitivity score.
func (ss *SensitivitySummary) DetermineRiskLevel() string {
	score := ss.SensitivityScore.Abs()
	if score.LessThan(decimal.NewFromFloat(0.5)) {
		return "LOW"
	} else if score.LessThan(decimal.NewFromFloat(2.0)) {
		return "MEDIUM"
	}
	return "HIGH"
}
