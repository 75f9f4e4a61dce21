package calculation

import (
	"context"
	"fmt"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer sweeps one scenario parameter and records how the
// surplus responds.
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates an analyzer over engine.
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// AnalyzeSingleParameter runs the scenario once per parameter step.
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(
	ctx context.Context,
	scenario *domain.Scenario,
	parameter domain.SensitivityParameter,
) (*domain.SensitivityAnalysis, error) {
	if scenario == nil {
		return nil, fmt.Errorf("base scenario is nil")
	}
	if _, ok := domain.LookupParameter(parameter.Name); !ok {
		return nil, fmt.Errorf("unknown sensitivity parameter %q", parameter.Name)
	}
	if parameter.MaxValue.LessThan(parameter.MinValue) {
		return nil, fmt.Errorf("parameter %s: max %s is below min %s",
			parameter.Name, parameter.MaxValue, parameter.MinValue)
	}

	values := sa.generateParameterValues(parameter)
	points := make([]domain.SensitivityPoint, 0, len(values))

	for _, value := range values {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sensitivity analysis cancelled: %w", err)
		}

		modified := sa.modifyScenarioParameter(scenario, parameter.Name, value)
		run, err := sa.calculationEngine.RunScenario(ctx, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario for %s=%s: %w", parameter.Name, value, err)
		}

		effective := run.Result.Effective()
		points = append(points, domain.SensitivityPoint{
			Value:              value,
			ScenarioName:       fmt.Sprintf("%s_%s_%s", scenario.Name, parameter.Name, value.String()),
			MonogamySurplus:    run.Result.Monogamy.TotalSurplus,
			AlternativeSurplus: effective.TotalSurplus,
			SurplusPercent:     decimal.NewFromFloat(effective.SurplusPercent).Round(2),
			Result:             run.Result,
		})
	}

	summary := sa.calculateSensitivitySummary(points, parameter)

	return &domain.SensitivityAnalysis{
		BaseScenarioName: scenario.Name,
		Parameter:        parameter,
		Points:           points,
		Summary:          summary,
	}, nil
}

// AnalyzeMultipleParameters runs one independent sweep per parameter.
func (sa *SensitivityAnalyzer) AnalyzeMultipleParameters(
	ctx context.Context,
	scenario *domain.Scenario,
	parameters []domain.SensitivityParameter,
) ([]*domain.SensitivityAnalysis, error) {
	out := make([]*domain.SensitivityAnalysis, 0, len(parameters))
	for _, p := range parameters {
		analysis, err := sa.AnalyzeSingleParameter(ctx, scenario, p)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze parameter %s: %w", p.Name, err)
		}
		out = append(out, analysis)
	}
	return out, nil
}

// generateParameterValues spaces Steps values evenly from MinValue to MaxValue.
func (sa *SensitivityAnalyzer) generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.BaseValue}
	}

	values := make([]decimal.Decimal, 0, param.Steps)
	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}
	return values
}

// modifyScenarioParameter returns a copy of scenario with one parameter set.
func (sa *SensitivityAnalyzer) modifyScenarioParameter(scenario *domain.Scenario, paramName string, value decimal.Decimal) *domain.Scenario {
	modified := scenario.DeepCopy()

	switch paramName {
	case domain.AgeOverlapParam.Name:
		modified.Filters.AgeOverlap = int(value.IntPart())
	case domain.TwoWivesShareParam.Name, domain.ThreeWivesShareParam.Name, domain.FourPlusWivesShareParam.Name:
		field, _ := domain.ParseShareField(paramName)
		dist := modified.Distribution().WithShare(field, value.InexactFloat64())
		modified.Polygyny = &dist
	}

	return modified
}

// calculateSensitivitySummary measures the sweep against the point closest
// to the parameter's base value.
func (sa *SensitivityAnalyzer) calculateSensitivitySummary(points []domain.SensitivityPoint, parameter domain.SensitivityParameter) domain.SensitivitySummary {
	if len(points) == 0 {
		return domain.SensitivitySummary{}
	}

	base := points[0]
	minDiff := points[0].Value.Sub(parameter.BaseValue).Abs()
	for _, p := range points[1:] {
		diff := p.Value.Sub(parameter.BaseValue).Abs()
		if diff.LessThan(minDiff) {
			minDiff = diff
			base = p
		}
	}

	summary := domain.SensitivitySummary{
		BaseSurplus: base.AlternativeSurplus,
		MinSurplus:  points[0].AlternativeSurplus,
		MaxSurplus:  points[0].AlternativeSurplus,
	}

	for i := range points {
		p := &points[i]
		p.ChangeFromBase = p.AlternativeSurplus - base.AlternativeSurplus
		if base.AlternativeSurplus != 0 {
			p.ChangeFromBasePercent = decimal.NewFromInt(p.ChangeFromBase).
				Div(decimal.NewFromInt(base.AlternativeSurplus)).
				Mul(decimal.NewFromInt(100)).Round(2)
		}
		if i > 0 {
			p.ChangeFromPrevious = p.AlternativeSurplus - points[i-1].AlternativeSurplus
			if abs64(p.ChangeFromPrevious) > abs64(summary.LargestStepChange) {
				summary.LargestStepChange = p.ChangeFromPrevious
				summary.LargestStepAt = p.Value
			}
		}
		if p.AlternativeSurplus < summary.MinSurplus {
			summary.MinSurplus = p.AlternativeSurplus
		}
		if p.AlternativeSurplus > summary.MaxSurplus {
			summary.MaxSurplus = p.AlternativeSurplus
		}
	}

	first, last := points[0], points[len(points)-1]
	span := last.Value.Sub(first.Value)
	if first.AlternativeSurplus != 0 && !span.IsZero() {
		changePct := decimal.NewFromInt(last.AlternativeSurplus - first.AlternativeSurplus).
			Div(decimal.NewFromInt(first.AlternativeSurplus)).
			Mul(decimal.NewFromInt(100))
		summary.SensitivityScore = changePct.Div(span).Round(4)
	}
	summary.RiskLevel = summary.DetermineRiskLevel()

	switch summary.RiskLevel {
	case "HIGH":
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Surplus is highly sensitive to %s", parameter.Name),
			"Report results across the full range rather than a single value")
	case "MEDIUM":
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Moderate sensitivity to %s", parameter.Name))
	default:
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Low sensitivity to %s", parameter.Name))
	}
	if summary.LargestStepChange != 0 {
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Largest change (%+d) occurs at %s=%s", summary.LargestStepChange, parameter.Name, summary.LargestStepAt))
	}

	return summary
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
