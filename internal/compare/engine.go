package compare

import (
	"context"
	"fmt"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // empty selects the first scenario
	Templates        []string // template names to apply to the base
}

// Compare runs the base scenario from config and each requested template
// applied to it.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration has no scenarios")
	}

	baseScenario := &config.Scenarios[0]
	if options.BaseScenarioName != "" {
		s, ok := config.FindScenario(options.BaseScenarioName)
		if !ok {
			return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
		}
		baseScenario = s
	}

	return ce.CompareScenario(ctx, baseScenario, options.Templates)
}

// CompareScenario compares base against each named template applied to it.
func (ce *CompareEngine) CompareScenario(
	ctx context.Context,
	baseScenario *domain.Scenario,
	templates []string,
) (*ComparisonSet, error) {
	baseRun, err := ce.CalcEngine.RunScenario(ctx, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseRun)

	alternatives := []ComparisonResult{}
	for _, templateName := range templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(baseScenario, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modified.Name = baseScenario.Name + "_" + template.Name
		modified.Description = template.Description

		altRun, err := ce.CalcEngine.RunScenario(ctx, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altRun)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenario.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares explicit scenarios from config (no templates).
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	baseScenario, ok := config.FindScenario(baseScenarioName)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}
	baseRun, err := ce.CalcEngine.RunScenario(ctx, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseRun)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		altScenario, ok := config.FindScenario(altName)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}
		altRun, err := ce.CalcEngine.RunScenario(ctx, altScenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altRun)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
