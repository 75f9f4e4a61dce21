package calculation

import (
	"context"
	"fmt"

	"github.com/biblemarriages/surplus/internal/domain"
)

// CalculationEngine binds the reference tables to the surplus calculation.
// The tables are read-only for the engine's lifetime, so one engine may
// serve concurrent callers.
type CalculationEngine struct {
	Census    *domain.CensusData
	Religious *domain.ReligiousData
	Logger    Logger
	Debug     bool // Log per-bracket intermediate values
}

// NewCalculationEngine creates an engine over the given reference tables.
func NewCalculationEngine(census *domain.CensusData, religious *domain.ReligiousData) *CalculationEngine {
	return &CalculationEngine{
		Census:    census,
		Religious: religious,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) debugLogger() Logger {
	if ce.Debug && ce.Logger != nil {
		return ce.Logger
	}
	return NopLogger{}
}

// CalculateResults computes the Monogamy scenario for the selected brackets
// and, when dist is polygynous, the Alternative scenario. A nil dist means
// pure monogamy.
func (ce *CalculationEngine) CalculateResults(filters domain.CalculatorFilters, dist *domain.PolygynyDistribution) *domain.CalculatorResult {
	return calculateResults(filters, ce.Census, ce.Religious, dist, ce.debugLogger())
}

// CalculateResults is the stateless form of CalculationEngine.CalculateResults.
func CalculateResults(filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData, dist *domain.PolygynyDistribution) *domain.CalculatorResult {
	return calculateResults(filters, census, religious, dist, NopLogger{})
}

func calculateResults(filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData, dist *domain.PolygynyDistribution, log Logger) *domain.CalculatorResult {
	d := domain.DefaultMonogamy
	if dist != nil {
		d = *dist
	}

	brackets := make([]domain.BracketResult, 0, len(filters.AgeBrackets))
	for _, b := range filters.AgeBrackets {
		brackets = append(brackets, calculateBracketResult(b, filters, census, religious, log))
	}

	result := &domain.CalculatorResult{
		Filters:              filters.Clone(),
		Monogamy:             AggregateResults(brackets, MonogamyName, MonogamyDescription),
		PolygynyDistribution: &d,
	}

	if d.IsPolygynous() {
		alt := AggregateResults(
			CalculatePolygynyScenario(brackets, d),
			d.ScenarioName(),
			"Hypothetical: "+d.Description(),
		)
		log.Debugf("capacity %.4f: surplus %d -> %d", d.WifeCapacity(), result.Monogamy.TotalSurplus, alt.TotalSurplus)
		result.Alternative = &alt
	}

	return result
}

// RunScenario evaluates one configured scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioRun, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	dist := scenario.Distribution()
	ce.debugLogger().Infof("running scenario %q over %d brackets", scenario.Name, len(scenario.Filters.AgeBrackets))

	return &domain.ScenarioRun{
		Name:        scenario.Name,
		Description: scenario.Description,
		Result:      ce.CalculateResults(scenario.Filters, &dist),
	}, nil
}

// RunScenarios evaluates every scenario in cfg in order. Cancellation is
// observed between scenarios.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) ([]domain.ScenarioRun, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	runs := make([]domain.ScenarioRun, 0, len(cfg.Scenarios))
	for i := range cfg.Scenarios {
		run, err := ce.RunScenario(ctx, &cfg.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %d: %w", i, err)
		}
		runs = append(runs, *run)
	}
	return runs, nil
}
