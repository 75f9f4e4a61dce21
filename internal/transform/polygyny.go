package transform

import (
	"github.com/biblemarriages/surplus/internal/config"
	"github.com/biblemarriages/surplus/internal/domain"
)

// SetPolygyny replaces the scenario's wife distribution.
type SetPolygyny struct {
	Distribution domain.PolygynyDistribution
}

func (sp *SetPolygyny) Name() string { return "set_polygyny" }

func (sp *SetPolygyny) Description() string {
	return "Marriage structure: " + sp.Distribution.Description()
}

func (sp *SetPolygyny) Validate(base *domain.Scenario) error {
	if err := config.ValidateDistribution(sp.Distribution); err != nil {
		return NewTransformError(sp.Name(), "validate", "invalid distribution", err)
	}
	return requireBase(sp.Name(), base)
}

func (sp *SetPolygyny) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	dist := sp.Distribution
	modified.Polygyny = &dist
	return modified, nil
}
