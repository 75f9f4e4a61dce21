package transform

import (
	"fmt"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
)

// SetOverlap sets how many years older men may be than the women they
// are counted as available to.
type SetOverlap struct {
	Years int
}

func (so *SetOverlap) Name() string { return "set_overlap" }

func (so *SetOverlap) Description() string {
	return fmt.Sprintf("Allow men up to %d years older", so.Years)
}

func (so *SetOverlap) Validate(base *domain.Scenario) error {
	if so.Years < 0 {
		return NewTransformError(so.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", so.Years), nil)
	}
	return requireBase(so.Name(), base)
}

func (so *SetOverlap) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.AgeOverlap = so.Years
	return modified, nil
}

// SetDenomination restricts the scenario to one denomination.
type SetDenomination struct {
	Denomination domain.Denomination
}

func (sd *SetDenomination) Name() string { return "set_denomination" }

func (sd *SetDenomination) Description() string {
	return "Restrict to " + sd.Denomination.Label()
}

func (sd *SetDenomination) Validate(base *domain.Scenario) error {
	if !sd.Denomination.Valid() {
		return NewTransformError(sd.Name(), "validate", fmt.Sprintf("unknown denomination %q", sd.Denomination), nil)
	}
	return requireBase(sd.Name(), base)
}

func (sd *SetDenomination) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.Denomination = sd.Denomination
	return modified, nil
}

// SetReligiosity restricts the scenario to one practice tier.
type SetReligiosity struct {
	Level domain.ReligiosityLevel
}

func (sr *SetReligiosity) Name() string { return "set_religiosity" }

func (sr *SetReligiosity) Description() string {
	return "Restrict to " + strings.ToLower(sr.Level.Label()) + " Christians"
}

func (sr *SetReligiosity) Validate(base *domain.Scenario) error {
	if !sr.Level.Valid() {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("unknown religiosity level %q", sr.Level), nil)
	}
	return requireBase(sr.Name(), base)
}

func (sr *SetReligiosity) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.Religiosity = sr.Level
	return modified, nil
}

// IncludeWidows toggles counting widowed women as unmarried.
type IncludeWidows struct {
	Include bool
}

func (iw *IncludeWidows) Name() string { return "include_widows" }

func (iw *IncludeWidows) Description() string {
	if iw.Include {
		return "Count widowed women"
	}
	return "Exclude widowed women"
}

func (iw *IncludeWidows) Validate(base *domain.Scenario) error {
	return requireBase(iw.Name(), base)
}

func (iw *IncludeWidows) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.IncludeWidows = iw.Include
	return modified, nil
}

// IncludeDivorced toggles counting divorced men and women as unmarried.
type IncludeDivorced struct {
	Include bool
}

func (id *IncludeDivorced) Name() string { return "include_divorced" }

func (id *IncludeDivorced) Description() string {
	if id.Include {
		return "Count divorced men and women"
	}
	return "Exclude divorced men and women"
}

func (id *IncludeDivorced) Validate(base *domain.Scenario) error {
	return requireBase(id.Name(), base)
}

func (id *IncludeDivorced) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.IncludeDivorced = id.Include
	return modified, nil
}

// SelectBrackets replaces the selected age brackets.
type SelectBrackets struct {
	Brackets []domain.AgeBracket
}

func (sb *SelectBrackets) Name() string { return "select_brackets" }

func (sb *SelectBrackets) Description() string {
	if len(sb.Brackets) == 0 {
		return "Select no age brackets"
	}
	labels := make([]string, len(sb.Brackets))
	for i, b := range sb.Brackets {
		labels[i] = string(b)
	}
	return "Select ages " + strings.Join(labels, ", ")
}

func (sb *SelectBrackets) Validate(base *domain.Scenario) error {
	for _, b := range sb.Brackets {
		if !b.Valid() {
			return NewTransformError(sb.Name(), "validate", fmt.Sprintf("unknown age bracket %q", b), nil)
		}
	}
	return requireBase(sb.Name(), base)
}

func (sb *SelectBrackets) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Filters.AgeBrackets = append([]domain.AgeBracket{}, sb.Brackets...)
	return modified, nil
}
