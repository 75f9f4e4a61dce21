package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ReferenceDataPaths points at reference tables on disk. Empty paths select
// the embedded defaults.
type ReferenceDataPaths struct {
	Census    string `yaml:"census,omitempty" json:"census,omitempty"`
	Religious string `yaml:"religious,omitempty" json:"religious,omitempty"`
}

// Scenario is a named filter configuration plus an optional polygyny
// distribution. A nil Polygyny means pure monogamy.
type Scenario struct {
	Name        string                `yaml:"name" json:"name"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Filters     CalculatorFilters     `yaml:"filters" json:"filters"`
	Polygyny    *PolygynyDistribution `yaml:"polygyny,omitempty" json:"polygyny,omitempty"`
}

// UnmarshalYAML gives a scenario without a filters block the default filters.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type plain Scenario
	p := plain{Filters: DefaultFilters()}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Scenario(p)
	return nil
}

// UnmarshalJSON gives a scenario without a filters object the default filters.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	type plain Scenario
	p := plain{Filters: DefaultFilters()}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Scenario(p)
	return nil
}

// DeepCopy returns a copy sharing no mutable state with s.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	out := *s
	out.Filters = s.Filters.Clone()
	if s.Polygyny != nil {
		p := *s.Polygyny
		out.Polygyny = &p
	}
	return &out
}

// Distribution returns the scenario's distribution, defaulting to monogamy.
func (s *Scenario) Distribution() PolygynyDistribution {
	if s == nil || s.Polygyny == nil {
		return DefaultMonogamy
	}
	return *s.Polygyny
}

// Configuration is a complete run configuration file.
type Configuration struct {
	ReferenceData ReferenceDataPaths `yaml:"reference_data" json:"referenceData"`
	Scenarios     []Scenario         `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the scenario with the given name.
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
