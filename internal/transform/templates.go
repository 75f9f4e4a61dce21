package transform

import (
	"sort"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Transforms  []ScenarioTransform `json:"-"`
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every template sorted by name.
func (tr *TemplateRegistry) All() []Template {
	out := make([]Template, 0, len(tr.templates))
	for _, name := range tr.List() {
		out = append(out, tr.templates[name])
	}
	return out
}

// CreateBuiltInTemplates creates a template registry with the common
// what-if variations of a base scenario.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Age matching
	registry.Register(Template{
		Name:        "overlap_10",
		Description: "Count men up to 10 years older (one bracket)",
		Transforms:  []ScenarioTransform{&SetOverlap{Years: 10}},
	})
	registry.Register(Template{
		Name:        "overlap_20",
		Description: "Count men up to 20 years older (two brackets)",
		Transforms:  []ScenarioTransform{&SetOverlap{Years: 20}},
	})

	// Religiosity
	registry.Register(Template{
		Name:        "devout_only",
		Description: "Devout Christians only",
		Transforms:  []ScenarioTransform{&SetReligiosity{Level: domain.LevelDevout}},
	})
	registry.Register(Template{
		Name:        "practicing_only",
		Description: "Practicing Christians only",
		Transforms:  []ScenarioTransform{&SetReligiosity{Level: domain.LevelPracticing}},
	})
	registry.Register(Template{
		Name:        "nominal_only",
		Description: "Nominal Christians only",
		Transforms:  []ScenarioTransform{&SetReligiosity{Level: domain.LevelNominal}},
	})

	// Denominations
	registry.Register(Template{
		Name:        "evangelical",
		Description: "Evangelical Protestants only",
		Transforms:  []ScenarioTransform{&SetDenomination{Denomination: domain.DenominationEvangelical}},
	})
	registry.Register(Template{
		Name:        "catholic",
		Description: "Catholics only",
		Transforms:  []ScenarioTransform{&SetDenomination{Denomination: domain.DenominationCatholic}},
	})
	registry.Register(Template{
		Name:        "mainline",
		Description: "Mainline Protestants only",
		Transforms:  []ScenarioTransform{&SetDenomination{Denomination: domain.DenominationMainline}},
	})

	// Marital status
	registry.Register(Template{
		Name:        "exclude_widows",
		Description: "Do not count widowed women",
		Transforms:  []ScenarioTransform{&IncludeWidows{Include: false}},
	})
	registry.Register(Template{
		Name:        "exclude_divorced",
		Description: "Do not count divorced men or women",
		Transforms:  []ScenarioTransform{&IncludeDivorced{Include: false}},
	})
	registry.Register(Template{
		Name:        "never_married_only",
		Description: "Never-married and separated only",
		Transforms: []ScenarioTransform{
			&IncludeWidows{Include: false},
			&IncludeDivorced{Include: false},
		},
	})
	registry.Register(Template{
		Name:        "young_adults",
		Description: "Ages 18-34 only",
		Transforms: []ScenarioTransform{
			&SelectBrackets{Brackets: []domain.AgeBracket{domain.Bracket18to24, domain.Bracket25to34}},
		},
	})

	// Marriage structure
	registry.Register(Template{
		Name:        "polygyny_10",
		Description: "10% of men with two wives",
		Transforms: []ScenarioTransform{
			&SetPolygyny{Distribution: domain.PolygynyDistribution{OneWife: 90, TwoWives: 10}},
		},
	})
	registry.Register(Template{
		Name:        "polygyny_20",
		Description: "20% of men with two wives",
		Transforms: []ScenarioTransform{
			&SetPolygyny{Distribution: domain.PolygynyDistribution{OneWife: 80, TwoWives: 20}},
		},
	})
	registry.Register(Template{
		Name:        "polygyny_mixed",
		Description: "20% with two wives, 5% with three, 5% with four or more",
		Transforms: []ScenarioTransform{
			&SetPolygyny{Distribution: domain.PolygynyDistribution{OneWife: 70, TwoWives: 20, ThreeWives: 5, FourPlusWives: 5}},
		},
	})

	return registry
}

// ApplyTemplate applies a template's transforms to base.
func ApplyTemplate(base *domain.Scenario, t Template) (*domain.Scenario, error) {
	return ApplyTransforms(base, t.Transforms)
}
