package transform

import (
	"testing"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []ScenarioTransform{},
	}

	registry.Register(template)

	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	expected := []string{
		"catholic", "devout_only", "evangelical", "exclude_divorced", "exclude_widows",
		"mainline", "never_married_only", "nominal_only", "overlap_10", "overlap_20",
		"polygyny_10", "polygyny_20", "polygyny_mixed", "practicing_only", "young_adults",
	}
	assert.Equal(t, expected, registry.List())
	assert.Len(t, registry.All(), len(expected))

	// every template applies cleanly to the default scenario
	for _, tmpl := range registry.All() {
		t.Run(tmpl.Name, func(t *testing.T) {
			assert.NotEmpty(t, tmpl.Description)
			require.NotEmpty(t, tmpl.Transforms)
			_, err := ApplyTransforms(baseScenario(), tmpl.Transforms)
			assert.NoError(t, err)
		})
	}
}

func TestBuiltInTemplates_Effects(t *testing.T) {
	registry := CreateBuiltInTemplates()

	apply := func(name string) *domain.Scenario {
		tmpl, ok := registry.Get(name)
		require.True(t, ok, name)
		s, err := ApplyTransforms(baseScenario(), tmpl.Transforms)
		require.NoError(t, err)
		return s
	}

	s := apply("never_married_only")
	assert.False(t, s.Filters.IncludeWidows)
	assert.False(t, s.Filters.IncludeDivorced)

	s = apply("young_adults")
	assert.Equal(t, []domain.AgeBracket{domain.Bracket18to24, domain.Bracket25to34}, s.Filters.AgeBrackets)

	s = apply("polygyny_mixed")
	require.NotNil(t, s.Polygyny)
	assert.InDelta(t, 1.475, s.Polygyny.WifeCapacity(), 1e-12)

	s = apply("overlap_20")
	assert.Equal(t, 20, s.Filters.AgeOverlap)
}
