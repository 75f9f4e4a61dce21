package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.yaml", "invalid: yaml: content: [unclosed")

	config, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "valid.yaml", `
reference_data:
  census: data/census.json
scenarios:
  - name: Base
    description: everyone
  - name: Young devout
    filters:
      age_brackets: ["18-24", "25-34"]
      religiosity: devout
      include_widows: false
      age_overlap: 10
    polygyny:
      one_wife: 80
      two_wives: 20
  - name: Nobody
    filters:
      age_brackets: []
`)

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 3)

	assert.Equal(t, filepath.Join(dir, "data", "census.json"), config.ReferenceData.Census)
	assert.Empty(t, config.ReferenceData.Religious)

	base := config.Scenarios[0]
	assert.Equal(t, domain.DefaultFilters(), base.Filters, "omitted filters take defaults")
	assert.Nil(t, base.Polygyny)

	young := config.Scenarios[1]
	assert.Equal(t, []domain.AgeBracket{domain.Bracket18to24, domain.Bracket25to34}, young.Filters.AgeBrackets)
	assert.Equal(t, domain.LevelDevout, young.Filters.Religiosity)
	assert.Equal(t, domain.DenominationAll, young.Filters.Denomination)
	assert.False(t, young.Filters.IncludeWidows)
	assert.True(t, young.Filters.IncludeDivorced)
	assert.Equal(t, 10, young.Filters.AgeOverlap)
	require.NotNil(t, young.Polygyny)
	assert.Equal(t, 20.0, young.Polygyny.TwoWives)

	assert.Empty(t, config.Scenarios[2].Filters.AgeBrackets)
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	valid := func() *domain.Configuration {
		return &domain.Configuration{
			Scenarios: []domain.Scenario{
				{Name: "Base", Filters: domain.DefaultFilters()},
				{Name: "Alt", Filters: domain.DefaultFilters(), Polygyny: &domain.PolygynyDistribution{OneWife: 33.3, TwoWives: 33.3, ThreeWives: 33.4}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"no scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, "no scenarios provided"},
		{"missing name", func(c *domain.Configuration) { c.Scenarios[0].Name = "" }, "scenario name is required"},
		{"duplicate name", func(c *domain.Configuration) { c.Scenarios[1].Name = "Base" }, "duplicates scenario 0"},
		{"unknown bracket", func(c *domain.Configuration) {
			c.Scenarios[0].Filters.AgeBrackets = []domain.AgeBracket{"16-17"}
		}, "unknown age bracket"},
		{"repeated bracket", func(c *domain.Configuration) {
			c.Scenarios[0].Filters.AgeBrackets = []domain.AgeBracket{domain.Bracket18to24, domain.Bracket18to24}
		}, "listed more than once"},
		{"unknown denomination", func(c *domain.Configuration) { c.Scenarios[0].Filters.Denomination = "baptist" }, "unknown denomination"},
		{"unknown religiosity", func(c *domain.Configuration) { c.Scenarios[0].Filters.Religiosity = "zealous" }, "unknown religiosity level"},
		{"negative overlap", func(c *domain.Configuration) { c.Scenarios[0].Filters.AgeOverlap = -10 }, "cannot be negative"},
		{"distribution short of 100", func(c *domain.Configuration) {
			c.Scenarios[1].Polygyny = &domain.PolygynyDistribution{OneWife: 80, TwoWives: 10}
		}, "shares must sum to 100, got 90"},
		{"negative share", func(c *domain.Configuration) {
			c.Scenarios[1].Polygyny = &domain.PolygynyDistribution{OneWife: 110, TwoWives: -10}
		}, "polygyny.two_wives"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := NewInputParser().ValidateConfiguration(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "Should expose a ValidationError")
		})
	}
}

func TestInputParser_ValidateConfiguration_ReportsEveryScenario(t *testing.T) {
	c := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "", Filters: domain.DefaultFilters()},
			{Name: "Bad denomination", Filters: domain.CalculatorFilters{Denomination: "x", Religiosity: domain.LevelAll}},
		},
	}

	err := NewInputParser().ValidateConfiguration(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario 0 validation failed")
	assert.Contains(t, err.Error(), "scenario 1 validation failed")
}
