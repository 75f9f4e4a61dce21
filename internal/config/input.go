package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of run configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML run configuration. Relative
// reference-data paths are resolved against the file's directory.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(filename)
	config.ReferenceData.Census = resolvePath(dir, config.ReferenceData.Census)
	config.ReferenceData.Religious = resolvePath(dir, config.ReferenceData.Religious)

	return config, nil
}

// Parse decodes and validates a YAML run configuration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// ValidateConfiguration checks every scenario and reports all failures
// joined together.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return &ValidationError{Field: "configuration", Message: "is nil"}
	}
	if len(config.Scenarios) == 0 {
		return &ValidationError{Field: "scenarios", Message: "no scenarios provided"}
	}

	var errs []error
	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if prev, dup := seen[scenario.Name]; dup && scenario.Name != "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("scenarios[%d].name", i),
				Message: fmt.Sprintf("duplicates scenario %d (%q)", prev, scenario.Name),
			})
		}
		seen[scenario.Name] = i

		if err := ip.ValidateScenario(scenario); err != nil {
			errs = append(errs, fmt.Errorf("scenario %d validation failed: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateScenario validates one scenario's name, filters and distribution.
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return &ValidationError{Field: "name", Message: "scenario name is required"}
	}
	if err := ValidateFilters(scenario.Filters); err != nil {
		return err
	}
	if scenario.Polygyny != nil {
		if err := ValidateDistribution(*scenario.Polygyny); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFilters checks that every filter value is recognised.
func ValidateFilters(f domain.CalculatorFilters) error {
	seen := make(map[domain.AgeBracket]bool, len(f.AgeBrackets))
	for _, b := range f.AgeBrackets {
		if !b.Valid() {
			return &ValidationError{Field: "filters.age_brackets", Message: fmt.Sprintf("unknown age bracket %q", b)}
		}
		if seen[b] {
			return &ValidationError{Field: "filters.age_brackets", Message: fmt.Sprintf("age bracket %q listed more than once", b)}
		}
		seen[b] = true
	}
	if !f.Denomination.Valid() {
		return &ValidationError{Field: "filters.denomination", Message: fmt.Sprintf("unknown denomination %q", f.Denomination)}
	}
	if !f.Religiosity.Valid() {
		return &ValidationError{Field: "filters.religiosity", Message: fmt.Sprintf("unknown religiosity level %q", f.Religiosity)}
	}
	if f.AgeOverlap < 0 {
		return &ValidationError{Field: "filters.age_overlap", Message: "age overlap cannot be negative"}
	}
	return nil
}

// ValidateDistribution requires four non-negative shares summing to
// exactly 100. The sum is taken in decimal so 33.3 + 33.3 + 33.4 passes.
func ValidateDistribution(d domain.PolygynyDistribution) error {
	shares := []struct {
		name  string
		value float64
	}{
		{"one_wife", d.OneWife},
		{"two_wives", d.TwoWives},
		{"three_wives", d.ThreeWives},
		{"four_plus_wives", d.FourPlusWives},
	}

	sum := decimal.Zero
	for _, s := range shares {
		if s.value < 0 {
			return &ValidationError{Field: "polygyny." + s.name, Message: "share cannot be negative"}
		}
		sum = sum.Add(decimal.NewFromFloat(s.value))
	}
	if !sum.Equal(decimal.NewFromInt(100)) {
		return &ValidationError{Field: "polygyny", Message: fmt.Sprintf("shares must sum to 100, got %s", sum)}
	}
	return nil
}
