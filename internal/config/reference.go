package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/refdata"
	"gopkg.in/yaml.v3"
)

// LoadReferenceData loads both reference tables. An empty path selects the
// embedded default for that table.
func (ip *InputParser) LoadReferenceData(paths domain.ReferenceDataPaths) (*domain.CensusData, *domain.ReligiousData, error) {
	var (
		census    *domain.CensusData
		religious *domain.ReligiousData
		err       error
	)

	if paths.Census == "" {
		census, err = refdata.Census()
	} else {
		census, err = ip.LoadCensusFile(paths.Census)
	}
	if err != nil {
		return nil, nil, err
	}

	if paths.Religious == "" {
		religious, err = refdata.Religious()
	} else {
		religious, err = ip.LoadReligiousFile(paths.Religious)
	}
	if err != nil {
		return nil, nil, err
	}

	return census, religious, nil
}

// LoadCensusFile reads and validates a marital-status table.
func (ip *InputParser) LoadCensusFile(filename string) (*domain.CensusData, error) {
	var census domain.CensusData
	if err := decodeFile(filename, &census); err != nil {
		return nil, err
	}
	if err := ValidateCensusData(&census); err != nil {
		return nil, fmt.Errorf("census data %s invalid: %w", filename, err)
	}
	return &census, nil
}

// LoadReligiousFile reads and validates a religious-demographics table.
func (ip *InputParser) LoadReligiousFile(filename string) (*domain.ReligiousData, error) {
	var religious domain.ReligiousData
	if err := decodeFile(filename, &religious); err != nil {
		return nil, err
	}
	if err := ValidateReligiousData(&religious); err != nil {
		return nil, fmt.Errorf("religious data %s invalid: %w", filename, err)
	}
	return &religious, nil
}

// decodeFile picks the decoder from the extension: .json files use the
// camelCase keys of the published datasets, anything else is YAML.
func decodeFile(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse JSON %s: %w", filename, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", filename, err)
	}
	return nil
}

// ValidateCensusData requires one row per recognised bracket, each with
// data for both sexes and no negative counts.
func ValidateCensusData(census *domain.CensusData) error {
	if census == nil {
		return &ValidationError{Field: "census", Message: "is nil"}
	}

	var errs []error
	seen := make(map[domain.AgeBracket]bool, len(census.AgeBrackets))
	for i, row := range census.AgeBrackets {
		field := fmt.Sprintf("age_brackets[%d]", i)
		if !row.Range.Valid() {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("unknown age bracket %q", row.Range)})
			continue
		}
		if seen[row.Range] {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("age bracket %q listed more than once", row.Range)})
		}
		seen[row.Range] = true

		for _, sex := range []domain.Sex{domain.Male, domain.Female} {
			if err := validateMaritalStatus(fmt.Sprintf("%s.%s", field, sex), row.ForSex(sex)); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, b := range domain.AllAgeBrackets() {
		if !seen[b] {
			errs = append(errs, &ValidationError{Field: "age_brackets", Message: fmt.Sprintf("missing age bracket %q", b)})
		}
	}
	return errors.Join(errs...)
}

func validateMaritalStatus(field string, s domain.MaritalStatusBySex) error {
	counts := map[string]float64{
		"total":         s.Total,
		"never_married": s.NeverMarried,
		"married":       s.Married,
		"divorced":      s.Divorced,
		"widowed":       s.Widowed,
		"separated":     s.Separated,
	}
	for name, v := range counts {
		if v < 0 {
			return &ValidationError{Field: field + "." + name, Message: "count cannot be negative"}
		}
	}
	if s.Total == 0 {
		return &ValidationError{Field: field, Message: "no data for this sex"}
	}
	return nil
}

// ValidateReligiousData requires one by-age row per recognised bracket,
// every percentage in [0,100], and well-formed denomination rows.
func ValidateReligiousData(religious *domain.ReligiousData) error {
	if religious == nil {
		return &ValidationError{Field: "religious", Message: "is nil"}
	}

	var errs []error
	if err := checkPercent("overall_christian_percent", religious.OverallChristianPercent); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[domain.AgeBracket]bool, len(religious.ByAge))
	for i, row := range religious.ByAge {
		field := fmt.Sprintf("by_age[%d]", i)
		if !row.Range.Valid() {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("unknown age bracket %q", row.Range)})
			continue
		}
		if seen[row.Range] {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("age bracket %q listed more than once", row.Range)})
		}
		seen[row.Range] = true

		percents := []struct {
			name  string
			value *float64
		}{
			{"christian_percent", &row.ChristianPercent},
			{"christian_percent_male", row.ChristianPercentMale},
			{"christian_percent_female", row.ChristianPercentFemale},
			{"devout_percent", &row.DevoutPercent},
			{"practicing_percent", &row.PracticingPercent},
			{"nominal_percent", &row.NominalPercent},
			{"attend_monthly_percent", row.AttendMonthlyPercent},
			{"pray_daily_percent", row.PrayDailyPercent},
		}
		for _, p := range percents {
			if p.value == nil {
				continue
			}
			if err := checkPercent(field+"."+p.name, *p.value); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, b := range domain.AllAgeBrackets() {
		if !seen[b] {
			errs = append(errs, &ValidationError{Field: "by_age", Message: fmt.Sprintf("missing age bracket %q", b)})
		}
	}

	ids := make(map[domain.Denomination]bool, len(religious.ByDenomination))
	for i, d := range religious.ByDenomination {
		field := fmt.Sprintf("by_denomination[%d]", i)
		if !d.ID.Valid() || d.ID == domain.DenominationAll {
			errs = append(errs, &ValidationError{Field: field + ".id", Message: fmt.Sprintf("unknown denomination %q", d.ID)})
			continue
		}
		if ids[d.ID] {
			errs = append(errs, &ValidationError{Field: field + ".id", Message: fmt.Sprintf("denomination %q listed more than once", d.ID)})
		}
		ids[d.ID] = true

		if err := checkPercent(field+".percent_of_christians", d.PercentOfChristians); err != nil {
			errs = append(errs, err)
		}
		if err := checkPercent(field+".percent_of_population", d.PercentOfPopulation); err != nil {
			errs = append(errs, err)
		}
		if d.GenderRatio != nil && d.GenderRatio.MenPer100Women < 0 {
			errs = append(errs, &ValidationError{Field: field + ".gender_ratio.men_per_100_women", Message: "ratio cannot be negative"})
		}
	}

	return errors.Join(errs...)
}

func checkPercent(field string, v float64) error {
	if v < 0 || v > 100 {
		return &ValidationError{Field: field, Message: fmt.Sprintf("percentage %g outside [0,100]", v)}
	}
	return nil
}
