// Package refdata embeds the default census and religious-demographics
// reference tables.
package refdata

import (
	_ "embed"
	"fmt"

	"github.com/biblemarriages/surplus/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed census_marital.yaml
var censusSource []byte

//go:embed religious_demographics.yaml
var religiousSource []byte

// Census decodes the embedded marital-status table. Each call returns a
// fresh copy.
func Census() (*domain.CensusData, error) {
	var census domain.CensusData
	if err := yaml.Unmarshal(censusSource, &census); err != nil {
		return nil, fmt.Errorf("failed to parse embedded census data: %w", err)
	}
	return &census, nil
}

// Religious decodes the embedded religious-demographics table. Each call
// returns a fresh copy.
func Religious() (*domain.ReligiousData, error) {
	var religious domain.ReligiousData
	if err := yaml.Unmarshal(religiousSource, &religious); err != nil {
		return nil, fmt.Errorf("failed to parse embedded religious data: %w", err)
	}
	return &religious, nil
}

// Load returns both embedded tables.
func Load() (*domain.CensusData, *domain.ReligiousData, error) {
	census, err := Census()
	if err != nil {
		return nil, nil, err
	}
	religious, err := Religious()
	if err != nil {
		return nil, nil, err
	}
	return census, religious, nil
}

// MustLoad is Load for package initialisation and tests; it panics on a
// malformed embedded table.
func MustLoad() (*domain.CensusData, *domain.ReligiousData) {
	census, religious, err := Load()
	if err != nil {
		panic(err)
	}
	return census, religious
}
