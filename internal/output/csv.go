package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/biblemarriages/surplus/internal/domain"
)

// CSVFormatter writes one row per bracket per scenario, followed by a
// total row for each scenario.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AgeBracket", "UnmarriedWomen", "Widows", "UnmarriedMen", "AvailableMen", "Surplus", "SurplusPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	scenarios := []*domain.ScenarioResult{&result.Monogamy}
	if result.Alternative != nil {
		scenarios = append(scenarios, result.Alternative)
	}
	for _, s := range scenarios {
		for _, b := range s.ByBracket {
			row := []string{
				s.Name,
				string(b.AgeBracket),
				itoa(b.UnmarriedWomen),
				itoa(b.Widows),
				itoa(b.UnmarriedMen),
				itoa(b.AvailableMen),
				itoa(b.Surplus),
				strconv.FormatFloat(b.SurplusPercent, 'f', 2, 64),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		total := []string{
			s.Name,
			"Total",
			itoa(s.TotalUnmarriedWomen),
			itoa(s.TotalWidows),
			itoa(s.TotalUnmarriedMen),
			"",
			itoa(s.TotalSurplus),
			strconv.FormatFloat(s.SurplusPercent, 'f', 2, 64),
		}
		if err := w.Write(total); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
