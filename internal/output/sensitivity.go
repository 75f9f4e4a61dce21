package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/dustin/go-humanize"
)

// SensitivityFormatter renders a parameter sweep.
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no results in analysis")
	}
	var buf bytes.Buffer
	param := analysis.Parameter

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintf(&buf, "Scenario: %s\n", analysis.BaseScenarioName)
	fmt.Fprintf(&buf, "Base Case: %s = %s %s\n", param.Name, param.BaseValue.String(), param.Unit)
	fmt.Fprintf(&buf, "Range: %s to %s %s (%d steps)\n",
		param.MinValue.String(), param.MaxValue.String(), param.Unit, param.Steps)
	fmt.Fprintf(&buf, "Description: %s\n", param.Description)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-14s %14s %14s %10s %14s\n",
		param.Name, "Monogamy", "Effective", "Rate", "vs Base")
	fmt.Fprintln(&buf, strings.Repeat("-", 70))

	for _, p := range analysis.Points {
		value := p.Value.String()
		if p.Value.Equal(param.BaseValue) {
			value += " (base)"
		}
		fmt.Fprintf(&buf, "%-14s %14s %14s %10s %14s\n",
			value,
			humanize.Comma(p.MonogamySurplus),
			humanize.Comma(p.AlternativeSurplus),
			p.SurplusPercent.StringFixed(1)+"%",
			signedComma(p.ChangeFromBase))
	}
	fmt.Fprintln(&buf)

	s := analysis.Summary
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Surplus Range:      %s to %s\n", humanize.Comma(s.MinSurplus), humanize.Comma(s.MaxSurplus))
	fmt.Fprintf(&buf, "Largest Step:       %s at %s\n", signedComma(s.LargestStepChange), s.LargestStepAt.String())
	fmt.Fprintf(&buf, "Sensitivity Score:  %s%% per %s\n", s.SensitivityScore.StringFixed(2), unitSingular(param.Unit))
	fmt.Fprintf(&buf, "Risk Level:         %s\n", s.RiskLevel)
	if len(s.Recommendations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "RECOMMENDATIONS")
		for _, rec := range s.Recommendations {
			fmt.Fprintf(&buf, "* %s\n", rec)
		}
	}

	return buf.String(), nil
}

func signedComma(v int64) string {
	if v > 0 {
		return "+" + humanize.Comma(v)
	}
	return humanize.Comma(v)
}

func unitSingular(unit string) string {
	switch unit {
	case "years":
		return "year"
	case "percent":
		return "point"
	}
	return unit
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		analysis.Parameter.Name, "ScenarioName", "MonogamySurplus", "EffectiveSurplus",
		"SurplusPercent", "ChangeFromPrevious", "ChangeFromBase", "ChangeFromBasePercent",
	}); err != nil {
		return "", err
	}
	for _, p := range analysis.Points {
		if err := w.Write([]string{
			p.Value.String(),
			p.ScenarioName,
			itoa(p.MonogamySurplus),
			itoa(p.AlternativeSurplus),
			p.SurplusPercent.StringFixed(2),
			itoa(p.ChangeFromPrevious),
			itoa(p.ChangeFromBase),
			p.ChangeFromBasePercent.StringFixed(2),
		}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	// Per-point calculator results are dropped to keep the document small.
	trimmed := *analysis
	trimmed.Points = make([]domain.SensitivityPoint, len(analysis.Points))
	for i, p := range analysis.Points {
		p.Result = nil
		trimmed.Points[i] = p
	}
	data, err := json.MarshalIndent(trimmed, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSensitivityFormatter returns the formatter for format, defaulting to
// console.
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch format {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}
