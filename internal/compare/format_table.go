package compare

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const (
	tableWidth = 84
	nameWidth  = 28
	numWidth   = 13
)

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SURPLUS SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Women",
		numWidth, "Avail. Men",
		numWidth, "Surplus",
		numWidth, "Rate"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Surplus:          %s%s (%s%%)\n",
				deltaSymbol(alt.SurplusDiffFromBase),
				humanize.Comma(alt.SurplusDiffFromBase),
				alt.SurplusPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Surplus Rate:     %s points\n",
				alt.RateDiffFromBase.StringFixed(1)))
			if alt.WomenDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  Unmarried Women:  %s%s\n",
					deltaSymbol(alt.WomenDiffFromBase),
					humanize.Comma(alt.WomenDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, truncate(name, nameWidth),
		numWidth, humanize.Comma(result.UnmarriedWomen),
		numWidth, humanize.Comma(result.AvailableMen),
		numWidth, humanize.Comma(result.EffectiveSurplus),
		numWidth, result.SurplusPercent.StringFixed(1)+"%")
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.SurplusDiffFromBase != 0 {
			change = deltaSymbol(alt.SurplusDiffFromBase) + humanize.Comma(alt.SurplusDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}

// deltaSymbol returns "+" for positive deltas; negative numbers carry their
// own sign.
func deltaSymbol(delta int64) string {
	if delta > 0 {
		return "+"
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
