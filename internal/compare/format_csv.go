package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Unmarried Women",
		"Unmarried Men",
		"Available Men",
		"Monogamy Surplus",
		"Effective Surplus",
		"Surplus Percent",
		"Wife Capacity",
		"Surplus Diff from Base",
		"Surplus % Change",
		"Rate Diff (points)",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		strconv.FormatInt(result.UnmarriedWomen, 10),
		strconv.FormatInt(result.UnmarriedMen, 10),
		strconv.FormatInt(result.AvailableMen, 10),
		strconv.FormatInt(result.MonogamySurplus, 10),
		strconv.FormatInt(result.EffectiveSurplus, 10),
		result.SurplusPercent.StringFixed(2),
		result.WifeCapacity.StringFixed(4),
		strconv.FormatInt(result.SurplusDiffFromBase, 10),
		result.SurplusPctFromBase.StringFixed(2),
		result.RateDiffFromBase.StringFixed(2),
	}
}
