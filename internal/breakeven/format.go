package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// TableFormatter formats break-even results as a console table
type TableFormatter struct{}

// Format generates a formatted report for one search.
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN POLYGYNY SHARE\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if result.Request.Scenario != nil {
		sb.WriteString(fmt.Sprintf("Scenario:        %s\n", result.Request.Scenario.Name))
	}
	sb.WriteString(fmt.Sprintf("Category:        men with %s\n", categoryLabel(result.Request.Category)))
	sb.WriteString(fmt.Sprintf("Target Surplus:  %s\n", humanize.Comma(result.Request.TargetSurplus)))
	sb.WriteString(fmt.Sprintf("Status:          %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:      %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:     %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Share of Men:      %s%%\n", result.Share.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Wife Capacity:     %sx\n", result.WifeCapacity.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Monogamy Surplus:  %s\n", humanize.Comma(result.MonogamySurplus)))
	sb.WriteString(fmt.Sprintf("Surplus Reached:   %s\n", humanize.Comma(result.SurplusReached)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMultiCategory formats a search across every category.
func (tf *TableFormatter) FormatMultiCategory(result *MultiCategoryResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN BY POLYGYNY CATEGORY\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target Surplus: %s\n\n", humanize.Comma(result.TargetSurplus)))

	sb.WriteString(fmt.Sprintf("%-12s %12s %12s %16s %12s\n",
		"Category", "Share", "Capacity", "Surplus", "Status"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, r := range result.Results {
		sb.WriteString(fmt.Sprintf("%-12s %12s %12s %16s %12s\n",
			categoryLabel(r.Request.Category),
			r.Share.StringFixed(2)+"%",
			r.WifeCapacity.StringFixed(2)+"x",
			humanize.Comma(r.SurplusReached),
			tf.formatStatus(r.Success)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "reached"
	}
	return "unreachable"
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	return jf.marshal(result)
}

// FormatMultiCategory formats multi-category results as JSON
func (jf *JSONFormatter) FormatMultiCategory(result *MultiCategoryResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
