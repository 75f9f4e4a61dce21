package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/dustin/go-humanize"
)

// ConsoleFormatter prints the headline numbers only.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	var buf bytes.Buffer
	mono := result.Monogamy

	fmt.Fprintln(&buf, "CHRISTIAN WOMEN WITHOUT MARRIAGE PROSPECTS")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Under strict monogamy:  %s\n", FormatNumber(mono.TotalSurplus))
	fmt.Fprintf(&buf, "Women: %s   Men: %s   Surplus: %s\n",
		FormatNumber(mono.TotalUnmarriedWomen),
		FormatNumber(mono.TotalUnmarriedMen),
		FormatPercent(mono.SurplusPercent))

	if alt := result.Alternative; alt != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s\n", alt.Name)
		fmt.Fprintf(&buf, "  Surplus reduces to:  %s\n", FormatNumber(alt.TotalSurplus))
		fmt.Fprintf(&buf, "  Women helped:        +%s\n", FormatNumber(result.SurplusReduction()))
		fmt.Fprintf(&buf, "  Reduction:           %.0f%%\n", ReductionPercent(result))
	}

	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter prints the full bracket breakdown.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "CHRISTIAN MARRIAGE SURPLUS ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)

	writeFilters(&buf, result.Filters)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "* %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeScenario(&buf, &result.Monogamy)
	if result.Alternative != nil {
		writeScenario(&buf, result.Alternative)
		writeComparison(&buf, result)
	}

	return buf.Bytes(), nil
}

func writeFilters(buf *bytes.Buffer, f domain.CalculatorFilters) {
	fmt.Fprintln(buf, "FILTERS")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	brackets := make([]string, len(f.AgeBrackets))
	for i, b := range f.AgeBrackets {
		brackets[i] = string(b)
	}
	if len(brackets) == 0 {
		brackets = []string{"(none)"}
	}
	fmt.Fprintf(buf, "  Age Brackets:     %s\n", strings.Join(brackets, ", "))
	fmt.Fprintf(buf, "  Denomination:     %s\n", f.Denomination.Label())
	fmt.Fprintf(buf, "  Religiosity:      %s\n", f.Religiosity.Label())
	fmt.Fprintf(buf, "  Include Widows:   %s\n", yesNo(f.IncludeWidows))
	fmt.Fprintf(buf, "  Include Divorced: %s\n", yesNo(f.IncludeDivorced))
	fmt.Fprintf(buf, "  Age Overlap:      %d years\n", f.AgeOverlap)
	fmt.Fprintln(buf)
}

func writeScenario(buf *bytes.Buffer, s *domain.ScenarioResult) {
	fmt.Fprintf(buf, "%s\n", strings.ToUpper(s.Name))
	fmt.Fprintf(buf, "%s\n", s.Description)
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	fmt.Fprintf(buf, "%-8s %12s %12s %12s %12s %12s %8s\n",
		"Age", "Women", "Widows", "Men", "Available", "Surplus", "Rate")
	for _, b := range s.ByBracket {
		fmt.Fprintf(buf, "%-8s %12s %12s %12s %12s %12s %8s\n",
			b.AgeBracket,
			humanize.Comma(b.UnmarriedWomen),
			humanize.Comma(b.Widows),
			humanize.Comma(b.UnmarriedMen),
			humanize.Comma(b.AvailableMen),
			humanize.Comma(b.Surplus),
			FormatPercent(b.SurplusPercent))
	}
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	fmt.Fprintf(buf, "%-8s %12s %12s %12s %12s %12s %8s\n",
		"Total",
		humanize.Comma(s.TotalUnmarriedWomen),
		humanize.Comma(s.TotalWidows),
		humanize.Comma(s.TotalUnmarriedMen),
		"",
		humanize.Comma(s.TotalSurplus),
		FormatPercent(s.SurplusPercent))
	fmt.Fprintln(buf)
}

func writeComparison(buf *bytes.Buffer, result *domain.CalculatorResult) {
	fmt.Fprintln(buf, "MONOGAMY VS POLYGYNY")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	if d := result.PolygynyDistribution; d != nil {
		fmt.Fprintf(buf, "  Distribution:     %s (%g%% monogamous)\n", d.Description(), d.OneWife)
		fmt.Fprintf(buf, "  Wife Capacity:    %s\n", FormatCapacity(d.WifeCapacity()))
	}
	fmt.Fprintf(buf, "  Monogamy Surplus: %s\n", humanize.Comma(result.Monogamy.TotalSurplus))
	fmt.Fprintf(buf, "  Polygyny Surplus: %s\n", humanize.Comma(result.Alternative.TotalSurplus))
	fmt.Fprintf(buf, "  Women Helped:     %s (%.0f%%)\n", humanize.Comma(result.SurplusReduction()), ReductionPercent(result))
	fmt.Fprintln(buf)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
