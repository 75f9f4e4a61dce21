package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/output"
)

func newBracketTable() table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 7},
		{Title: "Women", Width: 8},
		{Title: "Men", Width: 8},
		{Title: "Available", Width: 10},
		{Title: "Surplus", Width: 8},
		{Title: "Rate", Width: 7},
		{Title: "Polygyny", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(domain.NumAgeBrackets()+1),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}

// bracketRows builds one table row per selected bracket. The last column is
// the bracket's surplus under the Alternative scenario, or "-" without one.
func bracketRows(result *domain.CalculatorResult) []table.Row {
	if result == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(result.Monogamy.ByBracket))
	for i, b := range result.Monogamy.ByBracket {
		alt := "-"
		if result.Alternative != nil && i < len(result.Alternative.ByBracket) {
			alt = output.FormatNumber(result.Alternative.ByBracket[i].Surplus)
		}
		rows = append(rows, table.Row{
			string(b.AgeBracket),
			output.FormatNumber(b.UnmarriedWomen),
			output.FormatNumber(b.UnmarriedMen),
			output.FormatNumber(b.AvailableMen),
			output.FormatNumber(b.Surplus),
			output.FormatPercent(b.SurplusPercent),
			alt,
		})
	}
	return rows
}
