package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/dustin/go-humanize"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"num":   FormatNumber,
	"comma": humanize.Comma,
	"pct":   FormatPercent,
	"cap":   FormatCapacity,
}).Parse(htmlTemplateSource))

type htmlBracketRow struct {
	Monogamy    domain.BracketResult
	Alternative *domain.BracketResult
}

func (h HTMLFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	rows := make([]htmlBracketRow, len(result.Monogamy.ByBracket))
	for i, b := range result.Monogamy.ByBracket {
		rows[i].Monogamy = b
		if result.Alternative != nil && i < len(result.Alternative.ByBracket) {
			alt := result.Alternative.ByBracket[i]
			rows[i].Alternative = &alt
		}
	}

	data := struct {
		*domain.CalculatorResult
		Rows             []htmlBracketRow
		Reduction        int64
		ReductionPercent float64
		Assumptions      []string
	}{
		CalculatorResult: result,
		Rows:             rows,
		Reduction:        result.SurplusReduction(),
		ReductionPercent: ReductionPercent(result),
		Assumptions:      DefaultAssumptions,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
