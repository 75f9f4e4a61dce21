package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/biblemarriages/surplus/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
)

// BarRow is one labelled pair of bars, women against the men available to
// them.
type BarRow struct {
	Label string
	Women int64
	Men   int64
}

// BracketChart draws horizontal paired bars scaled to the largest value
type BracketChart struct {
	Title      string
	Rows       []BarRow
	Width      int // width of the longest bar
	ShowLegend bool
	Format     func(int64) string
}

// NewBracketChart creates a new chart
func NewBracketChart(title string) *BracketChart {
	return &BracketChart{
		Title:      title,
		Width:      40,
		ShowLegend: true,
		Format:     func(n int64) string { return fmt.Sprintf("%d", n) },
	}
}

// AddRow appends a bracket row
func (c *BracketChart) AddRow(label string, women, men int64) *BracketChart {
	c.Rows = append(c.Rows, BarRow{Label: label, Women: women, Men: men})
	return c
}

// WithWidth sets the maximum bar width
func (c *BracketChart) WithWidth(width int) *BracketChart {
	c.Width = width
	return c
}

// WithFormat sets the value formatter used after each bar
func (c *BracketChart) WithFormat(f func(int64) string) *BracketChart {
	c.Format = f
	return c
}

func (c *BracketChart) maxValue() int64 {
	var max int64
	for _, r := range c.Rows {
		if r.Women > max {
			max = r.Women
		}
		if r.Men > max {
			max = r.Men
		}
	}
	return max
}

// BarLength scales v against max over width cells. Any positive value gets at
// least one cell.
func BarLength(v, max int64, width int) int {
	if v <= 0 || max <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(float64(v) / float64(max) * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// Render returns the chart
func (c *BracketChart) Render() string {
	if len(c.Rows) == 0 {
		return tuistyles.SubtitleStyle.Render("No age brackets selected")
	}

	labelWidth := 0
	for _, r := range c.Rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	womenStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorWomen)
	menStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMen)
	max := c.maxValue()

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.SectionTitleStyle.Render(c.Title))
		b.WriteString("\n")
	}
	for _, r := range c.Rows {
		label := fmt.Sprintf("%-*s", labelWidth, r.Label)
		b.WriteString(tuistyles.MetricLabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(womenStyle.Render(strings.Repeat("█", BarLength(r.Women, max, c.Width))))
		b.WriteString(" " + c.Format(r.Women) + "\n")

		b.WriteString(strings.Repeat(" ", labelWidth+1))
		b.WriteString(menStyle.Render(strings.Repeat("▒", BarLength(r.Men, max, c.Width))))
		b.WriteString(" " + c.Format(r.Men))
		if gap := r.Women - r.Men; gap > 0 {
			b.WriteString(tuistyles.MetricNegativeStyle.Render("  +" + c.Format(gap)))
		}
		b.WriteString("\n")
	}

	if c.ShowLegend {
		b.WriteString(womenStyle.Render("█") + " unmarried women   ")
		b.WriteString(menStyle.Render("▒") + " available men   ")
		b.WriteString(tuistyles.MetricNegativeStyle.Render("+n") + " surplus")
	}
	return strings.TrimRight(b.String(), "\n")
}
