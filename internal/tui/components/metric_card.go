package components

import (
	"fmt"

	"github.com/biblemarriages/surplus/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single head count or rate with label, value, and
// optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
	ValueStyle  *lipgloss.Style
}

// Trend is a change against a reference value. Up picks the arrow and Good
// picks the colour, since a falling surplus is the favourable direction.
type Trend struct {
	Up     bool
	Good   bool
	Change string // e.g. "-140K" or "-46.7%"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(up, good bool, change string) *MetricCard {
	m.Trend = &Trend{Up: up, Good: good, Change: change}
	return m
}

// WithDescription adds a description/subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// WithValueStyle overrides the value style, e.g. for the hero number
func (m *MetricCard) WithValueStyle(style lipgloss.Style) *MetricCard {
	m.ValueStyle = &style
	return m
}

func (m *MetricCard) trendText() string {
	if m.Trend == nil {
		return ""
	}
	arrow := tuistyles.TrendIndicator(m.Trend.Up)
	return tuistyles.MetricTrendStyle(m.Trend.Good).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
}

func (m *MetricCard) valueText() string {
	if m.ValueStyle != nil {
		return m.ValueStyle.Render(m.Value)
	}
	return tuistyles.MetricValueStyle.Render(m.Value)
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + m.valueText()

	if m.Trend != nil {
		content += "\n" + m.trendText()
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns a compact inline version without border
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + m.valueText()
	if m.Trend != nil {
		out += " " + m.trendText()
	}
	return out
}

// MetricGrid renders multiple metric cards in a grid layout
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := []string{}
	currentRow := []string{}

	for i, card := range cards {
		currentRow = append(currentRow, card.Render())

		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
