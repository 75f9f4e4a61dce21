package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/output"
	"github.com/biblemarriages/surplus/internal/tui/components"
	"github.com/biblemarriages/surplus/internal/tui/tuistyles"
)

const controlsWidth = 40

// View renders the current state of the application
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return m.renderError()
	}
	if m.loading || m.result == nil {
		return m.renderLoading()
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderControls(),
		"  ",
		m.renderResults(),
	)
	return m.renderApp(body)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Christian Marriage Surplus")
	sub := SubtitleStyle.Render("Unmarried Christian women without a marriageable Christian man")
	return lipgloss.JoinVertical(lipgloss.Left, title, sub)
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render("Focus: "+m.focus.String()) + "\n" + m.help.View(m.keys)
}

func (m Model) renderLoading() string {
	return AppStyle.Render(InfoStyle.Render("Loading reference data..."))
}

func (m Model) renderError() string {
	return AppStyle.Render(
		ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			SubtitleStyle.Render("Press q to quit"),
	)
}

// renderControls draws the left-hand input panel
func (m Model) renderControls() string {
	sections := []string{
		m.panel("Demographics",
			m.renderSelect(controlDenomination, m.filters.Denomination.Label()),
			m.renderSelect(controlReligiosity, m.filters.Religiosity.Label()),
		),
		m.panel("Population",
			m.renderSwitch(controlDivorced, m.filters.IncludeDivorced),
			m.renderSwitch(controlWidows, m.filters.IncludeWidows),
			m.renderBrackets(),
		),
		m.panel("Age Matching", m.overlapSlider().Render()),
		m.renderPolygynyPanel(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel(title string, lines ...string) string {
	content := SectionTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return BorderStyle.Width(controlsWidth).Render(content)
}

func (m Model) focusMarker(c control) string {
	if m.focus == c {
		return CursorStyle.Render("▸ ")
	}
	return "  "
}

func (m Model) renderSelect(c control, value string) string {
	valueStyle := ParameterValueStyle
	if m.focus == c {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	return m.focusMarker(c) + ParameterLabelStyle.Render(c.String()+": ") + valueStyle.Render("‹ "+value+" ›")
}

func (m Model) renderSwitch(c control, on bool) string {
	state := ChipOffStyle.Render("off")
	if on {
		state = ChipOnStyle.Render("on")
	}
	return m.focusMarker(c) + ParameterLabelStyle.Render(c.String()+": ") + state
}

func (m Model) renderBrackets() string {
	var chips []string
	for i, b := range domain.AllAgeBrackets() {
		style := ChipOffStyle
		if m.filters.HasBracket(b) {
			style = ChipOnStyle
		}
		chip := style.Render(string(b))
		if m.focus == controlBrackets && i == m.bracketCursor {
			chip = CursorStyle.Render("[") + chip + CursorStyle.Render("]")
		}
		chips = append(chips, chip)
	}
	header := m.focusMarker(controlBrackets) + ParameterLabelStyle.Render(controlBrackets.String()) +
		SubtitleStyle.Render("  (1-7, a all, n none)")
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips[:4]...) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, chips[4:]...)
}

func (m Model) overlapSlider() *components.ParameterSlider {
	s := components.NewParameterSlider(
		m.focusMarker(controlOverlap)+"Range",
		float64(m.filters.AgeOverlap), 0, overlapMax, overlapStep,
	).WithUnit(" yrs").WithWidth(controlsWidth - 8).SetFocused(m.focus == controlOverlap)
	if m.filters.AgeOverlap == 0 {
		s.WithDescription("Same age only")
	} else {
		s.WithDescription(fmt.Sprintf("Older men up to %d years seeking younger women", m.filters.AgeOverlap))
	}
	return s
}

func (m Model) shareSlider(c control) *components.ParameterSlider {
	field, _ := c.shareField()
	return components.NewParameterSlider(
		m.focusMarker(c)+c.String(),
		m.dist.Share(field), 0, 100, polygynyStep,
	).WithUnit("%").WithWidth(controlsWidth - 8).
		WithLimit(m.dist.MaxShare(field)).
		SetFocused(m.focus == c)
}

func (m Model) renderPolygynyPanel() string {
	lines := []string{m.renderSwitch(controlPolygyny, m.showPolygyny)}
	if m.showPolygyny {
		lines = append(lines, SubtitleStyle.Render("% of men with multiple wives"))
		for _, c := range []control{controlTwoWives, controlThreeWives, controlFourPlusWives} {
			lines = append(lines, m.shareSlider(c).Render())
		}
		lines = append(lines,
			SubtitleStyle.Render(fmt.Sprintf("%s%% monogamous, capacity %s",
				formatShare(m.dist.OneWife), output.FormatCapacity(m.dist.WifeCapacity()))),
		)
	}
	return m.panel("Polygyny Scenario", lines...)
}

// renderResults draws the right-hand results column
func (m Model) renderResults() string {
	mono := m.result.Monogamy
	parts := []string{m.renderHero()}

	stats := components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Women", output.FormatNumber(mono.TotalUnmarriedWomen)).WithWidth(16),
		components.NewMetricCard("Men", output.FormatNumber(mono.TotalUnmarriedMen)).WithWidth(16),
		components.NewMetricCard("Surplus", output.FormatPercent(mono.SurplusPercent)).WithWidth(16),
	}, 3)
	parts = append(parts, stats)

	if banner := m.renderAlternative(); banner != "" {
		parts = append(parts, banner)
	}

	chart := components.NewBracketChart("Surplus by Age Bracket").
		WithWidth(30).
		WithFormat(output.FormatNumber)
	for _, b := range mono.ByBracket {
		chart.AddRow(string(b.AgeBracket), b.UnmarriedWomen, b.AvailableMen)
	}
	parts = append(parts, chart.Render())

	parts = append(parts,
		SectionTitleStyle.Render("Detailed Breakdown"),
		m.table.View(),
		m.renderTotals(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHero() string {
	value := HeroValueStyle.Render(output.FormatNumber(m.result.Monogamy.TotalSurplus))
	return SubtitleStyle.Render("Under strict monogamy") + "\n" +
		value + "\n" +
		ParameterLabelStyle.Render("Christian women without marriage prospects")
}

// renderAlternative is the polygyny impact banner, empty unless the
// Alternative scenario was computed.
func (m Model) renderAlternative() string {
	alt := m.result.Alternative
	if !m.showPolygyny || alt == nil {
		return ""
	}
	reduction := m.result.SurplusReduction()
	cards := []*components.MetricCard{
		components.NewMetricCard("With polygyny, surplus reduces to", output.FormatNumber(alt.TotalSurplus)).
			WithWidth(36).
			WithDescription(alt.Name),
		components.NewMetricCard("Women helped", "+"+output.FormatNumber(reduction)).
			WithWidth(16).
			WithValueStyle(tuistyles.MetricPositiveStyle),
		components.NewMetricCard("Reduction", fmt.Sprintf("%.0f%%", output.ReductionPercent(m.result))).
			WithWidth(14),
	}
	return components.MetricGrid(cards, 3)
}

func (m Model) renderTotals() string {
	mono := m.result.Monogamy
	line := fmt.Sprintf("Total  women %s  men %s  surplus %s",
		output.FormatNumber(mono.TotalUnmarriedWomen),
		output.FormatNumber(mono.TotalUnmarriedMen),
		output.FormatNumber(mono.TotalSurplus))
	if alt := m.result.Alternative; m.showPolygyny && alt != nil {
		line += "  w/ polygyny " + output.FormatNumber(alt.TotalSurplus)
	}
	return MetricLabelStyle.Render(line)
}

func formatShare(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
