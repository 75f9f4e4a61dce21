package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/biblemarriages/surplus/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
)

// ParameterSlider displays an adjustable parameter with a visual slider. Limit
// caps the reachable value below Max, which is how the polygyny sliders keep
// the non-monogamous shares within 100%.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Limit       float64
	Step        float64
	Unit        string // e.g. "%", " yrs"
	Format      string // e.g. "%.0f"
	Width       int    // Total width of slider bar
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Limit:  max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithLimit caps the reachable value, clamped to [Min, Max]
func (p *ParameterSlider) WithLimit(limit float64) *ParameterSlider {
	p.Limit = math.Max(p.Min, math.Min(p.Max, limit))
	if p.Value > p.Limit {
		p.Value = p.Limit
	}
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment increases the value by step, stopping at the limit
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by step, stopping at the minimum
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue sets the value directly, clamping to min/limit
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Limit, value))
}

// Percentage returns the value as a fraction of the full range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) formatValue(v float64) string {
	return fmt.Sprintf(p.Format, v) + p.Unit
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString(" ")
	content.WriteString(valueStyle.Render(p.formatValue(p.Value)))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	rangeText := fmt.Sprintf("%s  ─  %s", p.formatValue(p.Min), p.formatValue(p.Max))
	if p.Limit < p.Max {
		rangeText += fmt.Sprintf("  (max %s)", p.formatValue(p.Limit))
	}
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(rangeText))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

// renderSliderBar draws the filled track, the thumb, and the part of the
// range beyond Limit as a blocked track.
func (p *ParameterSlider) renderSliderBar() string {
	filled := p.cells(p.Value)
	reachable := p.cells(p.Limit)

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	blockedStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorDanger)

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (filled >= p.Width && i == p.Width-1):
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		case i >= reachable:
			bar.WriteString(blockedStyle.Render("·"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}

func (p *ParameterSlider) cells(v float64) int {
	if p.Max == p.Min || p.Width <= 0 {
		return 0
	}
	n := int(math.Round(float64(p.Width) * (v - p.Min) / (p.Max - p.Min)))
	if n < 0 {
		return 0
	}
	if n > p.Width {
		return p.Width
	}
	return n
}

// RenderCompact returns a compact single-line version
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	mini := *p
	mini.Width = 10
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(p.Label+":"),
		valueStyle.Render(p.formatValue(p.Value)),
		mini.renderSliderBar())
}
