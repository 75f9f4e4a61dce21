package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterSlider_LimitClampsValue(t *testing.T) {
	s := NewParameterSlider("2 wives", 0, 0, 100, 5).WithLimit(12)

	s.Increment()
	assert.Equal(t, 5.0, s.Value)
	s.Increment()
	s.Increment()
	assert.Equal(t, 12.0, s.Value, "increment stops at the limit")

	s.Decrement()
	assert.Equal(t, 7.0, s.Value)
	s.SetValue(-10)
	assert.Equal(t, 0.0, s.Value)
}

func TestParameterSlider_WithLimitPullsValueDown(t *testing.T) {
	s := NewParameterSlider("3 wives", 40, 0, 100, 1).WithLimit(25)
	assert.Equal(t, 25.0, s.Value)
	assert.InDelta(t, 0.25, s.Percentage(), 1e-9)

	s.WithLimit(200)
	assert.Equal(t, 100.0, s.Limit)
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Age overlap", 10, 0, 20, 10).WithUnit(" yrs").WithWidth(10)
	out := s.Render()
	assert.Contains(t, out, "Age overlap")
	assert.Contains(t, out, "10 yrs")
	assert.Contains(t, out, "0 yrs  ─  20 yrs")
	assert.NotContains(t, out, "(max")

	s.WithLimit(10)
	assert.Contains(t, s.Render(), "(max 10 yrs)")
	assert.Contains(t, s.RenderCompact(), "Age overlap:")
}

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Surplus women", "300K").
		WithTrend(false, true, "-140K").
		WithDescription("after polygyny")

	out := card.Render()
	assert.Contains(t, out, "Surplus women")
	assert.Contains(t, out, "300K")
	assert.Contains(t, out, "▼ -140K")
	assert.Contains(t, out, "after polygyny")

	compact := card.RenderCompact()
	assert.Contains(t, compact, "Surplus women:")
	assert.Contains(t, compact, "▼ -140K")
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 3))

	cards := []*MetricCard{
		NewMetricCard("Women", "1.0M").WithWidth(12),
		NewMetricCard("Men", "700K").WithWidth(12),
		NewMetricCard("Rate", "30.0%").WithWidth(12),
	}
	out := MetricGrid(cards, 2)
	for _, want := range []string{"Women", "Men", "Rate", "1.0M", "700K", "30.0%"} {
		assert.Contains(t, out, want)
	}
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		name     string
		v, max   int64
		width    int
		expected int
	}{
		{"zero value", 0, 100, 40, 0},
		{"full", 100, 100, 40, 40},
		{"half", 50, 100, 40, 20},
		{"tiny rounds up to one", 1, 1000, 40, 1},
		{"no max", 10, 0, 40, 0},
		{"over max clamps", 200, 100, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BarLength(tt.v, tt.max, tt.width))
		})
	}
}

func TestBracketChart_Render(t *testing.T) {
	empty := NewBracketChart("By age")
	assert.Contains(t, empty.Render(), "No age brackets selected")

	chart := NewBracketChart("By age").WithWidth(10).
		AddRow("18-24", 1000, 700).
		AddRow("25-34", 500, 600)
	out := chart.Render()

	assert.Contains(t, out, "By age")
	assert.Contains(t, out, "18-24")
	assert.Contains(t, out, strings.Repeat("█", 10)+" 1000")
	assert.Contains(t, out, strings.Repeat("▒", 7)+" 700")
	assert.Contains(t, out, "+300")
	assert.NotContains(t, out, "+-100")
	assert.Contains(t, out, "available men")
}
