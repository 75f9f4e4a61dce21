package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblemarriages/surplus/internal/domain"
)

// youngOnlyData has 700K men and 1M women, all never married, in 18-24 and
// nobody in any other bracket.
func youngOnlyData() (*domain.CensusData, *domain.ReligiousData) {
	census := &domain.CensusData{Year: 2023, Source: "test"}
	rel := &domain.ReligiousData{Year: "2023", Source: "test", OverallChristianPercent: 100}
	for _, b := range domain.AllAgeBrackets() {
		var men, women float64
		if b == domain.Bracket18to24 {
			men, women = 700, 1000
		}
		census.AgeBrackets = append(census.AgeBrackets, domain.AgeBracketData{
			Range:  b,
			Male:   domain.MaritalStatusBySex{Total: men, NeverMarried: men},
			Female: domain.MaritalStatusBySex{Total: women, NeverMarried: women},
		})
		rel.ByAge = append(rel.ByAge, domain.AgeReligiosity{
			Range:             b,
			ChristianPercent:  100,
			DevoutPercent:     20,
			PracticingPercent: 30,
			NominalPercent:    50,
		})
	}
	return census, rel
}

func newTestModel() Model {
	return NewModelWithData(youngOnlyData())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = msg
	}
	return out
}

func focusOn(t *testing.T, m Model, c control) Model {
	t.Helper()
	for i := 0; i < len(controlNames) && m.focus != c; i++ {
		m = send(t, m, keyTab)
	}
	require.Equal(t, c, m.focus)
	return m
}

func TestNewModelWithData_ComputesImmediately(t *testing.T) {
	m := newTestModel()

	assert.Nil(t, m.Init())
	require.NotNil(t, m.Result())
	assert.Equal(t, domain.DefaultFilters(), m.Filters())
	assert.Equal(t, domain.DefaultMonogamy, m.Distribution())
	assert.False(t, m.PolygynyEnabled())

	res := m.Result()
	assert.Equal(t, int64(300000), res.Monogamy.TotalSurplus)
	assert.Equal(t, int64(1000000), res.Monogamy.TotalUnmarriedWomen)
	assert.Nil(t, res.Alternative)
	assert.Len(t, m.table.Rows(), domain.NumAgeBrackets())
}

func TestNewModel_LoadsReferenceData(t *testing.T) {
	m := NewModel(domain.ReferenceDataPaths{})
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Loading reference data")

	// Keys other than quit and help are ignored while loading
	m = send(t, m, keyRune('p'), keyRune('1'))
	assert.False(t, m.PolygynyEnabled())
	assert.Len(t, m.Filters().AgeBrackets, domain.NumAgeBrackets())

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(ReferenceLoadedMsg)
	require.True(t, ok, "expected ReferenceLoadedMsg, got %T", msg)
	require.NotNil(t, loaded.Census)
	require.NotNil(t, loaded.Religious)

	m = send(t, m, loaded)
	require.NotNil(t, m.Result())
	assert.Positive(t, m.Result().Monogamy.TotalUnmarriedWomen)
	assert.Contains(t, m.View(), "Under strict monogamy")
}

func TestNewModel_MissingFileReportsError(t *testing.T) {
	m := NewModel(domain.ReferenceDataPaths{Census: "does-not-exist.json"})
	msg := m.Init()()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok, "expected ErrorMsg, got %T", msg)

	m = send(t, m, errMsg)
	assert.Contains(t, m.View(), "Error:")
	assert.Contains(t, m.View(), "Press q to quit")
}

func TestUpdate_ErrorAndWindowSize(t *testing.T) {
	m := send(t, newTestModel(),
		tea.WindowSizeMsg{Width: 120, Height: 50},
		ErrorMsg{Err: errors.New("boom")},
	)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
	assert.Contains(t, m.View(), "Error: boom")
}

func TestUpdate_Quit(t *testing.T) {
	for _, msg := range []tea.Msg{keyRune('q'), tea.KeyMsg{Type: tea.KeyCtrlC}, QuitMsg{}} {
		updated, cmd := newTestModel().Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, updated.View())
	}
}

func TestUpdate_BracketHotkeys(t *testing.T) {
	m := send(t, newTestModel(), keyRune('1'))
	assert.False(t, m.Filters().HasBracket(domain.Bracket18to24))
	assert.Equal(t, int64(0), m.Result().Monogamy.TotalSurplus)
	assert.Len(t, m.table.Rows(), domain.NumAgeBrackets()-1)

	// Re-selecting restores youngest-first order
	m = send(t, m, keyRune('1'))
	assert.Equal(t, domain.AllAgeBrackets(), m.Filters().AgeBrackets)
	assert.Equal(t, int64(300000), m.Result().Monogamy.TotalSurplus)

	// Digits past the last bracket do nothing
	m = send(t, m, keyRune('9'))
	assert.Equal(t, domain.AllAgeBrackets(), m.Filters().AgeBrackets)
}

func TestUpdate_AllAndNoBrackets(t *testing.T) {
	m := send(t, newTestModel(), keyRune('n'))
	assert.Empty(t, m.Filters().AgeBrackets)
	assert.Equal(t, int64(0), m.Result().Monogamy.TotalUnmarriedWomen)
	assert.Empty(t, m.table.Rows())
	assert.Contains(t, m.View(), "No age brackets selected")

	m = send(t, m, keyRune('a'))
	assert.Equal(t, domain.AllAgeBrackets(), m.Filters().AgeBrackets)
	assert.Equal(t, int64(300000), m.Result().Monogamy.TotalSurplus)
}

func TestUpdate_BracketCursor(t *testing.T) {
	m := newTestModel()
	require.Equal(t, controlBrackets, m.focus)

	m = send(t, m, keyRight, keyEnter)
	assert.Equal(t, 1, m.bracketCursor)
	assert.False(t, m.Filters().HasBracket(domain.Bracket25to34))

	m = send(t, m, keyLeft, keyLeft)
	assert.Equal(t, domain.NumAgeBrackets()-1, m.bracketCursor, "cursor wraps")
}

func TestUpdate_FocusCycles(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keyShiftTab)
	assert.Equal(t, controlPolygyny, m.focus, "share sliders are hidden while polygyny is off")

	m = send(t, m, keyTab)
	assert.Equal(t, controlBrackets, m.focus)

	m = send(t, m, keyRune('p'), keyShiftTab)
	assert.Equal(t, controlFourPlusWives, m.focus)
}

func TestUpdate_DenominationAndReligiosityCycle(t *testing.T) {
	m := focusOn(t, newTestModel(), controlDenomination)

	m = send(t, m, keyRight)
	assert.Equal(t, domain.DenominationEvangelical, m.Filters().Denomination)

	m = send(t, m, keyLeft, keyLeft)
	assert.Equal(t, domain.DenominationOther, m.Filters().Denomination, "wraps to the last option")

	m = focusOn(t, m, controlReligiosity)
	m = send(t, m, keyEnter)
	assert.Equal(t, domain.LevelNominal, m.Filters().Religiosity)
	assert.Equal(t, domain.LevelNominal, m.Result().Filters.Religiosity)
}

func TestUpdate_InclusionToggles(t *testing.T) {
	m := focusOn(t, newTestModel(), controlDivorced)
	m = send(t, m, keyEnter)
	assert.False(t, m.Filters().IncludeDivorced)

	m = focusOn(t, m, controlWidows)
	m = send(t, m, keyRight)
	assert.False(t, m.Filters().IncludeWidows)
	assert.False(t, m.Result().Filters.IncludeWidows)
}

func TestUpdate_OverlapSlider(t *testing.T) {
	m := focusOn(t, newTestModel(), controlOverlap)

	m = send(t, m, keyRight)
	assert.Equal(t, 10, m.Filters().AgeOverlap)

	m = send(t, m, keyRight, keyRight)
	assert.Equal(t, 20, m.Filters().AgeOverlap, "clamped at 20")

	m = send(t, m, keyLeft, keyLeft, keyLeft)
	assert.Equal(t, 0, m.Filters().AgeOverlap, "clamped at 0")
}

func TestUpdate_PolygynyScenario(t *testing.T) {
	m := send(t, newTestModel(), keyRune('p'))
	assert.True(t, m.PolygynyEnabled())
	assert.Nil(t, m.Result().Alternative, "monogamous distribution has no alternative")

	m = focusOn(t, m, controlTwoWives)
	m = send(t, m, keyRight)
	assert.Equal(t, 1.0, m.Distribution().TwoWives, "one percent per press")
	assert.Equal(t, 99.0, m.Distribution().OneWife)

	m = send(t, m, repeat(keyRight, 19)...)

	dist := m.Distribution()
	assert.Equal(t, 20.0, dist.TwoWives)
	assert.Equal(t, 80.0, dist.OneWife)

	res := m.Result()
	require.NotNil(t, res.Alternative)
	assert.Equal(t, int64(300000), res.Monogamy.TotalSurplus)
	assert.Equal(t, int64(160000), res.Alternative.TotalSurplus)
	assert.Equal(t, int64(140000), res.SurplusReduction())
	assert.Equal(t, "Polygyny (1.20x capacity)", res.Alternative.Name)

	view := m.View()
	assert.Contains(t, view, "With polygyny, surplus reduces to")
	assert.Contains(t, view, "160K")
	assert.Contains(t, view, "+140K")
	assert.Contains(t, view, "47%")
	assert.Contains(t, view, "80% monogamous")

	// Switching the scenario off keeps the shares but drops the alternative
	m = send(t, m, keyRune('p'))
	assert.False(t, m.PolygynyEnabled())
	assert.Equal(t, controlPolygyny, m.focus)
	assert.Nil(t, m.Result().Alternative)
	assert.Equal(t, 20.0, m.Distribution().TwoWives)
	assert.NotContains(t, m.View(), "Women helped")
}

func TestUpdate_ShareSlidersRespectMaxShare(t *testing.T) {
	m := send(t, newTestModel(), keyRune('p'))
	m = focusOn(t, m, controlTwoWives)
	m = send(t, m, repeat(keyRight, 105)...)
	assert.Equal(t, 100.0, m.Distribution().TwoWives)
	assert.Equal(t, 0.0, m.Distribution().OneWife)

	m = send(t, m, keyTab, keyRight)
	assert.Equal(t, 0.0, m.Distribution().ThreeWives, "no room left for three wives")

	m = send(t, m, keyShiftTab, keyLeft, keyTab, keyRight)
	assert.Equal(t, 99.0, m.Distribution().TwoWives)
	assert.Equal(t, 1.0, m.Distribution().ThreeWives)
	assert.Equal(t, 0.0, m.Distribution().OneWife)
	assert.InDelta(t, 100.0, m.Distribution().Sum(), 1e-9)

	m = send(t, m, keyLeft, keyLeft)
	assert.Equal(t, 0.0, m.Distribution().ThreeWives, "clamped at zero")
}

func TestUpdate_Reset(t *testing.T) {
	m := send(t, newTestModel(), keyRune('1'), keyRune('p'))
	m = focusOn(t, m, controlFourPlusWives)
	m = send(t, m, keyRight, keyRune('r'))

	assert.Equal(t, domain.DefaultFilters(), m.Filters())
	assert.Equal(t, domain.DefaultMonogamy, m.Distribution())
	assert.False(t, m.PolygynyEnabled())
	assert.Equal(t, controlPolygyny, m.focus)
	assert.Equal(t, int64(300000), m.Result().Monogamy.TotalSurplus)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := send(t, newTestModel(), keyRune('?'))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "all ages")

	m = send(t, m, keyRune('?'))
	assert.False(t, m.showHelp)
}

func TestView_Dashboard(t *testing.T) {
	view := newTestModel().View()

	for _, want := range []string{
		"Christian Marriage Surplus",
		"Under strict monogamy",
		"300K",
		"Christian women without marriage prospects",
		"Women",
		"1.0M",
		"700K",
		"30.0%",
		"Denomination",
		"All Christians",
		"Include divorced",
		"Age brackets",
		"18-24",
		"75+",
		"Same age only",
		"Polygyny Scenario",
		"Surplus by Age Bracket",
		"Detailed Breakdown",
		"Total  women 1.0M  men 700K  surplus 300K",
		"Focus: Age brackets",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "monogamous, capacity")
}
