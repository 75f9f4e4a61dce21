package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/config"
	"github.com/biblemarriages/surplus/internal/domain"
)

// control is one focusable input on the dashboard
type control int

const (
	controlBrackets control = iota
	controlDenomination
	controlReligiosity
	controlDivorced
	controlWidows
	controlOverlap
	controlPolygyny
	controlTwoWives
	controlThreeWives
	controlFourPlusWives
)

const (
	overlapStep  = 10
	overlapMax   = 20
	polygynyStep = 1
)

var controlNames = map[control]string{
	controlBrackets:      "Age brackets",
	controlDenomination:  "Denomination",
	controlReligiosity:   "Religiosity",
	controlDivorced:      "Include divorced",
	controlWidows:        "Include widowed",
	controlOverlap:       "Age matching",
	controlPolygyny:      "Polygyny scenario",
	controlTwoWives:      "2 wives",
	controlThreeWives:    "3 wives",
	controlFourPlusWives: "4+ wives",
}

func (c control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "Unknown"
}

// shareField maps a polygyny slider to its distribution field
func (c control) shareField() (domain.ShareField, bool) {
	switch c {
	case controlTwoWives:
		return domain.ShareTwoWives, true
	case controlThreeWives:
		return domain.ShareThreeWives, true
	case controlFourPlusWives:
		return domain.ShareFourPlusWives, true
	}
	return "", false
}

// Model represents the entire dashboard state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Reference data source and the engine built over it
	paths  domain.ReferenceDataPaths
	engine *calculation.CalculationEngine

	// Inputs
	filters       domain.CalculatorFilters
	dist          domain.PolygynyDistribution
	showPolygyny  bool
	focus         control
	bracketCursor int

	// Output of the last recalculation
	result *domain.CalculatorResult
	table  table.Model

	keys     keyMap
	help     help.Model
	showHelp bool

	err      error
	loading  bool
	quitting bool
}

// NewModel creates a dashboard that loads its reference tables from paths
// on Init. Empty paths select the embedded tables.
func NewModel(paths domain.ReferenceDataPaths) Model {
	m := newModel()
	m.paths = paths
	m.loading = true
	return m
}

// NewModelWithData creates a dashboard over tables that are already loaded.
func NewModelWithData(census *domain.CensusData, religious *domain.ReligiousData) Model {
	m := newModel()
	m.engine = calculation.NewCalculationEngine(census, religious)
	m.recalculate()
	return m
}

func newModel() Model {
	return Model{
		width:   100,
		height:  40,
		filters: domain.DefaultFilters(),
		dist:    domain.DefaultMonogamy,
		table:   newBracketTable(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.engine != nil {
		return nil
	}
	return loadReferenceCmd(m.paths)
}

// loadReferenceCmd returns a command that loads the reference tables
func loadReferenceCmd(paths domain.ReferenceDataPaths) tea.Cmd {
	return func() tea.Msg {
		census, religious, err := config.NewInputParser().LoadReferenceData(paths)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReferenceLoadedMsg{Census: census, Religious: religious}
	}
}

// Result returns the last computed result, nil before the tables load.
func (m Model) Result() *domain.CalculatorResult { return m.result }

// Filters returns the current filter selection.
func (m Model) Filters() domain.CalculatorFilters { return m.filters.Clone() }

// Distribution returns the polygyny distribution being edited.
func (m Model) Distribution() domain.PolygynyDistribution { return m.dist }

// PolygynyEnabled reports whether the Alternative scenario is being computed.
func (m Model) PolygynyEnabled() bool { return m.showPolygyny }

// visibleControls lists the focusable controls in display order. The share
// sliders only exist while the polygyny scenario is on.
func (m Model) visibleControls() []control {
	last := controlPolygyny
	if m.showPolygyny {
		last = controlFourPlusWives
	}
	out := make([]control, 0, last+1)
	for c := controlBrackets; c <= last; c++ {
		out = append(out, c)
	}
	return out
}

// recalculate runs the engine over the current inputs and refreshes the
// bracket table.
func (m *Model) recalculate() {
	if m.engine == nil {
		return
	}
	var dist *domain.PolygynyDistribution
	if m.showPolygyny {
		d := m.dist
		dist = &d
	}
	m.result = m.engine.CalculateResults(m.filters, dist)
	m.table.SetRows(bracketRows(m.result))
}
