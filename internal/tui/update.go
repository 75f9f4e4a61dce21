package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ReferenceLoadedMsg:
		m.loading = false
		m.err = nil
		m.engine = calculation.NewCalculationEngine(msg.Census, msg.Religious)
		m.recalculate()
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	// Nothing to edit until the tables are loaded
	if m.engine == nil {
		return m, nil
	}

	if b, ok := bracketHotkey(msg); ok {
		m.toggleBracket(b)
		m.recalculate()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)

	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggle()

	case key.Matches(msg, m.keys.AllBrackets):
		m.filters.AgeBrackets = domain.AllAgeBrackets()

	case key.Matches(msg, m.keys.NoBrackets):
		m.filters.AgeBrackets = []domain.AgeBracket{}

	case key.Matches(msg, m.keys.Polygyny):
		m.setPolygyny(!m.showPolygyny)

	case key.Matches(msg, m.keys.Reset):
		m.filters = domain.DefaultFilters()
		m.dist = domain.DefaultMonogamy
		m.setPolygyny(false)
		m.bracketCursor = 0

	default:
		return m, nil
	}

	m.recalculate()
	return m, nil
}

// bracketHotkey maps the digit keys 1-7 onto the ordered brackets
func bracketHotkey(msg tea.KeyMsg) (domain.AgeBracket, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return "", false
	}
	return domain.BracketAt(int(r - '1'))
}

func (m *Model) moveFocus(delta int) {
	controls := m.visibleControls()
	idx := 0
	for i, c := range controls {
		if c == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(controls)) % len(controls)
	m.focus = controls[idx]
}

// adjust moves the focused control one step in direction dir (+1 or -1)
func (m *Model) adjust(dir int) {
	switch m.focus {
	case controlBrackets:
		n := domain.NumAgeBrackets()
		m.bracketCursor = (m.bracketCursor + dir + n) % n

	case controlDenomination:
		opts := domain.Denominations()
		i := optionIndex(opts, string(m.filters.Denomination))
		m.filters.Denomination = domain.Denomination(opts[cycle(i, dir, len(opts))].Value)

	case controlReligiosity:
		opts := domain.ReligiosityLevels()
		i := optionIndex(opts, string(m.filters.Religiosity))
		m.filters.Religiosity = domain.ReligiosityLevel(opts[cycle(i, dir, len(opts))].Value)

	case controlDivorced:
		m.filters.IncludeDivorced = !m.filters.IncludeDivorced

	case controlWidows:
		m.filters.IncludeWidows = !m.filters.IncludeWidows

	case controlOverlap:
		v := m.filters.AgeOverlap + dir*overlapStep
		if v < 0 {
			v = 0
		}
		if v > overlapMax {
			v = overlapMax
		}
		m.filters.AgeOverlap = v

	case controlPolygyny:
		m.setPolygyny(dir > 0)

	default:
		if field, ok := m.focus.shareField(); ok {
			m.adjustShare(field, float64(dir*polygynyStep))
		}
	}
}

// adjustShare moves one non-monogamous share, keeping the four shares
// summing to 100.
func (m *Model) adjustShare(field domain.ShareField, delta float64) {
	v := m.dist.Share(field) + delta
	if limit := m.dist.MaxShare(field); v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	m.dist = m.dist.WithShare(field, v)
}

func (m *Model) toggle() {
	switch m.focus {
	case controlBrackets:
		if b, ok := domain.BracketAt(m.bracketCursor); ok {
			m.toggleBracket(b)
		}
	case controlDivorced:
		m.filters.IncludeDivorced = !m.filters.IncludeDivorced
	case controlWidows:
		m.filters.IncludeWidows = !m.filters.IncludeWidows
	case controlPolygyny:
		m.setPolygyny(!m.showPolygyny)
	default:
		m.adjust(1)
	}
}

// toggleBracket flips one bracket, keeping the selection in bracket order
// so the breakdown table reads youngest to oldest.
func (m *Model) toggleBracket(b domain.AgeBracket) {
	toggled := m.filters.ToggleBracket(b)
	ordered := make([]domain.AgeBracket, 0, len(toggled.AgeBrackets))
	for _, candidate := range domain.AllAgeBrackets() {
		if toggled.HasBracket(candidate) {
			ordered = append(ordered, candidate)
		}
	}
	m.filters.AgeBrackets = ordered
}

// setPolygyny switches the Alternative scenario on or off. Switching off
// pulls focus back from the share sliders, which disappear.
func (m *Model) setPolygyny(on bool) {
	m.showPolygyny = on
	if !on && m.focus > controlPolygyny {
		m.focus = controlPolygyny
	}
}

func optionIndex(opts []domain.Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return 0
}

func cycle(i, dir, n int) int {
	return ((i+dir)%n + n) % n
}
