package tui

import "github.com/biblemarriages/surplus/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorMuted   = tuistyles.ColorMuted
	ColorBorder  = tuistyles.ColorBorder

	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	SectionTitleStyle   = tuistyles.SectionTitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	BorderStyle         = tuistyles.BorderStyle
	ActiveBorderStyle   = tuistyles.ActiveBorderStyle
	HeroValueStyle      = tuistyles.HeroValueStyle
	MetricLabelStyle    = tuistyles.MetricLabelStyle
	ParameterLabelStyle = tuistyles.ParameterLabelStyle
	ParameterValueStyle = tuistyles.ParameterValueStyle
	ChipOnStyle         = tuistyles.ChipOnStyle
	ChipOffStyle        = tuistyles.ChipOffStyle
	CursorStyle         = tuistyles.CursorStyle
	ErrorStyle          = tuistyles.ErrorStyle
	InfoStyle           = tuistyles.InfoStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
)
