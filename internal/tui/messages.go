package tui

import "github.com/biblemarriages/surplus/internal/domain"

// ReferenceLoadedMsg is sent when the census and religious tables are ready
type ReferenceLoadedMsg struct {
	Census    *domain.CensusData
	Religious *domain.ReligiousData
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// QuitMsg is sent when the application should quit
type QuitMsg struct{}
